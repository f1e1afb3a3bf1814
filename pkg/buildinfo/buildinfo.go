// Package buildinfo contains build information.
//
// Build information should be set during compilation by passing
// -ldflags "-X src.prelude.dev/prelude/pkg/buildinfo.Var=value" to
// "go build".
package buildinfo

import (
	"encoding/json"
	"fmt"
	"os"
	"runtime"

	"src.prelude.dev/prelude/pkg/must"
	"src.prelude.dev/prelude/pkg/prog"
)

// Version identifies the version of prelude. On development commits, it
// identifies the next release.
const Version = "v1.0.0"

// VersionSuffix is appended to Version in the output of "prelude -version"
// and "prelude -buildinfo" to build the full version string. This can be
// overridden when building prelude.
var VersionSuffix = "-dev.unknown"

// Program is the buildinfo subprogram. It handles the -version and
// -buildinfo flags and is not suitable otherwise.
var Program prog.Program = program{}

type program struct{}

func (program) Run(fds [3]*os.File, f *prog.Flags, _ []string) error {
	if !f.Version && !f.BuildInfo {
		return prog.ErrNotSuitable
	}
	fullVersion := Version + VersionSuffix
	if f.Version {
		if f.JSON {
			fmt.Fprintln(fds[1], quoteJSON(fullVersion))
		} else {
			fmt.Fprintln(fds[1], fullVersion)
		}
		return nil
	}
	if f.JSON {
		fmt.Fprintf(fds[1],
			`{"version":%s,"goversion":%s}`+"\n",
			quoteJSON(fullVersion), quoteJSON(runtime.Version()))
	} else {
		fmt.Fprintln(fds[1], "Version:", fullVersion)
		fmt.Fprintln(fds[1], "Go version:", runtime.Version())
	}
	return nil
}

func quoteJSON(s string) string {
	return string(must.OK1(json.Marshal(s)))
}
