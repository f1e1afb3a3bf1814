// Prelude demonstrates the persistent list library. It builds an n-element
// integer list by repeated prepend, performs m rounds of a map-and-sum
// computation over it, and prints the resulting scalar.
package main

import (
	"os"

	"src.prelude.dev/prelude/pkg/bench"
	"src.prelude.dev/prelude/pkg/buildinfo"
	"src.prelude.dev/prelude/pkg/prog"
)

func main() {
	os.Exit(prog.Run(
		[3]*os.File{os.Stdin, os.Stdout, os.Stderr}, os.Args,
		prog.Composite(buildinfo.Program, bench.Program{})))
}
