// Package progtest provides utilities for testing subprograms.
//
// Test cases are declared fluently, like
//
//	Test(t, someProgram{},
//	    ThatPrelude("-foo").WritesStdout("foo\n"),
//	    ThatPrelude("-bad").ExitsWith(2).WritesStderrContaining("bad"),
//	)
//
// Each case runs the program via prog.Run with its fds connected to pipes,
// and asserts on the exit code and captured outputs.
package progtest

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"testing"

	"src.prelude.dev/prelude/pkg/must"
	"src.prelude.dev/prelude/pkg/prog"
)

// Case is a test case that can be used in Test.
type Case struct {
	args  []string
	stdin string
	want  result
}

type result struct {
	exit   int
	stdout output
	stderr output
}

type output struct {
	content string
	partial bool
}

func (o output) String() string {
	if o.partial {
		return fmt.Sprintf("text containing %q", o.content)
	}
	return fmt.Sprintf("%q", o.content)
}

func (o output) match(got string) bool {
	if o.partial {
		return strings.Contains(got, o.content)
	}
	return got == o.content
}

// ThatPrelude returns a new Case with the given CLI arguments.
func ThatPrelude(args ...string) Case {
	return Case{args: append([]string{"prelude"}, args...)}
}

// WithStdin returns an altered Case that feeds the given string to the
// program's standard input.
func (c Case) WithStdin(s string) Case {
	c.stdin = s
	return c
}

// DoesNothing returns the Case unchanged. It is useful to mark tests that
// otherwise don't have any expectations.
func (c Case) DoesNothing() Case {
	return c
}

// ExitsWith returns an altered Case that requires the program run to return
// with the given exit code.
func (c Case) ExitsWith(code int) Case {
	c.want.exit = code
	return c
}

// WritesStdout returns an altered Case that requires the program run to
// produce exactly the given text in the stdout.
func (c Case) WritesStdout(s string) Case {
	c.want.stdout = output{content: s}
	return c
}

// WritesStdoutContaining returns an altered Case that requires the program
// run to produce output in the stdout that contains the given text.
func (c Case) WritesStdoutContaining(s string) Case {
	c.want.stdout = output{content: s, partial: true}
	return c
}

// WritesStderr returns an altered Case that requires the program run to
// produce exactly the given text in the stderr.
func (c Case) WritesStderr(s string) Case {
	c.want.stderr = output{content: s}
	return c
}

// WritesStderrContaining returns an altered Case that requires the program
// run to produce output in the stderr that contains the given text.
func (c Case) WritesStderrContaining(s string) Case {
	c.want.stderr = output{content: s, partial: true}
	return c
}

// Test runs test cases against a given program.
func Test(t *testing.T, p prog.Program, cases ...Case) {
	t.Helper()
	for _, c := range cases {
		t.Run(strings.Join(c.args[1:], " "), func(t *testing.T) {
			t.Helper()
			r := run(p, c.args, c.stdin)
			if r.exit != c.want.exit {
				t.Errorf("got exit code %v, want %v", r.exit, c.want.exit)
			}
			if !c.want.stdout.match(r.stdout) {
				t.Errorf("got stdout %q, want %s", r.stdout, c.want.stdout)
			}
			if !c.want.stderr.match(r.stderr) {
				t.Errorf("got stderr %q, want %s", r.stderr, c.want.stderr)
			}
		})
	}
}

type runResult struct {
	exit   int
	stdout string
	stderr string
}

func run(p prog.Program, args []string, stdin string) runResult {
	r0, w0 := must.OK2(os.Pipe())
	r1, w1 := must.OK2(os.Pipe())
	r2, w2 := must.OK2(os.Pipe())

	// Write stdin and read the outputs concurrently with the program, so
	// that writes larger than the pipe buffer don't deadlock.
	var wg sync.WaitGroup
	wg.Add(3)
	go func() {
		defer wg.Done()
		defer w0.Close()
		w0.WriteString(stdin)
	}()
	var stdout, stderr string
	go func() {
		defer wg.Done()
		stdout = string(must.OK1(io.ReadAll(r1)))
	}()
	go func() {
		defer wg.Done()
		stderr = string(must.OK1(io.ReadAll(r2)))
	}()

	exit := prog.Run([3]*os.File{r0, w1, w2}, args, p)
	w1.Close()
	w2.Close()
	wg.Wait()
	r0.Close()
	r1.Close()
	r2.Close()
	return runResult{exit, stdout, stderr}
}
