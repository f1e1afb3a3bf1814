// Package bench implements the prelude demo harness subprogram.
//
// The harness takes two positional arguments n and m. It builds an
// n-element integer list by repeated prepend, performs m rounds of mapping
// the list to float64 and summing it, and prints the resulting scalar. With
// -db, each run is also appended to the run log.
package bench

import (
	"fmt"
	"os"
	"strconv"

	"github.com/mattn/go-isatty"
	"src.prelude.dev/prelude/pkg/list"
	"src.prelude.dev/prelude/pkg/prog"
	"src.prelude.dev/prelude/pkg/store"
)

// Program is the demo harness subprogram.
type Program struct{}

func (Program) Run(fds [3]*os.File, f *prog.Flags, args []string) error {
	if len(args) != 2 {
		return prog.BadUsage("need exactly two arguments: <n> <m>")
	}
	n, err := strconv.Atoi(args[0])
	if err != nil || n < 0 {
		return prog.BadUsage("n must be a non-negative integer")
	}
	m, err := strconv.Atoi(args[1])
	if err != nil || m < 1 {
		return prog.BadUsage("m must be a positive integer")
	}

	result := Sums(n, m)

	if f.DB != "" {
		s, err := store.NewStore(f.DB)
		if err != nil {
			return err
		}
		defer s.Close()
		if _, err := s.AddRun(n, m, result); err != nil {
			return err
		}
	}

	if isatty.IsTerminal(fds[1].Fd()) {
		fmt.Fprintf(fds[1], "sum of [%d..1] over %d rounds = %g\n", n, m, result)
	} else {
		fmt.Fprintf(fds[1], "%g\n", result)
	}
	return nil
}

// Sums builds the list [n, n-1, ..., 1] by repeated prepend, runs m rounds
// of mapping it to float64 and summing, and returns the sum of the last
// round. All lists built along the way are released before returning.
func Sums(n, m int) float64 {
	xs := list.Empty[int]()
	for i := 1; i <= n; i++ {
		ys := list.Cons(i, xs)
		xs.Release()
		xs = ys
	}

	var total float64
	for i := 0; i < m; i++ {
		ys := list.Map(func(x int) float64 { return float64(x) }, xs)
		total = list.Sum(ys)
		ys.Release()
	}
	xs.Release()
	return total
}
