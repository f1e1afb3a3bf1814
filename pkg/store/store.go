// Package store provides the run log of the bench harness: an append-only
// record of demo runs identified by increasing sequence numbers.
//
// The interface is separate from the bbolt-backed implementation so that
// consumers of the log don't need to depend on the storage details.
package store

import "errors"

// ErrNoSuchRun is the error returned when a Run query completes with no
// result.
var ErrNoSuchRun = errors.New("no matching run")

// Run is an entry in the run log.
type Run struct {
	Seq    int
	N, M   int
	Result float64
}

// Store is an interface satisfied by the run log storage.
type Store interface {
	// NextRunSeq returns the sequence number the next added run will get.
	NextRunSeq() (int, error)
	// AddRun appends a run record and returns its sequence number.
	AddRun(n, m int, result float64) (int, error)
	// Run queries the run with the given sequence number.
	Run(seq int) (Run, error)
	// Runs returns all runs with sequence numbers in [from, upto).
	Runs(from, upto int) ([]Run, error)
	// Close closes the database.
	Close() error
}
