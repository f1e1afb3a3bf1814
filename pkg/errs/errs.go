// Package errs declares the error types used across the prelude packages.
//
// Errors are plain comparable values; call sites construct them with the
// relevant fields and callers match them with errors.As or value equality.
package errs

import "strconv"

// EmptyList is returned by list accessors that require a non-empty list
// (head, tail, last, init) when given an empty one. Op names the failing
// accessor.
type EmptyList struct {
	Op string
}

func (e EmptyList) Error() string {
	return e.Op + ": empty list"
}

// OutOfRange is returned when a value used as an index is out of its valid
// range. ValidLow > ValidHigh means there is no valid value at all, which
// happens when indexing an empty list.
type OutOfRange struct {
	What      string
	ValidLow  int
	ValidHigh int
	Actual    string
}

func (e OutOfRange) Error() string {
	if e.ValidLow > e.ValidHigh {
		return "out of range: " + e.What +
			" has no valid value, but is " + e.Actual
	}
	return "out of range: " + e.What +
		" must be from " + strconv.Itoa(e.ValidLow) +
		" to " + strconv.Itoa(e.ValidHigh) +
		", but is " + e.Actual
}
