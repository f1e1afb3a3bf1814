package store

import (
	"path/filepath"
	"testing"

	"src.prelude.dev/prelude/pkg/must"
)

// MustTempStore returns a Store backed by a file in a temporary directory.
// The store is closed and the directory removed when the test finishes.
func MustTempStore(t *testing.T) Store {
	t.Helper()
	s := must.OK1(NewStore(filepath.Join(t.TempDir(), "db")))
	t.Cleanup(func() { must.OK(s.Close()) })
	return s
}
