package domain

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when a record or collection lookup misses. It is a
// normal result, never used to abort a request chain.
var ErrNotFound = errors.New("not found")

// PersistenceWarning reports that a mutation succeeded in memory but the
// write-through to durable storage failed. The operation's result is still
// valid; callers decide whether to surface the warning.
type PersistenceWarning struct {
	Key string
	Err error
}

func (w *PersistenceWarning) Error() string {
	return fmt.Sprintf("persistence failed for key %q: %v", w.Key, w.Err)
}

func (w *PersistenceWarning) Unwrap() error { return w.Err }

// IsPersistenceWarning reports whether err is (or wraps) a
// PersistenceWarning.
func IsPersistenceWarning(err error) bool {
	var w *PersistenceWarning
	return errors.As(err, &w)
}
