package repositories

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// Record is an opaque blob stored under a key. Version counts committed
// writes; a record that has never been stored has version 0.
type Record struct {
	Version uint64
	Data    []byte
}

type ErrNotFound struct {
	Key uuid.UUID
}

func (e *ErrNotFound) Error() string {
	return fmt.Sprintf("record %s not found", e.Key)
}

func IsNotFound(err error) bool {
	var e *ErrNotFound
	return errors.As(err, &e)
}

// ErrConflict is returned by Store when the record was written by someone
// else since it was loaded.
type ErrConflict struct {
	Key      uuid.UUID
	Expected uint64
	Actual   uint64
}

func (e *ErrConflict) Error() string {
	return fmt.Sprintf("record %s is at version %d, expected %d", e.Key, e.Actual, e.Expected)
}

func IsConflict(err error) bool {
	var e *ErrConflict
	return errors.As(err, &e)
}
