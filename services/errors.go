package services

import (
	"errors"
	"fmt"
)

// Not-found sentinels, mapped to 404 by the controllers.
var (
	ErrGuestNotFound = errors.New("guest_not_found")
	ErrRoomNotFound  = errors.New("room_not_found")
)

// PersistenceError wraps a storage-layer failure. The surrounding transaction
// guarantees no partial state is visible; the caller may retry.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence: %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }
