package network

import "errors"

// ErrUnknownAddress is returned when a walk starts at an address that was
// never inserted into the arena.
var ErrUnknownAddress = errors.New("unknown address")

// ErrUnknownParent is returned when an insertion names a parent address that
// is not present in the arena. The insertion is rejected; nothing is stored.
var ErrUnknownParent = errors.New("unknown parent address")

// ErrDanglingLink is returned when a parent edge in the topology index points
// at an address with no corresponding node in the arena.
var ErrDanglingLink = errors.New("dangling parent link")
