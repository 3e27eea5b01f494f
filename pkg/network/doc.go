// Package network implements a generic addressable tree: an arena that owns
// inserted node values, hands out stable integer handles for them, and keeps a
// parent/child topology index alongside the node storage.
//
// The arena is the single source of truth for node lifetime. Callers keep
// addresses, never direct references, for anything that must survive across
// calls. The structure is a strict tree: every non-root node has exactly one
// parent, assigned at insertion and never rewritten, so cycles cannot form.
//
// The arena is designed for single-owner access. It performs no locking and
// no I/O; if shared between goroutines, wrap the whole arena in one mutex.
package network
