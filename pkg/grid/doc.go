// Package grid assembles device networks. It provides a fluent Builder for
// declaring topologies, the System aggregate that pairs the arena with its
// well-known devices, and derivation of hierarchical device paths.
//
// The fixed startup topology (one mainframe, one relay, one terminal) is
// configuration, not arena logic; it lives here in NewSystem rather than
// inside pkg/network.
package grid
