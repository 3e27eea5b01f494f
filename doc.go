/*
Package netgrid is an addressable device network: a generic tree arena that
hands out stable integer handles for inserted nodes, tracks parent/child
topology, and derives hierarchical root-to-device paths on demand.

The repository is layered hexagonally. The arena (pkg/network) knows nothing
about devices; the device model (pkg/domain) and grid assembly (pkg/grid) sit
on top of it; consoles, config loading and the HTTP inspection API consume the
grid only through its public read and insert operations.

# Concept

Every inserted node gets an Address, unique for the arena's lifetime. Callers
hold addresses, never node references, so the arena stays the single owner of
node lifetime and the tree can be rewired-free by construction: a parent must
already exist when its child is inserted, and parents are never rewritten.

# Usage

Build the default grid and derive a device path:

	package main

	import (
		"fmt"
		"log"

		"github.com/aretw0/netgrid"
	)

	func main() {
		sys := netgrid.NewSystem()

		path, err := sys.DevicePath(sys.Terminal)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println(path) // main/net3/term1
	}

Custom topologies come from the fluent builder (pkg/grid) or a YAML file
(pkg/config). The character transport between devices and consoles is a
bounded channel of fixed-size packets; see pkg/console.
*/
package netgrid
