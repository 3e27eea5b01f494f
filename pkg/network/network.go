package network

import (
	"fmt"
	"sort"
)

// Address is an opaque handle identifying a node within one arena instance.
// Addresses are unique for the arena's lifetime and never reused. The zero
// value is a reserved sentinel that is never allocated.
type Address uint16

func (a Address) String() string {
	return fmt.Sprintf("addr(%d)", uint16(a))
}

// Network is the owning arena for a tree of nodes of type N. Nodes are stored
// by address; the parent and children maps form the topology index layered on
// top of the node storage.
type Network[N any] struct {
	counter counter

	// root is set by the first successful insertion and never changes.
	root    Address
	hasRoot bool

	nodes    map[Address]N
	children map[Address][]Address
	parent   map[Address]Address
}

// New creates an empty arena.
func New[N any]() *Network[N] {
	return &Network[N]{
		counter:  newCounter(),
		nodes:    make(map[Address]N),
		children: make(map[Address][]Address),
		parent:   make(map[Address]Address),
	}
}

// Connect inserts node into the arena under a freshly allocated address.
// If parent is non-nil the new node becomes a child of *parent; the parent
// must already exist, otherwise ErrUnknownParent is returned and nothing is
// stored. The first inserted node becomes the root regardless of parent.
func (n *Network[N]) Connect(node N, parent *Address) (Address, error) {
	return n.ConnectWithAddress(node, n.counter.next(), parent)
}

// ConnectWithRoot inserts node, defaulting its parent to the current root.
// On an empty arena it inserts the new root. An explicit parent overrides the
// default.
func (n *Network[N]) ConnectWithRoot(node N, parent *Address) (Address, error) {
	if len(n.nodes) == 0 {
		return n.Connect(node, nil)
	}
	if parent == nil {
		root := n.root
		return n.Connect(node, &root)
	}
	return n.Connect(node, parent)
}

// ConnectWithAddress inserts node under a caller-supplied address, for
// bootstrapping topologies with well-known handles. The caller guarantees the
// address is unused; reusing one silently overwrites the prior node and is a
// caller error, not a validated condition. The parent, when named, must exist.
func (n *Network[N]) ConnectWithAddress(node N, addr Address, parent *Address) (Address, error) {
	if parent != nil {
		if _, ok := n.nodes[*parent]; !ok {
			return 0, fmt.Errorf("connect %s to %s: %w", addr, *parent, ErrUnknownParent)
		}
	}

	n.nodes[addr] = node
	if !n.hasRoot {
		n.root = addr
		n.hasRoot = true
	}

	if parent != nil {
		n.children[*parent] = append(n.children[*parent], addr)
		n.parent[addr] = *parent
	}
	n.children[addr] = []Address{}
	return addr, nil
}

// Node returns the node stored under addr, if any.
func (n *Network[N]) Node(addr Address) (N, bool) {
	node, ok := n.nodes[addr]
	return node, ok
}

// Parent returns the parent of addr. The root, and any address never
// inserted, has none.
func (n *Network[N]) Parent(addr Address) (Address, bool) {
	p, ok := n.parent[addr]
	return p, ok
}

// Children returns the child addresses of addr in insertion order. An
// existing node without children yields an empty, non-nil slice; only a never
// inserted address yields ok == false.
func (n *Network[N]) Children(addr Address) ([]Address, bool) {
	c, ok := n.children[addr]
	return c, ok
}

// Root returns the root address, if the arena is non-empty.
func (n *Network[N]) Root() (Address, bool) {
	return n.root, n.hasRoot
}

// Len reports the number of nodes in the arena.
func (n *Network[N]) Len() int {
	return len(n.nodes)
}

// Addresses returns every inserted address in ascending order. Deterministic
// listing for inspection surfaces.
func (n *Network[N]) Addresses() []Address {
	addrs := make([]Address, 0, len(n.nodes))
	for a := range n.nodes {
		addrs = append(addrs, a)
	}
	sort.Slice(addrs, func(i, j int) bool { return addrs[i] < addrs[j] })
	return addrs
}
