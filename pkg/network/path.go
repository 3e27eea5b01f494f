package network

import "fmt"

// Path returns the address chain from the root down to addr, inclusive.
//
// The walk collects addresses child-to-root along parent links and reverses
// the result. A parent edge pointing at an address with no stored node makes
// the walk fail with ErrDanglingLink; a truncated path is never returned.
func (n *Network[N]) Path(addr Address) ([]Address, error) {
	if _, ok := n.nodes[addr]; !ok {
		return nil, fmt.Errorf("path from %s: %w", addr, ErrUnknownAddress)
	}

	chain := []Address{addr}
	current := addr
	for {
		p, ok := n.parent[current]
		if !ok {
			break
		}
		if _, ok := n.nodes[p]; !ok {
			return nil, fmt.Errorf("path from %s: parent %s of %s: %w", addr, p, current, ErrDanglingLink)
		}
		chain = append(chain, p)
		current = p
	}

	for i, j := 0, len(chain)-1; i < j; i, j = i+1, j-1 {
		chain[i], chain[j] = chain[j], chain[i]
	}
	return chain, nil
}
