package network

import (
	"fmt"
	"math"
)

// counterStart is the allocator's initial value. Handles below it stay free
// for well-known fixed addresses and the zero sentinel.
const counterStart = 1000

// counter mints unique, strictly increasing addresses for one arena instance.
// Not safe for concurrent use, like the arena that owns it.
type counter struct {
	value uint16
}

func newCounter() counter {
	return counter{value: counterStart}
}

// next returns a fresh address, strictly greater than every address returned
// before it. Exhausting the uint16 space is an invariant violation, not a
// recoverable condition, so it panics.
func (c *counter) next() Address {
	if c.value == math.MaxUint16 {
		panic(fmt.Sprintf("network: address space exhausted at %d", c.value))
	}
	c.value++
	return Address(c.value)
}
