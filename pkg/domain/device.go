package domain

import "github.com/aretw0/netgrid/pkg/network"

// Kind constants enumerate the closed set of device kinds.
const (
	// KindMainframe is the central unit; by convention the root of a grid.
	KindMainframe = "mainframe"
	// KindRelay is an intermediate network node that devices hang off.
	KindRelay = "relay"
	// KindTerminal is an end-user console device.
	KindTerminal = "terminal"
)

// Device represents a participant in the device network. The Kind tag
// discriminates the closed set of variants; every variant shares the same
// capability surface (an identifier and an arena address).
type Device struct {
	Kind string          `json:"kind" yaml:"kind" mapstructure:"kind"`
	ID   string          `json:"id" yaml:"id" mapstructure:"id"`
	Addr network.Address `json:"address" yaml:"address" mapstructure:"address"`
}

// NewMainframe builds a central-unit device.
func NewMainframe(id string, addr network.Address) Device {
	return Device{Kind: KindMainframe, ID: id, Addr: addr}
}

// NewRelay builds a network relay device.
func NewRelay(id string, addr network.Address) Device {
	return Device{Kind: KindRelay, ID: id, Addr: addr}
}

// NewTerminal builds a terminal device.
func NewTerminal(id string, addr network.Address) Device {
	return Device{Kind: KindTerminal, ID: id, Addr: addr}
}

// ValidKind reports whether kind names one of the known device kinds.
func ValidKind(kind string) bool {
	switch kind {
	case KindMainframe, KindRelay, KindTerminal:
		return true
	}
	return false
}
