package netgrid

import (
	"github.com/aretw0/netgrid/pkg/console"
	"github.com/aretw0/netgrid/pkg/domain"
	"github.com/aretw0/netgrid/pkg/grid"
	"github.com/aretw0/netgrid/pkg/network"
)

// Version is the current netgrid release.
const Version = "0.1.0"

// Aliases re-exporting the library surface, so embedders can depend on the
// root package alone for common use.
type (
	Address        = network.Address
	Network[N any] = network.Network[N]
	Device         = domain.Device
	DevicePath     = domain.DevicePath
	Packet         = domain.Packet
	DeviceMessage  = domain.DeviceMessage
	System         = grid.System
	Console        = console.Console
)

// Re-exported arena errors.
var (
	ErrUnknownAddress = network.ErrUnknownAddress
	ErrUnknownParent  = network.ErrUnknownParent
	ErrDanglingLink   = network.ErrDanglingLink
)

// NewNetwork creates an empty arena for nodes of type N.
func NewNetwork[N any]() *Network[N] {
	return network.New[N]()
}

// NewSystem builds the default startup grid (mainframe, relay, terminal).
func NewSystem() *System {
	return grid.NewSystem()
}

// NewConsole creates a console wrapping lines at width characters.
func NewConsole(width int) *Console {
	return console.New(width)
}

// ParseDevicePath parses a "/"-delimited device path string.
func ParseDevicePath(s string) DevicePath {
	return domain.ParseDevicePath(s)
}

// PacketsFromString chunks text into transport packets, end marker included.
func PacketsFromString(text string) []Packet {
	return domain.PacketsFromString(text)
}
