package grid

import (
	"fmt"

	"github.com/aretw0/netgrid/pkg/domain"
	"github.com/aretw0/netgrid/pkg/network"
)

// System pairs a device arena with the handles of its well-known devices.
type System struct {
	// Net owns every device in the grid.
	Net *network.Network[domain.Device]

	// Mainframe is the address of the first mainframe, zero if none.
	Mainframe network.Address
	// Terminal is the address of the first terminal, zero if none.
	Terminal network.Address
}

// NewSystem builds the default startup grid: a mainframe "main" pinned at
// address 1 as root, a relay "net3" with an allocated address attached to the
// root, and a terminal "term1" pinned at address 2 under the relay.
func NewSystem() *System {
	b := NewBuilder()
	b.Add(domain.KindMainframe, "main").At(1)
	b.Add(domain.KindRelay, "net3")
	b.Add(domain.KindTerminal, "term1").At(2).Under("net3")

	sys, err := b.Build()
	if err != nil {
		// The fixed topology cannot name an unknown parent or kind.
		panic(fmt.Sprintf("grid: default system: %v", err))
	}
	return sys
}

// DeviceAt returns the device stored under addr, with its Addr field set to
// the arena handle it actually lives under.
func (s *System) DeviceAt(addr network.Address) (domain.Device, bool) {
	dev, ok := s.Net.Node(addr)
	if !ok {
		return domain.Device{}, false
	}
	dev.Addr = addr
	return dev, true
}

// Devices lists every device in the grid in ascending address order.
func (s *System) Devices() []domain.Device {
	addrs := s.Net.Addresses()
	devices := make([]domain.Device, 0, len(addrs))
	for _, addr := range addrs {
		if dev, ok := s.DeviceAt(addr); ok {
			devices = append(devices, dev)
		}
	}
	return devices
}

// DevicePath derives the root-to-device identifier path for addr by walking
// the arena's parent chain. Dangling topology edges surface as
// network.ErrDanglingLink rather than a truncated path.
func (s *System) DevicePath(addr network.Address) (domain.DevicePath, error) {
	chain, err := s.Net.Path(addr)
	if err != nil {
		return domain.DevicePath{}, err
	}

	segments := make([]string, 0, len(chain))
	for _, a := range chain {
		dev, ok := s.Net.Node(a)
		if !ok {
			// Path already validated every address in the chain.
			return domain.DevicePath{}, fmt.Errorf("device at %s: %w", a, network.ErrUnknownAddress)
		}
		segments = append(segments, dev.ID)
	}
	return domain.DevicePath{Segments: segments}, nil
}
