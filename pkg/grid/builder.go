package grid

import (
	"errors"
	"fmt"

	"github.com/aretw0/netgrid/pkg/domain"
	"github.com/aretw0/netgrid/pkg/network"
)

// ErrUnknownDevice is returned when a builder entry names a parent device id
// that was not declared before it.
var ErrUnknownDevice = errors.New("unknown device id")

// Builder manages topology construction. Devices are connected in
// declaration order; a device without a declared parent hangs off the root,
// and the first declared device becomes the root itself.
type Builder struct {
	order []*DeviceBuilder
	byID  map[string]*DeviceBuilder
}

// NewBuilder creates an empty topology builder.
func NewBuilder() *Builder {
	return &Builder{byID: make(map[string]*DeviceBuilder)}
}

// Add declares a device of the given kind. If the id was already declared,
// the existing entry is returned.
func (b *Builder) Add(kind, id string) *DeviceBuilder {
	if db, ok := b.byID[id]; ok {
		return db
	}
	db := &DeviceBuilder{kind: kind, id: id}
	b.byID[id] = db
	b.order = append(b.order, db)
	return db
}

// DeviceBuilder provides a fluent API for configuring one device entry.
type DeviceBuilder struct {
	kind     string
	id       string
	parentID string
	addr     network.Address
	hasAddr  bool
}

// Under attaches the device to the named parent instead of the root.
func (d *DeviceBuilder) Under(parentID string) *DeviceBuilder {
	d.parentID = parentID
	return d
}

// At pins the device to a well-known address instead of an allocated one.
// The caller guarantees the address is not used twice.
func (d *DeviceBuilder) At(addr network.Address) *DeviceBuilder {
	d.addr = addr
	d.hasAddr = true
	return d
}

// Build connects the declared devices into a fresh arena and returns the
// resulting System. Parents must be declared before their children.
func (b *Builder) Build() (*System, error) {
	sys := &System{Net: network.New[domain.Device]()}
	built := make(map[string]network.Address, len(b.order))

	for i, db := range b.order {
		if !domain.ValidKind(db.kind) {
			return nil, fmt.Errorf("device %q: invalid kind %q", db.id, db.kind)
		}

		var parent *network.Address
		switch {
		case db.parentID != "":
			paddr, ok := built[db.parentID]
			if !ok {
				return nil, fmt.Errorf("device %q: parent %q: %w", db.id, db.parentID, ErrUnknownDevice)
			}
			parent = &paddr
		case i > 0:
			root, _ := sys.Net.Root()
			parent = &root
		}

		dev := domain.Device{Kind: db.kind, ID: db.id, Addr: db.addr}
		var (
			addr network.Address
			err  error
		)
		if db.hasAddr {
			addr, err = sys.Net.ConnectWithAddress(dev, db.addr, parent)
		} else {
			addr, err = sys.Net.Connect(dev, parent)
		}
		if err != nil {
			return nil, fmt.Errorf("device %q: %w", db.id, err)
		}
		built[db.id] = addr

		switch db.kind {
		case domain.KindMainframe:
			if sys.Mainframe == 0 {
				sys.Mainframe = addr
			}
		case domain.KindTerminal:
			if sys.Terminal == 0 {
				sys.Terminal = addr
			}
		}
	}
	return sys, nil
}
