package cli

import (
	"fmt"
	"io"

	"github.com/aretw0/netgrid/internal/presentation/tui"
	"github.com/aretw0/netgrid/pkg/grid"
	"github.com/aretw0/netgrid/pkg/network"
)

// Tree prints the device hierarchy of the configured grid to w.
func Tree(w io.Writer, configPath string) error {
	sys, _, err := loadSystem(configPath)
	if err != nil {
		return err
	}

	root, ok := sys.Net.Root()
	if !ok {
		fmt.Fprintln(w, "(empty grid)")
		return nil
	}
	return printSubtree(w, sys, root, "")
}

func printSubtree(w io.Writer, sys *grid.System, addr network.Address, indent string) error {
	dev, ok := sys.DeviceAt(addr)
	if !ok {
		return fmt.Errorf("print tree at %s: %w", addr, network.ErrUnknownAddress)
	}
	fmt.Fprintf(w, "%s%s [%s] %s\n", indent, dev.ID, dev.Kind, dev.Addr)

	children, _ := sys.Net.Children(addr)
	for _, child := range children {
		if err := printSubtree(w, sys, child, indent+"  "); err != nil {
			return err
		}
	}
	return nil
}

// Status renders the glamour-formatted topology report to w.
func Status(w io.Writer, configPath string) error {
	sys, _, err := loadSystem(configPath)
	if err != nil {
		return err
	}

	out, err := tui.RenderStatus(sys)
	if err != nil {
		return err
	}
	fmt.Fprint(w, out)
	return nil
}
