package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/aretw0/netgrid/pkg/grid"
)

// NewRenderer returns a function that renders markdown using glamour.
// It auto-detects the terminal background for styling.
func NewRenderer() func(string) (string, error) {
	r, _ := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
	)

	return func(markdown string) (string, error) {
		return r.Render(markdown)
	}
}

// StatusReport builds a markdown report of the grid topology: one table row
// per device with its kind, address and derived path.
func StatusReport(sys *grid.System) (string, error) {
	var b strings.Builder
	b.WriteString("# Grid Status\n\n")
	fmt.Fprintf(&b, "%d device(s) online.\n\n", sys.Net.Len())
	b.WriteString("| Address | Kind | ID | Path |\n")
	b.WriteString("|---------|------|----|------|\n")

	for _, dev := range sys.Devices() {
		path, err := sys.DevicePath(dev.Addr)
		if err != nil {
			return "", fmt.Errorf("report for %s: %w", dev.Addr, err)
		}
		fmt.Fprintf(&b, "| %d | %s | %s | `%s` |\n", uint16(dev.Addr), dev.Kind, dev.ID, path)
	}
	return b.String(), nil
}

// RenderStatus produces the glamour-rendered status report.
func RenderStatus(sys *grid.System) (string, error) {
	report, err := StatusReport(sys)
	if err != nil {
		return "", err
	}
	return NewRenderer()(report)
}
