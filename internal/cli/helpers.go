package cli

import (
	"fmt"
	"log/slog"
	"os"

	"golang.org/x/term"

	"github.com/aretw0/netgrid/internal/logging"
	"github.com/aretw0/netgrid/pkg/config"
	"github.com/aretw0/netgrid/pkg/grid"
)

// createLogger configures the application logger.
// In debug mode it writes to Stderr, keeping Stdout clean for the console UI.
func createLogger(debug bool) *slog.Logger {
	if debug {
		return logging.New(slog.LevelDebug)
	}
	return logging.NewNop()
}

// printSystemMessage prints a standardized system message to stdout.
func printSystemMessage(format string, args ...any) {
	fmt.Printf(">>> %s\n", fmt.Sprintf(format, args...))
}

// loadSystem builds the grid from the config file at path, or the built-in
// default topology when path is empty.
func loadSystem(path string) (*grid.System, *config.Config, error) {
	cfg := config.Default()
	if path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return nil, nil, err
		}
		cfg = loaded
	}

	sys, err := cfg.Build()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to build topology: %w", err)
	}
	return sys, cfg, nil
}

// terminalSize probes the attached terminal, falling back to 80x24 when
// stdout is not a TTY.
func terminalSize() (width, height int) {
	width, height = 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 && h > 0 {
		width, height = w, h
	}
	return width, height
}
