package cli

import (
	"fmt"
	"time"

	"github.com/aretw0/netgrid/internal/presentation/tui"
	"github.com/aretw0/netgrid/pkg/console"
	"github.com/aretw0/netgrid/pkg/domain"
)

// RunOptions contains the configuration for the 'run' command.
type RunOptions struct {
	ConfigPath string
	Text       string
	Width      int
	Lines      int
	Debug      bool
	NoBanner   bool
}

// Run wires a transmission demo: a producer chunks the text into packets and
// feeds a bounded channel; the console polls it once per tick, never
// blocking, and the final surface is painted when the end marker arrives.
func Run(opts RunOptions) error {
	logger := createLogger(opts.Debug)

	sys, cfg, err := loadSystem(opts.ConfigPath)
	if err != nil {
		return err
	}

	width, lines := opts.Width, opts.Lines
	if width <= 0 {
		width = cfg.Console.Width
	}
	if lines <= 0 {
		lines = cfg.Console.Lines
	}
	if width <= 0 || lines <= 0 {
		w, h := terminalSize()
		if width <= 0 {
			width = w
		}
		if lines <= 0 {
			lines = h - 4
		}
	}

	if !opts.NoBanner {
		tui.PrintBanner()
	}

	from, err := sys.DevicePath(sys.Mainframe)
	if err != nil {
		return fmt.Errorf("sender path: %w", err)
	}
	to, err := sys.DevicePath(sys.Terminal)
	if err != nil {
		return fmt.Errorf("receiver path: %w", err)
	}

	msg := domain.NewDeviceMessage(from, to, opts.Text)
	logger.Debug("transmitting", "from", msg.From.String(), "to", msg.To.String(), "packets", len(msg.Contents))
	printSystemMessage("%s -> %s", msg.From, msg.To)

	// The one producer/consumer boundary: a bounded channel of fixed-size
	// character chunks.
	feed := make(chan domain.Packet, 4)
	go func() {
		for _, p := range msg.Contents {
			feed <- p
		}
	}()

	term := console.New(width)
	term.Attach(feed)

	ticker := time.NewTicker(5 * time.Millisecond)
	defer ticker.Stop()
	for !term.Closed() {
		<-ticker.C
		// One attempted receive per tick; an empty channel is a no-op.
		term.Receive()
	}

	screen := tui.NewScreen(lines)
	fmt.Println(screen.Paint(term))
	return nil
}
