// Package console implements a line-buffered text console. Characters arrive
// in fixed-size packets over a bounded channel; the console wraps them into
// lines of a configured width and renders the last N completed lines plus the
// line currently being typed.
package console

import (
	"strings"

	"github.com/aretw0/netgrid/pkg/domain"
)

// Console buffers incoming characters into display lines. It is single-owner:
// one goroutine feeds it, either directly via Push or by polling an attached
// packet channel.
type Console struct {
	previous []string
	current  []rune
	width    int

	source <-chan domain.Packet
	closed bool
}

// New creates a console wrapping lines at width characters.
func New(width int) *Console {
	if width <= 0 {
		width = 80
	}
	return &Console{width: width}
}

// Attach sets the packet channel the console polls in Receive and Drain.
func (c *Console) Attach(source <-chan domain.Packet) {
	c.source = source
}

// Push applies one packet to the buffer. An explicit newline always wraps; a
// character arriving on a full line wraps first and then starts the new line.
// The end-of-stream marker closes the console; packets after it are ignored.
func (c *Console) Push(p domain.Packet) {
	if c.closed {
		return
	}
	if p.End {
		c.closed = true
		return
	}
	for _, r := range p.Runes() {
		if r == '\n' {
			c.newline()
			continue
		}
		if len(c.current) >= c.width {
			c.newline()
		}
		c.current = append(c.current, r)
	}
}

// Receive makes a single non-blocking attempt to read the attached channel
// and applies the packet if one was ready. "No data yet" is the expected
// steady state and reports false, never an error.
func (c *Console) Receive() bool {
	if c.source == nil {
		return false
	}
	select {
	case p, ok := <-c.source:
		if !ok {
			c.closed = true
			return false
		}
		c.Push(p)
		return true
	default:
		return false
	}
}

// Drain applies every packet currently available on the attached channel.
func (c *Console) Drain() {
	for c.Receive() {
	}
}

// Closed reports whether the end-of-stream marker has been seen.
func (c *Console) Closed() bool {
	return c.closed
}

// Lines returns the completed lines, oldest first.
func (c *Console) Lines() []string {
	return c.previous
}

// CurrentLine returns the line being typed.
func (c *Console) CurrentLine() string {
	return string(c.current)
}

// Render produces the display surface: up to maxLines completed lines, oldest
// shown line first, with the in-progress line last.
func (c *Console) Render(maxLines int) string {
	if maxLines < 0 {
		maxLines = 0
	}
	shown := c.previous
	if len(shown) > maxLines {
		shown = shown[len(shown)-maxLines:]
	}

	var b strings.Builder
	for _, line := range shown {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	b.WriteString(string(c.current))
	return b.String()
}

func (c *Console) newline() {
	c.previous = append(c.previous, string(c.current))
	c.current = c.current[:0]
}
