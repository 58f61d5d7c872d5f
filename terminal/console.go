package terminal

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/brettbedarf/netnode"
	"github.com/mattn/go-isatty"
)

// Erase sequences for interactive displays only
const (
	eraseLine   = "\033[2K\r"
	eraseScreen = "\033[H\033[2J"
)

// StreamConsole implements [netnode.Console] over a reader and a writer.
// When not interactive (piped input, tests) prompts, erasing and pauses are
// skipped so the output is plain lines.
type StreamConsole struct {
	scanner     *bufio.Scanner
	out         io.Writer
	interactive bool
}

var _ netnode.Console = (*StreamConsole)(nil)

func NewStreamConsole(in io.Reader, out io.Writer, interactive bool) *StreamConsole {
	return &StreamConsole{
		scanner:     bufio.NewScanner(in),
		out:         out,
		interactive: interactive,
	}
}

// IsInteractive reports whether f is attached to a terminal
func IsInteractive(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Interactive reports whether prompts and pauses are shown
func (c *StreamConsole) Interactive() bool {
	return c.interactive
}

func (c *StreamConsole) ReadLine() (string, error) {
	if !c.scanner.Scan() {
		if err := c.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSuffix(c.scanner.Text(), "\r"), nil
}

func (c *StreamConsole) Println(line string) {
	fmt.Fprintln(c.out, line)
}

func (c *StreamConsole) Prompt(text string) {
	if c.interactive {
		fmt.Fprint(c.out, text)
	}
}

func (c *StreamConsole) ClearLine() {
	if c.interactive {
		fmt.Fprint(c.out, eraseLine)
	}
}

func (c *StreamConsole) Clear() {
	if c.interactive {
		fmt.Fprint(c.out, eraseScreen)
	}
}

func (c *StreamConsole) Pause(d time.Duration) {
	if c.interactive && d > 0 {
		time.Sleep(d)
	}
}
