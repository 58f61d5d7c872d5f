package mocks

import (
	"io"
	"strings"
	"time"

	"github.com/brettbedarf/netnode"
	"github.com/stretchr/testify/mock"
)

// MockConsole implements netnode.Console for testing across packages
type MockConsole struct {
	mock.Mock
}

func (m *MockConsole) ReadLine() (string, error) {
	args := m.Called()
	return args.String(0), args.Error(1)
}

func (m *MockConsole) Println(line string) { m.Called(line) }

func (m *MockConsole) Prompt(text string) { m.Called(text) }

func (m *MockConsole) ClearLine() { m.Called() }

func (m *MockConsole) Clear() { m.Called() }

func (m *MockConsole) Pause(d time.Duration) { m.Called(d) }

var _ netnode.Console = (*MockConsole)(nil)

// ScriptConsole is an in-memory netnode.Console fed from scripted input lines.
// Output lines are captured in order; prompts are recorded separately.
type ScriptConsole struct {
	input   []string
	Lines   []string        // Lines written with Println
	Prompts []string        // Texts written with Prompt
	Pauses  []time.Duration // Requested pauses; never slept
	Clears  int             // Clear calls
}

var _ netnode.Console = (*ScriptConsole)(nil)

// NewScriptConsole creates a console that answers ReadLine with input in order
// and then io.EOF.
func NewScriptConsole(input ...string) *ScriptConsole {
	return &ScriptConsole{input: input}
}

// Feed appends more scripted input lines
func (c *ScriptConsole) Feed(lines ...string) {
	c.input = append(c.input, lines...)
}

func (c *ScriptConsole) ReadLine() (string, error) {
	if len(c.input) == 0 {
		return "", io.EOF
	}
	line := c.input[0]
	c.input = c.input[1:]
	return line, nil
}

func (c *ScriptConsole) Println(line string) { c.Lines = append(c.Lines, line) }

func (c *ScriptConsole) Prompt(text string) { c.Prompts = append(c.Prompts, text) }

func (c *ScriptConsole) ClearLine() {}

func (c *ScriptConsole) Clear() { c.Clears++ }

func (c *ScriptConsole) Pause(d time.Duration) { c.Pauses = append(c.Pauses, d) }

// Output returns captured lines joined by newlines
func (c *ScriptConsole) Output() string {
	return strings.Join(c.Lines, "\n")
}

// Reset drops captured output, keeping pending input
func (c *ScriptConsole) Reset() {
	c.Lines, c.Prompts, c.Pauses, c.Clears = nil, nil, nil, 0
}

// Remaining returns the number of unread input lines
func (c *ScriptConsole) Remaining() int {
	return len(c.input)
}
