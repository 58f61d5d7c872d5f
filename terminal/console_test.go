package terminal

import (
	"bytes"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStreamConsole_ReadLine(t *testing.T) {
	t.Parallel()

	c := NewStreamConsole(strings.NewReader("ls\r\ncd bin\n\nexit"), io.Discard, false)

	for _, want := range []string{"ls", "cd bin", "", "exit"} {
		line, err := c.ReadLine()
		require.NoError(t, err)
		assert.Equal(t, want, line)
	}
	_, err := c.ReadLine()
	assert.ErrorIs(t, err, io.EOF)
}

func TestStreamConsole_NonInteractive(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	c := NewStreamConsole(strings.NewReader(""), &out, false)

	c.Prompt("user@net-node:/$ ")
	c.ClearLine()
	c.Clear()
	start := time.Now()
	c.Pause(time.Hour)
	c.Println("hello")

	assert.Less(t, time.Since(start), time.Second, "must not pause when not interactive")
	assert.Equal(t, "hello\n", out.String(), "must only write plain lines")
	assert.False(t, c.Interactive())
}

func TestStreamConsole_Interactive(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	c := NewStreamConsole(strings.NewReader(""), &out, true)

	c.Prompt("$ ")
	c.ClearLine()
	c.Println("x")

	assert.Equal(t, "$ "+eraseLine+"x\n", out.String())
}
