package netnode

import "time"

// NodeRequestor is an interface implemented by all node request types
type NodeRequestor interface {
	GetType() NodeCreateRequestType
	GetPath() string
}

// Console is the display surface and line source the interpreter and the
// challenges talk to. Implementations must not interpret the text they print.
type Console interface {
	// ReadLine blocks until one line of input is available and returns it
	// without the trailing newline. io.EOF signals the end of input.
	ReadLine() (string, error)

	// Println writes one complete output line.
	Println(line string)

	// Prompt writes text that expects input on the same line.
	Prompt(text string)

	// ClearLine erases the current output line (used to hide a revealed sequence)
	ClearLine()

	// Clear wipes the whole display surface
	Clear()

	// Pause blocks for d before returning; scripted consoles may skip it
	Pause(d time.Duration)
}
