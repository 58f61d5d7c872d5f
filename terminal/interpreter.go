// Package terminal implements the session navigation state and the line
// based command interpreter that drives it.
package terminal

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/brettbedarf/netnode"
	"github.com/brettbedarf/netnode/config"
	"github.com/brettbedarf/netnode/internal/util"
	"github.com/brettbedarf/netnode/security"
)

const goodbye = "Connection closed. Goodbye, Operator."

// Options configure an [Interpreter]
type Options struct {
	config.PromptOptions
	VictoryMarker string // cat adds a completion notice for content containing it
}

type handler func(in *Interpreter, arg string) bool

// Interpreter parses and dispatches one line at a time. No command fails
// the loop: every error becomes exactly one output line.
type Interpreter struct {
	session  *Session
	gate     *security.Gate
	console  netnode.Console
	opts     Options
	handlers map[string]handler
	logger   util.Logger
}

func NewInterpreter(session *Session, gate *security.Gate, console netnode.Console, opts Options) *Interpreter {
	return &Interpreter{
		session: session,
		gate:    gate,
		console: console,
		opts:    opts,
		handlers: map[string]handler{
			"ls":      (*Interpreter).list,
			"cd":      (*Interpreter).changeDir,
			"cat":     (*Interpreter).readFile,
			"hack":    (*Interpreter).hack,
			"decrypt": (*Interpreter).decrypt,
			"help":    (*Interpreter).help,
			"clear":   (*Interpreter).clear,
			"exit":    (*Interpreter).exit,
		},
		logger: util.GetLogger("Interpreter").With().Str("session", session.ID).Logger(),
	}
}

// Session returns the navigation state the interpreter drives
func (in *Interpreter) Session() *Session {
	return in.session
}

// PromptText renders the prompt for the current directory
func (in *Interpreter) PromptText() string {
	return fmt.Sprintf("%s@%s:%s$ ", in.opts.User, in.opts.Host, in.session.CurrentPath())
}

// Step runs one input line to completion, including any nested challenge,
// and reports whether the loop should continue.
func (in *Interpreter) Step(line string) bool {
	command, arg := Parse(line)
	if command == "" {
		return true
	}
	h, ok := in.handlers[command]
	if !ok {
		err := fmt.Errorf("%w: %s", netnode.ErrUnrecognizedCommand, command)
		in.logger.Debug().Err(err).Str("code", string(netnode.CodeOf(err))).Msg("Unrecognized command")
		in.console.Println("Command not found: " + command)
		return true
	}
	in.logger.Debug().Str("command", command).Str("arg", arg).Str("cwd", in.session.CurrentPath()).Msg("Dispatch")
	return h(in, arg)
}

// Run reads and executes lines until exit, end of input or ctx is done.
// Cancellation is checked between commands only.
func (in *Interpreter) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		in.console.Prompt(in.PromptText())
		line, err := in.console.ReadLine()
		if err != nil {
			if errors.Is(err, io.EOF) {
				in.logger.Debug().Msg("End of input")
				in.console.Println(goodbye)
				return nil
			}
			return fmt.Errorf("read input: %w", err)
		}
		if !in.Step(line) {
			return nil
		}
	}
}

// report logs a recovered command error with its code
func (in *Interpreter) report(command string, err error) {
	in.logger.Debug().Err(err).Str("command", command).Str("code", string(netnode.CodeOf(err))).Msg("Command failed")
}
