package netnode

import "errors"

// Sentinel errors. Core operations wrap these with context and the
// interpreter turns them into a single output line.
var (
	ErrNotFound            = errors.New("not found")
	ErrWrongType           = errors.New("wrong node type")
	ErrAccessDenied        = errors.New("access denied")
	ErrChallengeFailed     = errors.New("challenge failed")
	ErrUnrecognizedCommand = errors.New("unrecognized command")
	ErrMalformedInput      = errors.New("malformed numeric input")
	ErrNotApplicable       = errors.New("not applicable")
	ErrInvalidWorld        = errors.New("invalid world definition")
)

// Code is a machine-readable error code used in structured logs.
type Code string

const (
	CodeUnknown                Code = "UNKNOWN"
	CodeNotFound               Code = "NOT_FOUND"
	CodeWrongType              Code = "WRONG_TYPE"
	CodeAccessDenied           Code = "ACCESS_DENIED"
	CodeChallengeFailed        Code = "CHALLENGE_FAILED"
	CodeUnrecognizedCommand    Code = "UNRECOGNIZED_COMMAND"
	CodeMalformedNumericInput  Code = "MALFORMED_NUMERIC_INPUT"
	CodeNotApplicable          Code = "NOT_APPLICABLE"
	CodeInvalidWorldDefinition Code = "INVALID_WORLD_DEFINITION"
)

var codes = []struct {
	err  error
	code Code
}{
	// malformed input is also a failed challenge; check it first
	{ErrMalformedInput, CodeMalformedNumericInput},
	{ErrNotFound, CodeNotFound},
	{ErrWrongType, CodeWrongType},
	{ErrAccessDenied, CodeAccessDenied},
	{ErrChallengeFailed, CodeChallengeFailed},
	{ErrUnrecognizedCommand, CodeUnrecognizedCommand},
	{ErrNotApplicable, CodeNotApplicable},
	{ErrInvalidWorld, CodeInvalidWorldDefinition},
}

// CodeOf returns the Code of the first sentinel err wraps, or CodeUnknown.
func CodeOf(err error) Code {
	for _, c := range codes {
		if errors.Is(err, c.err) {
			return c.code
		}
	}
	return CodeUnknown
}
