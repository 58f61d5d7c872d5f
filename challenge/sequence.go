package challenge

import (
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/brettbedarf/netnode"
	"github.com/brettbedarf/netnode/internal/util"
)

// Sequence is the recall game: memorize length random digits, then type them back.
type Sequence struct {
	src    Source
	length int
	reveal time.Duration // how long the digits stay visible
}

var _ Challenge = (*Sequence)(nil)

func NewSequence(src Source, length int, reveal time.Duration) *Sequence {
	return &Sequence{src: src, length: length, reveal: reveal}
}

func (s *Sequence) Name() string { return "sequence" }

// Generate draws length independent digits in [0,9] and returns them space-joined.
func (s *Sequence) Generate() string {
	digits := make([]string, s.length)
	for i := range digits {
		digits[i] = strconv.Itoa(s.src.IntN(10))
	}
	return strings.Join(digits, " ")
}

func (s *Sequence) Play(console netnode.Console) bool {
	logger := util.GetLogger("Challenge.Sequence")

	sequence := s.Generate()
	console.Println("Memorize this sequence: " + sequence)
	console.Pause(s.reveal)
	console.ClearLine()
	console.Prompt("Enter sequence: ")

	input, err := console.ReadLine()
	if err != nil {
		logger.Debug().Err(err).Msg("No answer read")
		return false
	}
	ok := CheckSequence(sequence, input)
	logger.Debug().Bool("success", ok).Int("length", s.length).Msg("Sequence attempt")
	return ok
}

// CheckSequence reports whether input matches expected once all whitespace is
// removed from both, so "3719", "3 7 1 9" and "3 7 19" all match "3 7 1 9".
func CheckSequence(expected, input string) bool {
	return stripSpace(input) == stripSpace(expected)
}

func stripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}
