package challenge

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/brettbedarf/netnode"
	"github.com/brettbedarf/netnode/internal/util"
)

// Arithmetic asks for the sum of two random operands in [min, max].
type Arithmetic struct {
	src      Source
	min, max int
}

var _ Challenge = (*Arithmetic)(nil)

func NewArithmetic(src Source, minOperand, maxOperand int) *Arithmetic {
	return &Arithmetic{src: src, min: minOperand, max: maxOperand}
}

func (a *Arithmetic) Name() string { return "arithmetic" }

// Generate draws two independent operands uniformly from [min, max].
func (a *Arithmetic) Generate() (int, int) {
	span := a.max - a.min + 1
	x := a.min + a.src.IntN(span)
	y := a.min + a.src.IntN(span)
	return x, y
}

func (a *Arithmetic) Play(console netnode.Console) bool {
	logger := util.GetLogger("Challenge.Arithmetic")

	x, y := a.Generate()
	console.Prompt(fmt.Sprintf("Solve for decryption key: %d + %d = ", x, y))

	input, err := console.ReadLine()
	if err != nil {
		logger.Debug().Err(err).Msg("No answer read")
		return false
	}
	if err := CheckSum(x, y, input); err != nil {
		logger.Debug().Err(err).Str("code", string(netnode.CodeOf(err))).Msg("Arithmetic attempt failed")
		return false
	}
	logger.Debug().Msg("Arithmetic attempt succeeded")
	return true
}

// CheckSum returns nil when input parses as an integer equal to x+y.
// A non-numeric answer is a failed attempt wrapping [netnode.ErrMalformedInput].
func CheckSum(x, y int, input string) error {
	answer, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil {
		return fmt.Errorf("%w: %w: %q", netnode.ErrChallengeFailed, netnode.ErrMalformedInput, input)
	}
	if answer != x+y {
		return fmt.Errorf("%w: got %d", netnode.ErrChallengeFailed, answer)
	}
	return nil
}
