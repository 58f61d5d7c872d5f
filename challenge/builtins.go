package challenge

type BuiltInChallengeType = string

const (
	SequenceChallengeType   BuiltInChallengeType = "sequence"
	ArithmeticChallengeType BuiltInChallengeType = "arithmetic"
)

// RegisterBuiltins registers all built-in challenges on r by default
// or only the specific ones if names are provided
func RegisterBuiltins(r *Registry, names ...BuiltInChallengeType) {
	if len(names) == 0 {
		names = append(names, SequenceChallengeType, ArithmeticChallengeType)
	}

	for _, name := range names {
		switch name {
		case SequenceChallengeType:
			r.Register(name, func(src Source, p Params) Challenge {
				return NewSequence(src, p.SequenceLength, p.RevealDelay)
			})
		case ArithmeticChallengeType:
			r.Register(name, func(src Source, p Params) Challenge {
				return NewArithmetic(src, p.OperandMin, p.OperandMax)
			})
		}
	}
}

// Builtins returns a registry holding every built-in challenge
func Builtins() *Registry {
	r := NewRegistry()
	RegisterBuiltins(r)
	return r
}
