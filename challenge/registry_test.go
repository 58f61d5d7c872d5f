package challenge

import (
	"fmt"
	"sync"
	"testing"

	"github.com/brettbedarf/netnode/internal/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedFactory(c Challenge) Factory {
	return func(Source, Params) Challenge { return c }
}

func TestRegistry_Register(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	first := &mocks.MockChallenge{}
	second := &mocks.MockChallenge{}

	r.Register("test", fixedFactory(first))
	r.Register("test", fixedFactory(second))

	c, err := r.New("test", &mocks.FixedSource{Values: []int{0}}, Params{})
	require.NoError(t, err)
	assert.Same(t, first, c, "first registration must win")
	assert.Equal(t, []string{"test"}, r.Names())
}

func TestRegistry_Unknown(t *testing.T) {
	t.Parallel()

	_, err := NewRegistry().New("nope", nil, Params{})
	assert.ErrorContains(t, err, `"nope"`)

	_, err = Builtins().New("chess", nil, Params{})
	assert.ErrorContains(t, err, "known: arithmetic, sequence", "must list the registered names")
}

func TestRegistry_Concurrent(t *testing.T) {
	t.Parallel()
	var wg sync.WaitGroup
	r := NewRegistry()

	for i := range 100 {
		wg.Go(func() {
			name := fmt.Sprintf("test%d", i)
			c := &mocks.MockChallenge{}
			r.Register(name, fixedFactory(c))
			got, err := r.New(name, nil, Params{})
			assert.NoError(t, err)
			assert.Same(t, c, got)
		})
	}
	wg.Wait()
	assert.Len(t, r.Names(), 100)
}

func TestBuiltins(t *testing.T) {
	t.Parallel()

	r := Builtins()
	assert.Equal(t, []string{ArithmeticChallengeType, SequenceChallengeType}, r.Names())

	p := Params{SequenceLength: 3, OperandMin: 10, OperandMax: 29}
	src := &mocks.FixedSource{Values: []int{5}}

	seq, err := r.New(SequenceChallengeType, src, p)
	require.NoError(t, err)
	require.IsType(t, &Sequence{}, seq)
	assert.Equal(t, "5 5 5", seq.(*Sequence).Generate())

	arith, err := r.New(ArithmeticChallengeType, src, p)
	require.NoError(t, err)
	require.IsType(t, &Arithmetic{}, arith)
	x, y := arith.(*Arithmetic).Generate()
	assert.Equal(t, 15, x)
	assert.Equal(t, 15, y)
}

func TestRegisterBuiltins_Subset(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	RegisterBuiltins(r, SequenceChallengeType)
	assert.Equal(t, []string{SequenceChallengeType}, r.Names())
}
