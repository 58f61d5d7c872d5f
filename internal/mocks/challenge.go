package mocks

import (
	"github.com/brettbedarf/netnode"
	"github.com/stretchr/testify/mock"
)

// MockChallenge implements challenge.Challenge for testing across packages
type MockChallenge struct {
	mock.Mock
}

func (m *MockChallenge) Name() string {
	args := m.Called()
	return args.String(0)
}

func (m *MockChallenge) Play(console netnode.Console) bool {
	args := m.Called(console)
	return args.Bool(0)
}

// FixedSource replays Values from a challenge.Source in order, cycling when
// exhausted. Each value is reduced modulo n.
type FixedSource struct {
	Values []int
	next   int
}

func (s *FixedSource) IntN(n int) int {
	v := s.Values[s.next%len(s.Values)]
	s.next++
	return v % n
}

// Calls returns how many values have been drawn
func (s *FixedSource) Calls() int {
	return s.next
}
