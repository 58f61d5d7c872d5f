// Package challenge implements the single-attempt mini-games that gate
// unlock transitions. Challenges are stateless: every Play draws fresh
// values from the injected [Source] and reads exactly one line.
package challenge

import (
	"github.com/brettbedarf/netnode"
)

// Challenge is one single-attempt mini-game. Play presents the challenge on
// console, reads one answer line and reports whether it was correct. Input
// errors (including end of input) count as a failed attempt.
type Challenge interface {
	Name() string
	Play(console netnode.Console) bool
}
