package security

import (
	"fmt"

	"github.com/brettbedarf/netnode"
	"github.com/brettbedarf/netnode/challenge"
	"github.com/brettbedarf/netnode/filesystem"
	"github.com/brettbedarf/netnode/internal/util"
)

// Gate performs the unlock transitions. The challenges only report an
// outcome; Gate is the single place that mutates sealed flags.
type Gate struct {
	lock  challenge.Challenge // gates Locked → Unlocked
	crypt challenge.Challenge // gates Encrypted → Plain
}

func NewGate(lock, crypt challenge.Challenge) *Gate {
	return &Gate{lock: lock, crypt: crypt}
}

// Hack plays the lock challenge for a locked directory and unlocks it on
// success. A nil, unlocked or non-directory target yields
// [netnode.ErrNotApplicable] without playing; a lost challenge yields
// [netnode.ErrChallengeFailed] and leaves the directory locked.
func (g *Gate) Hack(n *filesystem.Node, console netnode.Console) error {
	if n == nil || StateOf(n) != Locked {
		return fmt.Errorf("%w: not a locked directory", netnode.ErrNotApplicable)
	}
	return g.attempt(n, g.lock, Unlocked, console)
}

// Decrypt is [Gate.Hack] for encrypted files and the decrypt challenge.
func (g *Gate) Decrypt(n *filesystem.Node, console netnode.Console) error {
	if n == nil || StateOf(n) != Encrypted {
		return fmt.Errorf("%w: not an encrypted file", netnode.ErrNotApplicable)
	}
	return g.attempt(n, g.crypt, Plain, console)
}

func (g *Gate) attempt(n *filesystem.Node, c challenge.Challenge, to State, console netnode.Console) error {
	logger := util.GetLogger("Security.Gate")

	from := StateOf(n)
	if !c.Play(console) {
		logger.Info().
			Str("path", n.Path()).
			Stringer("kind", n.Kind()).
			Str("challenge", c.Name()).
			Str("state", from.String()).
			Msg("Challenge failed")
		return fmt.Errorf("%w: %s", netnode.ErrChallengeFailed, c.Name())
	}
	n.Unseal()
	logger.Info().
		Str("path", n.Path()).
		Str("uuid", n.UUID()).
		Str("from", from.String()).
		Str("to", to.String()).
		Msg("Security transition")
	return nil
}
