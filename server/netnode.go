package server

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/brettbedarf/netnode"
	"github.com/brettbedarf/netnode/challenge"
	"github.com/brettbedarf/netnode/config"
	"github.com/brettbedarf/netnode/filesystem"
	"github.com/brettbedarf/netnode/internal/util"
	"github.com/brettbedarf/netnode/security"
	"github.com/brettbedarf/netnode/terminal"
)

var banner = []string{
	"====================================================",
	"   NEURAL-LINK TERMINAL v4.2.0 - SECURE ACCESS      ",
	"====================================================",
	"Type 'help' for a list of commands.",
}

// NetNode holds a validated world and serves interactive sessions over it.
// Every session gets its own tree built from the world, so unlocks made in
// one session never leak into another.
type NetNode struct {
	cfg        *config.Config
	world      *netnode.World
	challenges *challenge.Registry
	seed       int64        // Seed of the first session
	sessions   atomic.Int64 // Sessions started so far
}

// New validates world by building it once. A nil cfg.Seed draws a fresh
// seed; any set value, zero included, is used as is.
func New(cfg *config.Config, world *netnode.World) (*NetNode, error) {
	logger := util.GetLogger("Server")

	fs, err := filesystem.Build(world)
	if err != nil {
		return nil, fmt.Errorf("build world %q: %w", world.Name, err)
	}
	var seed int64
	if cfg.Seed != nil {
		seed = *cfg.Seed
	} else if seed, err = challenge.NewSeed(); err != nil {
		return nil, fmt.Errorf("draw seed: %w", err)
	}
	logger.Info().
		Str("world", world.Name).
		Int("nodes", fs.Len()).
		Int64("seed", seed).
		Msg("World loaded")

	n := &NetNode{
		cfg:        cfg,
		world:      world,
		challenges: challenge.Builtins(),
		seed:       seed,
	}
	// Surface unknown challenge names at startup rather than per session
	if _, err := n.newGate(challenge.NewSource(seed)); err != nil {
		return nil, err
	}
	return n, nil
}

// Seed returns the seed of the first session's challenge generator
func (n *NetNode) Seed() int64 {
	return n.seed
}

// sessionSeed returns the configured seed for the first session and a
// fresh one for every later session.
func (n *NetNode) sessionSeed() (int64, error) {
	if n.sessions.Add(1) == 1 {
		return n.seed, nil
	}
	return challenge.NewSeed()
}

func (n *NetNode) newGate(src challenge.Source) (*security.Gate, error) {
	params := challenge.Params{
		SequenceLength: n.cfg.SequenceLength,
		RevealDelay:    n.cfg.RevealDelay,
		OperandMin:     n.cfg.OperandMin,
		OperandMax:     n.cfg.OperandMax,
	}
	lock, err := n.challenges.New(n.cfg.LockChallenge, src, params)
	if err != nil {
		return nil, fmt.Errorf("lock challenge: %w", err)
	}
	crypt, err := n.challenges.New(n.cfg.CryptChallenge, src, params)
	if err != nil {
		return nil, fmt.Errorf("crypt challenge: %w", err)
	}
	return security.NewGate(lock, crypt), nil
}

// NewInterpreter starts a session on a fresh tree and wires the challenges
// and the gate to console. Both challenges draw from one generator, so the
// session seed fixes every challenge of the session in order of play.
func (n *NetNode) NewInterpreter(console netnode.Console) (*terminal.Interpreter, error) {
	logger := util.GetLogger("Server")

	fs, err := filesystem.Build(n.world)
	if err != nil {
		return nil, fmt.Errorf("build world %q: %w", n.world.Name, err)
	}
	seed, err := n.sessionSeed()
	if err != nil {
		return nil, fmt.Errorf("draw session seed: %w", err)
	}
	gate, err := n.newGate(challenge.NewSource(seed))
	if err != nil {
		return nil, err
	}
	in := terminal.NewInterpreter(terminal.NewSession(fs), gate, console, terminal.Options{
		PromptOptions: n.cfg.PromptOptions,
		VictoryMarker: n.world.VictoryMarker,
	})
	logger.Debug().Str("session", in.Session().ID).Int64("seed", seed).Msg("Session created")
	return in, nil
}

// Serve prints the banner and runs one session on console until exit,
// end of input or ctx is done.
func (n *NetNode) Serve(ctx context.Context, console netnode.Console) error {
	logger := util.GetLogger("Server")

	in, err := n.NewInterpreter(console)
	if err != nil {
		return err
	}
	logger.Debug().Str("session", in.Session().ID).Msg("Session started")
	if n.cfg.Banner {
		for _, line := range banner {
			console.Println(line)
		}
	}
	if err := in.Run(ctx); err != nil {
		return err
	}
	logger.Debug().Str("session", in.Session().ID).Msg("Session closed")
	return nil
}

// ServeAsync runs [NetNode.Serve] in a goroutine and reports its result.
func (n *NetNode) ServeAsync(ctx context.Context, console netnode.Console) <-chan error {
	done := make(chan error, 1)

	go func() {
		done <- n.Serve(ctx, console)
		close(done)
	}()

	return done
}
