package challenge

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/puzpuzpuz/xsync/v4"
)

// Params carries the tunables every built-in challenge may read
type Params struct {
	SequenceLength int
	RevealDelay    time.Duration
	OperandMin     int
	OperandMax     int
}

// Factory creates a challenge drawing from src
type Factory func(src Source, p Params) Challenge

// Registry maps challenge names to factories so the gate's challenges can be
// chosen by configuration.
type Registry struct {
	factories *xsync.Map[string, Factory]
}

func NewRegistry() *Registry {
	return &Registry{factories: xsync.NewMap[string, Factory]()}
}

// Register ties a factory to name. The first registration for a name wins.
func (r *Registry) Register(name string, f Factory) {
	r.factories.LoadOrStore(name, f)
}

// New creates the challenge registered under name
func (r *Registry) New(name string, src Source, p Params) (Challenge, error) {
	f, ok := r.factories.Load(name)
	if !ok {
		return nil, fmt.Errorf("no challenge registered as %q (known: %s)", name, strings.Join(r.Names(), ", "))
	}
	return f(src, p), nil
}

// Names lists registered challenge names, sorted
func (r *Registry) Names() []string {
	names := make([]string, 0, r.factories.Size())
	r.factories.Range(func(name string, _ Factory) bool {
		names = append(names, name)
		return true
	})
	slices.Sort(names)
	return names
}
