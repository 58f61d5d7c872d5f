// Package security holds the per-resource lock/encryption state machine.
//
// Directories are Locked or Unlocked, files Encrypted or Plain. The only
// transitions are Locked → Unlocked via a won lock challenge and
// Encrypted → Plain via a won crypt challenge; nothing seals a node again.
package security

import "github.com/brettbedarf/netnode"

type State uint8

const (
	Unlocked State = iota + 1
	Locked
	Plain
	Encrypted
)

func (s State) String() string {
	switch s {
	case Unlocked:
		return "unlocked"
	case Locked:
		return "locked"
	case Plain:
		return "plain"
	case Encrypted:
		return "encrypted"
	default:
		return "unknown"
	}
}

// StateOf reads the current state of n
func StateOf(n netnode.NodeInfo) State {
	switch {
	case n.IsDir() && n.Sealed():
		return Locked
	case n.IsDir():
		return Unlocked
	case n.Sealed():
		return Encrypted
	default:
		return Plain
	}
}

// Accessible reports whether n can be entered (directory) or read (file)
func Accessible(n netnode.NodeInfo) bool {
	s := StateOf(n)
	return s == Unlocked || s == Plain
}
