// Package world provides the built-in world definition and loading of
// world definition files.
package world

import (
	_ "embed"

	"github.com/brettbedarf/netnode"
	"github.com/brettbedarf/netnode/requests"
)

//go:embed default.yaml
var defaultWorld []byte

// Default returns a fresh copy of the built-in Neural-Link world.
func Default() (*netnode.World, error) {
	return requests.UnmarshalWorld(defaultWorld, requests.YAMLFormat)
}

// Load returns the world at path, or the built-in world when path is empty.
func Load(path string) (*netnode.World, error) {
	if path == "" {
		return Default()
	}
	return requests.LoadWorldFile(path)
}
