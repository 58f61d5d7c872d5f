package requests

import (
	"github.com/brettbedarf/netnode"
)

// WorldDTO is the JSON/YAML representation of [netnode.World]
type WorldDTO struct {
	Name          string           `json:"name" yaml:"name"`
	VictoryMarker string           `json:"victory_marker,omitempty" yaml:"victory_marker,omitempty"`
	Nodes         []NodeRequestDTO `json:"nodes" yaml:"nodes"`
}

// NodeRequestDTO is the JSON/YAML representation of one node request.
//
// Fields by "type":
//
//	dir:  locked
//	file: content, encrypted
type NodeRequestDTO struct {
	Path      string                        `json:"path" yaml:"path"`
	Type      netnode.NodeCreateRequestType `json:"type" yaml:"type"`
	UUID      *string                       `json:"uuid,omitempty" yaml:"uuid,omitempty"` // Optional; defaults to a new UUID
	Content   *string                       `json:"content,omitempty" yaml:"content,omitempty"`
	Locked    *bool                         `json:"locked,omitempty" yaml:"locked,omitempty"`
	Encrypted *bool                         `json:"encrypted,omitempty" yaml:"encrypted,omitempty"`
}
