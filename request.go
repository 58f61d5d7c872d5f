// Package netnode contains core domain types and interfaces for the netnode
// terminal: world definition requests, read-only node views, the console
// abstraction and the error taxonomy shared by every layer.
package netnode

// NodeRequest has common fields embedded in concrete request types
type NodeRequest struct {
	Path string
	Type NodeCreateRequestType
	UUID string // Optional UUID to identify the node in logs
}

// NodeCreateRequestType valid types are FileNodeType "file", DirNodeType "dir"
type NodeCreateRequestType string

const (
	FileNodeType NodeCreateRequestType = "file"
	DirNodeType  NodeCreateRequestType = "dir"
)

// FileCreateRequest describes a file and its initial security state.
type FileCreateRequest struct {
	NodeRequest
	Content   string
	Encrypted bool
}

// DirCreateRequest describes a directory and its initial security state.
type DirCreateRequest struct {
	NodeRequest
	Locked bool
}

// GetType implements [NodeRequestor]
func (r *FileCreateRequest) GetType() NodeCreateRequestType { return FileNodeType }

// GetPath implements [NodeRequestor]
func (r *FileCreateRequest) GetPath() string { return r.Path }

// GetType implements [NodeRequestor]
func (r *DirCreateRequest) GetType() NodeCreateRequestType { return DirNodeType }

// GetPath implements [NodeRequestor]
func (r *DirCreateRequest) GetPath() string { return r.Path }

// World is the fixed initial configuration of a session's resource tree.
// Requests are applied in order, which is also the listing order.
type World struct {
	Name          string
	VictoryMarker string // cat emits a completion notice for content containing it
	Requests      []NodeRequestor
}
