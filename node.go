package netnode

// NodeInfo provides read-only access to node information for external consumers
type NodeInfo interface {
	// Name returns the node's name (last path component)
	Name() string

	// UUID returns the node identifier from its world definition request
	UUID() string

	// Path returns the absolute path to the node; "/" for the root
	Path() string

	// IsDir reports whether the node is a Directory
	IsDir() bool

	// Sealed reports whether a Directory is locked or a File is encrypted
	Sealed() bool
}
