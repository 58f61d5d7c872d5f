package filesystem

import (
	"github.com/brettbedarf/netnode"
	"github.com/puzpuzpuz/xsync/v4"
)

type Node struct {
	name     string                    // Name of the node (last part of the path)
	uuid     string                    // Identifier from the world definition request
	parent   *Node                     // Non-owning; nil only for the root
	order    []string                  // Child names in insertion order
	children *xsync.Map[string, *Node] // Child nodes by name
	*Inode
}

var _ netnode.NodeInfo = (*Node)(nil)

// NewNode creates a detached Node.
//
// NOTE: Parent node is responsible for setting the returned Node's
// parent ref when linking it as its child
func NewNode(name, id string, inode *Inode) *Node {
	node := &Node{
		Inode: inode,
		name:  name,
		uuid:  id,
	}
	if inode.IsDir() {
		node.children = xsync.NewMap[string, *Node]()
	}
	return node
}

// Name returns the node's immutable Name.
func (n *Node) Name() string {
	return n.name
}

// UUID returns the node's identifier
func (n *Node) UUID() string {
	return n.uuid
}

// Parent returns the containing directory; nil for the root
func (n *Node) Parent() *Node {
	return n.parent
}

func (n *Node) IsRoot() bool {
	return n.parent == nil
}

// Path returns the absolute path of the node. The root maps to "/", its
// children to "/name" and deeper nodes to "/parent/name".
func (n *Node) Path() string {
	if n.parent == nil {
		return "/"
	}
	pPath := n.parent.Path()
	if pPath == "/" {
		return pPath + n.name
	}
	return pPath + "/" + n.name
}

// AddChild links child under this directory. It returns false without
// linking when the name is already taken or n is not a directory.
func (n *Node) AddChild(child *Node) bool {
	if !n.IsDir() {
		return false
	}
	if _, loaded := n.children.LoadOrStore(child.name, child); loaded {
		return false
	}
	n.order = append(n.order, child.name)
	child.parent = n
	return true
}

// GetChild returns a child node by name
func (n *Node) GetChild(name string) (child *Node, ok bool) {
	if !n.IsDir() {
		return nil, false
	}
	return n.children.Load(name)
}

// Children returns the child nodes in insertion order in a new slice.
func (n *Node) Children() []*Node {
	children := make([]*Node, 0, len(n.order))
	for _, name := range n.order {
		if ch, ok := n.children.Load(name); ok {
			children = append(children, ch)
		}
	}
	return children
}
