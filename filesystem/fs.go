package filesystem

import (
	"fmt"
	"strings"

	"github.com/brettbedarf/netnode"
	"github.com/brettbedarf/netnode/internal/util"
	"github.com/google/uuid"
	"golang.org/x/text/unicode/norm"
)

// FileSystem owns the resource tree of one session. The shape is fixed once
// [Build] returns; afterwards only sealed flags change.
type FileSystem struct {
	root    *Node // Root of node tree; never locked
	nodeCnt int   // Nodes below the root
}

func NewFS() *FileSystem {
	return &FileSystem{root: NewNode("", uuid.NewString(), newDirInode(false))}
}

// Build constructs the tree from world, applying its requests in order.
// The result is a pure function of the world apart from generated UUIDs.
func Build(world *netnode.World) (*FileSystem, error) {
	logger := util.GetLogger("FS.Build")

	fs := NewFS()
	for i, req := range world.Requests {
		var err error
		switch r := req.(type) {
		case *netnode.DirCreateRequest:
			_, err = fs.AddDirNode(r)
		case *netnode.FileCreateRequest:
			_, err = fs.AddFileNode(r)
		default:
			err = fmt.Errorf("%w: request %d has unknown type %T", netnode.ErrInvalidWorld, i, req)
		}
		if err != nil {
			logger.Error().Err(err).Int("index", i).Str("world", world.Name).Msg("Failed to build world")
			return nil, err
		}
	}
	logger.Debug().Str("world", world.Name).Int("nodes", fs.nodeCnt).Msg("Built world")
	return fs, nil
}

// Root returns the root directory
func (fs *FileSystem) Root() *Node {
	return fs.root
}

// Len returns the number of nodes below the root
func (fs *FileSystem) Len() int {
	return fs.nodeCnt
}

// AddFileNode adds a new file node. It will add any missing directories in
// the path (unlocked) and return the newly created leaf node.
// If a node already exists at the requested path, it will return an error
func (fs *FileSystem) AddFileNode(req *netnode.FileCreateRequest) (*Node, error) {
	logger := util.GetLogger("FS.AddFileNode")

	names, err := splitPath(req.Path)
	if err != nil {
		return nil, err
	}
	parent, err := fs.mkdirAll(names[:len(names)-1])
	if err != nil {
		return nil, fmt.Errorf("%w (path %s)", err, req.Path)
	}

	node := NewNode(names[len(names)-1], nodeUUID(req.UUID), newFileInode(req.Content, req.Encrypted))
	if !parent.AddChild(node) {
		return nil, fmt.Errorf("%w: node already exists at path %s", netnode.ErrInvalidWorld, req.Path)
	}
	fs.nodeCnt++
	logger.Debug().Str("path", node.Path()).Bool("encrypted", node.Encrypted()).Msg("Added new file node")
	return node, nil
}

// AddDirNode adds the directory at the request's path, creating any missing
// ancestors unlocked like `mkdir -p`. Only the leaf takes the requested
// locked state. The leaf itself must not already exist.
func (fs *FileSystem) AddDirNode(req *netnode.DirCreateRequest) (*Node, error) {
	logger := util.GetLogger("FS.AddDirNode")

	names, err := splitPath(req.Path)
	if err != nil {
		return nil, err
	}
	parent, err := fs.mkdirAll(names[:len(names)-1])
	if err != nil {
		return nil, fmt.Errorf("%w (path %s)", err, req.Path)
	}

	node := NewNode(names[len(names)-1], nodeUUID(req.UUID), newDirInode(req.Locked))
	if !parent.AddChild(node) {
		return nil, fmt.Errorf("%w: node already exists at path %s", netnode.ErrInvalidWorld, req.Path)
	}
	fs.nodeCnt++
	logger.Debug().Str("path", node.Path()).Bool("locked", node.Locked()).Msg("Added new dir node")
	return node, nil
}

// mkdirAll walks names from the root and creates every missing directory
func (fs *FileSystem) mkdirAll(names []string) (*Node, error) {
	cur := fs.root
	for _, name := range names {
		child, ok := cur.GetChild(name)
		if !ok {
			child = NewNode(name, uuid.NewString(), newDirInode(false))
			cur.AddChild(child)
			fs.nodeCnt++
		} else if !child.IsDir() {
			return nil, fmt.Errorf("%w: %s is not a directory", netnode.ErrInvalidWorld, child.Path())
		}
		cur = child
	}
	return cur, nil
}

// LookupChild resolves name directly inside dir.
func LookupChild(dir *Node, name string) (*Node, error) {
	if !dir.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", netnode.ErrWrongType, dir.Path())
	}
	if child, ok := dir.GetChild(normalizeName(name)); ok {
		return child, nil
	}
	return nil, fmt.Errorf("%w: %s", netnode.ErrNotFound, name)
}

// splitPath validates a world definition path and returns its components.
// Leading and trailing separators are ignored.
func splitPath(p string) ([]string, error) {
	trimmed := strings.Trim(p, "/")
	if trimmed == "" {
		return nil, fmt.Errorf("%w: empty path %q", netnode.ErrInvalidWorld, p)
	}
	names := strings.Split(trimmed, "/")
	for i, name := range names {
		switch name {
		case "", ".", "..":
			return nil, fmt.Errorf("%w: bad component %q in path %q", netnode.ErrInvalidWorld, name, p)
		}
		names[i] = normalizeName(name)
	}
	return names, nil
}

// normalizeName makes composed and decomposed spellings of a name equal
func normalizeName(name string) string {
	return norm.NFC.String(name)
}

func nodeUUID(id string) string {
	if id == "" {
		return uuid.NewString()
	}
	return id
}
