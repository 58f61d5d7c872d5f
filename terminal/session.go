package terminal

import (
	"fmt"

	"github.com/brettbedarf/netnode"
	"github.com/brettbedarf/netnode/filesystem"
	"github.com/google/uuid"
)

// Session is the runtime navigation state of one interactive run. It points
// into a tree owned by the [filesystem.FileSystem] and never owns nodes.
type Session struct {
	ID  string // Correlates log lines of one run
	fs  *filesystem.FileSystem
	cwd *filesystem.Node
}

// NewSession starts at the root of fs
func NewSession(fs *filesystem.FileSystem) *Session {
	return &Session{
		ID:  uuid.NewString(),
		fs:  fs,
		cwd: fs.Root(),
	}
}

// Cwd returns the current directory
func (s *Session) Cwd() *filesystem.Node {
	return s.cwd
}

// MoveUp moves to the parent directory; a no-op at the root
func (s *Session) MoveUp() {
	if !s.cwd.IsRoot() {
		s.cwd = s.cwd.Parent()
	}
}

// MoveInto replaces the current directory. Access checks are the caller's
// concern; only the node type is enforced here.
func (s *Session) MoveInto(dir *filesystem.Node) error {
	if !dir.IsDir() {
		return fmt.Errorf("%w: %s is not a directory", netnode.ErrWrongType, dir.Name())
	}
	s.cwd = dir
	return nil
}

// CurrentPath returns the absolute path of the current directory
func (s *Session) CurrentPath() string {
	return s.cwd.Path()
}

// Resolve looks name up in the current directory
func (s *Session) Resolve(name string) (*filesystem.Node, error) {
	return filesystem.LookupChild(s.cwd, name)
}
