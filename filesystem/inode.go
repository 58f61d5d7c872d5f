package filesystem

import (
	"fmt"
	"sync/atomic"

	"github.com/brettbedarf/netnode"
)

// Kind tags the payload an [Inode] carries
type Kind uint8

const (
	DirKind Kind = iota + 1
	FileKind
)

func (k Kind) String() string {
	switch k {
	case DirKind:
		return "dir"
	case FileKind:
		return "file"
	default:
		return "unknown"
	}
}

// Inode is the type-specific payload of a [Node]. Directories use only the
// sealed flag (locked); files carry their content and the sealed flag
// (encrypted).
//
// sealed only ever moves from true to false once the tree is built.
type Inode struct {
	kind    Kind
	content string // File only
	sealed  atomic.Bool
}

func newDirInode(locked bool) *Inode {
	in := &Inode{kind: DirKind}
	in.sealed.Store(locked)
	return in
}

func newFileInode(content string, encrypted bool) *Inode {
	in := &Inode{kind: FileKind, content: content}
	in.sealed.Store(encrypted)
	return in
}

// Kind returns the payload tag
func (in *Inode) Kind() Kind {
	return in.kind
}

func (in *Inode) IsDir() bool {
	return in.kind == DirKind
}

func (in *Inode) IsFile() bool {
	return in.kind == FileKind
}

// Sealed reports whether a Directory is locked or a File is encrypted
func (in *Inode) Sealed() bool {
	return in.sealed.Load()
}

// Locked is true only for a locked Directory
func (in *Inode) Locked() bool {
	return in.kind == DirKind && in.sealed.Load()
}

// Encrypted is true only for an encrypted File
func (in *Inode) Encrypted() bool {
	return in.kind == FileKind && in.sealed.Load()
}

// Unseal clears the sealed flag. It reports whether the flag was set, so
// only the first call for a node counts as a transition.
func (in *Inode) Unseal() bool {
	return in.sealed.CompareAndSwap(true, false)
}

// ReadContent returns the file content when it is readable.
// Directories yield [netnode.ErrWrongType], encrypted files [netnode.ErrAccessDenied].
func (in *Inode) ReadContent() (string, error) {
	if !in.IsFile() {
		return "", fmt.Errorf("%w: not a file", netnode.ErrWrongType)
	}
	if in.sealed.Load() {
		return "", fmt.Errorf("%w: file is encrypted", netnode.ErrAccessDenied)
	}
	return in.content, nil
}
