package terminal

import (
	"testing"

	"github.com/brettbedarf/netnode"
	"github.com/brettbedarf/netnode/filesystem"
	"github.com/brettbedarf/netnode/world"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestFS(t *testing.T) *filesystem.FileSystem {
	t.Helper()
	w, err := world.Default()
	require.NoError(t, err)
	fs, err := filesystem.Build(w)
	require.NoError(t, err)
	return fs
}

func TestSession_Navigation(t *testing.T) {
	t.Parallel()

	s := NewSession(createTestFS(t))
	assert.NotEmpty(t, s.ID)
	assert.Equal(t, "/", s.CurrentPath())

	s.MoveUp()
	assert.Equal(t, "/", s.CurrentPath(), "moving up at the root must be a no-op")

	bin, err := s.Resolve("bin")
	require.NoError(t, err)
	require.NoError(t, s.MoveInto(bin))
	assert.Equal(t, "/bin", s.CurrentPath())
	assert.Same(t, bin, s.Cwd())

	s.MoveUp()
	assert.Equal(t, "/", s.CurrentPath())
}

func TestSession_MoveInto_File(t *testing.T) {
	t.Parallel()

	s := NewSession(createTestFS(t))
	readme, err := s.Resolve("readme.txt")
	require.NoError(t, err)

	assert.ErrorIs(t, s.MoveInto(readme), netnode.ErrWrongType)
	assert.Equal(t, "/", s.CurrentPath(), "must not move into a file")
}

func TestSession_Resolve_Missing(t *testing.T) {
	t.Parallel()

	s := NewSession(createTestFS(t))

	_, err := s.Resolve("nope")
	assert.ErrorIs(t, err, netnode.ErrNotFound)
}
