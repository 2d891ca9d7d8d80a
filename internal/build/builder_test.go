// internal/build/builder_test.go
package build

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kinesra/simscene/api/schemas"
)

// recordingConstruction captures every object handed to the backend and can
// be primed to fail.
type recordingConstruction struct {
	created []schemas.VirtualObject
	err     error
}

func (c *recordingConstruction) CreateObject(obj schemas.VirtualObject) error {
	if c.err != nil {
		return c.err
	}
	c.created = append(c.created, obj)
	return nil
}

func mustColor(t *testing.T, r, g, b int) schemas.Color {
	t.Helper()
	c, err := schemas.NewColor(r, g, b)
	require.NoError(t, err)
	return c
}

func TestNewBuilder(t *testing.T) {
	_, err := NewBuilder(nil)
	require.Error(t, err)
}

func TestBuilderCreate(t *testing.T) {
	pos := schemas.NewPosition(1, 2, 3, 0, 0, 0)

	t.Run("fails before descriptor, color and size are set", func(t *testing.T) {
		backend := &recordingConstruction{}
		b, err := NewBuilder(backend)
		require.NoError(t, err)

		_, err = b.Create("cube1", pos)
		require.ErrorIs(t, err, schemas.ErrUsage)
		assert.Contains(t, err.Error(), "descriptor")

		b.SetDescriptor("cube")
		_, err = b.Create("cube1", pos)
		require.ErrorIs(t, err, schemas.ErrUsage)
		assert.Contains(t, err.Error(), "color")

		b.SetColor(mustColor(t, 255, 0, 0))
		_, err = b.Create("cube1", pos)
		require.ErrorIs(t, err, schemas.ErrUsage)
		assert.Contains(t, err.Error(), "size")

		assert.Empty(t, backend.created)
	})

	t.Run("hands the finished snapshot to the backend", func(t *testing.T) {
		backend := &recordingConstruction{}
		b, err := NewBuilder(backend)
		require.NoError(t, err)

		b.SetDescriptor("cube")
		b.SetColor(mustColor(t, 255, 0, 0))
		b.SetSize(schemas.Size{1, 2, 3})

		obj, err := b.Create("cube1", pos)
		require.NoError(t, err)
		assert.Equal(t, "cube1", obj.Name())
		assert.Equal(t, "cube", obj.Descriptor())
		assert.Equal(t, pos, obj.Position())

		require.Len(t, backend.created, 1)
		assert.Equal(t, obj, backend.created[0])
	})

	t.Run("configuration is reusable across creates", func(t *testing.T) {
		backend := &recordingConstruction{}
		b, err := NewBuilder(backend)
		require.NoError(t, err)

		b.SetDescriptor("cube")
		b.SetColor(mustColor(t, 0, 255, 0))
		b.SetSize(schemas.Size{1, 1, 1})

		_, err = b.Create("a", pos)
		require.NoError(t, err)
		_, err = b.Create("b", pos)
		require.NoError(t, err)
		assert.Len(t, backend.created, 2)
	})

	t.Run("backend failures surface wrapped with their cause", func(t *testing.T) {
		cause := errors.New("simulation rejected the mesh")
		backend := &recordingConstruction{err: cause}
		b, err := NewBuilder(backend)
		require.NoError(t, err)

		b.SetDescriptor("cube")
		b.SetColor(mustColor(t, 0, 0, 255))
		b.SetSize(schemas.Size{1, 1, 1})

		_, err = b.Create("cube1", pos)
		require.ErrorIs(t, err, schemas.ErrBackend)
		require.ErrorIs(t, err, cause)
	})
}
