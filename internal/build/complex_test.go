// internal/build/complex_test.go
package build

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kinesra/simscene/api/schemas"
	"github.com/kinesra/simscene/internal/resolve"
)

func testComplexBuilder(t *testing.T) (*ComplexBuilder, *recordingConstruction) {
	t.Helper()

	backend := &recordingConstruction{}
	inner, err := NewBuilder(backend)
	require.NoError(t, err)

	sizes := resolve.NewSizeResolver()
	require.NoError(t, sizes.Register("small", resolve.SizeDims([]float64{1.1, 1.2, 1.3})))

	colors := resolve.NewColorResolver()
	require.NoError(t, colors.Register("red", resolve.ColorComponents(255, 0, 0)))

	positions, err := resolve.NewPositionFactoryFromSpecs(0, 0, 0, map[string]resolve.PoseSpec{
		"origin": {X: new(float64), Y: new(float64), Z: new(float64)},
	})
	require.NoError(t, err)

	prototypes, err := resolve.NewPrototypeResolverFromSpecs(map[string]resolve.PrototypeSpec{
		"small_red_cube": {Descriptor: "cube", Size: "small", Color: "red"},
	}, sizes, colors)
	require.NoError(t, err)

	b, err := NewComplexBuilder(inner, prototypes, positions, sizes, colors)
	require.NoError(t, err)
	return b, backend
}

func TestNewComplexBuilder(t *testing.T) {
	_, err := NewComplexBuilder(nil, nil, nil, nil, nil)
	require.Error(t, err)
}

func TestComplexBuilderSetColor(t *testing.T) {
	t.Run("resolves names", func(t *testing.T) {
		b, _ := testComplexBuilder(t)
		require.NoError(t, b.SetColor(schemas.NamedColor("red")))
	})

	t.Run("resolves hex terms", func(t *testing.T) {
		b, _ := testComplexBuilder(t)
		require.NoError(t, b.SetColor(schemas.NamedColor("#00ff00")))
	})

	t.Run("unknown names fail", func(t *testing.T) {
		b, _ := testComplexBuilder(t)
		err := b.SetColor(schemas.NamedColor("mauve"))
		require.ErrorIs(t, err, schemas.ErrNotFound)
	})

	t.Run("zero input is rejected", func(t *testing.T) {
		b, _ := testComplexBuilder(t)
		err := b.SetColor(schemas.ColorInput{})
		require.ErrorIs(t, err, schemas.ErrBadInput)
	})
}

func TestComplexBuilderSetSizeByName(t *testing.T) {
	t.Run("requires a descriptor first", func(t *testing.T) {
		b, _ := testComplexBuilder(t)
		err := b.SetSizeByName("small")
		require.ErrorIs(t, err, schemas.ErrUsage)
	})

	t.Run("resolves after a descriptor is set", func(t *testing.T) {
		b, _ := testComplexBuilder(t)
		b.SetDescriptor("cube")
		require.NoError(t, b.SetSizeByName("small"))
	})

	t.Run("unknown size fails", func(t *testing.T) {
		b, _ := testComplexBuilder(t)
		b.SetDescriptor("cube")
		err := b.SetSizeByName("giant")
		require.ErrorIs(t, err, schemas.ErrNotFound)
	})
}

func TestComplexBuilderCreate(t *testing.T) {
	t.Run("prototype plus named position end to end", func(t *testing.T) {
		b, backend := testComplexBuilder(t)
		require.NoError(t, b.LoadPrototype("small_red_cube"))

		obj, err := b.Create("cube1", schemas.NamedPosition("origin"))
		require.NoError(t, err)
		assert.Equal(t, "cube", obj.Descriptor())
		assert.Equal(t, "#ff0000", obj.Color().String())
		assert.Equal(t, schemas.Size{1.1, 1.2, 1.3}, obj.Size())
		assert.Equal(t, 0.0, obj.Position().X())
		require.Len(t, backend.created, 1)
	})

	t.Run("explicit position bypasses the factory", func(t *testing.T) {
		b, _ := testComplexBuilder(t)
		require.NoError(t, b.LoadPrototype("small_red_cube"))

		pos := schemas.NewPosition(4, 5, 6, 0, 0, 0)
		obj, err := b.Create("cube2", schemas.ExplicitPosition(pos))
		require.NoError(t, err)
		assert.Equal(t, pos, obj.Position())
	})

	t.Run("unknown prefabrication fails", func(t *testing.T) {
		b, backend := testComplexBuilder(t)
		require.NoError(t, b.LoadPrototype("small_red_cube"))

		_, err := b.Create("cube3", schemas.NamedPosition("table"))
		require.ErrorIs(t, err, schemas.ErrNotFound)
		assert.Empty(t, backend.created)
	})

	t.Run("unknown prototype fails", func(t *testing.T) {
		b, _ := testComplexBuilder(t)
		err := b.LoadPrototype("ghost")
		require.ErrorIs(t, err, schemas.ErrNotFound)
	})

	t.Run("zero position input is rejected", func(t *testing.T) {
		b, _ := testComplexBuilder(t)
		require.NoError(t, b.LoadPrototype("small_red_cube"))
		_, err := b.Create("cube4", schemas.PositionInput{})
		require.ErrorIs(t, err, schemas.ErrBadInput)
	})
}
