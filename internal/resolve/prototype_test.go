// internal/resolve/prototype_test.go
package resolve

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kinesra/simscene/api/schemas"
)

func testResolvers(t *testing.T) (*SizeResolver, *ColorResolver) {
	t.Helper()
	sizes := NewSizeResolver()
	require.NoError(t, sizes.Register("small", SizeDims([]float64{1.1, 1.2, 1.3})))
	colors := NewColorResolver()
	require.NoError(t, colors.Register("red", ColorComponents(255, 0, 0)))
	return sizes, colors
}

func TestNewPrototypeResolverFromSpecs(t *testing.T) {
	sizes, colors := testResolvers(t)

	t.Run("resolves names and explicit forms up front", func(t *testing.T) {
		r, err := NewPrototypeResolverFromSpecs(map[string]PrototypeSpec{
			"small_red_cube": {Descriptor: "cube", Size: "small", Color: "red"},
			"odd_ball":       {Descriptor: "ball", Size: []any{2.0, 2.0, 2.0}, Color: "#0000ff"},
		}, sizes, colors)
		require.NoError(t, err)

		proto, err := r.Get("small_red_cube")
		require.NoError(t, err)
		assert.Equal(t, "cube", proto.Descriptor())
		assert.Equal(t, "#ff0000", proto.Color().String())
		assert.Equal(t, schemas.Size{1.1, 1.2, 1.3}, proto.Size())

		assert.Equal(t, []string{"odd_ball", "small_red_cube"}, r.Names())
	})

	t.Run("missing fields fail naming prototype and field", func(t *testing.T) {
		cases := []struct {
			name string
			spec PrototypeSpec
			want string
		}{
			{"no descriptor", PrototypeSpec{Size: "small", Color: "red"}, "descriptor"},
			{"no size", PrototypeSpec{Descriptor: "cube", Color: "red"}, "size"},
			{"no color", PrototypeSpec{Descriptor: "cube", Size: "small"}, "color"},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := NewPrototypeResolverFromSpecs(map[string]PrototypeSpec{"bad": tc.spec}, sizes, colors)
				require.ErrorIs(t, err, schemas.ErrValidation)
				assert.Contains(t, err.Error(), "bad")
				assert.Contains(t, err.Error(), tc.want)
			})
		}
	})

	t.Run("unresolvable references fail the whole load", func(t *testing.T) {
		_, err := NewPrototypeResolverFromSpecs(map[string]PrototypeSpec{
			"ghost": {Descriptor: "cube", Size: "giant", Color: "red"},
		}, sizes, colors)
		require.ErrorIs(t, err, schemas.ErrNotFound)
	})
}

func TestPrototypeResolverAccessors(t *testing.T) {
	sizes, colors := testResolvers(t)
	r, err := NewPrototypeResolverFromSpecs(map[string]PrototypeSpec{
		"small_red_cube": {Descriptor: "cube", Size: "small", Color: "red"},
	}, sizes, colors)
	require.NoError(t, err)

	desc, err := r.Descriptor("small_red_cube")
	require.NoError(t, err)
	assert.Equal(t, "cube", desc)

	color, err := r.Color("small_red_cube")
	require.NoError(t, err)
	assert.Equal(t, 255, color.Red())

	size, err := r.Size("small_red_cube")
	require.NoError(t, err)
	size[0] = 99
	again, err := r.Size("small_red_cube")
	require.NoError(t, err)
	assert.Equal(t, schemas.Size{1.1, 1.2, 1.3}, again)

	_, err = r.Get("missing")
	require.ErrorIs(t, err, schemas.ErrNotFound)
}
