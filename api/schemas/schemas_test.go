// api/schemas/schemas_test.go
package schemas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewColor(t *testing.T) {
	t.Run("accepts in-range components", func(t *testing.T) {
		c, err := NewColor(255, 17, 0)
		require.NoError(t, err)
		assert.Equal(t, 255, c.Red())
		assert.Equal(t, 17, c.Green())
		assert.Equal(t, 0, c.Blue())
	})

	t.Run("rejects each out-of-range component by name", func(t *testing.T) {
		cases := []struct {
			name    string
			r, g, b int
			want    string
		}{
			{"red too high", 256, 0, 0, "red"},
			{"green negative", 0, -1, 0, "green"},
			{"blue too high", 0, 0, 300, "blue"},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := NewColor(tc.r, tc.g, tc.b)
				require.ErrorIs(t, err, ErrValidation)
				assert.Contains(t, err.Error(), tc.want)
			})
		}
	})

	t.Run("renders as lowercase hex", func(t *testing.T) {
		c, err := NewColor(255, 17, 0)
		require.NoError(t, err)
		assert.Equal(t, "#ff1100", c.String())
	})
}

func TestSizeClone(t *testing.T) {
	t.Run("clone is independent", func(t *testing.T) {
		s := Size{1.1, 1.2, 1.3}
		cp := s.Clone()
		cp[0] = 99
		assert.Equal(t, 1.1, s[0])
	})

	t.Run("nil clones to nil", func(t *testing.T) {
		var s Size
		assert.Nil(t, s.Clone())
	})
}

func TestVirtualObjectImmutability(t *testing.T) {
	c, err := NewColor(10, 20, 30)
	require.NoError(t, err)
	size := Size{1, 2, 3}

	obj := NewVirtualObject("cube1", NewPosition(1, 2, 3, 0, 0, 0), "cube", c, size)

	// Mutating the source slice or a returned copy must not leak into the
	// snapshot.
	size[0] = 99
	got := obj.Size()
	got[1] = 99
	assert.Equal(t, Size{1, 2, 3}, obj.Size())
}

func TestNewPrototype(t *testing.T) {
	c, err := NewColor(1, 2, 3)
	require.NoError(t, err)

	t.Run("requires a descriptor", func(t *testing.T) {
		_, err := NewPrototype("", c, Size{1})
		require.ErrorIs(t, err, ErrValidation)
	})

	t.Run("requires a resolved size", func(t *testing.T) {
		_, err := NewPrototype("cube", c, nil)
		require.ErrorIs(t, err, ErrValidation)
	})

	t.Run("clones the size", func(t *testing.T) {
		size := Size{1, 2, 3}
		proto, err := NewPrototype("cube", c, size)
		require.NoError(t, err)
		size[0] = 99
		assert.Equal(t, Size{1, 2, 3}, proto.Size())
	})
}

func TestSetupAccessors(t *testing.T) {
	obj := NewVirtualObject("a", NewPosition(0, 0, 0, 0, 0, 0), "cube", Color{}, Size{1})
	setup := NewSetup("id-1", "demo", []VirtualObject{obj}, RobotState{"joint": 1.0}, "arm")

	assert.Equal(t, "id-1", setup.ID())
	assert.Equal(t, "demo", setup.Name())
	assert.Equal(t, "arm", setup.RobotDescriptor())

	objs := setup.Objects()
	require.Len(t, objs, 1)
	objs[0] = VirtualObject{}
	assert.Equal(t, "a", setup.Objects()[0].Name())
}

func TestTaggedInputs(t *testing.T) {
	t.Run("zero values are invalid", func(t *testing.T) {
		assert.True(t, ColorInput{}.IsZero())
		assert.True(t, SizeInput{}.IsZero())
		assert.True(t, PositionInput{}.IsZero())
		assert.True(t, TargetInput{}.IsZero())
		assert.True(t, FaceInput{}.IsZero())
	})

	t.Run("exactly one branch is populated", func(t *testing.T) {
		in := NamedColor("red")
		term, ok := in.Term()
		require.True(t, ok)
		assert.Equal(t, "red", term)
		_, ok = in.Value()
		assert.False(t, ok)

		face := FaceName("shelf")
		_, ok = face.Position()
		assert.False(t, ok)
		_, ok = face.Object()
		assert.False(t, ok)
		name, ok := face.Name()
		require.True(t, ok)
		assert.Equal(t, "shelf", name)
	})
}
