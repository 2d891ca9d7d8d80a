// internal/serialize/serialize_test.go
package serialize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kinesra/simscene/api/schemas"
)

func sampleObject(t *testing.T, name string) schemas.VirtualObject {
	t.Helper()
	color, err := schemas.NewColor(255, 17, 0)
	require.NoError(t, err)
	return schemas.NewVirtualObject(name,
		schemas.NewPosition(1, 2, 3, 0.1, 0.2, 0.3),
		"cube", color, schemas.Size{1.1, 1.2, 1.3})
}

func TestSetupRoundTrip(t *testing.T) {
	setup := schemas.NewSetup("id-1", "demo",
		[]schemas.VirtualObject{sampleObject(t, "cube1")},
		schemas.RobotState{"joint": 1.5}, "arm")

	data, err := EncodeSetup(setup)
	require.NoError(t, err)

	got, err := DecodeSetup(data)
	require.NoError(t, err)
	assert.Equal(t, "id-1", got.ID())
	assert.Equal(t, "demo", got.Name())
	assert.Equal(t, "arm", got.RobotDescriptor())

	objs := got.Objects()
	require.Len(t, objs, 1)
	assert.Equal(t, "cube1", objs[0].Name())
	assert.Equal(t, "#ff1100", objs[0].Color().String())
	assert.Equal(t, 0.3, objs[0].Position().Yaw())
	assert.Equal(t, schemas.Size{1.1, 1.2, 1.3}, objs[0].Size())
}

func TestSetupDocDefaults(t *testing.T) {
	t.Run("missing id falls back to the name", func(t *testing.T) {
		got, err := SetupFromDoc(SetupDoc{Name: "demo"})
		require.NoError(t, err)
		assert.Equal(t, "demo", got.ID())
	})

	t.Run("an out-of-range color fails the decode", func(t *testing.T) {
		_, err := SetupFromDoc(SetupDoc{
			Name:    "demo",
			Objects: []ObjectDoc{{Name: "bad", Color: [3]int{300, 0, 0}}},
		})
		require.ErrorIs(t, err, schemas.ErrValidation)
		assert.Contains(t, err.Error(), "bad")
	})
}

func TestDecodeSetupRejectsMalformedJSON(t *testing.T) {
	_, err := DecodeSetup([]byte("{not json"))
	require.Error(t, err)
}

func TestRobotRoundTrip(t *testing.T) {
	robot := schemas.NewRobot("arm",
		[]schemas.RobotPart{schemas.NewRobotPart("gripper"), schemas.NewRobotPart("wrist")},
		"single_arm")

	data, err := EncodeRobot(robot)
	require.NoError(t, err)

	got, err := DecodeRobot(data)
	require.NoError(t, err)
	assert.Equal(t, "arm", got.Name())
	assert.Equal(t, "single_arm", got.Descriptor())
	require.Len(t, got.Parts(), 2)
	assert.Equal(t, "gripper", got.Parts()[0].Name())
}

func TestEncodeObjects(t *testing.T) {
	data, err := EncodeObjects([]schemas.VirtualObject{sampleObject(t, "cube1")})
	require.NoError(t, err)
	assert.Contains(t, string(data), `"name": "cube1"`)
	assert.Contains(t, string(data), `"descriptor": "cube"`)
}
