// internal/config/catalog_test.go
package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kinesra/simscene/api/schemas"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func writeTestCatalog(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	writeFile(t, dir, "colors.yaml", "red: \"#ff0000\"\nslate:\n  red: 112\n  green: 128\n  blue: 144\n")
	writeFile(t, dir, "sizes.yaml", "small: [1.1, 1.2, 1.3]\n")
	writeFile(t, dir, "positions.yaml", "origin:\n  x: 0\n  y: 0\n  z: 0\n")
	writeFile(t, dir, "prototypes.yaml", "small_red_cube:\n  descriptor: cube\n  size: small\n  color: red\n")
	writeFile(t, dir, "setups.yaml", "demo:\n  robot: arm\n  objects:\n    cube1: small_red_cube\n")
	writeFile(t, dir, "robots.yaml", "arm:\n  descriptor: single_arm\n  parts: [gripper]\n")

	return writeFile(t, dir, "catalog.yaml", `packages:
  memory:
    backend: memory
    colors: colors.yaml
    sizes: sizes.yaml
    positions: positions.yaml
    prototypes: prototypes.yaml
    setups: setups.yaml
    robots: robots.yaml
  sparse:
    backend: memory
    colors: colors.yaml
`)
}

func TestLoadCatalog(t *testing.T) {
	t.Run("loads packages and resource documents", func(t *testing.T) {
		catalog, err := LoadCatalog(writeTestCatalog(t))
		require.NoError(t, err)
		assert.Equal(t, []string{"memory", "sparse"}, catalog.Packages())

		spec, err := catalog.Package("memory")
		require.NoError(t, err)
		assert.Equal(t, "memory", spec.Backend)

		colors, err := catalog.Colors("memory")
		require.NoError(t, err)
		assert.Equal(t, "#ff0000", colors["red"])
		slate, ok := colors["slate"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, 112, slate["red"])

		positions, err := catalog.Positions("memory")
		require.NoError(t, err)
		require.Contains(t, positions, "origin")
		require.NotNil(t, positions["origin"].X)
		assert.Nil(t, positions["origin"].Roll)

		prototypes, err := catalog.Prototypes("memory")
		require.NoError(t, err)
		assert.Equal(t, "cube", prototypes["small_red_cube"].Descriptor)

		setups, err := catalog.Setups("memory")
		require.NoError(t, err)
		assert.Equal(t, "arm", setups["demo"].Robot)
		assert.Equal(t, "small_red_cube", setups["demo"].Objects["cube1"])

		robots, err := catalog.Robots("memory")
		require.NoError(t, err)
		assert.Equal(t, []string{"gripper"}, robots["arm"].Parts)
	})

	t.Run("missing file fails", func(t *testing.T) {
		_, err := LoadCatalog(filepath.Join(t.TempDir(), "nope.yaml"))
		require.Error(t, err)
	})

	t.Run("empty catalog fails validation", func(t *testing.T) {
		path := writeFile(t, t.TempDir(), "catalog.yaml", "packages: {}\n")
		_, err := LoadCatalog(path)
		require.ErrorIs(t, err, schemas.ErrValidation)
	})

	t.Run("unknown package is not found", func(t *testing.T) {
		catalog, err := LoadCatalog(writeTestCatalog(t))
		require.NoError(t, err)
		_, err = catalog.Package("gazebo")
		require.ErrorIs(t, err, schemas.ErrNotFound)
	})

	t.Run("a package without a resource document fails by kind", func(t *testing.T) {
		catalog, err := LoadCatalog(writeTestCatalog(t))
		require.NoError(t, err)
		_, err = catalog.Sizes("sparse")
		require.ErrorIs(t, err, schemas.ErrValidation)
		assert.Contains(t, err.Error(), "sizes")
	})
}
