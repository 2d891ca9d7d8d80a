// File: internal/config/catalog.go
// Description: The package catalog names, per target simulation package, the
// resource documents (colors, sizes, positions, prototypes, setups, robots)
// and the registered backend to pair them with. Paths in the catalog use
// forward slashes and are rewritten for the host platform on load.

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	homedir "github.com/mitchellh/go-homedir"
	"gopkg.in/yaml.v3"

	"github.com/kinesra/simscene/api/schemas"
	"github.com/kinesra/simscene/internal/resolve"
)

// PackageSpec is one catalog entry: where each resource document lives and
// which registered backend serves this package.
type PackageSpec struct {
	Backend    string `yaml:"backend"`
	Colors     string `yaml:"colors"`
	Sizes      string `yaml:"sizes"`
	Positions  string `yaml:"positions"`
	Prototypes string `yaml:"prototypes"`
	Setups     string `yaml:"setups"`
	Robots     string `yaml:"robots"`
}

type catalogDoc struct {
	Packages map[string]PackageSpec `yaml:"packages"`
}

// SetupSpec is the configuration shape of one setup: named object entries
// plus an optional robot reference. Each object entry is either a prototype
// name string or an inline mapping; the untyped form is interpreted in
// internal/scene.
type SetupSpec struct {
	Objects map[string]any `yaml:"objects"`
	Robot   string         `yaml:"robot"`
}

// RobotSpec is the configuration shape of one robot description.
type RobotSpec struct {
	Parts      []string `yaml:"parts"`
	Descriptor string   `yaml:"descriptor"`
}

// Catalog provides access to the resource documents of every configured
// package. Relative document paths resolve against the catalog file's
// directory.
type Catalog struct {
	baseDir  string
	packages map[string]PackageSpec
}

// LoadCatalog reads and parses the catalog document at path. A leading "~"
// expands to the current user's home directory.
func LoadCatalog(path string) (*Catalog, error) {
	expanded, err := homedir.Expand(path)
	if err != nil {
		return nil, fmt.Errorf("expand catalog path %q: %w", path, err)
	}
	expanded = filepath.FromSlash(expanded)

	data, err := os.ReadFile(expanded)
	if err != nil {
		return nil, fmt.Errorf("read catalog %q: %w", expanded, err)
	}

	var doc catalogDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse catalog %q: %w", expanded, err)
	}
	if len(doc.Packages) == 0 {
		return nil, fmt.Errorf("%w: catalog %q declares no packages", schemas.ErrValidation, expanded)
	}
	return &Catalog{baseDir: filepath.Dir(expanded), packages: doc.Packages}, nil
}

// Packages lists the configured package names, sorted.
func (c *Catalog) Packages() []string {
	names := make([]string, 0, len(c.packages))
	for name := range c.packages {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Package returns the catalog entry for the named package.
func (c *Catalog) Package(name string) (PackageSpec, error) {
	spec, ok := c.packages[name]
	if !ok {
		return PackageSpec{}, fmt.Errorf("%w: no package configured under %q", schemas.ErrNotFound, name)
	}
	return spec, nil
}

// Colors loads the color document for the named package: color name to hex
// string or red/green/blue mapping.
func (c *Catalog) Colors(pkg string) (map[string]any, error) {
	var doc map[string]any
	if err := c.loadResource(pkg, "colors", func(s PackageSpec) string { return s.Colors }, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// Sizes loads the size document for the named package: size name to
// dimension list.
func (c *Catalog) Sizes(pkg string) (map[string]any, error) {
	var doc map[string]any
	if err := c.loadResource(pkg, "sizes", func(s PackageSpec) string { return s.Sizes }, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// Positions loads the prefabricated position document for the named package.
func (c *Catalog) Positions(pkg string) (map[string]resolve.PoseSpec, error) {
	var doc map[string]resolve.PoseSpec
	if err := c.loadResource(pkg, "positions", func(s PackageSpec) string { return s.Positions }, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// Prototypes loads the object prototype document for the named package.
func (c *Catalog) Prototypes(pkg string) (map[string]resolve.PrototypeSpec, error) {
	var doc map[string]resolve.PrototypeSpec
	if err := c.loadResource(pkg, "prototypes", func(s PackageSpec) string { return s.Prototypes }, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// Setups loads the setup document for the named package.
func (c *Catalog) Setups(pkg string) (map[string]SetupSpec, error) {
	var doc map[string]SetupSpec
	if err := c.loadResource(pkg, "setups", func(s PackageSpec) string { return s.Setups }, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// Robots loads the robot document for the named package.
func (c *Catalog) Robots(pkg string) (map[string]RobotSpec, error) {
	var doc map[string]RobotSpec
	if err := c.loadResource(pkg, "robots", func(s PackageSpec) string { return s.Robots }, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func (c *Catalog) loadResource(pkg, kind string, pick func(PackageSpec) string, out any) error {
	spec, err := c.Package(pkg)
	if err != nil {
		return err
	}
	rel := pick(spec)
	if rel == "" {
		return fmt.Errorf("%w: package %q does not provide %s information", schemas.ErrValidation, pkg, kind)
	}
	path := filepath.FromSlash(rel)
	if !filepath.IsAbs(path) {
		path = filepath.Join(c.baseDir, path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s document %q: %w", kind, path, err)
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("parse %s document %q: %w", kind, path, err)
	}
	return nil
}
