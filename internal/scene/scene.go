// File: internal/scene/scene.go
// Description: Top-level wiring. Given a catalog and a backend registry,
// Build loads every resource document of one package, constructs the
// resolvers, managers and builder, and returns the manipulation facade ready
// for use. Everything is dependency-injected; nothing here is a singleton.

package scene

import (
	"fmt"
	"sort"

	"go.uber.org/zap"

	"github.com/kinesra/simscene/api/schemas"
	"github.com/kinesra/simscene/internal/build"
	"github.com/kinesra/simscene/internal/config"
	"github.com/kinesra/simscene/internal/facade"
	"github.com/kinesra/simscene/internal/registry"
	"github.com/kinesra/simscene/internal/resolve"
)

// Build assembles a facade for the named package. Resource documents resolve
// fail-fast: any malformed color, size, position, prototype, setup or robot
// entry aborts the whole build.
func Build(pkg string, cfg *config.Config, catalog *config.Catalog, backends *registry.Backends, logger *zap.Logger) (*facade.Facade, error) {
	if cfg == nil || catalog == nil || backends == nil || logger == nil {
		return nil, fmt.Errorf("cannot build a scene with nil dependencies")
	}

	spec, err := catalog.Package(pkg)
	if err != nil {
		return nil, err
	}
	backend, err := backends.Lookup(spec.Backend)
	if err != nil {
		return nil, fmt.Errorf("package %q: %w", pkg, err)
	}

	colors, err := buildColors(catalog, pkg)
	if err != nil {
		return nil, err
	}
	sizes, err := buildSizes(catalog, pkg)
	if err != nil {
		return nil, err
	}
	positions, err := buildPositions(catalog, cfg, pkg)
	if err != nil {
		return nil, err
	}

	protoSpecs, err := catalog.Prototypes(pkg)
	if err != nil {
		return nil, err
	}
	prototypes, err := resolve.NewPrototypeResolverFromSpecs(protoSpecs, sizes, colors)
	if err != nil {
		return nil, err
	}

	setups, err := buildSetups(catalog, pkg, colors, sizes, positions, prototypes)
	if err != nil {
		return nil, err
	}
	robots, err := buildRobots(catalog, pkg)
	if err != nil {
		return nil, err
	}

	innerBuilder, err := build.NewBuilder(backend.Construction)
	if err != nil {
		return nil, err
	}

	logger.Info("scene assembled",
		zap.String("package", pkg),
		zap.String("backend", spec.Backend),
		zap.Int("prototypes", len(prototypes.Names())),
		zap.Int("setups", len(setups.Names())),
		zap.Int("robots", len(robots.Names())))

	return facade.New(
		logger.Named(pkg),
		innerBuilder,
		backend.Manipulation,
		colors, sizes, positions, prototypes,
		setups, robots,
	)
}

func buildColors(catalog *config.Catalog, pkg string) (*resolve.ColorResolver, error) {
	doc, err := catalog.Colors(pkg)
	if err != nil {
		return nil, err
	}
	r := resolve.NewColorResolver()
	for _, name := range sortedKeys(doc) {
		desc, err := resolve.ParseColorDesc(doc[name])
		if err != nil {
			return nil, fmt.Errorf("color %q: %w", name, err)
		}
		if err := r.Register(name, desc); err != nil {
			return nil, err
		}
	}
	return r, nil
}

func buildSizes(catalog *config.Catalog, pkg string) (*resolve.SizeResolver, error) {
	doc, err := catalog.Sizes(pkg)
	if err != nil {
		return nil, err
	}
	r := resolve.NewSizeResolver()
	for _, name := range sortedKeys(doc) {
		desc, err := resolve.ParseSizeDesc(doc[name])
		if err != nil {
			return nil, fmt.Errorf("size %q: %w", name, err)
		}
		if err := r.Register(name, desc); err != nil {
			return nil, err
		}
	}
	return r, nil
}

func buildPositions(catalog *config.Catalog, cfg *config.Config, pkg string) (*resolve.PositionFactory, error) {
	doc, err := catalog.Positions(pkg)
	if err != nil {
		return nil, err
	}
	return resolve.NewPositionFactoryFromSpecs(
		cfg.Scene.DefaultRoll, cfg.Scene.DefaultPitch, cfg.Scene.DefaultYaw, doc)
}

func buildRobots(catalog *config.Catalog, pkg string) (*registry.RobotManager, error) {
	doc, err := catalog.Robots(pkg)
	if err != nil {
		return nil, err
	}
	robots := make([]schemas.Robot, 0, len(doc))
	for _, name := range sortedSpecKeys(doc) {
		spec := doc[name]
		parts := make([]schemas.RobotPart, 0, len(spec.Parts))
		for _, part := range spec.Parts {
			parts = append(parts, schemas.NewRobotPart(part))
		}
		robots = append(robots, schemas.NewRobot(name, parts, spec.Descriptor))
	}
	return registry.NewRobotManager(robots...)
}

func buildSetups(
	catalog *config.Catalog,
	pkg string,
	colors *resolve.ColorResolver,
	sizes *resolve.SizeResolver,
	positions *resolve.PositionFactory,
	prototypes *resolve.PrototypeResolver,
) (*registry.SetupManager, error) {
	doc, err := catalog.Setups(pkg)
	if err != nil {
		return nil, err
	}
	setups := make([]schemas.Setup, 0, len(doc))
	for _, name := range sortedSetupKeys(doc) {
		spec := doc[name]
		objects := make([]schemas.VirtualObject, 0, len(spec.Objects))
		for _, objName := range sortedKeys(spec.Objects) {
			obj, err := buildSetupObject(objName, spec.Objects[objName], colors, sizes, positions, prototypes)
			if err != nil {
				return nil, fmt.Errorf("setup %q: %w", name, err)
			}
			objects = append(objects, obj)
		}
		setups = append(setups, schemas.NewSetup(name, name, objects, nil, spec.Robot))
	}
	return registry.NewSetupManager(setups...)
}

// buildSetupObject interprets one setup entry. A string entry names a
// prototype and places the object at the factory's default pose; a mapping
// entry provides either a prototype reference or an inline
// descriptor/color/size, plus an optional position. Any other kind fails.
func buildSetupObject(
	name string,
	raw any,
	colors *resolve.ColorResolver,
	sizes *resolve.SizeResolver,
	positions *resolve.PositionFactory,
	prototypes *resolve.PrototypeResolver,
) (schemas.VirtualObject, error) {
	switch entry := raw.(type) {
	case string:
		proto, err := prototypes.Get(entry)
		if err != nil {
			return schemas.VirtualObject{}, fmt.Errorf("object %q: %w", name, err)
		}
		return schemas.NewVirtualObject(name, positions.Create(0, 0, 0), proto.Descriptor(), proto.Color(), proto.Size()), nil

	case map[string]any:
		var descriptor string
		var color schemas.Color
		var size schemas.Size

		if protoName, ok := entry["prototype"].(string); ok {
			proto, err := prototypes.Get(protoName)
			if err != nil {
				return schemas.VirtualObject{}, fmt.Errorf("object %q: %w", name, err)
			}
			descriptor, color, size = proto.Descriptor(), proto.Color(), proto.Size()
		} else {
			descriptor, ok = entry["descriptor"].(string)
			if !ok || descriptor == "" {
				return schemas.VirtualObject{}, fmt.Errorf("%w: object %q needs a prototype or a descriptor", schemas.ErrValidation, name)
			}
			colorDesc, err := resolve.ParseColorDesc(entry["color"])
			if err != nil {
				return schemas.VirtualObject{}, fmt.Errorf("object %q: %w", name, err)
			}
			if color, err = colors.Resolve(colorDesc); err != nil {
				return schemas.VirtualObject{}, fmt.Errorf("object %q: %w", name, err)
			}
			sizeDesc, err := resolve.ParseSizeDesc(entry["size"])
			if err != nil {
				return schemas.VirtualObject{}, fmt.Errorf("object %q: %w", name, err)
			}
			if size, err = sizes.Resolve(sizeDesc); err != nil {
				return schemas.VirtualObject{}, fmt.Errorf("object %q: %w", name, err)
			}
		}

		position, err := parseSetupPosition(entry["position"], positions)
		if err != nil {
			return schemas.VirtualObject{}, fmt.Errorf("object %q: %w", name, err)
		}
		return schemas.NewVirtualObject(name, position, descriptor, color, size), nil

	default:
		return schemas.VirtualObject{}, fmt.Errorf("%w: setup entry %q must be a prototype name or a mapping, got %T", schemas.ErrBadInput, name, raw)
	}
}

// parseSetupPosition accepts a prefabrication name, an inline x/y/z mapping
// or nothing (the factory default pose).
func parseSetupPosition(raw any, positions *resolve.PositionFactory) (schemas.Position, error) {
	switch pos := raw.(type) {
	case nil:
		return positions.Create(0, 0, 0), nil
	case string:
		return positions.CreateNamed(pos)
	case map[string]any:
		x, err := poseComponent(pos, "x")
		if err != nil {
			return schemas.Position{}, err
		}
		y, err := poseComponent(pos, "y")
		if err != nil {
			return schemas.Position{}, err
		}
		z, err := poseComponent(pos, "z")
		if err != nil {
			return schemas.Position{}, err
		}
		overrides := make([]resolve.Override, 0, 3)
		if roll, ok, err := optionalPoseComponent(pos, "roll"); err != nil {
			return schemas.Position{}, err
		} else if ok {
			overrides = append(overrides, resolve.WithRoll(roll))
		}
		if pitch, ok, err := optionalPoseComponent(pos, "pitch"); err != nil {
			return schemas.Position{}, err
		} else if ok {
			overrides = append(overrides, resolve.WithPitch(pitch))
		}
		if yaw, ok, err := optionalPoseComponent(pos, "yaw"); err != nil {
			return schemas.Position{}, err
		} else if ok {
			overrides = append(overrides, resolve.WithYaw(yaw))
		}
		return positions.Create(x, y, z, overrides...), nil
	default:
		return schemas.Position{}, fmt.Errorf("%w: position must be a prefabrication name or an x/y/z mapping, got %T", schemas.ErrBadInput, raw)
	}
}

func poseComponent(m map[string]any, key string) (float64, error) {
	v, ok, err := optionalPoseComponent(m, key)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, fmt.Errorf("%w: position mapping is missing the %q component", schemas.ErrValidation, key)
	}
	return v, nil
}

func optionalPoseComponent(m map[string]any, key string) (float64, bool, error) {
	raw, ok := m[key]
	if !ok {
		return 0, false, nil
	}
	switch n := raw.(type) {
	case float64:
		return n, true, nil
	case int:
		return float64(n), true, nil
	case int64:
		return float64(n), true, nil
	default:
		return 0, false, fmt.Errorf("%w: position component %q must be a number, got %T", schemas.ErrValidation, key, raw)
	}
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func sortedSpecKeys(m map[string]config.RobotSpec) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func sortedSetupKeys(m map[string]config.SetupSpec) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
