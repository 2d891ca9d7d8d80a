package resolve

import (
	"fmt"
	"sort"

	"github.com/kinesra/simscene/api/schemas"
)

// PoseSpec is the configuration shape of a single prefabricated position.
// Pointer fields distinguish "absent" from zero: x/y/z are required, missing
// rotations fall back to the factory defaults.
type PoseSpec struct {
	X     *float64 `yaml:"x"`
	Y     *float64 `yaml:"y"`
	Z     *float64 `yaml:"z"`
	Roll  *float64 `yaml:"roll"`
	Pitch *float64 `yaml:"pitch"`
	Yaw   *float64 `yaml:"yaw"`
}

// Override adjusts a single pose component during Create, CreateNamed, Clone
// or CreateRelative. Components without an override keep the operation's
// documented fallback.
type Override func(*poseDraft)

type poseDraft struct {
	x, y, z          float64
	roll, pitch, yaw float64
}

func WithX(v float64) Override     { return func(d *poseDraft) { d.x = v } }
func WithY(v float64) Override     { return func(d *poseDraft) { d.y = v } }
func WithZ(v float64) Override     { return func(d *poseDraft) { d.z = v } }
func WithRoll(v float64) Override  { return func(d *poseDraft) { d.roll = v } }
func WithPitch(v float64) Override { return func(d *poseDraft) { d.pitch = v } }
func WithYaw(v float64) Override   { return func(d *poseDraft) { d.yaw = v } }

// PositionFactory creates positions with configured rotational defaults and a
// table of named prefabricated poses. Construct once from configuration and
// share read-only.
type PositionFactory struct {
	defaultRoll  float64
	defaultPitch float64
	defaultYaw   float64
	prefabs      map[string]schemas.Position
}

// NewPositionFactory builds a factory from already-resolved prefabricated
// positions.
func NewPositionFactory(defaultRoll, defaultPitch, defaultYaw float64, prefabs map[string]schemas.Position) *PositionFactory {
	cp := make(map[string]schemas.Position, len(prefabs))
	for name, p := range prefabs {
		cp[name] = p
	}
	return &PositionFactory{
		defaultRoll:  defaultRoll,
		defaultPitch: defaultPitch,
		defaultYaw:   defaultYaw,
		prefabs:      cp,
	}
}

// NewPositionFactoryFromSpecs builds the factory from configuration entries.
// An entry missing x, y or z is a hard error naming the component; missing
// rotations silently fall back to the defaults.
func NewPositionFactoryFromSpecs(defaultRoll, defaultPitch, defaultYaw float64, specs map[string]PoseSpec) (*PositionFactory, error) {
	prefabs := make(map[string]schemas.Position, len(specs))
	for name, spec := range specs {
		if spec.X == nil {
			return nil, fmt.Errorf("%w: prefabricated position %q has no value for x", schemas.ErrValidation, name)
		}
		if spec.Y == nil {
			return nil, fmt.Errorf("%w: prefabricated position %q has no value for y", schemas.ErrValidation, name)
		}
		if spec.Z == nil {
			return nil, fmt.Errorf("%w: prefabricated position %q has no value for z", schemas.ErrValidation, name)
		}
		roll, pitch, yaw := defaultRoll, defaultPitch, defaultYaw
		if spec.Roll != nil {
			roll = *spec.Roll
		}
		if spec.Pitch != nil {
			pitch = *spec.Pitch
		}
		if spec.Yaw != nil {
			yaw = *spec.Yaw
		}
		prefabs[name] = schemas.NewPosition(*spec.X, *spec.Y, *spec.Z, roll, pitch, yaw)
	}
	return NewPositionFactory(defaultRoll, defaultPitch, defaultYaw, prefabs), nil
}

// Create builds a position from explicit translation. Rotations default to
// the factory's configured values unless overridden.
func (f *PositionFactory) Create(x, y, z float64, overrides ...Override) schemas.Position {
	draft := poseDraft{x: x, y: y, z: z, roll: f.defaultRoll, pitch: f.defaultPitch, yaw: f.defaultYaw}
	for _, o := range overrides {
		o(&draft)
	}
	return schemas.NewPosition(draft.x, draft.y, draft.z, draft.roll, draft.pitch, draft.yaw)
}

// CreateNamed clones the prefabricated position registered under name,
// applying only the supplied overrides; every other component keeps the
// prefabricated value.
func (f *PositionFactory) CreateNamed(name string, overrides ...Override) (schemas.Position, error) {
	base, ok := f.prefabs[name]
	if !ok {
		return schemas.Position{}, fmt.Errorf("%w: no prefabricated position registered under %q", schemas.ErrNotFound, name)
	}
	return f.Clone(base, overrides...), nil
}

// Clone copies an arbitrary position with the supplied component overrides.
func (f *PositionFactory) Clone(base schemas.Position, overrides ...Override) schemas.Position {
	draft := poseDraft{
		x: base.X(), y: base.Y(), z: base.Z(),
		roll: base.Roll(), pitch: base.Pitch(), yaw: base.Yaw(),
	}
	for _, o := range overrides {
		o(&draft)
	}
	return schemas.NewPosition(draft.x, draft.y, draft.z, draft.roll, draft.pitch, draft.yaw)
}

// CreateRelative offsets the base position's translation by dx/dy/dz.
// Rotations deliberately do not come from the base: unless overridden they
// take the factory defaults. Translation is relative, rotation is not.
func (f *PositionFactory) CreateRelative(base schemas.Position, dx, dy, dz float64, overrides ...Override) schemas.Position {
	draft := poseDraft{
		x: base.X() + dx, y: base.Y() + dy, z: base.Z() + dz,
		roll: f.defaultRoll, pitch: f.defaultPitch, yaw: f.defaultYaw,
	}
	for _, o := range overrides {
		o(&draft)
	}
	return schemas.NewPosition(draft.x, draft.y, draft.z, draft.roll, draft.pitch, draft.yaw)
}

// HasPrefab reports whether a prefabricated position exists under name.
func (f *PositionFactory) HasPrefab(name string) bool {
	_, ok := f.prefabs[name]
	return ok
}

// Prefabricated lists the registered prefabrication names, sorted.
func (f *PositionFactory) Prefabricated() []string {
	names := make([]string, 0, len(f.prefabs))
	for name := range f.prefabs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
