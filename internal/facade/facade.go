// File: internal/facade/facade.go
// Description: User-facing driver for the creation and manipulation of
// virtual objects. It exclusively owns the name->object tracking table and
// forwards every manipulation intent to the backend strategy, keeping the
// cached snapshots in sync with what the backend reports.

package facade

import (
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/kinesra/simscene/api/schemas"
	"github.com/kinesra/simscene/internal/build"
	"github.com/kinesra/simscene/internal/registry"
	"github.com/kinesra/simscene/internal/resolve"
)

// Facade drives management and manipulation of virtual objects against one
// backend. Construct through New with fully built resolvers and managers;
// there is no package-level instance.
//
// The tracking table is guarded by a single mutex: reads such as GetObject
// replace cache entries as a side effect when a refresh is requested.
type Facade struct {
	logger       *zap.Logger
	manipulation schemas.ManipulationStrategy

	colors     *resolve.ColorResolver
	sizes      *resolve.SizeResolver
	positions  *resolve.PositionFactory
	prototypes *resolve.PrototypeResolver
	setups     *registry.SetupManager
	robots     *registry.RobotManager

	innerBuilder *build.Builder

	mu      sync.Mutex
	objects map[string]schemas.VirtualObject
	builder *build.ComplexBuilder
}

// New wires a facade. Every dependency is required.
func New(
	logger *zap.Logger,
	innerBuilder *build.Builder,
	manipulation schemas.ManipulationStrategy,
	colors *resolve.ColorResolver,
	sizes *resolve.SizeResolver,
	positions *resolve.PositionFactory,
	prototypes *resolve.PrototypeResolver,
	setups *registry.SetupManager,
	robots *registry.RobotManager,
) (*Facade, error) {
	if logger == nil || innerBuilder == nil || manipulation == nil ||
		colors == nil || sizes == nil || positions == nil ||
		prototypes == nil || setups == nil || robots == nil {
		return nil, fmt.Errorf("cannot initialize facade with nil dependencies")
	}
	return &Facade{
		logger:       logger,
		manipulation: manipulation,
		colors:       colors,
		sizes:        sizes,
		positions:    positions,
		prototypes:   prototypes,
		setups:       setups,
		robots:       robots,
		innerBuilder: innerBuilder,
		objects:      make(map[string]schemas.VirtualObject),
	}, nil
}

// ObjectBuilder returns the complex builder bound to this facade's
// resolvers, constructing it on first use. One builder per facade.
func (f *Facade) ObjectBuilder() (*build.ComplexBuilder, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.builder == nil {
		b, err := build.NewComplexBuilder(f.innerBuilder, f.prototypes, f.positions, f.sizes, f.colors)
		if err != nil {
			return nil, err
		}
		f.builder = b
	}
	return f.builder, nil
}

// Setups exposes the setup manager for this facade.
func (f *Facade) Setups() *registry.SetupManager { return f.setups }

// Robots exposes the robot manager for this facade.
func (f *Facade) Robots() *registry.RobotManager { return f.robots }

// AddObject registers obj in the tracking table under its name. No backend
// call is made.
func (f *Facade) AddObject(obj schemas.VirtualObject) {
	f.mu.Lock()
	f.objects[obj.Name()] = obj
	f.mu.Unlock()
	f.logger.Debug("tracking object", zap.String("name", obj.Name()), zap.String("descriptor", obj.Descriptor()))
}

// GetObject returns the tracked object by name. With update true, the cached
// entry is replaced by the backend-current snapshot before being returned.
func (f *Facade) GetObject(name string, update bool) (schemas.VirtualObject, error) {
	f.mu.Lock()
	obj, ok := f.objects[name]
	f.mu.Unlock()
	if !ok {
		return schemas.VirtualObject{}, fmt.Errorf("%w: no object registered under %q", schemas.ErrNotFound, name)
	}
	if update {
		return f.Refresh(obj)
	}
	return obj, nil
}

// GetObjects returns every tracked object, refreshed first when update is
// true. Results come back in name order.
func (f *Facade) GetObjects(update bool) ([]schemas.VirtualObject, error) {
	f.mu.Lock()
	names := make([]string, 0, len(f.objects))
	for name := range f.objects {
		names = append(names, name)
	}
	f.mu.Unlock()
	sort.Strings(names)

	out := make([]schemas.VirtualObject, 0, len(names))
	for _, name := range names {
		obj, err := f.GetObject(name, update)
		if err != nil {
			return nil, err
		}
		out = append(out, obj)
	}
	return out, nil
}

// Refresh asks the backend for target's current state, replaces the cache
// entry and returns the new snapshot.
func (f *Facade) Refresh(target schemas.VirtualObject) (schemas.VirtualObject, error) {
	refreshed, err := f.manipulation.Refresh(target)
	if err != nil {
		return schemas.VirtualObject{}, fmt.Errorf("%w: refresh %q: %w", schemas.ErrBackend, target.Name(), err)
	}
	f.mu.Lock()
	f.objects[refreshed.Name()] = refreshed
	f.mu.Unlock()
	return refreshed, nil
}

// Update moves the target to the given position and replaces the cache entry
// with the state the backend reports back.
func (f *Facade) Update(target schemas.TargetInput, position schemas.PositionInput) (schemas.VirtualObject, error) {
	obj, err := f.resolveTarget(target)
	if err != nil {
		return schemas.VirtualObject{}, err
	}
	pos, err := f.resolvePosition(position)
	if err != nil {
		return schemas.VirtualObject{}, err
	}
	updated, err := f.manipulation.Update(obj, pos)
	if err != nil {
		return schemas.VirtualObject{}, fmt.Errorf("%w: update %q: %w", schemas.ErrBackend, obj.Name(), err)
	}
	f.mu.Lock()
	f.objects[updated.Name()] = updated
	f.mu.Unlock()
	return updated, nil
}

// Grab grasps the target with the given affector, or the backend's default
// affector when nil.
func (f *Facade) Grab(target schemas.TargetInput, affector *schemas.RobotPart) error {
	obj, err := f.resolveTarget(target)
	if err != nil {
		return err
	}
	aff, err := f.resolveAffector(affector)
	if err != nil {
		return err
	}
	if err := f.manipulation.Grab(obj, aff); err != nil {
		return fmt.Errorf("%w: grab %q with %q: %w", schemas.ErrBackend, obj.Name(), aff.Name(), err)
	}
	return nil
}

// Release puts the affector (or the backend default) into its released
// state.
func (f *Facade) Release(affector *schemas.RobotPart) error {
	aff, err := f.resolveAffector(affector)
	if err != nil {
		return err
	}
	if err := f.manipulation.Release(aff); err != nil {
		return fmt.Errorf("%w: release %q: %w", schemas.ErrBackend, aff.Name(), err)
	}
	return nil
}

// Delete removes the target from the simulation and deregisters it from the
// tracking table.
func (f *Facade) Delete(target schemas.TargetInput) error {
	obj, err := f.resolveTarget(target)
	if err != nil {
		return err
	}
	if err := f.manipulation.Delete(obj); err != nil {
		return fmt.Errorf("%w: delete %q: %w", schemas.ErrBackend, obj.Name(), err)
	}
	f.mu.Lock()
	delete(f.objects, obj.Name())
	f.mu.Unlock()
	f.logger.Debug("dropped object", zap.String("name", obj.Name()))
	return nil
}

// Face orients the affector toward the target. A string target resolves
// against prefabricated position names first, tracked object names second.
func (f *Facade) Face(target schemas.FaceInput, affector *schemas.RobotPart) error {
	aff, err := f.resolveAffector(affector)
	if err != nil {
		return err
	}
	pos, err := f.resolveFaceTarget(target)
	if err != nil {
		return err
	}
	if err := f.manipulation.Face(pos, aff); err != nil {
		return fmt.Errorf("%w: face with %q: %w", schemas.ErrBackend, aff.Name(), err)
	}
	return nil
}

// Put moves the target to position using robotic affectors: grab, face,
// release, in that order, then a refresh of the moved object. A failed step
// aborts the sequence; no rollback of already-performed steps is attempted.
func (f *Facade) Put(target schemas.TargetInput, position schemas.PositionInput, affector *schemas.RobotPart) (schemas.VirtualObject, error) {
	obj, err := f.resolveTarget(target)
	if err != nil {
		return schemas.VirtualObject{}, err
	}
	aff, err := f.resolveAffector(affector)
	if err != nil {
		return schemas.VirtualObject{}, err
	}
	pos, err := f.resolvePosition(position)
	if err != nil {
		return schemas.VirtualObject{}, err
	}

	if err := f.Grab(schemas.TargetObject(obj), &aff); err != nil {
		return schemas.VirtualObject{}, err
	}
	if err := f.Face(schemas.FacePosition(pos), &aff); err != nil {
		return schemas.VirtualObject{}, err
	}
	if err := f.Release(&aff); err != nil {
		return schemas.VirtualObject{}, err
	}
	return f.Refresh(obj)
}

// Populate realizes every object of a setup in the backend and tracks the
// results, restoring the scene the setup describes.
func (f *Facade) Populate(setup schemas.Setup) error {
	for _, obj := range setup.Objects() {
		created, err := f.createFromSnapshot(obj)
		if err != nil {
			return fmt.Errorf("populate setup %q: %w", setup.Name(), err)
		}
		f.AddObject(created)
	}
	f.logger.Info("populated setup",
		zap.String("setup", setup.Name()),
		zap.Int("objects", len(setup.Objects())))
	return nil
}

// CaptureSetup snapshots the currently tracked objects (refreshed) into a
// named setup with a fresh id, and registers it with the setup manager.
func (f *Facade) CaptureSetup(name string) (schemas.Setup, error) {
	objects, err := f.GetObjects(true)
	if err != nil {
		return schemas.Setup{}, err
	}
	setup := schemas.NewSetup(uuid.NewString(), name, objects, nil, "")
	if err := f.setups.Add(setup); err != nil {
		return schemas.Setup{}, err
	}
	f.logger.Info("captured setup", zap.String("setup", name), zap.Int("objects", len(objects)))
	return setup, nil
}

// createFromSnapshot rebuilds one object through the builder, setting all
// three fields explicitly so no earlier draft state leaks into the object.
func (f *Facade) createFromSnapshot(obj schemas.VirtualObject) (schemas.VirtualObject, error) {
	builder, err := f.ObjectBuilder()
	if err != nil {
		return schemas.VirtualObject{}, err
	}
	builder.SetDescriptor(obj.Descriptor())
	if err := builder.SetColor(schemas.ExplicitColor(obj.Color())); err != nil {
		return schemas.VirtualObject{}, err
	}
	if err := builder.SetSize(schemas.ExplicitSize(obj.Size())); err != nil {
		return schemas.VirtualObject{}, err
	}
	return builder.Create(obj.Name(), schemas.ExplicitPosition(obj.Position()))
}

// resolveTarget turns a target input into a tracked object. Named targets
// are served from the cache without a refresh.
func (f *Facade) resolveTarget(target schemas.TargetInput) (schemas.VirtualObject, error) {
	if obj, ok := target.Object(); ok {
		return obj, nil
	}
	if name, ok := target.Name(); ok {
		return f.GetObject(name, false)
	}
	return schemas.VirtualObject{}, fmt.Errorf("%w: target must be a tracked object name or a virtual object", schemas.ErrBadInput)
}

// resolvePosition turns a position input into a pose via the position
// factory for named prefabrications.
func (f *Facade) resolvePosition(position schemas.PositionInput) (schemas.Position, error) {
	if pos, ok := position.Value(); ok {
		return pos, nil
	}
	if name, ok := position.Name(); ok {
		return f.positions.CreateNamed(name)
	}
	return schemas.Position{}, fmt.Errorf("%w: position must be a prefabrication name or an explicit position", schemas.ErrBadInput)
}

// resolveFaceTarget applies the face resolution order: explicit position,
// object position, then string against prefabs and tracked objects.
func (f *Facade) resolveFaceTarget(target schemas.FaceInput) (schemas.Position, error) {
	if pos, ok := target.Position(); ok {
		return pos, nil
	}
	if obj, ok := target.Object(); ok {
		return obj.Position(), nil
	}
	name, ok := target.Name()
	if !ok {
		return schemas.Position{}, fmt.Errorf("%w: face target must be a position, an object or a name", schemas.ErrBadInput)
	}
	if f.positions.HasPrefab(name) {
		return f.positions.CreateNamed(name)
	}
	f.mu.Lock()
	obj, tracked := f.objects[name]
	f.mu.Unlock()
	if tracked {
		return obj.Position(), nil
	}
	return schemas.Position{}, fmt.Errorf("%w: %q is neither a prefabricated position nor a tracked object", schemas.ErrNotFound, name)
}

// resolveAffector defaults a nil affector to the backend's choice.
func (f *Facade) resolveAffector(affector *schemas.RobotPart) (schemas.RobotPart, error) {
	if affector != nil {
		return *affector, nil
	}
	aff, err := f.manipulation.DefaultAffector()
	if err != nil {
		return schemas.RobotPart{}, fmt.Errorf("%w: default affector: %w", schemas.ErrBackend, err)
	}
	return aff, nil
}
