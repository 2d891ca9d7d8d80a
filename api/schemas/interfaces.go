// File: api/schemas/interfaces.go
// Description: Capability interfaces the core depends on but does not
// implement. Each target simulation package supplies one implementation of
// each, registered at startup (see internal/registry).
package schemas

// ConstructionStrategy realizes a virtual object inside the target
// simulation. The builder constructs the immutable snapshot first and hands
// it over; a failure here propagates to the builder's caller unchanged.
type ConstructionStrategy interface {
	CreateObject(obj VirtualObject) error
}

// ManipulationStrategy is the package-specific capability surface the
// manipulation facade forwards to. Every call is blocking and synchronous;
// cancellation and timeouts are a backend concern, not defined at this layer.
type ManipulationStrategy interface {
	// DefaultAffector picks the robot part used when the caller does not
	// name one.
	DefaultAffector() (RobotPart, error)

	// Refresh returns the simulation-current snapshot for target.
	Refresh(target VirtualObject) (VirtualObject, error)

	// Grab grasps target with the given affector.
	Grab(target VirtualObject, affector RobotPart) error

	// Face orients the affector toward the given position.
	Face(position Position, affector RobotPart) error

	// Update moves target to position and returns its new snapshot.
	Update(target VirtualObject, position Position) (VirtualObject, error)

	// Release puts the affector into its released state.
	Release(affector RobotPart) error

	// Delete removes target from the simulation.
	Delete(target VirtualObject) error
}
