// Package memory provides an in-memory backend implementing both strategy
// interfaces over a plain map. It performs no kinematics of any kind; it
// exists so the CLI and integration tests can exercise the full pipeline
// without a real simulation package attached.
package memory

import (
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/kinesra/simscene/api/schemas"
	"github.com/kinesra/simscene/internal/registry"
)

// DefaultAffectorName is the part the memory backend reports when the caller
// does not choose one.
const DefaultAffectorName = "gripper"

// Sim is the shared state behind the construction and manipulation
// strategies of one memory backend instance.
type Sim struct {
	mu      sync.Mutex
	objects map[string]schemas.VirtualObject
	handles map[string]string

	grabbed map[string]string // affector -> object name
	facing  map[string]schemas.Position
}

// New returns a fresh, empty simulation.
func New() *Sim {
	return &Sim{
		objects: make(map[string]schemas.VirtualObject),
		handles: make(map[string]string),
		grabbed: make(map[string]string),
		facing:  make(map[string]schemas.Position),
	}
}

// Backend bundles this simulation's strategies for registration.
func (s *Sim) Backend() registry.Backend {
	return registry.Backend{Construction: (*construction)(s), Manipulation: (*manipulation)(s)}
}

// Facing reports the position the affector last faced, for inspection.
func (s *Sim) Facing(affector string) (schemas.Position, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.facing[affector]
	return p, ok
}

// Holds reports which object the affector currently grips.
func (s *Sim) Holds(affector string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	name, ok := s.grabbed[affector]
	return name, ok
}

type construction Sim

func (c *construction) CreateObject(obj schemas.VirtualObject) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, exists := c.objects[obj.Name()]; exists {
		return fmt.Errorf("an object named %q already exists in the simulation", obj.Name())
	}
	c.objects[obj.Name()] = obj
	c.handles[obj.Name()] = uuid.NewString()
	return nil
}

type manipulation Sim

func (m *manipulation) DefaultAffector() (schemas.RobotPart, error) {
	return schemas.NewRobotPart(DefaultAffectorName), nil
}

func (m *manipulation) Refresh(target schemas.VirtualObject) (schemas.VirtualObject, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	obj, ok := m.objects[target.Name()]
	if !ok {
		return schemas.VirtualObject{}, fmt.Errorf("object %q is not present in the simulation", target.Name())
	}
	return obj, nil
}

func (m *manipulation) Grab(target schemas.VirtualObject, affector schemas.RobotPart) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.objects[target.Name()]; !ok {
		return fmt.Errorf("object %q is not present in the simulation", target.Name())
	}
	m.grabbed[affector.Name()] = target.Name()
	return nil
}

func (m *manipulation) Face(position schemas.Position, affector schemas.RobotPart) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.facing[affector.Name()] = position

	// A gripped object follows the affector.
	if name, ok := m.grabbed[affector.Name()]; ok {
		if obj, exists := m.objects[name]; exists {
			m.objects[name] = schemas.NewVirtualObject(
				obj.Name(), position, obj.Descriptor(), obj.Color(), obj.Size())
		}
	}
	return nil
}

func (m *manipulation) Update(target schemas.VirtualObject, position schemas.Position) (schemas.VirtualObject, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	obj, ok := m.objects[target.Name()]
	if !ok {
		return schemas.VirtualObject{}, fmt.Errorf("object %q is not present in the simulation", target.Name())
	}
	moved := schemas.NewVirtualObject(obj.Name(), position, obj.Descriptor(), obj.Color(), obj.Size())
	m.objects[obj.Name()] = moved
	return moved, nil
}

func (m *manipulation) Release(affector schemas.RobotPart) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.grabbed, affector.Name())
	return nil
}

func (m *manipulation) Delete(target schemas.VirtualObject) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.objects[target.Name()]; !ok {
		return fmt.Errorf("object %q is not present in the simulation", target.Name())
	}
	delete(m.objects, target.Name())
	delete(m.handles, target.Name())
	return nil
}
