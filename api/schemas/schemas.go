// Package schemas holds the value types and capability interfaces shared by
// every layer of simscene. It is the public contract: resolvers, builders and
// the manipulation facade all speak in these types, and backend adapters
// implement the strategy interfaces defined here.
package schemas

import "fmt"

// Color is an immutable RGB triple. Construct it through NewColor so the
// component range invariant holds for every value in circulation.
type Color struct {
	red   int
	green int
	blue  int
}

// NewColor validates each component against [0,255] and returns the color.
func NewColor(red, green, blue int) (Color, error) {
	if red < 0 || red > 255 {
		return Color{}, fmt.Errorf("%w: red component %d out of range [0,255]", ErrValidation, red)
	}
	if green < 0 || green > 255 {
		return Color{}, fmt.Errorf("%w: green component %d out of range [0,255]", ErrValidation, green)
	}
	if blue < 0 || blue > 255 {
		return Color{}, fmt.Errorf("%w: blue component %d out of range [0,255]", ErrValidation, blue)
	}
	return Color{red: red, green: green, blue: blue}, nil
}

func (c Color) Red() int { return c.red }
func (c Color) Green() int { return c.green }
func (c Color) Blue() int { return c.blue }

// String renders the color as a lowercase hex literal, e.g. "#ff1100".
func (c Color) String() string {
	return fmt.Sprintf("#%02x%02x%02x", c.red, c.green, c.blue)
}

// Size is an ordered dimension vector. It is mutable element-wise; the
// resolver layer does not enforce a length, callers pick a convention
// (typically 3 for x/y/z extents).
type Size []float64

// Clone returns an independent copy so shared sizes cannot be mutated
// through a stamped-out object.
func (s Size) Clone() Size {
	if s == nil {
		return nil
	}
	out := make(Size, len(s))
	copy(out, s)
	return out
}

// Position is an immutable 6-DOF pose: translation plus roll/pitch/yaw.
// Produce values through a resolve.PositionFactory when defaults or named
// prefabrications are involved.
type Position struct {
	x, y, z          float64
	roll, pitch, yaw float64
}

// NewPosition builds a position from explicit components.
func NewPosition(x, y, z, roll, pitch, yaw float64) Position {
	return Position{x: x, y: y, z: z, roll: roll, pitch: pitch, yaw: yaw}
}

func (p Position) X() float64 { return p.x }
func (p Position) Y() float64 { return p.y }
func (p Position) Z() float64 { return p.z }
func (p Position) Roll() float64 { return p.roll }
func (p Position) Pitch() float64 { return p.pitch }
func (p Position) Yaw() float64 { return p.yaw }

// VirtualObject is the immutable snapshot of a simulated object as last
// known. It is not live: ask the manipulation facade to refresh it before
// trusting the position.
type VirtualObject struct {
	name       string
	position   Position
	descriptor string
	color      Color
	size       Size
}

// NewVirtualObject assembles a snapshot. The builder is the intended caller;
// it guarantees descriptor, color and size were all explicitly configured.
func NewVirtualObject(name string, position Position, descriptor string, color Color, size Size) VirtualObject {
	return VirtualObject{
		name:       name,
		position:   position,
		descriptor: descriptor,
		color:      color,
		size:       size.Clone(),
	}
}

func (v VirtualObject) Name() string { return v.name }
func (v VirtualObject) Position() Position { return v.position }
func (v VirtualObject) Descriptor() string { return v.descriptor }
func (v VirtualObject) Color() Color { return v.color }

// Size returns a copy of the dimension vector; the snapshot itself stays
// immutable.
func (v VirtualObject) Size() Size { return v.size.Clone() }

// Prototype is a reusable (descriptor, color, size) flyweight used to stamp
// out objects sharing those properties.
type Prototype struct {
	descriptor string
	color      Color
	size       Size
}

// NewPrototype performs the construction-time checks: the descriptor must be
// a non-empty string and color/size must already be resolved values.
func NewPrototype(descriptor string, color Color, size Size) (Prototype, error) {
	if descriptor == "" {
		return Prototype{}, fmt.Errorf("%w: prototype descriptor must be a non-empty string", ErrValidation)
	}
	if size == nil {
		return Prototype{}, fmt.Errorf("%w: prototype size must be a resolved size", ErrValidation)
	}
	return Prototype{descriptor: descriptor, color: color, size: size.Clone()}, nil
}

func (p Prototype) Descriptor() string { return p.descriptor }
func (p Prototype) Color() Color { return p.color }
func (p Prototype) Size() Size { return p.size.Clone() }

// RobotPart names a part of a robot, typically an end effector ("affector")
// used to carry out a manipulation.
type RobotPart struct {
	name string
}

func NewRobotPart(name string) RobotPart { return RobotPart{name: name} }
func (p RobotPart) Name() string { return p.name }

// Robot describes a robot and its parts. At this layer it is mostly an
// identity holder; state capture is delegated to the backend.
type Robot struct {
	name       string
	parts      []RobotPart
	descriptor string
}

func NewRobot(name string, parts []RobotPart, descriptor string) Robot {
	cp := make([]RobotPart, len(parts))
	copy(cp, parts)
	return Robot{name: name, parts: cp, descriptor: descriptor}
}

func (r Robot) Name() string { return r.name }
func (r Robot) Descriptor() string { return r.descriptor }

func (r Robot) Parts() []RobotPart {
	cp := make([]RobotPart, len(r.parts))
	copy(cp, r.parts)
	return cp
}

// RobotState is the backend-serializable snapshot of a robot. The core treats
// it as opaque key/value data.
type RobotState map[string]any

// Setup is an immutable named scene configuration: a set of virtual objects
// plus an optional robot state and descriptor. Setups let an experiment be
// reset to a known arrangement.
type Setup struct {
	id              string
	name            string
	objects         []VirtualObject
	robotState      RobotState
	robotDescriptor string
}

// NewSetup builds a setup snapshot. The id is assigned by the caller
// (registry loads use the name, captured snapshots use a fresh UUID).
func NewSetup(id, name string, objects []VirtualObject, robotState RobotState, robotDescriptor string) Setup {
	cp := make([]VirtualObject, len(objects))
	copy(cp, objects)
	return Setup{
		id:              id,
		name:            name,
		objects:         cp,
		robotState:      robotState,
		robotDescriptor: robotDescriptor,
	}
}

func (s Setup) ID() string { return s.id }
func (s Setup) Name() string { return s.name }
func (s Setup) RobotState() RobotState { return s.robotState }
func (s Setup) RobotDescriptor() string { return s.robotDescriptor }

func (s Setup) Objects() []VirtualObject {
	cp := make([]VirtualObject, len(s.objects))
	copy(cp, s.objects)
	return cp
}
