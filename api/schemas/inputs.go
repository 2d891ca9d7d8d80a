package schemas

// Tagged input variants. The original duck-typed "name or value" parameters
// are expressed as closed sum types so the resolution branch is checked at
// compile time. The zero value of each input is invalid and rejected with
// ErrBadInput by whichever component receives it.

// ColorInput is either the name/hex form of a color or an already resolved
// Color value.
type ColorInput struct {
	term  string
	value Color
	kind  inputKind
}

// SizeInput is either a registered size name or an already resolved Size.
type SizeInput struct {
	name  string
	value Size
	kind  inputKind
}

// PositionInput is either a prefabricated position name or an explicit
// Position.
type PositionInput struct {
	name  string
	value Position
	kind  inputKind
}

// TargetInput identifies a tracked object either by name or by handle.
type TargetInput struct {
	name  string
	value VirtualObject
	kind  inputKind
}

// FaceInput is the three-way target of a face operation: an explicit
// position, an object (its position is used), or a string resolved against
// prefabricated position names first and tracked object names second.
type FaceInput struct {
	name     string
	object   VirtualObject
	position Position
	kind     inputKind
}

type inputKind int

const (
	kindUnset inputKind = iota
	kindNamed
	kindValue
	kindObject
)

// NamedColor refers to a registered color name or a "#RRGGBB" literal.
func NamedColor(term string) ColorInput { return ColorInput{term: term, kind: kindNamed} }

// ExplicitColor wraps an already resolved color.
func ExplicitColor(c Color) ColorInput { return ColorInput{value: c, kind: kindValue} }

func (in ColorInput) Term() (string, bool) { return in.term, in.kind == kindNamed }
func (in ColorInput) Value() (Color, bool) { return in.value, in.kind == kindValue }
func (in ColorInput) IsZero() bool { return in.kind == kindUnset }

// NamedSize refers to a registered size name.
func NamedSize(name string) SizeInput { return SizeInput{name: name, kind: kindNamed} }

// ExplicitSize wraps an already resolved size.
func ExplicitSize(s Size) SizeInput { return SizeInput{value: s, kind: kindValue} }

func (in SizeInput) Name() (string, bool) { return in.name, in.kind == kindNamed }
func (in SizeInput) Value() (Size, bool) { return in.value, in.kind == kindValue }
func (in SizeInput) IsZero() bool { return in.kind == kindUnset }

// NamedPosition refers to a prefabricated position by name.
func NamedPosition(name string) PositionInput { return PositionInput{name: name, kind: kindNamed} }

// ExplicitPosition wraps an explicit pose.
func ExplicitPosition(p Position) PositionInput { return PositionInput{value: p, kind: kindValue} }

func (in PositionInput) Name() (string, bool) { return in.name, in.kind == kindNamed }
func (in PositionInput) Value() (Position, bool) { return in.value, in.kind == kindValue }
func (in PositionInput) IsZero() bool { return in.kind == kindUnset }

// TargetByName identifies a tracked object by its registered name.
func TargetByName(name string) TargetInput { return TargetInput{name: name, kind: kindNamed} }

// TargetObject identifies a tracked object by handle.
func TargetObject(obj VirtualObject) TargetInput { return TargetInput{value: obj, kind: kindObject} }

func (in TargetInput) Name() (string, bool) { return in.name, in.kind == kindNamed }
func (in TargetInput) Object() (VirtualObject, bool) { return in.value, in.kind == kindObject }
func (in TargetInput) IsZero() bool { return in.kind == kindUnset }

// FacePosition faces an explicit position.
func FacePosition(p Position) FaceInput { return FaceInput{position: p, kind: kindValue} }

// FaceObject faces an object's last known position.
func FaceObject(obj VirtualObject) FaceInput { return FaceInput{object: obj, kind: kindObject} }

// FaceName faces a name resolved prefab-first, then against tracked objects.
func FaceName(name string) FaceInput { return FaceInput{name: name, kind: kindNamed} }

func (in FaceInput) Name() (string, bool) { return in.name, in.kind == kindNamed }
func (in FaceInput) Object() (VirtualObject, bool) { return in.object, in.kind == kindObject }
func (in FaceInput) Position() (Position, bool) { return in.position, in.kind == kindValue }
func (in FaceInput) IsZero() bool { return in.kind == kindUnset }
