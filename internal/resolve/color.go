// Package resolve turns declarative descriptions loaded from configuration
// (named colors, named sizes, named positions, named prototypes) into
// validated value types. Resolvers are built once at load time and shared
// read-only afterwards.
package resolve

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/kinesra/simscene/api/schemas"
)

// ColorDesc is the closed set of forms a color description can take in
// configuration: a term (registered name or "#RRGGBB" literal), an explicit
// component triple, or an already resolved Color.
type ColorDesc struct {
	term             string
	red, green, blue int
	value            schemas.Color
	kind             descKind
}

type descKind int

const (
	descUnset descKind = iota
	descTerm
	descComponents
	descValue
)

// ColorTerm describes a color by registered name or hex literal.
func ColorTerm(term string) ColorDesc { return ColorDesc{term: term, kind: descTerm} }

// ColorComponents describes a color by explicit red/green/blue values.
func ColorComponents(red, green, blue int) ColorDesc {
	return ColorDesc{red: red, green: green, blue: blue, kind: descComponents}
}

// ColorValue wraps an already resolved color.
func ColorValue(c schemas.Color) ColorDesc { return ColorDesc{value: c, kind: descValue} }

// ParseColorDesc converts a raw configuration value into a ColorDesc. This is
// the only place the untyped YAML form is inspected; everything downstream
// works on the tagged description. Accepted kinds: string, a mapping with
// integer red/green/blue keys, or a resolved Color.
func ParseColorDesc(raw any) (ColorDesc, error) {
	switch v := raw.(type) {
	case string:
		return ColorTerm(v), nil
	case schemas.Color:
		return ColorValue(v), nil
	case map[string]any:
		red, err := colorComponent(v, "red")
		if err != nil {
			return ColorDesc{}, err
		}
		green, err := colorComponent(v, "green")
		if err != nil {
			return ColorDesc{}, err
		}
		blue, err := colorComponent(v, "blue")
		if err != nil {
			return ColorDesc{}, err
		}
		return ColorComponents(red, green, blue), nil
	default:
		return ColorDesc{}, fmt.Errorf("%w: color description must be a name, hex string or red/green/blue mapping, got %T", schemas.ErrBadInput, raw)
	}
}

func colorComponent(m map[string]any, key string) (int, error) {
	raw, ok := m[key]
	if !ok {
		return 0, fmt.Errorf("%w: color mapping is missing the %q component", schemas.ErrValidation, key)
	}
	n, ok := asInt(raw)
	if !ok {
		return 0, fmt.Errorf("%w: color component %q must be an integer, got %T", schemas.ErrValidation, key, raw)
	}
	return n, nil
}

// asInt accepts the integer shapes YAML decoders produce.
func asInt(raw any) (int, bool) {
	switch n := raw.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case uint64:
		return int(n), true
	default:
		return 0, false
	}
}

// ColorResolver maps color descriptions to validated colors. Names are
// registered up front from configuration; hex literals resolve without
// registration.
type ColorResolver struct {
	byName map[string]schemas.Color
}

// NewColorResolver returns an empty resolver.
func NewColorResolver() *ColorResolver {
	return &ColorResolver{byName: make(map[string]schemas.Color)}
}

// Resolve turns a description into a Color. A term starting with '#' is
// parsed as a case-insensitive "#RRGGBB" literal; any other term is a name
// lookup.
func (r *ColorResolver) Resolve(desc ColorDesc) (schemas.Color, error) {
	switch desc.kind {
	case descTerm:
		if strings.HasPrefix(desc.term, "#") {
			return parseHexColor(desc.term)
		}
		c, ok := r.byName[desc.term]
		if !ok {
			return schemas.Color{}, fmt.Errorf("%w: no color registered under %q", schemas.ErrNotFound, desc.term)
		}
		return c, nil
	case descComponents:
		return schemas.NewColor(desc.red, desc.green, desc.blue)
	case descValue:
		return desc.value, nil
	default:
		return schemas.Color{}, fmt.Errorf("%w: empty color description", schemas.ErrBadInput)
	}
}

// Register resolves the description (so hex, component and resolved forms are
// all accepted) and stores the result under name for later lookup.
func (r *ColorResolver) Register(name string, desc ColorDesc) error {
	c, err := r.Resolve(desc)
	if err != nil {
		return fmt.Errorf("register color %q: %w", name, err)
	}
	r.byName[name] = c
	return nil
}

// parseHexColor decodes "#RRGGBB". Hex digits are case-insensitive.
func parseHexColor(term string) (schemas.Color, error) {
	digits := strings.TrimPrefix(term, "#")
	if len(digits) != 6 {
		return schemas.Color{}, fmt.Errorf("%w: hex color %q must have the form #RRGGBB", schemas.ErrValidation, term)
	}
	n, err := strconv.ParseUint(strings.ToLower(digits), 16, 32)
	if err != nil {
		return schemas.Color{}, fmt.Errorf("%w: hex color %q is not valid hexadecimal", schemas.ErrValidation, term)
	}
	return schemas.NewColor(int(n>>16&0xff), int(n>>8&0xff), int(n&0xff))
}
