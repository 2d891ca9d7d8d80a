package resolve

import (
	"fmt"

	"github.com/kinesra/simscene/api/schemas"
)

// SizeDesc is a size description from configuration: a registered name, an
// explicit dimension list, or an already resolved Size.
type SizeDesc struct {
	name  string
	value schemas.Size
	kind  descKind
}

// SizeName describes a size by registered name.
func SizeName(name string) SizeDesc { return SizeDesc{name: name, kind: descTerm} }

// SizeDims describes a size by explicit dimensions. The list is wrapped as
// given; no length convention is enforced here.
func SizeDims(dims []float64) SizeDesc {
	return SizeDesc{value: schemas.Size(dims).Clone(), kind: descComponents}
}

// SizeValue wraps an already resolved size.
func SizeValue(s schemas.Size) SizeDesc { return SizeDesc{value: s.Clone(), kind: descValue} }

// ParseSizeDesc converts a raw configuration value into a SizeDesc. Accepted
// kinds: string, []float64, a YAML-shaped []any of numbers, or a resolved
// Size.
func ParseSizeDesc(raw any) (SizeDesc, error) {
	switch v := raw.(type) {
	case string:
		return SizeName(v), nil
	case schemas.Size:
		return SizeValue(v), nil
	case []float64:
		return SizeDims(v), nil
	case []any:
		dims := make([]float64, 0, len(v))
		for i, elem := range v {
			f, ok := asFloat(elem)
			if !ok {
				return SizeDesc{}, fmt.Errorf("%w: size dimension %d must be a number, got %T", schemas.ErrValidation, i, elem)
			}
			dims = append(dims, f)
		}
		return SizeDims(dims), nil
	default:
		return SizeDesc{}, fmt.Errorf("%w: size description must be a name or list of floats, got %T", schemas.ErrBadInput, raw)
	}
}

func asFloat(raw any) (float64, bool) {
	switch n := raw.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}

// SizeResolver maps size descriptions to dimension vectors.
type SizeResolver struct {
	byName map[string]schemas.Size
}

// NewSizeResolver returns an empty resolver.
func NewSizeResolver() *SizeResolver {
	return &SizeResolver{byName: make(map[string]schemas.Size)}
}

// Resolve turns a description into a Size. Unknown names fail with a
// not-found error.
func (r *SizeResolver) Resolve(desc SizeDesc) (schemas.Size, error) {
	switch desc.kind {
	case descTerm:
		s, ok := r.byName[desc.name]
		if !ok {
			return nil, fmt.Errorf("%w: no size registered under %q", schemas.ErrNotFound, desc.name)
		}
		return s.Clone(), nil
	case descComponents, descValue:
		return desc.value.Clone(), nil
	default:
		return nil, fmt.Errorf("%w: empty size description", schemas.ErrBadInput)
	}
}

// Register resolves the description and stores the result under name.
func (r *SizeResolver) Register(name string, desc SizeDesc) error {
	s, err := r.Resolve(desc)
	if err != nil {
		return fmt.Errorf("register size %q: %w", name, err)
	}
	r.byName[name] = s
	return nil
}
