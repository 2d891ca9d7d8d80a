package resolve

import (
	"fmt"
	"sort"

	"github.com/kinesra/simscene/api/schemas"
)

// PrototypeSpec is the configuration shape of a named object prototype. Size
// and Color stay untyped here because either may be a name or an explicit
// description; they are parsed through the size/color resolvers at load time.
type PrototypeSpec struct {
	Descriptor string `yaml:"descriptor"`
	Size       any    `yaml:"size"`
	Color      any    `yaml:"color"`
}

// PrototypeResolver is a name-keyed store of (descriptor, color, size)
// flyweights used to stamp out objects sharing those properties. Entries hold
// resolved values, never raw descriptions.
type PrototypeResolver struct {
	byName map[string]schemas.Prototype
}

// NewPrototypeResolver returns an empty resolver.
func NewPrototypeResolver() *PrototypeResolver {
	return &PrototypeResolver{byName: make(map[string]schemas.Prototype)}
}

// NewPrototypeResolverFromSpecs builds the resolver from configuration,
// resolving every size and color description up front. A malformed entry
// fails the whole load, naming the prototype and the missing field.
func NewPrototypeResolverFromSpecs(specs map[string]PrototypeSpec, sizes *SizeResolver, colors *ColorResolver) (*PrototypeResolver, error) {
	r := NewPrototypeResolver()
	for name, spec := range specs {
		if spec.Descriptor == "" {
			return nil, fmt.Errorf("%w: prototype %q does not include a descriptor", schemas.ErrValidation, name)
		}
		if spec.Size == nil {
			return nil, fmt.Errorf("%w: prototype %q does not include a size", schemas.ErrValidation, name)
		}
		if spec.Color == nil {
			return nil, fmt.Errorf("%w: prototype %q does not include a color", schemas.ErrValidation, name)
		}

		sizeDesc, err := ParseSizeDesc(spec.Size)
		if err != nil {
			return nil, fmt.Errorf("prototype %q: %w", name, err)
		}
		size, err := sizes.Resolve(sizeDesc)
		if err != nil {
			return nil, fmt.Errorf("prototype %q: %w", name, err)
		}

		colorDesc, err := ParseColorDesc(spec.Color)
		if err != nil {
			return nil, fmt.Errorf("prototype %q: %w", name, err)
		}
		color, err := colors.Resolve(colorDesc)
		if err != nil {
			return nil, fmt.Errorf("prototype %q: %w", name, err)
		}

		if err := r.Register(name, spec.Descriptor, color, size); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Register stores a prototype under name. The descriptor must be non-empty
// and size must be a resolved value; the checks happen here, not at first
// use.
func (r *PrototypeResolver) Register(name, descriptor string, color schemas.Color, size schemas.Size) error {
	proto, err := schemas.NewPrototype(descriptor, color, size)
	if err != nil {
		return fmt.Errorf("register prototype %q: %w", name, err)
	}
	r.byName[name] = proto
	return nil
}

// Get returns the full prototype registered under name.
func (r *PrototypeResolver) Get(name string) (schemas.Prototype, error) {
	proto, ok := r.byName[name]
	if !ok {
		return schemas.Prototype{}, fmt.Errorf("%w: no prototype registered under %q", schemas.ErrNotFound, name)
	}
	return proto, nil
}

// Descriptor returns the descriptor of the named prototype.
func (r *PrototypeResolver) Descriptor(name string) (string, error) {
	proto, err := r.Get(name)
	if err != nil {
		return "", err
	}
	return proto.Descriptor(), nil
}

// Color returns the resolved color of the named prototype.
func (r *PrototypeResolver) Color(name string) (schemas.Color, error) {
	proto, err := r.Get(name)
	if err != nil {
		return schemas.Color{}, err
	}
	return proto.Color(), nil
}

// Size returns the resolved size of the named prototype.
func (r *PrototypeResolver) Size(name string) (schemas.Size, error) {
	proto, err := r.Get(name)
	if err != nil {
		return nil, err
	}
	return proto.Size(), nil
}

// Names lists the registered prototype names, sorted.
func (r *PrototypeResolver) Names() []string {
	names := make([]string, 0, len(r.byName))
	for name := range r.byName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
