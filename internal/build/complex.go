package build

import (
	"fmt"

	"github.com/kinesra/simscene/api/schemas"
	"github.com/kinesra/simscene/internal/resolve"
)

// ComplexBuilder is the user-facing builder. It accepts names wherever the
// inner builder needs resolved values, pulling them through the color, size,
// position and prototype resolvers.
type ComplexBuilder struct {
	inner      *Builder
	prototypes *resolve.PrototypeResolver
	positions  *resolve.PositionFactory
	sizes      *resolve.SizeResolver
	colors     *resolve.ColorResolver

	descriptorSet bool
}

// NewComplexBuilder wires a complex builder around an inner builder and the
// shared resolvers.
func NewComplexBuilder(
	inner *Builder,
	prototypes *resolve.PrototypeResolver,
	positions *resolve.PositionFactory,
	sizes *resolve.SizeResolver,
	colors *resolve.ColorResolver,
) (*ComplexBuilder, error) {
	if inner == nil || prototypes == nil || positions == nil || sizes == nil || colors == nil {
		return nil, fmt.Errorf("cannot initialize complex builder with nil dependencies")
	}
	return &ComplexBuilder{
		inner:      inner,
		prototypes: prototypes,
		positions:  positions,
		sizes:      sizes,
		colors:     colors,
	}, nil
}

// SetDescriptor sets the descriptor for the next objects to be created.
func (b *ComplexBuilder) SetDescriptor(descriptor string) {
	b.inner.SetDescriptor(descriptor)
	b.descriptorSet = true
}

// SetColor accepts either a resolved color or a name/hex term, resolving the
// latter before delegating to the inner builder.
func (b *ComplexBuilder) SetColor(in schemas.ColorInput) error {
	if c, ok := in.Value(); ok {
		b.inner.SetColor(c)
		return nil
	}
	term, ok := in.Term()
	if !ok {
		return fmt.Errorf("%w: color input is neither a term nor a resolved color", schemas.ErrBadInput)
	}
	c, err := b.colors.Resolve(resolve.ColorTerm(term))
	if err != nil {
		return err
	}
	b.inner.SetColor(c)
	return nil
}

// SetSize accepts either a resolved size or a registered name, resolving the
// latter before delegating to the inner builder.
func (b *ComplexBuilder) SetSize(in schemas.SizeInput) error {
	if s, ok := in.Value(); ok {
		b.inner.SetSize(s)
		return nil
	}
	name, ok := in.Name()
	if !ok {
		return fmt.Errorf("%w: size input is neither a name nor a resolved size", schemas.ErrBadInput)
	}
	s, err := b.sizes.Resolve(resolve.SizeName(name))
	if err != nil {
		return err
	}
	b.inner.SetSize(s)
	return nil
}

// SetSizeByName resolves a named size for the current descriptor. Named size
// resolution may be descriptor dependent, so a descriptor must already be
// set.
func (b *ComplexBuilder) SetSizeByName(name string) error {
	if !b.descriptorSet {
		return fmt.Errorf("%w: set a descriptor before providing a named size", schemas.ErrUsage)
	}
	s, err := b.sizes.Resolve(resolve.SizeName(name))
	if err != nil {
		return err
	}
	b.inner.SetSize(s)
	return nil
}

// LoadPrototype pulls descriptor, size and color from the named prototype and
// applies all three to the builder in one step.
func (b *ComplexBuilder) LoadPrototype(name string) error {
	proto, err := b.prototypes.Get(name)
	if err != nil {
		return err
	}
	b.SetDescriptor(proto.Descriptor())
	b.inner.SetSize(proto.Size())
	b.inner.SetColor(proto.Color())
	return nil
}

// Create resolves the position input (named prefabrication or explicit pose)
// and delegates to the inner builder.
func (b *ComplexBuilder) Create(name string, in schemas.PositionInput) (schemas.VirtualObject, error) {
	if position, ok := in.Value(); ok {
		return b.inner.Create(name, position)
	}
	if prefab, ok := in.Name(); ok {
		position, err := b.positions.CreateNamed(prefab)
		if err != nil {
			return schemas.VirtualObject{}, err
		}
		return b.inner.Create(name, position)
	}
	return schemas.VirtualObject{}, fmt.Errorf("%w: position must be a prefabrication name or an explicit position", schemas.ErrBadInput)
}
