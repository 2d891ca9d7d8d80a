// Package build assembles virtual objects. The inner Builder holds one
// pending (descriptor, color, size) configuration and hands finished
// snapshots to the backend construction strategy; ComplexBuilder wraps it
// with the resolvers so callers can work in names instead of values.
//
// One builder instance carries one in-progress configuration. Builders are
// not shared between unrelated create sequences.
package build

import (
	"fmt"

	"github.com/kinesra/simscene/api/schemas"
)

// Builder is the backend-facing inner builder. It does not track the objects
// it creates; the manipulation facade owns tracking.
type Builder struct {
	construction schemas.ConstructionStrategy

	descriptor    string
	descriptorSet bool
	color         schemas.Color
	colorSet      bool
	size          schemas.Size
	sizeSet       bool
}

// NewBuilder returns a builder that realizes objects through the given
// construction strategy.
func NewBuilder(construction schemas.ConstructionStrategy) (*Builder, error) {
	if construction == nil {
		return nil, fmt.Errorf("cannot initialize builder with a nil construction strategy")
	}
	return &Builder{construction: construction}, nil
}

// SetDescriptor sets the descriptor for the next objects to be created.
func (b *Builder) SetDescriptor(descriptor string) {
	b.descriptor = descriptor
	b.descriptorSet = true
}

// SetColor sets the color for the next objects to be created.
func (b *Builder) SetColor(color schemas.Color) {
	b.color = color
	b.colorSet = true
}

// SetSize sets the size for the next objects to be created.
func (b *Builder) SetSize(size schemas.Size) {
	b.size = size.Clone()
	b.sizeSet = true
}

// Create validates that descriptor, color and size have all been configured,
// builds the immutable snapshot, and asks the backend to realize it. A
// backend failure propagates wrapped as a backend error; the object is then
// not returned.
func (b *Builder) Create(name string, position schemas.Position) (schemas.VirtualObject, error) {
	if !b.descriptorSet {
		return schemas.VirtualObject{}, fmt.Errorf("%w: descriptor has not been set, call SetDescriptor first", schemas.ErrUsage)
	}
	if !b.colorSet {
		return schemas.VirtualObject{}, fmt.Errorf("%w: color has not been set, call SetColor first", schemas.ErrUsage)
	}
	if !b.sizeSet {
		return schemas.VirtualObject{}, fmt.Errorf("%w: size has not been set, call SetSize first", schemas.ErrUsage)
	}

	obj := schemas.NewVirtualObject(name, position, b.descriptor, b.color, b.size)
	if err := b.construction.CreateObject(obj); err != nil {
		return schemas.VirtualObject{}, fmt.Errorf("%w: create object %q: %w", schemas.ErrBackend, name, err)
	}
	return obj, nil
}
