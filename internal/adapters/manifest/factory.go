package manifest

import "go.trai.ch/jsl/internal/core/ports"

// Factory implements ports.EmitterFactory.
type Factory struct{}

// NewFactory creates a new Factory.
func NewFactory() *Factory {
	return &Factory{}
}

// New returns a fresh Builder.
func (f *Factory) New() ports.ManifestEmitter {
	return NewBuilder()
}
