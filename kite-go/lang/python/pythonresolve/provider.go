package pythonresolve

import (
	"github.com/kiteco/pyresolve/kite-go/lang/python/pythonast"
	"github.com/kiteco/pyresolve/kite-go/lang/python/pythonenv"
	"github.com/kiteco/pyresolve/kite-go/lang/python/pythontype"
	"github.com/kiteco/pyresolve/kite-golib/errors"
)

// ErrNotImplemented is returned by providers lacking a capability
var ErrNotImplemented = errors.New("type provider capability not implemented")

// TypeProvider contributes external knowledge about types. Either method
// returns a nil value when it has no answer, and ErrNotImplemented when it
// does not support the query at all.
type TypeProvider interface {
	// ReferenceType types a reference expression before it is resolved
	ReferenceType(ctx *TypeEvalContext, f *pythonenv.File, ref pythonast.ReferenceExpr) (pythontype.Value, error)
	// TargetType types a declaration a reference resolved to; anchor may be nil
	TargetType(ctx *TypeEvalContext, target pythonenv.Element, anchor pythonast.ReferenceExpr) (pythontype.Value, error)
}

// BaseTypeProvider implements neither capability; embed it and override
type BaseTypeProvider struct{}

// ReferenceType implements TypeProvider
func (BaseTypeProvider) ReferenceType(*TypeEvalContext, *pythonenv.File, pythonast.ReferenceExpr) (pythontype.Value, error) {
	return nil, ErrNotImplemented
}

// TargetType implements TypeProvider
func (BaseTypeProvider) TargetType(*TypeEvalContext, pythonenv.Element, pythonast.ReferenceExpr) (pythontype.Value, error) {
	return nil, ErrNotImplemented
}

// Registry is an ordered list of type providers
type Registry struct {
	providers []TypeProvider
}

// DefaultRegistry holds the providers registered for the process, typically from init functions
var DefaultRegistry = &Registry{}

// RegisterTypeProvider adds a provider to DefaultRegistry
func RegisterTypeProvider(p TypeProvider) {
	DefaultRegistry.Register(p)
}

// NewRegistry creates a registry with the given providers, in query order
func NewRegistry(providers ...TypeProvider) *Registry {
	return &Registry{providers: append([]TypeProvider(nil), providers...)}
}

// Register appends a provider; providers are queried in registration order
func (r *Registry) Register(p TypeProvider) {
	r.providers = append(r.providers, p)
}

// Providers gets the registered providers
func (r *Registry) Providers() []TypeProvider {
	if r == nil {
		return nil
	}
	return append([]TypeProvider(nil), r.providers...)
}

func (c *TypeEvalContext) providerReferenceType(f *pythonenv.File, ref pythonast.ReferenceExpr) pythontype.Value {
	for _, p := range c.engine.Registry.Providers() {
		t, err := p.ReferenceType(c, f, ref)
		if c.providerFailed(p, err) {
			continue
		}
		if t != nil {
			return t
		}
	}
	return nil
}

func (c *TypeEvalContext) providerTargetType(target pythonenv.Element, f *pythonenv.File, anchor pythonast.ReferenceExpr) pythontype.Value {
	for _, p := range c.engine.Registry.Providers() {
		t, err := p.TargetType(c, target, anchor)
		if c.providerFailed(p, err) {
			continue
		}
		if t != nil {
			return t
		}
	}
	return nil
}

// providerFailed logs a provider error, which is never propagated
func (c *TypeEvalContext) providerFailed(p TypeProvider, err error) bool {
	switch {
	case err == nil:
		return false
	case errors.Cause(err) == ErrNotImplemented:
		c.engine.logf("type provider %T: %v", p, err)
	default:
		c.engine.logf("type provider %T failed: %v", p, err)
	}
	return true
}
