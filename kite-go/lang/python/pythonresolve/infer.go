package pythonresolve

import (
	"github.com/kiteco/pyresolve/kite-go/lang/python/pythonast"
	"github.com/kiteco/pyresolve/kite-go/lang/python/pythonenv"
	"github.com/kiteco/pyresolve/kite-go/lang/python/pythontype"
	"github.com/kiteco/pyresolve/kite-golib/errors"
)

// InferType computes the type of a reference in file f, or nil if unknown.
// A reference whose type is requested while it is already being computed
// has type nil.
func (c *TypeEvalContext) InferType(f *pythonenv.File, ref pythonast.ReferenceExpr) pythontype.Value {
	if !c.enter(ref) {
		return nil
	}
	defer c.exit(ref)

	qualifier := ref.Qualifier()
	if qualifier == nil && ref.RefName() == "None" {
		return pythontype.Builtins.None
	}

	if t := c.providerReferenceType(f, ref); t != nil {
		return t
	}

	if qualifier != nil {
		if qt := c.TypeOf(f, qualifier); qt != nil {
			if t := specialAttribute(qt, ref.RefName()); t != nil {
				return t
			}
			dir := pythonast.DirectionOf(ref, f.Parent(ref))
			if t, ok := c.PropertyType(qt, ref.RefName(), dir); ok {
				return t
			}
		}
	}

	for _, r := range c.engine.Resolve(f, ref, ResolveContext{Types: c}) {
		switch {
		case r.Element == nil:
			continue
		case r.Element.Node() == pythonast.Node(ref):
			continue
		case !r.Element.Valid():
			line, col := f.Position(ref.Begin())
			c.engine.report(errors.Errorf("reference %s resolved to invalid target %s", ref.RefName(), describe(r.Element)),
				f.Path, line, col)
			continue
		}
		if t := c.TargetType(r.Element, f, ref); t != nil {
			return t
		}
	}
	return nil
}

// specialAttribute types the attributes every value carries
func specialAttribute(qt pythontype.Value, name string) pythontype.Value {
	switch name {
	case "__class__":
		return qt.Type()
	case "__dict__":
		return pythontype.NewDict(pythontype.StrInstance{}, nil)
	case "__doc__", "__name__", "__qualname__", "__module__":
		return pythontype.StrInstance{}
	}
	return nil
}
