package pythonresolve

import (
	"github.com/kiteco/pyresolve/kite-go/lang/python/pythonast"
	"github.com/kiteco/pyresolve/kite-go/lang/python/pythonenv"
	"github.com/kiteco/pyresolve/kite-go/lang/python/pythontype"
)

// PropertyType computes the type of accessing attr on a value of type qt when
// attr is a managed property. The second result is false if attr is not a
// property; a property without an accessor for dir has type nil. For a union,
// the results of the members that have the property are united.
func (c *TypeEvalContext) PropertyType(qt pythontype.Value, attr string, dir pythonast.AccessDirection) (pythontype.Value, bool) {
	switch qt := qt.(type) {
	case *pythontype.SourceClass:
		prop := c.findProperty(c.engine.Tree.ClassFor(qt), attr)
		if prop == nil {
			return nil, false
		}
		// accessed on the class itself, the attribute is the property object
		return propertyValue(prop), true

	case pythontype.SourceInstance:
		prop := c.findProperty(c.engine.Tree.ClassFor(qt.Class), attr)
		if prop == nil {
			return nil, false
		}
		accessor := prop.ByDirection(dir)
		if accessor == nil {
			return nil, true
		}
		return c.ReturnType(accessor), true

	case pythontype.Union:
		var found bool
		var out []pythontype.Value
		for _, member := range qt.Constituents {
			if t, ok := c.PropertyType(member, attr, dir); ok {
				found = true
				out = append(out, t)
			}
		}
		return pythontype.Unite(out...), found
	}
	return nil, false
}

// findProperty searches the class and then its bases
func (c *TypeEvalContext) findProperty(cls *pythonenv.ClassElement, attr string) *pythonenv.Property {
	if cls == nil {
		return nil
	}
	for _, k := range c.mro(cls) {
		if prop := k.FindProperty(attr); prop != nil {
			return prop
		}
	}
	return nil
}

func propertyValue(prop *pythonenv.Property) pythontype.PropertyInstance {
	var p pythontype.PropertyInstance
	if prop.Getter != nil {
		p.FGet = prop.Getter.Value()
	}
	if prop.Setter != nil {
		p.FSet = prop.Setter.Value()
	}
	if prop.Deleter != nil {
		p.FDel = prop.Deleter.Value()
	}
	return p
}
