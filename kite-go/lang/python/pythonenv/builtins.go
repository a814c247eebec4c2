package pythonenv

import (
	"github.com/kiteco/pyresolve/kite-go/lang/python/pythonast"
	"github.com/kiteco/pyresolve/kite-go/lang/python/pythontype"
)

// BuiltinElement is a name provided by the builtins module
type BuiltinElement struct {
	name  string
	Value pythontype.Value
}

// Name implements Element
func (e *BuiltinElement) Name() string { return e.name }

// Valid implements Element
func (e *BuiltinElement) Valid() bool { return true }

// File implements Element
func (e *BuiltinElement) File() *File { return nil }

// Node implements Element
func (e *BuiltinElement) Node() pythonast.Node { return nil }

// QualifiedName implements QualifiedNamer
func (e *BuiltinElement) QualifiedName() string { return "builtins." + e.name }

var builtins map[string]*BuiltinElement

func init() {
	b := pythontype.Builtins
	values := map[string]pythontype.Value{
		"None":     b.None,
		"True":     pythontype.BoolInstance{},
		"False":    pythontype.BoolInstance{},
		"object":   b.Object,
		"type":     b.Type,
		"bool":     b.Bool,
		"int":      b.Int,
		"float":    b.Float,
		"str":      b.Str,
		"tuple":    b.Tuple,
		"list":     b.List,
		"dict":     b.Dict,
		"property": b.Property,
	}
	builtins = make(map[string]*BuiltinElement, len(values))
	for name, v := range values {
		builtins[name] = &BuiltinElement{name: name, Value: v}
	}
}

// LookupBuiltin gets the element for a builtin name
func LookupBuiltin(name string) (*BuiltinElement, bool) {
	el, ok := builtins[name]
	return el, ok
}
