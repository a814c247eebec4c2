package pythonresolve

import (
	"github.com/kiteco/pyresolve/kite-go/lang/python/pythonast"
	"github.com/kiteco/pyresolve/kite-go/lang/python/pythonenv"
	"github.com/kiteco/pyresolve/kite-go/lang/python/pythontype"
)

// ElementType computes the type of the value a declaration binds, without
// regard to where it is referenced
func (c *TypeEvalContext) ElementType(el pythonenv.Element) pythontype.Value {
	if el == nil {
		return nil
	}
	return c.memo(el, func() pythontype.Value {
		return c.elementType(el)
	})
}

func (c *TypeEvalContext) elementType(el pythonenv.Element) pythontype.Value {
	switch el := el.(type) {
	case *pythonenv.ClassElement:
		return el.Value()
	case *pythonenv.FunctionElement:
		return el.Value()
	case *pythonenv.FileElement:
		return el.File().Module()
	case *pythonenv.DirElement:
		return el.Value()
	case *pythonenv.BuiltinElement:
		return el.Value
	case *pythonenv.SessionElement:
		return el.Value
	case *pythonenv.ExternalElement:
		return pythontype.ExternalModule{Path: el.Path}
	case *pythonenv.ExprElement:
		return c.TypeOf(el.File(), el.Expr)
	case *pythonenv.ImportedModuleElement:
		if mod := el.Resolve(); mod != nil {
			return c.ElementType(mod)
		}
		return pythontype.ExternalModule{Path: el.Path}
	case *pythonenv.ImportedNameElement:
		var out []pythontype.Value
		for _, member := range el.Resolve() {
			out = append(out, c.ElementType(member))
		}
		return pythontype.Unite(out...)
	case *pythonenv.ParameterElement:
		return c.parameterType(el)
	case *pythonenv.TargetElement:
		return c.assignedType(el)
	}
	return nil
}

func (c *TypeEvalContext) parameterType(el *pythonenv.ParameterElement) pythontype.Value {
	f := el.File()
	if fn, cls := el.Method(); cls != nil && el.Index == 0 && !el.Param.Vararg && !el.Param.Kwarg {
		switch {
		case fn.HasDecorator("staticmethod"):
		case fn.HasDecorator("classmethod"):
			return cls.Value()
		default:
			return pythontype.SourceInstance{Class: cls.Value()}
		}
	}
	switch {
	case el.Param.Vararg:
		return pythontype.NewTuple()
	case el.Param.Kwarg:
		return pythontype.NewDict(pythontype.StrInstance{}, nil)
	case el.Param.Annotation != nil:
		return c.AnnotationType(f, el.Param.Annotation)
	case el.Param.Default != nil:
		return c.TypeOf(f, el.Param.Default)
	}
	return nil
}

func (c *TypeEvalContext) assignedType(el *pythonenv.TargetElement) pythontype.Value {
	f := el.File()
	if ann := el.Annotation(); ann != nil {
		if t := c.AnnotationType(f, ann); t != nil {
			return t
		}
	}
	switch stmt := el.Stmt.(type) {
	case *pythonast.AssignStmt:
		if v := el.AssignedValue(); v != nil {
			return c.TypeOf(f, v)
		}
		if stmt.Value == nil {
			return nil
		}
		// unpacking something other than a display
		t := c.TypeOf(f, stmt.Value)
		for _, i := range el.Unpack {
			t = pythontype.IndexType(t, i)
		}
		return t
	case *pythonast.ForStmt:
		t := pythontype.ElementType(c.TypeOf(f, stmt.Iterable))
		for _, i := range el.Unpack {
			t = pythontype.IndexType(t, i)
		}
		return t
	}
	return nil
}

// mro lists a class followed by its source base classes, depth first and
// left to right, each class once
func (c *TypeEvalContext) mro(cls *pythonenv.ClassElement) []*pythonenv.ClassElement {
	var out []*pythonenv.ClassElement
	seen := make(map[*pythonenv.ClassElement]bool)
	var visit func(*pythonenv.ClassElement)
	visit = func(cls *pythonenv.ClassElement) {
		if cls == nil || seen[cls] {
			return
		}
		seen[cls] = true
		out = append(out, cls)
		for _, base := range cls.Bases() {
			for _, t := range pythontype.Disjuncts(c.TypeOf(cls.File(), base)) {
				if bcls, ok := t.(*pythontype.SourceClass); ok {
					visit(c.engine.Tree.ClassFor(bcls))
				}
			}
		}
	}
	visit(cls)
	return out
}

// classMembers finds an attribute on a class or, for instances, one of the
// class's instance attributes; the first class in the mro that declares the
// name wins
func (c *TypeEvalContext) classMembers(cls *pythonenv.ClassElement, name string, instance bool) []pythonenv.Element {
	for _, k := range c.mro(cls) {
		members := k.Members(name)
		if instance {
			members = append(append([]pythonenv.Element(nil), members...), k.InstanceAttributes(name)...)
		}
		if len(members) > 0 {
			return members
		}
	}
	return nil
}

// expandImports replaces names bound by "from m import x" with the
// declarations of x when those are in the tree
func expandImports(els []pythonenv.Element) []pythonenv.Element {
	var out []pythonenv.Element
	for _, el := range els {
		if imp, ok := el.(*pythonenv.ImportedNameElement); ok {
			if resolved := imp.Resolve(); len(resolved) > 0 {
				out = append(out, resolved...)
				continue
			}
		}
		out = append(out, el)
	}
	return out
}
