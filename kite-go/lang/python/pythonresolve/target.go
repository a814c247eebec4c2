package pythonresolve

import (
	"strings"

	"github.com/kiteco/pyresolve/kite-go/lang/python/pythonast"
	"github.com/kiteco/pyresolve/kite-go/lang/python/pythonenv"
	"github.com/kiteco/pyresolve/kite-go/lang/python/pythonflow"
	"github.com/kiteco/pyresolve/kite-go/lang/python/pythontype"
	"github.com/kiteco/pyresolve/kite-golib/errors"
)

// isAssignable checks for names bound by assignment or as parameters
func isAssignable(el pythonenv.Element) bool {
	switch el.(type) {
	case *pythonenv.TargetElement, *pythonenv.ParameterElement:
		return true
	}
	return false
}

// TargetType computes the type of a resolved declaration as seen from the
// anchor reference in file f. The anchor may be nil, which disables
// reaching-definition analysis.
func (c *TypeEvalContext) TargetType(target pythonenv.Element, f *pythonenv.File, anchor pythonast.ReferenceExpr) pythontype.Value {
	if target == nil {
		return nil
	}
	assignable := isAssignable(target)

	if !assignable {
		if t := c.providerTargetType(target, f, anchor); t != nil {
			return t
		}
	}

	if assignable {
		switch target.Name() {
		case "None":
			return pythontype.Builtins.None
		case "True", "False":
			return pythontype.BoolInstance{}
		}
	}

	switch target := target.(type) {
	case *pythonenv.FileElement:
		return target.File().Module()
	case *pythonenv.DirElement:
		// the package, whose members include those of its __init__ module
		return target.Value()
	case *pythonenv.ImportedModuleElement:
		return c.ElementType(target)
	}

	if assignable && c.AllowDataFlow && anchor != nil {
		if t := c.flowType(target, f, anchor); t != nil {
			return t
		}
	}

	if fn, ok := target.(*pythonenv.FunctionElement); ok && isPropertyAccessor(fn) {
		if fn.Class != nil {
			if prop := fn.Class.FindProperty(fn.Name()); prop != nil {
				return propertyValue(prop)
			}
		}
		return pythontype.PropertyInstance{FGet: fn.Value()}
	}

	return c.ElementType(target)
}

func isPropertyAccessor(fn *pythonenv.FunctionElement) bool {
	for _, name := range fn.DecoratorNames() {
		if name == "property" || strings.HasSuffix(name, ".setter") || strings.HasSuffix(name, ".deleter") {
			return true
		}
	}
	return false
}

// flowType unites the types of the definitions reaching the anchor, when the
// anchor is in the scope that declares the target
func (c *TypeEvalContext) flowType(target pythonenv.Element, f *pythonenv.File, anchor pythonast.ReferenceExpr) pythontype.Value {
	if target.File() != f {
		return nil
	}
	if t, ok := target.(*pythonenv.TargetElement); ok {
		if _, isName := t.Expr.(*pythonast.NameExpr); !isName {
			// attributes of self are not tracked by the flow analysis
			return nil
		}
	}
	scope := f.ScopeOf(target.Node())
	if scope == nil || scope != f.ScopeOf(anchor) {
		return nil
	}

	var at pythonast.Node = anchor
	if aug, ok := f.Parent(anchor).(*pythonast.AugAssignStmt); ok && aug.Target == pythonast.Expr(anchor) {
		at = aug
	}

	defs, err := pythonflow.LatestDefinitions(scope, target.Name(), at, true)
	if errors.Cause(err) == pythonflow.ErrInstructionNotFound {
		return nil
	} else if err != nil {
		c.engine.logf("reaching definitions of %s in %s: %v", target.Name(), f.Path, err)
		return nil
	}
	if len(defs) == 0 {
		return nil
	}

	fc := flowContext{c: c, f: f}
	types := make([]pythontype.Value, 0, len(defs))
	for _, def := range defs {
		types = append(types, def.TypeAt(fc))
	}
	return pythontype.Unite(types...)
}

// flowContext adapts a TypeEvalContext to the types of one file
type flowContext struct {
	c *TypeEvalContext
	f *pythonenv.File
}

func (fc flowContext) TypeOf(expr pythonast.Expr) pythontype.Value {
	return fc.c.TypeOf(fc.f, expr)
}

func (fc flowContext) AnnotationType(expr pythonast.Expr) pythontype.Value {
	return fc.c.AnnotationType(fc.f, expr)
}

func (fc flowContext) DeclarationType(def *pythonflow.Definition) pythontype.Value {
	var el pythonenv.Element
	switch stmt := def.Stmt.(type) {
	case *pythonast.FunctionDefStmt:
		if fn := fc.f.Function(stmt); fn != nil {
			el = fn
		}
	case *pythonast.ClassDefStmt:
		if cls := fc.f.Class(stmt); cls != nil {
			el = cls
		}
	default:
		el = fc.f.ElementAt(def.Name)
	}
	if el == nil {
		return nil
	}
	return fc.c.TargetType(el, fc.f, nil)
}
