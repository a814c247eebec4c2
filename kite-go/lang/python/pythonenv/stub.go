package pythonenv

import (
	"strings"

	"github.com/kiteco/pyresolve/kite-go/lang/python/pythonast"
)

// BuildStubs records a summary of the file: for every assignment target whose
// assigned value is a dotted name, the text of that name. Once a summary
// exists, resolution may use it in place of the syntax tree.
func (f *File) BuildStubs() {
	f.bind()
	f.stubs = make(map[*TargetElement]string)
	f.stubExprs = make(map[*TargetElement]pythonast.Expr)
	for _, el := range f.elements {
		target, ok := el.(*TargetElement)
		if !ok {
			continue
		}
		if dotted, ok := pythonast.DottedName(target.AssignedValue()); ok {
			f.stubs[target] = dotted
		}
	}
}

// HasStubs reports whether BuildStubs has been called for the file
func (f *File) HasStubs() bool {
	return f.stubs != nil
}

// StubText gets the summarized initializer of a target, if any
func (f *File) StubText(t *TargetElement) (string, bool) {
	s, ok := f.stubs[t]
	return s, ok
}

func (f *File) stubValue(t *TargetElement) pythonast.Expr {
	if expr, ok := f.stubExprs[t]; ok {
		return expr
	}
	dotted, ok := f.stubs[t]
	if !ok {
		return nil
	}

	pos := t.Expr.Begin()
	var expr pythonast.Expr
	for i, part := range strings.Split(dotted, ".") {
		word := &pythonast.Word{Begin: pos, End: pos, Literal: part}
		if i == 0 {
			expr = &pythonast.NameExpr{Ident: word, Usage: pythonast.Evaluate}
		} else {
			expr = &pythonast.AttributeExpr{Value: expr, Attribute: word, Usage: pythonast.Evaluate}
		}
	}

	// synthesized names resolve in the scope of the target
	if f.synthetic == nil {
		f.synthetic = make(map[pythonast.Expr]pythonast.Scope)
	}
	scope := f.ScopeOf(t.Expr)
	pythonast.Inspect(expr, func(n pythonast.Node) bool {
		if e, ok := n.(pythonast.Expr); ok {
			f.synthetic[e] = scope
		}
		return true
	})
	f.stubExprs[t] = expr
	return expr
}
