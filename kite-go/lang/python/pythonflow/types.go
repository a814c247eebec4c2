package pythonflow

import (
	"github.com/kiteco/pyresolve/kite-go/lang/python/pythonast"
	"github.com/kiteco/pyresolve/kite-go/lang/python/pythontype"
)

// TypeContext evaluates the expressions a definition depends on
type TypeContext interface {
	// TypeOf gets the type of an expression, or nil if unknown
	TypeOf(expr pythonast.Expr) pythontype.Value
	// AnnotationType gets the type described by an annotation expression
	AnnotationType(expr pythonast.Expr) pythontype.Value
	// DeclarationType gets the type of a definition that is not an assignment,
	// such as a function, class, parameter or import
	DeclarationType(def *Definition) pythontype.Value
}

// TypeAt computes the type a definition gives to its name
func (d *Definition) TypeAt(ctx TypeContext) pythontype.Value {
	switch d.Kind {
	case AssignDef:
		stmt, ok := d.Stmt.(*pythonast.AssignStmt)
		if !ok {
			return nil
		}
		if stmt.Annotation != nil && len(stmt.Targets) == 1 && stmt.Targets[0] == pythonast.Expr(d.Name) {
			if t := ctx.AnnotationType(stmt.Annotation); t != nil {
				return t
			}
		}
		return unpack(ctx, stmt.Value, d.Unpack)

	case AugAssignDef:
		stmt, ok := d.Stmt.(*pythonast.AugAssignStmt)
		if !ok {
			return nil
		}
		return ctx.TypeOf(stmt.Value)

	case LoopDef:
		stmt, ok := d.Stmt.(*pythonast.ForStmt)
		if !ok {
			return nil
		}
		t := pythontype.ElementType(ctx.TypeOf(stmt.Iterable))
		for _, i := range d.Unpack {
			t = pythontype.IndexType(t, i)
		}
		return t
	}
	return ctx.DeclarationType(d)
}

// unpack descends through tuple and list displays while the value is
// syntactic, then switches to unpacking the evaluated type
func unpack(ctx TypeContext, value pythonast.Expr, path []int) pythontype.Value {
	for len(path) > 0 {
		var elts []pythonast.Expr
		switch v := value.(type) {
		case *pythonast.TupleExpr:
			elts = v.Elts
		case *pythonast.ListExpr:
			elts = v.Values
		}
		if path[0] >= len(elts) {
			break
		}
		value = elts[path[0]]
		path = path[1:]
	}
	if pythonast.IsNil(value) {
		return nil
	}
	t := ctx.TypeOf(value)
	for _, i := range path {
		t = pythontype.IndexType(t, i)
	}
	return t
}
