package pythonresolve

import (
	"strings"

	"github.com/kiteco/pyresolve/kite-go/lang/python/pythonast"
	"github.com/kiteco/pyresolve/kite-go/lang/python/pythonenv"
	"github.com/kiteco/pyresolve/kite-go/lang/python/pythontype"
)

// TypeOf computes the type of an arbitrary expression of f, or nil if unknown
func (c *TypeEvalContext) TypeOf(f *pythonenv.File, expr pythonast.Expr) pythontype.Value {
	switch x := expr.(type) {
	case pythonast.ReferenceExpr:
		if pythonast.IsNil(x) {
			return nil
		}
		return c.InferType(f, x)
	case *pythonast.NumberExpr:
		return numberType(x.Number.Literal)
	case *pythonast.StringExpr:
		return pythontype.StrInstance{}
	case *pythonast.TupleExpr:
		elts := make([]pythontype.Value, len(x.Elts))
		for i, elt := range x.Elts {
			elts[i] = c.TypeOf(f, elt)
		}
		return pythontype.NewTuple(elts...)
	case *pythonast.ListExpr:
		var elts []pythontype.Value
		for _, elt := range x.Values {
			elts = append(elts, c.TypeOf(f, elt))
		}
		return pythontype.NewList(pythontype.Unite(elts...))
	case *pythonast.DictExpr:
		var keys, vals []pythontype.Value
		for _, item := range x.Items {
			keys = append(keys, c.TypeOf(f, item.Key))
			vals = append(vals, c.TypeOf(f, item.Value))
		}
		return pythontype.NewDict(pythontype.Unite(keys...), pythontype.Unite(vals...))
	case *pythonast.CallExpr:
		return c.callType(f, x)
	case *pythonast.BinaryExpr:
		return c.binaryType(f, x)
	}
	return nil
}

func numberType(lit string) pythontype.Value {
	lit = strings.ToLower(strings.TrimLeft(lit, "+- "))
	switch {
	case strings.HasSuffix(lit, "j"):
		return nil
	case strings.HasPrefix(lit, "0x"), strings.HasPrefix(lit, "0o"), strings.HasPrefix(lit, "0b"):
		return pythontype.IntInstance{}
	case strings.ContainsAny(lit, ".e"):
		return pythontype.FloatInstance{}
	}
	return pythontype.IntInstance{}
}

// callType computes the type of the result of a call
func (c *TypeEvalContext) callType(f *pythonenv.File, call *pythonast.CallExpr) pythontype.Value {
	var out []pythontype.Value
	for _, fn := range pythontype.Disjuncts(c.TypeOf(f, call.Func)) {
		switch fn := fn.(type) {
		case *pythontype.SourceClass:
			out = append(out, pythontype.SourceInstance{Class: fn})
		case *pythontype.SourceFunction:
			if el := c.engine.Tree.FunctionFor(fn); el != nil {
				out = append(out, c.ReturnType(el))
			}
		case pythontype.BuiltinType:
			if pythontype.Equal(fn, pythontype.Builtins.Property) {
				out = append(out, c.propertyCall(f, call))
			} else if inst, ok := pythontype.InstanceOf(fn.Path); ok {
				out = append(out, inst)
			}
		}
	}
	return pythontype.Unite(out...)
}

// propertyCall types "property(fget, fset, fdel)"
func (c *TypeEvalContext) propertyCall(f *pythonenv.File, call *pythonast.CallExpr) pythontype.Value {
	var accessors [3]pythontype.Value
	for i, arg := range call.Args {
		idx := i
		if arg.Name != nil {
			switch arg.Name.Ident.Literal {
			case "fget":
				idx = 0
			case "fset":
				idx = 1
			case "fdel":
				idx = 2
			default:
				continue
			}
		}
		if idx < len(accessors) {
			accessors[idx] = c.TypeOf(f, arg.Value)
		}
	}
	return pythontype.PropertyInstance{FGet: accessors[0], FSet: accessors[1], FDel: accessors[2]}
}

func (c *TypeEvalContext) binaryType(f *pythonenv.File, expr *pythonast.BinaryExpr) pythontype.Value {
	op := ""
	if expr.Op != nil {
		op = expr.Op.Literal
	}
	switch op {
	case "==", "!=", "<", ">", "<=", ">=", "in", "not", "is":
		return pythontype.BoolInstance{}
	}

	left, right := c.TypeOf(f, expr.Left), c.TypeOf(f, expr.Right)
	switch op {
	case "and", "or":
		return pythontype.Unite(left, right)
	case "+", "-", "*", "/", "//", "%", "**":
	default:
		return nil
	}

	_, lint := left.(pythontype.IntInstance)
	_, rint := right.(pythontype.IntInstance)
	_, lfloat := left.(pythontype.FloatInstance)
	_, rfloat := right.(pythontype.FloatInstance)
	_, lstr := left.(pythontype.StrInstance)
	_, llist := left.(pythontype.ListInstance)
	_, rlist := right.(pythontype.ListInstance)

	switch {
	case lint && rint:
		if op == "/" {
			return pythontype.FloatInstance{}
		}
		return pythontype.IntInstance{}
	case (lint || lfloat) && (rint || rfloat):
		return pythontype.FloatInstance{}
	case lstr && (op == "+" || op == "%" || (op == "*" && rint)):
		return pythontype.StrInstance{}
	case llist && rlist && op == "+":
		return pythontype.Unite(left, right)
	case llist && rint && op == "*":
		return left
	}
	return nil
}

type returnKey struct {
	fn *pythonenv.FunctionElement
}

// ReturnType computes the type returned by a function: its annotation if it
// has one, otherwise the union of the values of its return statements
func (c *TypeEvalContext) ReturnType(fn *pythonenv.FunctionElement) pythontype.Value {
	if fn == nil {
		return nil
	}
	return c.memo(returnKey{fn}, func() pythontype.Value {
		f := fn.File()
		if ann := fn.Def.Annotation; ann != nil {
			return c.AnnotationType(f, ann)
		}
		var out []pythontype.Value
		returns := 0
		pythonast.Inspect(fn.Def, func(n pythonast.Node) bool {
			switch n := n.(type) {
			case *pythonast.FunctionDefStmt:
				return n == fn.Def
			case *pythonast.ClassDefStmt, *pythonast.LambdaExpr:
				return false
			case *pythonast.ReturnStmt:
				returns++
				if n.Value == nil {
					out = append(out, pythontype.Builtins.None)
				} else {
					out = append(out, c.TypeOf(f, n.Value))
				}
			}
			return true
		})
		if returns == 0 {
			return pythontype.Builtins.None
		}
		return pythontype.Unite(out...)
	})
}

// AnnotationType computes the type of values described by an annotation
func (c *TypeEvalContext) AnnotationType(f *pythonenv.File, ann pythonast.Expr) pythontype.Value {
	if name, ok := ann.(*pythonast.NameExpr); ok && name.Ident.Literal == "None" {
		return pythontype.Builtins.None
	}
	var out []pythontype.Value
	for _, t := range pythontype.Disjuncts(c.TypeOf(f, ann)) {
		switch t := t.(type) {
		case *pythontype.SourceClass:
			out = append(out, pythontype.SourceInstance{Class: t})
		case pythontype.BuiltinType:
			if inst, ok := pythontype.InstanceOf(t.Path); ok {
				out = append(out, inst)
			}
		}
	}
	return pythontype.Unite(out...)
}
