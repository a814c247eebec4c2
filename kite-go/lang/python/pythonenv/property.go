package pythonenv

import (
	"github.com/kiteco/pyresolve/kite-go/lang/python/pythonast"
)

// Property is a managed attribute of a class together with its accessors.
// Accessors are nil when not declared.
type Property struct {
	Name    string
	Getter  *FunctionElement
	Setter  *FunctionElement
	Deleter *FunctionElement
}

// ByDirection gets the accessor used for the given access direction, or nil
func (p *Property) ByDirection(dir pythonast.AccessDirection) *FunctionElement {
	switch dir {
	case pythonast.Write:
		return p.Setter
	case pythonast.Del:
		return p.Deleter
	default:
		return p.Getter
	}
}

// FindProperty finds a property declared directly in the class body, either
// with the @property family of decorators or by assigning the result of
// property(fget, fset, fdel). It returns nil if there is no such property;
// base classes are not searched.
func (e *ClassElement) FindProperty(name string) *Property {
	var prop *Property
	get := func() *Property {
		if prop == nil {
			prop = &Property{Name: name}
		}
		return prop
	}

	for _, stmt := range e.Def.Body {
		switch stmt := stmt.(type) {
		case *pythonast.FunctionDefStmt:
			fn := e.file.Function(stmt)
			if fn == nil {
				continue
			}
			for _, dec := range stmt.Decorators {
				switch dec := dec.(type) {
				case *pythonast.NameExpr:
					if dec.Ident.Literal == "property" && fn.Name() == name {
						get().Getter = fn
					}
				case *pythonast.AttributeExpr:
					owner, ok := dec.Value.(*pythonast.NameExpr)
					if !ok || owner.Ident.Literal != name {
						continue
					}
					switch dec.Attribute.Literal {
					case "getter":
						get().Getter = fn
					case "setter":
						get().Setter = fn
					case "deleter":
						get().Deleter = fn
					}
				}
			}
		case *pythonast.AssignStmt:
			if !assignsName(stmt, name) {
				continue
			}
			call, ok := stmt.Value.(*pythonast.CallExpr)
			if !ok {
				continue
			}
			if fn, ok := call.Func.(*pythonast.NameExpr); !ok || fn.Ident.Literal != "property" {
				continue
			}
			p := get()
			for i, arg := range call.Args {
				accessor := e.accessor(arg.Value)
				slot := i
				if arg.Name != nil {
					switch arg.Name.Ident.Literal {
					case "fget":
						slot = 0
					case "fset":
						slot = 1
					case "fdel":
						slot = 2
					default:
						continue
					}
				}
				switch slot {
				case 0:
					p.Getter = accessor
				case 1:
					p.Setter = accessor
				case 2:
					p.Deleter = accessor
				}
			}
		}
	}
	return prop
}

// accessor finds the function named by an argument to property(...), looking
// first in the class body and then in the module
func (e *ClassElement) accessor(arg pythonast.Expr) *FunctionElement {
	name, ok := arg.(*pythonast.NameExpr)
	if !ok {
		return nil
	}
	for _, scope := range []pythonast.Scope{e.Def, e.file.AST} {
		bindings := e.file.Bindings(scope, name.Ident.Literal)
		for i := len(bindings) - 1; i >= 0; i-- {
			if fn, ok := bindings[i].(*FunctionElement); ok {
				return fn
			}
		}
	}
	return nil
}

func assignsName(stmt *pythonast.AssignStmt, name string) bool {
	for _, t := range stmt.Targets {
		if n, ok := t.(*pythonast.NameExpr); ok && n.Ident.Literal == name {
			return true
		}
	}
	return false
}
