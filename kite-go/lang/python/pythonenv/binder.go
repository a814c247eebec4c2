package pythonenv

import (
	"github.com/kiteco/pyresolve/kite-go/lang/python/pythonast"
	"github.com/kiteco/pyresolve/kite-go/lang/python/pythontype"
)

// bind builds the binding tables for the file. Every name node with Assign or
// Import usage declares something in the scope the scope table assigns to it;
// assignments to attributes of the first parameter of a method are recorded as
// instance attributes of the class.
func (f *File) bind() {
	if f.bound {
		return
	}
	f.bound = true
	f.ensureTables()

	f.bindings = make(map[pythonast.Scope]map[string][]Element)
	f.elements = make(map[pythonast.Node]Element)
	f.classes = make(map[*pythonast.ClassDefStmt]*ClassElement)
	f.funcs = make(map[*pythonast.FunctionDefStmt]*FunctionElement)
	f.attrs = make(map[*pythonast.ClassDefStmt]map[string][]Element)

	pythonast.Inspect(f.AST, func(n pythonast.Node) bool {
		switch n := n.(type) {
		case *pythonast.NameExpr:
			f.bindName(n)
		case *pythonast.AttributeExpr:
			if n.Usage == pythonast.Assign {
				f.bindInstanceAttr(n)
			}
		}
		return true
	})
}

func (f *File) addBinding(scope pythonast.Scope, name string, el Element) {
	table := f.bindings[scope]
	if table == nil {
		table = make(map[string][]Element)
		f.bindings[scope] = table
	}
	table[name] = append(table[name], el)
	f.elements[el.Node()] = el
}

func (f *File) bindName(name *pythonast.NameExpr) {
	if name.Usage != pythonast.Assign && name.Usage != pythonast.Import {
		return
	}
	if name.Ident == nil || name.Ident.Literal == "" {
		return
	}

	scope := f.ScopeOf(name)
	var el Element
	switch p := f.Parent(name).(type) {
	case *pythonast.FunctionDefStmt:
		if p.Name != name {
			return
		}
		fn := &FunctionElement{file: f, Def: p}
		if def, ok := scope.(*pythonast.ClassDefStmt); ok {
			fn.Class = f.classes[def]
		}
		fn.value = &pythontype.SourceFunction{Addr: f.address(scope, name.Ident.Literal), Def: p}
		if fn.Class != nil {
			fn.value.Class = fn.Class.value
		}
		f.funcs[p] = fn
		el = fn
	case *pythonast.ClassDefStmt:
		if p.Name != name {
			return
		}
		cls := &ClassElement{file: f, Def: p}
		cls.value = &pythontype.SourceClass{Addr: f.address(scope, name.Ident.Literal), Def: p}
		f.classes[p] = cls
		el = cls
	case *pythonast.Parameter:
		el = &ParameterElement{file: f, Param: p, Scope: scope, Index: paramIndex(scope, p)}
	case *pythonast.DottedAsName:
		if p.Internal != name {
			return
		}
		el = &ImportedModuleElement{
			file:    f,
			Stmt:    f.stmtOf(p),
			Alias:   name,
			Path:    p.External.Join(),
			CImport: f.isCImport(p),
		}
	case *pythonast.DottedExpr:
		// "import a.b.c" binds "a"
		dan, ok := f.Parent(p).(*pythonast.DottedAsName)
		if !ok || dan.Internal != nil || p.Names[0] != name {
			return
		}
		el = &ImportedModuleElement{
			file:    f,
			Stmt:    f.stmtOf(dan),
			Alias:   name,
			Path:    name.Ident.Literal,
			CImport: f.isCImport(dan),
		}
	case *pythonast.ImportAsName:
		if p.Internal != name && (p.Internal != nil || p.External != name) {
			return
		}
		imp := &ImportedNameElement{
			file:    f,
			Stmt:    f.stmtOf(p),
			Alias:   name,
			Member:  p.External.Ident.Literal,
			CImport: f.isCImport(p),
		}
		switch stmt := imp.Stmt.(type) {
		case *pythonast.ImportFromStmt:
			imp.Dots = stmt.Dots
			if stmt.Package != nil {
				imp.Module = stmt.Package.Join()
			}
		case *pythonast.FromCImportStmt:
			imp.Dots = stmt.Dots
			if stmt.Package != nil {
				imp.Module = stmt.Package.Join()
			}
		}
		el = imp
	default:
		target := f.target(name)
		if target == nil {
			return
		}
		el = target
	}
	f.addBinding(scope, name.Ident.Literal, el)
}

func (f *File) bindInstanceAttr(attr *pythonast.AttributeExpr) {
	self, ok := attr.Value.(*pythonast.NameExpr)
	if !ok {
		return
	}
	method, ok := f.ScopeOf(attr).(*pythonast.FunctionDefStmt)
	if !ok || len(method.Parameters) == 0 || method.Parameters[0].Name.Ident.Literal != self.Ident.Literal {
		return
	}
	cls, ok := f.ParentScope(method).(*pythonast.ClassDefStmt)
	if !ok {
		return
	}
	target := f.target(attr)
	if target == nil {
		return
	}
	table := f.attrs[cls]
	if table == nil {
		table = make(map[string][]Element)
		f.attrs[cls] = table
	}
	table[attr.Attribute.Literal] = append(table[attr.Attribute.Literal], target)
	f.elements[attr] = target
}

// target builds the element for an assignment target by walking up through
// any tuple or list displays to the assigning statement
func (f *File) target(expr pythonast.Expr) *TargetElement {
	var unpack []int
	var child pythonast.Node = expr
	for p := f.Parent(expr); p != nil; child, p = p, f.Parent(p) {
		switch p := p.(type) {
		case *pythonast.TupleExpr:
			unpack = append([]int{indexOf(p.Elts, child)}, unpack...)
		case *pythonast.ListExpr:
			unpack = append([]int{indexOf(p.Values, child)}, unpack...)
		case *pythonast.AssignStmt:
			return &TargetElement{file: f, Expr: expr, Stmt: p, Kind: Assignment, Unpack: unpack}
		case *pythonast.ForStmt:
			// "for a, b in x" has one target per element
			if len(p.Targets) > 1 {
				unpack = append([]int{indexOf(p.Targets, child)}, unpack...)
			}
			return &TargetElement{file: f, Expr: expr, Stmt: p, Kind: LoopTarget, Unpack: unpack}
		default:
			return nil
		}
	}
	return nil
}

func (f *File) stmtOf(n pythonast.Node) pythonast.Stmt {
	for p := f.Parent(n); p != nil; p = f.Parent(p) {
		if stmt, ok := p.(pythonast.Stmt); ok {
			return stmt
		}
	}
	return nil
}

func (f *File) isCImport(n pythonast.Node) bool {
	switch f.stmtOf(n).(type) {
	case *pythonast.CImportStmt, *pythonast.FromCImportStmt:
		return true
	}
	return false
}

func indexOf(xs []pythonast.Expr, n pythonast.Node) int {
	for i, x := range xs {
		if pythonast.Node(x) == n {
			return i
		}
	}
	return -1
}

func paramIndex(scope pythonast.Scope, p *pythonast.Parameter) int {
	var params []*pythonast.Parameter
	switch s := scope.(type) {
	case *pythonast.FunctionDefStmt:
		params = s.Parameters
	case *pythonast.LambdaExpr:
		params = s.Parameters
	}
	for i, q := range params {
		if q == p {
			return i
		}
	}
	return -1
}
