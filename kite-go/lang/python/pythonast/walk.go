package pythonast

// Visitor is called for each node encountered by Walk. If the result visitor w
// is not nil, Walk visits each of the children of the node with w, followed by
// a call of w.Visit(nil).
type Visitor interface {
	Visit(n Node) (w Visitor)
}

// EdgeVisitor is like Visitor but also receives the parent of each node and
// the name of the field through which the child was reached.
type EdgeVisitor interface {
	VisitEdge(parent, child Node, field string) (w EdgeVisitor)
}

// Walk traverses a syntax tree in depth-first order
func Walk(v Visitor, n Node) {
	if IsNil(n) {
		return
	}
	if v = v.Visit(n); v == nil {
		return
	}
	children(n, func(child Node, field string) {
		Walk(v, child)
	})
	v.Visit(nil)
}

// WalkEdges traverses a syntax tree in depth-first order, reporting edges
func WalkEdges(v EdgeVisitor, root Node) {
	walkEdges(v, nil, root, "")
}

func walkEdges(v EdgeVisitor, parent, n Node, field string) {
	if IsNil(n) {
		return
	}
	w := v.VisitEdge(parent, n, field)
	if w == nil {
		return
	}
	children(n, func(child Node, field string) {
		walkEdges(w, n, child, field)
	})
	w.VisitEdge(n, nil, "")
}

type inspector func(Node) bool

func (f inspector) Visit(n Node) Visitor {
	if f(n) {
		return f
	}
	return nil
}

// Inspect traverses a syntax tree, calling f for each node and then f(nil)
// after the children of that node have been visited. Children are skipped if f returns false.
func Inspect(n Node, f func(Node) bool) {
	Walk(inspector(f), n)
}

type edgeInspector func(parent, child Node, field string) bool

func (f edgeInspector) VisitEdge(parent, child Node, field string) EdgeVisitor {
	if f(parent, child, field) {
		return f
	}
	return nil
}

// InspectEdges is Inspect for EdgeVisitor
func InspectEdges(n Node, f func(parent, child Node, field string) bool) {
	WalkEdges(edgeInspector(f), n)
}

func exprs(f func(Node, string), field string, xs []Expr) {
	for _, x := range xs {
		if !IsNil(x) {
			f(x, field)
		}
	}
}

func stmts(f func(Node, string), field string, xs []Stmt) {
	for _, x := range xs {
		if !IsNil(x) {
			f(x, field)
		}
	}
}

func params(f func(Node, string), field string, xs []*Parameter) {
	for _, x := range xs {
		if x != nil {
			f(x, field)
		}
	}
}

func args(f func(Node, string), field string, xs []*Argument) {
	for _, x := range xs {
		if x != nil {
			f(x, field)
		}
	}
}

func one(f func(Node, string), field string, n Node) {
	if !IsNil(n) {
		f(n, field)
	}
}

// children calls f for each non-nil child of n, in source order
func children(n Node, f func(child Node, field string)) {
	switch n := n.(type) {
	case *Module:
		stmts(f, "Body", n.Body)
	case *NameExpr, *NumberExpr, *StringExpr, *BadExpr, *BadStmt, *PassStmt:
	case *AttributeExpr:
		one(f, "Value", n.Value)
	case *Argument:
		if n.Name != nil {
			one(f, "Name", n.Name)
		}
		one(f, "Value", n.Value)
	case *CallExpr:
		one(f, "Func", n.Func)
		args(f, "Args", n.Args)
	case *TupleExpr:
		exprs(f, "Elts", n.Elts)
	case *ListExpr:
		exprs(f, "Values", n.Values)
	case *KeyValuePair:
		one(f, "Key", n.Key)
		one(f, "Value", n.Value)
	case *DictExpr:
		for _, item := range n.Items {
			if item != nil {
				f(item, "Items")
			}
		}
	case *BinaryExpr:
		one(f, "Left", n.Left)
		one(f, "Right", n.Right)
	case *LambdaExpr:
		params(f, "Parameters", n.Parameters)
		one(f, "Body", n.Body)
	case *DottedExpr:
		for _, name := range n.Names {
			f(name, "Names")
		}
	case *ExprStmt:
		one(f, "Value", n.Value)
	case *AssignStmt:
		exprs(f, "Targets", n.Targets)
		one(f, "Annotation", n.Annotation)
		one(f, "Value", n.Value)
	case *AugAssignStmt:
		one(f, "Target", n.Target)
		one(f, "Value", n.Value)
	case *DelStmt:
		exprs(f, "Targets", n.Targets)
	case *ReturnStmt:
		one(f, "Value", n.Value)
	case *Branch:
		one(f, "Condition", n.Condition)
		stmts(f, "Body", n.Body)
	case *IfStmt:
		for _, b := range n.Branches {
			f(b, "Branches")
		}
		stmts(f, "Else", n.Else)
	case *ForStmt:
		exprs(f, "Targets", n.Targets)
		one(f, "Iterable", n.Iterable)
		stmts(f, "Body", n.Body)
		stmts(f, "Else", n.Else)
	case *WhileStmt:
		one(f, "Condition", n.Condition)
		stmts(f, "Body", n.Body)
		stmts(f, "Else", n.Else)
	case *DottedAsName:
		one(f, "External", n.External)
		if n.Internal != nil {
			f(n.Internal, "Internal")
		}
	case *ImportNameStmt:
		for _, name := range n.Names {
			f(name, "Names")
		}
	case *ImportAsName:
		one(f, "External", n.External)
		if n.Internal != nil {
			f(n.Internal, "Internal")
		}
	case *ImportFromStmt:
		if n.Package != nil {
			f(n.Package, "Package")
		}
		for _, name := range n.Names {
			f(name, "Names")
		}
	case *CImportStmt:
		for _, name := range n.Names {
			f(name, "Names")
		}
	case *FromCImportStmt:
		if n.Package != nil {
			f(n.Package, "Package")
		}
		for _, name := range n.Names {
			f(name, "Names")
		}
	case *Parameter:
		one(f, "Name", n.Name)
		one(f, "Annotation", n.Annotation)
		one(f, "Default", n.Default)
	case *FunctionDefStmt:
		exprs(f, "Decorators", n.Decorators)
		one(f, "Name", n.Name)
		params(f, "Parameters", n.Parameters)
		one(f, "Annotation", n.Annotation)
		stmts(f, "Body", n.Body)
	case *ClassDefStmt:
		exprs(f, "Decorators", n.Decorators)
		one(f, "Name", n.Name)
		args(f, "Args", n.Args)
		stmts(f, "Body", n.Body)
	}
}
