package pythonflow

import (
	"sort"

	"github.com/kiteco/pyresolve/kite-go/lang/python/pythonast"
	"github.com/kiteco/pyresolve/kite-golib/errors"
)

// ErrInstructionNotFound is returned when the anchor is not part of the body of the scope
var ErrInstructionNotFound = errors.New("instruction not found in scope")

// the body of a loop changes the set of reaching definitions at most once per
// binding statement, so this bound is only reached for huge loop bodies
const maxLoopIterations = 32

// DefinitionKind distinguishes the ways a name can be bound
type DefinitionKind int

const (
	// AssignDef is "x = value", possibly unpacking
	AssignDef DefinitionKind = iota
	// AugAssignDef is "x += value"
	AugAssignDef
	// LoopDef is "for x in values"
	LoopDef
	// ParameterDef is a parameter of the enclosing function
	ParameterDef
	// ImportDef is an import statement
	ImportDef
	// FunctionDef is a def statement
	FunctionDef
	// ClassDef is a class statement
	ClassDef
)

// Definition is a binding of a name that may reach a point in the program
type Definition struct {
	Kind   DefinitionKind
	Name   *pythonast.NameExpr // Name is the bound name node
	Stmt   pythonast.Node      // Stmt is the binding statement, or the *Parameter
	Unpack []int               // Unpack indexes into nested tuple targets
	Target pythonast.Expr      // Target is the aug-assign target for AugAssignDef
}

// defset is an ordered set of definitions
type defset []*Definition

func union(sets ...defset) defset {
	var out defset
	seen := make(map[*Definition]bool)
	for _, s := range sets {
		for _, d := range s {
			if !seen[d] {
				seen[d] = true
				out = append(out, d)
			}
		}
	}
	return out
}

type analyzer struct {
	name         string
	anchor       pythonast.Node
	augmented    bool
	defs         map[pythonast.Node]*Definition
	ignoreAnchor bool
	found        bool
	result       defset
}

// LatestDefinitions finds the definitions of name in scope that may be in
// effect immediately before anchor executes. Nested scopes are opaque except
// for the names their definitions bind. When includeAugmented is true,
// augmented assignments count as definitions. ErrInstructionNotFound is
// returned if the anchor is not in the body of the scope.
func LatestDefinitions(scope pythonast.Scope, name string, anchor pythonast.Node, includeAugmented bool) ([]*Definition, error) {
	if pythonast.IsNil(anchor) {
		return nil, ErrInstructionNotFound
	}
	a := &analyzer{
		name:      name,
		anchor:    anchor,
		augmented: includeAugmented,
		defs:      make(map[pythonast.Node]*Definition),
	}

	in := a.parameters(scope)
	switch s := scope.(type) {
	case *pythonast.Module:
		a.block(s.Body, in)
	case *pythonast.FunctionDefStmt:
		a.block(s.Body, in)
	case *pythonast.ClassDefStmt:
		a.block(s.Body, in)
	case *pythonast.LambdaExpr:
		if a.contains(s.Body) {
			a.hit(in)
		}
	}

	if !a.found {
		return nil, ErrInstructionNotFound
	}

	out := append([]*Definition(nil), a.result...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Name.Begin() < out[j].Name.Begin()
	})
	return out, nil
}

func (a *analyzer) parameters(scope pythonast.Scope) defset {
	var params []*pythonast.Parameter
	switch s := scope.(type) {
	case *pythonast.FunctionDefStmt:
		params = s.Parameters
	case *pythonast.LambdaExpr:
		params = s.Parameters
	}
	var out defset
	for _, p := range params {
		if p.Name != nil && p.Name.Ident.Literal == a.name {
			out = defset{a.def(ParameterDef, p.Name, p, nil)}
		}
	}
	return out
}

func (a *analyzer) def(kind DefinitionKind, name *pythonast.NameExpr, stmt pythonast.Node, unpack []int) *Definition {
	if d, ok := a.defs[name]; ok {
		return d
	}
	d := &Definition{Kind: kind, Name: name, Stmt: stmt, Unpack: unpack}
	a.defs[name] = d
	return d
}

func (a *analyzer) contains(n pythonast.Node) bool {
	if a.ignoreAnchor || pythonast.IsNil(n) {
		return false
	}
	if n == a.anchor {
		return true
	}
	return a.anchor.Begin() >= n.Begin() && a.anchor.End() <= n.End() && n.Begin() < n.End()
}

func (a *analyzer) hit(s defset) {
	if a.ignoreAnchor || a.found {
		return
	}
	a.found = true
	a.result = s
}

func (a *analyzer) block(stmts []pythonast.Stmt, in defset) defset {
	s := in
	for _, stmt := range stmts {
		if a.found {
			return s
		}
		s = a.stmt(stmt, s)
	}
	return s
}

func (a *analyzer) stmt(stmt pythonast.Stmt, in defset) defset {
	switch st := stmt.(type) {
	case *pythonast.IfStmt:
		s := in
		var outs []defset
		for _, b := range st.Branches {
			if a.contains(b.Condition) {
				a.hit(s)
				return s
			}
			outs = append(outs, a.block(b.Body, s))
			if a.found {
				return s
			}
		}
		if len(st.Else) > 0 {
			outs = append(outs, a.block(st.Else, s))
		} else {
			outs = append(outs, s)
		}
		return union(outs...)

	case *pythonast.ForStmt:
		if a.contains(st.Iterable) {
			a.hit(in)
			return in
		}
		body := func(s defset) defset {
			return a.block(st.Body, a.loopTargets(st, s))
		}
		head := a.fixpoint(in, body)
		for _, t := range st.Targets {
			if a.contains(t) {
				a.hit(head)
				return head
			}
		}
		body(head)
		if a.found {
			return head
		}
		return a.block(st.Else, head)

	case *pythonast.WhileStmt:
		body := func(s defset) defset {
			return a.block(st.Body, s)
		}
		head := a.fixpoint(in, body)
		if a.contains(st.Condition) {
			a.hit(head)
			return head
		}
		body(head)
		if a.found {
			return head
		}
		return a.block(st.Else, head)

	case *pythonast.FunctionDefStmt:
		if a.contains(st) {
			// decorators, defaults and annotations run before the name is bound
			a.hit(in)
			return in
		}
		if st.Name.Ident.Literal == a.name {
			return defset{a.def(FunctionDef, st.Name, st, nil)}
		}
		return in

	case *pythonast.ClassDefStmt:
		if a.contains(st) {
			a.hit(in)
			return in
		}
		if st.Name.Ident.Literal == a.name {
			return defset{a.def(ClassDef, st.Name, st, nil)}
		}
		return in
	}

	if a.contains(stmt) {
		a.hit(in)
		return in
	}
	return a.effect(stmt, in)
}

// fixpoint computes the definitions reaching the head of a loop
func (a *analyzer) fixpoint(in defset, body func(defset) defset) defset {
	saved := a.ignoreAnchor
	a.ignoreAnchor = true
	defer func() { a.ignoreAnchor = saved }()

	head := in
	for i := 0; i < maxLoopIterations; i++ {
		next := union(in, head, body(head))
		if len(next) == len(head) {
			break
		}
		head = next
	}
	return head
}

func (a *analyzer) loopTargets(st *pythonast.ForStmt, in defset) defset {
	s := in
	for i, t := range st.Targets {
		var prefix []int
		if len(st.Targets) > 1 {
			prefix = []int{i}
		}
		s = a.bindTarget(LoopDef, st, t, prefix, s)
	}
	return s
}

// bindTarget applies an assignment to a (possibly unpacking) target
func (a *analyzer) bindTarget(kind DefinitionKind, stmt pythonast.Stmt, target pythonast.Expr, unpack []int, in defset) defset {
	switch t := target.(type) {
	case *pythonast.NameExpr:
		if t.Ident.Literal == a.name {
			return defset{a.def(kind, t, stmt, unpack)}
		}
	case *pythonast.TupleExpr:
		s := in
		for i, elt := range t.Elts {
			s = a.bindTarget(kind, stmt, elt, appendIndex(unpack, i), s)
		}
		return s
	case *pythonast.ListExpr:
		s := in
		for i, elt := range t.Values {
			s = a.bindTarget(kind, stmt, elt, appendIndex(unpack, i), s)
		}
		return s
	}
	return in
}

func appendIndex(unpack []int, i int) []int {
	out := make([]int, len(unpack), len(unpack)+1)
	copy(out, unpack)
	return append(out, i)
}

// effect applies a simple statement to the set of reaching definitions
func (a *analyzer) effect(stmt pythonast.Stmt, in defset) defset {
	switch st := stmt.(type) {
	case *pythonast.AssignStmt:
		if st.Value == nil {
			// a bare annotation does not bind
			return in
		}
		s := in
		for _, t := range st.Targets {
			s = a.bindTarget(AssignDef, st, t, nil, s)
		}
		return s

	case *pythonast.AugAssignStmt:
		name, ok := st.Target.(*pythonast.NameExpr)
		if !ok || name.Ident.Literal != a.name || !a.augmented {
			return in
		}
		d := a.def(AugAssignDef, name, st, nil)
		d.Target = st.Target
		return defset{d}

	case *pythonast.DelStmt:
		for _, t := range st.Targets {
			if name, ok := t.(*pythonast.NameExpr); ok && name.Ident.Literal == a.name {
				return nil
			}
		}
		return in

	case *pythonast.ReturnStmt:
		// nothing after a return is reachable
		return nil

	case *pythonast.ImportNameStmt:
		return a.importNames(st, st.Names, in)
	case *pythonast.CImportStmt:
		return a.importNames(st, st.Names, in)
	case *pythonast.ImportFromStmt:
		return a.importFromNames(st, st.Names, in)
	case *pythonast.FromCImportStmt:
		return a.importFromNames(st, st.Names, in)
	}
	return in
}

func (a *analyzer) importNames(stmt pythonast.Stmt, names []*pythonast.DottedAsName, in defset) defset {
	s := in
	for _, n := range names {
		bound := n.Internal
		if bound == nil && n.External != nil && len(n.External.Names) > 0 {
			bound = n.External.Names[0]
		}
		if bound != nil && bound.Ident.Literal == a.name {
			s = defset{a.def(ImportDef, bound, stmt, nil)}
		}
	}
	return s
}

func (a *analyzer) importFromNames(stmt pythonast.Stmt, names []*pythonast.ImportAsName, in defset) defset {
	s := in
	for _, n := range names {
		bound := n.Internal
		if bound == nil {
			bound = n.External
		}
		if bound != nil && bound.Ident.Literal == a.name {
			s = defset{a.def(ImportDef, bound, stmt, nil)}
		}
	}
	return s
}
