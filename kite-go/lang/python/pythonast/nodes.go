package pythonast

import (
	"go/token"
	"reflect"
)

// Word is a single lexical item together with its position in the source
type Word struct {
	Begin   token.Pos
	End     token.Pos
	Literal string
}

// Node is the interface implemented by all syntax tree nodes
type Node interface {
	Begin() token.Pos
	End() token.Pos
	iNode()
}

// Expr is the interface implemented by all expression nodes
type Expr interface {
	Node
	iExpr()
}

// Stmt is the interface implemented by all statement nodes
type Stmt interface {
	Node
	iStmt()
}

// Scope is implemented by nodes that introduce a new lexical scope
type Scope interface {
	Node
	iScope()
}

// ReferenceExpr is an expression that names a binding, optionally qualified
// by another expression (as in "a.b").
type ReferenceExpr interface {
	Expr
	// RefName is the identifier being referenced
	RefName() string
	// Qualifier is the expression before the dot, or nil
	Qualifier() Expr
	// RefUsage is the usage of the reference
	RefUsage() Usage
}

// IsNil checks whether a node is nil, including typed nil pointers held in an interface
func IsNil(n Node) bool {
	if n == nil {
		return true
	}
	v := reflect.ValueOf(n)
	return v.Kind() == reflect.Ptr && v.IsNil()
}

// Dialect identifies the flavour of python a module was written in
type Dialect int

const (
	// Python is plain python
	Python Dialect = iota
	// Cython is the cython dialect, which adds cimport statements
	Cython
)

// String implements fmt.Stringer
func (d Dialect) String() string {
	switch d {
	case Cython:
		return "cython"
	default:
		return "python"
	}
}

// -- expressions

// BadExpr represents an expression the front end could not translate
type BadExpr struct {
	From, To token.Pos
	Text     string
}

// NameExpr represents a bare identifier
type NameExpr struct {
	Ident *Word
	Usage Usage
}

// AttributeExpr represents an attribute access such as "a.b"
type AttributeExpr struct {
	Value     Expr
	Attribute *Word
	Usage     Usage
}

// Argument is a positional or keyword argument to a call
type Argument struct {
	Name  *NameExpr // Name is nil for positional arguments
	Value Expr
}

// CallExpr represents a call such as "f(x)"
type CallExpr struct {
	Func       Expr
	Args       []*Argument
	RightParen token.Pos
}

// NumberExpr represents a numeric literal
type NumberExpr struct {
	Number *Word
}

// StringExpr represents one or more adjacent string literals
type StringExpr struct {
	Strings []*Word
}

// TupleExpr represents a tuple display or an unpacking target
type TupleExpr struct {
	Elts     []Expr
	From, To token.Pos
	Usage    Usage
}

// ListExpr represents a list display or an unpacking target
type ListExpr struct {
	Values   []Expr
	From, To token.Pos
	Usage    Usage
}

// KeyValuePair is an entry in a dict display
type KeyValuePair struct {
	Key   Expr
	Value Expr
}

// DictExpr represents a dict display
type DictExpr struct {
	Items    []*KeyValuePair
	From, To token.Pos
}

// BinaryExpr represents a binary operation
type BinaryExpr struct {
	Left  Expr
	Op    *Word
	Right Expr
}

// LambdaExpr represents a lambda expression
type LambdaExpr struct {
	Lambda     token.Pos
	Parameters []*Parameter
	Body       Expr
}

// DottedExpr is a dotted name as it appears in an import statement
type DottedExpr struct {
	Names []*NameExpr
}

// Join gets the dotted name as a string
func (d *DottedExpr) Join() string {
	var out string
	for i, n := range d.Names {
		if i > 0 {
			out += "."
		}
		out += n.Ident.Literal
	}
	return out
}

// -- statements and clauses

// BadStmt represents a statement the front end could not translate
type BadStmt struct {
	From, To token.Pos
	Text     string
}

// PassStmt represents "pass"
type PassStmt struct {
	Pass *Word
}

// ExprStmt is an expression evaluated for its side effects
type ExprStmt struct {
	Value Expr
}

// AssignStmt represents "a = b = value", optionally annotated
type AssignStmt struct {
	Targets    []Expr
	Annotation Expr
	Value      Expr // Value is nil for a bare annotation "x: int"
}

// AugAssignStmt represents "a += value"
type AugAssignStmt struct {
	Target Expr
	Op     *Word
	Value  Expr
}

// DelStmt represents "del a, b"
type DelStmt struct {
	Del     *Word
	Targets []Expr
}

// ReturnStmt represents "return value"
type ReturnStmt struct {
	Return *Word
	Value  Expr
}

// Branch is a condition and body in an if statement
type Branch struct {
	Condition Expr
	Body      []Stmt
}

// IfStmt represents if/elif/else
type IfStmt struct {
	If       *Word
	Branches []*Branch
	Else     []Stmt
	EndPos   token.Pos
}

// ForStmt represents a for loop
type ForStmt struct {
	For      *Word
	Targets  []Expr
	Iterable Expr
	Body     []Stmt
	Else     []Stmt
	EndPos   token.Pos
}

// WhileStmt represents a while loop
type WhileStmt struct {
	While     *Word
	Condition Expr
	Body      []Stmt
	Else      []Stmt
	EndPos    token.Pos
}

// DottedAsName is "a.b.c as d" in an import statement
type DottedAsName struct {
	External *DottedExpr
	Internal *NameExpr // Internal is nil if there is no "as" clause
}

// ImportNameStmt represents "import a.b, c as d"
type ImportNameStmt struct {
	Import *Word
	Names  []*DottedAsName
}

// ImportAsName is "a as b" in a from-import statement
type ImportAsName struct {
	External *NameExpr
	Internal *NameExpr // Internal is nil if there is no "as" clause
}

// ImportFromStmt represents "from ..a.b import c as d"
type ImportFromStmt struct {
	From     *Word
	Dots     int
	Package  *DottedExpr // Package is nil for "from . import x"
	Names    []*ImportAsName
	Wildcard *Word
	EndPos   token.Pos
}

// CImportStmt represents the cython "cimport a.b as c"
type CImportStmt struct {
	CImport *Word
	Names   []*DottedAsName
}

// FromCImportStmt represents the cython "from a cimport b"
type FromCImportStmt struct {
	From    *Word
	Dots    int
	Package *DottedExpr
	Names   []*ImportAsName
	EndPos  token.Pos
}

// Parameter is a parameter of a function or lambda
type Parameter struct {
	Name       *NameExpr
	Annotation Expr
	Default    Expr
	Vararg     bool
	Kwarg      bool
}

// FunctionDefStmt represents a function or method definition
type FunctionDefStmt struct {
	Def        *Word
	Decorators []Expr
	Name       *NameExpr
	Parameters []*Parameter
	Annotation Expr
	Body       []Stmt
	EndPos     token.Pos
}

// ClassDefStmt represents a class definition
type ClassDefStmt struct {
	Class      *Word
	Decorators []Expr
	Name       *NameExpr
	Args       []*Argument
	Body       []Stmt
	EndPos     token.Pos
}

// Module is the root of a syntax tree
type Module struct {
	Body    []Stmt
	Dialect Dialect
	EndPos  token.Pos
}

// -- Node

func (*BadExpr) iNode()         {}
func (*NameExpr) iNode()        {}
func (*AttributeExpr) iNode()   {}
func (*Argument) iNode()        {}
func (*CallExpr) iNode()        {}
func (*NumberExpr) iNode()      {}
func (*StringExpr) iNode()      {}
func (*TupleExpr) iNode()       {}
func (*ListExpr) iNode()        {}
func (*KeyValuePair) iNode()    {}
func (*DictExpr) iNode()        {}
func (*BinaryExpr) iNode()      {}
func (*LambdaExpr) iNode()      {}
func (*DottedExpr) iNode()      {}
func (*BadStmt) iNode()         {}
func (*PassStmt) iNode()        {}
func (*ExprStmt) iNode()        {}
func (*AssignStmt) iNode()      {}
func (*AugAssignStmt) iNode()   {}
func (*DelStmt) iNode()         {}
func (*ReturnStmt) iNode()      {}
func (*Branch) iNode()          {}
func (*IfStmt) iNode()          {}
func (*ForStmt) iNode()         {}
func (*WhileStmt) iNode()       {}
func (*DottedAsName) iNode()    {}
func (*ImportNameStmt) iNode()  {}
func (*ImportAsName) iNode()    {}
func (*ImportFromStmt) iNode()  {}
func (*CImportStmt) iNode()     {}
func (*FromCImportStmt) iNode() {}
func (*Parameter) iNode()       {}
func (*FunctionDefStmt) iNode() {}
func (*ClassDefStmt) iNode()    {}
func (*Module) iNode()          {}

// -- Expr

func (*BadExpr) iExpr()       {}
func (*NameExpr) iExpr()      {}
func (*AttributeExpr) iExpr() {}
func (*CallExpr) iExpr()      {}
func (*NumberExpr) iExpr()    {}
func (*StringExpr) iExpr()    {}
func (*TupleExpr) iExpr()     {}
func (*ListExpr) iExpr()      {}
func (*DictExpr) iExpr()      {}
func (*BinaryExpr) iExpr()    {}
func (*LambdaExpr) iExpr()    {}
func (*DottedExpr) iExpr()    {}

// -- Stmt

func (*BadStmt) iStmt()         {}
func (*PassStmt) iStmt()        {}
func (*ExprStmt) iStmt()        {}
func (*AssignStmt) iStmt()      {}
func (*AugAssignStmt) iStmt()   {}
func (*DelStmt) iStmt()         {}
func (*ReturnStmt) iStmt()      {}
func (*IfStmt) iStmt()          {}
func (*ForStmt) iStmt()         {}
func (*WhileStmt) iStmt()       {}
func (*ImportNameStmt) iStmt()  {}
func (*ImportFromStmt) iStmt()  {}
func (*CImportStmt) iStmt()     {}
func (*FromCImportStmt) iStmt() {}
func (*FunctionDefStmt) iStmt() {}
func (*ClassDefStmt) iStmt()    {}

// -- Scope

func (*Module) iScope()          {}
func (*FunctionDefStmt) iScope() {}
func (*ClassDefStmt) iScope()    {}
func (*LambdaExpr) iScope()      {}

// -- ReferenceExpr

// RefName implements ReferenceExpr
func (n *NameExpr) RefName() string { return n.Ident.Literal }

// Qualifier implements ReferenceExpr
func (n *NameExpr) Qualifier() Expr { return nil }

// RefUsage implements ReferenceExpr
func (n *NameExpr) RefUsage() Usage { return n.Usage }

// RefName implements ReferenceExpr
func (n *AttributeExpr) RefName() string { return n.Attribute.Literal }

// Qualifier implements ReferenceExpr
func (n *AttributeExpr) Qualifier() Expr { return n.Value }

// RefUsage implements ReferenceExpr
func (n *AttributeExpr) RefUsage() Usage { return n.Usage }

// -- positions

func firstPos(ws ...*Word) token.Pos {
	for _, w := range ws {
		if w != nil {
			return w.Begin
		}
	}
	return token.NoPos
}

// Begin implements Node
func (n *BadExpr) Begin() token.Pos { return n.From }

// End implements Node
func (n *BadExpr) End() token.Pos { return n.To }

// Begin implements Node
func (n *NameExpr) Begin() token.Pos { return n.Ident.Begin }

// End implements Node
func (n *NameExpr) End() token.Pos { return n.Ident.End }

// Begin implements Node
func (n *AttributeExpr) Begin() token.Pos { return n.Value.Begin() }

// End implements Node
func (n *AttributeExpr) End() token.Pos { return n.Attribute.End }

// Begin implements Node
func (n *Argument) Begin() token.Pos {
	if n.Name != nil {
		return n.Name.Begin()
	}
	return n.Value.Begin()
}

// End implements Node
func (n *Argument) End() token.Pos { return n.Value.End() }

// Begin implements Node
func (n *CallExpr) Begin() token.Pos { return n.Func.Begin() }

// End implements Node
func (n *CallExpr) End() token.Pos { return n.RightParen }

// Begin implements Node
func (n *NumberExpr) Begin() token.Pos { return n.Number.Begin }

// End implements Node
func (n *NumberExpr) End() token.Pos { return n.Number.End }

// Begin implements Node
func (n *StringExpr) Begin() token.Pos { return n.Strings[0].Begin }

// End implements Node
func (n *StringExpr) End() token.Pos { return n.Strings[len(n.Strings)-1].End }

// Begin implements Node
func (n *TupleExpr) Begin() token.Pos { return n.From }

// End implements Node
func (n *TupleExpr) End() token.Pos { return n.To }

// Begin implements Node
func (n *ListExpr) Begin() token.Pos { return n.From }

// End implements Node
func (n *ListExpr) End() token.Pos { return n.To }

// Begin implements Node
func (n *KeyValuePair) Begin() token.Pos { return n.Key.Begin() }

// End implements Node
func (n *KeyValuePair) End() token.Pos { return n.Value.End() }

// Begin implements Node
func (n *DictExpr) Begin() token.Pos { return n.From }

// End implements Node
func (n *DictExpr) End() token.Pos { return n.To }

// Begin implements Node
func (n *BinaryExpr) Begin() token.Pos { return n.Left.Begin() }

// End implements Node
func (n *BinaryExpr) End() token.Pos { return n.Right.End() }

// Begin implements Node
func (n *LambdaExpr) Begin() token.Pos { return n.Lambda }

// End implements Node
func (n *LambdaExpr) End() token.Pos { return n.Body.End() }

// Begin implements Node
func (n *DottedExpr) Begin() token.Pos { return n.Names[0].Begin() }

// End implements Node
func (n *DottedExpr) End() token.Pos { return n.Names[len(n.Names)-1].End() }

// Begin implements Node
func (n *BadStmt) Begin() token.Pos { return n.From }

// End implements Node
func (n *BadStmt) End() token.Pos { return n.To }

// Begin implements Node
func (n *PassStmt) Begin() token.Pos { return n.Pass.Begin }

// End implements Node
func (n *PassStmt) End() token.Pos { return n.Pass.End }

// Begin implements Node
func (n *ExprStmt) Begin() token.Pos { return n.Value.Begin() }

// End implements Node
func (n *ExprStmt) End() token.Pos { return n.Value.End() }

// Begin implements Node
func (n *AssignStmt) Begin() token.Pos { return n.Targets[0].Begin() }

// End implements Node
func (n *AssignStmt) End() token.Pos {
	switch {
	case n.Value != nil:
		return n.Value.End()
	case n.Annotation != nil:
		return n.Annotation.End()
	default:
		return n.Targets[len(n.Targets)-1].End()
	}
}

// Begin implements Node
func (n *AugAssignStmt) Begin() token.Pos { return n.Target.Begin() }

// End implements Node
func (n *AugAssignStmt) End() token.Pos { return n.Value.End() }

// Begin implements Node
func (n *DelStmt) Begin() token.Pos { return n.Del.Begin }

// End implements Node
func (n *DelStmt) End() token.Pos {
	if len(n.Targets) == 0 {
		return n.Del.End
	}
	return n.Targets[len(n.Targets)-1].End()
}

// Begin implements Node
func (n *ReturnStmt) Begin() token.Pos { return n.Return.Begin }

// End implements Node
func (n *ReturnStmt) End() token.Pos {
	if n.Value == nil {
		return n.Return.End
	}
	return n.Value.End()
}

// Begin implements Node
func (n *Branch) Begin() token.Pos { return n.Condition.Begin() }

// End implements Node
func (n *Branch) End() token.Pos {
	if len(n.Body) == 0 {
		return n.Condition.End()
	}
	return n.Body[len(n.Body)-1].End()
}

// Begin implements Node
func (n *IfStmt) Begin() token.Pos { return n.If.Begin }

// End implements Node
func (n *IfStmt) End() token.Pos { return n.EndPos }

// Begin implements Node
func (n *ForStmt) Begin() token.Pos { return n.For.Begin }

// End implements Node
func (n *ForStmt) End() token.Pos { return n.EndPos }

// Begin implements Node
func (n *WhileStmt) Begin() token.Pos { return n.While.Begin }

// End implements Node
func (n *WhileStmt) End() token.Pos { return n.EndPos }

// Begin implements Node
func (n *DottedAsName) Begin() token.Pos { return n.External.Begin() }

// End implements Node
func (n *DottedAsName) End() token.Pos {
	if n.Internal != nil {
		return n.Internal.End()
	}
	return n.External.End()
}

// Begin implements Node
func (n *ImportNameStmt) Begin() token.Pos { return n.Import.Begin }

// End implements Node
func (n *ImportNameStmt) End() token.Pos {
	if len(n.Names) == 0 {
		return n.Import.End
	}
	return n.Names[len(n.Names)-1].End()
}

// Begin implements Node
func (n *ImportAsName) Begin() token.Pos { return n.External.Begin() }

// End implements Node
func (n *ImportAsName) End() token.Pos {
	if n.Internal != nil {
		return n.Internal.End()
	}
	return n.External.End()
}

// Begin implements Node
func (n *ImportFromStmt) Begin() token.Pos { return n.From.Begin }

// End implements Node
func (n *ImportFromStmt) End() token.Pos { return n.EndPos }

// Begin implements Node
func (n *CImportStmt) Begin() token.Pos { return n.CImport.Begin }

// End implements Node
func (n *CImportStmt) End() token.Pos {
	if len(n.Names) == 0 {
		return n.CImport.End
	}
	return n.Names[len(n.Names)-1].End()
}

// Begin implements Node
func (n *FromCImportStmt) Begin() token.Pos { return n.From.Begin }

// End implements Node
func (n *FromCImportStmt) End() token.Pos { return n.EndPos }

// Begin implements Node
func (n *Parameter) Begin() token.Pos { return n.Name.Begin() }

// End implements Node
func (n *Parameter) End() token.Pos {
	switch {
	case n.Default != nil:
		return n.Default.End()
	case n.Annotation != nil:
		return n.Annotation.End()
	default:
		return n.Name.End()
	}
}

// Begin implements Node
func (n *FunctionDefStmt) Begin() token.Pos {
	if len(n.Decorators) > 0 {
		return n.Decorators[0].Begin()
	}
	return firstPos(n.Def, n.Name.Ident)
}

// End implements Node
func (n *FunctionDefStmt) End() token.Pos { return n.EndPos }

// Begin implements Node
func (n *ClassDefStmt) Begin() token.Pos {
	if len(n.Decorators) > 0 {
		return n.Decorators[0].Begin()
	}
	return firstPos(n.Class, n.Name.Ident)
}

// End implements Node
func (n *ClassDefStmt) End() token.Pos { return n.EndPos }

// Begin implements Node
func (n *Module) Begin() token.Pos { return token.Pos(0) }

// End implements Node
func (n *Module) End() token.Pos { return n.EndPos }
