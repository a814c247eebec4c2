package pythonenv

import (
	"path"
	"strings"

	"github.com/kiteco/pyresolve/kite-go/lang/python/pythonast"
	"github.com/kiteco/pyresolve/kite-go/lang/python/pythontype"
)

// Element is a declaration site that a reference may resolve to
type Element interface {
	// Name is the name the declaration binds
	Name() string
	// Valid is false once the declaration no longer belongs to the current source tree
	Valid() bool
	// File containing the declaration, or nil for directories, builtins and external values
	File() *File
	// Node is the syntax node of the declaration, or nil
	Node() pythonast.Node
}

// QualifiedNamer is implemented by elements known by a dotted name
type QualifiedNamer interface {
	QualifiedName() string
}

// TargetKind distinguishes the statements that can assign a target
type TargetKind int

const (
	// Assignment is "x = value", possibly unpacking a tuple
	Assignment TargetKind = iota
	// LoopTarget is "for x in values"
	LoopTarget
)

// TargetElement is a simple name, or an attribute of self, bound by assignment
type TargetElement struct {
	file   *File
	Expr   pythonast.Expr // *NameExpr, or *AttributeExpr for self.x
	Stmt   pythonast.Stmt
	Kind   TargetKind
	Unpack []int // indices into nested tuple targets, empty for a plain target
}

// Name implements Element
func (e *TargetElement) Name() string { return e.Expr.(pythonast.ReferenceExpr).RefName() }

// Valid implements Element
func (e *TargetElement) Valid() bool { return e.file.Valid() }

// File implements Element
func (e *TargetElement) File() *File { return e.file }

// Node implements Element
func (e *TargetElement) Node() pythonast.Node { return e.Expr }

// AssignedValue gets the expression assigned to the target from the syntax
// tree, descending into tuple and list displays for unpacked targets. It
// returns nil for loop targets and for unpacking of anything other than a
// display.
func (e *TargetElement) AssignedValue() pythonast.Expr {
	assign, ok := e.Stmt.(*pythonast.AssignStmt)
	if !ok || e.Kind != Assignment {
		return nil
	}
	v := assign.Value
	for _, i := range e.Unpack {
		switch x := v.(type) {
		case *pythonast.TupleExpr:
			if i >= len(x.Elts) {
				return nil
			}
			v = x.Elts[i]
		case *pythonast.ListExpr:
			if i >= len(x.Values) {
				return nil
			}
			v = x.Values[i]
		default:
			return nil
		}
	}
	return v
}

// AssignedValueByStub gets the assigned value recorded in the file summary.
// Only dotted-name initializers are summarized; the result is a reference
// expression synthesized in the scope of the target, or nil.
func (e *TargetElement) AssignedValueByStub() pythonast.Expr {
	return e.file.stubValue(e)
}

// Annotation gets the annotation of an annotated assignment to a plain target
func (e *TargetElement) Annotation() pythonast.Expr {
	if assign, ok := e.Stmt.(*pythonast.AssignStmt); ok && len(e.Unpack) == 0 {
		return assign.Annotation
	}
	return nil
}

// ParameterElement is a parameter of a function or lambda
type ParameterElement struct {
	file  *File
	Param *pythonast.Parameter
	Scope pythonast.Scope // *FunctionDefStmt or *LambdaExpr
	Index int
}

// Name implements Element
func (e *ParameterElement) Name() string { return e.Param.Name.Ident.Literal }

// Valid implements Element
func (e *ParameterElement) Valid() bool { return e.file.Valid() }

// File implements Element
func (e *ParameterElement) File() *File { return e.file }

// Node implements Element
func (e *ParameterElement) Node() pythonast.Node { return e.Param.Name }

// Method gets the function and class if this parameter belongs to a method
func (e *ParameterElement) Method() (*FunctionElement, *ClassElement) {
	def, ok := e.Scope.(*pythonast.FunctionDefStmt)
	if !ok {
		return nil, nil
	}
	fn := e.file.Function(def)
	if fn == nil || fn.Class == nil {
		return nil, nil
	}
	return fn, fn.Class
}

// FunctionElement is a function or method definition
type FunctionElement struct {
	file  *File
	Def   *pythonast.FunctionDefStmt
	Class *ClassElement // Class is the class whose body contains the definition, or nil

	value *pythontype.SourceFunction
}

// Name implements Element
func (e *FunctionElement) Name() string { return e.Def.Name.Ident.Literal }

// Valid implements Element
func (e *FunctionElement) Valid() bool { return e.file.Valid() }

// File implements Element
func (e *FunctionElement) File() *File { return e.file }

// Node implements Element
func (e *FunctionElement) Node() pythonast.Node { return e.Def }

// Value gets the value representing this function
func (e *FunctionElement) Value() *pythontype.SourceFunction {
	return e.value
}

// DecoratorNames gets the dotted names of the decorators, ignoring call
// arguments; decorators that are not dotted names are skipped
func (e *FunctionElement) DecoratorNames() []string {
	var names []string
	for _, dec := range e.Def.Decorators {
		if call, ok := dec.(*pythonast.CallExpr); ok {
			dec = call.Func
		}
		if name, ok := pythonast.DottedName(dec); ok {
			names = append(names, name)
		}
	}
	return names
}

// HasDecorator checks for a decorator with exactly the given dotted name
func (e *FunctionElement) HasDecorator(name string) bool {
	for _, n := range e.DecoratorNames() {
		if n == name {
			return true
		}
	}
	return false
}

// ClassElement is a class definition
type ClassElement struct {
	file *File
	Def  *pythonast.ClassDefStmt

	value *pythontype.SourceClass
}

// Name implements Element
func (e *ClassElement) Name() string { return e.Def.Name.Ident.Literal }

// Valid implements Element
func (e *ClassElement) Valid() bool { return e.file.Valid() }

// File implements Element
func (e *ClassElement) File() *File { return e.file }

// Node implements Element
func (e *ClassElement) Node() pythonast.Node { return e.Def }

// Value gets the value representing this class
func (e *ClassElement) Value() *pythontype.SourceClass {
	return e.value
}

// Bases gets the positional arguments of the class statement
func (e *ClassElement) Bases() []pythonast.Expr {
	var bases []pythonast.Expr
	for _, arg := range e.Def.Args {
		if arg.Name == nil {
			bases = append(bases, arg.Value)
		}
	}
	return bases
}

// Members gets the declarations of name in the class body
func (e *ClassElement) Members(name string) []Element {
	return e.file.Bindings(e.Def, name)
}

// InstanceAttributes gets the assignments to self.name in methods of the class
func (e *ClassElement) InstanceAttributes(name string) []Element {
	e.file.bind()
	return e.file.attrs[e.Def][name]
}

// FileElement is a python file viewed as a module
type FileElement struct {
	file *File
}

// Name implements Element
func (e *FileElement) Name() string { return e.file.ModuleName() }

// Valid implements Element
func (e *FileElement) Valid() bool { return e.file.Valid() }

// File implements Element
func (e *FileElement) File() *File { return e.file }

// Node implements Element
func (e *FileElement) Node() pythonast.Node { return e.file.AST }

// DirElement is a directory viewed as a package
type DirElement struct {
	tree *SourceTree
	dir  *Dir

	value *pythontype.SourcePackage
}

// Name implements Element
func (e *DirElement) Name() string { return path.Base(e.dir.Path) }

// Valid implements Element
func (e *DirElement) Valid() bool { return e.tree.Dirs[e.dir.Path] == e.dir }

// File implements Element
func (e *DirElement) File() *File { return nil }

// Node implements Element
func (e *DirElement) Node() pythonast.Node { return nil }

// Path gets the directory path
func (e *DirElement) Path() string { return e.dir.Path }

// InitFile gets the __init__ file of the package, or nil
func (e *DirElement) InitFile() *File { return e.dir.Init }

// Value gets the value representing this package
func (e *DirElement) Value() *pythontype.SourcePackage {
	if e.value == nil {
		e.value = &pythontype.SourcePackage{
			Addr: pythontype.Address{File: e.dir.Path, Path: path.Base(e.dir.Path)},
		}
	}
	if e.dir.Init != nil {
		e.value.Init = e.dir.Init.Module()
	} else {
		e.value.Init = nil
	}
	return e.value
}

// ImportedModuleElement is a name bound to a module by "import a.b" or "import a.b as c"
type ImportedModuleElement struct {
	file    *File
	Stmt    pythonast.Stmt
	Alias   *pythonast.NameExpr
	Path    string // Path is the dotted name of the bound module
	CImport bool
}

// Name implements Element
func (e *ImportedModuleElement) Name() string { return e.Alias.Ident.Literal }

// Valid implements Element
func (e *ImportedModuleElement) Valid() bool { return e.file.Valid() }

// File implements Element
func (e *ImportedModuleElement) File() *File { return e.file }

// Node implements Element
func (e *ImportedModuleElement) Node() pythonast.Node { return e.Alias }

// QualifiedName implements QualifiedNamer
func (e *ImportedModuleElement) QualifiedName() string { return e.Path }

// Resolve finds the bound module in the source tree, or returns nil
func (e *ImportedModuleElement) Resolve() Element {
	if e.file.tree == nil {
		return nil
	}
	return e.file.tree.Import(e.file.Path, e.Path, 0, e.CImport)
}

// ImportedNameElement is a name bound by "from module import member"
type ImportedNameElement struct {
	file    *File
	Stmt    pythonast.Stmt
	Alias   *pythonast.NameExpr
	Module  string // Module is the dotted path after "from", without leading dots
	Dots    int
	Member  string
	CImport bool
}

// Name implements Element
func (e *ImportedNameElement) Name() string { return e.Alias.Ident.Literal }

// Valid implements Element
func (e *ImportedNameElement) Valid() bool { return e.file.Valid() }

// File implements Element
func (e *ImportedNameElement) File() *File { return e.file }

// Node implements Element
func (e *ImportedNameElement) Node() pythonast.Node { return e.Alias }

// QualifiedName implements QualifiedNamer
func (e *ImportedNameElement) QualifiedName() string {
	prefix := strings.Repeat(".", e.Dots)
	if e.Module == "" {
		return prefix + e.Member
	}
	return prefix + e.Module + "." + e.Member
}

// Resolve finds the declarations of the imported member in the source tree
func (e *ImportedNameElement) Resolve() []Element {
	if e.file.tree == nil {
		return nil
	}
	mod := e.file.tree.Import(e.file.Path, e.Module, e.Dots, e.CImport)
	if mod == nil {
		return nil
	}
	return e.file.tree.Members(mod, e.Member)
}

// ExprElement is an expression that ends an assignment chain
type ExprElement struct {
	file *File
	Expr pythonast.Expr
}

// NewExprElement wraps an expression of a file as an element
func NewExprElement(f *File, expr pythonast.Expr) *ExprElement {
	return &ExprElement{file: f, Expr: expr}
}

// Name implements Element
func (e *ExprElement) Name() string {
	if ref, ok := e.Expr.(pythonast.ReferenceExpr); ok {
		return ref.RefName()
	}
	return ""
}

// Valid implements Element
func (e *ExprElement) Valid() bool { return e.file.Valid() }

// File implements Element
func (e *ExprElement) File() *File { return e.file }

// Node implements Element
func (e *ExprElement) Node() pythonast.Node { return e.Expr }

// ExternalElement is a module or attribute outside the source tree
type ExternalElement struct {
	Path string
}

// Name implements Element
func (e *ExternalElement) Name() string { return pythontype.SplitAddress(e.Path).Last() }

// Valid implements Element
func (e *ExternalElement) Valid() bool { return true }

// File implements Element
func (e *ExternalElement) File() *File { return nil }

// Node implements Element
func (e *ExternalElement) Node() pythonast.Node { return nil }

// QualifiedName implements QualifiedNamer
func (e *ExternalElement) QualifiedName() string { return e.Path }
