package pythonenv

import (
	"go/token"
	"path"

	"github.com/kiteco/pyresolve/kite-go/lang/python/pythonast"
	"github.com/kiteco/pyresolve/kite-go/lang/python/pythonparser"
	"github.com/kiteco/pyresolve/kite-go/lang/python/pythontype"
	"github.com/kiteco/pyresolve/kite-golib/errors"
)

// File is a parsed python source file. Lookup tables over its syntax tree
// are built on first use.
type File struct {
	Path    string
	Src     []byte
	AST     *pythonast.Module
	Dialect pythonast.Dialect

	// Session is the interactive session attached to this file, or nil
	Session Session

	tree    *SourceTree
	invalid bool

	parents  map[pythonast.Node]pythonast.Node
	scopes   map[pythonast.Expr]pythonast.Scope
	bound    bool
	bindings map[pythonast.Scope]map[string][]Element
	elements map[pythonast.Node]Element
	classes  map[*pythonast.ClassDefStmt]*ClassElement
	funcs    map[*pythonast.FunctionDefStmt]*FunctionElement
	attrs    map[*pythonast.ClassDefStmt]map[string][]Element

	stubs     map[*TargetElement]string
	stubExprs map[*TargetElement]pythonast.Expr
	synthetic map[pythonast.Expr]pythonast.Scope

	element *FileElement
	module  *pythontype.SourceModule
}

// NewFile parses python source into a File. Syntax errors are not fatal: the
// file is returned together with an errors.Errors describing them.
func NewFile(srcpath string, src []byte) (*File, error) {
	dialect := pythonparser.DialectForPath(srcpath)
	mod, err := pythonparser.Parse(src, pythonparser.Options{
		ErrorMode: pythonparser.Recover,
		Dialect:   dialect,
	})
	if mod == nil {
		return nil, errors.Wrapf(err, "unable to parse %s", srcpath)
	}
	return NewFileFromAST(srcpath, src, mod), err
}

// NewFileFromAST creates a File for an already parsed module
func NewFileFromAST(srcpath string, src []byte, mod *pythonast.Module) *File {
	f := &File{
		Path:    srcpath,
		Src:     src,
		AST:     mod,
		Dialect: mod.Dialect,
	}
	f.element = &FileElement{file: f}
	f.module = &pythontype.SourceModule{
		Addr: pythontype.Address{File: srcpath, Path: moduleName(srcpath)},
	}
	return f
}

// ModuleName is the name of the module, i.e. the base name without extension
func (f *File) ModuleName() string {
	return moduleName(f.Path)
}

// Tree gets the source tree this file was added to, or nil
func (f *File) Tree() *SourceTree {
	return f.tree
}

// Element gets the element representing this file as a module
func (f *File) Element() *FileElement {
	return f.element
}

// Module gets the value representing this file as a module
func (f *File) Module() *pythontype.SourceModule {
	return f.module
}

// Valid is false once the file has been invalidated or replaced in its tree
func (f *File) Valid() bool {
	if f.invalid {
		return false
	}
	if f.tree != nil {
		return f.tree.Files[f.Path] == f
	}
	return true
}

// Invalidate marks the file, and therefore every element declared in it, as stale
func (f *File) Invalidate() {
	f.invalid = true
}

// Position converts an offset in the file to a line and column, both 1-based
func (f *File) Position(pos token.Pos) (line, col int) {
	line, col = 1, 1
	for i := 0; i < int(pos) && i < len(f.Src); i++ {
		if f.Src[i] == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}
	return line, col
}

// Text gets the source text spanned by a node
func (f *File) Text(n pythonast.Node) string {
	if pythonast.IsNil(n) {
		return ""
	}
	begin, end := int(n.Begin()), int(n.End())
	if begin < 0 || end > len(f.Src) || begin > end {
		return ""
	}
	return string(f.Src[begin:end])
}

func (f *File) ensureTables() {
	if f.parents != nil {
		return
	}
	f.parents = pythonast.ConstructParentTable(f.AST, pythonast.CountNodes(f.AST))
	f.scopes = pythonast.ConstructScopeTable(f.AST)
}

// Parent gets the node directly containing n, or nil
func (f *File) Parent(n pythonast.Node) pythonast.Node {
	f.ensureTables()
	return f.parents[n]
}

// Ancestor finds the nearest strict ancestor of n satisfying pred, or nil
func (f *File) Ancestor(n pythonast.Node, pred func(pythonast.Node) bool) pythonast.Node {
	for p := f.Parent(n); p != nil; p = f.Parent(p) {
		if pred(p) {
			return p
		}
	}
	return nil
}

// ScopeOf gets the scope in which name resolution for n begins
func (f *File) ScopeOf(n pythonast.Node) pythonast.Scope {
	f.ensureTables()
	if e, ok := n.(pythonast.Expr); ok {
		if s, ok := f.synthetic[e]; ok {
			return s
		}
		if s, ok := f.scopes[e]; ok {
			return s
		}
	}
	switch n := n.(type) {
	case *pythonast.FunctionDefStmt:
		return f.scopes[n.Name]
	case *pythonast.ClassDefStmt:
		return f.scopes[n.Name]
	case *pythonast.Module:
		return n
	}
	for p := f.Parent(n); p != nil; p = f.Parent(p) {
		if s, ok := p.(pythonast.Scope); ok {
			return s
		}
	}
	return f.AST
}

// ParentScope gets the scope enclosing s, or nil for the module
func (f *File) ParentScope(s pythonast.Scope) pythonast.Scope {
	f.ensureTables()
	switch s := s.(type) {
	case *pythonast.Module:
		return nil
	case *pythonast.LambdaExpr:
		return f.scopes[s]
	case *pythonast.FunctionDefStmt:
		return f.scopes[s.Name]
	case *pythonast.ClassDefStmt:
		return f.scopes[s.Name]
	}
	return nil
}

// Bindings gets the declarations of name in the given scope, in source order
func (f *File) Bindings(scope pythonast.Scope, name string) []Element {
	f.bind()
	return f.bindings[scope][name]
}

// Names gets every name bound in the given scope
func (f *File) Names(scope pythonast.Scope) []string {
	f.bind()
	var names []string
	for name := range f.bindings[scope] {
		names = append(names, name)
	}
	return names
}

// ElementAt gets the declaration made by the given name node, or nil if the
// node does not declare anything
func (f *File) ElementAt(n pythonast.Node) Element {
	f.bind()
	return f.elements[n]
}

// Class gets the element for a class definition in this file
func (f *File) Class(def *pythonast.ClassDefStmt) *ClassElement {
	f.bind()
	return f.classes[def]
}

// Function gets the element for a function definition in this file
func (f *File) Function(def *pythonast.FunctionDefStmt) *FunctionElement {
	f.bind()
	return f.funcs[def]
}

// Classes gets every class defined in this file
func (f *File) Classes() []*ClassElement {
	f.bind()
	var out []*ClassElement
	pythonast.Inspect(f.AST, func(n pythonast.Node) bool {
		if def, ok := n.(*pythonast.ClassDefStmt); ok {
			if cls := f.classes[def]; cls != nil {
				out = append(out, cls)
			}
		}
		return true
	})
	return out
}

// References gets every name and attribute expression in this file in source order
func (f *File) References() []pythonast.ReferenceExpr {
	var refs []pythonast.ReferenceExpr
	pythonast.Inspect(f.AST, func(n pythonast.Node) bool {
		if ref, ok := n.(pythonast.ReferenceExpr); ok {
			refs = append(refs, ref)
		}
		return true
	})
	return refs
}

// address gets the address of a value declared in scope with the given name
func (f *File) address(scope pythonast.Scope, name string) pythontype.Address {
	var parts []string
	for s := scope; s != nil; s = f.ParentScope(s) {
		if n := scopeName(s); n != "" {
			parts = append([]string{n}, parts...)
		}
	}
	parts = append(parts, name)
	return pythontype.Address{File: f.Path, Path: moduleName(f.Path)}.WithTail(parts...)
}

// FileFor finds the file a source value was declared in
func (t *SourceTree) FileFor(v pythontype.Value) *File {
	if v == nil {
		return nil
	}
	addr := v.Address()
	if addr.File == "" {
		return nil
	}
	if f, ok := t.Files[addr.File]; ok {
		return f
	}
	if dir, ok := t.Dirs[addr.File]; ok {
		return dir.Init
	}
	return nil
}

// ClassFor finds the element that produced a class value
func (t *SourceTree) ClassFor(cls *pythontype.SourceClass) *ClassElement {
	if cls == nil {
		return nil
	}
	if f := t.FileFor(cls); f != nil {
		return f.Class(cls.Def)
	}
	return nil
}

// FunctionFor finds the element that produced a function value
func (t *SourceTree) FunctionFor(fn *pythontype.SourceFunction) *FunctionElement {
	if fn == nil {
		return nil
	}
	if f := t.FileFor(fn); f != nil {
		return f.Function(fn.Def)
	}
	return nil
}

// PackageFor finds the directory element that produced a package value
func (t *SourceTree) PackageFor(pkg *pythontype.SourcePackage) *DirElement {
	if pkg == nil {
		return nil
	}
	return t.DirElement(pkg.Addr.File)
}

func isPython(srcpath string) bool {
	switch path.Ext(srcpath) {
	case ".py", ".pyx", ".pxd", ".pxi":
		return true
	}
	return false
}
