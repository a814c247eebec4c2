package pythonresolve

import (
	"strings"

	"github.com/kiteco/pyresolve/kite-go/lang/python/pythonast"
	"github.com/kiteco/pyresolve/kite-go/lang/python/pythonenv"
)

type importReference struct {
	baseReference
}

// ImportReference resolves a name inside an import statement to the module,
// package, or imported declaration it denotes
type ImportReference struct {
	importReference
}

// Kind implements Reference
func (r *ImportReference) Kind() ReferenceKind { return KindImport }

// MultiResolve implements Reference
func (r *ImportReference) MultiResolve(incomplete bool) []ResolveResult {
	return r.resolve(false)
}

// DialectImportReference resolves a name inside a cimport statement of a
// Cython file, where declaration files take priority
type DialectImportReference struct {
	importReference
}

// Kind implements Reference
func (r *DialectImportReference) Kind() ReferenceKind { return KindDialectImport }

// MultiResolve implements Reference
func (r *DialectImportReference) MultiResolve(incomplete bool) []ResolveResult {
	return r.resolve(true)
}

func (r importReference) resolve(cython bool) []ResolveResult {
	name, ok := r.ref.(*pythonast.NameExpr)
	if !ok {
		return nil
	}
	f := r.file

	switch p := f.Parent(name).(type) {
	case *pythonast.DottedExpr:
		// a component of a module path: resolve the path up to and including it
		var parts []string
		for _, n := range p.Names {
			parts = append(parts, n.Ident.Literal)
			if n == name {
				break
			}
		}
		prefix := strings.Join(parts, ".")
		switch stmt := f.Parent(p).(type) {
		case *pythonast.ImportFromStmt:
			return r.module(prefix, stmt.Dots, cython)
		case *pythonast.FromCImportStmt:
			return r.module(prefix, stmt.Dots, cython)
		}
		return r.module(prefix, 0, cython)

	case *pythonast.DottedAsName:
		// the alias in "import a.b as c"
		return r.module(p.External.Join(), 0, cython)

	case *pythonast.ImportAsName:
		var pkg string
		var dots int
		switch stmt := f.Parent(p).(type) {
		case *pythonast.ImportFromStmt:
			dots = stmt.Dots
			if stmt.Package != nil {
				pkg = stmt.Package.Join()
			}
		case *pythonast.FromCImportStmt:
			dots = stmt.Dots
			if stmt.Package != nil {
				pkg = stmt.Package.Join()
			}
		}
		return r.member(pkg, dots, p.External.Ident.Literal, cython)
	}
	return nil
}

func (r importReference) module(dotted string, dots int, cython bool) []ResolveResult {
	tree := r.engine.Tree
	if el := tree.Import(r.file.Path, dotted, dots, cython); el != nil {
		return []ResolveResult{{Element: el}}
	}
	if dots == 0 && dotted != "" {
		return []ResolveResult{{Element: tree.External(dotted)}}
	}
	return nil
}

func (r importReference) member(pkg string, dots int, name string, cython bool) []ResolveResult {
	tree := r.engine.Tree
	mod := tree.Import(r.file.Path, pkg, dots, cython)
	if mod == nil {
		if dots == 0 && pkg != "" {
			return []ResolveResult{{Element: tree.External(pkg + "." + name)}}
		}
		return nil
	}
	var els []pythonenv.Element
	for _, el := range expandImports(tree.Members(mod, name)) {
		// the import binding itself is not a declaration of the member
		if el.Node() != pythonast.Node(r.ref) {
			els = append(els, el)
		}
	}
	return results(els, RateNormal, false)
}
