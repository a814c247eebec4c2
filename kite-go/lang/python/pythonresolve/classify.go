package pythonresolve

import (
	"github.com/kiteco/pyresolve/kite-go/lang/python/pythonast"
	"github.com/kiteco/pyresolve/kite-go/lang/python/pythonenv"
)

// ReferenceKind identifies the strategy used to resolve a reference
type ReferenceKind int

const (
	// KindPlain is an unqualified name resolved through the enclosing scopes
	KindPlain ReferenceKind = iota
	// KindQualified is an attribute resolved on the type of its qualifier
	KindQualified
	// KindImport is a name inside an import statement
	KindImport
	// KindDialectImport is a name inside a cimport statement of a Cython file
	KindDialectImport
	// KindSession is a reference in a file attached to an interactive session
	KindSession
)

func (k ReferenceKind) String() string {
	switch k {
	case KindQualified:
		return "qualified"
	case KindImport:
		return "import"
	case KindDialectImport:
		return "dialect-import"
	case KindSession:
		return "session"
	default:
		return "plain"
	}
}

func isImportStmt(n pythonast.Node) bool {
	switch n.(type) {
	case *pythonast.ImportNameStmt, *pythonast.ImportFromStmt:
		return true
	}
	return false
}

func isCImportStmt(n pythonast.Node) bool {
	switch n.(type) {
	case *pythonast.CImportStmt, *pythonast.FromCImportStmt:
		return true
	}
	return false
}

// Classify selects the resolution strategy for a reference from its ancestry
func Classify(f *pythonenv.File, ref pythonast.ReferenceExpr) ReferenceKind {
	if f.Dialect == pythonast.Cython && f.Ancestor(ref, isCImportStmt) != nil {
		return KindDialectImport
	}
	if f.Ancestor(ref, isImportStmt) != nil || f.Ancestor(ref, isCImportStmt) != nil {
		return KindImport
	}
	if f.Session != nil {
		return KindSession
	}
	if ref.Qualifier() != nil {
		return KindQualified
	}
	return KindPlain
}
