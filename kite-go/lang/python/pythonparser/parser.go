package pythonparser

import (
	"path/filepath"

	sitter "github.com/kiteco/go-tree-sitter"
	"github.com/kiteco/go-tree-sitter/python"
	"github.com/kiteco/pyresolve/kite-go/lang/python/pythonast"
)

// ErrorMode determines how the parser behaves when
// a parser error is encountered.
type ErrorMode int

const (
	// FailFast causes Parse to return a nil module if the source contains any syntax error.
	FailFast ErrorMode = iota

	// Recover causes Parse to return the module even if the source contains syntax errors.
	// In this mode the returned AST may contain BadStmt and BadExpr nodes.
	Recover
)

// Options represents configuration for parsing
type Options struct {
	ErrorMode ErrorMode
	Dialect   pythonast.Dialect
}

// DialectForPath picks the dialect from the file extension
func DialectForPath(path string) pythonast.Dialect {
	switch filepath.Ext(path) {
	case ".pyx", ".pxd", ".pxi":
		return pythonast.Cython
	default:
		return pythonast.Python
	}
}

// Parse translates python source to a syntax tree. In Recover mode the module is
// returned along with an errors.Errors value describing each syntax error.
func Parse(src []byte, opts Options) (*pythonast.Module, error) {
	if entry, ok := getCachedParse(src, opts); ok {
		return entry.mod, entry.err
	}

	mod, err := parse(src, opts)
	cacheParse(src, opts, mod, err)
	return mod, err
}

func parse(src []byte, opts Options) (*pythonast.Module, error) {
	buf := src
	var cimports map[uint32]bool
	if opts.Dialect == pythonast.Cython {
		buf, cimports = rewriteCImports(src)
	}

	parser := sitter.NewParser()
	defer parser.Close()
	parser.SetLanguage(python.GetLanguage())

	tree := parser.Parse(buf)
	defer tree.Close()

	c := &converter{
		src:      buf,
		cimports: cimports,
	}
	root := tree.RootNode()
	c.collectErrors(root)

	mod := c.module(root)
	mod.Dialect = opts.Dialect

	if c.errs != nil {
		if opts.ErrorMode == FailFast {
			return nil, c.errs
		}
		return mod, c.errs
	}
	return mod, nil
}

// collectErrors records a diagnostic for every ERROR or MISSING node
func (c *converter) collectErrors(n *sitter.Node) {
	if n == nil || !n.HasError() {
		return
	}
	switch {
	case n.Type() == "ERROR":
		c.errorf(n, "syntax error near %q", snippet(c.text(n)))
		return
	case n.IsMissing():
		c.errorf(n, "missing %s", n.Type())
		return
	}
	for i := 0; i < int(n.ChildCount()); i++ {
		c.collectErrors(n.Child(i))
	}
}

func snippet(s string) string {
	const max = 20
	if len(s) > max {
		return s[:max] + "..."
	}
	return s
}

