package pythonresolve

import (
	"github.com/kiteco/pyresolve/kite-go/lang/python/pythonast"
	"github.com/kiteco/pyresolve/kite-go/lang/python/pythonenv"
	"github.com/kiteco/pyresolve/kite-go/lang/python/pythontype"
	"github.com/kiteco/pyresolve/kite-golib/kitelog"
	"github.com/kiteco/pyresolve/kite-golib/rollbar"
)

// Engine resolves references and infers types over a source tree
type Engine struct {
	Options  Options
	Tree     *pythonenv.SourceTree
	Registry *Registry
	Logger   *kitelog.Logger

	// Report receives internal-consistency errors such as stale resolve targets
	Report func(err error, data ...interface{})
}

// NewEngine creates an engine using the process-wide provider registry
func NewEngine(tree *pythonenv.SourceTree, opts Options) *Engine {
	return &Engine{
		Options:  opts,
		Tree:     tree,
		Registry: DefaultRegistry,
		Logger:   kitelog.Basic,
		Report:   rollbar.Error,
	}
}

// Reference builds the resolution strategy for a reference
func (e *Engine) Reference(f *pythonenv.File, ref pythonast.ReferenceExpr, rctx ResolveContext) Reference {
	if rctx.Types == nil {
		rctx.Types = e.NewContext()
	}
	base := baseReference{engine: e, file: f, ref: ref, rctx: rctx}
	switch Classify(f, ref) {
	case KindDialectImport:
		return &DialectImportReference{importReference{base}}
	case KindImport:
		return &ImportReference{importReference{base}}
	case KindSession:
		prefix := ""
		if q := ref.Qualifier(); q != nil {
			prefix = f.Text(q) + "."
		}
		return &SessionReference{baseReference: base, Session: f.Session, Prefix: prefix}
	case KindQualified:
		return &QualifiedReference{base}
	default:
		return &PlainReference{base}
	}
}

// Resolve gets the complete candidate set for a reference
func (e *Engine) Resolve(f *pythonenv.File, ref pythonast.ReferenceExpr, rctx ResolveContext) []ResolveResult {
	return e.Reference(f, ref, rctx).MultiResolve(false)
}

// InferType computes the type of a reference in a fresh context
func (e *Engine) InferType(f *pythonenv.File, ref pythonast.ReferenceExpr) pythontype.Value {
	return e.NewContext().InferType(f, ref)
}

// FollowAssignments follows the assignment chain of a reference in a fresh context
func (e *Engine) FollowAssignments(f *pythonenv.File, ref pythonast.ReferenceExpr) QualifiedResolveResult {
	return e.NewContext().FollowAssignments(f, ref)
}

func (e *Engine) logf(format string, args ...interface{}) {
	if e.Logger != nil {
		e.Logger.Printf(format, args...)
	}
}

func (e *Engine) report(err error, data ...interface{}) {
	if e.Report != nil {
		e.Report(err, data...)
	}
}
