package pythonresolve

import (
	"github.com/kiteco/pyresolve/kite-go/lang/python/pythonast"
	"github.com/kiteco/pyresolve/kite-go/lang/python/pythonenv"
)

// FollowAssignments resolves a reference and, while it resolves to a target
// assigned from another reference, continues with that reference. It returns
// the declaration or value expression that ends the chain, together with the
// qualifiers of the references followed. Candidates are scanned by rating,
// then in resolve order; a candidate whose value was already visited stops the
// scan, and the chain ends with whatever terminal was found before it.
func (c *TypeEvalContext) FollowAssignments(f *pythonenv.File, start pythonast.ReferenceExpr) QualifiedResolveResult {
	visited := map[pythonast.Expr]bool{start: true}
	var qualifiers []pythonast.Expr
	if q := start.Qualifier(); q != nil {
		qualifiers = append(qualifiers, q)
	}

	seeker, file := start, f
	rctx := ResolveContext{AllowImplicits: true, Types: c}
search:
	for {
		var terminal *QualifiedResolveResult
	scan:
		for _, r := range byRating(c.engine.Resolve(file, seeker, rctx)) {
			if target, ok := r.Element.(*pythonenv.TargetElement); ok {
				value := c.assignedValue(target)
				next, isRef := value.(pythonast.ReferenceExpr)
				switch {
				case isRef && !visited[next]:
					visited[next] = true
					if q := next.Qualifier(); q != nil {
						qualifiers = append(qualifiers, q)
					}
					seeker, file = next, target.File()
					continue search
				case isRef:
					// a cycle ends the scan of this step
					break scan
				case value != nil:
					return QualifiedResolveResult{
						Element:    pythonenv.NewExprElement(target.File(), value),
						Qualifiers: qualifiers,
					}
				}
				continue
			}
			if terminal == nil && r.Valid() {
				terminal = &QualifiedResolveResult{
					Element:    r.Element,
					Qualifiers: qualifiers,
					Implicit:   r.Implicit,
				}
			}
		}
		if terminal != nil {
			return *terminal
		}
		return EmptyQualifiedResolveResult
	}
}

// assignedValue reads the value of a target from the syntax tree when
// allowed, otherwise from the file summary
func (c *TypeEvalContext) assignedValue(target *pythonenv.TargetElement) pythonast.Expr {
	if c.MaySwitchToAST(target.File()) {
		return target.AssignedValue()
	}
	return target.AssignedValueByStub()
}
