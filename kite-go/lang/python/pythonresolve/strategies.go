package pythonresolve

import (
	"strings"

	"github.com/kiteco/pyresolve/kite-go/lang/python/pythonast"
	"github.com/kiteco/pyresolve/kite-go/lang/python/pythonenv"
	"github.com/kiteco/pyresolve/kite-go/lang/python/pythontype"
)

// ResolveContext configures a resolution
type ResolveContext struct {
	// AllowImplicits permits speculative low rated candidates
	AllowImplicits bool
	// Types is used to compute qualifier types; a fresh context is used if nil
	Types *TypeEvalContext
}

// Reference is a strategy for resolving one reference
type Reference interface {
	// Kind identifies the strategy
	Kind() ReferenceKind
	// MultiResolve gets the candidate declarations in priority order. With
	// incomplete set, partial names are accepted as prefixes where the
	// strategy supports it.
	MultiResolve(incomplete bool) []ResolveResult
}

type baseReference struct {
	engine *Engine
	file   *pythonenv.File
	ref    pythonast.ReferenceExpr
	rctx   ResolveContext
}

func results(els []pythonenv.Element, rating Rating, implicit bool) []ResolveResult {
	out := make([]ResolveResult, 0, len(els))
	for _, el := range els {
		out = append(out, ResolveResult{Element: el, Rating: rating, Implicit: implicit})
	}
	return out
}

// PlainReference resolves an unqualified name through the enclosing scopes,
// then the builtins
type PlainReference struct {
	baseReference
}

// Kind implements Reference
func (r *PlainReference) Kind() ReferenceKind { return KindPlain }

// MultiResolve implements Reference
func (r *PlainReference) MultiResolve(incomplete bool) []ResolveResult {
	f, name := r.file, r.ref.RefName()
	start := f.ScopeOf(r.ref)
	for s := start; s != nil; s = f.ParentScope(s) {
		if _, isClass := s.(*pythonast.ClassDefStmt); isClass && s != start {
			// class bodies are not visible from nested functions
			continue
		}
		if els := f.Bindings(s, name); len(els) > 0 {
			return results(expandImports(els), RateNormal, false)
		}
	}
	if b, ok := pythonenv.LookupBuiltin(name); ok {
		return []ResolveResult{{Element: b}}
	}
	return nil
}

// QualifiedReference resolves an attribute on the type of its qualifier
type QualifiedReference struct {
	baseReference
}

// Kind implements Reference
func (r *QualifiedReference) Kind() ReferenceKind { return KindQualified }

// MultiResolve implements Reference
func (r *QualifiedReference) MultiResolve(incomplete bool) []ResolveResult {
	types := r.rctx.Types
	name := r.ref.RefName()
	qt := types.TypeOf(r.file, r.ref.Qualifier())
	if qt == nil {
		if !r.rctx.AllowImplicits {
			return nil
		}
		return r.implicits(name)
	}

	var out []ResolveResult
	seen := make(map[pythonenv.Element]bool)
	for _, t := range pythontype.Disjuncts(qt) {
		for _, el := range types.attribute(t, name) {
			if !seen[el] {
				seen[el] = true
				out = append(out, ResolveResult{Element: el})
			}
		}
	}
	return out
}

// implicits finds every class attribute with the name in the file
func (r *QualifiedReference) implicits(name string) []ResolveResult {
	var out []ResolveResult
	for _, cls := range r.file.Classes() {
		els := append(append([]pythonenv.Element(nil), cls.Members(name)...), cls.InstanceAttributes(name)...)
		out = append(out, results(els, RateLow, true)...)
	}
	return out
}

// attribute finds the declarations of an attribute on a value of type t
func (c *TypeEvalContext) attribute(t pythontype.Value, name string) []pythonenv.Element {
	tree := c.engine.Tree
	switch t := t.(type) {
	case *pythontype.SourceModule:
		if f := tree.FileFor(t); f != nil {
			return expandImports(f.Bindings(f.AST, name))
		}
	case *pythontype.SourcePackage:
		if dir := tree.PackageFor(t); dir != nil {
			return expandImports(tree.Members(dir, name))
		}
	case *pythontype.SourceClass:
		return expandImports(c.classMembers(tree.ClassFor(t), name, false))
	case pythontype.SourceInstance:
		return expandImports(c.classMembers(tree.ClassFor(t.Class), name, true))
	case pythontype.ExternalModule:
		return []pythonenv.Element{tree.External(t.Path + "." + name)}
	}
	return nil
}

// SessionReference resolves against the variables of an interactive session.
// The qualifier text, if any, scopes the lookup.
type SessionReference struct {
	baseReference
	Session pythonenv.Session
	Prefix  string
}

// Kind implements Reference
func (r *SessionReference) Kind() ReferenceKind { return KindSession }

// MultiResolve implements Reference
func (r *SessionReference) MultiResolve(incomplete bool) []ResolveResult {
	name := r.Prefix + r.ref.RefName()
	if !incomplete {
		if v, ok := r.Session.Lookup(name); ok {
			return []ResolveResult{{Element: pythonenv.NewSessionElement(r.Session, name, v)}}
		}
		return nil
	}
	var out []ResolveResult
	for _, variable := range r.Session.Variables(name) {
		if strings.Contains(strings.TrimPrefix(variable, r.Prefix), ".") {
			continue
		}
		if v, ok := r.Session.Lookup(variable); ok {
			out = append(out, ResolveResult{Element: pythonenv.NewSessionElement(r.Session, variable, v)})
		}
	}
	return out
}
