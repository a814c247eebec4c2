package pythonresolve

import (
	"fmt"
	"sort"
	"strings"

	"github.com/kiteco/pyresolve/kite-go/lang/python/pythonast"
	"github.com/kiteco/pyresolve/kite-go/lang/python/pythonenv"
)

// Rating orders candidates when a reference resolves to several declarations
type Rating int

const (
	// RateNormal is the rating of candidates found by following the syntax
	RateNormal Rating = iota
	// RateLow is the rating of speculative candidates
	RateLow
)

func (r Rating) String() string {
	if r == RateLow {
		return "low"
	}
	return "normal"
}

// ResolveResult is one candidate declaration for a reference
type ResolveResult struct {
	Element  pythonenv.Element
	Rating   Rating
	Implicit bool
}

// Valid checks that the result has an element that is still part of the tree
func (r ResolveResult) Valid() bool {
	return r.Element != nil && r.Element.Valid()
}

func (r ResolveResult) String() string {
	s := describe(r.Element)
	if r.Implicit {
		s += " (implicit)"
	}
	if r.Rating != RateNormal {
		s += " [" + r.Rating.String() + "]"
	}
	return s
}

// byRating orders results by rating, keeping the resolve order within a rating
func byRating(results []ResolveResult) []ResolveResult {
	out := append([]ResolveResult(nil), results...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Rating < out[j].Rating
	})
	return out
}

// QualifiedResolveResult is the end of an assignment chain together with the
// qualifiers of every reference followed to reach it, in traversal order
type QualifiedResolveResult struct {
	Element    pythonenv.Element
	Qualifiers []pythonast.Expr
	Implicit   bool
}

// EmptyQualifiedResolveResult is returned when no chain was found
var EmptyQualifiedResolveResult = QualifiedResolveResult{}

// Empty checks whether this is the result for "no chain found"
func (r QualifiedResolveResult) Empty() bool {
	return r.Element == nil
}

// Valid checks that the chain ended at an element still part of the tree
func (r QualifiedResolveResult) Valid() bool {
	return r.Element != nil && r.Element.Valid()
}

func (r QualifiedResolveResult) String() string {
	if r.Empty() {
		return "<no chain>"
	}
	s := describe(r.Element)
	if len(r.Qualifiers) > 0 {
		var qs []string
		for _, q := range r.Qualifiers {
			qs = append(qs, pythonast.String(q))
		}
		s += " via " + strings.Join(qs, ", ")
	}
	if r.Implicit {
		s += " (implicit)"
	}
	return s
}

func describe(el pythonenv.Element) string {
	switch e := el.(type) {
	case nil:
		return "<nil>"
	case *pythonenv.ExprElement:
		return "expr " + pythonast.String(e.Expr)
	case pythonenv.QualifiedNamer:
		return fmt.Sprintf("%T %s", el, e.QualifiedName())
	}
	if loc := pythonenv.ElementLocator(el); loc != "" {
		return fmt.Sprintf("%T %s", el, loc)
	}
	return fmt.Sprintf("%T %s", el, el.Name())
}
