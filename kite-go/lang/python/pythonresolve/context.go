package pythonresolve

import (
	lru "github.com/hashicorp/golang-lru"
	"github.com/kiteco/pyresolve/kite-go/lang/python/pythonast"
	"github.com/kiteco/pyresolve/kite-go/lang/python/pythonenv"
	"github.com/kiteco/pyresolve/kite-go/lang/python/pythontype"
)

// TypeEvalContext holds the state of one request: the options controlling
// data flow and syntax tree access, the reentrancy guard, and a cache of
// element types. A context must not be shared between goroutines.
type TypeEvalContext struct {
	engine *Engine

	// AllowDataFlow enables reaching-definition analysis
	AllowDataFlow bool
	// AllowStubToAST permits reading the syntax tree of summarized files
	AllowStubToAST bool

	evaluating map[pythonast.Expr]bool
	computing  map[interface{}]bool
	guardHits  int
	cache      *lru.Cache
}

type cached struct {
	value pythontype.Value
}

// NewContext creates a context for one request
func (e *Engine) NewContext() *TypeEvalContext {
	size := e.Options.CacheSize
	if size <= 0 {
		size = DefaultOptions.CacheSize
	}
	cache, err := lru.New(size)
	if err != nil {
		// only possible for a non-positive size
		panic(err)
	}
	return &TypeEvalContext{
		engine:         e,
		AllowDataFlow:  e.Options.AllowDataFlow,
		AllowStubToAST: e.Options.AllowStubToAST,
		evaluating:     make(map[pythonast.Expr]bool),
		computing:      make(map[interface{}]bool),
		cache:          cache,
	}
}

// Engine gets the engine this context belongs to
func (c *TypeEvalContext) Engine() *Engine {
	return c.engine
}

// Evaluating checks whether the type of expr is being computed
func (c *TypeEvalContext) Evaluating(expr pythonast.Expr) bool {
	return c.evaluating[expr]
}

// GuardDepth is the number of expressions whose type is being computed
func (c *TypeEvalContext) GuardDepth() int {
	return len(c.evaluating)
}

// MaySwitchToAST checks whether assigned values in f may be read from the
// syntax tree rather than the file summary
func (c *TypeEvalContext) MaySwitchToAST(f *pythonenv.File) bool {
	return c.AllowStubToAST || !f.HasStubs()
}

// enter pushes expr on the guard; it returns false if expr is already there
func (c *TypeEvalContext) enter(expr pythonast.Expr) bool {
	if c.evaluating[expr] {
		c.guardHits++
		return false
	}
	c.evaluating[expr] = true
	return true
}

func (c *TypeEvalContext) exit(expr pythonast.Expr) {
	delete(c.evaluating, expr)
}

// memo computes a value once per key. A computation that reaches itself
// yields nil; results that depended on a guarded computation are not cached.
func (c *TypeEvalContext) memo(key interface{}, compute func() pythontype.Value) pythontype.Value {
	if v, ok := c.cache.Get(key); ok {
		return v.(cached).value
	}
	if c.computing[key] {
		c.guardHits++
		return nil
	}
	c.computing[key] = true
	defer delete(c.computing, key)
	hits := c.guardHits
	v := compute()
	if c.guardHits == hits {
		c.cache.Add(key, cached{v})
	}
	return v
}
