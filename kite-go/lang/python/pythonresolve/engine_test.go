package pythonresolve

import (
	"strings"
	"testing"

	"github.com/kiteco/pyresolve/kite-go/lang/python/pythonast"
	"github.com/kiteco/pyresolve/kite-go/lang/python/pythonenv"
	"github.com/kiteco/pyresolve/kite-go/lang/python/pythontype"
	"github.com/kiteco/pyresolve/kite-golib/kitelog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requireTree(t *testing.T, files map[string]string) *pythonenv.SourceTree {
	tree := pythonenv.NewSourceTree()
	for path, src := range files {
		f, err := pythonenv.NewFile(path, []byte(strings.TrimLeft(src, "\n")))
		require.NoError(t, err)
		tree.AddFile(f)
	}
	return tree
}

// requireEngine builds an engine over a tree with no providers and quiet logging
func requireEngine(t *testing.T, files map[string]string) *Engine {
	e := NewEngine(requireTree(t, files), DefaultOptions)
	e.Registry = NewRegistry()
	e.Logger = kitelog.Discard
	e.Report = nil
	return e
}

func requireFile(t *testing.T, e *Engine, path string) *pythonenv.File {
	f := e.Tree.Files[path]
	require.NotNil(t, f, "no file %s", path)
	return f
}

// requireRef finds the n'th reference named name with the given usage
func requireRef(t *testing.T, f *pythonenv.File, name string, usage pythonast.Usage, n int) pythonast.ReferenceExpr {
	var found []pythonast.ReferenceExpr
	for _, ref := range f.References() {
		if ref.RefName() == name && ref.RefUsage() == usage {
			found = append(found, ref)
		}
	}
	require.True(t, n < len(found), "only %d references to %s with usage %v", len(found), name, usage)
	return found[n]
}

func requireDef(t *testing.T, f *pythonenv.File, name string, n int) *pythonenv.FunctionElement {
	var found []*pythonenv.FunctionElement
	pythonast.Inspect(f.AST, func(node pythonast.Node) bool {
		if def, ok := node.(*pythonast.FunctionDefStmt); ok && def.Name.Ident.Literal == name {
			found = append(found, f.Function(def))
		}
		return true
	})
	require.True(t, n < len(found), "only %d functions named %s", len(found), name)
	return found[n]
}

func line(f *pythonenv.File, el pythonenv.Element) int {
	l, _ := f.Position(el.Node().Begin())
	return l
}

func TestClassify(t *testing.T) {
	e := requireEngine(t, map[string]string{
		"/code/main.py": `
import os
from os import path
os.sep
x
`,
		"/code/fast.pyx": `
cimport numpy
import json
`,
	})

	main := requireFile(t, e, "/code/main.py")
	assert.Equal(t, KindImport, Classify(main, requireRef(t, main, "os", pythonast.Import, 0)))
	assert.Equal(t, KindImport, Classify(main, requireRef(t, main, "path", pythonast.Import, 0)))
	assert.Equal(t, KindQualified, Classify(main, requireRef(t, main, "sep", pythonast.Evaluate, 0)))
	assert.Equal(t, KindPlain, Classify(main, requireRef(t, main, "os", pythonast.Evaluate, 0)))
	assert.Equal(t, KindPlain, Classify(main, requireRef(t, main, "x", pythonast.Evaluate, 0)))

	fast := requireFile(t, e, "/code/fast.pyx")
	assert.Equal(t, KindDialectImport, Classify(fast, requireRef(t, fast, "numpy", pythonast.Import, 0)))
	assert.Equal(t, KindImport, Classify(fast, requireRef(t, fast, "json", pythonast.Import, 0)))
}

func TestClassifyImportBeforeSession(t *testing.T) {
	e := requireEngine(t, map[string]string{
		"/code/main.py": `
import os
df.shape
`,
	})
	f := requireFile(t, e, "/code/main.py")
	f.Session = pythonenv.MapSession{"df": pythontype.IntInstance{}}

	assert.Equal(t, KindImport, Classify(f, requireRef(t, f, "os", pythonast.Import, 0)))
	assert.Equal(t, KindSession, Classify(f, requireRef(t, f, "df", pythonast.Evaluate, 0)))
	assert.Equal(t, KindSession, Classify(f, requireRef(t, f, "shape", pythonast.Evaluate, 0)))

	ref := requireRef(t, f, "os", pythonast.Import, 0)
	assert.IsType(t, &ImportReference{}, e.Reference(f, ref, ResolveContext{}))
	assert.Equal(t, KindImport, e.Reference(f, ref, ResolveContext{}).Kind())
}

func TestPlainReferenceScopes(t *testing.T) {
	e := requireEngine(t, map[string]string{
		"/code/main.py": `
x = 1
class C:
    x = 2
    y = x
    def m(self):
        return x
len
int
`,
	})
	f := requireFile(t, e, "/code/main.py")

	// class bodies are skipped from nested functions
	res := e.Resolve(f, requireRef(t, f, "x", pythonast.Evaluate, 1), ResolveContext{})
	require.Len(t, res, 1)
	assert.Equal(t, 1, line(f, res[0].Element))

	// but a reference in the class body itself sees the class scope
	res = e.Resolve(f, requireRef(t, f, "x", pythonast.Evaluate, 0), ResolveContext{})
	require.Len(t, res, 1)
	assert.Equal(t, 3, line(f, res[0].Element))

	res = e.Resolve(f, requireRef(t, f, "int", pythonast.Evaluate, 0), ResolveContext{})
	require.Len(t, res, 1)
	assert.IsType(t, &pythonenv.BuiltinElement{}, res[0].Element)

	assert.Empty(t, e.Resolve(f, requireRef(t, f, "len", pythonast.Evaluate, 0), ResolveContext{}))
}

func TestPlainReferenceAllBindings(t *testing.T) {
	e := requireEngine(t, map[string]string{
		"/code/main.py": `
x = 1
x = "s"
x
`,
	})
	f := requireFile(t, e, "/code/main.py")

	res := e.Resolve(f, requireRef(t, f, "x", pythonast.Evaluate, 0), ResolveContext{})
	require.Len(t, res, 2)
	assert.Equal(t, 1, line(f, res[0].Element))
	assert.Equal(t, 2, line(f, res[1].Element))
	for _, r := range res {
		assert.True(t, r.Valid())
		assert.Equal(t, RateNormal, r.Rating)
		assert.False(t, r.Implicit)
	}
}

func TestQualifiedReference(t *testing.T) {
	e := requireEngine(t, map[string]string{
		"/code/main.py": `
import util
class Base:
    def greet(self):
        pass
class C(Base):
    def __init__(self):
        self.name = "c"
c = C()
c.greet
c.name
util.helper
C.name
`,
		"/code/util.py": `
def helper():
    pass
`,
	})
	f := requireFile(t, e, "/code/main.py")

	res := e.Resolve(f, requireRef(t, f, "greet", pythonast.Evaluate, 0), ResolveContext{})
	require.Len(t, res, 1)
	assert.IsType(t, &pythonenv.FunctionElement{}, res[0].Element)
	assert.Equal(t, 3, line(f, res[0].Element))

	res = e.Resolve(f, requireRef(t, f, "name", pythonast.Evaluate, 0), ResolveContext{})
	require.Len(t, res, 1)
	assert.IsType(t, &pythonenv.TargetElement{}, res[0].Element)

	res = e.Resolve(f, requireRef(t, f, "helper", pythonast.Evaluate, 0), ResolveContext{})
	require.Len(t, res, 1)
	assert.Equal(t, e.Tree.Files["/code/util.py"], res[0].Element.File())

	// instance attributes are not attributes of the class
	assert.Empty(t, e.Resolve(f, requireRef(t, f, "name", pythonast.Evaluate, 1), ResolveContext{}))
}

func TestQualifiedReferenceExternal(t *testing.T) {
	e := requireEngine(t, map[string]string{
		"/code/main.py": `
import os
os.path
`,
	})
	f := requireFile(t, e, "/code/main.py")

	res := e.Resolve(f, requireRef(t, f, "path", pythonast.Evaluate, 0), ResolveContext{})
	require.Len(t, res, 1)
	require.IsType(t, &pythonenv.ExternalElement{}, res[0].Element)
	assert.Equal(t, "os.path", res[0].Element.(*pythonenv.ExternalElement).Path)
}

func TestQualifiedReferenceImplicits(t *testing.T) {
	e := requireEngine(t, map[string]string{
		"/code/main.py": `
def f(o):
    return o.attr
class A:
    attr = 1
class B:
    def __init__(self):
        self.attr = 2
`,
	})
	f := requireFile(t, e, "/code/main.py")
	ref := requireRef(t, f, "attr", pythonast.Evaluate, 0)

	assert.Empty(t, e.Resolve(f, ref, ResolveContext{}))

	res := e.Reference(f, ref, ResolveContext{AllowImplicits: true}).MultiResolve(false)
	require.Len(t, res, 2)
	for _, r := range res {
		assert.True(t, r.Implicit)
		assert.Equal(t, RateLow, r.Rating)
	}
	assert.Equal(t, 4, line(f, res[0].Element))
	assert.Equal(t, 7, line(f, res[1].Element))
}

func TestSessionReference(t *testing.T) {
	e := requireEngine(t, map[string]string{
		"/code/main.py": `
df
df.shape
df.sh
`,
	})
	f := requireFile(t, e, "/code/main.py")
	f.Session = pythonenv.MapSession{
		"df":         pythontype.IntInstance{},
		"df.shape":   pythontype.NewTuple(pythontype.IntInstance{}, pythontype.IntInstance{}),
		"df.shape.x": pythontype.IntInstance{},
		"dg":         pythontype.StrInstance{},
	}

	res := e.Resolve(f, requireRef(t, f, "df", pythonast.Evaluate, 0), ResolveContext{})
	require.Len(t, res, 1)
	require.IsType(t, &pythonenv.SessionElement{}, res[0].Element)
	assert.Equal(t, "df", res[0].Element.(*pythonenv.SessionElement).Path)

	res = e.Resolve(f, requireRef(t, f, "shape", pythonast.Evaluate, 0), ResolveContext{})
	require.Len(t, res, 1)
	assert.Equal(t, "df.shape", res[0].Element.(*pythonenv.SessionElement).Path)

	partial := requireRef(t, f, "sh", pythonast.Evaluate, 0)
	assert.Empty(t, e.Resolve(f, partial, ResolveContext{}))
	res = e.Reference(f, partial, ResolveContext{}).MultiResolve(true)
	require.Len(t, res, 1)
	assert.Equal(t, "df.shape", res[0].Element.(*pythonenv.SessionElement).Path)

	assert.Equal(t, pythontype.IntInstance{}, e.InferType(f, requireRef(t, f, "df", pythonast.Evaluate, 0)))
}

func TestImportReference(t *testing.T) {
	e := requireEngine(t, map[string]string{
		"/code/main.py": `
import pkg.util
from pkg.util import helper
from pkg import missing
import numpy as np
from . import sibling
`,
		"/code/pkg/__init__.py": "",
		"/code/pkg/util.py": `
def helper():
    pass
`,
		"/code/sibling.py": "",
	})
	f := requireFile(t, e, "/code/main.py")
	resolve := func(name string, n int) []ResolveResult {
		return e.Resolve(f, requireRef(t, f, name, pythonast.Import, n), ResolveContext{})
	}

	res := resolve("pkg", 0)
	require.Len(t, res, 1)
	assert.IsType(t, &pythonenv.DirElement{}, res[0].Element)

	res = resolve("util", 0)
	require.Len(t, res, 1)
	assert.Equal(t, e.Tree.Files["/code/pkg/util.py"], res[0].Element.File())

	res = resolve("helper", 0)
	require.Len(t, res, 1)
	assert.IsType(t, &pythonenv.FunctionElement{}, res[0].Element)

	assert.Empty(t, resolve("missing", 0))

	for _, name := range []string{"numpy", "np"} {
		res = resolve(name, 0)
		require.Len(t, res, 1, name)
		require.IsType(t, &pythonenv.ExternalElement{}, res[0].Element, name)
		assert.Equal(t, "numpy", res[0].Element.(*pythonenv.ExternalElement).Path, name)
	}

	res = resolve("sibling", 0)
	require.Len(t, res, 1)
	assert.Equal(t, e.Tree.Files["/code/sibling.py"], res[0].Element.File())
}

func TestDialectImportReference(t *testing.T) {
	e := requireEngine(t, map[string]string{
		"/code/main.pyx": `
cimport fast
`,
		"/code/fast.pyx": "",
		"/code/fast.pxd": "",
	})
	f := requireFile(t, e, "/code/main.pyx")
	ref := requireRef(t, f, "fast", pythonast.Import, 0)

	r := e.Reference(f, ref, ResolveContext{})
	assert.Equal(t, KindDialectImport, r.Kind())
	res := r.MultiResolve(false)
	require.Len(t, res, 1)
	assert.Equal(t, "/code/fast.pxd", res[0].Element.File().Path)
}
