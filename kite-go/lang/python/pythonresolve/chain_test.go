package pythonresolve

import (
	"testing"

	"github.com/kiteco/pyresolve/kite-go/lang/python/pythonast"
	"github.com/kiteco/pyresolve/kite-go/lang/python/pythonenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFollowAssignmentsToValue(t *testing.T) {
	e := requireEngine(t, map[string]string{
		"/code/main.py": `
c = 3
b = c
a = b
a
`,
	})
	f := requireFile(t, e, "/code/main.py")

	res := e.FollowAssignments(f, requireRef(t, f, "a", pythonast.Evaluate, 0))
	require.False(t, res.Empty())
	require.IsType(t, &pythonenv.ExprElement{}, res.Element)
	assert.Equal(t, "3", f.Text(res.Element.(*pythonenv.ExprElement).Expr))
	assert.Empty(t, res.Qualifiers)
	assert.False(t, res.Implicit)
}

func TestFollowAssignmentsToDeclaration(t *testing.T) {
	e := requireEngine(t, map[string]string{
		"/code/main.py": `
def f():
    pass
g = f
h = g
h
`,
	})
	f := requireFile(t, e, "/code/main.py")

	res := e.FollowAssignments(f, requireRef(t, f, "h", pythonast.Evaluate, 0))
	require.IsType(t, &pythonenv.FunctionElement{}, res.Element)
	assert.Equal(t, "f", res.Element.Name())
	assert.True(t, res.Valid())
}

func TestFollowAssignmentsQualifiers(t *testing.T) {
	e := requireEngine(t, map[string]string{
		"/code/main.py": `
import os
b = os.path
a = b
a
`,
	})
	f := requireFile(t, e, "/code/main.py")

	res := e.FollowAssignments(f, requireRef(t, f, "a", pythonast.Evaluate, 0))
	require.IsType(t, &pythonenv.ExternalElement{}, res.Element)
	assert.Equal(t, "os.path", res.Element.(*pythonenv.ExternalElement).Path)
	require.Len(t, res.Qualifiers, 1)
	assert.Equal(t, "os", f.Text(res.Qualifiers[0]))
	assert.Contains(t, res.String(), "os.path via ")
}

func TestFollowAssignmentsAcrossFiles(t *testing.T) {
	e := requireEngine(t, map[string]string{
		"/code/main.py": `
import conf
x = conf.value
x
`,
		"/code/conf.py": `
value = other
other = "s"
`,
	})
	f := requireFile(t, e, "/code/main.py")

	res := e.FollowAssignments(f, requireRef(t, f, "x", pythonast.Evaluate, 0))
	require.IsType(t, &pythonenv.ExprElement{}, res.Element)
	assert.Equal(t, e.Tree.Files["/code/conf.py"], res.Element.File())
	assert.Equal(t, `"s"`, res.Element.File().Text(res.Element.(*pythonenv.ExprElement).Expr))
	require.Len(t, res.Qualifiers, 1)
}

func TestFollowAssignmentsCycle(t *testing.T) {
	e := requireEngine(t, map[string]string{
		"/code/main.py": `
a = b
b = a
a
`,
	})
	f := requireFile(t, e, "/code/main.py")

	res := e.FollowAssignments(f, requireRef(t, f, "a", pythonast.Evaluate, 1))
	assert.True(t, res.Empty())
	assert.Equal(t, EmptyQualifiedResolveResult, res)
	assert.Equal(t, "<no chain>", res.String())
}

func TestFollowAssignmentsCycleStopsScan(t *testing.T) {
	e := requireEngine(t, map[string]string{
		"/code/main.py": `
a = b
b = a
def a(): pass
a
`,
	})
	f := requireFile(t, e, "/code/main.py")

	// the function binding of a comes after the cyclic target, so it is never reached
	res := e.FollowAssignments(f, requireRef(t, f, "a", pythonast.Evaluate, 1))
	assert.True(t, res.Empty())
}

func TestFollowAssignmentsSelfReference(t *testing.T) {
	e := requireEngine(t, map[string]string{
		"/code/main.py": `
a = a
a
`,
	})
	f := requireFile(t, e, "/code/main.py")
	assert.True(t, e.FollowAssignments(f, requireRef(t, f, "a", pythonast.Evaluate, 1)).Empty())
}

func TestFollowAssignmentsUnresolved(t *testing.T) {
	e := requireEngine(t, map[string]string{
		"/code/main.py": `
missing
`,
	})
	f := requireFile(t, e, "/code/main.py")
	assert.True(t, e.FollowAssignments(f, requireRef(t, f, "missing", pythonast.Evaluate, 0)).Empty())
}

func TestFollowAssignmentsImplicit(t *testing.T) {
	e := requireEngine(t, map[string]string{
		"/code/main.py": `
class A:
    def run(self):
        pass
def f(o):
    o.run
`,
	})
	f := requireFile(t, e, "/code/main.py")

	res := e.FollowAssignments(f, requireRef(t, f, "run", pythonast.Evaluate, 0))
	require.IsType(t, &pythonenv.FunctionElement{}, res.Element)
	assert.True(t, res.Implicit)
	require.Len(t, res.Qualifiers, 1)
	assert.Equal(t, "o", f.Text(res.Qualifiers[0]))
}

func TestFollowAssignmentsStub(t *testing.T) {
	e := requireEngine(t, map[string]string{
		"/code/main.py": `
import os
b = os.path
a = b
a
`,
	})
	f := requireFile(t, e, "/code/main.py")
	f.BuildStubs()

	res := e.FollowAssignments(f, requireRef(t, f, "a", pythonast.Evaluate, 0))
	require.IsType(t, &pythonenv.ExternalElement{}, res.Element)

	// the summary only records dotted names, so the chain still completes
	e.Options.AllowStubToAST = false
	res = e.FollowAssignments(f, requireRef(t, f, "a", pythonast.Evaluate, 0))
	require.IsType(t, &pythonenv.ExternalElement{}, res.Element)
	assert.Equal(t, "os.path", res.Element.(*pythonenv.ExternalElement).Path)
}
