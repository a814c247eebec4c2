package pythonenv

import (
	"testing"

	"github.com/kiteco/pyresolve/kite-go/lang/python/pythonast"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBindings(t *testing.T) {
	src := `
import os.path
import numpy as np
from collections import OrderedDict as OD
from . import sibling
x = 1
a, (b, c) = 1, (2, 3)
for i, j in pairs:
    pass
def f(p, q=1):
    local = p
class C(Base):
    attr = 2
    def method(self):
        self.field = 3
`
	f := requireFile(t, "/code/mod.py", src)

	osBinding := f.Bindings(f.AST, "os")
	require.Len(t, osBinding, 1)
	require.IsType(t, &ImportedModuleElement{}, osBinding[0])
	assert.Equal(t, "os", osBinding[0].(*ImportedModuleElement).Path)

	np := f.Bindings(f.AST, "np")
	require.Len(t, np, 1)
	assert.Equal(t, "numpy", np[0].(*ImportedModuleElement).QualifiedName())
	assert.Empty(t, f.Bindings(f.AST, "numpy"))

	od := f.Bindings(f.AST, "OD")
	require.Len(t, od, 1)
	require.IsType(t, &ImportedNameElement{}, od[0])
	assert.Equal(t, "collections.OrderedDict", od[0].(*ImportedNameElement).QualifiedName())
	assert.Empty(t, f.Bindings(f.AST, "OrderedDict"))

	sibling := f.Bindings(f.AST, "sibling")
	require.Len(t, sibling, 1)
	assert.Equal(t, ".sibling", sibling[0].(*ImportedNameElement).QualifiedName())

	x := f.Bindings(f.AST, "x")
	require.Len(t, x, 1)
	require.IsType(t, &TargetElement{}, x[0])
	assert.Equal(t, "NumberExpr[1]", pythonast.String(x[0].(*TargetElement).AssignedValue()))

	c := f.Bindings(f.AST, "c")
	require.Len(t, c, 1)
	assert.Equal(t, []int{1, 1}, c[0].(*TargetElement).Unpack)
	assert.Equal(t, "NumberExpr[3]", pythonast.String(c[0].(*TargetElement).AssignedValue()))

	j := f.Bindings(f.AST, "j")
	require.Len(t, j, 1)
	assert.Equal(t, LoopTarget, j[0].(*TargetElement).Kind)
	assert.Equal(t, []int{1}, j[0].(*TargetElement).Unpack)
	assert.Nil(t, j[0].(*TargetElement).AssignedValue())

	fn := f.Bindings(f.AST, "f")
	require.Len(t, fn, 1)
	require.IsType(t, &FunctionElement{}, fn[0])
	def := fn[0].(*FunctionElement).Def
	assert.Nil(t, fn[0].(*FunctionElement).Class)
	assert.Equal(t, "mod.f", fn[0].(*FunctionElement).Value().Addr.Path)

	q := f.Bindings(def, "q")
	require.Len(t, q, 1)
	require.IsType(t, &ParameterElement{}, q[0])
	assert.Equal(t, 1, q[0].(*ParameterElement).Index)
	assert.Len(t, f.Bindings(def, "local"), 1)
	assert.Empty(t, f.Bindings(f.AST, "local"))

	cls := f.Bindings(f.AST, "C")
	require.Len(t, cls, 1)
	ce := cls[0].(*ClassElement)
	assert.Equal(t, "mod.C", ce.Value().Addr.Path)
	assert.Len(t, ce.Bases(), 1)
	assert.Len(t, ce.Members("attr"), 1)

	methods := ce.Members("method")
	require.Len(t, methods, 1)
	method := methods[0].(*FunctionElement)
	assert.Equal(t, ce, method.Class)
	assert.Equal(t, ce.Value(), method.Value().Class)
	assert.Equal(t, "mod.C.method", method.Value().Addr.Path)

	self := f.Bindings(method.Def, "self")
	require.Len(t, self, 1)
	fnEl, clsEl := self[0].(*ParameterElement).Method()
	assert.Equal(t, method, fnEl)
	assert.Equal(t, ce, clsEl)

	fields := ce.InstanceAttributes("field")
	require.Len(t, fields, 1)
	assert.Equal(t, "field", fields[0].Name())
	assert.Empty(t, f.Bindings(method.Def, "field"))
}

func TestBindingsSourceOrder(t *testing.T) {
	f := requireFile(t, "/code/a.py", "x = 1\nx = 'two'\ndef x(): pass\n")
	xs := f.Bindings(f.AST, "x")
	require.Len(t, xs, 3)
	assert.IsType(t, &TargetElement{}, xs[0])
	assert.IsType(t, &TargetElement{}, xs[1])
	assert.IsType(t, &FunctionElement{}, xs[2])
	assert.True(t, xs[0].Node().Begin() < xs[1].Node().Begin())
}

func TestElementAt(t *testing.T) {
	f := requireFile(t, "/code/a.py", "x = y\n")
	assign := f.AST.Body[0].(*pythonast.AssignStmt)
	assert.NotNil(t, f.ElementAt(assign.Targets[0]))
	assert.Nil(t, f.ElementAt(assign.Value))
}

func TestScopes(t *testing.T) {
	f := requireFile(t, "/code/a.py", "class C:\n    def m(self, d=default):\n        return lambda z: z\n")
	cls := f.AST.Body[0].(*pythonast.ClassDefStmt)
	method := cls.Body[0].(*pythonast.FunctionDefStmt)
	ret := method.Body[0].(*pythonast.ReturnStmt)
	lambda := ret.Value.(*pythonast.LambdaExpr)

	assert.Equal(t, pythonast.Scope(f.AST), f.ScopeOf(cls))
	assert.Equal(t, pythonast.Scope(cls), f.ScopeOf(method))
	assert.Equal(t, pythonast.Scope(cls), f.ScopeOf(method.Parameters[1].Default))
	assert.Equal(t, pythonast.Scope(method), f.ScopeOf(lambda))
	assert.Equal(t, pythonast.Scope(lambda), f.ScopeOf(lambda.Body))

	assert.Equal(t, pythonast.Scope(method), f.ParentScope(lambda))
	assert.Equal(t, pythonast.Scope(cls), f.ParentScope(method))
	assert.Equal(t, pythonast.Scope(f.AST), f.ParentScope(cls))
	assert.Nil(t, f.ParentScope(f.AST))

	assert.Equal(t, pythonast.Node(method), f.Ancestor(lambda, func(n pythonast.Node) bool {
		_, ok := n.(*pythonast.FunctionDefStmt)
		return ok
	}))
}

func TestPosition(t *testing.T) {
	f := requireFile(t, "/code/a.py", "x = 1\ny = x\n")
	ref := f.AST.Body[1].(*pythonast.AssignStmt).Value
	line, col := f.Position(ref.Begin())
	assert.Equal(t, 2, line)
	assert.Equal(t, 5, col)
	assert.Equal(t, "x", f.Text(ref))
}

func TestStubs(t *testing.T) {
	f := requireFile(t, "/code/a.py", "def g():\n    a = os.path\n    b = 3\n")
	assert.False(t, f.HasStubs())
	f.BuildStubs()
	assert.True(t, f.HasStubs())

	def := f.AST.Body[0].(*pythonast.FunctionDefStmt)
	a := f.Bindings(def, "a")[0].(*TargetElement)
	b := f.Bindings(def, "b")[0].(*TargetElement)

	text, ok := f.StubText(a)
	require.True(t, ok)
	assert.Equal(t, "os.path", text)
	_, ok = f.StubText(b)
	assert.False(t, ok)

	stub := a.AssignedValueByStub()
	require.IsType(t, &pythonast.AttributeExpr{}, stub)
	assert.Equal(t, stub, a.AssignedValueByStub())
	assert.NotEqual(t, a.AssignedValue(), stub)
	assert.Equal(t, pythonast.Scope(def), f.ScopeOf(stub))
	assert.Equal(t, pythonast.Scope(def), f.ScopeOf(pythonast.RootName(stub)))
	assert.Nil(t, b.AssignedValueByStub())
}
