package pythonparser

import (
	"bytes"
	"fmt"
	"go/token"
	"strings"
	"testing"

	"github.com/kiteco/pyresolve/kite-go/lang/python/pythonast"
	"github.com/kiteco/pyresolve/kite-golib/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var opts = Options{
	ErrorMode: FailFast,
}

func requireParse(t *testing.T, src string) *pythonast.Module {
	t.Log(src)
	mod, err := Parse([]byte(src), opts)
	require.NoError(t, err)
	require.NotNil(t, mod)
	assertNesting(t, mod)
	return mod
}

func assertParse(t *testing.T, expected string, src string) {
	mod := requireParse(t, src)
	assertAST(t, expected, mod)
}

func assertAST(t *testing.T, expected string, node pythonast.Node) {
	var buf bytes.Buffer
	pythonast.Print(node, &buf, "\t")
	assert.Equal(t, strings.TrimSpace(expected), strings.TrimSpace(buf.String()))
}

type nestingResult struct {
	violations []string
}

type nestingVerifier struct {
	result      *nestingResult
	parentBegin token.Pos
	parentEnd   token.Pos
}

func (p *nestingVerifier) Visit(n pythonast.Node) pythonast.Visitor {
	if n == nil {
		return nil
	}
	if n.Begin() < p.parentBegin || n.End() > p.parentEnd {
		msg := fmt.Sprintf("error at %T (%d...%d)", n, n.Begin(), n.End())
		p.result.violations = append(p.result.violations, msg)
	}
	return &nestingVerifier{p.result, n.Begin(), n.End()}
}

// assertNesting checks that the Begin and End of each node fully encloses the Begin and End of each of its children
func assertNesting(t *testing.T, node pythonast.Node) {
	var result nestingResult
	verifier := nestingVerifier{&result, node.Begin(), node.End()}
	pythonast.Walk(&verifier, node)
	if len(result.violations) > 0 {
		msg := strings.Join(result.violations, "\n")
		var buf bytes.Buffer
		pythonast.PrintPositions(node, &buf, "\t")
		t.Errorf("Nesting violations:\n%s\n%s", msg, buf.String())
	}
}

func TestChainedAssign(t *testing.T) {
	src := `a = b = 1`
	expected := `
Module
	AssignStmt
		NameExpr[a]
		NameExpr[b]
		NumberExpr[1]
`
	assertParse(t, expected, src)

	mod := requireParse(t, src)
	assign := mod.Body[0].(*pythonast.AssignStmt)
	for _, target := range assign.Targets {
		assert.Equal(t, pythonast.Assign, pythonast.GetUsage(target))
	}
}

func TestSingleValueAssign(t *testing.T) {
	src := "b = c\nt = c,\n"
	expected := `
Module
	AssignStmt
		NameExpr[b]
		NameExpr[c]
	AssignStmt
		NameExpr[t]
		TupleExpr
			NameExpr[c]
`
	assertParse(t, expected, src)
}

func TestFunctionBody(t *testing.T) {
	src := "def f(a=1):\n    a\n    return a\n\ndef g(): pass\n"
	expected := `
Module
	FunctionDefStmt
		NameExpr[f]
		Parameter
			NameExpr[a]
			NumberExpr[1]
		ExprStmt
			NameExpr[a]
		ReturnStmt
			NameExpr[a]
	FunctionDefStmt
		NameExpr[g]
		PassStmt
`
	assertParse(t, expected, src)
}

func TestInlineSuites(t *testing.T) {
	src := `
if a: x = 1
elif b: x = 2
else: x = 3
while c: pass
for i in r: y = i
class C: pass
`
	mod := requireParse(t, src)
	require.Len(t, mod.Body, 4)

	ifStmt := mod.Body[0].(*pythonast.IfStmt)
	require.Len(t, ifStmt.Branches, 2)
	for _, b := range ifStmt.Branches {
		require.Len(t, b.Body, 1)
		assert.IsType(t, &pythonast.AssignStmt{}, b.Body[0])
	}
	require.Len(t, ifStmt.Else, 1)

	require.Len(t, mod.Body[1].(*pythonast.WhileStmt).Body, 1)

	forStmt := mod.Body[2].(*pythonast.ForStmt)
	require.Len(t, forStmt.Targets, 1)
	assert.Equal(t, "i", forStmt.Targets[0].(*pythonast.NameExpr).RefName())
	assert.Equal(t, "r", forStmt.Iterable.(*pythonast.NameExpr).RefName())
	require.Len(t, forStmt.Body, 1)

	require.Len(t, mod.Body[3].(*pythonast.ClassDefStmt).Body, 1)
}

func TestPrintCall(t *testing.T) {
	expected := `
Module
	ExprStmt
		CallExpr
			NameExpr[print]
			Argument
				NameExpr[x]
`
	assertParse(t, expected, "print(x)\n")
}

func TestTupleAssign(t *testing.T) {
	mod := requireParse(t, "a, b = 1, 2")
	assign := mod.Body[0].(*pythonast.AssignStmt)
	require.Len(t, assign.Targets, 1)
	tup, ok := assign.Targets[0].(*pythonast.TupleExpr)
	require.True(t, ok)
	require.Len(t, tup.Elts, 2)
	assert.Equal(t, pythonast.Assign, tup.Usage)
	assert.Equal(t, pythonast.Assign, pythonast.GetUsage(tup.Elts[1]))
	assert.IsType(t, &pythonast.TupleExpr{}, assign.Value)
}

func TestAttributeAssign(t *testing.T) {
	mod := requireParse(t, "self.x = None")
	assign := mod.Body[0].(*pythonast.AssignStmt)
	attr, ok := assign.Targets[0].(*pythonast.AttributeExpr)
	require.True(t, ok)
	assert.Equal(t, "x", attr.RefName())
	assert.Equal(t, pythonast.Assign, attr.Usage)

	// the qualifier of an assigned attribute is evaluated
	self := attr.Value.(*pythonast.NameExpr)
	assert.Equal(t, "self", self.RefName())
	assert.Equal(t, pythonast.Evaluate, self.Usage)

	none := assign.Value.(*pythonast.NameExpr)
	assert.Equal(t, "None", none.RefName())
}

func TestAugAssign(t *testing.T) {
	mod := requireParse(t, "x += 1")
	aug, ok := mod.Body[0].(*pythonast.AugAssignStmt)
	require.True(t, ok)
	assert.Equal(t, "+=", aug.Op.Literal)
	assert.Equal(t, pythonast.Evaluate, pythonast.GetUsage(aug.Target))
	assert.Equal(t, pythonast.Write, pythonast.DirectionOf(aug.Target.(pythonast.ReferenceExpr), aug))
}

func TestAnnotatedAssign(t *testing.T) {
	mod := requireParse(t, "x: int = 3")
	assign := mod.Body[0].(*pythonast.AssignStmt)
	require.NotNil(t, assign.Annotation)
	assert.Equal(t, "int", assign.Annotation.(*pythonast.NameExpr).RefName())
	assert.IsType(t, &pythonast.NumberExpr{}, assign.Value)
}

func TestImports(t *testing.T) {
	src := `
import os.path as p, sys
from ..pkg import a as b, c
from . import d
from m import *
`
	mod := requireParse(t, src)
	require.Len(t, mod.Body, 4)

	imp := mod.Body[0].(*pythonast.ImportNameStmt)
	require.Len(t, imp.Names, 2)
	assert.Equal(t, "os.path", imp.Names[0].External.Join())
	assert.Equal(t, "p", imp.Names[0].Internal.RefName())
	assert.Equal(t, "sys", imp.Names[1].External.Join())
	assert.Nil(t, imp.Names[1].Internal)
	assert.Equal(t, pythonast.Import, imp.Names[0].Internal.Usage)

	from := mod.Body[1].(*pythonast.ImportFromStmt)
	assert.Equal(t, 2, from.Dots)
	assert.Equal(t, "pkg", from.Package.Join())
	require.Len(t, from.Names, 2)
	assert.Equal(t, "a", from.Names[0].External.RefName())
	assert.Equal(t, "b", from.Names[0].Internal.RefName())
	assert.Equal(t, "c", from.Names[1].External.RefName())

	rel := mod.Body[2].(*pythonast.ImportFromStmt)
	assert.Equal(t, 1, rel.Dots)
	assert.Nil(t, rel.Package)
	require.Len(t, rel.Names, 1)
	assert.Equal(t, "d", rel.Names[0].External.RefName())

	star := mod.Body[3].(*pythonast.ImportFromStmt)
	assert.NotNil(t, star.Wildcard)
	assert.Empty(t, star.Names)
}

func TestCythonImports(t *testing.T) {
	src := "cimport numpy as np\nfrom libc.math cimport sqrt\nimport os\n"
	mod, err := Parse([]byte(src), Options{Dialect: pythonast.Cython})
	require.NoError(t, err)
	require.Len(t, mod.Body, 3)
	assert.Equal(t, pythonast.Cython, mod.Dialect)

	cimp, ok := mod.Body[0].(*pythonast.CImportStmt)
	require.True(t, ok)
	assert.Equal(t, "cimport", cimp.CImport.Literal)
	assert.Equal(t, "numpy", cimp.Names[0].External.Join())
	assert.Equal(t, "np", cimp.Names[0].Internal.RefName())

	from, ok := mod.Body[1].(*pythonast.FromCImportStmt)
	require.True(t, ok)
	assert.Equal(t, "libc.math", from.Package.Join())
	assert.Equal(t, "sqrt", from.Names[0].External.RefName())

	assert.IsType(t, &pythonast.ImportNameStmt{}, mod.Body[2])
}

func TestRewriteCImports(t *testing.T) {
	src := []byte("x = 1\n  cimport a\nfrom b cimport c\ny = 'cimport'\n")
	out, rows := rewriteCImports(src)
	assert.Equal(t, "x = 1\n  import  a\nfrom b import  c\ny = 'cimport'\n", string(out))
	assert.Equal(t, map[uint32]bool{1: true, 2: true}, rows)
	assert.Len(t, out, len(src))
}

func TestDecoratedDefinitions(t *testing.T) {
	src := `
class C(Base):
    @property
    def p(self):
        return 1

    @p.setter
    def p(self, value):
        pass
`
	mod := requireParse(t, src)
	require.Len(t, mod.Body, 1)
	class := mod.Body[0].(*pythonast.ClassDefStmt)
	assert.Equal(t, "C", class.Name.RefName())
	require.Len(t, class.Args, 1)
	assert.Equal(t, "Base", class.Args[0].Value.(*pythonast.NameExpr).RefName())
	require.Len(t, class.Body, 2)

	getter := class.Body[0].(*pythonast.FunctionDefStmt)
	assert.Equal(t, "p", getter.Name.RefName())
	require.Len(t, getter.Decorators, 1)
	assert.Equal(t, "property", getter.Decorators[0].(*pythonast.NameExpr).RefName())
	require.Len(t, getter.Parameters, 1)
	assert.Equal(t, "self", getter.Parameters[0].Name.RefName())
	assert.IsType(t, &pythonast.ReturnStmt{}, getter.Body[0])

	setter := class.Body[1].(*pythonast.FunctionDefStmt)
	require.Len(t, setter.Decorators, 1)
	attr := setter.Decorators[0].(*pythonast.AttributeExpr)
	assert.Equal(t, "setter", attr.RefName())
	assert.Equal(t, "p", attr.Value.(*pythonast.NameExpr).RefName())
	require.Len(t, setter.Parameters, 2)
	require.Len(t, setter.Body, 1)
	assert.IsType(t, &pythonast.PassStmt{}, setter.Body[0])

	ret := getter.Body[0].(*pythonast.ReturnStmt)
	assert.IsType(t, &pythonast.NumberExpr{}, ret.Value)
}

func TestParameters(t *testing.T) {
	mod := requireParse(t, "def f(a, b=1, *args, c: int = 2, **kw) -> str:\n    pass\n")
	fn := mod.Body[0].(*pythonast.FunctionDefStmt)
	require.Len(t, fn.Parameters, 5)
	assert.Equal(t, "a", fn.Parameters[0].Name.RefName())
	assert.IsType(t, &pythonast.NumberExpr{}, fn.Parameters[1].Default)
	assert.True(t, fn.Parameters[2].Vararg)
	assert.Equal(t, "args", fn.Parameters[2].Name.RefName())
	assert.NotNil(t, fn.Parameters[3].Annotation)
	assert.True(t, fn.Parameters[4].Kwarg)
	assert.Equal(t, "str", fn.Annotation.(*pythonast.NameExpr).RefName())
}

func TestCompoundStatements(t *testing.T) {
	src := `
if a:
    x = 1
elif b:
    x = 2
else:
    x = 3
for i, j in pairs:
    del x
else:
    pass
while cond:
    y = x
`
	mod := requireParse(t, src)
	require.Len(t, mod.Body, 3)

	ifStmt := mod.Body[0].(*pythonast.IfStmt)
	require.Len(t, ifStmt.Branches, 2)
	require.Len(t, ifStmt.Else, 1)

	forStmt := mod.Body[1].(*pythonast.ForStmt)
	require.Len(t, forStmt.Targets, 2)
	assert.Equal(t, pythonast.Assign, pythonast.GetUsage(forStmt.Targets[0]))
	del := forStmt.Body[0].(*pythonast.DelStmt)
	assert.Equal(t, pythonast.Delete, pythonast.GetUsage(del.Targets[0]))
	require.Len(t, forStmt.Else, 1)

	whileStmt := mod.Body[2].(*pythonast.WhileStmt)
	assert.Equal(t, "cond", whileStmt.Condition.(*pythonast.NameExpr).RefName())
	require.Len(t, whileStmt.Body, 1)
}

func TestCallArguments(t *testing.T) {
	mod := requireParse(t, "p = property(get, fset=put)")
	call := mod.Body[0].(*pythonast.AssignStmt).Value.(*pythonast.CallExpr)
	assert.Equal(t, "property", call.Func.(*pythonast.NameExpr).RefName())
	require.Len(t, call.Args, 2)
	assert.Nil(t, call.Args[0].Name)
	assert.Equal(t, "fset", call.Args[1].Name.RefName())
	assert.Equal(t, "put", call.Args[1].Value.(*pythonast.NameExpr).RefName())
}

func TestSyntaxErrors(t *testing.T) {
	src := []byte("x = 1\ndef (:\n")

	mod, err := Parse(src, Options{ErrorMode: FailFast})
	assert.Nil(t, mod)
	require.Error(t, err)

	mod, err = Parse(src, Options{ErrorMode: Recover})
	require.NotNil(t, mod)
	require.Error(t, err)
	errs, ok := err.(errors.Errors)
	require.True(t, ok)
	assert.True(t, errs.Len() > 0)
	assert.IsType(t, &pythonast.AssignStmt{}, mod.Body[0])
}

func TestDialectForPath(t *testing.T) {
	assert.Equal(t, pythonast.Cython, DialectForPath("a/b.pyx"))
	assert.Equal(t, pythonast.Cython, DialectForPath("b.pxd"))
	assert.Equal(t, pythonast.Python, DialectForPath("b.py"))
}
