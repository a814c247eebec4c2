package pythonenv

import (
	"testing"

	"github.com/kiteco/pyresolve/kite-go/lang/python/pythonast"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requireClass(t *testing.T, f *File, name string) *ClassElement {
	els := f.Bindings(f.AST, name)
	require.Len(t, els, 1)
	require.IsType(t, &ClassElement{}, els[0])
	return els[0].(*ClassElement)
}

func TestFindProperty_Decorators(t *testing.T) {
	src := `
class A:
    @property
    def p(self):
        return 1

    @p.setter
    def p(self, value):
        pass

    @p.deleter
    def p(self):
        pass

    @property
    def readonly(self):
        return "x"

    def plain(self):
        pass
`
	f := requireFile(t, "/code/a.py", src)
	cls := requireClass(t, f, "A")

	p := cls.FindProperty("p")
	require.NotNil(t, p)
	require.NotNil(t, p.Getter)
	require.NotNil(t, p.Setter)
	require.NotNil(t, p.Deleter)
	assert.NotEqual(t, p.Getter, p.Setter)
	assert.Equal(t, p.Getter, p.ByDirection(pythonast.Read))
	assert.Equal(t, p.Setter, p.ByDirection(pythonast.Write))
	assert.Equal(t, p.Deleter, p.ByDirection(pythonast.Del))
	assert.True(t, p.Getter.HasDecorator("property"))
	assert.Equal(t, []string{"p.setter"}, p.Setter.DecoratorNames())

	ro := cls.FindProperty("readonly")
	require.NotNil(t, ro)
	assert.NotNil(t, ro.Getter)
	assert.Nil(t, ro.ByDirection(pythonast.Write))

	assert.Nil(t, cls.FindProperty("plain"))
	assert.Nil(t, cls.FindProperty("missing"))
}

func TestFindProperty_Call(t *testing.T) {
	src := `
def module_getter(self):
    return 1

class B:
    def get_x(self):
        return 1
    def set_x(self, v):
        pass
    x = property(get_x, set_x)
    y = property(fget=module_getter, fdel=get_x)
    z = 5
`
	f := requireFile(t, "/code/b.py", src)
	cls := requireClass(t, f, "B")

	x := cls.FindProperty("x")
	require.NotNil(t, x)
	require.NotNil(t, x.Getter)
	assert.Equal(t, "get_x", x.Getter.Name())
	require.NotNil(t, x.Setter)
	assert.Equal(t, "set_x", x.Setter.Name())
	assert.Nil(t, x.Deleter)

	y := cls.FindProperty("y")
	require.NotNil(t, y)
	require.NotNil(t, y.Getter)
	assert.Equal(t, "module_getter", y.Getter.Name())
	assert.Nil(t, y.Getter.Class)
	assert.Nil(t, y.Setter)
	require.NotNil(t, y.Deleter)
	assert.Equal(t, "get_x", y.Deleter.Name())

	assert.Nil(t, cls.FindProperty("z"))
}

func TestDecoratorNames(t *testing.T) {
	src := `
@staticmethod
@functools.wraps(other)
@registry["key"]
def f():
    pass
`
	f := requireFile(t, "/code/c.py", src)
	fn := f.Bindings(f.AST, "f")[0].(*FunctionElement)
	assert.Equal(t, []string{"staticmethod", "functools.wraps"}, fn.DecoratorNames())
	assert.True(t, fn.HasDecorator("functools.wraps"))
	assert.False(t, fn.HasDecorator("wraps"))
}
