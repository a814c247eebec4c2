package pythonresolve

import (
	"testing"

	"github.com/kiteco/pyresolve/kite-go/lang/python/pythontype"
	"github.com/stretchr/testify/assert"
)

func TestNewContext(t *testing.T) {
	e := requireEngine(t, nil)
	e.Options = Options{AllowDataFlow: false, AllowStubToAST: true}

	ctx := e.NewContext()
	assert.Equal(t, e, ctx.Engine())
	assert.False(t, ctx.AllowDataFlow)
	assert.True(t, ctx.AllowStubToAST)
	assert.Equal(t, 0, ctx.GuardDepth())
}

func TestMemo(t *testing.T) {
	ctx := requireEngine(t, nil).NewContext()

	var calls int
	compute := func() pythontype.Value {
		calls++
		return pythontype.IntInstance{}
	}
	assert.Equal(t, pythontype.IntInstance{}, ctx.memo("k", compute))
	assert.Equal(t, pythontype.IntInstance{}, ctx.memo("k", compute))
	assert.Equal(t, 1, calls)

	// nil results are remembered too
	var nilCalls int
	for i := 0; i < 2; i++ {
		assert.Nil(t, ctx.memo("nil", func() pythontype.Value {
			nilCalls++
			return nil
		}))
	}
	assert.Equal(t, 1, nilCalls)
}

func TestMemoReentrant(t *testing.T) {
	ctx := requireEngine(t, nil).NewContext()

	var calls int
	var inner pythontype.Value = pythontype.StrInstance{}
	var compute func() pythontype.Value
	compute = func() pythontype.Value {
		calls++
		if calls == 1 {
			inner = ctx.memo("k", compute)
		}
		return pythontype.IntInstance{}
	}

	assert.Equal(t, pythontype.IntInstance{}, ctx.memo("k", compute))
	assert.Nil(t, inner)
	assert.Equal(t, 1, calls)

	// the result depended on a guarded computation, so it was not cached
	assert.Equal(t, pythontype.IntInstance{}, ctx.memo("k", compute))
	assert.Equal(t, 2, calls)
}

func TestMaySwitchToAST(t *testing.T) {
	e := requireEngine(t, map[string]string{"/code/main.py": "x = y\n"})
	e.Options.AllowStubToAST = false
	f := requireFile(t, e, "/code/main.py")

	ctx := e.NewContext()
	assert.True(t, ctx.MaySwitchToAST(f))
	f.BuildStubs()
	assert.False(t, ctx.MaySwitchToAST(f))

	e.Options.AllowStubToAST = true
	assert.True(t, e.NewContext().MaySwitchToAST(f))
}
