package pythontype

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnite_Dedupe(t *testing.T) {
	u := Unite(IntInstance{}, StrInstance{}, IntInstance{})
	require.IsType(t, Union{}, u)
	assert.Len(t, u.(Union).Constituents, 2)
	assert.Equal(t, "(int | str)", String(u))
}

func TestUnite_Single(t *testing.T) {
	assert.Equal(t, IntInstance{}, Unite(IntInstance{}, IntInstance{}))
	assert.Equal(t, IntInstance{}, Unite(nil, IntInstance{}, nil))
	assert.Nil(t, Unite())
	assert.Nil(t, Unite(nil, nil, nil))
}

func TestUnite_Flatten(t *testing.T) {
	inner := Unite(IntInstance{}, StrInstance{})
	u := Unite(inner, FloatInstance{}, StrInstance{})
	require.IsType(t, Union{}, u)
	assert.Len(t, Disjuncts(u), 3)
	for _, d := range Disjuncts(u) {
		assert.NotEqual(t, UnionKind, d.Kind())
	}
}

func TestUnite_OrderIndependentEquality(t *testing.T) {
	a := Unite(IntInstance{}, StrInstance{}, NoneConstant{})
	b := Unite(NoneConstant{}, IntInstance{}, StrInstance{})
	assert.True(t, Equal(a, b))
	assert.Equal(t, Hash(a), Hash(b))
	assert.False(t, Equal(a, Unite(IntInstance{}, StrInstance{})))
}

func TestUnite_MergesCollections(t *testing.T) {
	u := Unite(NewList(IntInstance{}), NewList(StrInstance{}), BoolInstance{})
	require.IsType(t, Union{}, u)
	parts := Disjuncts(u)
	require.Len(t, parts, 2)
	assert.True(t, Equal(NewList(Unite(IntInstance{}, StrInstance{})), parts[0]))
	assert.Equal(t, BoolInstance{}, parts[1])

	d := Unite(NewDict(StrInstance{}, IntInstance{}), NewDict(StrInstance{}, FloatInstance{}))
	assert.True(t, Equal(NewDict(StrInstance{}, Unite(IntInstance{}, FloatInstance{})), d))
}

func TestUnite_MergesProperties(t *testing.T) {
	p := Unite(PropertyInstance{FGet: IntInstance{}}, PropertyInstance{FSet: StrInstance{}})
	require.IsType(t, PropertyInstance{}, p)
	assert.Equal(t, IntInstance{}, p.(PropertyInstance).FGet)
	assert.Equal(t, StrInstance{}, p.(PropertyInstance).FSet)
	assert.Nil(t, p.(PropertyInstance).FDel)
}

func TestUnite_Limit(t *testing.T) {
	var vs []Value
	for i := 0; i < 2*maxUnionSize; i++ {
		vs = append(vs, ExternalInstance{TypePath: "pkg.Class" + string(rune('A'+i))})
	}
	u := Unite(vs...)
	assert.Len(t, Disjuncts(u), maxUnionSize)
}

func TestUnion_Type(t *testing.T) {
	u := Unite(IntInstance{}, StrInstance{})
	assert.True(t, Equal(Unite(Builtins.Int, Builtins.Str), u.Type()))
	assert.True(t, u.Address().Nil())
}

func TestDisjuncts(t *testing.T) {
	assert.Nil(t, Disjuncts(nil))
	assert.Equal(t, []Value{IntInstance{}}, Disjuncts(IntInstance{}))
}
