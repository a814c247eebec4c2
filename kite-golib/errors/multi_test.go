package errors

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppendNil(t *testing.T) {
	err := New("error")
	errs := Append(nil, err)
	require.NotNil(t, errs)
	require.Equal(t, []error{err}, errs.Slice())

	assert.Equal(t, errs, Append(errs, nil))
	assert.Nil(t, Append(nil, nil))
}

func TestAppendFlattens(t *testing.T) {
	err0, err1, err2, err3 := New("error0"), New("error1"), New("error2"), New("error3")

	var errs01, errs23 Errors
	errs01 = Append(errs01, err0)
	errs01 = Append(errs01, err1)
	errs23 = Append(errs23, err2)
	errs23 = Append(errs23, err3)

	errs := Append(errs01, errs23)
	require.Equal(t, []error{err0, err1, err2, err3}, errs.Slice())
	assert.Equal(t, 2, errs01.Len())
	assert.Equal(t, "error0\nerror1\nerror2\nerror3", errs.Error())
}

func TestAppendDoesNotAlias(t *testing.T) {
	var base Errors
	base = Append(base, New("a"))
	base = Append(base, New("b"))

	x := Append(base, New("x"))
	y := Append(base, New("y"))
	assert.Equal(t, "x", x.Slice()[2].Error())
	assert.Equal(t, "y", y.Slice()[2].Error())
	assert.Equal(t, 2, base.Len())
}

func TestCombine(t *testing.T) {
	e, f := New("e"), New("f")
	assert.Nil(t, Combine(nil, nil))
	assert.Equal(t, e, Combine(e, nil))
	assert.Equal(t, f, Combine(nil, f))

	both, ok := Combine(e, f).(Errors)
	require.True(t, ok)
	assert.Equal(t, []error{e, f}, both.Slice())
}

func TestWrapf(t *testing.T) {
	assert.Nil(t, WrapfOrNil(nil, "context"))
	assert.EqualError(t, Wrapf(nil, "no cause %d", 1), "no cause 1")

	base := New("base")
	wrapped := Wrapf(base, "reading %s", "a.py")
	assert.EqualError(t, wrapped, "reading a.py: base")
	assert.Equal(t, base, Cause(wrapped))
}

func TestSummary(t *testing.T) {
	var errs Errors
	for _, s := range []string{"a", "b", "c"} {
		errs = Append(errs, New(s))
	}
	assert.Equal(t, "a; b (and 1 more)", Summary(errs, 2))
	assert.Equal(t, "a; b; c", Summary(errs, 5))
	assert.Equal(t, "x", Summary(New("x"), 2))
	assert.Equal(t, "", Summary(nil, 2))
}
