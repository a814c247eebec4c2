package pythontype

import (
	"fmt"
	"strings"
)

// ListInstance represents an instance of builtins.list
type ListInstance struct {
	Element Value
}

// NewList constructs a list value with the given element type
func NewList(elem Value) Value {
	return ListInstance{elem}
}

// Kind implements Value
func (v ListInstance) Kind() Kind { return InstanceKind }

// Type implements Value
func (v ListInstance) Type() Value { return Builtins.List }

// Address implements Value
func (v ListInstance) Address() Address { return Address{} }

func (v ListInstance) equal(u Value) bool {
	if u, ok := u.(ListInstance); ok {
		return Equal(v.Element, u.Element)
	}
	return false
}

func (v ListInstance) hash() TypeHash {
	return rehashValues(saltList, v.Element)
}

// String implements fmt.Stringer
func (v ListInstance) String() string {
	return fmt.Sprintf("list[%s]", String(v.Element))
}

// DictInstance represents an instance of builtins.dict
type DictInstance struct {
	Key     Value
	Element Value
}

// NewDict constructs a dict value with the given key and element types
func NewDict(key, elem Value) Value {
	return DictInstance{key, elem}
}

// Kind implements Value
func (v DictInstance) Kind() Kind { return InstanceKind }

// Type implements Value
func (v DictInstance) Type() Value { return Builtins.Dict }

// Address implements Value
func (v DictInstance) Address() Address { return Address{} }

func (v DictInstance) equal(u Value) bool {
	if u, ok := u.(DictInstance); ok {
		return Equal(v.Key, u.Key) && Equal(v.Element, u.Element)
	}
	return false
}

func (v DictInstance) hash() TypeHash {
	return rehashValues(saltDict, v.Key, v.Element)
}

// String implements fmt.Stringer
func (v DictInstance) String() string {
	return fmt.Sprintf("dict[%s, %s]", String(v.Key), String(v.Element))
}

// TupleInstance represents an instance of builtins.tuple
type TupleInstance struct {
	Elements []Value
}

// NewTuple constructs a tuple value with the given element types
func NewTuple(elts ...Value) Value {
	return TupleInstance{elts}
}

// Kind implements Value
func (v TupleInstance) Kind() Kind { return InstanceKind }

// Type implements Value
func (v TupleInstance) Type() Value { return Builtins.Tuple }

// Address implements Value
func (v TupleInstance) Address() Address { return Address{} }

// Index gets the element at position i, or the union of all elements if i is out of range
func (v TupleInstance) Index(i int) Value {
	if i >= 0 && i < len(v.Elements) {
		return v.Elements[i]
	}
	return Unite(v.Elements...)
}

func (v TupleInstance) equal(u Value) bool {
	u2, ok := u.(TupleInstance)
	if !ok || len(u2.Elements) != len(v.Elements) {
		return false
	}
	for i := range v.Elements {
		if !Equal(v.Elements[i], u2.Elements[i]) {
			return false
		}
	}
	return true
}

func (v TupleInstance) hash() TypeHash {
	return rehashValues(saltTuple, v.Elements...)
}

// String implements fmt.Stringer
func (v TupleInstance) String() string {
	var parts []string
	for _, elt := range v.Elements {
		parts = append(parts, String(elt))
	}
	return "tuple[" + strings.Join(parts, ", ") + "]"
}
