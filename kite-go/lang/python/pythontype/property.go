package pythontype

import "fmt"

// PropertyInstance represents a property object. FGet, FSet and FDel are the
// accessor functions and may be nil when unknown.
type PropertyInstance struct {
	FGet Value
	FSet Value
	FDel Value
}

// Kind implements Value
func (p PropertyInstance) Kind() Kind { return DescriptorKind }

// Type implements Value
func (p PropertyInstance) Type() Value { return Builtins.Property }

// Address implements Value
func (p PropertyInstance) Address() Address { return Address{} }

func (p PropertyInstance) equal(u Value) bool {
	if u, ok := u.(PropertyInstance); ok {
		return Equal(p.FGet, u.FGet) && Equal(p.FSet, u.FSet) && Equal(p.FDel, u.FDel)
	}
	return false
}

func (p PropertyInstance) hash() TypeHash {
	return rehashValues(saltProperty, p.FGet, p.FSet, p.FDel)
}

// String implements fmt.Stringer
func (p PropertyInstance) String() string {
	return fmt.Sprintf("property(%s, %s, %s)", String(p.FGet), String(p.FSet), String(p.FDel))
}
