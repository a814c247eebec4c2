package pythontype

import "fmt"

// Kind categorizes values at the coarsest level. It covers things that are not
// directly representable as python values, such as union types.
type Kind int

const (
	// UnknownKind indicates a python value about which we know nothing
	UnknownKind Kind = iota
	// FunctionKind indicates a python function or method
	FunctionKind
	// TypeKind indicates a python type
	TypeKind
	// ModuleKind indicates a python module or package
	ModuleKind
	// InstanceKind indicates an instance of some type
	InstanceKind
	// UnionKind indicates a value that is a union of several possible values
	UnionKind
	// DescriptorKind indicates a value that ascribes to the descriptor protocol
	DescriptorKind
)

// String gets a string representation of this kind
func (k Kind) String() string {
	switch k {
	case UnknownKind:
		return "unknown"
	case FunctionKind:
		return "function"
	case TypeKind:
		return "type"
	case ModuleKind:
		return "module"
	case InstanceKind:
		return "instance"
	case UnionKind:
		return "union"
	case DescriptorKind:
		return "descriptor"
	default:
		return fmt.Sprintf("invalid(%d)", k)
	}
}

// Value represents the set of values a python expression might have. A nil
// Value means nothing is known about the expression.
type Value interface {
	// Kind categorizes this value as function/type/module/instance/union/etc
	Kind() Kind

	// Type gets the result of calling type() on this value in python
	Type() Value

	// Address is the path for this value, empty for anonymous values
	Address() Address

	hash() TypeHash
	equal(Value) bool
}

// Equal determines whether two values represent the same set of values. This is
// structural for builtins, collections and unions, and by identity for values
// created from source declarations.
func Equal(u, v Value) bool {
	if u == nil && v == nil {
		return true
	}
	if u == nil || v == nil {
		return false
	}
	return u.equal(v)
}

// Hash gets the hash for a value; equal values have equal hashes
func Hash(v Value) TypeHash {
	if v == nil {
		return 0
	}
	return v.hash()
}

// String representation of a value
func String(v Value) string {
	if v == nil {
		return "<nil>"
	}
	if s, ok := v.(fmt.Stringer); ok {
		return s.String()
	}
	return "<unknown value>"
}
