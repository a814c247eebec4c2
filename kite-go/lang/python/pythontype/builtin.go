package pythontype

import "strings"

// BuiltinType is a type provided by the interpreter, e.g. builtins.int
type BuiltinType struct {
	Path string
}

// Kind implements Value
func (v BuiltinType) Kind() Kind { return TypeKind }

// Type implements Value
func (v BuiltinType) Type() Value { return Builtins.Type }

// Address implements Value
func (v BuiltinType) Address() Address { return SplitAddress(v.Path) }

func (v BuiltinType) equal(u Value) bool {
	if u, ok := u.(BuiltinType); ok {
		return v.Path == u.Path
	}
	return false
}

func (v BuiltinType) hash() TypeHash {
	return rehashBytes(saltBuiltinType, []byte(v.Path))
}

// String implements fmt.Stringer
func (v BuiltinType) String() string { return v.Path }

// Builtins contains values representing the python builtins the engine knows about
var Builtins struct {
	// Constants
	None Value // None represents the python value None

	// Low-level types
	Type     Value // Type represents builtins.type
	Object   Value // Object represents builtins.object
	Function Value // Function represents types.FunctionType
	Module   Value // Module represents types.ModuleType

	// Scalar types
	NoneType Value // NoneType represents builtins.None.__class__
	Bool     Value // Bool represents builtins.bool
	Int      Value // Int represents builtins.int
	Float    Value // Float represents builtins.float
	Str      Value // Str represents builtins.str

	// Structured types
	Tuple Value // Tuple represents builtins.tuple
	List  Value // List represents builtins.list
	Dict  Value // Dict represents builtins.dict

	Property Value // Property represents builtins.property
}

func init() {
	Builtins.None = NoneConstant{}

	Builtins.Type = BuiltinType{"builtins.type"}
	Builtins.Object = BuiltinType{"builtins.object"}
	Builtins.Function = BuiltinType{"types.FunctionType"}
	Builtins.Module = BuiltinType{"types.ModuleType"}

	Builtins.NoneType = BuiltinType{"builtins.NoneType"}
	Builtins.Bool = BuiltinType{"builtins.bool"}
	Builtins.Int = BuiltinType{"builtins.int"}
	Builtins.Float = BuiltinType{"builtins.float"}
	Builtins.Str = BuiltinType{"builtins.str"}

	Builtins.Tuple = BuiltinType{"builtins.tuple"}
	Builtins.List = BuiltinType{"builtins.list"}
	Builtins.Dict = BuiltinType{"builtins.dict"}

	Builtins.Property = BuiltinType{"builtins.property"}
}

// InstanceOf gets a value representing an instance of the named builtin; names
// may carry a "builtins." prefix. The second result is false for unknown names.
func InstanceOf(name string) (Value, bool) {
	switch strings.TrimPrefix(name, "builtins.") {
	case "None", "NoneType":
		return NoneConstant{}, true
	case "bool":
		return BoolInstance{}, true
	case "int":
		return IntInstance{}, true
	case "float":
		return FloatInstance{}, true
	case "str":
		return StrInstance{}, true
	case "list":
		return ListInstance{}, true
	case "dict":
		return DictInstance{}, true
	case "tuple":
		return TupleInstance{}, true
	case "property":
		return PropertyInstance{}, true
	default:
		return nil, false
	}
}

// --

// NoneConstant represents the python value None
type NoneConstant struct{}

// Kind implements Value
func (NoneConstant) Kind() Kind { return InstanceKind }

// Type implements Value
func (NoneConstant) Type() Value { return Builtins.NoneType }

// Address implements Value
func (NoneConstant) Address() Address { return Address{} }

func (NoneConstant) equal(u Value) bool {
	_, ok := u.(NoneConstant)
	return ok
}

func (NoneConstant) hash() TypeHash { return saltNone }

// String implements fmt.Stringer
func (NoneConstant) String() string { return "None" }

// BoolInstance represents an instance of builtins.bool
type BoolInstance struct{}

// Kind implements Value
func (BoolInstance) Kind() Kind { return InstanceKind }

// Type implements Value
func (BoolInstance) Type() Value { return Builtins.Bool }

// Address implements Value
func (BoolInstance) Address() Address { return Address{} }

func (BoolInstance) equal(u Value) bool {
	_, ok := u.(BoolInstance)
	return ok
}

func (BoolInstance) hash() TypeHash { return saltBool }

// String implements fmt.Stringer
func (BoolInstance) String() string { return "bool" }

// IntInstance represents an instance of builtins.int
type IntInstance struct{}

// Kind implements Value
func (IntInstance) Kind() Kind { return InstanceKind }

// Type implements Value
func (IntInstance) Type() Value { return Builtins.Int }

// Address implements Value
func (IntInstance) Address() Address { return Address{} }

func (IntInstance) equal(u Value) bool {
	_, ok := u.(IntInstance)
	return ok
}

func (IntInstance) hash() TypeHash { return saltInt }

// String implements fmt.Stringer
func (IntInstance) String() string { return "int" }

// FloatInstance represents an instance of builtins.float
type FloatInstance struct{}

// Kind implements Value
func (FloatInstance) Kind() Kind { return InstanceKind }

// Type implements Value
func (FloatInstance) Type() Value { return Builtins.Float }

// Address implements Value
func (FloatInstance) Address() Address { return Address{} }

func (FloatInstance) equal(u Value) bool {
	_, ok := u.(FloatInstance)
	return ok
}

func (FloatInstance) hash() TypeHash { return saltFloat }

// String implements fmt.Stringer
func (FloatInstance) String() string { return "float" }

// StrInstance represents an instance of builtins.str
type StrInstance struct{}

// Kind implements Value
func (StrInstance) Kind() Kind { return InstanceKind }

// Type implements Value
func (StrInstance) Type() Value { return Builtins.Str }

// Address implements Value
func (StrInstance) Address() Address { return Address{} }

func (StrInstance) equal(u Value) bool {
	_, ok := u.(StrInstance)
	return ok
}

func (StrInstance) hash() TypeHash { return saltStr }

// String implements fmt.Stringer
func (StrInstance) String() string { return "str" }
