package pythontype

import (
	"unsafe"

	"github.com/kiteco/pyresolve/kite-go/lang/python/pythonast"
)

// SourceValue is a Value created from direct analysis of python source files/directories.
// Source values compare by identity, so there must be exactly one per declaration.
type SourceValue interface {
	Value
	source()
}

// SourceClass represents a class created from python source
type SourceClass struct {
	Addr  Address
	Def   *pythonast.ClassDefStmt
	Bases []Value
}

func (v *SourceClass) source() {}

// Kind implements Value
func (v *SourceClass) Kind() Kind { return TypeKind }

// Type implements Value
func (v *SourceClass) Type() Value { return Builtins.Type }

// Address implements Value
func (v *SourceClass) Address() Address { return v.Addr }

func (v *SourceClass) equal(other Value) bool {
	if cls, ok := other.(*SourceClass); ok {
		return v == cls
	}
	return false
}

func (v *SourceClass) hash() TypeHash {
	// two classes are the same iff they are at the same memory location
	return TypeHash(uintptr(unsafe.Pointer(v)))
}

// String implements fmt.Stringer
func (v *SourceClass) String() string {
	return "src-class:" + v.Addr.String()
}

// SourceInstance represents an instance of user-defined class
type SourceInstance struct {
	Class *SourceClass
}

func (v SourceInstance) source() {}

// Kind implements Value
func (v SourceInstance) Kind() Kind { return InstanceKind }

// Type implements Value
func (v SourceInstance) Type() Value { return v.Class }

// Address implements Value
func (v SourceInstance) Address() Address { return Address{} }

func (v SourceInstance) equal(other Value) bool {
	if u, ok := other.(SourceInstance); ok {
		return v.Class == u.Class
	}
	return false
}

func (v SourceInstance) hash() TypeHash {
	return rehashValues(saltInstance, v.Class)
}

// String implements fmt.Stringer
func (v SourceInstance) String() string {
	return "src-instance:" + v.Class.Addr.String()
}

// SourceFunction represents a python function or method
type SourceFunction struct {
	Addr  Address
	Def   *pythonast.FunctionDefStmt
	Class *SourceClass // Class is the class in which this function was defined, or nil
}

func (v *SourceFunction) source() {}

// Kind implements Value
func (v *SourceFunction) Kind() Kind { return FunctionKind }

// Type implements Value
func (v *SourceFunction) Type() Value { return Builtins.Function }

// Address implements Value
func (v *SourceFunction) Address() Address { return v.Addr }

func (v *SourceFunction) equal(other Value) bool {
	if fun, ok := other.(*SourceFunction); ok {
		return v == fun
	}
	return false
}

func (v *SourceFunction) hash() TypeHash {
	return TypeHash(uintptr(unsafe.Pointer(v)))
}

// String implements fmt.Stringer
func (v *SourceFunction) String() string {
	return "src-func:" + v.Addr.String()
}

// SourceModule represents a python file
type SourceModule struct {
	Addr Address
}

func (v *SourceModule) source() {}

// Kind implements Value
func (v *SourceModule) Kind() Kind { return ModuleKind }

// Type implements Value
func (v *SourceModule) Type() Value { return Builtins.Module }

// Address implements Value
func (v *SourceModule) Address() Address { return v.Addr }

func (v *SourceModule) equal(other Value) bool {
	if mod, ok := other.(*SourceModule); ok {
		return v == mod
	}
	return false
}

func (v *SourceModule) hash() TypeHash {
	return TypeHash(uintptr(unsafe.Pointer(v)))
}

// String implements fmt.Stringer
func (v *SourceModule) String() string {
	return "src-module:" + v.Addr.String()
}

// SourcePackage represents a directory of python files
type SourcePackage struct {
	Addr Address
	Init *SourceModule // Init is the module for __init__.py, or nil
}

func (v *SourcePackage) source() {}

// Kind implements Value
func (v *SourcePackage) Kind() Kind { return ModuleKind }

// Type implements Value
func (v *SourcePackage) Type() Value { return Builtins.Module }

// Address implements Value
func (v *SourcePackage) Address() Address { return v.Addr }

func (v *SourcePackage) equal(other Value) bool {
	if pkg, ok := other.(*SourcePackage); ok {
		return v == pkg
	}
	return false
}

func (v *SourcePackage) hash() TypeHash {
	return TypeHash(uintptr(unsafe.Pointer(v)))
}

// String implements fmt.Stringer
func (v *SourcePackage) String() string {
	return "src-package:" + v.Addr.String()
}
