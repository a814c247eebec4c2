package pythontype

// ExternalModule represents a module that is imported but not part of the
// source tree, known only by its dotted path
type ExternalModule struct {
	Path string
}

// Kind implements Value
func (v ExternalModule) Kind() Kind { return ModuleKind }

// Type implements Value
func (v ExternalModule) Type() Value { return Builtins.Module }

// Address implements Value
func (v ExternalModule) Address() Address { return SplitAddress(v.Path) }

func (v ExternalModule) equal(u Value) bool {
	if u, ok := u.(ExternalModule); ok {
		return v.Path == u.Path
	}
	return false
}

func (v ExternalModule) hash() TypeHash {
	return rehashBytes(saltExternalModule, []byte(v.Path))
}

// String implements fmt.Stringer
func (v ExternalModule) String() string { return "module:" + v.Path }

// ExternalInstance represents an instance of a class outside the source tree,
// known only by the dotted path of its class
type ExternalInstance struct {
	TypePath string
}

// Kind implements Value
func (v ExternalInstance) Kind() Kind { return InstanceKind }

// Type implements Value; the class itself is opaque
func (v ExternalInstance) Type() Value { return nil }

// Address implements Value
func (v ExternalInstance) Address() Address { return Address{} }

func (v ExternalInstance) equal(u Value) bool {
	if u, ok := u.(ExternalInstance); ok {
		return v.TypePath == u.TypePath
	}
	return false
}

func (v ExternalInstance) hash() TypeHash {
	return rehashBytes(saltExternalInstance, []byte(v.TypePath))
}

// String implements fmt.Stringer
func (v ExternalInstance) String() string { return v.TypePath }
