package pythontype

import (
	"path"
	"strings"
)

// Address locates a value: the file it was defined in, if any, and its dotted path
type Address struct {
	File string
	Path string
}

// SplitAddress creates an address for a dotted path
func SplitAddress(s string) Address {
	return Address{Path: s}
}

// String converts an address to a string
func (a Address) String() string {
	if a.File == "" {
		return a.Path
	}
	if a.Path == "" {
		return path.Base(a.File)
	}
	return path.Base(a.File) + ":" + a.Path
}

// Nil checks if a should be considered a "nil" address
func (a Address) Nil() bool {
	return a.File == "" && a.Path == ""
}

// Last gets the last component of the path
func (a Address) Last() string {
	if pos := strings.LastIndexByte(a.Path, '.'); pos >= 0 {
		return a.Path[pos+1:]
	}
	return a.Path
}

// WithTail returns a copy of this address with one or more components appended
func (a Address) WithTail(components ...string) Address {
	parts := components
	if a.Path != "" {
		parts = append([]string{a.Path}, components...)
	}
	return Address{File: a.File, Path: strings.Join(parts, ".")}
}
