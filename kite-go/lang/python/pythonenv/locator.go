package pythonenv

import (
	"regexp"
	"strings"

	"github.com/kiteco/pyresolve/kite-go/lang/python/pythontype"
	"github.com/kiteco/pyresolve/kite-golib/errors"
)

const (
	// The separator character used in locators
	locatorSep = ";"
	// The regular expression for locators
	locatorRegexpStr = "^[^;]*;[^;]*$"
)

var locatorRegexp = regexp.MustCompile(locatorRegexpStr)

// LocatorForAddress returns the locator string for a value defined in the
// provided file and with the provided dotted path.
func LocatorForAddress(addr pythontype.Address) string {
	if addr.Nil() {
		return ""
	}
	return encodeFilename(addr.File) + locatorSep + addr.Path
}

// Locator returns a string that contains all the info that is necessary
// to find a value in a source tree: the file the value is defined in and
// its full address path.
func Locator(v pythontype.Value) string {
	if v == nil {
		return ""
	}
	return LocatorForAddress(v.Address())
}

// ElementLocator gets the locator of the value an element declares, or a
// locator built from its qualified name for elements outside the tree
func ElementLocator(e Element) string {
	switch e := e.(type) {
	case *ClassElement:
		return Locator(e.Value())
	case *FunctionElement:
		return Locator(e.Value())
	case *FileElement:
		return Locator(e.file.Module())
	case *DirElement:
		return Locator(e.Value())
	case QualifiedNamer:
		return locatorSep + e.QualifiedName()
	}
	return ""
}

// IsLocator checks if loc is a valid locator
func IsLocator(loc string) bool {
	return locatorRegexp.MatchString(loc)
}

// ParseLocator parses a locator string into an address. It may return an
// error if the locator is not valid.
func ParseLocator(loc string) (pythontype.Address, error) {
	if !IsLocator(loc) {
		return pythontype.Address{}, errors.Errorf("invalid locator string: %s", loc)
	}
	parts := strings.Split(loc, locatorSep)
	return pythontype.Address{
		File: decodeFilename(parts[0]),
		Path: parts[1],
	}, nil
}

// Locate finds the element for a locator: the file or directory named by the
// locator, then the class or function found by following its dotted path
// through module and class scopes.
func (t *SourceTree) Locate(loc string) (Element, error) {
	addr, err := ParseLocator(loc)
	if err != nil {
		return nil, err
	}
	if dir := t.DirElement(addr.File); dir != nil {
		return dir, nil
	}
	f, ok := t.Files[addr.File]
	if !ok {
		return nil, errors.Errorf("module does not exist for %s", addr.File)
	}

	parts := strings.Split(addr.Path, ".")
	var cur Element = f.Element()
	for _, name := range parts[1:] {
		var members []Element
		switch c := cur.(type) {
		case *FileElement:
			members = f.Bindings(f.AST, name)
		case *ClassElement:
			members = c.Members(name)
		}
		if len(members) == 0 {
			return nil, errors.Errorf("could not find %s in %s", name, addr.Path)
		}
		cur = members[len(members)-1]
	}
	return cur, nil
}

func encodeFilename(f string) string {
	return strings.Replace(strings.Replace(f, ":", "::", -1), "/", ":", -1)
}

func decodeFilename(s string) string {
	parts := strings.Split(s, "::")
	for i := range parts {
		parts[i] = strings.Replace(parts[i], ":", "/", -1)
	}
	return strings.Join(parts, ":")
}
