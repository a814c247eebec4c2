package pythonenv

import (
	"sort"
	"strings"

	"github.com/kiteco/pyresolve/kite-go/lang/python/pythonast"
	"github.com/kiteco/pyresolve/kite-go/lang/python/pythontype"
)

// Session is the set of variables of an interactive session attached to a file
type Session interface {
	// Lookup gets the value of a (possibly dotted) variable name
	Lookup(name string) (pythontype.Value, bool)
	// Variables lists the names starting with prefix
	Variables(prefix string) []string
}

// MapSession is a Session backed by a map from dotted names to values
type MapSession map[string]pythontype.Value

// Lookup implements Session
func (s MapSession) Lookup(name string) (pythontype.Value, bool) {
	v, ok := s[name]
	return v, ok
}

// Variables implements Session
func (s MapSession) Variables(prefix string) []string {
	var names []string
	for name := range s {
		if strings.HasPrefix(name, prefix) {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// SessionElement is a variable supplied by an interactive session
type SessionElement struct {
	session Session
	Path    string
	Value   pythontype.Value
}

// NewSessionElement creates the element for a session variable
func NewSessionElement(s Session, path string, v pythontype.Value) *SessionElement {
	return &SessionElement{session: s, Path: path, Value: v}
}

// Name implements Element
func (e *SessionElement) Name() string { return pythontype.SplitAddress(e.Path).Last() }

// Valid implements Element; a variable is valid while the session still holds it
func (e *SessionElement) Valid() bool {
	_, ok := e.session.Lookup(e.Path)
	return ok
}

// File implements Element
func (e *SessionElement) File() *File { return nil }

// Node implements Element
func (e *SessionElement) Node() pythonast.Node { return nil }

// QualifiedName implements QualifiedNamer
func (e *SessionElement) QualifiedName() string { return e.Path }
