package pythonresolve

import (
	"io"
	"io/ioutil"
	"sort"

	"github.com/kiteco/pyresolve/kite-go/lang/python/pythonast"
	"github.com/kiteco/pyresolve/kite-go/lang/python/pythonenv"
	"github.com/kiteco/pyresolve/kite-go/lang/python/pythontype"
	"github.com/kiteco/pyresolve/kite-golib/errors"
	yaml "gopkg.in/yaml.v2"
)

// KnownTypesProvider types values outside the source tree from a table that
// maps dotted names to builtin types, as in
//
//    os.sep: str
//    sys.maxsize: int
type KnownTypesProvider struct {
	BaseTypeProvider
	types map[string]pythontype.Value
}

// LoadKnownTypes parses a YAML table of known types
func LoadKnownTypes(data []byte) (*KnownTypesProvider, error) {
	var table map[string]string
	if err := yaml.Unmarshal(data, &table); err != nil {
		return nil, errors.Wrapf(err, "error parsing known types")
	}

	names := make([]string, 0, len(table))
	for name := range table {
		names = append(names, name)
	}
	sort.Strings(names)

	p := &KnownTypesProvider{types: make(map[string]pythontype.Value, len(table))}
	var errs errors.Errors
	for _, name := range names {
		t, ok := pythontype.InstanceOf(table[name])
		if !ok {
			errs = errors.Append(errs, errors.Errorf("%s: unknown builtin %q", name, table[name]))
			continue
		}
		p.types[name] = t
	}
	if errs != nil {
		return nil, errs
	}
	return p, nil
}

// ReadKnownTypes reads a YAML table of known types
func ReadKnownTypes(r io.Reader) (*KnownTypesProvider, error) {
	data, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, errors.Wrapf(err, "error reading known types")
	}
	return LoadKnownTypes(data)
}

// Len gets the number of entries in the table
func (p *KnownTypesProvider) Len() int {
	return len(p.types)
}

// Lookup gets the type of a dotted name
func (p *KnownTypesProvider) Lookup(name string) (pythontype.Value, bool) {
	t, ok := p.types[name]
	return t, ok
}

// ReferenceType implements TypeProvider for attributes of external modules
func (p *KnownTypesProvider) ReferenceType(ctx *TypeEvalContext, f *pythonenv.File, ref pythonast.ReferenceExpr) (pythontype.Value, error) {
	q := ref.Qualifier()
	if q == nil {
		return nil, nil
	}
	switch qt := ctx.TypeOf(f, q).(type) {
	case pythontype.ExternalModule:
		t, _ := p.Lookup(qt.Path + "." + ref.RefName())
		return t, nil
	case nil:
		// the qualifier is not resolvable at all, so match on the text
		if name, ok := AsQualifiedName(ref); ok {
			t, _ := p.Lookup(name)
			return t, nil
		}
	}
	return nil, nil
}

// TargetType implements TypeProvider for declarations known by a dotted name
func (p *KnownTypesProvider) TargetType(ctx *TypeEvalContext, target pythonenv.Element, anchor pythonast.ReferenceExpr) (pythontype.Value, error) {
	namer, ok := target.(pythonenv.QualifiedNamer)
	if !ok {
		return nil, nil
	}
	t, _ := p.Lookup(namer.QualifiedName())
	return t, nil
}

// AsQualifiedName gets the dotted text of a reference made only of names and
// attribute accesses
func AsQualifiedName(ref pythonast.ReferenceExpr) (string, bool) {
	return pythonast.DottedName(ref)
}
