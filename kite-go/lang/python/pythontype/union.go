package pythontype

import (
	"reflect"
	"sort"
	"strings"
)

// It is possible to write python code that generates huge union types, but
// if the number of disjuncts is above this threshold then it is unlikely
// that we were going to get anything reasonable out of it anyway, so we
// just restrict the total union size.
const maxUnionSize = 25

// Union implements the value interface for union types. Constituents are
// distinct and none of them is itself a union; use Unite to construct one.
type Union struct {
	Constituents []Value
}

// Kind implements Value
func (v Union) Kind() Kind { return UnionKind }

// Address implements Value
func (v Union) Address() Address { return Address{} }

// Type implements Value
func (v Union) Type() Value {
	var types []Value
	for _, vi := range v.Constituents {
		if vi == nil {
			continue
		}
		if t := vi.Type(); t != nil {
			types = append(types, t)
		}
	}
	return Unite(types...)
}

// equal implements set equality
func (v Union) equal(u Value) bool {
	// Most unions are small so just do a brute force all-vs-all comparison here.
	other, ok := u.(Union)
	if !ok || len(other.Constituents) != len(v.Constituents) {
		return false
	}
outer:
	for _, ui := range other.Constituents {
		for _, vi := range v.Constituents {
			if Equal(vi, ui) {
				continue outer
			}
		}
		return false
	}
	return true
}

// hash is independent of the order of the constituents, as is equal
func (v Union) hash() TypeHash {
	var sum TypeHash
	for _, vi := range v.Constituents {
		sum += Hash(vi)
	}
	return rehash(saltUnion, sum)
}

// String implements fmt.Stringer
func (v Union) String() string {
	var strs []string
	for _, x := range v.Constituents {
		strs = append(strs, String(x))
	}
	return "(" + strings.Join(strs, " | ") + ")"
}

// Disjuncts gets a list of disjuncts from a union type, none of which are themselves union types
func Disjuncts(v Value) []Value {
	if v == nil {
		return nil
	}
	u, ok := v.(Union)
	if !ok {
		return []Value{v}
	}
	return u.Constituents
}

// Unite computes the union of several types, simplifying where possible. Nil
// values are dropped, nested unions are flattened and duplicates are removed
// keeping the first occurrence. A union of a single value is that value.
func Unite(vs ...Value) Value {
	// this first switch block is just an optimization for some common cases
	switch len(vs) {
	case 0:
		return nil
	case 1:
		return vs[0]
	case 2:
		if vs[0] == nil {
			return vs[1]
		}
		if vs[1] == nil {
			return vs[0]
		}
	}

	var disjuncts []Value
	addDisjunct := func(v Value) {
		if v == nil {
			return
		}
		vType := reflect.TypeOf(v)
		h := Hash(v)
		for _, other := range disjuncts {
			if reflect.TypeOf(other) == vType && Hash(other) == h && Equal(v, other) {
				return
			}
		}
		disjuncts = append(disjuncts, v)
	}

	for _, v := range vs {
		for _, d := range Disjuncts(v) {
			addDisjunct(d)
		}
	}
	if len(disjuncts) > maxUnionSize {
		sort.SliceStable(disjuncts, func(i, j int) bool {
			return Hash(disjuncts[i]) < Hash(disjuncts[j])
		})
		disjuncts = disjuncts[:maxUnionSize]
	}

	switch len(disjuncts) {
	case 0:
		return nil
	case 1:
		return disjuncts[0]
	}

	// lists are merged into one list, dicts into one dict, properties into one
	// property, each placed where the first of its group appeared
	var lists []ListInstance
	var dicts []DictInstance
	var properties []PropertyInstance
	for _, vi := range disjuncts {
		switch vi := vi.(type) {
		case ListInstance:
			lists = append(lists, vi)
		case DictInstance:
			dicts = append(dicts, vi)
		case PropertyInstance:
			properties = append(properties, vi)
		}
	}
	if len(lists) < 2 && len(dicts) < 2 && len(properties) < 2 {
		return Union{disjuncts}
	}

	var out []Value
	var listDone, dictDone, propDone bool
	for _, vi := range disjuncts {
		switch vi.(type) {
		case ListInstance:
			if !listDone {
				listDone = true
				out = append(out, uniteLists(lists))
			}
		case DictInstance:
			if !dictDone {
				dictDone = true
				out = append(out, uniteDicts(dicts))
			}
		case PropertyInstance:
			if !propDone {
				propDone = true
				out = append(out, uniteProperties(properties))
			}
		default:
			out = append(out, vi)
		}
	}

	if len(out) == 1 {
		return out[0]
	}
	return Union{out}
}

func uniteLists(lists []ListInstance) Value {
	if len(lists) == 1 {
		return lists[0]
	}
	var elts []Value
	for _, l := range lists {
		elts = append(elts, l.Element)
	}
	return ListInstance{Unite(elts...)}
}

func uniteDicts(dicts []DictInstance) Value {
	if len(dicts) == 1 {
		return dicts[0]
	}
	var keys, elts []Value
	for _, d := range dicts {
		keys = append(keys, d.Key)
		elts = append(elts, d.Element)
	}
	return DictInstance{Unite(keys...), Unite(elts...)}
}

func uniteProperties(props []PropertyInstance) Value {
	if len(props) == 1 {
		return props[0]
	}
	var fget, fset, fdel []Value
	for _, p := range props {
		fget = append(fget, p.FGet)
		fset = append(fset, p.FSet)
		fdel = append(fdel, p.FDel)
	}
	return PropertyInstance{Unite(fget...), Unite(fset...), Unite(fdel...)}
}
