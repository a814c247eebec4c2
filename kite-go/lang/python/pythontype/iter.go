package pythontype

// ElementType gets the type of the values produced by iterating over v
func ElementType(v Value) Value {
	var out []Value
	for _, d := range Disjuncts(v) {
		switch d := d.(type) {
		case ListInstance:
			out = append(out, d.Element)
		case TupleInstance:
			out = append(out, Unite(d.Elements...))
		case DictInstance:
			out = append(out, d.Key)
		case StrInstance:
			out = append(out, d)
		}
	}
	return Unite(out...)
}

// IndexType gets the type of the i'th value produced by unpacking v
func IndexType(v Value, i int) Value {
	var out []Value
	for _, d := range Disjuncts(v) {
		switch d := d.(type) {
		case TupleInstance:
			out = append(out, d.Index(i))
		case ListInstance:
			out = append(out, d.Element)
		case StrInstance:
			out = append(out, d)
		}
	}
	return Unite(out...)
}
