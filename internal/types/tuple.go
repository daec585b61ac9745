package types

// TupleInfo describes a multi-value type, as produced by a function with
// more than one return value or consumed by a tuple-destructuring
// assignment. A NoTypeID entry in Elements marks an omitted slot (`(uint, , bool)`).
type TupleInfo struct {
	Elements []TypeID
}

// InternTuple interns a tuple type, reusing an existing TypeID for an
// identical element list.
func (in *Interner) InternTuple(elements []TypeID) TypeID {
	for i := 1; i < len(in.tuples); i++ {
		if tupleEqual(in.tuples[i].Elements, elements) {
			return in.findTupleType(uint32(i))
		}
	}
	slot := appendSlot(&in.tuples, TupleInfo{Elements: append([]TypeID(nil), elements...)})
	return in.internStructural(Type{Kind: KindTuple, Payload: slot, Count: uint32(len(elements))})
}

func (in *Interner) findTupleType(slot uint32) TypeID {
	for id := TypeID(1); int(id) < len(in.types); id++ {
		if in.types[id].Kind == KindTuple && in.types[id].Payload == slot {
			return id
		}
	}
	return NoTypeID
}

func tupleEqual(a, b []TypeID) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// TupleInfoOf returns the registered tuple descriptor for id.
func (in *Interner) TupleInfoOf(id TypeID) (*TupleInfo, bool) {
	tt, ok := in.Lookup(id)
	if !ok || tt.Kind != KindTuple || int(tt.Payload) >= len(in.tuples) {
		return nil, false
	}
	return &in.tuples[tt.Payload], true
}
