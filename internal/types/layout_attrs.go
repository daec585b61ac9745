package types

// LayoutAttrs describes the storage-slot layout computed for a type: how
// many 32-byte slots it occupies, and whether it packs tightly alongside a
// following field within a single slot rather than always starting its own.
//
// Layout is informational only; sema validates any explicit layout-related
// annotations against it but layout computation itself never emits
// diagnostics.
type LayoutAttrs struct {
	Slots     uint32
	PackedSize uint32 // bytes within a slot, 0 when Slots tracks whole slots only
	Dynamic   bool   // true for string/bytes/mapping/dynamic array: size is runtime-only
}

// StorageLayout computes (or returns the cached) LayoutAttrs for id.
func (in *Interner) StorageLayout(id TypeID) LayoutAttrs {
	if in.layoutAttrs == nil {
		in.layoutAttrs = make(map[TypeID]LayoutAttrs, 64)
	}
	if attrs, ok := in.layoutAttrs[id]; ok {
		return attrs
	}
	attrs := in.computeLayout(id)
	in.layoutAttrs[id] = attrs
	return attrs
}

func (in *Interner) computeLayout(id TypeID) LayoutAttrs {
	tt, ok := in.Lookup(id)
	if !ok {
		return LayoutAttrs{}
	}
	switch tt.Kind {
	case KindBool:
		return LayoutAttrs{Slots: 1, PackedSize: 1}
	case KindAddress, KindAddressPayable:
		return LayoutAttrs{Slots: 1, PackedSize: 20}
	case KindFixedBytes:
		return LayoutAttrs{Slots: 1, PackedSize: uint32(tt.Width)}
	case KindInt, KindUint:
		return LayoutAttrs{Slots: 1, PackedSize: uint32(tt.Width) / 8}
	case KindFixed, KindUfixed:
		return LayoutAttrs{Slots: 1, PackedSize: 32}
	case KindEnum:
		return LayoutAttrs{Slots: 1, PackedSize: 1}
	case KindContract:
		return LayoutAttrs{Slots: 1, PackedSize: 20}
	case KindUdvt:
		return in.computeLayout(tt.Elem)
	case KindString, KindBytes, KindMapping:
		return LayoutAttrs{Slots: 1, Dynamic: true}
	case KindArray:
		if tt.Count == ArrayDynamicLength {
			return LayoutAttrs{Slots: 1, Dynamic: true}
		}
		elemLayout := in.computeLayout(tt.Elem)
		if elemLayout.Dynamic {
			return LayoutAttrs{Slots: tt.Count, Dynamic: true}
		}
		perElem := elemLayout.Slots
		if perElem == 0 {
			perElem = 1
		}
		return LayoutAttrs{Slots: perElem * tt.Count}
	case KindStruct:
		info, ok := in.StructInfo(id)
		if !ok {
			return LayoutAttrs{Slots: 1, Dynamic: true}
		}
		var slots uint32
		dynamic := false
		for _, f := range info.Fields {
			fl := in.computeLayout(f.Type)
			slots += fl.Slots
			if fl.Slots == 0 {
				slots++
			}
			dynamic = dynamic || fl.Dynamic
		}
		return LayoutAttrs{Slots: slots, Dynamic: dynamic}
	default:
		return LayoutAttrs{Slots: 1, Dynamic: true}
	}
}
