package types

import (
	"fmt"

	"fortio.org/safecast"
)

// Builtins stores TypeIDs for the elementary types a checker reaches for
// most often. Every other elementary width/size is still reachable through
// Intern — this struct only pre-resolves the defaults so call sites don't
// re-intern `uint256`/`int256` on every use.
type Builtins struct {
	Invalid        TypeID
	Bool           TypeID
	Address        TypeID
	AddressPayable TypeID
	String         TypeID
	Bytes          TypeID
	Uint256        TypeID
	Int256         TypeID
	Uint8          TypeID
}

// Interner provides stable TypeIDs by hash-consing structural descriptors.
// Nominal kinds (struct, enum, contract, udvt) are never hash-consed: two
// declarations with identical shape are still distinct types, so they get
// their own side-table slot via internRaw and are never entered into index.
type Interner struct {
	types    []Type
	index    map[typeKey]TypeID
	builtins Builtins

	structs   []StructInfo
	enums     []EnumInfo
	contracts []ContractInfo
	udvts     []UdvtInfo
	fns       []FnInfo
	tuples    []TupleInfo

	layoutAttrs map[TypeID]LayoutAttrs
}

// NewInterner constructs an interner seeded with the common elementary
// builtins.
func NewInterner() *Interner {
	in := &Interner{
		index: make(map[typeKey]TypeID, 64),
	}
	in.structs = append(in.structs, StructInfo{})     // reserve 0 as invalid sentinel
	in.enums = append(in.enums, EnumInfo{})            // reserve 0
	in.contracts = append(in.contracts, ContractInfo{}) // reserve 0
	in.udvts = append(in.udvts, UdvtInfo{})             // reserve 0
	in.fns = append(in.fns, FnInfo{})                   // reserve 0
	in.tuples = append(in.tuples, TupleInfo{})          // reserve 0

	in.builtins.Invalid = in.internRaw(Type{Kind: KindInvalid})
	in.builtins.Bool = in.Intern(MakeBool())
	in.builtins.Address = in.Intern(MakeAddress(false))
	in.builtins.AddressPayable = in.Intern(MakeAddress(true))
	in.builtins.String = in.Intern(MakeString())
	in.builtins.Bytes = in.Intern(MakeBytes())
	in.builtins.Uint256 = in.Intern(MakeUint(256))
	in.builtins.Int256 = in.Intern(MakeInt(256))
	in.builtins.Uint8 = in.Intern(MakeUint(8))
	return in
}

// Builtins returns TypeIDs for the pre-resolved elementary types.
func (in *Interner) Builtins() Builtins {
	return in.builtins
}

// Intern ensures the provided structural descriptor has a stable TypeID.
// Nominal kinds must go through their Register* constructor instead, since
// calling Intern directly on one would incorrectly dedup distinct
// declarations that happen to share a Payload of zero.
func (in *Interner) Intern(t Type) TypeID {
	if t.Kind == KindInvalid {
		return NoTypeID
	}
	key := typeKey(t)
	if id, ok := in.index[key]; ok {
		return id
	}
	return in.internStructural(t)
}

// internRaw adds the descriptor to storage without consulting or updating
// the structural index — the path every nominal registration uses.
func (in *Interner) internRaw(t Type) TypeID {
	lenTypes, err := safecast.Conv[uint32](len(in.types))
	if err != nil {
		panic(fmt.Errorf("len(types) overflow: %w", err))
	}
	id := TypeID(lenTypes)
	in.types = append(in.types, t)
	return id
}

// internStructural is internRaw followed by registering the descriptor in
// the structural index, used by the hash-consed nominal-adjacent kinds
// (function types, tuples) whose identity is fully determined by their
// Payload-table contents plus the fields already in typeKey.
func (in *Interner) internStructural(t Type) TypeID {
	id := in.internRaw(t)
	in.index[typeKey(t)] = id
	return id
}

// Lookup returns the descriptor for a TypeID.
func (in *Interner) Lookup(id TypeID) (Type, bool) {
	if id == NoTypeID || int(id) >= len(in.types) {
		return Type{}, false
	}
	return in.types[id], true
}

// MustLookup panics when id is invalid.
func (in *Interner) MustLookup(id TypeID) Type {
	tt, ok := in.Lookup(id)
	if !ok {
		panic("types: invalid TypeID")
	}
	return tt
}

type typeKey struct {
	Kind    Kind
	Elem    TypeID
	Key     TypeID
	Count   uint32
	Width   Width
	Payload uint32
}

// IsValueType reports whether values of this type are copied by value on
// assignment and parameter passing (as opposed to structs/arrays/mappings
// in storage, which are passed by reference within storage and must be
// explicitly `memory`/`calldata`-copied elsewhere).
func (in *Interner) IsValueType(id TypeID) bool {
	tt, ok := in.Lookup(id)
	if !ok {
		return false
	}
	switch tt.Kind {
	case KindBool, KindAddress, KindAddressPayable, KindFixedBytes,
		KindInt, KindUint, KindFixed, KindUfixed, KindEnum, KindContract, KindFunction:
		return true
	default:
		// KindString, KindBytes, KindArray, KindMapping, KindStruct, KindTuple, KindUdvt
		return false
	}
}

// IsReferenceType reports whether the type needs a data location
// (storage/memory/calldata) wherever it is named as a variable or
// parameter type.
func (in *Interner) IsReferenceType(id TypeID) bool {
	tt, ok := in.Lookup(id)
	if !ok {
		return false
	}
	switch tt.Kind {
	case KindString, KindBytes, KindArray, KindStruct:
		return true
	case KindMapping:
		return true
	default:
		return false
	}
}
