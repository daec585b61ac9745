package types

import "fmt"

// TypeID uniquely identifies a type inside the interner.
type TypeID uint32

// NoTypeID marks the absence of a type.
const NoTypeID TypeID = 0

// Kind enumerates all supported kinds of types.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindBool
	KindAddress        // address
	KindAddressPayable // address payable
	KindString
	KindBytes      // dynamically sized bytes
	KindFixedBytes // bytes1 .. bytes32
	KindInt        // intN
	KindUint       // uintN
	KindFixed      // fixedMxN
	KindUfixed     // ufixedMxN
	KindArray      // T[N] or T[] (Count == ArrayDynamicLength)
	KindMapping    // mapping(K => V)
	KindStruct
	KindEnum
	KindContract
	KindUdvt     // user-defined value type
	KindFunction // function(...) [visibility] [mutability] returns (...)
	KindTuple    // multi-value expression/return type
)

func (k Kind) String() string {
	switch k {
	case KindInvalid:
		return "invalid"
	case KindBool:
		return "bool"
	case KindAddress:
		return "address"
	case KindAddressPayable:
		return "address payable"
	case KindString:
		return "string"
	case KindBytes:
		return "bytes"
	case KindFixedBytes:
		return "fixed-bytes"
	case KindInt:
		return "int"
	case KindUint:
		return "uint"
	case KindFixed:
		return "fixed"
	case KindUfixed:
		return "ufixed"
	case KindArray:
		return "array"
	case KindMapping:
		return "mapping"
	case KindStruct:
		return "struct"
	case KindEnum:
		return "enum"
	case KindContract:
		return "contract"
	case KindUdvt:
		return "udvt"
	case KindFunction:
		return "function"
	case KindTuple:
		return "tuple"
	default:
		return fmt.Sprintf("Kind(%d)", k)
	}
}

// Width packs the bit-width of an int/uint, the M<<8|N digit pair of a
// fixed/ufixed, or the byte count of a fixedN-bytes type.
type Width uint16

// MakeFixedWidth packs the M (digits before the point) and N (digits after)
// of a fixedMxN/ufixedMxN type into a single Width.
func MakeFixedWidth(m, n uint8) Width {
	return Width(uint16(m)<<8 | uint16(n))
}

// Unpack splits a fixed/ufixed Width back into its M and N components.
func (w Width) Unpack() (m, n uint8) {
	return uint8(w >> 8), uint8(w & 0xff)
}

// ArrayDynamicLength marks an array type with no compile-time-known length
// (`T[]` rather than `T[N]`).
const ArrayDynamicLength = ^uint32(0)

// Type is a compact, hash-consable descriptor for any supported type.
//
// Elem and Key are reused across kinds: Elem is the array element type, the
// mapping value type, or the UDVT's underlying elementary type; Key is the
// mapping key type. Payload indexes into the Interner's per-kind side table
// for the kinds that need one (struct, enum, contract, udvt, function,
// tuple) — zero is reserved so the zero Type value can never alias a real
// nominal type.
type Type struct {
	Kind    Kind
	Elem    TypeID
	Key     TypeID
	Count   uint32
	Width   Width
	Payload uint32
}

// MakeBool describes `bool`.
func MakeBool() Type { return Type{Kind: KindBool} }

// MakeAddress describes `address` or, when payable is set, `address payable`.
func MakeAddress(payable bool) Type {
	if payable {
		return Type{Kind: KindAddressPayable}
	}
	return Type{Kind: KindAddress}
}

// MakeString describes `string`.
func MakeString() Type { return Type{Kind: KindString} }

// MakeBytes describes the dynamically sized `bytes`.
func MakeBytes() Type { return Type{Kind: KindBytes} }

// MakeFixedBytes describes `bytesN`, 1 <= n <= 32.
func MakeFixedBytes(n uint8) Type { return Type{Kind: KindFixedBytes, Width: Width(n)} }

// MakeInt describes `intN` (bits a multiple of 8 in [8, 256]).
func MakeInt(bits uint16) Type { return Type{Kind: KindInt, Width: Width(bits)} }

// MakeUint describes `uintN`.
func MakeUint(bits uint16) Type { return Type{Kind: KindUint, Width: Width(bits)} }

// MakeFixed describes `fixedMxN`.
func MakeFixed(m, n uint8) Type { return Type{Kind: KindFixed, Width: MakeFixedWidth(m, n)} }

// MakeUfixed describes `ufixedMxN`.
func MakeUfixed(m, n uint8) Type { return Type{Kind: KindUfixed, Width: MakeFixedWidth(m, n)} }

// MakeArray describes `elem[count]`, or `elem[]` when count is
// ArrayDynamicLength.
func MakeArray(elem TypeID, count uint32) Type {
	return Type{Kind: KindArray, Elem: elem, Count: count}
}

// MakeMapping describes `mapping(key => value)`.
func MakeMapping(key, value TypeID) Type {
	return Type{Kind: KindMapping, Key: key, Elem: value}
}
