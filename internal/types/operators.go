package types

// IsImplicitlyConvertible reports whether a value of type from may be used
// where a value of type to is expected without an explicit cast.
func (in *Interner) IsImplicitlyConvertible(from, to TypeID) bool {
	if from == to {
		return true
	}
	ft, ok := in.Lookup(from)
	if !ok {
		return false
	}
	tt, ok := in.Lookup(to)
	if !ok {
		return false
	}
	switch {
	case ft.Kind == KindInt && tt.Kind == KindInt:
		return ft.Width <= tt.Width
	case ft.Kind == KindUint && tt.Kind == KindUint:
		return ft.Width <= tt.Width
	case ft.Kind == KindUint && tt.Kind == KindInt:
		// uintN -> intM is implicit only when it's guaranteed to fit: M must
		// be strictly wider than N, since intM's top bit is the sign.
		return uint16(ft.Width) < uint16(tt.Width)
	case ft.Kind == KindAddressPayable && tt.Kind == KindAddress:
		return true
	case ft.Kind == KindFixedBytes && tt.Kind == KindFixedBytes:
		return false // Solidity never implicitly converts between bytesN widths
	default:
		return false
	}
}

// IsExplicitlyConvertible reports whether `to(value)` is a legal explicit
// conversion, a strict superset of IsImplicitlyConvertible.
func (in *Interner) IsExplicitlyConvertible(from, to TypeID) bool {
	if in.IsImplicitlyConvertible(from, to) {
		return true
	}
	ft, ok := in.Lookup(from)
	if !ok {
		return false
	}
	tt, ok := in.Lookup(to)
	if !ok {
		return false
	}
	numeric := func(k Kind) bool { return k == KindInt || k == KindUint || k == KindFixed || k == KindUfixed }
	switch {
	case numeric(ft.Kind) && numeric(tt.Kind):
		return true
	case ft.Kind == KindFixedBytes && tt.Kind == KindFixedBytes:
		return true
	case ft.Kind == KindUint && tt.Kind == KindAddress, ft.Kind == KindUint && tt.Kind == KindAddressPayable:
		return ft.Width == 160
	case ft.Kind == KindAddress && tt.Kind == KindUint, ft.Kind == KindAddressPayable && tt.Kind == KindUint:
		return tt.Width == 160
	case ft.Kind == KindAddress && tt.Kind == KindAddressPayable:
		return true
	case ft.Kind == KindEnum && tt.Kind == KindUint:
		return true
	case ft.Kind == KindUint && tt.Kind == KindEnum:
		return true
	case ft.Kind == KindContract && (tt.Kind == KindAddress || tt.Kind == KindAddressPayable):
		return true
	case ft.Kind == KindUdvt:
		return in.IsExplicitlyConvertible(in.Underlying(from), to)
	case tt.Kind == KindUdvt:
		return in.IsExplicitlyConvertible(from, in.Underlying(to))
	default:
		return false
	}
}

// CommonNumericType returns the narrowest type both a and b implicitly
// convert to, used to resolve the result type of a binary arithmetic or
// comparison expression. Returns (NoTypeID, false) when a and b share no
// common numeric type (e.g. an int and a uint of the same width).
func (in *Interner) CommonNumericType(a, b TypeID) (TypeID, bool) {
	if in.IsImplicitlyConvertible(a, b) {
		return b, true
	}
	if in.IsImplicitlyConvertible(b, a) {
		return a, true
	}
	return NoTypeID, false
}

// IsArithmeticOperand reports whether id is a valid operand of +, -, *, /,
// %, or **.
func (in *Interner) IsArithmeticOperand(id TypeID) bool {
	tt, ok := in.Lookup(id)
	if !ok {
		return false
	}
	return tt.Kind == KindInt || tt.Kind == KindUint || tt.Kind == KindFixed || tt.Kind == KindUfixed
}

// IsOrderedOperand reports whether id is a valid operand of <, <=, >, >=.
func (in *Interner) IsOrderedOperand(id TypeID) bool {
	return in.IsArithmeticOperand(id)
}

// IsEqualityOperand reports whether id is a valid operand of == and !=.
func (in *Interner) IsEqualityOperand(id TypeID) bool {
	tt, ok := in.Lookup(id)
	if !ok {
		return false
	}
	switch tt.Kind {
	case KindInt, KindUint, KindFixed, KindUfixed, KindBool,
		KindAddress, KindAddressPayable, KindFixedBytes, KindEnum, KindContract, KindFunction:
		return true
	default:
		return false
	}
}

// IsBitwiseOperand reports whether id is a valid operand of &, |, ^, ~,
// <<, >>.
func (in *Interner) IsBitwiseOperand(id TypeID) bool {
	tt, ok := in.Lookup(id)
	if !ok {
		return false
	}
	return tt.Kind == KindInt || tt.Kind == KindUint || tt.Kind == KindFixedBytes
}
