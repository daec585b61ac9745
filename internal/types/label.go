package types

import (
	"fmt"
	"strconv"

	"github.com/sol-lang/solc/internal/source"
)

// Label renders a human-readable name for a type, as used in diagnostic
// messages. Strings is consulted for the symbol naming nominal types.
func (in *Interner) Label(id TypeID, strings *source.Interner) string {
	tt, ok := in.Lookup(id)
	if !ok {
		return "<invalid>"
	}
	switch tt.Kind {
	case KindInvalid:
		return "<invalid>"
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
		return "bytes" + strconv.Itoa(int(tt.Width))
	case KindInt:
		return "int" + strconv.Itoa(int(tt.Width))
	case KindUint:
		return "uint" + strconv.Itoa(int(tt.Width))
	case KindFixed:
		m, n := tt.Width.Unpack()
		return fmt.Sprintf("fixed%dx%d", m, n)
	case KindUfixed:
		m, n := tt.Width.Unpack()
		return fmt.Sprintf("ufixed%dx%d", m, n)
	case KindArray:
		elem := in.Label(tt.Elem, strings)
		if tt.Count == ArrayDynamicLength {
			return elem + "[]"
		}
		return fmt.Sprintf("%s[%d]", elem, tt.Count)
	case KindMapping:
		return fmt.Sprintf("mapping(%s => %s)", in.Label(tt.Key, strings), in.Label(tt.Elem, strings))
	case KindStruct:
		if info, ok := in.StructInfo(id); ok {
			return "struct " + lookupName(strings, info.Name)
		}
		return "struct <anonymous>"
	case KindEnum:
		if info, ok := in.EnumInfo(id); ok {
			return "enum " + lookupName(strings, info.Name)
		}
		return "enum <anonymous>"
	case KindContract:
		if info, ok := in.ContractInfo(id); ok {
			return "contract " + lookupName(strings, info.Name)
		}
		return "contract <anonymous>"
	case KindUdvt:
		if info, ok := in.UdvtInfo(id); ok {
			return lookupName(strings, info.Name)
		}
		return "<udvt>"
	case KindFunction:
		info, ok := in.FunctionInfo(id)
		if !ok {
			return "function"
		}
		return "function(" + in.labelList(info.Params, strings) + ") returns (" + in.labelList(info.Returns, strings) + ")"
	case KindTuple:
		info, ok := in.TupleInfoOf(id)
		if !ok {
			return "tuple"
		}
		return "(" + in.labelList(info.Elements, strings) + ")"
	default:
		return tt.Kind.String()
	}
}

func (in *Interner) labelList(ids []TypeID, strings *source.Interner) string {
	out := ""
	for i, id := range ids {
		if i > 0 {
			out += ", "
		}
		out += in.Label(id, strings)
	}
	return out
}

func lookupName(strings *source.Interner, sym source.Symbol) string {
	if strings == nil {
		return "?"
	}
	return strings.MustLookup(sym)
}
