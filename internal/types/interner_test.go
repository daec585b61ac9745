package types

import (
	"testing"

	"github.com/sol-lang/solc/internal/source"
)

func TestIntern_DedupsStructuralTypes(t *testing.T) {
	in := NewInterner()
	a := in.Intern(MakeUint(256))
	b := in.Intern(MakeUint(256))
	if a != b {
		t.Fatalf("expected identical uint256 interns to share a TypeID, got %d and %d", a, b)
	}
	if a != in.Builtins().Uint256 {
		t.Fatalf("expected Intern(uint256) to return the pre-resolved builtin")
	}
}

func TestIntern_NominalTypesAreNeverDeduped(t *testing.T) {
	in := NewInterner()
	strings := source.NewInterner()
	name := strings.Intern("Point")

	a := in.RegisterStruct(name, 1, source.Span{})
	b := in.RegisterStruct(name, 2, source.Span{})
	if a == b {
		t.Fatalf("expected two distinct struct declarations to get distinct TypeIDs")
	}
}

func TestStructFields_ResolveByName(t *testing.T) {
	in := NewInterner()
	strings := source.NewInterner()
	structName := strings.Intern("Point")
	xName := strings.Intern("x")
	yName := strings.Intern("y")

	id := in.RegisterStruct(structName, 1, source.Span{})
	in.SetStructFields(id, []FieldInfo{
		{Name: xName, Type: in.Builtins().Uint256},
		{Name: yName, Type: in.Builtins().Uint256},
	})

	ty, ok := in.FindField(id, xName)
	if !ok || ty != in.Builtins().Uint256 {
		t.Fatalf("expected field 'x' to resolve to uint256")
	}
	if _, ok := in.FindField(id, strings.Intern("z")); ok {
		t.Fatalf("expected field 'z' to not resolve")
	}
}

func TestImplicitConversion_IntegerWidening(t *testing.T) {
	in := NewInterner()
	u8 := in.Intern(MakeUint(8))
	u256 := in.Builtins().Uint256
	i8 := in.Intern(MakeInt(8))

	if !in.IsImplicitlyConvertible(u8, u256) {
		t.Fatalf("expected uint8 -> uint256 to be implicit")
	}
	if in.IsImplicitlyConvertible(u256, u8) {
		t.Fatalf("expected uint256 -> uint8 to require an explicit cast")
	}
	if in.IsImplicitlyConvertible(u8, i8) {
		t.Fatalf("expected uint8 -> int8 to require an explicit cast (same width)")
	}
	if !in.IsImplicitlyConvertible(u8, in.Intern(MakeInt(32))) {
		t.Fatalf("expected uint8 -> int32 to be implicit (strictly wider signed type)")
	}
}

func TestAddressPayable_ImplicitlyNarrowsToAddress(t *testing.T) {
	in := NewInterner()
	b := in.Builtins()
	if !in.IsImplicitlyConvertible(b.AddressPayable, b.Address) {
		t.Fatalf("expected address payable -> address to be implicit")
	}
	if in.IsImplicitlyConvertible(b.Address, b.AddressPayable) {
		t.Fatalf("expected address -> address payable to require payable(...)")
	}
}

func TestStorageLayout_PacksSmallFields(t *testing.T) {
	in := NewInterner()
	b := in.Builtins()
	boolLayout := in.StorageLayout(b.Bool)
	if boolLayout.Slots != 1 || boolLayout.PackedSize != 1 {
		t.Fatalf("unexpected bool layout: %+v", boolLayout)
	}
	u256Layout := in.StorageLayout(b.Uint256)
	if u256Layout.PackedSize != 32 {
		t.Fatalf("unexpected uint256 layout: %+v", u256Layout)
	}
	dynStringLayout := in.StorageLayout(b.String)
	if !dynStringLayout.Dynamic {
		t.Fatalf("expected string layout to be marked dynamic")
	}
}

func TestInternFunction_DedupsBySignature(t *testing.T) {
	in := NewInterner()
	u256 := in.Builtins().Uint256
	a := in.InternFunction(FnInfo{Params: []TypeID{u256}, Returns: []TypeID{u256}})
	bb := in.InternFunction(FnInfo{Params: []TypeID{u256}, Returns: []TypeID{u256}})
	if a != bb {
		t.Fatalf("expected identical function signatures to share a TypeID")
	}
}
