package ast

import (
	"fmt"

	"fortio.org/safecast"

	"github.com/sol-lang/solc/internal/source"
)

// TypeExprKind enumerates the syntactic forms of a type expression.
type TypeExprKind uint8

const (
	// TypeExprElementary is a builtin value type (address, bool, uintN, ...).
	TypeExprElementary TypeExprKind = iota
	// TypeExprMapping is `mapping(K key? => V val?)`.
	TypeExprMapping
	// TypeExprArray is `T[size?]`.
	TypeExprArray
	// TypeExprFunction is `function(...) [visibility] [mutability] returns (...)`.
	TypeExprFunction
	// TypeExprUserDefined is a dotted path naming a contract, struct, enum, or UDVT.
	TypeExprUserDefined
	// TypeExprTuple is a parenthesized type list, as seen in tuple-typed destructuring.
	TypeExprTuple
)

// ElementaryKind enumerates solc's builtin value types.
type ElementaryKind uint8

const (
	// ElemAddress is the 20-byte `address` type.
	ElemAddress ElementaryKind = iota
	// ElemAddressPayable is `address payable`.
	ElemAddressPayable
	// ElemBool is `bool`.
	ElemBool
	// ElemString is the dynamically sized `string`.
	ElemString
	// ElemBytes is the dynamically sized `bytes`.
	ElemBytes
	// ElemFixedBytes is `bytesN`, 1 <= N <= 32.
	ElemFixedBytes
	// ElemInt is `intN`, N a multiple of 8 in [8, 256].
	ElemInt
	// ElemUint is `uintN`, N a multiple of 8 in [8, 256].
	ElemUint
	// ElemFixed is `fixedMxN`.
	ElemFixed
	// ElemUfixed is `ufixedMxN`.
	ElemUfixed
)

// TypeExpr is one node of the type grammar.
type TypeExpr struct {
	Kind    TypeExprKind
	Span    source.Span
	Payload PayloadID
}

// ElementaryType is the payload for TypeExprElementary. Width/M/N are 0 for
// the kinds that don't carry one (address, bool, string, dynamic bytes).
type ElementaryType struct {
	Elem  ElementaryKind
	Width uint16 // bits, for Int/Uint; bytes, for FixedBytes
	M, N  uint16 // digits before/after the point, for Fixed/Ufixed
}

// MappingType is the payload for TypeExprMapping.
type MappingType struct {
	Key       TypeID
	KeyName   source.Symbol // zero value if the key has no name
	Value     TypeID
	ValueName source.Symbol // zero value if the value has no name
}

// ArrayType is the payload for TypeExprArray.
type ArrayType struct {
	Element TypeID
	Size    ExprID // NoExprID for a dynamic array (`T[]`)
}

// FunctionTypeParam is one parameter of a `function(...)` type: a bare type,
// optionally paired with a data location, never a name.
type FunctionTypeParam struct {
	Type     TypeID
	Location DataLocation
}

// FunctionType is the payload for TypeExprFunction.
type FunctionType struct {
	ParamsStart  ParamID
	ParamsCount  uint32
	ReturnsStart ParamID
	ReturnsCount uint32
	Visibility   Visibility
	Mutability   Mutability
}

// UserDefinedType is the payload for TypeExprUserDefined: a dotted
// identifier path, e.g. `Lib.Struct` or a bare `MyContract`.
type UserDefinedType struct {
	Path []source.Symbol
}

// TupleType is the payload for TypeExprTuple.
type TupleType struct {
	Elements []TypeID // a zero TypeID entry marks an omitted slot, e.g. `(uint, , bool)`
}

// TypeExprs manages allocation of type expression nodes and their payloads.
type TypeExprs struct {
	Arena       *Arena[TypeExpr]
	ElementaryTypes *Arena[ElementaryType]
	Mappings    *Arena[MappingType]
	Arrays      *Arena[ArrayType]
	Functions   *Arena[FunctionType]
	FnParams    *Arena[FunctionTypeParam]
	UserDefinedTypes *Arena[UserDefinedType]
	Tuples      *Arena[TupleType]
}

// NewTypeExprs creates a TypeExprs table with per-kind arenas sized to capHint.
func NewTypeExprs(capHint uint) *TypeExprs {
	return &TypeExprs{
		Arena:       NewArena[TypeExpr](capHint),
		ElementaryTypes: NewArena[ElementaryType](capHint),
		Mappings:    NewArena[MappingType](capHint / 4),
		Arrays:      NewArena[ArrayType](capHint / 4),
		Functions:   NewArena[FunctionType](capHint / 8),
		FnParams:    NewArena[FunctionTypeParam](capHint / 4),
		UserDefinedTypes: NewArena[UserDefinedType](capHint / 2),
		Tuples:      NewArena[TupleType](capHint / 8),
	}
}

func (t *TypeExprs) new(kind TypeExprKind, span source.Span, payload PayloadID) TypeID {
	return TypeID(t.Arena.Allocate(TypeExpr{Kind: kind, Span: span, Payload: payload}))
}

// Get returns the node for id.
func (t *TypeExprs) Get(id TypeID) *TypeExpr { return t.Arena.Get(uint32(id)) }

// NewElementary allocates an elementary type node.
func (t *TypeExprs) NewElementary(elem ElementaryType, span source.Span) TypeID {
	payload := PayloadID(t.ElementaryTypes.Allocate(elem))
	return t.new(TypeExprElementary, span, payload)
}

// Elementary returns the ElementaryType payload for id, or nil/false if id is not one.
func (t *TypeExprs) Elementary(id TypeID) (*ElementaryType, bool) {
	node := t.Get(id)
	if node == nil || node.Kind != TypeExprElementary {
		return nil, false
	}
	return t.Elementary0(node.Payload), true
}

func (t *TypeExprs) Elementary0(p PayloadID) *ElementaryType { return t.ElementaryTypes.Get(uint32(p)) }

// NewMapping allocates a mapping type node.
func (t *TypeExprs) NewMapping(m MappingType, span source.Span) TypeID {
	payload := PayloadID(t.Mappings.Allocate(m))
	return t.new(TypeExprMapping, span, payload)
}

// Mapping returns the MappingType payload for id, or nil/false if id is not one.
func (t *TypeExprs) Mapping(id TypeID) (*MappingType, bool) {
	node := t.Get(id)
	if node == nil || node.Kind != TypeExprMapping {
		return nil, false
	}
	return t.Mappings.Get(uint32(node.Payload)), true
}

// NewArray allocates an array type node (Size == NoExprID for `T[]`).
func (t *TypeExprs) NewArray(a ArrayType, span source.Span) TypeID {
	payload := PayloadID(t.Arrays.Allocate(a))
	return t.new(TypeExprArray, span, payload)
}

// Array returns the ArrayType payload for id, or nil/false if id is not one.
func (t *TypeExprs) Array(id TypeID) (*ArrayType, bool) {
	node := t.Get(id)
	if node == nil || node.Kind != TypeExprArray {
		return nil, false
	}
	return t.Arrays.Get(uint32(node.Payload)), true
}

// NewFunction allocates a `function(...)` type node.
func (t *TypeExprs) NewFunction(params, returns []FunctionTypeParam, vis Visibility, mut Mutability, span source.Span) TypeID {
	paramsStart, paramsCount := t.allocateFnParams(params)
	returnsStart, returnsCount := t.allocateFnParams(returns)
	payload := PayloadID(t.Functions.Allocate(FunctionType{
		ParamsStart:  paramsStart,
		ParamsCount:  paramsCount,
		ReturnsStart: returnsStart,
		ReturnsCount: returnsCount,
		Visibility:   vis,
		Mutability:   mut,
	}))
	return t.new(TypeExprFunction, span, payload)
}

func (t *TypeExprs) allocateFnParams(params []FunctionTypeParam) (start ParamID, count uint32) {
	if len(params) == 0 {
		return NoParamID, 0
	}
	for idx, p := range params {
		id := ParamID(t.FnParams.Allocate(p))
		if idx == 0 {
			start = id
		}
	}
	n, err := safecast.Conv[uint32](len(params))
	if err != nil {
		panic(fmt.Errorf("function type param count overflow: %w", err))
	}
	return start, n
}

// Function returns the FunctionType payload for id, or nil/false if id is not one.
func (t *TypeExprs) Function(id TypeID) (*FunctionType, bool) {
	node := t.Get(id)
	if node == nil || node.Kind != TypeExprFunction {
		return nil, false
	}
	return t.Functions.Get(uint32(node.Payload)), true
}

// FunctionParams collects the parameter list of a FunctionType.
func (t *TypeExprs) FunctionParams(fn *FunctionType) []FunctionTypeParam {
	return t.collectFnParams(fn.ParamsStart, fn.ParamsCount)
}

// FunctionReturns collects the return-type list of a FunctionType.
func (t *TypeExprs) FunctionReturns(fn *FunctionType) []FunctionTypeParam {
	return t.collectFnParams(fn.ReturnsStart, fn.ReturnsCount)
}

func (t *TypeExprs) collectFnParams(start ParamID, count uint32) []FunctionTypeParam {
	if count == 0 || !start.IsValid() {
		return nil
	}
	out := make([]FunctionTypeParam, 0, count)
	base := uint32(start)
	for offset := range count {
		out = append(out, *t.FnParams.Get(base+offset))
	}
	return out
}

// NewUserDefined allocates a user-defined-path type node.
func (t *TypeExprs) NewUserDefined(path []source.Symbol, span source.Span) TypeID {
	payload := PayloadID(t.UserDefinedTypes.Allocate(UserDefinedType{Path: append([]source.Symbol(nil), path...)}))
	return t.new(TypeExprUserDefined, span, payload)
}

// UserDefined returns the UserDefinedType payload for id, or nil/false if id is not one.
func (t *TypeExprs) UserDefined(id TypeID) (*UserDefinedType, bool) {
	node := t.Get(id)
	if node == nil || node.Kind != TypeExprUserDefined {
		return nil, false
	}
	return t.UserDefinedTypes.Get(uint32(node.Payload)), true
}

// NewTuple allocates a tuple type node.
func (t *TypeExprs) NewTuple(elements []TypeID, span source.Span) TypeID {
	payload := PayloadID(t.Tuples.Allocate(TupleType{Elements: append([]TypeID(nil), elements...)}))
	return t.new(TypeExprTuple, span, payload)
}

// Tuple returns the TupleType payload for id, or nil/false if id is not one.
func (t *TypeExprs) Tuple(id TypeID) (*TupleType, bool) {
	node := t.Get(id)
	if node == nil || node.Kind != TypeExprTuple {
		return nil, false
	}
	return t.Tuples.Get(uint32(node.Payload)), true
}
