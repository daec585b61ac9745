package ast

import (
	"fmt"

	"fortio.org/safecast"

	"github.com/sol-lang/solc/internal/source"
)

// Param is one formal parameter of a function, error, or event: a type, an
// optional data location, and an optional name (omitted names are legal in
// function declarations, e.g. `function f(uint) external`).
type Param struct {
	Type     TypeID
	Location DataLocation
	Name     source.Symbol // zero value if unnamed
	NameSpan source.Span
	Indexed  bool // meaningful only for EventDecl parameters
	Span     source.Span
}

// ModifierInvocation is one entry of a function's modifier-invocation list,
// which also carries base-constructor calls written after `is` on a derived
// constructor (`constructor(uint x) Base(x) {}`).
type ModifierInvocation struct {
	Path []source.Symbol
	Args []ExprID // nil if the modifier was referenced without a call, e.g. `onlyOwner`
	Span source.Span
}

// FunctionDecl is the payload for an ItemFunction.
type FunctionDecl struct {
	Kind FunctionKind
	Name source.Symbol // zero value for constructor/fallback/receive
	NameSpan source.Span

	ParamsStart ParamID
	ParamsCount uint32

	ReturnsStart ParamID
	ReturnsCount uint32

	Visibility Visibility
	Mutability Mutability
	Virtual    bool
	// Overrides lists the base contracts named in `override(A, B)`; non-nil
	// with zero length for a bare `override`.
	Overrides []source.Symbol
	HasOverride bool

	Modifiers []ModifierInvocation

	// Body is NoStmtID for a function declared without an implementation
	// (interface functions, abstract functions, bare declarations).
	Body StmtID

	Span source.Span
}

// Function returns the FunctionDecl for id, or nil/false if id is not a function.
func (i *Items) Function(id ItemID) (*FunctionDecl, bool) {
	item := i.Get(id)
	if item == nil || item.Kind != ItemFunction {
		return nil, false
	}
	return i.Functions.Get(uint32(item.Payload)), true
}

// FunctionParams collects a function's formal parameter list.
func (i *Items) FunctionParams(fn *FunctionDecl) []Param {
	return i.collectParams(fn.ParamsStart, fn.ParamsCount)
}

// FunctionReturns collects a function's return-parameter list.
func (i *Items) FunctionReturns(fn *FunctionDecl) []Param {
	return i.collectParams(fn.ReturnsStart, fn.ReturnsCount)
}

func (i *Items) collectParams(start ParamID, count uint32) []Param {
	if count == 0 || !start.IsValid() {
		return nil
	}
	out := make([]Param, 0, count)
	base := uint32(start)
	for offset := range count {
		out = append(out, *i.Params.Get(base+offset))
	}
	return out
}

func (i *Items) allocateParams(params []Param) (start ParamID, count uint32) {
	if len(params) == 0 {
		return NoParamID, 0
	}
	for idx, p := range params {
		id := ParamID(i.Params.Allocate(p))
		if idx == 0 {
			start = id
		}
	}
	n, err := safecast.Conv[uint32](len(params))
	if err != nil {
		panic(fmt.Errorf("param count overflow: %w", err))
	}
	return start, n
}

// NewFunction allocates a function/constructor/fallback/receive/modifier item.
func (i *Items) NewFunction(decl FunctionDecl, params, returns []Param, span source.Span) ItemID {
	decl.ParamsStart, decl.ParamsCount = i.allocateParams(params)
	decl.ReturnsStart, decl.ReturnsCount = i.allocateParams(returns)
	decl.Span = span
	payload := PayloadID(i.Functions.Allocate(decl))
	return i.New(ItemFunction, span, payload)
}
