package ast

import (
	"fmt"

	"fortio.org/safecast"

	"github.com/sol-lang/solc/internal/source"
)

// ExprKind enumerates the expression forms produced by the precedence-climbing
// parser: assignment, ternary, the binary operator ladder, unary/new/delete
// prefixes, and the postfix chain (call, call-options, index, slice, member).
type ExprKind uint8

const (
	// ExprIdent is a bare identifier reference.
	ExprIdent ExprKind = iota
	// ExprLit is a literal (number, rational, string, hex string, unicode string, bool).
	ExprLit
	// ExprTuple is a parenthesized expression list, `(a, b, c)`; also used for
	// a bare parenthesized single expression with one element.
	ExprTuple
	// ExprArray is an inline array literal, `[a, b, c]`.
	ExprArray
	// ExprUnary is a prefix or postfix unary operator (`!x`, `-x`, `x++`, `delete x`).
	ExprUnary
	// ExprNew is a `new T` or `new T[](n)` expression.
	ExprNew
	// ExprBinary is a binary operator expression.
	ExprBinary
	// ExprAssign is an assignment or compound-assignment expression.
	ExprAssign
	// ExprTernary is `cond ? a : b`.
	ExprTernary
	// ExprCall is `callee(args)`, with optional argument names (`f({x: 1})`).
	ExprCall
	// ExprCallOptions is `callee{key: value, ...}` immediately preceding a call
	// or standing alone as the target of one (`.call{value: v}(...)`).
	ExprCallOptions
	// ExprIndex is `base[index]`.
	ExprIndex
	// ExprSlice is a calldata slice, `base[start:end]`, `base[:end]`, `base[start:]`, `base[:]`.
	ExprSlice
	// ExprMember is `base.name`.
	ExprMember
	// ExprTypeCall is `type(T)`.
	ExprTypeCall
	// ExprTypeExpr wraps a bare TypeExpr used where an expression is
	// grammatically expected, e.g. the callee of `uint256(x)` or the operand
	// of `payable(x)`.
	ExprTypeExpr
)

func (k ExprKind) String() string {
	names := [...]string{
		"ident", "lit", "tuple", "array", "unary", "new", "binary", "assign",
		"ternary", "call", "call_options", "index", "slice", "member",
		"type_call", "type_expr",
	}
	if int(k) < len(names) {
		return names[k]
	}
	return "unknown"
}

// Expr is one node of the expression tree: a kind tag, its span, and an
// indirection into the per-kind payload arena.
type Expr struct {
	Kind    ExprKind
	Span    source.Span
	Payload PayloadID
}

// UnaryOp enumerates the prefix/postfix unary operators.
type UnaryOp uint8

const (
	UnaryNot UnaryOp = iota
	UnaryBitNot
	UnaryNeg
	UnaryPreInc
	UnaryPreDec
	UnaryPostInc
	UnaryPostDec
	UnaryDelete
)

// BinaryOp enumerates the binary operators, ordered to mirror the precedence
// ladder documented for the parser (exponent binds tighter than this listing
// implies; the grammar, not this enum's order, encodes precedence).
type BinaryOp uint8

const (
	BinaryOr BinaryOp = iota
	BinaryAnd
	BinaryEq
	BinaryNotEq
	BinaryLess
	BinaryLessEq
	BinaryGreater
	BinaryGreaterEq
	BinaryBitOr
	BinaryBitXor
	BinaryBitAnd
	BinaryShl
	BinaryShr
	BinaryAdd
	BinarySub
	BinaryMul
	BinaryDiv
	BinaryMod
	BinaryExp
)

// AssignOp enumerates `=` and its compound forms.
type AssignOp uint8

const (
	AssignPlain AssignOp = iota
	AssignAdd
	AssignSub
	AssignMul
	AssignDiv
	AssignMod
	AssignBitOr
	AssignBitXor
	AssignBitAnd
	AssignShl
	AssignShr
)

// LitKind enumerates literal forms.
type LitKind uint8

const (
	LitNumber LitKind = iota // integer or rational, with an optional unit suffix (wei/gwei/ether/seconds/...)
	LitString
	LitHexString
	LitUnicodeString
	LitBool
)

// IdentExpr is the payload for ExprIdent.
type IdentExpr struct {
	Name source.Symbol
}

// LitExpr is the payload for ExprLit. Text preserves the literal exactly as
// written (digit grouping, case of hex digits, escape sequences unresolved)
// so that later stages can re-derive both the numeric value and the
// subdenomination/unit suffix without re-lexing.
type LitExpr struct {
	Kind LitKind
	Text source.Symbol
	Unit source.Symbol // zero value unless Kind == LitNumber and a unit suffix was present
}

// TupleExpr is the payload for ExprTuple. An ast.NoExprID entry marks an omitted slot
// in a destructuring target, e.g. `(a, , c) = f()`.
type TupleExpr struct {
	Elements []ExprID
}

// ArrayExpr is the payload for ExprArray.
type ArrayExpr struct {
	Elements []ExprID
}

// UnaryExprData is the payload for ExprUnary.
type UnaryExprData struct {
	Op      UnaryOp
	Operand ExprID
}

// NewExprData is the payload for ExprNew.
type NewExprData struct {
	Type TypeID
}

// BinaryExprData is the payload for ExprBinary.
type BinaryExprData struct {
	Op    BinaryOp
	Left  ExprID
	Right ExprID
}

// AssignExprData is the payload for ExprAssign.
type AssignExprData struct {
	Op     AssignOp
	Target ExprID
	Value  ExprID
}

// TernaryExprData is the payload for ExprTernary.
type TernaryExprData struct {
	Cond ExprID
	Then ExprID
	Else ExprID
}

// CallArg is one argument of a call; Name is set only for named-argument
// call syntax, `f({x: 1, y: 2})`.
type CallArg struct {
	Name source.Symbol
	Expr ExprID
}

// CallExprData is the payload for ExprCall.
type CallExprData struct {
	Callee     ExprID
	ArgsStart  CallArgID
	ArgsCount  uint32
	NamedArgs  bool
}

// CallArgID identifies one entry of a call's argument list.
type CallArgID uint32

// NoCallArgID indicates no call argument.
const NoCallArgID CallArgID = 0

// IsValid reports whether id refers to an allocated call argument.
func (id CallArgID) IsValid() bool { return id != NoCallArgID }

// CallOption is one `key: value` entry of a call-options block.
type CallOption struct {
	Name  source.Symbol
	Value ExprID
}

// CallOptionID identifies one entry of a call-options block.
type CallOptionID uint32

// NoCallOptionID indicates no call option.
const NoCallOptionID CallOptionID = 0

// IsValid reports whether id refers to an allocated call option.
func (id CallOptionID) IsValid() bool { return id != NoCallOptionID }

// CallOptionsExprData is the payload for ExprCallOptions.
type CallOptionsExprData struct {
	Callee        ExprID
	OptionsStart  CallOptionID
	OptionsCount  uint32
}

// IndexExprData is the payload for ExprIndex.
type IndexExprData struct {
	Base  ExprID
	Index ExprID
}

// SliceExprData is the payload for ExprSlice. NoExprID for Start/End marks
// the omitted side of `base[:end]`/`base[start:]`/`base[:]`.
type SliceExprData struct {
	Base  ExprID
	Start ExprID
	End   ExprID
}

// MemberExprData is the payload for ExprMember.
type MemberExprData struct {
	Base ExprID
	Name source.Symbol
	Span source.Span
}

// TypeCallExprData is the payload for ExprTypeCall (`type(T)`).
type TypeCallExprData struct {
	Type TypeID
}

// TypeExprExprData is the payload for ExprTypeExpr.
type TypeExprExprData struct {
	Type TypeID
}

// Exprs manages allocation of expression nodes and their payloads.
type Exprs struct {
	Arena        *Arena[Expr]
	Idents       *Arena[IdentExpr]
	Lits         *Arena[LitExpr]
	Tuples       *Arena[TupleExpr]
	Arrays       *Arena[ArrayExpr]
	Unaries      *Arena[UnaryExprData]
	News         *Arena[NewExprData]
	Binaries     *Arena[BinaryExprData]
	Assigns      *Arena[AssignExprData]
	Ternaries    *Arena[TernaryExprData]
	Calls        *Arena[CallExprData]
	CallArgs     *Arena[CallArg]
	CallOptions  *Arena[CallOptionsExprData]
	CallOpts     *Arena[CallOption]
	Indices      *Arena[IndexExprData]
	Slices       *Arena[SliceExprData]
	Members      *Arena[MemberExprData]
	TypeCalls    *Arena[TypeCallExprData]
	TypeExprExpr *Arena[TypeExprExprData]
}

// NewExprs creates an Exprs table with per-kind arenas sized to capHint.
func NewExprs(capHint uint) *Exprs {
	return &Exprs{
		Arena:        NewArena[Expr](capHint),
		Idents:       NewArena[IdentExpr](capHint),
		Lits:         NewArena[LitExpr](capHint),
		Tuples:       NewArena[TupleExpr](capHint / 4),
		Arrays:       NewArena[ArrayExpr](capHint / 4),
		Unaries:      NewArena[UnaryExprData](capHint / 4),
		News:         NewArena[NewExprData](capHint / 8),
		Binaries:     NewArena[BinaryExprData](capHint / 2),
		Assigns:      NewArena[AssignExprData](capHint / 4),
		Ternaries:    NewArena[TernaryExprData](capHint / 8),
		Calls:        NewArena[CallExprData](capHint / 2),
		CallArgs:     NewArena[CallArg](capHint),
		CallOptions:  NewArena[CallOptionsExprData](capHint / 8),
		CallOpts:     NewArena[CallOption](capHint / 8),
		Indices:      NewArena[IndexExprData](capHint / 4),
		Slices:       NewArena[SliceExprData](capHint / 8),
		Members:      NewArena[MemberExprData](capHint / 2),
		TypeCalls:    NewArena[TypeCallExprData](capHint / 8),
		TypeExprExpr: NewArena[TypeExprExprData](capHint / 8),
	}
}

func (e *Exprs) new(kind ExprKind, span source.Span, payload PayloadID) ExprID {
	return ExprID(e.Arena.Allocate(Expr{Kind: kind, Span: span, Payload: payload}))
}

// Get returns the node for id.
func (e *Exprs) Get(id ExprID) *Expr { return e.Arena.Get(uint32(id)) }

// NewIdent allocates an identifier expression.
func (e *Exprs) NewIdent(name source.Symbol, span source.Span) ExprID {
	payload := PayloadID(e.Idents.Allocate(IdentExpr{Name: name}))
	return e.new(ExprIdent, span, payload)
}

// Ident returns the IdentExpr payload for id, or nil/false if id is not one.
func (e *Exprs) Ident(id ExprID) (*IdentExpr, bool) {
	node := e.Get(id)
	if node == nil || node.Kind != ExprIdent {
		return nil, false
	}
	return e.Idents.Get(uint32(node.Payload)), true
}

// NewLit allocates a literal expression.
func (e *Exprs) NewLit(lit LitExpr, span source.Span) ExprID {
	payload := PayloadID(e.Lits.Allocate(lit))
	return e.new(ExprLit, span, payload)
}

// Lit returns the LitExpr payload for id, or nil/false if id is not one.
func (e *Exprs) Lit(id ExprID) (*LitExpr, bool) {
	node := e.Get(id)
	if node == nil || node.Kind != ExprLit {
		return nil, false
	}
	return e.Lits.Get(uint32(node.Payload)), true
}

// NewTuple allocates a tuple expression.
func (e *Exprs) NewTuple(elements []ExprID, span source.Span) ExprID {
	payload := PayloadID(e.Tuples.Allocate(TupleExpr{Elements: append([]ExprID(nil), elements...)}))
	return e.new(ExprTuple, span, payload)
}

// Tuple returns the TupleExpr payload for id, or nil/false if id is not one.
func (e *Exprs) Tuple(id ExprID) (*TupleExpr, bool) {
	node := e.Get(id)
	if node == nil || node.Kind != ExprTuple {
		return nil, false
	}
	return e.Tuples.Get(uint32(node.Payload)), true
}

// NewArray allocates an array-literal expression.
func (e *Exprs) NewArray(elements []ExprID, span source.Span) ExprID {
	payload := PayloadID(e.Arrays.Allocate(ArrayExpr{Elements: append([]ExprID(nil), elements...)}))
	return e.new(ExprArray, span, payload)
}

// Array returns the ArrayExpr payload for id, or nil/false if id is not one.
func (e *Exprs) Array(id ExprID) (*ArrayExpr, bool) {
	node := e.Get(id)
	if node == nil || node.Kind != ExprArray {
		return nil, false
	}
	return e.Arrays.Get(uint32(node.Payload)), true
}

// NewUnary allocates a unary expression.
func (e *Exprs) NewUnary(op UnaryOp, operand ExprID, span source.Span) ExprID {
	payload := PayloadID(e.Unaries.Allocate(UnaryExprData{Op: op, Operand: operand}))
	return e.new(ExprUnary, span, payload)
}

// Unary returns the UnaryExprData payload for id, or nil/false if id is not one.
func (e *Exprs) Unary(id ExprID) (*UnaryExprData, bool) {
	node := e.Get(id)
	if node == nil || node.Kind != ExprUnary {
		return nil, false
	}
	return e.Unaries.Get(uint32(node.Payload)), true
}

// NewNew allocates a `new T` expression.
func (e *Exprs) NewNew(typ TypeID, span source.Span) ExprID {
	payload := PayloadID(e.News.Allocate(NewExprData{Type: typ}))
	return e.new(ExprNew, span, payload)
}

// New returns the NewExprData payload for id, or nil/false if id is not one.
func (e *Exprs) New(id ExprID) (*NewExprData, bool) {
	node := e.Get(id)
	if node == nil || node.Kind != ExprNew {
		return nil, false
	}
	return e.News.Get(uint32(node.Payload)), true
}

// NewBinary allocates a binary expression.
func (e *Exprs) NewBinary(op BinaryOp, left, right ExprID, span source.Span) ExprID {
	payload := PayloadID(e.Binaries.Allocate(BinaryExprData{Op: op, Left: left, Right: right}))
	return e.new(ExprBinary, span, payload)
}

// Binary returns the BinaryExprData payload for id, or nil/false if id is not one.
func (e *Exprs) Binary(id ExprID) (*BinaryExprData, bool) {
	node := e.Get(id)
	if node == nil || node.Kind != ExprBinary {
		return nil, false
	}
	return e.Binaries.Get(uint32(node.Payload)), true
}

// NewAssign allocates an assignment expression.
func (e *Exprs) NewAssign(op AssignOp, target, value ExprID, span source.Span) ExprID {
	payload := PayloadID(e.Assigns.Allocate(AssignExprData{Op: op, Target: target, Value: value}))
	return e.new(ExprAssign, span, payload)
}

// Assign returns the AssignExprData payload for id, or nil/false if id is not one.
func (e *Exprs) Assign(id ExprID) (*AssignExprData, bool) {
	node := e.Get(id)
	if node == nil || node.Kind != ExprAssign {
		return nil, false
	}
	return e.Assigns.Get(uint32(node.Payload)), true
}

// NewTernary allocates a ternary expression.
func (e *Exprs) NewTernary(cond, then, els ExprID, span source.Span) ExprID {
	payload := PayloadID(e.Ternaries.Allocate(TernaryExprData{Cond: cond, Then: then, Else: els}))
	return e.new(ExprTernary, span, payload)
}

// Ternary returns the TernaryExprData payload for id, or nil/false if id is not one.
func (e *Exprs) Ternary(id ExprID) (*TernaryExprData, bool) {
	node := e.Get(id)
	if node == nil || node.Kind != ExprTernary {
		return nil, false
	}
	return e.Ternaries.Get(uint32(node.Payload)), true
}

// NewCall allocates a call expression.
func (e *Exprs) NewCall(callee ExprID, args []CallArg, named bool, span source.Span) ExprID {
	var start CallArgID
	count, err := safecast.Conv[uint32](len(args))
	if err != nil {
		panic(fmt.Errorf("call arg count overflow: %w", err))
	}
	if count > 0 {
		for idx, a := range args {
			id := CallArgID(e.CallArgs.Allocate(a))
			if idx == 0 {
				start = id
			}
		}
	}
	payload := PayloadID(e.Calls.Allocate(CallExprData{
		Callee: callee, ArgsStart: start, ArgsCount: count, NamedArgs: named,
	}))
	return e.new(ExprCall, span, payload)
}

// Call returns the CallExprData payload for id, or nil/false if id is not one.
func (e *Exprs) Call(id ExprID) (*CallExprData, bool) {
	node := e.Get(id)
	if node == nil || node.Kind != ExprCall {
		return nil, false
	}
	return e.Calls.Get(uint32(node.Payload)), true
}

// CallArgs collects a call's argument list.
func (e *Exprs) CallArgs(call *CallExprData) []CallArg {
	if call.ArgsCount == 0 || !call.ArgsStart.IsValid() {
		return nil
	}
	out := make([]CallArg, 0, call.ArgsCount)
	base := uint32(call.ArgsStart)
	for offset := range call.ArgsCount {
		out = append(out, *e.CallArgs.Get(base+offset))
	}
	return out
}

// NewCallOptions allocates a call-options expression.
func (e *Exprs) NewCallOptions(callee ExprID, options []CallOption, span source.Span) ExprID {
	var start CallOptionID
	count, err := safecast.Conv[uint32](len(options))
	if err != nil {
		panic(fmt.Errorf("call option count overflow: %w", err))
	}
	if count > 0 {
		for idx, o := range options {
			id := CallOptionID(e.CallOpts.Allocate(o))
			if idx == 0 {
				start = id
			}
		}
	}
	payload := PayloadID(e.CallOptions.Allocate(CallOptionsExprData{
		Callee: callee, OptionsStart: start, OptionsCount: count,
	}))
	return e.new(ExprCallOptions, span, payload)
}

// CallOptionsExpr returns the CallOptionsExprData payload for id, or nil/false if id is not one.
func (e *Exprs) CallOptionsExpr(id ExprID) (*CallOptionsExprData, bool) {
	node := e.Get(id)
	if node == nil || node.Kind != ExprCallOptions {
		return nil, false
	}
	return e.CallOptions.Get(uint32(node.Payload)), true
}

// CallOptionList collects a call-options block's entries.
func (e *Exprs) CallOptionList(opts *CallOptionsExprData) []CallOption {
	if opts.OptionsCount == 0 || !opts.OptionsStart.IsValid() {
		return nil
	}
	out := make([]CallOption, 0, opts.OptionsCount)
	base := uint32(opts.OptionsStart)
	for offset := range opts.OptionsCount {
		out = append(out, *e.CallOpts.Get(base+offset))
	}
	return out
}

// NewIndex allocates an index expression.
func (e *Exprs) NewIndex(base, index ExprID, span source.Span) ExprID {
	payload := PayloadID(e.Indices.Allocate(IndexExprData{Base: base, Index: index}))
	return e.new(ExprIndex, span, payload)
}

// Index returns the IndexExprData payload for id, or nil/false if id is not one.
func (e *Exprs) Index(id ExprID) (*IndexExprData, bool) {
	node := e.Get(id)
	if node == nil || node.Kind != ExprIndex {
		return nil, false
	}
	return e.Indices.Get(uint32(node.Payload)), true
}

// NewSlice allocates a calldata-slice expression.
func (e *Exprs) NewSlice(base, start, end ExprID, span source.Span) ExprID {
	payload := PayloadID(e.Slices.Allocate(SliceExprData{Base: base, Start: start, End: end}))
	return e.new(ExprSlice, span, payload)
}

// Slice returns the SliceExprData payload for id, or nil/false if id is not one.
func (e *Exprs) Slice(id ExprID) (*SliceExprData, bool) {
	node := e.Get(id)
	if node == nil || node.Kind != ExprSlice {
		return nil, false
	}
	return e.Slices.Get(uint32(node.Payload)), true
}

// NewMember allocates a member-access expression.
func (e *Exprs) NewMember(base ExprID, name source.Symbol, nameSpan, span source.Span) ExprID {
	payload := PayloadID(e.Members.Allocate(MemberExprData{Base: base, Name: name, Span: nameSpan}))
	return e.new(ExprMember, span, payload)
}

// Member returns the MemberExprData payload for id, or nil/false if id is not one.
func (e *Exprs) Member(id ExprID) (*MemberExprData, bool) {
	node := e.Get(id)
	if node == nil || node.Kind != ExprMember {
		return nil, false
	}
	return e.Members.Get(uint32(node.Payload)), true
}

// NewTypeCall allocates a `type(T)` expression.
func (e *Exprs) NewTypeCall(typ TypeID, span source.Span) ExprID {
	payload := PayloadID(e.TypeCalls.Allocate(TypeCallExprData{Type: typ}))
	return e.new(ExprTypeCall, span, payload)
}

// TypeCall returns the TypeCallExprData payload for id, or nil/false if id is not one.
func (e *Exprs) TypeCall(id ExprID) (*TypeCallExprData, bool) {
	node := e.Get(id)
	if node == nil || node.Kind != ExprTypeCall {
		return nil, false
	}
	return e.TypeCalls.Get(uint32(node.Payload)), true
}

// NewTypeExpr allocates a bare-type-as-expression node (the callee of a
// primitive-type conversion call, e.g. `uint256` in `uint256(x)`).
func (e *Exprs) NewTypeExpr(typ TypeID, span source.Span) ExprID {
	payload := PayloadID(e.TypeExprExpr.Allocate(TypeExprExprData{Type: typ}))
	return e.new(ExprTypeExpr, span, payload)
}

// TypeExprOf returns the TypeExprExprData payload for id, or nil/false if id is not one.
func (e *Exprs) TypeExprOf(id ExprID) (*TypeExprExprData, bool) {
	node := e.Get(id)
	if node == nil || node.Kind != ExprTypeExpr {
		return nil, false
	}
	return e.TypeExprExpr.Get(uint32(node.Payload)), true
}
