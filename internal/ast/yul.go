package ast

import (
	"fmt"

	"fortio.org/safecast"

	"github.com/sol-lang/solc/internal/source"
)

// Yul is parsed into a distinct sub-AST, surface-level only: this tree is
// never type-checked and is consumed solely by downstream code generation
// once the unstable Yul pipeline is enabled.

// YulBlock is a brace-delimited Yul statement list.
type YulBlock struct {
	Stmts []YulStmtID
	Span  source.Span
}

// YulStmtKind enumerates Yul statement forms.
type YulStmtKind uint8

const (
	// YulStmtBlock is a nested `{ ... }` block.
	YulStmtBlock YulStmtKind = iota
	// YulStmtVarDecl is `let x, y := expr`.
	YulStmtVarDecl
	// YulStmtAssignSingle is `x := expr`.
	YulStmtAssignSingle
	// YulStmtAssignMulti is `x, y := call(...)`.
	YulStmtAssignMulti
	// YulStmtExpr is a bare call-expression statement.
	YulStmtExpr
	// YulStmtIf is `if cond { ... }`.
	YulStmtIf
	// YulStmtFor is `for { init } cond { post } { body }`.
	YulStmtFor
	// YulStmtSwitch is `switch expr case lit { ... } ... default { ... }`.
	YulStmtSwitch
	// YulStmtLeave is `leave`.
	YulStmtLeave
	// YulStmtBreak is `break`.
	YulStmtBreak
	// YulStmtContinue is `continue`.
	YulStmtContinue
	// YulStmtFunctionDef is `function name(params) -> rets { body }`.
	YulStmtFunctionDef
)

func (k YulStmtKind) String() string {
	names := [...]string{
		"block", "var_decl", "assign_single", "assign_multi", "expr", "if",
		"for", "switch", "leave", "break", "continue", "function_def",
	}
	if int(k) < len(names) {
		return names[k]
	}
	return "unknown"
}

// YulStmt is one node of the Yul statement tree.
type YulStmt struct {
	Kind    YulStmtKind
	Span    source.Span
	Payload PayloadID
}

// YulVarDeclData is the payload for YulStmtVarDecl.
type YulVarDeclData struct {
	Names []source.Symbol
	Init  YulExprID // NoYulExprID for `let x` with no initializer
}

// YulAssignData is the payload for YulStmtAssignSingle and YulStmtAssignMulti.
type YulAssignData struct {
	Targets []source.Symbol
	Value   YulExprID
}

// YulExprStmtData is the payload for YulStmtExpr.
type YulExprStmtData struct {
	Expr YulExprID
}

// YulIfData is the payload for YulStmtIf.
type YulIfData struct {
	Cond YulExprID
	Body YulBlockID
}

// YulForData is the payload for YulStmtFor.
type YulForData struct {
	Init YulBlockID
	Cond YulExprID
	Post YulBlockID
	Body YulBlockID
}

// YulCase is one `case lit { ... }` arm of a switch, or the `default { ... }`
// arm when Default is true (Literal is then unused).
type YulCase struct {
	Default bool
	Literal YulExprID
	Body    YulBlockID
	Span    source.Span
}

// YulCaseID identifies one case arm of a YulSwitchData.
type YulCaseID uint32

// NoYulCaseID indicates no case arm.
const NoYulCaseID YulCaseID = 0

// IsValid reports whether id refers to an allocated case arm.
func (id YulCaseID) IsValid() bool { return id != NoYulCaseID }

// YulSwitchData is the payload for YulStmtSwitch.
type YulSwitchData struct {
	Subject     YulExprID
	CasesStart  YulCaseID
	CasesCount  uint32
}

// YulParam names one parameter or return slot of a Yul function definition.
type YulParam struct {
	Name source.Symbol
	Span source.Span
}

// YulParamID identifies one slot of a YulFunctionDefData's param or return list.
type YulParamID uint32

// NoYulParamID indicates no parameter slot.
const NoYulParamID YulParamID = 0

// IsValid reports whether id refers to an allocated parameter slot.
func (id YulParamID) IsValid() bool { return id != NoYulParamID }

// YulFunctionDefData is the payload for YulStmtFunctionDef.
type YulFunctionDefData struct {
	Name         source.Symbol
	NameSpan     source.Span
	ParamsStart  YulParamID
	ParamsCount  uint32
	ReturnsStart YulParamID
	ReturnsCount uint32
	Body         YulBlockID
}

// YulExprKind enumerates Yul expression forms.
type YulExprKind uint8

const (
	// YulExprIdent is a bare identifier reference.
	YulExprIdent YulExprKind = iota
	// YulExprCall is `name(args...)`.
	YulExprCall
	// YulExprLit is a number, string, or boolean literal.
	YulExprLit
)

func (k YulExprKind) String() string {
	switch k {
	case YulExprIdent:
		return "ident"
	case YulExprCall:
		return "call"
	case YulExprLit:
		return "lit"
	default:
		return "unknown"
	}
}

// YulExpr is one node of the Yul expression tree.
type YulExpr struct {
	Kind    YulExprKind
	Span    source.Span
	Payload PayloadID
}

// YulIdentData is the payload for YulExprIdent.
type YulIdentData struct {
	Name source.Symbol
}

// YulCallData is the payload for YulExprCall.
type YulCallData struct {
	Callee    source.Symbol
	ArgsStart YulExprID
	ArgsCount uint32
}

// YulLitKind distinguishes the literal forms accepted in Yul.
type YulLitKind uint8

const (
	// YulLitNumber is a decimal or hex integer literal.
	YulLitNumber YulLitKind = iota
	// YulLitString is a quoted string literal.
	YulLitString
	// YulLitBool is `true` or `false`.
	YulLitBool
	// YulLitHexString is a `hex"..."` literal.
	YulLitHexString
)

// YulLitData is the payload for YulExprLit.
type YulLitData struct {
	Kind YulLitKind
	Text source.Symbol
}

// Yuls manages allocation of a single inline-assembly block's surface-level
// sub-AST: statements, expressions, and their arena-owned payloads.
type Yuls struct {
	Blocks *Arena[YulBlock]

	StmtArena   *Arena[YulStmt]
	VarDecls    *Arena[YulVarDeclData]
	Assigns     *Arena[YulAssignData]
	ExprStmts   *Arena[YulExprStmtData]
	Ifs         *Arena[YulIfData]
	Fors        *Arena[YulForData]
	Switches    *Arena[YulSwitchData]
	Cases       *Arena[YulCase]
	FunctionDefs *Arena[YulFunctionDefData]
	Params      *Arena[YulParam]

	ExprArena *Arena[YulExpr]
	Idents    *Arena[YulIdentData]
	Calls     *Arena[YulCallData]
	CallArgs  *Arena[YulExprID]
	Lits      *Arena[YulLitData]
}

// NewYuls creates a Yuls table with per-kind arenas sized to capHint.
func NewYuls(capHint uint) *Yuls {
	if capHint == 0 {
		capHint = 1 << 6
	}
	return &Yuls{
		Blocks:       NewArena[YulBlock](capHint / 4),
		StmtArena:    NewArena[YulStmt](capHint),
		VarDecls:     NewArena[YulVarDeclData](capHint / 4),
		Assigns:      NewArena[YulAssignData](capHint / 4),
		ExprStmts:    NewArena[YulExprStmtData](capHint / 2),
		Ifs:          NewArena[YulIfData](capHint / 8),
		Fors:         NewArena[YulForData](capHint / 16),
		Switches:     NewArena[YulSwitchData](capHint / 16),
		Cases:        NewArena[YulCase](capHint / 8),
		FunctionDefs: NewArena[YulFunctionDefData](capHint / 16),
		Params:       NewArena[YulParam](capHint / 4),
		ExprArena:    NewArena[YulExpr](capHint),
		Idents:       NewArena[YulIdentData](capHint / 2),
		Calls:        NewArena[YulCallData](capHint / 2),
		CallArgs:     NewArena[YulExprID](capHint),
		Lits:         NewArena[YulLitData](capHint / 2),
	}
}

// NewBlock allocates a Yul block.
func (y *Yuls) NewBlock(stmts []YulStmtID, span source.Span) YulBlockID {
	return YulBlockID(y.Blocks.Allocate(YulBlock{Stmts: append([]YulStmtID(nil), stmts...), Span: span}))
}

// Block returns the block for id.
func (y *Yuls) Block(id YulBlockID) *YulBlock { return y.Blocks.Get(uint32(id)) }

func (y *Yuls) newStmt(kind YulStmtKind, span source.Span, payload PayloadID) YulStmtID {
	return YulStmtID(y.StmtArena.Allocate(YulStmt{Kind: kind, Span: span, Payload: payload}))
}

// Stmt returns the statement node for id.
func (y *Yuls) Stmt(id YulStmtID) *YulStmt { return y.StmtArena.Get(uint32(id)) }

// NewVarDecl allocates a `let` statement.
func (y *Yuls) NewVarDecl(names []source.Symbol, init YulExprID, span source.Span) YulStmtID {
	payload := PayloadID(y.VarDecls.Allocate(YulVarDeclData{Names: append([]source.Symbol(nil), names...), Init: init}))
	return y.newStmt(YulStmtVarDecl, span, payload)
}

// VarDecl returns the YulVarDeclData payload for id, or nil/false if id is not one.
func (y *Yuls) VarDecl(id YulStmtID) (*YulVarDeclData, bool) {
	node := y.Stmt(id)
	if node == nil || node.Kind != YulStmtVarDecl {
		return nil, false
	}
	return y.VarDecls.Get(uint32(node.Payload)), true
}

// NewAssign allocates an assignment statement (YulStmtAssignSingle for a
// single target, YulStmtAssignMulti for more than one).
func (y *Yuls) NewAssign(targets []source.Symbol, value YulExprID, span source.Span) YulStmtID {
	payload := PayloadID(y.Assigns.Allocate(YulAssignData{Targets: append([]source.Symbol(nil), targets...), Value: value}))
	kind := YulStmtAssignSingle
	if len(targets) > 1 {
		kind = YulStmtAssignMulti
	}
	return y.newStmt(kind, span, payload)
}

// Assign returns the YulAssignData payload for id, or nil/false if id is not one.
func (y *Yuls) Assign(id YulStmtID) (*YulAssignData, bool) {
	node := y.Stmt(id)
	if node == nil || (node.Kind != YulStmtAssignSingle && node.Kind != YulStmtAssignMulti) {
		return nil, false
	}
	return y.Assigns.Get(uint32(node.Payload)), true
}

// NewExprStmt allocates a bare call-expression statement.
func (y *Yuls) NewExprStmt(expr YulExprID, span source.Span) YulStmtID {
	payload := PayloadID(y.ExprStmts.Allocate(YulExprStmtData{Expr: expr}))
	return y.newStmt(YulStmtExpr, span, payload)
}

// ExprStmt returns the YulExprStmtData payload for id, or nil/false if id is not one.
func (y *Yuls) ExprStmt(id YulStmtID) (*YulExprStmtData, bool) {
	node := y.Stmt(id)
	if node == nil || node.Kind != YulStmtExpr {
		return nil, false
	}
	return y.ExprStmts.Get(uint32(node.Payload)), true
}

// NewIf allocates a Yul if statement (no else branch exists in Yul).
func (y *Yuls) NewIf(cond YulExprID, body YulBlockID, span source.Span) YulStmtID {
	payload := PayloadID(y.Ifs.Allocate(YulIfData{Cond: cond, Body: body}))
	return y.newStmt(YulStmtIf, span, payload)
}

// If returns the YulIfData payload for id, or nil/false if id is not one.
func (y *Yuls) If(id YulStmtID) (*YulIfData, bool) {
	node := y.Stmt(id)
	if node == nil || node.Kind != YulStmtIf {
		return nil, false
	}
	return y.Ifs.Get(uint32(node.Payload)), true
}

// NewFor allocates a Yul for statement.
func (y *Yuls) NewFor(init YulBlockID, cond YulExprID, post, body YulBlockID, span source.Span) YulStmtID {
	payload := PayloadID(y.Fors.Allocate(YulForData{Init: init, Cond: cond, Post: post, Body: body}))
	return y.newStmt(YulStmtFor, span, payload)
}

// For returns the YulForData payload for id, or nil/false if id is not one.
func (y *Yuls) For(id YulStmtID) (*YulForData, bool) {
	node := y.Stmt(id)
	if node == nil || node.Kind != YulStmtFor {
		return nil, false
	}
	return y.Fors.Get(uint32(node.Payload)), true
}

// NewSwitch allocates a Yul switch statement.
func (y *Yuls) NewSwitch(subject YulExprID, cases []YulCase, span source.Span) YulStmtID {
	var start YulCaseID
	count, err := safecast.Conv[uint32](len(cases))
	if err != nil {
		panic(fmt.Errorf("yul switch case count overflow: %w", err))
	}
	if count > 0 {
		for idx, c := range cases {
			id := YulCaseID(y.Cases.Allocate(c))
			if idx == 0 {
				start = id
			}
		}
	}
	payload := PayloadID(y.Switches.Allocate(YulSwitchData{Subject: subject, CasesStart: start, CasesCount: count}))
	return y.newStmt(YulStmtSwitch, span, payload)
}

// Switch returns the YulSwitchData payload for id, or nil/false if id is not one.
func (y *Yuls) Switch(id YulStmtID) (*YulSwitchData, bool) {
	node := y.Stmt(id)
	if node == nil || node.Kind != YulStmtSwitch {
		return nil, false
	}
	return y.Switches.Get(uint32(node.Payload)), true
}

// SwitchCases collects a switch statement's case arms, in source order.
func (y *Yuls) SwitchCases(sw *YulSwitchData) []YulCase {
	if sw.CasesCount == 0 || !sw.CasesStart.IsValid() {
		return nil
	}
	out := make([]YulCase, 0, sw.CasesCount)
	base := uint32(sw.CasesStart)
	for offset := range sw.CasesCount {
		out = append(out, *y.Cases.Get(base+offset))
	}
	return out
}

// NewLeave allocates a `leave` statement.
func (y *Yuls) NewLeave(span source.Span) YulStmtID { return y.newStmt(YulStmtLeave, span, NoPayloadID) }

// NewBreak allocates a Yul `break` statement.
func (y *Yuls) NewBreak(span source.Span) YulStmtID { return y.newStmt(YulStmtBreak, span, NoPayloadID) }

// NewContinue allocates a Yul `continue` statement.
func (y *Yuls) NewContinue(span source.Span) YulStmtID {
	return y.newStmt(YulStmtContinue, span, NoPayloadID)
}

func (y *Yuls) allocateYulParams(params []YulParam) (YulParamID, uint32) {
	var start YulParamID
	count, err := safecast.Conv[uint32](len(params))
	if err != nil {
		panic(fmt.Errorf("yul param count overflow: %w", err))
	}
	if count > 0 {
		for idx, p := range params {
			id := YulParamID(y.Params.Allocate(p))
			if idx == 0 {
				start = id
			}
		}
	}
	return start, count
}

func (y *Yuls) collectYulParams(start YulParamID, count uint32) []YulParam {
	if count == 0 || !start.IsValid() {
		return nil
	}
	out := make([]YulParam, 0, count)
	base := uint32(start)
	for offset := range count {
		out = append(out, *y.Params.Get(base+offset))
	}
	return out
}

// NewFunctionDef allocates a `function name(params) -> rets { body }` statement.
func (y *Yuls) NewFunctionDef(name source.Symbol, nameSpan source.Span, params, returns []YulParam, body YulBlockID, span source.Span) YulStmtID {
	pStart, pCount := y.allocateYulParams(params)
	rStart, rCount := y.allocateYulParams(returns)
	payload := PayloadID(y.FunctionDefs.Allocate(YulFunctionDefData{
		Name:         name,
		NameSpan:     nameSpan,
		ParamsStart:  pStart,
		ParamsCount:  pCount,
		ReturnsStart: rStart,
		ReturnsCount: rCount,
		Body:         body,
	}))
	return y.newStmt(YulStmtFunctionDef, span, payload)
}

// FunctionDef returns the YulFunctionDefData payload for id, or nil/false if id is not one.
func (y *Yuls) FunctionDef(id YulStmtID) (*YulFunctionDefData, bool) {
	node := y.Stmt(id)
	if node == nil || node.Kind != YulStmtFunctionDef {
		return nil, false
	}
	return y.FunctionDefs.Get(uint32(node.Payload)), true
}

// FunctionDefParams collects a Yul function definition's parameter list.
func (y *Yuls) FunctionDefParams(fn *YulFunctionDefData) []YulParam {
	return y.collectYulParams(fn.ParamsStart, fn.ParamsCount)
}

// FunctionDefReturns collects a Yul function definition's return-slot list.
func (y *Yuls) FunctionDefReturns(fn *YulFunctionDefData) []YulParam {
	return y.collectYulParams(fn.ReturnsStart, fn.ReturnsCount)
}

func (y *Yuls) newExpr(kind YulExprKind, span source.Span, payload PayloadID) YulExprID {
	return YulExprID(y.ExprArena.Allocate(YulExpr{Kind: kind, Span: span, Payload: payload}))
}

// Expr returns the expression node for id.
func (y *Yuls) Expr(id YulExprID) *YulExpr { return y.ExprArena.Get(uint32(id)) }

// NewIdent allocates an identifier reference expression.
func (y *Yuls) NewIdent(name source.Symbol, span source.Span) YulExprID {
	payload := PayloadID(y.Idents.Allocate(YulIdentData{Name: name}))
	return y.newExpr(YulExprIdent, span, payload)
}

// Ident returns the YulIdentData payload for id, or nil/false if id is not one.
func (y *Yuls) Ident(id YulExprID) (*YulIdentData, bool) {
	node := y.Expr(id)
	if node == nil || node.Kind != YulExprIdent {
		return nil, false
	}
	return y.Idents.Get(uint32(node.Payload)), true
}

// NewCall allocates a Yul builtin or function call expression.
func (y *Yuls) NewCall(callee source.Symbol, args []YulExprID, span source.Span) YulExprID {
	var start YulExprID
	count, err := safecast.Conv[uint32](len(args))
	if err != nil {
		panic(fmt.Errorf("yul call arg count overflow: %w", err))
	}
	if count > 0 {
		for idx, a := range args {
			id := YulExprID(y.CallArgs.Allocate(a))
			if idx == 0 {
				start = id
			}
		}
	}
	payload := PayloadID(y.Calls.Allocate(YulCallData{Callee: callee, ArgsStart: start, ArgsCount: count}))
	return y.newExpr(YulExprCall, span, payload)
}

// Call returns the YulCallData payload for id, or nil/false if id is not one.
func (y *Yuls) Call(id YulExprID) (*YulCallData, bool) {
	node := y.Expr(id)
	if node == nil || node.Kind != YulExprCall {
		return nil, false
	}
	return y.Calls.Get(uint32(node.Payload)), true
}

// CallArgsOf collects a call expression's argument list, in source order.
func (y *Yuls) CallArgsOf(call *YulCallData) []YulExprID {
	if call.ArgsCount == 0 || !call.ArgsStart.IsValid() {
		return nil
	}
	out := make([]YulExprID, 0, call.ArgsCount)
	base := uint32(call.ArgsStart)
	for offset := range call.ArgsCount {
		out = append(out, *y.CallArgs.Get(base+offset))
	}
	return out
}

// NewLit allocates a literal expression.
func (y *Yuls) NewLit(kind YulLitKind, text source.Symbol, span source.Span) YulExprID {
	payload := PayloadID(y.Lits.Allocate(YulLitData{Kind: kind, Text: text}))
	return y.newExpr(YulExprLit, span, payload)
}

// Lit returns the YulLitData payload for id, or nil/false if id is not one.
func (y *Yuls) Lit(id YulExprID) (*YulLitData, bool) {
	node := y.Expr(id)
	if node == nil || node.Kind != YulExprLit {
		return nil, false
	}
	return y.Lits.Get(uint32(node.Payload)), true
}
