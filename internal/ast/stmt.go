package ast

import (
	"fmt"

	"fortio.org/safecast"

	"github.com/sol-lang/solc/internal/source"
)

// StmtKind enumerates statement forms.
type StmtKind uint8

const (
	// StmtBlock is a `{ ... }` brace-delimited statement list.
	StmtBlock StmtKind = iota
	// StmtUnchecked is an `unchecked { ... }` block.
	StmtUnchecked
	// StmtIf is `if (cond) then else?`.
	StmtIf
	// StmtFor is a C-style `for (init; cond; post) body`.
	StmtFor
	// StmtWhile is `while (cond) body`.
	StmtWhile
	// StmtDoWhile is `do body while (cond);`.
	StmtDoWhile
	// StmtReturn is `return expr?;`.
	StmtReturn
	// StmtBreak is `break;`.
	StmtBreak
	// StmtContinue is `continue;`.
	StmtContinue
	// StmtEmit is `emit Event(args);`.
	StmtEmit
	// StmtRevert is `revert Error(args);` or the bare `revert(args);` builtin form.
	StmtRevert
	// StmtVarDecl is a local variable declaration, possibly a tuple
	// destructuring (`(uint a, , bool c) = f();`).
	StmtVarDecl
	// StmtExpr is a bare expression statement.
	StmtExpr
	// StmtTry is a `try expr returns (...) { ... } catch ... { ... }` statement.
	StmtTry
	// StmtAssembly is an `assembly { ... }` inline-Yul block.
	StmtAssembly
)

func (k StmtKind) String() string {
	names := [...]string{
		"block", "unchecked", "if", "for", "while", "do_while", "return",
		"break", "continue", "emit", "revert", "var_decl", "expr", "try",
		"assembly",
	}
	if int(k) < len(names) {
		return names[k]
	}
	return "unknown"
}

// Stmt is one node of the statement tree.
type Stmt struct {
	Kind    StmtKind
	Span    source.Span
	Payload PayloadID
}

// BlockStmtData is the payload for StmtBlock and StmtUnchecked.
type BlockStmtData struct {
	Stmts []StmtID
}

// IfStmtData is the payload for StmtIf.
type IfStmtData struct {
	Cond   ExprID
	Then   StmtID
	Else   StmtID // NoStmtID if there is no else branch
}

// ForStmtData is the payload for StmtFor. Init/Cond/Post are NoStmtID/NoExprID
// when the corresponding clause was omitted (`for (;;) {}`).
type ForStmtData struct {
	Init StmtID
	Cond ExprID
	Post ExprID
	Body StmtID
}

// WhileStmtData is the payload for StmtWhile and StmtDoWhile.
type WhileStmtData struct {
	Cond ExprID
	Body StmtID
}

// ReturnStmtData is the payload for StmtReturn.
type ReturnStmtData struct {
	Value ExprID // NoExprID for a bare `return;`
}

// EmitStmtData is the payload for StmtEmit.
type EmitStmtData struct {
	Call ExprID // always an ExprCall naming the event
}

// RevertStmtData is the payload for StmtRevert.
type RevertStmtData struct {
	Call ExprID // always an ExprCall naming the error, or the builtin `revert(...)`
}

// VarDeclTarget is one slot of a (possibly tuple) local variable declaration.
// A fully omitted slot (`(, uint b) = f()`) has Name == zero value and
// Type == NoTypeID.
type VarDeclTarget struct {
	Name     source.Symbol
	NameSpan source.Span
	Type     TypeID
	Location DataLocation
}

// VarDeclStmtData is the payload for StmtVarDecl.
type VarDeclStmtData struct {
	TargetsStart VarDeclTargetID
	TargetsCount uint32
	// Init is NoExprID for a declaration without an initializer (legal only
	// when there is exactly one target).
	Init ExprID
}

// VarDeclTargetID identifies one slot of a VarDeclStmtData's target list.
type VarDeclTargetID uint32

// NoVarDeclTargetID indicates no declaration target.
const NoVarDeclTargetID VarDeclTargetID = 0

// IsValid reports whether id refers to an allocated declaration target.
func (id VarDeclTargetID) IsValid() bool { return id != NoVarDeclTargetID }

// ExprStmtData is the payload for StmtExpr.
type ExprStmtData struct {
	Expr ExprID
}

// TryCatchClause is one `catch ... { ... }` arm of a try statement. Name is
// the zero value for the unnamed bare `catch { ... }` fallback clause.
type TryCatchClause struct {
	Name        source.Symbol // "Error", "Panic", or zero value for the bare fallback
	ParamsStart ParamID
	ParamsCount uint32
	Body        StmtID
	Span        source.Span
}

// TryCatchClauseID identifies one catch clause of a try statement.
type TryCatchClauseID uint32

// NoTryCatchClauseID indicates no catch clause.
const NoTryCatchClauseID TryCatchClauseID = 0

// IsValid reports whether id refers to an allocated catch clause.
func (id TryCatchClauseID) IsValid() bool { return id != NoTryCatchClauseID }

// TryStmtData is the payload for StmtTry.
type TryStmtData struct {
	Call ExprID // the external call or constructor invocation being tried

	ReturnsStart ParamID
	ReturnsCount uint32

	Body StmtID

	ClausesStart TryCatchClauseID
	ClausesCount uint32
}

// AssemblyStmtData is the payload for StmtAssembly.
type AssemblyStmtData struct {
	Block YulBlockID
	// Flags lists the optional string-literal dialect/flags following the
	// `assembly` keyword (e.g. `assembly ("memory-safe")`), interned verbatim.
	Flags []source.Symbol
}

// Stmts manages allocation of statement nodes and their payloads.
type Stmts struct {
	Arena          *Arena[Stmt]
	Blocks         *Arena[BlockStmtData]
	Ifs            *Arena[IfStmtData]
	Fors           *Arena[ForStmtData]
	Whiles         *Arena[WhileStmtData]
	Returns        *Arena[ReturnStmtData]
	Emits          *Arena[EmitStmtData]
	Reverts        *Arena[RevertStmtData]
	VarDecls       *Arena[VarDeclStmtData]
	VarDeclTargets *Arena[VarDeclTarget]
	Exprs          *Arena[ExprStmtData]
	Tries          *Arena[TryStmtData]
	TryClauses     *Arena[TryCatchClause]
	TryReturns     *Arena[Param]
	Assemblies     *Arena[AssemblyStmtData]
}

// NewStmts creates a Stmts table with per-kind arenas sized to capHint.
func NewStmts(capHint uint) *Stmts {
	return &Stmts{
		Arena:          NewArena[Stmt](capHint),
		Blocks:         NewArena[BlockStmtData](capHint / 2),
		Ifs:            NewArena[IfStmtData](capHint / 4),
		Fors:           NewArena[ForStmtData](capHint / 8),
		Whiles:         NewArena[WhileStmtData](capHint / 8),
		Returns:        NewArena[ReturnStmtData](capHint / 4),
		Emits:          NewArena[EmitStmtData](capHint / 8),
		Reverts:        NewArena[RevertStmtData](capHint / 8),
		VarDecls:       NewArena[VarDeclStmtData](capHint / 2),
		VarDeclTargets: NewArena[VarDeclTarget](capHint / 2),
		Exprs:          NewArena[ExprStmtData](capHint),
		Tries:          NewArena[TryStmtData](capHint / 16),
		TryClauses:     NewArena[TryCatchClause](capHint / 8),
		TryReturns:     NewArena[Param](capHint / 8),
		Assemblies:     NewArena[AssemblyStmtData](capHint / 16),
	}
}

func (s *Stmts) new(kind StmtKind, span source.Span, payload PayloadID) StmtID {
	return StmtID(s.Arena.Allocate(Stmt{Kind: kind, Span: span, Payload: payload}))
}

// Get returns the node for id.
func (s *Stmts) Get(id StmtID) *Stmt { return s.Arena.Get(uint32(id)) }

// NewBlock allocates a block statement (StmtBlock, or StmtUnchecked when unchecked is true).
func (s *Stmts) NewBlock(stmts []StmtID, unchecked bool, span source.Span) StmtID {
	payload := PayloadID(s.Blocks.Allocate(BlockStmtData{Stmts: append([]StmtID(nil), stmts...)}))
	kind := StmtBlock
	if unchecked {
		kind = StmtUnchecked
	}
	return s.new(kind, span, payload)
}

// Block returns the BlockStmtData payload for id, or nil/false if id is not a block.
func (s *Stmts) Block(id StmtID) (*BlockStmtData, bool) {
	node := s.Get(id)
	if node == nil || (node.Kind != StmtBlock && node.Kind != StmtUnchecked) {
		return nil, false
	}
	return s.Blocks.Get(uint32(node.Payload)), true
}

// NewIf allocates an if statement.
func (s *Stmts) NewIf(cond ExprID, then, els StmtID, span source.Span) StmtID {
	payload := PayloadID(s.Ifs.Allocate(IfStmtData{Cond: cond, Then: then, Else: els}))
	return s.new(StmtIf, span, payload)
}

// If returns the IfStmtData payload for id, or nil/false if id is not one.
func (s *Stmts) If(id StmtID) (*IfStmtData, bool) {
	node := s.Get(id)
	if node == nil || node.Kind != StmtIf {
		return nil, false
	}
	return s.Ifs.Get(uint32(node.Payload)), true
}

// NewFor allocates a for statement.
func (s *Stmts) NewFor(init StmtID, cond, post ExprID, body StmtID, span source.Span) StmtID {
	payload := PayloadID(s.Fors.Allocate(ForStmtData{Init: init, Cond: cond, Post: post, Body: body}))
	return s.new(StmtFor, span, payload)
}

// For returns the ForStmtData payload for id, or nil/false if id is not one.
func (s *Stmts) For(id StmtID) (*ForStmtData, bool) {
	node := s.Get(id)
	if node == nil || node.Kind != StmtFor {
		return nil, false
	}
	return s.Fors.Get(uint32(node.Payload)), true
}

// NewWhile allocates a while statement (StmtWhile, or StmtDoWhile when isDoWhile is true).
func (s *Stmts) NewWhile(cond ExprID, body StmtID, isDoWhile bool, span source.Span) StmtID {
	payload := PayloadID(s.Whiles.Allocate(WhileStmtData{Cond: cond, Body: body}))
	kind := StmtWhile
	if isDoWhile {
		kind = StmtDoWhile
	}
	return s.new(kind, span, payload)
}

// While returns the WhileStmtData payload for id, or nil/false if id is not one.
func (s *Stmts) While(id StmtID) (*WhileStmtData, bool) {
	node := s.Get(id)
	if node == nil || (node.Kind != StmtWhile && node.Kind != StmtDoWhile) {
		return nil, false
	}
	return s.Whiles.Get(uint32(node.Payload)), true
}

// NewReturn allocates a return statement.
func (s *Stmts) NewReturn(value ExprID, span source.Span) StmtID {
	payload := PayloadID(s.Returns.Allocate(ReturnStmtData{Value: value}))
	return s.new(StmtReturn, span, payload)
}

// Return returns the ReturnStmtData payload for id, or nil/false if id is not one.
func (s *Stmts) Return(id StmtID) (*ReturnStmtData, bool) {
	node := s.Get(id)
	if node == nil || node.Kind != StmtReturn {
		return nil, false
	}
	return s.Returns.Get(uint32(node.Payload)), true
}

// NewBreak allocates a break statement.
func (s *Stmts) NewBreak(span source.Span) StmtID { return s.new(StmtBreak, span, NoPayloadID) }

// NewContinue allocates a continue statement.
func (s *Stmts) NewContinue(span source.Span) StmtID { return s.new(StmtContinue, span, NoPayloadID) }

// NewEmit allocates an emit statement.
func (s *Stmts) NewEmit(call ExprID, span source.Span) StmtID {
	payload := PayloadID(s.Emits.Allocate(EmitStmtData{Call: call}))
	return s.new(StmtEmit, span, payload)
}

// Emit returns the EmitStmtData payload for id, or nil/false if id is not one.
func (s *Stmts) Emit(id StmtID) (*EmitStmtData, bool) {
	node := s.Get(id)
	if node == nil || node.Kind != StmtEmit {
		return nil, false
	}
	return s.Emits.Get(uint32(node.Payload)), true
}

// NewRevert allocates a revert statement.
func (s *Stmts) NewRevert(call ExprID, span source.Span) StmtID {
	payload := PayloadID(s.Reverts.Allocate(RevertStmtData{Call: call}))
	return s.new(StmtRevert, span, payload)
}

// Revert returns the RevertStmtData payload for id, or nil/false if id is not one.
func (s *Stmts) Revert(id StmtID) (*RevertStmtData, bool) {
	node := s.Get(id)
	if node == nil || node.Kind != StmtRevert {
		return nil, false
	}
	return s.Reverts.Get(uint32(node.Payload)), true
}

// NewVarDecl allocates a local variable declaration statement.
func (s *Stmts) NewVarDecl(targets []VarDeclTarget, init ExprID, span source.Span) StmtID {
	var start VarDeclTargetID
	count, err := safecast.Conv[uint32](len(targets))
	if err != nil {
		panic(fmt.Errorf("var decl target count overflow: %w", err))
	}
	if count > 0 {
		for idx, t := range targets {
			id := VarDeclTargetID(s.VarDeclTargets.Allocate(t))
			if idx == 0 {
				start = id
			}
		}
	}
	payload := PayloadID(s.VarDecls.Allocate(VarDeclStmtData{TargetsStart: start, TargetsCount: count, Init: init}))
	return s.new(StmtVarDecl, span, payload)
}

// VarDecl returns the VarDeclStmtData payload for id, or nil/false if id is not one.
func (s *Stmts) VarDecl(id StmtID) (*VarDeclStmtData, bool) {
	node := s.Get(id)
	if node == nil || node.Kind != StmtVarDecl {
		return nil, false
	}
	return s.VarDecls.Get(uint32(node.Payload)), true
}

// VarDeclTargets collects a variable declaration's (possibly tuple) target list.
func (s *Stmts) VarDeclTargets(decl *VarDeclStmtData) []VarDeclTarget {
	if decl.TargetsCount == 0 || !decl.TargetsStart.IsValid() {
		return nil
	}
	out := make([]VarDeclTarget, 0, decl.TargetsCount)
	base := uint32(decl.TargetsStart)
	for offset := range decl.TargetsCount {
		out = append(out, *s.VarDeclTargets.Get(base+offset))
	}
	return out
}

// NewExprStmt allocates an expression statement.
func (s *Stmts) NewExprStmt(expr ExprID, span source.Span) StmtID {
	payload := PayloadID(s.Exprs.Allocate(ExprStmtData{Expr: expr}))
	return s.new(StmtExpr, span, payload)
}

// ExprStmt returns the ExprStmtData payload for id, or nil/false if id is not one.
func (s *Stmts) ExprStmt(id StmtID) (*ExprStmtData, bool) {
	node := s.Get(id)
	if node == nil || node.Kind != StmtExpr {
		return nil, false
	}
	return s.Exprs.Get(uint32(node.Payload)), true
}

// NewTry allocates a try statement.
func (s *Stmts) NewTry(call ExprID, returns []Param, body StmtID, clauses []TryCatchClause, span source.Span) StmtID {
	var retStart ParamID
	retCount, err := safecast.Conv[uint32](len(returns))
	if err != nil {
		panic(fmt.Errorf("try return count overflow: %w", err))
	}
	if retCount > 0 {
		for idx, p := range returns {
			id := ParamID(s.TryReturns.Allocate(p))
			if idx == 0 {
				retStart = id
			}
		}
	}
	var clauseStart TryCatchClauseID
	clauseCount, err := safecast.Conv[uint32](len(clauses))
	if err != nil {
		panic(fmt.Errorf("try clause count overflow: %w", err))
	}
	if clauseCount > 0 {
		for idx, c := range clauses {
			id := TryCatchClauseID(s.TryClauses.Allocate(c))
			if idx == 0 {
				clauseStart = id
			}
		}
	}
	payload := PayloadID(s.Tries.Allocate(TryStmtData{
		Call:         call,
		ReturnsStart: retStart,
		ReturnsCount: retCount,
		Body:         body,
		ClausesStart: clauseStart,
		ClausesCount: clauseCount,
	}))
	return s.new(StmtTry, span, payload)
}

// Try returns the TryStmtData payload for id, or nil/false if id is not one.
func (s *Stmts) Try(id StmtID) (*TryStmtData, bool) {
	node := s.Get(id)
	if node == nil || node.Kind != StmtTry {
		return nil, false
	}
	return s.Tries.Get(uint32(node.Payload)), true
}

// TryReturnsOf collects a try statement's `returns (...)` list.
func (s *Stmts) TryReturnsOf(t *TryStmtData) []Param {
	if t.ReturnsCount == 0 || !t.ReturnsStart.IsValid() {
		return nil
	}
	out := make([]Param, 0, t.ReturnsCount)
	base := uint32(t.ReturnsStart)
	for offset := range t.ReturnsCount {
		out = append(out, *s.TryReturns.Get(base+offset))
	}
	return out
}

// TryClausesOf collects a try statement's catch clauses, in source order.
func (s *Stmts) TryClausesOf(t *TryStmtData) []TryCatchClause {
	if t.ClausesCount == 0 || !t.ClausesStart.IsValid() {
		return nil
	}
	out := make([]TryCatchClause, 0, t.ClausesCount)
	base := uint32(t.ClausesStart)
	for offset := range t.ClausesCount {
		out = append(out, *s.TryClauses.Get(base+offset))
	}
	return out
}

// NewAssembly allocates an inline-assembly statement.
func (s *Stmts) NewAssembly(block YulBlockID, flags []source.Symbol, span source.Span) StmtID {
	payload := PayloadID(s.Assemblies.Allocate(AssemblyStmtData{
		Block: block,
		Flags: append([]source.Symbol(nil), flags...),
	}))
	return s.new(StmtAssembly, span, payload)
}

// Assembly returns the AssemblyStmtData payload for id, or nil/false if id is not one.
func (s *Stmts) Assembly(id StmtID) (*AssemblyStmtData, bool) {
	node := s.Get(id)
	if node == nil || node.Kind != StmtAssembly {
		return nil, false
	}
	return s.Assemblies.Get(uint32(node.Payload)), true
}
