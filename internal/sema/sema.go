package sema

import (
	"github.com/sol-lang/solc/internal/hir"
	"github.com/sol-lang/solc/internal/pcontext"
	"github.com/sol-lang/solc/internal/types"
)

// Result is the outcome of running sema over a fully-lowered program: the
// type interner every resolved annotation was registered into, ready for
// whatever downstream pass (codegen, a linter) needs to ask a declaration
// its type.
type Result struct {
	Types *types.Interner
}

// Run binds every declared type annotation the HIR carries by reference
// into a concrete types.TypeID and runs the semantic checks that need a
// fully name-resolved, type-bound program to decide. It assumes hctx was
// produced by hir.Lower(pc) over the same ParsingContext.
//
// The registration order matters: enums/contracts/structs (pass 1) never
// need another nominal type to resolve, so they register first; UDVTs
// (pass 2) resolve immediately since their underlying type is restricted to
// an elementary value type; struct fields (pass 3) can then reference any
// nominal type including a UDVT; and finally every remaining
// use site — function signatures, state variables, event/error parameters,
// using-for targets (pass 4) — binds once every declared type in the
// program is reachable.
func Run(pc *pcontext.ParsingContext, hctx *hir.Context) *Result {
	b := newBinder(hctx, pc.Sources())

	b.registerNominals()
	b.registerUdvts()
	b.bindStructFields()

	b.bindVariables()
	b.bindFunctionSignatures()
	b.bindErrorsAndEvents()
	b.bindUsingFor()

	b.checkLibraryStateVars()
	b.checkInterfaceFunctionBody()
	b.checkConstructorVisibility()
	b.checkModifiers()
	b.checkModifierPlaceholders()

	return &Result{Types: b.interner}
}
