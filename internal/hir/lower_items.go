package hir

import (
	"fmt"

	"github.com/sol-lang/solc/internal/ast"
	"github.com/sol-lang/solc/internal/diag"
	"github.com/sol-lang/solc/internal/pcontext"
	"github.com/sol-lang/solc/internal/source"
)

// lowerSource runs pass 1 (item collection) and pass 2 (export-scope
// population, which for this design is the same walk: every file-level
// item is declared into the source's own scope as it's lowered) over a
// single parsed file.
func (l *lowerer) lowerSource(fid source.FileID, pf *pcontext.ParsedFile) {
	if pf == nil || pf.Unit == nil {
		l.hctx.NewSource(fid)
		return
	}
	src := l.hctx.NewSource(fid)
	dctx := l.dctxFor(pf)

	for _, itemID := range pf.Unit.Items {
		item := pf.Builder.Items.Get(itemID)
		if item == nil {
			continue
		}
		switch item.Kind {
		case ast.ItemPragma, ast.ItemImport:
			// pragmas are consulted directly off the AST by version
			// checking; imports are resolved in pass 3.
		case ast.ItemUsing:
			src.Using = append(src.Using, itemID)
		case ast.ItemContract:
			id := l.lowerContract(pf, src.ID, itemID, dctx)
			iid := contractItemID(id)
			src.Items = append(src.Items, iid)
			decl, _ := pf.Builder.Items.Contract(itemID)
			l.declareItem(pf, dctx, src.Scope, decl.Name, decl.NameSpan, ItemRes(iid), ast.ItemContract)
		default:
			iid := l.lowerItemInto(pf, src.ID, NoContractID, nil, src.Scope, itemID, dctx)
			if iid.IsValid() {
				src.Items = append(src.Items, iid)
			}
		}
	}
}

// lowerContract allocates a Contract and lowers every item nested in its
// body, wiring the distinguished constructor/fallback/receive slots and
// diagnosing duplicates among them.
func (l *lowerer) lowerContract(pf *pcontext.ParsedFile, srcID SourceID, itemID ast.ItemID, dctx *diag.DiagCtxt) ContractID {
	decl, _ := pf.Builder.Items.Contract(itemID)

	inherits := make([]InheritRef, 0, len(decl.Inherits))
	for _, spec := range decl.Inherits {
		inherits = append(inherits, InheritRef{Path: spec.Path, Span: spec.Span, Resolved: NoContractID})
	}

	id := l.hctx.NewContract(srcID, Contract{
		Name:     decl.Name,
		NameSpan: decl.NameSpan,
		Kind:     decl.Kind,
		Inherits: inherits,
		Scope:    NewScope(),
		ASTItem:  itemID,
		Span:     decl.Span,
	})
	contract := l.hctx.Contract(id)

	for _, ci := range pf.Builder.Items.ContractItems(decl) {
		if ci.Kind == ast.ItemUsing {
			continue
		}
		iid := l.lowerItemInto(pf, srcID, id, contract, contract.Scope, ci.Item, dctx)
		if iid.IsValid() {
			contract.Items = append(contract.Items, iid)
		}
	}

	if contract.Fallback.IsValid() {
		fb := l.hctx.Function(contract.Fallback)
		if fb.Mutability == ast.MutPayable && !contract.Receive.IsValid() {
			dctx.NewWarning(diag.SemaPayableFallbackNoReceive,
				"contract has a payable fallback function, but no receive ether function").
				Span(fb.Span).Emit()
		}
	}

	return id
}

// lowerItemInto lowers one function/variable/struct/enum/udvt/error/event
// item, allocating it into hctx and declaring it (when named) into scope.
// contract is nil for a file-level item; otherwise it receives the
// constructor/fallback/receive wiring a function item may trigger.
func (l *lowerer) lowerItemInto(
	pf *pcontext.ParsedFile,
	srcID SourceID,
	owner ContractID,
	contract *Contract,
	scope *Scope,
	itemID ast.ItemID,
	dctx *diag.DiagCtxt,
) ItemID {
	item := pf.Builder.Items.Get(itemID)
	if item == nil {
		return NoItemID
	}

	switch item.Kind {
	case ast.ItemFunction:
		decl, _ := pf.Builder.Items.Function(itemID)
		fid := l.hctx.NewFunction(srcID, Function{
			Owner:      owner,
			Name:       decl.Name,
			NameSpan:   decl.NameSpan,
			Kind:       decl.Kind,
			Visibility: decl.Visibility,
			Mutability: decl.Mutability,
			Virtual:    decl.Virtual,
			HasBody:    decl.Body.IsValid(),
			ASTItem:    itemID,
			Span:       item.Span,
		})
		iid := functionItemID(fid)
		switch decl.Kind {
		case ast.FunctionKindRegular, ast.FunctionKindModifier:
			l.declareItem(pf, dctx, scope, decl.Name, decl.NameSpan, ItemRes(iid), ast.ItemFunction)
		case ast.FunctionKindConstructor:
			if contract != nil {
				if contract.Ctor.IsValid() {
					dctx.NewError(diag.SemaDuplicateDefinition, "contract has more than one constructor").
						Span(item.Span).
						SpanNote(l.hctx.Function(contract.Ctor).Span, "previous constructor here").
						Emit()
				} else {
					contract.Ctor = fid
				}
			}
		case ast.FunctionKindFallback:
			if contract != nil {
				if contract.Fallback.IsValid() {
					dctx.NewError(diag.SemaDuplicateFallback, "fallback function already declared").
						Span(item.Span).
						SpanNote(l.hctx.Function(contract.Fallback).Span, "previous fallback here").
						Emit()
				} else {
					contract.Fallback = fid
				}
			}
		case ast.FunctionKindReceive:
			if contract != nil {
				if contract.Receive.IsValid() {
					dctx.NewError(diag.SemaDuplicateReceive, "receive function already declared").
						Span(item.Span).
						SpanNote(l.hctx.Function(contract.Receive).Span, "previous receive here").
						Emit()
				} else {
					contract.Receive = fid
				}
			}
		}
		return iid

	case ast.ItemVariable:
		decl, _ := pf.Builder.Items.Variable(itemID)
		vid := l.hctx.NewVariable(srcID, Variable{
			Owner:      owner,
			Name:       decl.Name,
			NameSpan:   decl.NameSpan,
			Visibility: decl.Visibility,
			Constant:   decl.Constant,
			Immutable:  decl.Immutable,
			HasInit:    decl.Init.IsValid(),
			ASTItem:    itemID,
			Span:       item.Span,
		})
		iid := variableItemID(vid)
		l.declareItem(pf, dctx, scope, decl.Name, decl.NameSpan, ItemRes(iid), ast.ItemVariable)
		return iid

	case ast.ItemStruct:
		decl, _ := pf.Builder.Items.Struct(itemID)
		sid := l.hctx.NewStruct(srcID, Struct{Owner: owner, Name: decl.Name, NameSpan: decl.NameSpan, ASTItem: itemID, Span: item.Span})
		iid := structItemID(sid)
		l.declareItem(pf, dctx, scope, decl.Name, decl.NameSpan, ItemRes(iid), ast.ItemStruct)
		return iid

	case ast.ItemEnum:
		decl, _ := pf.Builder.Items.Enum(itemID)
		eid := l.hctx.NewEnum(srcID, Enum{Owner: owner, Name: decl.Name, NameSpan: decl.NameSpan, ASTItem: itemID, Span: item.Span})
		iid := enumItemID(eid)
		l.declareItem(pf, dctx, scope, decl.Name, decl.NameSpan, ItemRes(iid), ast.ItemEnum)
		return iid

	case ast.ItemUdvt:
		decl, _ := pf.Builder.Items.Udvt(itemID)
		uid := l.hctx.NewUdvt(srcID, Udvt{Owner: owner, Name: decl.Name, NameSpan: decl.NameSpan, ASTItem: itemID, Span: item.Span})
		iid := udvtItemID(uid)
		l.declareItem(pf, dctx, scope, decl.Name, decl.NameSpan, ItemRes(iid), ast.ItemUdvt)
		return iid

	case ast.ItemError:
		decl, _ := pf.Builder.Items.Error(itemID)
		eid := l.hctx.NewError(srcID, Error{Owner: owner, Name: decl.Name, NameSpan: decl.NameSpan, ASTItem: itemID, Span: item.Span})
		iid := errorItemID(eid)
		l.declareItem(pf, dctx, scope, decl.Name, decl.NameSpan, ItemRes(iid), ast.ItemError)
		return iid

	case ast.ItemEvent:
		decl, _ := pf.Builder.Items.Event(itemID)
		evid := l.hctx.NewEvent(srcID, Event{Owner: owner, Name: decl.Name, NameSpan: decl.NameSpan, Anonymous: decl.Anonymous, ASTItem: itemID, Span: item.Span})
		iid := eventItemID(evid)
		l.declareItem(pf, dctx, scope, decl.Name, decl.NameSpan, ItemRes(iid), ast.ItemEvent)
		return iid

	default:
		return NoItemID
	}
}

// declareItem registers name into scope, reporting a duplicate-definition
// diagnostic when it collides with an existing non-overloadable
// declaration. Functions (and modifiers) are the only kind Solidity allows
// multiple declarations of under the same name.
func (l *lowerer) declareItem(pf *pcontext.ParsedFile, dctx *diag.DiagCtxt, scope *Scope, name source.Symbol, span source.Span, res Res, kind ast.ItemKind) {
	if name == source.NoSymbol {
		return
	}
	existing := scope.Lookup(name)
	if len(existing) > 0 {
		conflict := kind != ast.ItemFunction
		if kind == ast.ItemFunction {
			for _, d := range existing {
				if d.Res.Kind != ResItem || d.Res.Item.Kind != ItemKindFunction {
					conflict = true
					break
				}
			}
		}
		if conflict {
			prev := existing[0]
			dctx.NewError(diag.SemaDuplicateDefinition,
				fmt.Sprintf("duplicate definition of %s '%s'", itemKindKeyword(kind), lookup(pf, name))).
				Span(span).
				SpanNote(prev.Span, "previous definition here").
				Emit()
		}
	}
	scope.Declare(name, Declaration{Res: res, Span: span})
}
