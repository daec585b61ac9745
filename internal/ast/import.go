package ast

import (
	"fmt"

	"fortio.org/safecast"

	"github.com/sol-lang/solc/internal/source"
)

// ImportForm distinguishes Solidity's three import syntaxes.
type ImportForm uint8

const (
	// ImportPlain is `import "path";` or `import "path" as Alias;`.
	ImportPlain ImportForm = iota
	// ImportStar is `import * as Alias from "path";`.
	ImportStar
	// ImportSelective is `import {A, B as C} from "path";`.
	ImportSelective
)

// ImportSymbol is one imported name in an ImportSelective's brace list.
type ImportSymbol struct {
	Name  source.Symbol
	Alias source.Symbol // zero value if not aliased
	Span  source.Span
}

// ImportItem is the payload for an ItemImport.
type ImportItem struct {
	Form ImportForm
	Path source.Symbol // the raw string literal contents, unresolved
	// Alias names the whole module (ImportPlain with `as`, or ImportStar).
	Alias source.Symbol

	SymbolsStart ImportSymbolID
	SymbolsCount uint32

	// ResolvedFile is filled in by the file resolver once the import graph
	// is walked; it is NoFileID while only the parser has run.
	ResolvedFile source.FileID
}

// Import returns the ImportItem for id, or nil/false if id is not an import.
func (i *Items) Import(id ItemID) (*ImportItem, bool) {
	item := i.Get(id)
	if item == nil || item.Kind != ItemImport {
		return nil, false
	}
	return i.Imports.Get(uint32(item.Payload)), true
}

// ImportSymbols collects the brace-list of an ImportSelective.
func (i *Items) ImportSymbols(imp *ImportItem) []ImportSymbol {
	if imp.SymbolsCount == 0 || !imp.SymbolsStart.IsValid() {
		return nil
	}
	out := make([]ImportSymbol, 0, imp.SymbolsCount)
	base := uint32(imp.SymbolsStart)
	for offset := range imp.SymbolsCount {
		out = append(out, *i.ImportSymbolsArena.Get(base+offset))
	}
	return out
}

// NewImport allocates an import item. symbols is only consulted for
// ImportSelective; it must be empty otherwise.
func (i *Items) NewImport(form ImportForm, path, alias source.Symbol, symbols []ImportSymbol, span source.Span) ItemID {
	var start ImportSymbolID
	count, err := safecast.Conv[uint32](len(symbols))
	if err != nil {
		panic(fmt.Errorf("import symbol count overflow: %w", err))
	}
	if count > 0 {
		for idx, sym := range symbols {
			id := ImportSymbolID(i.ImportSymbolsArena.Allocate(sym))
			if idx == 0 {
				start = id
			}
		}
	}
	payload := PayloadID(i.Imports.Allocate(ImportItem{
		Form:         form,
		Path:         path,
		Alias:        alias,
		SymbolsStart: start,
		SymbolsCount: count,
		ResolvedFile: source.NoFileID,
	}))
	return i.New(ItemImport, span, payload)
}
