package ast

import (
	"fmt"

	"fortio.org/safecast"

	"github.com/sol-lang/solc/internal/source"
)

// UsingItem is the payload for an ItemUsing: `using Lib for T;`,
// `using Lib for *;`, or `using {f, g as op} for T global;`.
type UsingItem struct {
	// LibraryPath is set when the directive names a single library
	// (`using Lib for T`); nil when a function list form is used instead.
	LibraryPath []source.Symbol

	FunctionsStart UsingFunctionID
	FunctionsCount uint32

	// ForType is the bare type the functions attach to, or NoTypeID for `for *`.
	ForType TypeID
	ForAny  bool
	Global  bool
}

// UsingFunctionID identifies one entry of a `using {f, g as op}` list.
type UsingFunctionID uint32

// NoUsingFunctionID indicates no using-function entry.
const NoUsingFunctionID UsingFunctionID = 0

// IsValid reports whether id refers to an allocated using-function entry.
func (id UsingFunctionID) IsValid() bool { return id != NoUsingFunctionID }

// UsingFunction is one entry of a `using {f, g as op}` brace list.
type UsingFunction struct {
	Path     []source.Symbol
	Operator source.Symbol // zero value unless bound as an operator (`as +`)
	Span     source.Span
}

// Using returns the UsingItem for id, or nil/false if id is not a using directive.
func (i *Items) Using(id ItemID) (*UsingItem, bool) {
	item := i.Get(id)
	if item == nil || item.Kind != ItemUsing {
		return nil, false
	}
	return i.Usings.Get(uint32(item.Payload)), true
}

// UsingFunctions collects the brace-list of a function-list using directive.
func (i *Items) UsingFunctions(u *UsingItem) []UsingFunction {
	if u.FunctionsCount == 0 || !u.FunctionsStart.IsValid() {
		return nil
	}
	out := make([]UsingFunction, 0, u.FunctionsCount)
	base := uint32(u.FunctionsStart)
	for offset := range u.FunctionsCount {
		out = append(out, *i.UsingFunctionsArena.Get(base+offset))
	}
	return out
}

// NewUsing allocates a using directive item.
func (i *Items) NewUsing(libraryPath []source.Symbol, functions []UsingFunction, forType TypeID, forAny, global bool, span source.Span) ItemID {
	var start UsingFunctionID
	count, err := safecast.Conv[uint32](len(functions))
	if err != nil {
		panic(fmt.Errorf("using function count overflow: %w", err))
	}
	if count > 0 {
		for idx, fn := range functions {
			id := UsingFunctionID(i.UsingFunctionsArena.Allocate(fn))
			if idx == 0 {
				start = id
			}
		}
	}
	payload := PayloadID(i.Usings.Allocate(UsingItem{
		LibraryPath:    append([]source.Symbol(nil), libraryPath...),
		FunctionsStart: start,
		FunctionsCount: count,
		ForType:        forType,
		ForAny:         forAny,
		Global:         global,
	}))
	return i.New(ItemUsing, span, payload)
}
