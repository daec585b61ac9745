package types

import "github.com/sol-lang/solc/internal/ast"

// FnInfo describes a `function(...)` type's full signature. Two function
// types with identical params, returns, visibility, and mutability are the
// same type, so function types are hash-consed like any structural kind.
type FnInfo struct {
	Params     []TypeID
	Returns    []TypeID
	Visibility ast.Visibility
	Mutability ast.Mutability
}

// InternFunction interns a `function(...)` type, reusing an existing
// TypeID when one with an identical signature already exists.
func (in *Interner) InternFunction(info FnInfo) TypeID {
	for i := 1; i < len(in.fns); i++ {
		if fnInfoEqual(in.fns[i], info) {
			return in.findFnType(uint32(i))
		}
	}
	slot := appendSlot(&in.fns, info)
	return in.internStructural(Type{Kind: KindFunction, Payload: slot})
}

// findFnType recovers the TypeID already pointing at slot, scanning the
// type table once: the reverse map from fn-table slot to TypeID isn't worth
// maintaining separately since InternFunction's own linear scan above
// already dominates the cost for any program with a realistic number of
// distinct function signatures.
func (in *Interner) findFnType(slot uint32) TypeID {
	for id := TypeID(1); int(id) < len(in.types); id++ {
		if in.types[id].Kind == KindFunction && in.types[id].Payload == slot {
			return id
		}
	}
	return NoTypeID
}

func fnInfoEqual(a, b FnInfo) bool {
	if a.Visibility != b.Visibility || a.Mutability != b.Mutability {
		return false
	}
	if len(a.Params) != len(b.Params) || len(a.Returns) != len(b.Returns) {
		return false
	}
	for i := range a.Params {
		if a.Params[i] != b.Params[i] {
			return false
		}
	}
	for i := range a.Returns {
		if a.Returns[i] != b.Returns[i] {
			return false
		}
	}
	return true
}

// FunctionInfo returns the registered function-type descriptor for id.
func (in *Interner) FunctionInfo(id TypeID) (*FnInfo, bool) {
	tt, ok := in.Lookup(id)
	if !ok || tt.Kind != KindFunction || int(tt.Payload) >= len(in.fns) {
		return nil, false
	}
	return &in.fns[tt.Payload], true
}
