package symbols

import "github.com/sol-lang/solc/internal/source"

// Stack is the local-binding arena built for one function or modifier body.
// A sema body-walk pushes a scope on entering each block/loop/catch clause,
// declares parameters and local variables into the current scope as it
// walks statements in order, and pops on leaving the block, the same
// nesting discipline the statement grammar itself enforces.
type Stack struct {
	scopes   []Scope
	bindings []Binding
	current  ScopeID
}

// NewStack creates a Stack with its function-level scope already pushed and
// current.
func NewStack(fnSpan source.Span) *Stack {
	st := &Stack{}
	st.scopes = append(st.scopes, Scope{}) // index 0 unused, matches NoScopeID == 0
	st.bindings = append(st.bindings, Binding{})
	root := st.push(ScopeFunction, NoScopeID, fnSpan)
	st.current = root
	return st
}

func (st *Stack) push(kind ScopeKind, parent ScopeID, span source.Span) ScopeID {
	id := ScopeID(len(st.scopes))
	st.scopes = append(st.scopes, Scope{
		ID:       id,
		Kind:     kind,
		Parent:   parent,
		Span:     span,
		bindings: make(map[source.Symbol][]BindingID),
	})
	return id
}

// Push opens a new nested scope under the current one and makes it current.
func (st *Stack) Push(kind ScopeKind, span source.Span) ScopeID {
	id := st.push(kind, st.current, span)
	st.current = id
	return id
}

// Pop closes the current scope, making its parent current again. Pop on the
// function-level scope is a no-op: a Stack always has at least one scope.
func (st *Stack) Pop() {
	if cur := st.Scope(st.current); cur != nil && cur.Parent.IsValid() {
		st.current = cur.Parent
	}
}

// Current returns the scope currently open for declarations.
func (st *Stack) Current() ScopeID { return st.current }

// Scope returns the scope with the given id, or nil if id is out of range.
func (st *Stack) Scope(id ScopeID) *Scope {
	if !id.IsValid() || int(id) >= len(st.scopes) {
		return nil
	}
	return &st.scopes[id]
}

// Declare introduces a binding into scope, returning its BindingID.
// Declaring a name already present in the same scope is legal at this
// layer (sema decides whether to flag it as SemaDuplicateDefinition or a
// SemaShadowedDeclaration, since Solidity only forbids same-scope
// redeclaration, not shadowing an outer scope).
func (st *Stack) Declare(scope ScopeID, name source.Symbol, kind BindingKind, b Binding) BindingID {
	s := st.Scope(scope)
	if s == nil {
		return NoBindingID
	}
	id := BindingID(len(st.bindings))
	b.ID = id
	b.Name = name
	b.Kind = kind
	b.Scope = scope
	st.bindings = append(st.bindings, b)
	if _, ok := s.bindings[name]; !ok {
		s.order = append(s.order, name)
	}
	s.bindings[name] = append(s.bindings[name], id)
	return id
}

// Binding returns the binding with the given id.
func (st *Stack) Binding(id BindingID) *Binding {
	if !id.IsValid() || int(id) >= len(st.bindings) {
		return nil
	}
	return &st.bindings[id]
}

// LookupInScope returns every binding declared under name directly in
// scope, ignoring outer scopes. Used to detect same-scope redeclaration.
func (st *Stack) LookupInScope(scope ScopeID, name source.Symbol) []BindingID {
	s := st.Scope(scope)
	if s == nil {
		return nil
	}
	return s.bindings[name]
}

// Resolve walks from scope outward through its ancestors and returns the
// nearest binding declared under name, or NoBindingID if none shadows it.
func (st *Stack) Resolve(scope ScopeID, name source.Symbol) BindingID {
	for s := st.Scope(scope); s != nil; s = st.Scope(s.Parent) {
		if ids := s.bindings[name]; len(ids) > 0 {
			return ids[len(ids)-1]
		}
		if !s.Parent.IsValid() {
			break
		}
	}
	return NoBindingID
}

// ResolveCurrent is a convenience for Resolve(st.Current(), name).
func (st *Stack) ResolveCurrent(name source.Symbol) BindingID {
	return st.Resolve(st.current, name)
}
