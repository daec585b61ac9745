package ast

import "github.com/sol-lang/solc/internal/source"

// ErrorDecl is the payload for an ItemError: `error Name(uint a, string b);`.
type ErrorDecl struct {
	Name        source.Symbol
	NameSpan    source.Span
	ParamsStart ParamID
	ParamsCount uint32
	Span        source.Span
}

// Error returns the ErrorDecl for id, or nil/false if id is not an error.
func (i *Items) Error(id ItemID) (*ErrorDecl, bool) {
	item := i.Get(id)
	if item == nil || item.Kind != ItemError {
		return nil, false
	}
	return i.Errors.Get(uint32(item.Payload)), true
}

// ErrorParams collects an error's parameter list.
func (i *Items) ErrorParams(decl *ErrorDecl) []Param {
	return i.collectParams(decl.ParamsStart, decl.ParamsCount)
}

// NewError allocates an error item.
func (i *Items) NewError(name source.Symbol, nameSpan source.Span, params []Param, span source.Span) ItemID {
	start, count := i.allocateParams(params)
	payload := PayloadID(i.Errors.Allocate(ErrorDecl{
		Name:        name,
		NameSpan:    nameSpan,
		ParamsStart: start,
		ParamsCount: count,
		Span:        span,
	}))
	return i.New(ItemError, span, payload)
}

// EventDecl is the payload for an ItemEvent: `event Name(uint indexed a);`.
type EventDecl struct {
	Name        source.Symbol
	NameSpan    source.Span
	ParamsStart ParamID
	ParamsCount uint32
	Anonymous   bool
	Span        source.Span
}

// Event returns the EventDecl for id, or nil/false if id is not an event.
func (i *Items) Event(id ItemID) (*EventDecl, bool) {
	item := i.Get(id)
	if item == nil || item.Kind != ItemEvent {
		return nil, false
	}
	return i.Events.Get(uint32(item.Payload)), true
}

// EventParams collects an event's parameter list; each Param's Indexed field
// reflects whether it carried the `indexed` keyword.
func (i *Items) EventParams(decl *EventDecl) []Param {
	return i.collectParams(decl.ParamsStart, decl.ParamsCount)
}

// NewEvent allocates an event item.
func (i *Items) NewEvent(name source.Symbol, nameSpan source.Span, params []Param, anonymous bool, span source.Span) ItemID {
	start, count := i.allocateParams(params)
	payload := PayloadID(i.Events.Allocate(EventDecl{
		Name:        name,
		NameSpan:    nameSpan,
		ParamsStart: start,
		ParamsCount: count,
		Anonymous:   anonymous,
		Span:        span,
	}))
	return i.New(ItemEvent, span, payload)
}
