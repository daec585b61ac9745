package hir

import (
	"github.com/sol-lang/solc/internal/ast"
	"github.com/sol-lang/solc/internal/source"
)

// Source is the lowered record for one source file: its module-level scope
// (pass 2's export collection, augmented in place by pass 3's import
// propagation) and the items it declares directly, in source order.
type Source struct {
	ID    SourceID
	File  source.FileID
	Scope *Scope
	Items []ItemID

	// Using records each `using ... for ...;` directive's AST item, kept by
	// reference rather than lowered: member-function-call resolution reads
	// these straight off the AST the way type-of-expression does for bodies.
	Using []ast.ItemID
}

// Context is the compilation-wide HIR arena: every lowered item, across
// every source, keyed by its dense per-kind id. Unlike the AST arenas (one
// per parse), a Context lives for the remainder of the compilation.
type Context struct {
	sources      []*Source
	sourceByFile map[source.FileID]SourceID

	contracts []*Contract
	functions []*Function
	variables []*Variable
	structs   []*Struct
	enums     []*Enum
	udvts     []*Udvt
	errors    []*Error
	events    []*Event

	// itemSource recovers the inverse map item -> source, as required by
	// the data model (hir.item(id).source must be recoverable).
	itemSource map[ItemID]SourceID
	// astIndex is the bijection between an HIR item and the ast.ItemID it
	// was lowered from, consulted by later passes that need to read a
	// body, type annotation, or modifier list straight off the AST.
	astIndex map[ItemID]ast.ItemID
}

// NewContext creates an empty HIR context.
func NewContext() *Context {
	return &Context{
		sourceByFile: make(map[source.FileID]SourceID),
		itemSource:   make(map[ItemID]SourceID),
		astIndex:     make(map[ItemID]ast.ItemID),
	}
}

// NewSource registers a fresh Source for file and returns it. Calling it
// twice for the same file returns the existing Source.
func (c *Context) NewSource(file source.FileID) *Source {
	if id, ok := c.sourceByFile[file]; ok {
		return c.sources[id-1]
	}
	src := &Source{File: file, Scope: NewScope()}
	c.sources = append(c.sources, src)
	id := SourceID(len(c.sources))
	src.ID = id
	c.sourceByFile[file] = id
	return src
}

// SourceOf returns the Source lowered from file, or nil if none was lowered.
func (c *Context) SourceOf(file source.FileID) *Source {
	id, ok := c.sourceByFile[file]
	if !ok {
		return nil
	}
	return c.sources[id-1]
}

// Source returns the Source with the given id.
func (c *Context) Source(id SourceID) *Source {
	if !id.IsValid() || int(id) > len(c.sources) {
		return nil
	}
	return c.sources[id-1]
}

// Sources returns every lowered source, indexed by SourceID order.
func (c *Context) Sources() []*Source { return c.sources }

func (c *Context) bind(item ItemID, src SourceID, astItem ast.ItemID) {
	c.itemSource[item] = src
	c.astIndex[item] = astItem
}

// ItemSource recovers the source a lowered item came from.
func (c *Context) ItemSource(item ItemID) SourceID { return c.itemSource[item] }

// ASTItem recovers the ast.ItemID an HIR item was lowered from.
func (c *Context) ASTItem(item ItemID) ast.ItemID { return c.astIndex[item] }

// NewContract allocates a Contract and returns its id.
func (c *Context) NewContract(src SourceID, decl Contract) ContractID {
	decl.Source = src
	id := ContractID(len(c.contracts) + 1)
	decl.ID = id
	c.contracts = append(c.contracts, &decl)
	c.bind(contractItemID(id), src, decl.ASTItem)
	return id
}

// Contract returns the Contract with the given id.
func (c *Context) Contract(id ContractID) *Contract {
	if !id.IsValid() || int(id) > len(c.contracts) {
		return nil
	}
	return c.contracts[id-1]
}

// Contracts returns every lowered contract, indexed by ContractID order.
func (c *Context) Contracts() []*Contract { return c.contracts }

// NewFunction allocates a Function and returns its id.
func (c *Context) NewFunction(src SourceID, decl Function) FunctionID {
	decl.Source = src
	id := FunctionID(len(c.functions) + 1)
	decl.ID = id
	c.functions = append(c.functions, &decl)
	c.bind(functionItemID(id), src, decl.ASTItem)
	return id
}

// Function returns the Function with the given id.
func (c *Context) Function(id FunctionID) *Function {
	if !id.IsValid() || int(id) > len(c.functions) {
		return nil
	}
	return c.functions[id-1]
}

// Functions returns every lowered function, indexed by FunctionID order.
func (c *Context) Functions() []*Function { return c.functions }

// NewVariable allocates a Variable and returns its id.
func (c *Context) NewVariable(src SourceID, decl Variable) VariableID {
	decl.Source = src
	id := VariableID(len(c.variables) + 1)
	decl.ID = id
	c.variables = append(c.variables, &decl)
	c.bind(variableItemID(id), src, decl.ASTItem)
	return id
}

// Variable returns the Variable with the given id.
func (c *Context) Variable(id VariableID) *Variable {
	if !id.IsValid() || int(id) > len(c.variables) {
		return nil
	}
	return c.variables[id-1]
}

// Variables returns every lowered variable, indexed by VariableID order.
func (c *Context) Variables() []*Variable { return c.variables }

// NewStruct allocates a Struct and returns its id.
func (c *Context) NewStruct(src SourceID, decl Struct) StructID {
	decl.Source = src
	id := StructID(len(c.structs) + 1)
	decl.ID = id
	c.structs = append(c.structs, &decl)
	c.bind(structItemID(id), src, decl.ASTItem)
	return id
}

// Struct returns the Struct with the given id.
func (c *Context) Struct(id StructID) *Struct {
	if !id.IsValid() || int(id) > len(c.structs) {
		return nil
	}
	return c.structs[id-1]
}

// Structs returns every lowered struct, indexed by StructID order.
func (c *Context) Structs() []*Struct { return c.structs }

// NewEnum allocates an Enum and returns its id.
func (c *Context) NewEnum(src SourceID, decl Enum) EnumID {
	decl.Source = src
	id := EnumID(len(c.enums) + 1)
	decl.ID = id
	c.enums = append(c.enums, &decl)
	c.bind(enumItemID(id), src, decl.ASTItem)
	return id
}

// Enum returns the Enum with the given id.
func (c *Context) Enum(id EnumID) *Enum {
	if !id.IsValid() || int(id) > len(c.enums) {
		return nil
	}
	return c.enums[id-1]
}

// Enums returns every lowered enum, indexed by EnumID order.
func (c *Context) Enums() []*Enum { return c.enums }

// NewUdvt allocates a Udvt and returns its id.
func (c *Context) NewUdvt(src SourceID, decl Udvt) UdvtID {
	decl.Source = src
	id := UdvtID(len(c.udvts) + 1)
	decl.ID = id
	c.udvts = append(c.udvts, &decl)
	c.bind(udvtItemID(id), src, decl.ASTItem)
	return id
}

// Udvt returns the Udvt with the given id.
func (c *Context) Udvt(id UdvtID) *Udvt {
	if !id.IsValid() || int(id) > len(c.udvts) {
		return nil
	}
	return c.udvts[id-1]
}

// Udvts returns every lowered UDVT, indexed by UdvtID order.
func (c *Context) Udvts() []*Udvt { return c.udvts }

// NewError allocates an Error and returns its id.
func (c *Context) NewError(src SourceID, decl Error) ErrorID {
	decl.Source = src
	id := ErrorID(len(c.errors) + 1)
	decl.ID = id
	c.errors = append(c.errors, &decl)
	c.bind(errorItemID(id), src, decl.ASTItem)
	return id
}

// Error returns the Error with the given id.
func (c *Context) Error(id ErrorID) *Error {
	if !id.IsValid() || int(id) > len(c.errors) {
		return nil
	}
	return c.errors[id-1]
}

// Errors returns every lowered error, indexed by ErrorID order.
func (c *Context) Errors() []*Error { return c.errors }

// NewEvent allocates an Event and returns its id.
func (c *Context) NewEvent(src SourceID, decl Event) EventID {
	decl.Source = src
	id := EventID(len(c.events) + 1)
	decl.ID = id
	c.events = append(c.events, &decl)
	c.bind(eventItemID(id), src, decl.ASTItem)
	return id
}

// Event returns the Event with the given id.
func (c *Context) Event(id EventID) *Event {
	if !id.IsValid() || int(id) > len(c.events) {
		return nil
	}
	return c.events[id-1]
}

// Events returns every lowered event, indexed by EventID order.
func (c *Context) Events() []*Event { return c.events }

// ItemSpan returns the span of any item, regardless of kind.
func (c *Context) ItemSpan(id ItemID) source.Span {
	switch id.Kind {
	case ItemKindContract:
		return c.Contract(ContractID(id.Index)).Span
	case ItemKindFunction:
		return c.Function(FunctionID(id.Index)).Span
	case ItemKindVariable:
		return c.Variable(VariableID(id.Index)).Span
	case ItemKindStruct:
		return c.Struct(StructID(id.Index)).Span
	case ItemKindEnum:
		return c.Enum(EnumID(id.Index)).Span
	case ItemKindUdvt:
		return c.Udvt(UdvtID(id.Index)).Span
	case ItemKindError:
		return c.Error(ErrorID(id.Index)).Span
	case ItemKindEvent:
		return c.Event(EventID(id.Index)).Span
	default:
		return source.Span{}
	}
}

// ItemName returns the declared name of any item, regardless of kind.
// Unnamed functions (constructor/fallback/receive) return source.NoSymbol.
func (c *Context) ItemName(id ItemID) source.Symbol {
	switch id.Kind {
	case ItemKindContract:
		return c.Contract(ContractID(id.Index)).Name
	case ItemKindFunction:
		return c.Function(FunctionID(id.Index)).Name
	case ItemKindVariable:
		return c.Variable(VariableID(id.Index)).Name
	case ItemKindStruct:
		return c.Struct(StructID(id.Index)).Name
	case ItemKindEnum:
		return c.Enum(EnumID(id.Index)).Name
	case ItemKindUdvt:
		return c.Udvt(UdvtID(id.Index)).Name
	case ItemKindError:
		return c.Error(ErrorID(id.Index)).Name
	case ItemKindEvent:
		return c.Event(EventID(id.Index)).Name
	default:
		return source.NoSymbol
	}
}

// ItemOwner returns the contract that declares item, or NoContractID for a
// file-level item.
func (c *Context) ItemOwner(id ItemID) ContractID {
	switch id.Kind {
	case ItemKindFunction:
		return c.Function(FunctionID(id.Index)).Owner
	case ItemKindVariable:
		return c.Variable(VariableID(id.Index)).Owner
	case ItemKindStruct:
		return c.Struct(StructID(id.Index)).Owner
	case ItemKindEnum:
		return c.Enum(EnumID(id.Index)).Owner
	case ItemKindUdvt:
		return c.Udvt(UdvtID(id.Index)).Owner
	case ItemKindError:
		return c.Error(ErrorID(id.Index)).Owner
	case ItemKindEvent:
		return c.Event(EventID(id.Index)).Owner
	default:
		return NoContractID
	}
}
