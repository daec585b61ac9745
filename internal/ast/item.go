package ast

import "github.com/sol-lang/solc/internal/source"

// ItemKind enumerates the top-level item variants a SourceUnit (or a
// contract body, via ContractItem) can hold.
type ItemKind uint8

const (
	// ItemPragma is a `pragma ...;` directive.
	ItemPragma ItemKind = iota
	// ItemImport is an `import ...;` directive.
	ItemImport
	// ItemUsing is a `using ... for ...;` directive.
	ItemUsing
	// ItemContract is a contract/interface/library/abstract-contract declaration.
	ItemContract
	// ItemFunction is a function/constructor/fallback/receive/modifier declaration.
	ItemFunction
	// ItemVariable is a contract-level state variable declaration.
	ItemVariable
	// ItemStruct is a `struct` declaration.
	ItemStruct
	// ItemEnum is an `enum` declaration.
	ItemEnum
	// ItemUdvt is a `type Name is ...;` user-defined value type declaration.
	ItemUdvt
	// ItemError is an `error` declaration.
	ItemError
	// ItemEvent is an `event` declaration.
	ItemEvent
)

func (k ItemKind) String() string {
	switch k {
	case ItemPragma:
		return "pragma"
	case ItemImport:
		return "import"
	case ItemUsing:
		return "using"
	case ItemContract:
		return "contract"
	case ItemFunction:
		return "function"
	case ItemVariable:
		return "variable"
	case ItemStruct:
		return "struct"
	case ItemEnum:
		return "enum"
	case ItemUdvt:
		return "udvt"
	case ItemError:
		return "error"
	case ItemEvent:
		return "event"
	default:
		return "unknown"
	}
}

// Item is a top-level (or contract-body) declaration node: a kind tag, its
// span, and an indirection into the per-kind payload arena that actually
// holds its data.
type Item struct {
	Kind    ItemKind
	Span    source.Span
	Payload PayloadID
}

// Items owns the Item arena plus one payload arena per ItemKind (and the
// auxiliary arenas those payloads index into, such as Params or
// ContractItemsArena).
type Items struct {
	Arena *Arena[Item]

	Pragmas             *Arena[PragmaItem]
	Imports             *Arena[ImportItem]
	ImportSymbolsArena  *Arena[ImportSymbol]
	Usings              *Arena[UsingItem]
	UsingFunctionsArena *Arena[UsingFunction]
	Contracts           *Arena[ContractDecl]
	ContractItemsArena  *Arena[ContractItem]
	Functions           *Arena[FunctionDecl]
	Params              *Arena[Param]
	Variables           *Arena[VariableDecl]
	Structs             *Arena[StructDecl]
	StructFieldsArena   *Arena[StructField]
	Enums               *Arena[EnumDecl]
	EnumVariantsArena   *Arena[EnumVariant]
	Udvts               *Arena[UdvtDecl]
	Errors              *Arena[ErrorDecl]
	Events              *Arena[EventDecl]
}

// NewItems creates an Items table with per-kind arenas sized to capHint (or a
// default of 1<<8 if capHint is 0).
func NewItems(capHint uint) *Items {
	if capHint == 0 {
		capHint = 1 << 8
	}
	return &Items{
		Arena:               NewArena[Item](capHint),
		Pragmas:             NewArena[PragmaItem](capHint / 8),
		Imports:             NewArena[ImportItem](capHint / 4),
		ImportSymbolsArena:  NewArena[ImportSymbol](capHint / 4),
		Usings:              NewArena[UsingItem](capHint / 8),
		UsingFunctionsArena: NewArena[UsingFunction](capHint / 8),
		Contracts:           NewArena[ContractDecl](capHint / 4),
		ContractItemsArena:  NewArena[ContractItem](capHint),
		Functions:           NewArena[FunctionDecl](capHint),
		Params:              NewArena[Param](capHint),
		Variables:           NewArena[VariableDecl](capHint),
		Structs:             NewArena[StructDecl](capHint / 4),
		StructFieldsArena:   NewArena[StructField](capHint / 2),
		Enums:               NewArena[EnumDecl](capHint / 8),
		EnumVariantsArena:   NewArena[EnumVariant](capHint / 4),
		Udvts:               NewArena[UdvtDecl](capHint / 8),
		Errors:              NewArena[ErrorDecl](capHint / 4),
		Events:              NewArena[EventDecl](capHint / 4),
	}
}

// New allocates an Item node; per-kind constructors (NewFunction, NewContract,
// ...) call this after allocating their payload.
func (i *Items) New(kind ItemKind, span source.Span, payloadID PayloadID) ItemID {
	return ItemID(i.Arena.Allocate(Item{Kind: kind, Span: span, Payload: payloadID}))
}

// Get returns the item with the given ID.
func (i *Items) Get(id ItemID) *Item { return i.Arena.Get(uint32(id)) }
