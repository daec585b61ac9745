package ast

type (
	// ItemID identifies a top-level item within a SourceUnit.
	ItemID uint32
	// StmtID identifies a statement.
	StmtID uint32
	// ExprID identifies an expression.
	ExprID uint32
	// TypeID identifies a type expression (distinct from internal/types.TypeID,
	// which identifies an interned, semantically resolved type).
	TypeID uint32
	// PayloadID indexes auxiliary per-kind payload data for an Item/Stmt/Expr/Type.
	PayloadID uint32
	// ParamID identifies one parameter of a function, error, or event.
	ParamID uint32
	// ModifierID identifies a modifier invocation attached to a function.
	ModifierID uint32
	// InheritID identifies one entry of a contract's inheritance list.
	InheritID uint32
	// ContractItemID identifies a declaration nested inside a contract body.
	ContractItemID uint32
	// UsingID identifies one `using ... for ...` directive.
	UsingID uint32
	// ImportSymbolID identifies one imported name in a selective import.
	ImportSymbolID uint32
	// YulStmtID identifies a statement inside an inline assembly block.
	YulStmtID uint32
	// YulExprID identifies an expression inside an inline assembly block.
	YulExprID uint32
	// YulBlockID identifies a brace-delimited Yul statement list.
	YulBlockID uint32
)

const (
	// NoItemID indicates no item.
	NoItemID ItemID = 0
	// NoStmtID indicates no statement.
	NoStmtID StmtID = 0
	// NoExprID indicates no expression.
	NoExprID ExprID = 0
	// NoTypeID indicates no type expression.
	NoTypeID TypeID = 0
	// NoPayloadID indicates no payload.
	NoPayloadID PayloadID = 0
	// NoParamID indicates no parameter.
	NoParamID ParamID = 0
	// NoModifierID indicates no modifier invocation.
	NoModifierID ModifierID = 0
	// NoInheritID indicates no inheritance entry.
	NoInheritID InheritID = 0
	// NoContractItemID indicates no contract item.
	NoContractItemID ContractItemID = 0
	// NoUsingID indicates no using directive.
	NoUsingID UsingID = 0
	// NoImportSymbolID indicates no imported symbol.
	NoImportSymbolID ImportSymbolID = 0
	// NoYulStmtID indicates no Yul statement.
	NoYulStmtID YulStmtID = 0
	// NoYulExprID indicates no Yul expression.
	NoYulExprID YulExprID = 0
	// NoYulBlockID indicates no Yul block.
	NoYulBlockID YulBlockID = 0
)

// IsValid reports whether id refers to an allocated item (non-zero).
func (id ItemID) IsValid() bool { return id != NoItemID }

// IsValid reports whether id refers to an allocated statement (non-zero).
func (id StmtID) IsValid() bool { return id != NoStmtID }

// IsValid reports whether id refers to an allocated expression (non-zero).
func (id ExprID) IsValid() bool { return id != NoExprID }

// IsValid reports whether id refers to an allocated type expression (non-zero).
func (id TypeID) IsValid() bool { return id != NoTypeID }

// IsValid reports whether id refers to allocated payload data (non-zero).
func (id PayloadID) IsValid() bool { return id != NoPayloadID }

// IsValid reports whether id refers to an allocated parameter (non-zero).
func (id ParamID) IsValid() bool { return id != NoParamID }

// IsValid reports whether id refers to an allocated modifier invocation (non-zero).
func (id ModifierID) IsValid() bool { return id != NoModifierID }

// IsValid reports whether id refers to an allocated inheritance entry (non-zero).
func (id InheritID) IsValid() bool { return id != NoInheritID }

// IsValid reports whether id refers to an allocated contract item (non-zero).
func (id ContractItemID) IsValid() bool { return id != NoContractItemID }

// IsValid reports whether id refers to an allocated using directive (non-zero).
func (id UsingID) IsValid() bool { return id != NoUsingID }

// IsValid reports whether id refers to an allocated imported symbol (non-zero).
func (id ImportSymbolID) IsValid() bool { return id != NoImportSymbolID }

// IsValid reports whether id refers to an allocated Yul statement (non-zero).
func (id YulStmtID) IsValid() bool { return id != NoYulStmtID }

// IsValid reports whether id refers to an allocated Yul expression (non-zero).
func (id YulExprID) IsValid() bool { return id != NoYulExprID }

// IsValid reports whether id refers to an allocated Yul block (non-zero).
func (id YulBlockID) IsValid() bool { return id != NoYulBlockID }
