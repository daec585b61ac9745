package diag

import "fmt"

// Code is a stable, 4-digit diagnostic identifier. Codes below 9000 are
// solc's own; the 9000 range is reserved for dialect/lint hints that are not
// part of the core language (kept open the way solidity's own IDs 1000-9999
// leave room for tooling-specific extensions).
type Code uint16

const (
	UnknownCode Code = 0

	// Lexical (1000-1999)
	LexInfo                      Code = 1000
	LexUnknownChar                Code = 1001
	LexUnterminatedString          Code = 1002
	LexUnterminatedBlockComment    Code = 1003
	LexBadNumberLiteral            Code = 1004
	LexTokenTooLong                Code = 1005
	LexOddHexDigits                Code = 1006
	LexInvalidEscape                Code = 1007
	LexNewlineInString               Code = 1008
	LexBareCarriageReturn            Code = 1009
	LexUnicodeInIdentifier           Code = 1010
	LexUnterminatedHexString         Code = 1011
	LexUnterminatedUnicodeString     Code = 1012

	// Syntax / parser (2000-2999)
	SynInfo                      Code = 2000
	SynUnexpectedToken            Code = 2001
	SynExpectSemicolon             Code = 2002
	SynExpectIdentifier            Code = 2003
	SynUnclosedParen               Code = 2004
	SynUnclosedBrace                Code = 2005
	SynUnclosedBracket              Code = 2006
	SynExpectType                   Code = 2007
	SynExpectExpression             Code = 2008
	SynPragmaMalformed               Code = 2009
	SynPragmaVersionMalformed        Code = 2010
	SynImportMalformed               Code = 2011
	SynVisibilityConflict            Code = 2012
	SynStateMutabilityConflict       Code = 2013
	SynDuplicateVisibility           Code = 2014
	SynDuplicateStateMutability      Code = 2015
	SynFallbackHasParams             Code = 2016
	SynReceiveHasParams              Code = 2017
	SynFallbackNotExternal           Code = 2018
	SynReceiveNotExternal            Code = 2019
	SynReceiveNotPayable             Code = 2020
	SynExpectedDataLocation          Code = 2021
	SynUnexpectedDataLocation        Code = 2022
	SynMappingKeyInvalid             Code = 2023
	SynArrayLengthNotConstant        Code = 2024
	SynFunctionBodyNotAllowed        Code = 2025
	SynModifierInvocationInvalid     Code = 2026
	SynEventIndexedTooMany           Code = 2027
	SynErrorParamInvalid             Code = 2028
	SynYulUnexpected                 Code = 2029
	SynYulExpectIdentifier           Code = 2030
	SynExpectColon                   Code = 2031
	SynExpectComma                   Code = 2032
	SynUsingForMalformed             Code = 2033
	SynOverrideListMalformed         Code = 2034

	// Semantic / resolution (3000-3999)
	SemaInfo                         Code = 3000
	SemaDuplicateDefinition          Code = 3001
	SemaUnresolvedIdentifier         Code = 3002
	SemaUnresolvedType               Code = 3003
	SemaTypeMismatch                 Code = 3004
	SemaInvalidConversion            Code = 3005
	SemaLinearizationFailed          Code = 3006
	SemaDuplicateInheritedContract   Code = 3007
	SemaCircularInheritance          Code = 3008
	SemaAbstractContractInstantiated Code = 3009
	SemaMissingOverrideSpecifier     Code = 3010
	SemaInvalidOverride              Code = 3011
	SemaOverrideMutabilityMismatch   Code = 3012
	SemaOverrideVisibilityMismatch   Code = 3013
	SemaOverrideReturnMismatch       Code = 3014
	SemaDuplicateFallback            Code = 3015
	SemaDuplicateReceive             Code = 3016
	SemaPayableFallbackNoReceive     Code = 3628 // pinned to solc's own warning 3628
	SemaConstructorVisibility        Code = 3018
	SemaInterfaceFunctionBody        Code = 3019
	SemaLibraryHasStateVars          Code = 3020
	SemaImmutableNotInitialized      Code = 3021
	SemaImmutableReassigned          Code = 3022
	SemaConstantNotConstant          Code = 3023
	SemaMappingInMemory              Code = 3024
	SemaStorageRefOutsideStorage     Code = 3025
	SemaArgumentCountMismatch        Code = 3026
	SemaNoMatchingOverload           Code = 3027
	SemaAmbiguousOverload            Code = 3028
	SemaEventNotEmittable            Code = 3029
	SemaUnusedVariable               Code = 3030
	SemaUnusedImport                 Code = 3031
	SemaShadowedDeclaration          Code = 3032
	SemaVersionPragmaUnsatisfied     Code = 3033
	SemaNoVersionPragma              Code = 3034
	SemaExperimentalPragmaUnknown    Code = 3035
	SemaAbicoderVersionUnknown       Code = 3036
	SemaImportNotFound               Code = 3037
	SemaImportCycle                  Code = 3038
	SemaRemappingAmbiguous           Code = 3039
	SemaElementaryTypeBadWidth       Code = 3040
	SemaFixedPointUnsupported        Code = 3041
	SemaExplicitTypeIntern           Code = 3042
	SemaUsingForTypeMismatch         Code = 3043
	SemaModifierNotFound             Code = 3044
	SemaModifierMissingPlaceholder   Code = 3045

	// Project / import graph (5000-5999)
	ProjInfo                Code = 5000
	ProjDuplicateSourceUnit Code = 5001
	ProjMissingFile         Code = 5002
	ProjSelfImport          Code = 5003
	ProjImportCycle         Code = 5004
	ProjInvalidImportPath   Code = 5005
	ProjRemappingConflict   Code = 5006

	// IO (4000-4999)
	IOReadFailed Code = 4001

	// Observability (6000-6999)
	ObsInfo    Code = 6000
	ObsTimings Code = 6001
)

var codeDescription = map[Code]string{
	UnknownCode:                  "unknown diagnostic",
	LexInfo:                      "lexical information",
	LexUnknownChar:               "unrecognized character",
	LexUnterminatedString:        "unterminated string literal",
	LexUnterminatedBlockComment:  "unterminated block comment",
	LexBadNumberLiteral:          "malformed number literal",
	LexTokenTooLong:              "token exceeds maximum length",
	LexOddHexDigits:              "hex literal has an odd number of digits",
	LexInvalidEscape:             "invalid escape sequence",
	LexNewlineInString:           "unescaped newline in string literal",
	LexBareCarriageReturn:        "bare carriage return in source",
	LexUnicodeInIdentifier:       "invalid unicode character in identifier",
	LexUnterminatedHexString:     "unterminated hex string literal",
	LexUnterminatedUnicodeString: "unterminated unicode string literal",

	SynInfo:                      "syntax information",
	SynUnexpectedToken:           "unexpected token",
	SynExpectSemicolon:           "expected ';'",
	SynExpectIdentifier:          "expected identifier",
	SynUnclosedParen:             "unclosed '('",
	SynUnclosedBrace:             "unclosed '{'",
	SynUnclosedBracket:           "unclosed '['",
	SynExpectType:                "expected type name",
	SynExpectExpression:          "expected expression",
	SynPragmaMalformed:           "malformed pragma directive",
	SynPragmaVersionMalformed:    "malformed version pragma",
	SynImportMalformed:           "malformed import directive",
	SynVisibilityConflict:        "conflicting visibility specifiers",
	SynStateMutabilityConflict:   "conflicting state mutability specifiers",
	SynDuplicateVisibility:       "visibility specified more than once",
	SynDuplicateStateMutability:  "state mutability specified more than once",
	SynFallbackHasParams:         "fallback function cannot take parameters",
	SynReceiveHasParams:          "receive function cannot take parameters",
	SynFallbackNotExternal:       "fallback function must be external",
	SynReceiveNotExternal:        "receive function must be external",
	SynReceiveNotPayable:         "receive function must be payable",
	SynExpectedDataLocation:      "expected a data location",
	SynUnexpectedDataLocation:    "data location not allowed here",
	SynMappingKeyInvalid:         "invalid mapping key type",
	SynArrayLengthNotConstant:    "array length must be a constant expression",
	SynFunctionBodyNotAllowed:    "function body not allowed here",
	SynModifierInvocationInvalid: "invalid modifier invocation",
	SynEventIndexedTooMany:       "too many indexed event parameters",
	SynErrorParamInvalid:         "invalid custom error parameter",
	SynYulUnexpected:             "unexpected token in inline assembly",
	SynYulExpectIdentifier:       "expected identifier in inline assembly",
	SynExpectColon:               "expected ':'",
	SynExpectComma:               "expected ','",
	SynUsingForMalformed:         "malformed using-for directive",
	SynOverrideListMalformed:     "malformed override specifier list",

	SemaInfo:                         "semantic information",
	SemaDuplicateDefinition:          "duplicate definition",
	SemaUnresolvedIdentifier:         "undeclared identifier",
	SemaUnresolvedType:               "undeclared type",
	SemaTypeMismatch:                 "type mismatch",
	SemaInvalidConversion:            "invalid type conversion",
	SemaLinearizationFailed:          "linearization of inheritance graph impossible",
	SemaDuplicateInheritedContract:   "contract inherited more than once",
	SemaCircularInheritance:          "circular inheritance",
	SemaAbstractContractInstantiated: "cannot instantiate an abstract contract",
	SemaMissingOverrideSpecifier:     "overriding function is missing 'override' specifier",
	SemaInvalidOverride:              "invalid function override",
	SemaOverrideMutabilityMismatch:   "overriding function changes state mutability",
	SemaOverrideVisibilityMismatch:   "overriding function changes visibility",
	SemaOverrideReturnMismatch:       "overriding function changes return types",
	SemaDuplicateFallback:            "fallback function already declared",
	SemaDuplicateReceive:             "receive function already declared",
	SemaPayableFallbackNoReceive:     "contract has a payable fallback function, but no receive ether function",
	SemaConstructorVisibility:        "constructor cannot be external",
	SemaInterfaceFunctionBody:        "interface functions cannot have an implementation",
	SemaLibraryHasStateVars:          "libraries cannot have non-constant state variables",
	SemaImmutableNotInitialized:      "immutable variable must be initialized",
	SemaImmutableReassigned:          "immutable variable already initialized",
	SemaConstantNotConstant:          "initializer is not a constant expression",
	SemaMappingInMemory:              "mappings cannot be declared in memory",
	SemaStorageRefOutsideStorage:     "storage reference used outside of storage context",
	SemaArgumentCountMismatch:        "wrong number of arguments",
	SemaNoMatchingOverload:           "no matching overload",
	SemaAmbiguousOverload:            "ambiguous overload resolution",
	SemaEventNotEmittable:            "not an event",
	SemaUnusedVariable:               "unused variable",
	SemaUnusedImport:                 "unused import",
	SemaShadowedDeclaration:          "declaration shadows an outer symbol",
	SemaVersionPragmaUnsatisfied:     "source file requires different compiler version",
	SemaNoVersionPragma:              "source file does not specify required compiler version",
	SemaExperimentalPragmaUnknown:    "unknown experimental feature",
	SemaAbicoderVersionUnknown:       "unknown ABI coder version",
	SemaImportNotFound:               "import not found",
	SemaImportCycle:                  "import cycle detected",
	SemaRemappingAmbiguous:           "ambiguous import remapping",
	SemaElementaryTypeBadWidth:       "invalid elementary type width",
	SemaFixedPointUnsupported:        "fixed point types are not fully supported",
	SemaExplicitTypeIntern:           "type interning invariant violated",
	SemaUsingForTypeMismatch:         "using-for directive does not apply to this type",
	SemaModifierNotFound:             "undeclared modifier",
	SemaModifierMissingPlaceholder:   "modifier is missing a placeholder statement",

	ProjInfo:                "project information",
	ProjDuplicateSourceUnit: "source unit registered twice",
	ProjMissingFile:         "source file not found",
	ProjSelfImport:          "file imports itself",
	ProjImportCycle:         "import cycle detected",
	ProjInvalidImportPath:   "invalid import path",
	ProjRemappingConflict:   "conflicting import remappings",

	IOReadFailed: "failed to read source file",

	ObsInfo:    "observability information",
	ObsTimings: "pipeline timings",
}

// ID returns the solc-style "Exxxx" wire identifier used by the JSON
// emitter.
func (c Code) ID() string {
	return fmt.Sprintf("E%04d", uint16(c))
}

func (c Code) Title() string {
	if desc, ok := codeDescription[c]; ok {
		return desc
	}
	return codeDescription[UnknownCode]
}

func (c Code) String() string {
	return fmt.Sprintf("[%s] %s", c.ID(), c.Title())
}
