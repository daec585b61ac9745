package token

import "strconv"

var keywords = map[string]Kind{
	"pragma":       KwPragma,
	"solidity":     KwSolidity,
	"abicoder":     KwAbicoder,
	"experimental": KwExperimental,
	"import":       KwImport,
	"as":           KwAs,
	"from":         KwFrom,
	"using":        KwUsing,
	"for":          KwFor,
	"global":       KwGlobal,
	"contract":     KwContract,
	"interface":    KwInterface,
	"library":      KwLibrary,
	"is":           KwIs,
	"function":     KwFunction,
	"modifier":     KwModifier,
	"event":        KwEvent,
	"error":        KwError,
	"struct":       KwStruct,
	"enum":         KwEnum,
	"type":         KwType,
	"mapping":      KwMapping,
	"constant":     KwConstant,
	"immutable":    KwImmutable,
	"anonymous":    KwAnonymous,
	"indexed":      KwIndexed,
	"override":     KwOverride,
	"virtual":      KwVirtual,
	"public":       KwPublic,
	"private":      KwPrivate,
	"internal":     KwInternal,
	"external":     KwExternal,
	"pure":         KwPure,
	"view":         KwView,
	"payable":      KwPayable,
	"nonpayable":   KwNonpayable,
	"memory":       KwMemory,
	"storage":      KwStorage,
	"calldata":     KwCalldata,
	"if":           KwIf,
	"else":         KwElse,
	"while":        KwWhile,
	"do":           KwDo,
	"break":        KwBreak,
	"continue":     KwContinue,
	"return":       KwReturn,
	"throw":        KwThrow,
	"try":          KwTry,
	"catch":        KwCatch,
	"revert":       KwRevert,
	"emit":         KwEmit,
	"assembly":     KwAssembly,
	"let":          KwLet,
	"unchecked":    KwUnchecked,
	"new":          KwNew,
	"delete":       KwDelete,
	"true":         KwTrue,
	"false":        KwFalse,
	"constructor":  KwConstructor,
	"fallback":     KwFallback,
	"receive":      KwReceive,

	"address": KwAddress,
	"bool":    KwBool,
	"string":  KwString,
	"fixed":   KwFixed,
	"ufixed":  KwUfixed,
}

// LookupKeyword returns the Kind for ident if it is a reserved word.
// Elementary numeric families (uintN, intN, bytesN, fixedMxN, ufixedMxN)
// are matched separately by isElementaryFamily since they are not a finite
// set of literal strings.
func LookupKeyword(ident string) (Kind, bool) {
	if k, ok := keywords[ident]; ok {
		return k, true
	}
	if k, ok := elementaryFamilyKeyword(ident); ok {
		return k, true
	}
	return Invalid, false
}

// elementaryFamilyKeyword recognizes the bytesN/intN/uintN/fixedMxN/ufixedMxN
// families, whose member names are too numerous to enumerate in the map
// above. Bit-width/precision validity (e.g. intN requires 8 <= N <= 256 and
// N % 8 == 0) is NOT checked here -- the lexer only needs to know "this is
// an elementary type keyword". No later stage checks it either: the parser
// ignores a bad width suffix and no pass emits SemaElementaryTypeBadWidth.
func elementaryFamilyKeyword(ident string) (Kind, bool) {
	switch {
	case ident == "bytes":
		return KwBytes, true
	case ident == "int":
		return KwInt, true
	case ident == "uint":
		return KwUint, true
	case hasDigitSuffix(ident, "bytes"):
		return KwBytes, true
	case hasDigitSuffix(ident, "int"):
		return KwInt, true
	case hasDigitSuffix(ident, "uint"):
		return KwUint, true
	case isFixedFamily(ident, "fixed"):
		return KwFixed, true
	case isFixedFamily(ident, "ufixed"):
		return KwUfixed, true
	}
	return Invalid, false
}

func hasDigitSuffix(ident, prefix string) bool {
	if len(ident) <= len(prefix) || ident[:len(prefix)] != prefix {
		return false
	}
	_, err := strconv.Atoi(ident[len(prefix):])
	return err == nil
}

// isFixedFamily matches fixedMxN / ufixedMxN, e.g. "fixed128x18".
func isFixedFamily(ident, prefix string) bool {
	if len(ident) <= len(prefix) || ident[:len(prefix)] != prefix {
		return false
	}
	rest := ident[len(prefix):]
	for i := 0; i < len(rest); i++ {
		if rest[i] == 'x' {
			_, err1 := strconv.Atoi(rest[:i])
			_, err2 := strconv.Atoi(rest[i+1:])
			return err1 == nil && err2 == nil
		}
	}
	return false
}
