package token

import "testing"

func TestLookupKeyword_Positive(t *testing.T) {
	cases := map[string]Kind{
		"pragma":      KwPragma,
		"contract":    KwContract,
		"interface":   KwInterface,
		"library":     KwLibrary,
		"function":    KwFunction,
		"modifier":    KwModifier,
		"payable":     KwPayable,
		"memory":      KwMemory,
		"true":        KwTrue,
		"false":       KwFalse,
		"fallback":    KwFallback,
		"receive":     KwReceive,
		"address":     KwAddress,
		"bool":        KwBool,
		"string":      KwString,
		"bytes":       KwBytes,
		"bytes32":     KwBytes,
		"bytes1":      KwBytes,
		"int":         KwInt,
		"int8":        KwInt,
		"int256":      KwInt,
		"uint":        KwUint,
		"uint256":     KwUint,
		"fixed":       KwFixed,
		"fixed128x18": KwFixed,
		"ufixed":      KwUfixed,
	}

	for lexeme, want := range cases {
		got, ok := LookupKeyword(lexeme)
		if !ok {
			t.Fatalf("LookupKeyword(%q) = !ok, want %v", lexeme, want)
		}
		if got != want {
			t.Fatalf("LookupKeyword(%q) = %v, want %v", lexeme, got, want)
		}
	}
}

func TestLookupKeyword_Negative(t *testing.T) {
	notKw := []string{
		"Contract", "TRUE", "Payable", // case matters
		"byte",    // not a real Solidity keyword (removed alias)
		"intfoo",  // not a digit suffix
		"bytesxy", // not a digit suffix
		"identifier", "toString", "Ownable",
	}
	for _, s := range notKw {
		if _, ok := LookupKeyword(s); ok {
			t.Fatalf("LookupKeyword(%q) returned ok=true, want false", s)
		}
	}
}
