package ast

import (
	"github.com/sol-lang/solc/internal/semver"
	"github.com/sol-lang/solc/internal/source"
)

// PragmaKind distinguishes the recognized pragma shapes.
type PragmaKind uint8

const (
	// PragmaSolidityVersion is `pragma solidity <req>;`.
	PragmaSolidityVersion PragmaKind = iota
	// PragmaAbicoder is `pragma abicoder v1|v2;`.
	PragmaAbicoder
	// PragmaExperimental is `pragma experimental ABIEncoderV2|SMTChecker;`.
	PragmaExperimental
	// PragmaUnrecognized is any other `pragma <ident> <tokens...>;`, kept
	// verbatim so the emitter can still echo it and the checker can warn.
	PragmaUnrecognized
)

// PragmaItem is the payload for an ItemPragma.
type PragmaItem struct {
	Kind PragmaKind

	// Version holds the parsed requirement when Kind == PragmaSolidityVersion.
	Version semver.Req

	// AbicoderVersion is 1 or 2 when Kind == PragmaAbicoder.
	AbicoderVersion uint8

	// Name is the first pragma token (e.g. "experimental", or the unrecognized
	// pragma's identifier).
	Name source.Symbol
	// Tokens is the verbatim token text following Name, used for
	// PragmaExperimental's argument and for PragmaUnrecognized's body.
	Tokens []source.Symbol
}

// Pragma returns the PragmaItem for id, or nil/false if id is not a pragma.
func (i *Items) Pragma(id ItemID) (*PragmaItem, bool) {
	item := i.Get(id)
	if item == nil || item.Kind != ItemPragma {
		return nil, false
	}
	return i.Pragmas.Get(uint32(item.Payload)), true
}

// NewPragma allocates a pragma item.
func (i *Items) NewPragma(p PragmaItem, span source.Span) ItemID {
	payload := PayloadID(i.Pragmas.Allocate(p))
	return i.New(ItemPragma, span, payload)
}
