package parser

import (
	"github.com/sol-lang/solc/internal/ast"
	"github.com/sol-lang/solc/internal/token"
)

// parseItem parses one top-level declaration: a pragma, import, using
// directive, contract/interface/library, free function, or any of the
// declaration forms Solidity also allows at file scope (struct, enum, UDVT,
// error, event, and even a file-level constant variable).
func (p *Parser) parseItem() (ast.ItemID, bool) {
	switch p.lx.Peek().Kind {
	case token.KwPragma:
		return p.parsePragma()
	case token.KwImport:
		return p.parseImport()
	case token.KwUsing:
		return p.parseUsing()
	case token.KwContract, token.KwInterface, token.KwLibrary:
		return p.parseContract()
	default:
		if p.atAbstractKeyword() {
			return p.parseContract()
		}
	}

	switch p.lx.Peek().Kind {
	case token.KwFunction:
		return p.parseFunctionLike()
	case token.KwStruct:
		return p.parseStruct()
	case token.KwEnum:
		return p.parseEnum()
	case token.KwType:
		return p.parseUdvt()
	case token.KwError:
		return p.parseError()
	case token.KwEvent:
		return p.parseEvent()
	default:
		return p.parseStateVariable()
	}
}
