package parser

import (
	"github.com/sol-lang/solc/internal/ast"
	"github.com/sol-lang/solc/internal/diag"
	"github.com/sol-lang/solc/internal/lexer"
	"github.com/sol-lang/solc/internal/source"
)

// makeTestParser builds a parser over a virtual source file, wiring a
// collecting diagnostic bag so tests can assert on emitted errors.
func makeTestParser(input string) (*Parser, *ast.Builder, *diag.Bag) {
	sm := source.NewSourceMap()
	fileID := sm.AddVirtual("test.sol", []byte(input))
	file := sm.Get(fileID)

	bag := diag.NewBag(100)
	ctx := diag.NewDiagCtxt(bag)

	lx := lexer.New(file, lexer.Options{})
	b := ast.NewBuilder(ast.Hints{}, nil)

	p := &Parser{
		lx:       lx,
		b:        b,
		file:     fileID,
		opts:     Options{MaxErrors: 100, Diags: ctx},
		lastSpan: lx.EmptySpan(),
	}
	return p, b, bag
}
