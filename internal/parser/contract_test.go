package parser

import (
	"testing"

	"github.com/sol-lang/solc/internal/ast"
	"github.com/sol-lang/solc/internal/diag"
	"github.com/sol-lang/solc/internal/lexer"
	"github.com/sol-lang/solc/internal/source"
)

func parseSourceFile(t *testing.T, input string) (*ast.SourceUnit, *ast.Builder, *diag.Bag) {
	t.Helper()
	sm := source.NewSourceMap()
	fileID := sm.AddVirtual("test.sol", []byte(input))
	file := sm.Get(fileID)

	bag := diag.NewBag(100)
	ctx := diag.NewDiagCtxt(bag)
	lx := lexer.New(file, lexer.Options{})
	b := ast.NewBuilder(ast.Hints{}, nil)

	unit := ParseFile(fileID, lx, b, Options{MaxErrors: 100, Diags: ctx})
	return unit, b, bag
}

const sampleContract = `
pragma solidity ^0.8.20;

import "./IERC20.sol";

contract Token is IERC20 {
    uint256 public totalSupply;
    mapping(address => uint256) private balances;

    event Transfer(address indexed from, address indexed to, uint256 value);

    constructor(uint256 initialSupply) {
        totalSupply = initialSupply;
        balances[msg.sender] = initialSupply;
    }

    function transfer(address to, uint256 amount) public returns (bool) {
        require(balances[msg.sender] >= amount, "insufficient balance");
        balances[msg.sender] -= amount;
        balances[to] += amount;
        emit Transfer(msg.sender, to, amount);
        return true;
    }
}
`

func TestParseFile_SampleContract(t *testing.T) {
	unit, b, bag := parseSourceFile(t, sampleContract)
	if bag.Len() != 0 {
		for _, d := range bag.Items() {
			t.Logf("diagnostic: [%s] %s", d.Code.ID(), d.Message)
		}
		t.Fatalf("unexpected diagnostics: %d", bag.Len())
	}
	if len(unit.Items) != 3 {
		t.Fatalf("expected 3 top-level items (pragma, import, contract), got %d", len(unit.Items))
	}

	contractItem := unit.Items[2]
	decl, ok := b.Items.Contract(contractItem)
	if !ok {
		t.Fatalf("expected the third item to be a contract")
	}
	if b.Interner.MustLookup(decl.Name) != "Token" {
		t.Fatalf("contract name = %q, want %q", b.Interner.MustLookup(decl.Name), "Token")
	}
	if len(decl.Inherits) != 1 {
		t.Fatalf("expected 1 inheritance specifier, got %d", len(decl.Inherits))
	}

	items := b.Items.ContractItems(decl)
	var sawFunction, sawEvent, sawVariable bool
	for _, ci := range items {
		switch ci.Kind {
		case ast.ItemFunction:
			sawFunction = true
		case ast.ItemEvent:
			sawEvent = true
		case ast.ItemVariable:
			sawVariable = true
		}
	}
	if !sawFunction || !sawEvent || !sawVariable {
		t.Fatalf("expected function, event, and variable items in contract body, got kinds: %+v", items)
	}
}

func TestParseFile_RecoversFromMalformedItem(t *testing.T) {
	src := `
contract A {
    uint256 public x
    function f() public {}
}
`
	unit, b, bag := parseSourceFile(t, src)
	if bag.Len() == 0 {
		t.Fatalf("expected a diagnostic for the missing semicolon after 'x'")
	}
	if len(unit.Items) != 1 {
		t.Fatalf("expected the contract item to still be registered despite the error, got %d items", len(unit.Items))
	}
	decl, ok := b.Items.Contract(unit.Items[0])
	if !ok {
		t.Fatalf("expected a contract item")
	}
	items := b.Items.ContractItems(decl)
	var sawFunction bool
	for _, ci := range items {
		if ci.Kind == ast.ItemFunction {
			sawFunction = true
		}
	}
	if !sawFunction {
		t.Fatalf("expected recovery to still parse the following function declaration")
	}
}
