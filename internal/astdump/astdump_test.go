package astdump

import (
	"bytes"
	"strings"
	"testing"

	"github.com/sol-lang/solc/internal/ast"
	"github.com/sol-lang/solc/internal/diag"
	"github.com/sol-lang/solc/internal/lexer"
	"github.com/sol-lang/solc/internal/parser"
	"github.com/sol-lang/solc/internal/source"
)

func parseSourceFile(t *testing.T, input string) (*ast.SourceUnit, *ast.Builder) {
	t.Helper()
	sm := source.NewSourceMap()
	fileID := sm.AddVirtual("test.sol", []byte(input))
	file := sm.Get(fileID)

	bag := diag.NewBag(100)
	ctx := diag.NewDiagCtxt(bag)
	lx := lexer.New(file, lexer.Options{})
	b := ast.NewBuilder(ast.Hints{}, nil)

	unit := parser.ParseFile(fileID, lx, b, parser.Options{MaxErrors: 100, Diags: ctx})
	return unit, b
}

const sampleContract = `
pragma solidity ^0.8.20;

import "./IERC20.sol";

contract Token is IERC20 {
    uint256 public totalSupply;
    mapping(address => uint256) private balances;

    event Transfer(address indexed from, address indexed to, uint256 value);

    struct Account {
        uint256 balance;
        bool frozen;
    }

    function transfer(address to, uint256 amount) public returns (bool) {
        balances[msg.sender] -= amount;
        balances[to] += amount;
        return true;
    }
}
`

func TestPrintCoversTopLevelItems(t *testing.T) {
	unit, b := parseSourceFile(t, sampleContract)

	var buf bytes.Buffer
	New(&buf, b, b.Interner).Print(unit)
	output := buf.String()

	for _, want := range []string{
		"Pragma solidity",
		`Import "./IERC20.sol"`,
		"contract Token is IERC20",
		"Variable uint256 totalSupply public",
		"Event Transfer",
		"Struct Account",
		"Function transfer public nonpayable",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("expected output to contain %q, got:\n%s", want, output)
		}
	}
}

func TestTypeStringRendersCompositeTypes(t *testing.T) {
	src := `
contract C {
    mapping(address => uint256) public m;
    uint256[] public arr;
}
`
	unit, b := parseSourceFile(t, src)

	var buf bytes.Buffer
	New(&buf, b, b.Interner).Print(unit)
	output := buf.String()

	if !strings.Contains(output, "mapping(address => uint256)") {
		t.Errorf("expected mapping type rendering, got:\n%s", output)
	}
	if !strings.Contains(output, "uint256[]") {
		t.Errorf("expected array type rendering, got:\n%s", output)
	}
}
