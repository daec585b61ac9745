package resolvefs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sol-lang/solc/internal/source"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
}

func TestResolve_SiblingRelative(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "Main.sol"), "contract Main {}")
	writeFile(t, filepath.Join(dir, "Lib.sol"), "contract Lib {}")

	sm := source.NewSourceMap()
	mainID, err := sm.Load(filepath.Join(dir, "Main.sol"))
	if err != nil {
		t.Fatalf("Load(Main.sol): %v", err)
	}
	mainFile := sm.Get(mainID)

	r := NewFileResolver(sm)
	id, err := r.Resolve(`"./Lib.sol"`, mainFile)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if sm.Get(id).Path != filepath.Join(dir, "Lib.sol") {
		t.Fatalf("resolved to %q, want Lib.sol", sm.Get(id).Path)
	}
}

func TestResolve_SearchPath(t *testing.T) {
	dir := t.TempDir()
	libDir := filepath.Join(dir, "node_modules")
	writeFile(t, filepath.Join(dir, "Main.sol"), "contract Main {}")
	writeFile(t, filepath.Join(libDir, "IERC20.sol"), "interface IERC20 {}")

	sm := source.NewSourceMap()
	mainID, _ := sm.Load(filepath.Join(dir, "Main.sol"))
	mainFile := sm.Get(mainID)

	r := NewFileResolver(sm)
	r.AddSearchPath(libDir)
	id, err := r.Resolve(`"IERC20.sol"`, mainFile)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if sm.Get(id).Path != filepath.Join(libDir, "IERC20.sol") {
		t.Fatalf("resolved to %q, want IERC20.sol under search path", sm.Get(id).Path)
	}
}

func TestResolve_Remapping(t *testing.T) {
	dir := t.TempDir()
	vendored := filepath.Join(dir, "lib", "openzeppelin-contracts", "contracts", "token", "ERC20.sol")
	writeFile(t, filepath.Join(dir, "Main.sol"), "contract Main {}")
	writeFile(t, vendored, "contract ERC20 {}")

	sm := source.NewSourceMap()
	mainID, _ := sm.Load(filepath.Join(dir, "Main.sol"))
	mainFile := sm.Get(mainID)

	r := NewFileResolver(sm)
	rm, err := ParseRemapping("@openzeppelin/=" + filepath.Join(dir, "lib", "openzeppelin-contracts") + "/")
	if err != nil {
		t.Fatalf("ParseRemapping: %v", err)
	}
	r.AddRemapping(rm)

	id, err := r.Resolve(`"@openzeppelin/contracts/token/ERC20.sol"`, mainFile)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if sm.Get(id).Path != vendored {
		t.Fatalf("resolved to %q, want %q", sm.Get(id).Path, vendored)
	}
}

func TestResolve_LongestContextWinsOverLongestPrefix(t *testing.T) {
	dir := t.TempDir()
	generic := filepath.Join(dir, "generic", "Token.sol")
	scoped := filepath.Join(dir, "scoped", "Token.sol")
	writeFile(t, filepath.Join(dir, "app", "Main.sol"), "contract Main {}")
	writeFile(t, generic, "contract GenericToken {}")
	writeFile(t, scoped, "contract ScopedToken {}")

	sm := source.NewSourceMap()
	mainID, _ := sm.Load(filepath.Join(dir, "app", "Main.sol"))
	mainFile := sm.Get(mainID)

	r := NewFileResolver(sm)
	global, _ := ParseRemapping("lib/Token.sol=" + generic)
	r.AddRemapping(global)
	scopedRemap, _ := ParseRemapping(filepath.Join(dir, "app") + ":lib/=" + filepath.Join(dir, "scoped") + "/")
	r.AddRemapping(scopedRemap)

	id, err := r.Resolve(`"lib/Token.sol"`, mainFile)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if sm.Get(id).Path != scoped {
		t.Fatalf("resolved to %q, want the context-scoped remapping %q", sm.Get(id).Path, scoped)
	}
}

func TestResolve_NotFound(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "Main.sol"), "contract Main {}")

	sm := source.NewSourceMap()
	mainID, _ := sm.Load(filepath.Join(dir, "Main.sol"))
	mainFile := sm.Get(mainID)

	r := NewFileResolver(sm)
	_, err := r.Resolve(`"./Missing.sol"`, mainFile)
	var notFound *NotFoundError
	if err == nil {
		t.Fatalf("expected a not-found error")
	}
	if !errorsAs(err, &notFound) {
		t.Fatalf("expected *NotFoundError, got %T: %v", err, err)
	}
}

func TestResolve_DedupByPath(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "Main.sol"), "contract Main {}")
	writeFile(t, filepath.Join(dir, "Lib.sol"), "contract Lib {}")

	sm := source.NewSourceMap()
	mainID, _ := sm.Load(filepath.Join(dir, "Main.sol"))
	mainFile := sm.Get(mainID)

	r := NewFileResolver(sm)
	id1, err := r.Resolve(`"./Lib.sol"`, mainFile)
	if err != nil {
		t.Fatalf("Resolve (1st): %v", err)
	}
	id2, err := r.Resolve(`"./Lib.sol"`, mainFile)
	if err != nil {
		t.Fatalf("Resolve (2nd): %v", err)
	}
	if id1 != id2 {
		t.Fatalf("expected the same FileID for repeated resolution of the same path, got %d and %d", id1, id2)
	}
}

func TestUnquoteImportPath(t *testing.T) {
	cases := []struct {
		raw  string
		want string
	}{
		{`"./Lib.sol"`, "./Lib.sol"},
		{`'./Lib.sol'`, "./Lib.sol"},
		{`"quote\"inside.sol"`, `quote"inside.sol`},
	}
	for _, c := range cases {
		got, err := unquoteImportPath(c.raw)
		if err != nil {
			t.Fatalf("unquoteImportPath(%q): %v", c.raw, err)
		}
		if got != c.want {
			t.Fatalf("unquoteImportPath(%q) = %q, want %q", c.raw, got, c.want)
		}
	}
}

// errorsAs avoids importing "errors" just for this one assertion helper.
func errorsAs(err error, target **NotFoundError) bool {
	if nf, ok := err.(*NotFoundError); ok {
		*target = nf
		return true
	}
	return false
}
