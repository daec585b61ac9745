package source

import (
	"os"
	"testing"
)

func TestSourceMapVersioning(t *testing.T) {
	sm := NewSourceMap()

	id1 := sm.Add("test.sol", []byte("hello world"), 0)
	if id1 != 0 {
		t.Errorf("expected first FileID to be 0, got %d", id1)
	}

	latestID, exists := sm.GetLatest("test.sol")
	if !exists || latestID != id1 {
		t.Errorf("GetLatest after first Add = %d,%v", latestID, exists)
	}

	id2 := sm.Add("test.sol", []byte("hello universe"), 0)
	if id2 != 1 {
		t.Errorf("expected second FileID to be 1, got %d", id2)
	}
	latestID, exists = sm.GetLatest("test.sol")
	if !exists || latestID != id2 {
		t.Errorf("GetLatest after second Add = %d,%v", latestID, exists)
	}

	f1, f2 := sm.Get(id1), sm.Get(id2)
	if string(f1.Content) != "hello world" || string(f2.Content) != "hello universe" {
		t.Errorf("unexpected file contents: %q, %q", f1.Content, f2.Content)
	}
	if f1.Path != "test.sol" || f2.Path != "test.sol" {
		t.Error("expected both files to share a path")
	}
	// Spans must be disjoint even for two registrations of the same path.
	if f1.Span().Overlaps(f2.Span()) {
		t.Error("expected disjoint spans for successive registrations")
	}
}

func TestSourceMapLineIdx(t *testing.T) {
	sm := NewSourceMap()
	id := sm.AddVirtual("a.sol", []byte("a\nb\n"))
	f := sm.Get(id)
	want := []uint32{1, 3}
	if len(f.LineIdx) != len(want) || f.LineIdx[0] != want[0] || f.LineIdx[1] != want[1] {
		t.Errorf("LineIdx = %v, want %v", f.LineIdx, want)
	}
	if f.Flags&FileVirtual == 0 {
		t.Error("expected FileVirtual flag")
	}
}

func TestCRLFNormalization(t *testing.T) {
	normalized, changed := normalizeCRLF([]byte("a\r\nb\r\n"))
	if !changed || string(normalized) != "a\nb\n" {
		t.Errorf("normalizeCRLF = %q, %v", normalized, changed)
	}
}

func TestBOMRemoval(t *testing.T) {
	withoutBOM, hadBOM := removeBOM([]byte{0xEF, 0xBB, 0xBF, 'x', '\n'})
	if !hadBOM || string(withoutBOM) != "x\n" {
		t.Errorf("removeBOM = %q, %v", withoutBOM, hadBOM)
	}
}

func TestSourceMapResolve(t *testing.T) {
	sm := NewSourceMap()
	id := sm.AddVirtual("test.sol", []byte("\xCE\xB1\n")) // "α\n", 2-byte rune
	f := sm.Get(id)
	span := Span{Lo: f.StartPos + 0, Hi: f.StartPos + 1}
	start, end, ok := sm.Resolve(span)
	if !ok {
		t.Fatal("Resolve failed")
	}
	if start != (LineCol{Line: 1, Col: 1}) || end != (LineCol{Line: 1, Col: 2}) {
		t.Errorf("Resolve = %+v, %+v", start, end)
	}
}

func TestSourceMapEdgeCases(t *testing.T) {
	sm := NewSourceMap()
	id1 := sm.AddVirtual("empty.sol", []byte{})
	if len(sm.Get(id1).LineIdx) != 0 {
		t.Error("expected empty LineIdx for empty file")
	}
	id2 := sm.AddVirtual("only_newline.sol", []byte("\n"))
	f2 := sm.Get(id2)
	if len(f2.LineIdx) != 1 || f2.LineIdx[0] != 0 {
		t.Errorf("LineIdx = %v, want [0]", f2.LineIdx)
	}
}

func TestSourceMapLoad(t *testing.T) {
	sm := NewSourceMap()
	tmp, err := os.CreateTemp("", "testdata")
	if err != nil {
		t.Fatalf("CreateTemp: %v", err)
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.WriteString("a\nb\n"); err != nil {
		t.Fatalf("WriteString: %v", err)
	}
	if err := tmp.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	id, err := sm.Load(tmp.Name())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	f := sm.Get(id)
	if string(f.Content) != "a\nb\n" {
		t.Errorf("content = %q", f.Content)
	}
	if f.LineIdx[0] != 1 || f.LineIdx[1] != 3 {
		t.Errorf("LineIdx = %v", f.LineIdx)
	}
}

func TestSourceMapFileContaining(t *testing.T) {
	sm := NewSourceMap()
	idA := sm.AddVirtual("a.sol", []byte("contract A {}"))
	idB := sm.AddVirtual("b.sol", []byte("contract B {}"))

	spanA := sm.Get(idA).Span()
	spanB := sm.Get(idB).Span()

	f, ok := sm.FileContaining(spanA.Lo)
	if !ok || f.ID != idA {
		t.Errorf("FileContaining(spanA.Lo) = %v, %v", f, ok)
	}
	f, ok = sm.FileContaining(spanB.Lo)
	if !ok || f.ID != idB {
		t.Errorf("FileContaining(spanB.Lo) = %v, %v", f, ok)
	}
}
