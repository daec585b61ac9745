package lexer

import (
	"testing"

	"github.com/sol-lang/solc/internal/source"
)

func testFile(content string) *source.SourceFile {
	sm := source.NewSourceMap()
	id := sm.Add("test.sol", []byte(content), 0)
	return sm.Get(id)
}

func TestSequentialReading(t *testing.T) {
	file := testFile("a\nb")
	cursor := NewCursor(file)

	if cursor.EOF() {
		t.Error("expected not EOF at start")
	}
	if cursor.Peek() != 'a' {
		t.Errorf("expected peek 'a', got %c", cursor.Peek())
	}
	if b := cursor.Bump(); b != 'a' {
		t.Errorf("expected bump 'a', got %c", b)
	}

	if cursor.Peek() != '\n' {
		t.Errorf("expected peek '\\n', got %c", cursor.Peek())
	}
	if b := cursor.Bump(); b != '\n' {
		t.Errorf("expected bump '\\n', got %c", b)
	}

	if cursor.Peek() != 'b' {
		t.Errorf("expected peek 'b', got %c", cursor.Peek())
	}
	if b := cursor.Bump(); b != 'b' {
		t.Errorf("expected bump 'b', got %c", b)
	}

	if !cursor.EOF() {
		t.Error("expected EOF at end")
	}
	if cursor.Peek() != 0 {
		t.Errorf("expected peek 0 at EOF, got %c", cursor.Peek())
	}
	if b := cursor.Bump(); b != 0 {
		t.Errorf("expected bump 0 at EOF, got %c", b)
	}
}

func TestPeek2(t *testing.T) {
	file := testFile("abc")
	cursor := NewCursor(file)

	b0, b1, ok := cursor.Peek2()
	if !ok || b0 != 'a' || b1 != 'b' {
		t.Errorf("expected Peek2('a','b'), got (%c,%c,%v)", b0, b1, ok)
	}

	cursor.Bump() // 'a'
	b0, b1, ok = cursor.Peek2()
	if !ok || b0 != 'b' || b1 != 'c' {
		t.Errorf("expected Peek2('b','c'), got (%c,%c,%v)", b0, b1, ok)
	}

	cursor.Bump() // 'b'
	b0, b1, ok = cursor.Peek2()
	if ok {
		t.Error("expected Peek2 to fail at end")
	}
	if b0 != 0 || b1 != 0 {
		t.Errorf("expected Peek2(0,0) at end, got (%c,%c)", b0, b1)
	}
}

func TestSpanFromGlobalOffset(t *testing.T) {
	// Two files registered in the same SourceMap: spans must carry the
	// second file's StartPos offset, not a file-relative 0-based index.
	sm := source.NewSourceMap()
	sm.Add("a.sol", []byte("contract A {}"), 0)
	id2 := sm.Add("b.sol", []byte("contract B {}"), 0)
	file2 := sm.Get(id2)

	cursor := NewCursor(file2)
	mark := cursor.Mark()
	for i := 0; i < 8; i++ {
		cursor.Bump() // "contract"
	}
	sp := cursor.SpanFrom(mark)

	if sp.Lo != file2.StartPos {
		t.Fatalf("expected span.Lo == file2.StartPos (%d), got %d", file2.StartPos, sp.Lo)
	}
	if sp.Hi != file2.StartPos+8 {
		t.Fatalf("expected span.Hi == file2.StartPos+8 (%d), got %d", file2.StartPos+8, sp.Hi)
	}

	start, end, ok := sm.Resolve(sp)
	if !ok {
		t.Fatalf("expected Resolve to find the owning file")
	}
	if start.Line != 1 || start.Col != 1 {
		t.Errorf("expected start at line 1 col 1, got %+v", start)
	}
	if end.Col != 9 {
		t.Errorf("expected end at col 9, got %+v", end)
	}
}

func TestEatNewline(t *testing.T) {
	file := testFile("a\nb")
	cursor := NewCursor(file)

	if !cursor.Eat('a') {
		t.Error("expected Eat('a') to succeed")
	}
	if cursor.Peek() != '\n' {
		t.Errorf("expected peek '\\n' after Eat('a'), got %c", cursor.Peek())
	}
	if !cursor.Eat('\n') {
		t.Error("expected Eat('\\n') to succeed")
	}
	if cursor.Peek() != 'b' {
		t.Errorf("expected peek 'b' after Eat('\\n'), got %c", cursor.Peek())
	}
	if !cursor.Eat('b') {
		t.Error("expected Eat('b') to succeed")
	}
	if !cursor.EOF() {
		t.Error("expected EOF after Eat('b')")
	}
	if cursor.Eat('x') {
		t.Error("expected Eat('x') at EOF to fail")
	}
}

func TestMarkReset(t *testing.T) {
	file := testFile("abc")
	cursor := NewCursor(file)

	mark1 := cursor.Mark()
	cursor.Bump()
	mark2 := cursor.Mark()
	cursor.Bump()

	cursor.Reset(mark2)
	if cursor.Peek() != 'b' {
		t.Errorf("expected peek 'b' after reset to mark2, got %c", cursor.Peek())
	}

	cursor.Reset(mark1)
	if cursor.Peek() != 'a' {
		t.Errorf("expected peek 'a' after reset to mark1, got %c", cursor.Peek())
	}
}
