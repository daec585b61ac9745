package source

import "fortio.org/safecast"

type (
	// FileID uniquely identifies a source file within a SourceMap.
	FileID uint32
	// FileFlags encodes metadata about a source file.
	FileFlags uint8
)

const (
	// FileVirtual indicates the file was added from memory (stdin, tests, generated).
	FileVirtual FileFlags = 1 << iota
	FileHadBOM
	FileNormalizedCRLF
)

// NoFileID is the reserved sentinel for "no file".
const NoFileID FileID = 0

// SourceFile is the immutable (FileName, contents, start_pos) triple from the
// data model: contents are retained for diagnostics, StartPos is the file's
// offset into the concatenated byte space that Spans are expressed in.
type SourceFile struct {
	ID       FileID
	Path     string
	Content  []byte
	StartPos uint32
	LineIdx  []uint32
	Hash     [32]byte
	Flags    FileFlags
}

// Span returns the full span covering this file's content.
func (f *SourceFile) Span() Span {
	end, err := safecast.Conv[uint32](len(f.Content))
	if err != nil {
		panic(err)
	}
	return Span{Lo: f.StartPos, Hi: f.StartPos + end}
}

// LineCol represents a human-readable position in a source file.
type LineCol struct {
	Line uint32 // 1-based
	Col  uint32 // 1-based
}
