package source

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"crypto/sha256"

	"fortio.org/safecast"
)

// SourceMap is a monotonically growing, append-only vector of SourceFiles.
// Each file is assigned a disjoint Span range over a shared byte space, so
// that a bare Span (with no file field of its own) can be resolved back to
// its owning file by locating the range that contains it.
//
// A SourceMap is safe for concurrent use: a multi-file parse walks the
// import graph with a bounded worker pool (see internal/pcontext), and
// several workers may resolve and register new files at the same time.
type SourceMap struct {
	mu      sync.RWMutex
	files   []SourceFile
	index   map[string]FileID // path -> latest id
	nextPos uint32
	baseDir string
}

// NewSourceMap creates a new empty SourceMap.
func NewSourceMap() *SourceMap {
	return &SourceMap{
		index: make(map[string]FileID),
		// position 0 is reserved for DummySpan; first real file starts at 1.
		nextPos: 1,
	}
}

// NewSourceMapWithBase creates a SourceMap rooted at baseDir for relative paths.
func NewSourceMapWithBase(baseDir string) *SourceMap {
	sm := NewSourceMap()
	sm.baseDir = baseDir
	return sm
}

// SetBaseDir sets the base directory used to resolve relative paths.
func (sm *SourceMap) SetBaseDir(dir string) { sm.baseDir = dir }

// BaseDir returns the current base directory, defaulting to the working directory.
func (sm *SourceMap) BaseDir() string {
	if sm.baseDir == "" {
		if wd, err := os.Getwd(); err == nil {
			return wd
		}
	}
	return sm.baseDir
}

// Add registers a file's normalized bytes and returns its FileID. Always
// creates a fresh FileID, even for a path that was already added, matching
// the append-only, never-shrinking nature of the source map.
func (sm *SourceMap) Add(path string, content []byte, flags FileFlags) FileID {
	normalizedPath := normalizePath(path)
	lineIdx := buildLineIndex(content)
	hash := sha256.Sum256(content)

	sm.mu.Lock()
	defer sm.mu.Unlock()

	idxLen, err := safecast.Conv[uint32](len(sm.files))
	if err != nil {
		panic(fmt.Errorf("source map length overflow: %w", err))
	}
	id := FileID(idxLen)

	contentLen, err := safecast.Conv[uint32](len(content))
	if err != nil {
		panic(fmt.Errorf("file %q too large: %w", path, err))
	}

	start := sm.nextPos
	sm.files = append(sm.files, SourceFile{
		ID:       id,
		Path:     normalizedPath,
		Content:  content,
		StartPos: start,
		LineIdx:  lineIdx,
		Hash:     hash,
		Flags:    flags,
	})
	// Reserve one extra byte of dead space between files so that the
	// one-past-the-end position of file N never collides with file N+1's start.
	sm.nextPos = start + contentLen + 1
	sm.index[normalizedPath] = id
	return id
}

// Load reads a file from disk, normalizes CRLF/BOM, and registers it.
func (sm *SourceMap) Load(path string) (FileID, error) {
	// #nosec G304 -- path is supplied by the caller (CLI args / import resolution)
	content, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}
	content, hadBOM := removeBOM(content)
	content, hadCRLF := normalizeCRLF(content)

	flags := FileFlags(0)
	if hadBOM {
		flags |= FileHadBOM
	}
	if hadCRLF {
		flags |= FileNormalizedCRLF
	}
	return sm.Add(path, content, flags), nil
}

// AddVirtual adds an in-memory file (stdin, tests, generated sources).
func (sm *SourceMap) AddVirtual(name string, content []byte) FileID {
	content, _ = removeBOM(content)
	content, _ = normalizeCRLF(content)
	return sm.Add(name, content, FileVirtual)
}

// Get returns the file metadata for the given ID.
func (sm *SourceMap) Get(id FileID) *SourceFile {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	return &sm.files[id]
}

// GetLatest returns the most recently registered FileID for path, if any.
func (sm *SourceMap) GetLatest(path string) (FileID, bool) {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	id, ok := sm.index[normalizePath(path)]
	return id, ok
}

// GetByPath returns the *SourceFile for path if it was loaded into this map.
func (sm *SourceMap) GetByPath(path string) (*SourceFile, bool) {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	if id, ok := sm.index[normalizePath(path)]; ok {
		return &sm.files[id], true
	}
	return nil, false
}

// Len returns the number of files registered in the map.
func (sm *SourceMap) Len() int {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	return len(sm.files)
}

// FileContaining finds the file whose disjoint range contains pos, via binary
// search over the append-only (and therefore sorted-by-StartPos) file list.
func (sm *SourceMap) FileContaining(pos uint32) (*SourceFile, bool) {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	if len(sm.files) == 0 {
		return nil, false
	}
	i := sort.Search(len(sm.files), func(k int) bool { return sm.files[k].StartPos > pos })
	if i == 0 {
		return nil, false
	}
	f := &sm.files[i-1]
	if pos < f.StartPos || pos > f.StartPos+uint32(len(f.Content)) {
		return nil, false
	}
	return f, true
}

// Resolve converts a span into line/column positions within its owning file.
func (sm *SourceMap) Resolve(span Span) (start, end LineCol, ok bool) {
	f, found := sm.FileContaining(span.Lo)
	if !found {
		return LineCol{}, LineCol{}, false
	}
	return toLineCol(f.LineIdx, span.Lo-f.StartPos), toLineCol(f.LineIdx, span.Hi-f.StartPos), true
}

// SpanText returns the source text covered by span, or "" if out of range.
func (sm *SourceMap) SpanText(span Span) string {
	f, ok := sm.FileContaining(span.Lo)
	if !ok {
		return ""
	}
	lo, hi := span.Lo-f.StartPos, span.Hi-f.StartPos
	if int(hi) > len(f.Content) {
		hi = uint32(len(f.Content))
	}
	if lo > hi {
		return ""
	}
	return string(f.Content[lo:hi])
}

// GetLine returns the 1-based line of text from a file, or "" if out of range.
func (f *SourceFile) GetLine(lineNum uint32) string {
	if lineNum == 0 {
		return ""
	}
	lineIdxLen, err := safecast.Conv[uint32](len(f.LineIdx))
	if err != nil {
		panic(fmt.Errorf("line index length overflow: %w", err))
	}
	contentLen, err := safecast.Conv[uint32](len(f.Content))
	if err != nil {
		panic(fmt.Errorf("content length overflow: %w", err))
	}

	var start, end uint32
	switch {
	case lineNum == 1:
		start = 0
	case (lineNum - 2) < lineIdxLen:
		start = f.LineIdx[lineNum-2] + 1
	default:
		return ""
	}
	if (lineNum - 1) < lineIdxLen {
		end = f.LineIdx[lineNum-1]
	} else {
		end = contentLen
	}
	if start >= contentLen {
		return ""
	}
	if end > contentLen {
		end = contentLen
	}
	return string(f.Content[start:end])
}

// FormatPath renders f.Path according to mode: "absolute", "relative", "basename", "auto".
func (f *SourceFile) FormatPath(mode, baseDir string) string {
	switch mode {
	case "absolute":
		if abs, err := AbsolutePath(f.Path); err == nil {
			return abs
		}
		return f.Path
	case "relative":
		if baseDir == "" {
			if wd, err := os.Getwd(); err == nil {
				baseDir = wd
			}
		}
		if rel, err := RelativePath(f.Path, baseDir); err == nil {
			return rel
		}
		return f.Path
	case "basename":
		return BaseName(f.Path)
	case "auto":
		if len(f.Path) < 40 || !filepath.IsAbs(f.Path) {
			return f.Path
		}
		return BaseName(f.Path)
	default:
		return f.Path
	}
}
