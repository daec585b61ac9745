// Package resolvefs locates the file a Solidity import directive refers to:
// it applies remappings, then falls through sibling-relative lookup and an
// ordered list of include directories, registering whatever it finds into a
// shared source.SourceMap so repeated imports of the same file resolve to
// the same FileID.
package resolvefs

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/sol-lang/solc/internal/source"
)

// StdinFileName is the synthetic path used for the "-" entry file read from
// stdin, mirroring solc's own convention for anonymous input.
const StdinFileName = "<stdin>"

// NotFoundError reports that no remapping, sibling-relative lookup, or
// search path could locate an import.
type NotFoundError struct {
	Import string
}

func (e *NotFoundError) Error() string {
	return "import \"" + e.Import + "\" not found"
}

// FileResolver maintains the search paths, remappings, and optional stdin
// buffer used to turn an import string into a registered source file.
type FileResolver struct {
	sm          *source.SourceMap
	searchPaths []string
	remappings  []Remapping
	stdin       []byte
	haveStdin   bool
}

// NewFileResolver creates a resolver that registers every file it resolves
// into sm, so resolution and direct entry-point loading share one map.
func NewFileResolver(sm *source.SourceMap) *FileResolver {
	return &FileResolver{sm: sm}
}

// AddSearchPath appends an include directory, consulted in order after
// sibling-relative lookup fails.
func (r *FileResolver) AddSearchPath(path string) {
	if path == "" {
		return
	}
	r.searchPaths = append(r.searchPaths, path)
}

// AddRemapping registers a parsed remapping entry. Remappings are selected by
// specificity at resolution time, not by the order they were added.
func (r *FileResolver) AddRemapping(rm Remapping) {
	r.remappings = append(r.remappings, rm)
}

// SetStdin provides the buffer backing the synthetic "<stdin>" entry file
// used when the command line names "-" as an input.
func (r *FileResolver) SetStdin(content []byte) {
	r.stdin = content
	r.haveStdin = true
}

// LoadEntry registers a file named directly on the command line (as opposed
// to one discovered via an import) and returns its FileID.
func (r *FileResolver) LoadEntry(path string) (source.FileID, error) {
	if path == "-" {
		if !r.haveStdin {
			return source.NoFileID, errors.New("no stdin buffer configured for entry \"-\"")
		}
		return r.sm.AddVirtual(StdinFileName, r.stdin), nil
	}
	return r.load(path)
}

// Resolve locates the file that an import naming rawPath (the raw,
// still-quoted Symbol text the parser interned) refers to, given the file it
// was imported from. fromFile may be nil only for entry files, which never
// carry import directives of their own resolved this way.
func (r *FileResolver) Resolve(rawPath string, fromFile *source.SourceFile) (source.FileID, error) {
	importPath, err := unquoteImportPath(rawPath)
	if err != nil {
		return source.NoFileID, err
	}

	contextPath := ""
	if fromFile != nil {
		contextPath = fromFile.Path
	}

	target := importPath
	if rm, ok := bestRemapping(r.remappings, importPath, contextPath); ok {
		target = rm.apply(importPath)
	}

	if filepath.IsAbs(target) {
		return r.load(target)
	}

	if fromFile != nil && fromFile.Path != StdinFileName {
		sibling := filepath.Join(filepath.Dir(fromFile.Path), target)
		if id, ok, loadErr := r.tryLoad(sibling); ok || loadErr != nil {
			return id, loadErr
		}
	}

	for _, base := range r.searchPaths {
		candidate := filepath.Join(base, target)
		if id, ok, loadErr := r.tryLoad(candidate); ok || loadErr != nil {
			return id, loadErr
		}
	}

	return source.NoFileID, &NotFoundError{Import: importPath}
}

// tryLoad loads path if it exists on disk, returning ok=false (and no error)
// if it simply doesn't exist, so callers can keep trying other candidates.
func (r *FileResolver) tryLoad(path string) (source.FileID, bool, error) {
	if _, err := os.Stat(path); err != nil {
		return source.NoFileID, false, nil
	}
	id, err := r.load(path)
	return id, true, err
}

// load registers path into the source map, reusing an existing registration
// if this resolver (or an earlier Resolve call) already loaded it.
func (r *FileResolver) load(path string) (source.FileID, error) {
	if f, ok := r.sm.GetByPath(path); ok {
		return f.ID, nil
	}
	id, err := r.sm.Load(path)
	if err != nil {
		return source.NoFileID, err
	}
	return id, nil
}
