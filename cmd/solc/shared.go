package main

import (
	"io"
	"os"
	"sort"

	"github.com/sol-lang/solc/internal/compiler"
	"github.com/sol-lang/solc/internal/pcontext"
	"github.com/sol-lang/solc/internal/resolvefs"
	"github.com/sol-lang/solc/internal/source"
)

func readStdin() ([]byte, error) {
	return io.ReadAll(os.Stdin)
}

func parseRemappingFlag(spec string) (resolvefs.Remapping, error) {
	return resolvefs.ParseRemapping(spec)
}

type sourceEntry struct {
	id source.FileID
	pf *pcontext.ParsedFile
}

// sortedSources returns c's parsed files in FileID order (discovery order),
// so dumps and JSON output don't depend on the concurrent parse's
// goroutine scheduling.
func sortedSources(c *compiler.Compiler) []*sourceEntry {
	srcs := c.Sources()
	out := make([]*sourceEntry, 0, len(srcs))
	for id, pf := range srcs {
		out = append(out, &sourceEntry{id: id, pf: pf})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].id < out[j].id })
	return out
}
