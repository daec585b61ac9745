package diagfmt

import (
	"io"

	"github.com/sol-lang/solc/internal/diag"
	"github.com/sol-lang/solc/internal/source"
)

// Sarif writes bag's diagnostics in SARIF (v2.1.0) format.
func Sarif(w io.Writer, bag *diag.Bag, sm *source.SourceMap, meta SarifRunMeta) {
	// TODO: implement SARIF output.
	_ = w
	_ = bag
	_ = sm
	_ = meta
}
