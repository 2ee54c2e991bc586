// Package formatter provides the formatting engine, writer, and rule interface.
package formatter

import (
	"strings"

	"github.com/donaldgifford/fortfmt/internal/parser"
)

// Write serializes a document back into source text. With remarks enabled,
// each line's diagnostics follow it as "! TODO:" comment lines.
func Write(doc *parser.Document, remarks bool) string {
	var b strings.Builder

	for _, ln := range doc.Lines {
		b.WriteString(ln.Build())
		if !remarks {
			continue
		}
		for _, r := range ln.Remarks {
			b.WriteString("! TODO: ")
			b.WriteString(r)
			b.WriteByte('\n')
		}
	}

	return b.String()
}
