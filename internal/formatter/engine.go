package formatter

import (
	"fmt"
	"strings"

	"github.com/donaldgifford/fortfmt/internal/analysis"
	"github.com/donaldgifford/fortfmt/internal/config"
	"github.com/donaldgifford/fortfmt/internal/parser"
)

// Run formats a document in place: it links continuation lines, applies
// each rule in order, rebalances the space ahead of trailing comments, and
// marks lines over the length limit.
func Run(doc *parser.Document, cfg *config.FormatterConfig, rules []FormatRule) {
	analysis.VerifyContinuations(doc)
	analysis.LinkContinuations(doc)

	for _, rule := range rules {
		rule.Format(doc, cfg)
	}

	for _, ln := range doc.Lines {
		absorbCodeGrowth(ln)
	}

	if cfg.MaxLineLength > 0 {
		markLongLines(doc, cfg.MaxLineLength)
	}
}

// absorbCodeGrowth shrinks or grows the space between code and trailing
// comment by however much the rules changed the code, keeping the comment
// column steady where possible. At least one space always remains.
func absorbCodeGrowth(ln *parser.Line) {
	if ln.Regions.Comment == "" || !ln.HasCode() {
		return
	}

	delta := len(ln.Regions.Code) - ln.OrigCodeLen
	if delta == 0 {
		return
	}

	n := len(ln.Regions.MidSpace) - delta
	if n < 1 {
		n = 1
	}
	ln.Regions.MidSpace = strings.Repeat(" ", n)
}

func markLongLines(doc *parser.Document, limit int) {
	for _, ln := range doc.Lines {
		if ln.Width() > limit {
			ln.AddRemark(fmt.Sprintf("Line above is longer than %d characters.", limit))
		}
	}
}
