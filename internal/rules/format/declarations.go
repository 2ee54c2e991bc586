package format

import (
	"regexp"

	"github.com/donaldgifford/fortfmt/internal/config"
	"github.com/donaldgifford/fortfmt/internal/parser"
)

// Declarations rewrites byte-star declarations like "real*8" into the kind
// form "real(8)".
type Declarations struct{}

var realStar = regexp.MustCompile(`(?i)^real\b\s?\*\s?(\d+)\b`)

// Name returns the config key for this rule.
func (*Declarations) Name() string {
	return "fix_declarations"
}

// Format rewrites declarations at the start of the code region.
func (*Declarations) Format(doc *parser.Document, cfg *config.FormatterConfig) {
	if !cfg.FixDeclarations {
		return
	}

	for _, ln := range doc.Lines {
		if !ln.HasCode() {
			continue
		}
		ln.Regions.Code = realStar.ReplaceAllString(ln.Regions.Code, "real(${1})")
	}
}
