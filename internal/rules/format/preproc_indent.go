package format

import (
	"strings"
	"unicode"

	"github.com/donaldgifford/fortfmt/internal/config"
	"github.com/donaldgifford/fortfmt/internal/parser"
)

// PreprocIndent removes the indentation between "#" and the directive name
// on preprocessor lines.
type PreprocIndent struct{}

// Name returns the config key for this rule.
func (*PreprocIndent) Name() string {
	return "unindent_preprocessor"
}

// Format rewrites every preprocessor line in place.
func (*PreprocIndent) Format(doc *parser.Document, cfg *config.FormatterConfig) {
	if !cfg.UnindentPreprocessor {
		return
	}

	for _, ln := range doc.Lines {
		p := ln.Regions.PreProc
		if p == "" {
			continue
		}
		ln.Regions.PreProc = "#" + strings.TrimLeftFunc(p[1:], unicode.IsSpace)
	}
}
