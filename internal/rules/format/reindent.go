package format

import (
	"github.com/donaldgifford/fortfmt/internal/analysis"
	"github.com/donaldgifford/fortfmt/internal/config"
	"github.com/donaldgifford/fortfmt/internal/parser"
)

// Reindent rewrites the leading whitespace of free-form lines from the
// block structure of the code.
type Reindent struct{}

// Name returns the config key for this rule.
func (*Reindent) Name() string {
	return "reindent"
}

// Format recomputes the indentation of the whole document.
func (*Reindent) Format(doc *parser.Document, cfg *config.FormatterConfig) {
	if !cfg.Reindent {
		return
	}
	analysis.Reindent(doc, cfg.IndentWidth, cfg.ContinuationIndent)
}
