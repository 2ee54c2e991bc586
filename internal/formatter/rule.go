package formatter

import (
	"github.com/donaldgifford/fortfmt/internal/config"
	"github.com/donaldgifford/fortfmt/internal/parser"
)

// FormatRule transforms a document. Rules are applied in registered order.
type FormatRule interface {
	// Name returns the config key for this rule (e.g., "trim_trailing_whitespace").
	Name() string

	// Format edits the document's lines in place. Line records are never
	// added, removed, or reordered, only mutated.
	Format(doc *parser.Document, cfg *config.FormatterConfig)
}
