// Package format contains individual formatting rule implementations.
package format

import (
	"github.com/donaldgifford/fortfmt/internal/config"
	"github.com/donaldgifford/fortfmt/internal/parser"
)

// TrailingWhitespace resets the right edge of every line: trailing blanks
// go away and the terminator becomes a single newline. Files gain a final
// newline and lose carriage returns as a side effect.
type TrailingWhitespace struct{}

// Name returns the config key for this rule.
func (*TrailingWhitespace) Name() string {
	return "trim_trailing_whitespace"
}

// Format resets the trailing whitespace region of every line.
func (*TrailingWhitespace) Format(doc *parser.Document, cfg *config.FormatterConfig) {
	if !cfg.TrimTrailingWhitespace {
		return
	}

	for _, ln := range doc.Lines {
		ln.Regions.RightSpace = "\n"
	}
}
