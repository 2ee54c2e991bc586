package format

import (
	"strings"
	"unicode"

	"github.com/donaldgifford/fortfmt/internal/config"
	"github.com/donaldgifford/fortfmt/internal/parser"
)

// LayoutConvert rewrites fixed-form lines into their free-form equivalents:
// column-one comments become "!" comments, column-six markers become "&"
// markers, and labels keep their digits without the column padding.
type LayoutConvert struct{}

// Name returns the config key for this rule.
func (*LayoutConvert) Name() string {
	return "convert"
}

// Format converts every fixed-form line in place. Free-form lines pass
// through untouched, so running the rule twice is safe.
func (*LayoutConvert) Format(doc *parser.Document, cfg *config.FormatterConfig) {
	if !cfg.Convert {
		return
	}

	for _, ln := range doc.Lines {
		if ln.Layout != parser.LayoutFixed {
			continue
		}
		convertLine(ln)
	}
}

func convertLine(ln *parser.Line) {
	ln.Layout = parser.LayoutFree
	r := &ln.Regions

	// A full-line comment carries nothing else: rewrite the marker and
	// stop. A bare marker turns into a blank line.
	if r.FixedComment != "" {
		if text := strings.TrimLeftFunc(r.FixedComment[1:], unicode.IsSpace); text != "" {
			r.Comment = "! " + text
		}
		r.FixedComment = ""
		return
	}

	if r.FixedLabel != "" {
		r.FreeLabel = strings.TrimLeftFunc(r.FixedLabel, unicode.IsSpace) + " "
		r.FixedLabel = ""
	}

	if r.FixedCont != "" {
		if ln.IsContinuation {
			r.FreeContBegin = "&"
		}
		r.FixedCont = ""
	}

	if ln.IsContinued {
		r.FreeContEnd = "&"
	}
}
