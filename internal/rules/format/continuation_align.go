package format

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/donaldgifford/fortfmt/internal/config"
	"github.com/donaldgifford/fortfmt/internal/parser"
)

// ContinuationAlign pads continued free-form lines so every trailing "&"
// sits in the same column.
type ContinuationAlign struct{}

// Name returns the config key for this rule.
func (*ContinuationAlign) Name() string {
	return "align_continuations"
}

// Format moves each trailing "&" to the configured column. On lines whose
// content already reaches past the column, a single space stays ahead of
// the marker.
func (*ContinuationAlign) Format(doc *parser.Document, cfg *config.FormatterConfig) {
	if !cfg.AlignContinuations {
		return
	}

	for _, ln := range doc.Lines {
		if ln.Layout != parser.LayoutFree || !ln.IsContinued {
			continue
		}
		alignMarker(ln, cfg.ContinuationColumn)
	}
}

// alignMarker pads the marker out to the target column. The marker sits
// at the end of the code on parsed lines and in its own region on
// converted ones.
func alignMarker(ln *parser.Line, col int) {
	r := &ln.Regions

	switch {
	case strings.HasSuffix(r.Code, "&"):
		content := strings.TrimRight(r.Code[:len(r.Code)-1], " \t")
		pad := col - 1 - prefixWidth(r) - runewidth.StringWidth(content)
		if pad < 1 {
			pad = 1
		}
		r.Code = content + strings.Repeat(" ", pad) + "&"

	case strings.HasSuffix(r.FreeContEnd, "&"):
		pad := col - 1 - prefixWidth(r) - runewidth.StringWidth(r.Code)
		if pad < 1 {
			pad = 1
		}
		r.FreeContEnd = strings.Repeat(" ", pad) + "&"
	}
}

// prefixWidth is the display width of everything ahead of the code region.
func prefixWidth(r *parser.Regions) int {
	return runewidth.StringWidth(r.PreProc + r.FixedComment + r.FixedLabel +
		r.FixedCont + r.LeftSpace + r.FreeLabel + r.FreeContBegin)
}
