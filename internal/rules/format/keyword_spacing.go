package format

import (
	"regexp"
	"strings"

	"github.com/donaldgifford/fortfmt/internal/config"
	"github.com/donaldgifford/fortfmt/internal/parser"
)

// KeywordSpacing normalizes keyword spellings in statement text: a space
// between if/where and the opening parenthesis, ")then" split apart, fused
// end keywords split apart, and "inout" written "in out". Text inside
// double-quoted literals is left alone.
type KeywordSpacing struct{}

var (
	quoteMark  = regexp.MustCompile(`([^\\]|^)(")`)
	ifParen    = regexp.MustCompile(`(?i)\b(if|where)\(`)
	parenThen  = regexp.MustCompile(`(?i)\)then\b`)
	fusedEnd   = regexp.MustCompile(`(?i)\bend(if|do|while)\b`)
	fusedInout = regexp.MustCompile(`(?i)\binout\b`)
)

// Name returns the config key for this rule.
func (*KeywordSpacing) Name() string {
	return "keyword_spacing"
}

// Format applies the keyword rewrites to the code region of every line.
func (*KeywordSpacing) Format(doc *parser.Document, cfg *config.FormatterConfig) {
	if !cfg.KeywordSpacing {
		return
	}

	for _, ln := range doc.Lines {
		if !ln.HasCode() {
			continue
		}
		ln.Regions.Code = spaceKeywords(ln.Regions.Code)
	}
}

// spaceKeywords rewrites keywords outside double-quoted literals. Every
// unescaped quote gets a marker, the text is cut at the markers, and only
// the even-numbered parts, the ones outside the quotes, are rewritten
// before joining everything back.
func spaceKeywords(code string) string {
	marked := quoteMark.ReplaceAllString(code, `${1}a"`)
	parts := strings.Split(marked, `a"`)

	for i := 0; i < len(parts); i += 2 {
		p := parts[i]
		p = ifParen.ReplaceAllString(p, "${1} (")
		p = parenThen.ReplaceAllString(p, ") then")
		p = fusedEnd.ReplaceAllString(p, "end ${1}")
		p = fusedInout.ReplaceAllString(p, "in out")
		parts[i] = p
	}

	return strings.Join(parts, `"`)
}
