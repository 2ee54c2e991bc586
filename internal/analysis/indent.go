package analysis

import (
	"regexp"
	"strings"

	"github.com/donaldgifford/fortfmt/internal/parser"
)

// blockOpeners match statements that open a block, indenting the lines
// after them. All patterns are anchored to the start of the code region
// and case-insensitive.
var blockOpeners = []*regexp.Regexp{
	regexp.MustCompile(`(?i)^(\w+:\s+)?do\b`),  // do loop, optionally construct-named
	regexp.MustCompile(`(?i)^if\b.*?\bthen\b`), // block if, not single-statement if
	regexp.MustCompile(`(?i)^subroutine\b`),
	regexp.MustCompile(`(?i)^module\b`),
	regexp.MustCompile(`(?i)^type\s*[^\s(]`), // derived type definition, not type(...) declaration
	regexp.MustCompile(`(?i)^interface\b`),
	regexp.MustCompile(`(?i)^block\s?data\b`),
	regexp.MustCompile(`(?i)^function\b`),
	regexp.MustCompile(`(?i)^where\b.*?\)$`), // where construct, not where(...) statement
	regexp.MustCompile(`(?i)^else(if)?\b`),
}

// blockCloser matches statements that close a block, unindenting their own
// line. else and elseif appear on both sides: they close the branch above
// and reopen one below.
var blockCloser = regexp.MustCompile(`(?i)^(end(if|do|where)?|else(if)?)\b`)

// Reindent recomputes the leading whitespace of every free-form line from
// the nesting depth of block statements. Continuation lines are pushed
// extraLevels deeper. Lines without code or comment get no indentation at
// all. A closer on an already flat line leaves a remark and clamps to
// depth zero.
func Reindent(doc *parser.Document, indentWidth, extraLevels int) {
	if indentWidth < 0 {
		indentWidth = 0
	}
	unit := strings.Repeat(" ", indentWidth)

	depth := 0
	for _, ln := range doc.Lines {
		if ln.Layout != parser.LayoutFree {
			continue
		}

		if ClosesBlock(ln.Regions.Code) {
			depth--
		}
		if depth < 0 {
			ln.AddRemark("Negative indentation level reached.")
			depth = 0
		}

		level := depth
		if ln.IsContinuation {
			level += extraLevels
		}
		setIndent(ln, unit, level)

		if OpensBlock(ln.Regions.Code) {
			depth++
		}
	}
}

// OpensBlock reports whether code begins a statement that indents the
// lines after it.
func OpensBlock(code string) bool {
	for _, re := range blockOpeners {
		if re.MatchString(code) {
			return true
		}
	}
	return false
}

// ClosesBlock reports whether code begins a statement that unindents its
// own line.
func ClosesBlock(code string) bool {
	return blockCloser.MatchString(code)
}

func setIndent(ln *parser.Line, unit string, level int) {
	if level < 0 {
		level = 0
	}
	if ln.HasCode() || ln.Regions.Comment != "" {
		ln.Regions.LeftSpace = strings.Repeat(unit, level)
	} else {
		ln.Regions.LeftSpace = ""
	}
}
