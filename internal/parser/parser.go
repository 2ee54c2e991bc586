package parser

import "strings"

// Options control pre-parse text normalization.
type Options struct {
	ExpandTabs bool // Replace tabs with spaces before decomposing.
	TabWidth   int  // Tab stop distance used by the expansion.
}

// Parse splits src into lines and decomposes each one under the given
// layout. Lines keep their terminators, so with tab expansion off a freshly
// parsed Document rebuilds to the exact input.
func Parse(src string, layout Layout, opts Options) *Document {
	lines := splitLines(src)
	doc := &Document{Lines: make([]*Line, 0, len(lines))}

	for i, raw := range lines {
		if opts.ExpandTabs {
			raw = ExpandTabs(raw, opts.TabWidth)
		}
		doc.Lines = append(doc.Lines, parseLine(raw, layout, i+1))
	}

	return doc
}

// parseLine decomposes one raw line. Extraction order matters: each step
// consumes its region from what the previous steps left over.
func parseLine(raw string, layout Layout, num int) *Line {
	ln := &Line{Num: num, Layout: layout}
	r := &ln.Regions
	rest := raw

	// 1. Trailing whitespace, including the line terminator.
	cut := len(rest)
	for cut > 0 && isSpace(rest[cut-1]) {
		cut--
	}
	r.RightSpace = rest[cut:]
	rest = rest[:cut]

	// 2. Nothing left: blank line.
	if rest == "" {
		return ln
	}

	// 3. Preprocessor directive, kept whole.
	if rest[0] == '#' {
		r.PreProc = rest
		return ln
	}

	// 4. Fixed-form columns: full-line comment, statement label,
	// continuation marker in column six.
	if layout == LayoutFixed {
		switch rest[0] {
		case 'c', 'C', '*', '!':
			r.FixedComment = rest
			return ln
		}
		if n := fixedLabelLen(rest); n > 0 {
			r.FixedLabel = rest[:n]
			rest = rest[n:]
		} else if len(rest) > 5 && rest[0] != '\t' && rest[5] != ' ' && rest[5] != '0' {
			r.FixedCont = rest[:6]
			rest = rest[6:]
			ln.IsContinuation = true
		}
	}

	// 5. Leading whitespace of the statement part.
	n := 0
	for n < len(rest) && isSpace(rest[n]) {
		n++
	}
	r.LeftSpace = rest[:n]
	rest = rest[n:]

	// 6. Trailing comment: everything from the first "!" onward, plus the
	// blanks ahead of it. A "!" inside a string literal is taken for a
	// comment start too; quoting is not tracked here.
	if i := strings.IndexByte(rest, '!'); i >= 0 {
		m := i
		for m > 0 && isSpace(rest[m-1]) {
			m--
		}
		r.MidSpace = rest[m:i]
		r.Comment = rest[i:]
		rest = rest[:m]
	}

	// 7. Free-form label and leading continuation marker.
	if layout == LayoutFree {
		if n := freeLabelLen(rest); n > 0 {
			r.FreeLabel = rest[:n]
			rest = rest[n:]
		}
		if rest != "" && rest[0] == '&' {
			m := 1
			for m < len(rest) && isSpace(rest[m]) {
				m++
			}
			r.FreeContBegin = rest[:m]
			rest = rest[m:]
			ln.IsContinuation = true
		}
	}

	// 8. Whatever is left is code.
	r.Code = rest
	ln.OrigCodeLen = len(rest)

	return ln
}

// fixedLabelLen measures a statement label at the start of a fixed-form
// line: up to four blanks, then digits. The blanks belong to the label
// region. Returns 0 when no label is present.
func fixedLabelLen(s string) int {
	i := 0
	for i < len(s) && i < 4 && isSpace(s[i]) {
		i++
	}
	j := i
	for j < len(s) && isDigit(s[j]) {
		j++
	}
	if j == i {
		return 0
	}
	return j
}

// freeLabelLen measures a free-form label: digits followed by at least one
// blank. The blanks belong to the label region.
func freeLabelLen(s string) int {
	i := 0
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	if i == 0 {
		return 0
	}
	j := i
	for j < len(s) && isSpace(s[j]) {
		j++
	}
	if j == i {
		return 0
	}
	return j
}

// splitLines cuts src after every newline, keeping the terminator on the
// line. A final line without a terminator is kept as-is.
func splitLines(src string) []string {
	if src == "" {
		return nil
	}
	lines := strings.SplitAfter(src, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
