// Package parser decomposes Fortran source lines into ordered text regions
// that concatenate back to the original line byte for byte.
package parser

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Layout selects the source form lines are decomposed under.
type Layout int

const (
	// LayoutFixed is the column-sensitive form: comment markers in column
	// one, statement labels in columns 1-5, continuation markers in column 6.
	LayoutFixed Layout = iota
	// LayoutFree is the modern form: "!" trailing comments, "&" continuation
	// markers, labels terminated by blanks.
	LayoutFree
)

func (l Layout) String() string {
	switch l {
	case LayoutFixed:
		return "fixed"
	case LayoutFree:
		return "free"
	}
	return "unknown"
}

// Regions holds the text slots of a decomposed line, declared in
// concatenation order. Every byte of the original line lands in exactly one
// slot, so joining the slots in order reproduces the line.
type Regions struct {
	PreProc       string // Preprocessor line starting with #, kept whole.
	FixedComment  string // Fixed form: full-line comment starting c, C, *, or !.
	FixedLabel    string // Fixed form: statement label with its leading blanks.
	FixedCont     string // Fixed form: the six columns ahead of a continuation line.
	LeftSpace     string // Leading whitespace of the statement part.
	FreeLabel     string // Free form: statement label with its trailing blanks.
	FreeContBegin string // Free form: leading & with its trailing blanks.
	Code          string // Statement text.
	FreeContEnd   string // Free form: trailing & announcing a continuation below.
	MidSpace      string // Whitespace between code and trailing comment.
	Comment       string // Trailing comment from its ! marker onward.
	RightSpace    string // Trailing whitespace including the line terminator.
}

// Join concatenates the regions in declaration order.
func (r *Regions) Join() string {
	return r.PreProc + r.FixedComment + r.FixedLabel + r.FixedCont +
		r.LeftSpace + r.FreeLabel + r.FreeContBegin + r.Code +
		r.FreeContEnd + r.MidSpace + r.Comment + r.RightSpace
}

// Line is a single source line decomposed into regions, plus the flags and
// diagnostics the formatting passes maintain.
type Line struct {
	Num     int    // 1-indexed source line number.
	Layout  Layout // Form the line was parsed under; flipped by conversion.
	Regions Regions

	// IsContinuation marks a line that carries a continuation marker, i.e.
	// its statement continues the line above.
	IsContinuation bool

	// IsContinued marks a line whose statement is continued on the line
	// below. Only the backward continuation scan sets this.
	IsContinued bool

	// OrigCodeLen is len(Regions.Code) right after decomposition, before
	// any rule edits the code. Used to rebalance MidSpace afterwards.
	OrigCodeLen int

	// Remarks collects the diagnostics passes attach to this line.
	Remarks []string
}

// Build reassembles the line text from its regions.
func (l *Line) Build() string {
	return l.Regions.Join()
}

// HasCode reports whether the line carries statement text.
func (l *Line) HasCode() bool {
	return l.Regions.Code != ""
}

// AddRemark attaches a diagnostic to the line.
func (l *Line) AddRemark(msg string) {
	l.Remarks = append(l.Remarks, msg)
}

// Width returns the display width of the rebuilt line without its
// terminator. Trailing blanks still count.
func (l *Line) Width() int {
	return runewidth.StringWidth(strings.TrimRight(l.Build(), "\r\n"))
}

// Document is the ordered line collection of one source file. Passes mutate
// lines in place; the collection itself is never reordered or truncated.
type Document struct {
	Lines []*Line
}

// Layout returns the layout of the document's lines, LayoutFixed when empty.
func (d *Document) Layout() Layout {
	if len(d.Lines) == 0 {
		return LayoutFixed
	}
	return d.Lines[0].Layout
}
