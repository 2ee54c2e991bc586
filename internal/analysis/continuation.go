// Package analysis implements the whole-document passes that relate lines
// to each other: continuation linking and block indentation.
package analysis

import "github.com/donaldgifford/fortfmt/internal/parser"

// VerifyContinuations drops the continuation flag from lines without
// statement text. A marker on a codeless line continues nothing.
func VerifyContinuations(doc *parser.Document) {
	for _, ln := range doc.Lines {
		if !ln.HasCode() {
			ln.IsContinuation = false
		}
	}
}

// LinkContinuations walks the document bottom to top and marks each line
// whose statement is continued below. A continuation marker binds to the
// nearest line above it that has code; comment and blank lines in between
// are skipped.
func LinkContinuations(doc *parser.Document) {
	pending := false
	for i := len(doc.Lines) - 1; i >= 0; i-- {
		ln := doc.Lines[i]
		if ln.HasCode() && pending {
			ln.IsContinued = true
			pending = false
		}
		if ln.IsContinuation {
			pending = true
		}
	}
}
