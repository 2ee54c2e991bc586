package format

import (
	"strings"

	"github.com/donaldgifford/fortfmt/internal/config"
	"github.com/donaldgifford/fortfmt/internal/parser"
)

// CommentSpacing normalizes trailing comments to a single space between
// the "!" marker and the text. Doxygen markers ("!>", "!!"), compiler
// sentinels ("!$"), and decorative banner runs keep their exact spelling.
type CommentSpacing struct{}

// Name returns the config key for this rule.
func (*CommentSpacing) Name() string {
	return "comment_spacing"
}

// Format normalizes the comment region of every line.
func (*CommentSpacing) Format(doc *parser.Document, cfg *config.FormatterConfig) {
	if !cfg.CommentSpacing {
		return
	}

	for _, ln := range doc.Lines {
		c := ln.Regions.Comment
		if !shouldNormalize(c) {
			continue
		}
		ln.Regions.Comment = "! " + strings.TrimLeft(c[1:], " \t")
	}
}

// shouldNormalize reports whether a comment is plain text the rule may
// respace. Empty comments, marker prefixes, and banners are left alone.
func shouldNormalize(c string) bool {
	if len(c) < 2 {
		return false
	}
	switch c[1] {
	case '>', '!', '$':
		return false
	}
	if isBanner(c[1:]) {
		return false
	}
	return strings.TrimLeft(c[1:], " \t") != ""
}

// isBanner reports whether body is a decorative run like "-----" or "====".
func isBanner(body string) bool {
	if len(body) < 3 {
		return false
	}
	ch := body[0]
	if isWordByte(ch) || ch == ' ' || ch == '\t' {
		return false
	}
	for i := 1; i < len(body); i++ {
		if body[i] != ch {
			return false
		}
	}
	return true
}

func isWordByte(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z' || b >= '0' && b <= '9'
}
