package format

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/donaldgifford/fortfmt/internal/config"
	"github.com/donaldgifford/fortfmt/internal/parser"
)

// Doxygen rewrites legacy boxed file headers into doxygen markup. A header
// block is fenced by banner rows of 70 "c" characters; inside it, known
// row layouts map to @file, @param, @date, and @authors tags, dash rows
// become bare "!>" lines, and everything else becomes an @brief.
type Doxygen struct{}

var (
	doxFile    = regexp.MustCompile(`^!\s(\S+\.\S+)\s+c$`)
	doxParam   = regexp.MustCompile(`^!\s>\s+\\(param.*?)$`)
	doxDate    = regexp.MustCompile(`^!\s(\d{4}\.\d{2}\.\d{2})\s-\s(.*?)\s+c$`)
	doxAuthors = regexp.MustCompile(`^!\s(.*?)\s\[(.*?@.*?\..*?)\]\s+c$`)
)

// Name returns the config key for this rule.
func (*Doxygen) Name() string {
	return "transform_doxygen"
}

// Format rewrites header blocks in place. It reads the free-form comment
// region, so on fixed-form sources conversion has to run first.
func (*Doxygen) Format(doc *parser.Document, cfg *config.FormatterConfig) {
	if !cfg.TransformDoxygen {
		return
	}

	width := cfg.MaxLineLength
	if width <= 0 {
		width = 72
	}
	separator := "!" + strings.Repeat("-", width-1)

	inBlock := false
	for _, ln := range doc.Lines {
		c := ln.Regions.Comment

		if strings.Count(c, "c") == 70 {
			inBlock = !inBlock
			ln.Regions.Comment = separator
			continue
		}
		if !inBlock || c == "" {
			continue
		}
		ln.Regions.Comment = rewriteHeaderRow(c)
	}
}

// rewriteHeaderRow maps one boxed header row to its doxygen form.
func rewriteHeaderRow(c string) string {
	if strings.Count(c, "-") == 60 {
		return "!>"
	}
	if m := doxFile.FindStringSubmatch(c); m != nil {
		return "!> @file " + m[1]
	}
	if m := doxParam.FindStringSubmatch(c); m != nil {
		return "!> @" + m[1]
	}
	if m := doxDate.FindStringSubmatch(c); m != nil {
		return "!> @date " + m[1] + " -- " + m[2]
	}
	if m := doxAuthors.FindStringSubmatch(c); m != nil {
		return "!> @authors " + m[1] + " <" + m[2] + ">"
	}

	body := ""
	if len(c) > 3 {
		body = strings.TrimLeftFunc(c[3:], unicode.IsSpace)
	}
	return "!> @brief " + body
}
