// Package version carries the build metadata stamped in via -ldflags.
package version

import (
	"strings"

	"github.com/fatih/color"
)

var (
	// Version is the semantic version of the CLI.
	Version = "0.1.0-dev"

	// GitCommit is an optional git commit hash.
	GitCommit = ""

	// BuildDate is an optional build date in ISO-8601.
	BuildDate = ""
)

var nameColor = color.New(color.FgCyan, color.Bold)

// String renders a one-line version banner.
func String() string {
	var b strings.Builder
	b.WriteString(nameColor.Sprint("fortfmt"))
	b.WriteByte(' ')
	b.WriteString(Version)

	var extra []string
	if GitCommit != "" {
		extra = append(extra, "commit "+GitCommit)
	}
	if BuildDate != "" {
		extra = append(extra, "built "+BuildDate)
	}
	if len(extra) > 0 {
		b.WriteString(" (")
		b.WriteString(strings.Join(extra, ", "))
		b.WriteString(")")
	}

	return b.String()
}
