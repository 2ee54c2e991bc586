// Package config defines the configuration types and defaults for fortfmt.
package config

import "fmt"

// Config is the top-level configuration.
type Config struct {
	Formatter FormatterConfig `yaml:"formatter"`
	Output    OutputConfig    `yaml:"output"`
}

// FormatterConfig holds all formatting pass settings.
type FormatterConfig struct {
	Layout                 string `yaml:"layout"` // auto, fixed, free
	Convert                bool   `yaml:"convert"`
	Reindent               bool   `yaml:"reindent"`
	IndentWidth            int    `yaml:"indent_width"`
	ContinuationIndent     int    `yaml:"continuation_indent"`
	ExpandTabs             bool   `yaml:"expand_tabs"`
	TabWidth               int    `yaml:"tab_width"`
	MaxLineLength          int    `yaml:"max_line_length"` // 0 disables the length check
	TransformDoxygen       bool   `yaml:"transform_doxygen"`
	FixDeclarations        bool   `yaml:"fix_declarations"`
	KeywordSpacing         bool   `yaml:"keyword_spacing"`
	CommentSpacing         bool   `yaml:"comment_spacing"`
	AlignContinuations     bool   `yaml:"align_continuations"`
	ContinuationColumn     int    `yaml:"continuation_column"`
	UnindentPreprocessor   bool   `yaml:"unindent_preprocessor"`
	TrimTrailingWhitespace bool   `yaml:"trim_trailing_whitespace"`
	EmbedRemarks           bool   `yaml:"embed_remarks"`
}

// OutputConfig holds settings for reading and emitting files.
type OutputConfig struct {
	Encoding       string `yaml:"encoding"` // utf-8, latin-1
	HighlightStyle string `yaml:"highlight_style"`
}

// DefaultConfig returns a Config with all default values.
func DefaultConfig() *Config {
	return &Config{
		Formatter: FormatterConfig{
			Layout:                 "auto",
			Convert:                false,
			Reindent:               true,
			IndentWidth:            2,
			ContinuationIndent:     1,
			ExpandTabs:             true,
			TabWidth:               8,
			MaxLineLength:          72,
			TransformDoxygen:       false,
			FixDeclarations:        false,
			KeywordSpacing:         false,
			CommentSpacing:         false,
			AlignContinuations:     false,
			ContinuationColumn:     72,
			UnindentPreprocessor:   true,
			TrimTrailingWhitespace: true,
			EmbedRemarks:           true,
		},
		Output: OutputConfig{
			Encoding:       "utf-8",
			HighlightStyle: "monokai",
		},
	}
}

// Validate checks enumerated and numeric settings. Call it on every loaded
// config before formatting with it.
func (c *Config) Validate() error {
	f := &c.Formatter

	switch f.Layout {
	case "auto", "fixed", "free":
	default:
		return fmt.Errorf("layout must be auto, fixed, or free, got %q", f.Layout)
	}
	if f.IndentWidth < 0 {
		return fmt.Errorf("indent_width must not be negative, got %d", f.IndentWidth)
	}
	if f.ContinuationIndent < 0 {
		return fmt.Errorf("continuation_indent must not be negative, got %d", f.ContinuationIndent)
	}
	if f.TabWidth < 1 {
		return fmt.Errorf("tab_width must be at least 1, got %d", f.TabWidth)
	}
	if f.MaxLineLength < 0 {
		return fmt.Errorf("max_line_length must not be negative, got %d", f.MaxLineLength)
	}
	if f.ContinuationColumn < 1 {
		return fmt.Errorf("continuation_column must be at least 1, got %d", f.ContinuationColumn)
	}

	switch c.Output.Encoding {
	case "utf-8", "latin-1":
	default:
		return fmt.Errorf("encoding must be utf-8 or latin-1, got %q", c.Output.Encoding)
	}

	return nil
}
