package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	f := cfg.Formatter
	checks := []struct {
		name string
		got  any
		want any
	}{
		{"Layout", f.Layout, "auto"},
		{"Convert", f.Convert, false},
		{"Reindent", f.Reindent, true},
		{"IndentWidth", f.IndentWidth, 2},
		{"ContinuationIndent", f.ContinuationIndent, 1},
		{"ExpandTabs", f.ExpandTabs, true},
		{"TabWidth", f.TabWidth, 8},
		{"MaxLineLength", f.MaxLineLength, 72},
		{"TransformDoxygen", f.TransformDoxygen, false},
		{"FixDeclarations", f.FixDeclarations, false},
		{"KeywordSpacing", f.KeywordSpacing, false},
		{"CommentSpacing", f.CommentSpacing, false},
		{"AlignContinuations", f.AlignContinuations, false},
		{"ContinuationColumn", f.ContinuationColumn, 72},
		{"UnindentPreprocessor", f.UnindentPreprocessor, true},
		{"TrimTrailingWhitespace", f.TrimTrailingWhitespace, true},
		{"EmbedRemarks", f.EmbedRemarks, true},
		{"Encoding", cfg.Output.Encoding, "utf-8"},
		{"HighlightStyle", cfg.Output.HighlightStyle, "monokai"},
	}

	for _, c := range checks {
		if c.got != c.want {
			t.Errorf("%s: got %v, want %v", c.name, c.got, c.want)
		}
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate, got %v", err)
	}
}

func TestLoadExplicitPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yml")

	yaml := `formatter:
  convert: true
  indent_width: 4
`
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}

	if !cfg.Formatter.Convert {
		t.Error("Convert: got false, want true")
	}
	if cfg.Formatter.IndentWidth != 4 {
		t.Errorf("IndentWidth: got %d, want 4", cfg.Formatter.IndentWidth)
	}

	// Verify unspecified fields retain defaults.
	if cfg.Formatter.TabWidth != 8 {
		t.Errorf("TabWidth: got %d, want 8 (default)", cfg.Formatter.TabWidth)
	}
	if !cfg.Formatter.TrimTrailingWhitespace {
		t.Error("TrimTrailingWhitespace: got false, want true (default)")
	}
}

func TestLoadNoConfigReturnsDefaults(t *testing.T) {
	// Use an empty temp dir so no config file is discovered.
	dir := t.TempDir()
	origWd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	defer func() {
		if err := os.Chdir(origWd); err != nil {
			t.Fatal(err)
		}
	}()
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}

	want := DefaultConfig()
	if cfg.Formatter != want.Formatter {
		t.Errorf("expected default config, got %+v", cfg.Formatter)
	}
}

func TestDiscoverPriority(t *testing.T) {
	dir := t.TempDir()

	content := []byte("formatter:\n  indent_width: 2\n")

	// Create all four files; fortfmt.yml (first in order) should win.
	for _, name := range []string{"fortfmt.yml", "fortfmt.yaml", ".fortfmt.yml", ".fortfmt.yaml"} {
		if err := os.WriteFile(filepath.Join(dir, name), content, 0o644); err != nil {
			t.Fatal(err)
		}
	}

	got := Discover(dir)
	want := filepath.Join(dir, "fortfmt.yml")
	if got != want {
		t.Errorf("Discover = %q, want %q", got, want)
	}

	// Remove highest-priority file; fortfmt.yaml should be next.
	os.Remove(filepath.Join(dir, "fortfmt.yml"))
	got = Discover(dir)
	want = filepath.Join(dir, "fortfmt.yaml")
	if got != want {
		t.Errorf("after removing fortfmt.yml: Discover = %q, want %q", got, want)
	}

	// Remove fortfmt.yaml; .fortfmt.yml should be next.
	os.Remove(filepath.Join(dir, "fortfmt.yaml"))
	got = Discover(dir)
	want = filepath.Join(dir, ".fortfmt.yml")
	if got != want {
		t.Errorf("after removing fortfmt.yaml: Discover = %q, want %q", got, want)
	}
}

func TestDiscoverNoFiles(t *testing.T) {
	dir := t.TempDir()
	got := Discover(dir)
	if got != "" {
		t.Errorf("Discover in empty dir: got %q, want empty string", got)
	}
}

func TestLoadPartialYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "partial.yml")

	// Only override a single field.
	yaml := `formatter:
  reindent: false
`
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Formatter.Reindent {
		t.Error("Reindent: got true, want false")
	}

	// All other fields must retain their defaults.
	def := DefaultConfig()
	if cfg.Formatter.Layout != def.Formatter.Layout {
		t.Errorf("Layout: got %q, want %q", cfg.Formatter.Layout, def.Formatter.Layout)
	}
	if cfg.Formatter.IndentWidth != def.Formatter.IndentWidth {
		t.Errorf("IndentWidth: got %d, want %d", cfg.Formatter.IndentWidth, def.Formatter.IndentWidth)
	}
	if cfg.Output.Encoding != def.Output.Encoding {
		t.Errorf("Encoding: got %q, want %q", cfg.Output.Encoding, def.Output.Encoding)
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yml")

	if err := os.WriteFile(path, []byte("{{{{not valid yaml"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := Load(path)
	if err == nil {
		t.Error("expected error for invalid YAML, got nil")
	}
}

func TestLoadMissingExplicitPath(t *testing.T) {
	_, err := Load("/nonexistent/path/config.yml")
	if err == nil {
		t.Error("expected error for missing explicit path, got nil")
	}
}

func TestLoadEmptyFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "empty.yml")

	if err := os.WriteFile(path, []byte(""), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}

	// Empty file should result in all defaults.
	want := DefaultConfig()
	if cfg.Formatter != want.Formatter {
		t.Errorf("expected default config for empty file, got %+v", cfg.Formatter)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"bad layout", "formatter:\n  layout: column\n"},
		{"negative indent", "formatter:\n  indent_width: -1\n"},
		{"zero tab width", "formatter:\n  tab_width: 0\n"},
		{"negative line length", "formatter:\n  max_line_length: -5\n"},
		{"bad encoding", "output:\n  encoding: ebcdic\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			path := filepath.Join(dir, "bad.yml")
			if err := os.WriteFile(path, []byte(tt.yaml), 0o644); err != nil {
				t.Fatal(err)
			}

			if _, err := Load(path); err == nil {
				t.Errorf("expected validation error for %q, got nil", tt.yaml)
			}
		})
	}
}

func TestLoadOutputSection(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.yml")

	yaml := `output:
  encoding: latin-1
  highlight_style: dracula
`
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Output.Encoding != "latin-1" {
		t.Errorf("Encoding: got %q, want %q", cfg.Output.Encoding, "latin-1")
	}
	if cfg.Output.HighlightStyle != "dracula" {
		t.Errorf("HighlightStyle: got %q, want %q", cfg.Output.HighlightStyle, "dracula")
	}
}
