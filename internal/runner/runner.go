// Package runner orchestrates the read -> parse -> format -> output pipeline.
package runner

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"golang.org/x/sync/errgroup"
	"golang.org/x/term"
	"golang.org/x/text/encoding/charmap"

	"github.com/donaldgifford/fortfmt/internal/cache"
	"github.com/donaldgifford/fortfmt/internal/config"
	"github.com/donaldgifford/fortfmt/internal/formatter"
	"github.com/donaldgifford/fortfmt/internal/layout"
	"github.com/donaldgifford/fortfmt/internal/parser"
	"github.com/donaldgifford/fortfmt/internal/rules"
	"github.com/donaldgifford/fortfmt/pkg/diff"
)

// Exit codes.
const (
	ExitOK         = 0
	ExitFormatDiff = 1
	ExitError      = 2
)

// Options configures the runner behavior.
type Options struct {
	Files      []string
	Check      bool
	Diff       bool
	Write      bool // in-place rewrite; the default for file arguments anyway
	Print      bool // write results to stdout instead of back to the files
	Highlight  bool
	UseCache   bool
	Jobs       int
	ConfigPath string
	Layout     string // overrides the configured input layout
	Convert    bool   // forces fixed-to-free conversion on
	Quiet      bool
	Verbose    bool
	Stdin      io.Reader
	Stdout     io.Writer
	Stderr     io.Writer
}

// result carries one file's outcome from the parallel format phase to the
// sequential report phase.
type result struct {
	path    string
	input   string
	output  string
	remarks []string
	key     cache.Digest
	keyOK   bool
	cached  bool
	err     error
}

// Run executes the format pipeline and returns an exit code.
func Run(opts *Options) int {
	if opts.Stdin == nil {
		opts.Stdin = os.Stdin
	}
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}
	if opts.Stderr == nil {
		opts.Stderr = os.Stderr
	}

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		writeErr(opts.Stderr, "fortfmt: %v\n", err)
		return ExitError
	}
	if opts.Layout != "" {
		cfg.Formatter.Layout = opts.Layout
	}
	if opts.Convert {
		cfg.Formatter.Convert = true
	}
	if err := cfg.Validate(); err != nil {
		writeErr(opts.Stderr, "fortfmt: %v\n", err)
		return ExitError
	}

	formatRules := rules.FormatRules()

	var store *cache.Store
	if opts.UseCache {
		store, err = cache.Open("fortfmt")
		if err != nil {
			writeErr(opts.Stderr, "fortfmt: opening cache: %v\n", err)
			store = nil
		}
	}

	// stdin mode: no files given.
	if len(opts.Files) == 0 {
		return runStdin(opts, cfg, formatRules)
	}

	results := formatFiles(opts, cfg, formatRules, store)

	exitCode := ExitOK
	for i := range results {
		code := report(opts, cfg, store, &results[i])
		if code > exitCode {
			exitCode = code
		}
	}
	return exitCode
}

func runStdin(opts *Options, cfg *config.Config, formatRules []formatter.FormatRule) int {
	src, err := io.ReadAll(opts.Stdin)
	if err != nil {
		writeErr(opts.Stderr, "fortfmt: reading stdin: %v\n", err)
		return ExitError
	}

	input, err := decode(src, cfg.Output.Encoding)
	if err != nil {
		writeErr(opts.Stderr, "fortfmt: decoding stdin: %v\n", err)
		return ExitError
	}

	output, remarks := formatInput(input, "<stdin>", cfg, formatRules)
	if opts.Verbose {
		for _, r := range remarks {
			writeErr(opts.Stderr, "%s\n", r)
		}
	}

	if opts.Check {
		if input != output {
			return ExitFormatDiff
		}
		return ExitOK
	}

	if opts.Diff {
		d := diffPrinter(opts).Render("<stdin>", input, output)
		if d != "" {
			writeOut(opts.Stdout, d)
			return ExitFormatDiff
		}
		return ExitOK
	}

	return emit(opts, outputLayout(cfg, ""), cfg.Output.HighlightStyle, output)
}

// formatFiles formats every file argument on a bounded worker pool. Each
// goroutine owns one result slot, so no locking is needed; reporting
// afterwards walks the slice in input order.
func formatFiles(opts *Options, cfg *config.Config, formatRules []formatter.FormatRule, store *cache.Store) []result {
	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	results := make([]result, len(opts.Files))

	var g errgroup.Group
	g.SetLimit(min(jobs, len(opts.Files)))

	for i, path := range opts.Files {
		g.Go(func() error {
			results[i] = formatFile(path, cfg, formatRules, store)
			return nil
		})
	}
	_ = g.Wait()

	return results
}

func formatFile(path string, cfg *config.Config, formatRules []formatter.FormatRule, store *cache.Store) result {
	res := result{path: path}

	src, err := os.ReadFile(path)
	if err != nil {
		res.err = err
		return res
	}

	if key, err := cache.Key(cfg, src); err == nil {
		res.key = key
		res.keyOK = true
	}

	input, err := decode(src, cfg.Output.Encoding)
	if err != nil {
		res.err = fmt.Errorf("decoding %s: %w", path, err)
		return res
	}
	res.input = input

	if res.keyOK {
		if _, ok := store.Lookup(res.key); ok {
			res.output = input
			res.cached = true
			return res
		}
	}

	res.output, res.remarks = formatInput(input, path, cfg, formatRules)
	return res
}

func report(opts *Options, cfg *config.Config, store *cache.Store, res *result) int {
	if res.err != nil {
		writeErr(opts.Stderr, "fortfmt: %v\n", res.err)
		return ExitError
	}

	if opts.Verbose {
		status := "formatted"
		switch {
		case res.cached:
			status = "cached"
		case res.input == res.output:
			status = "unchanged"
		}
		writeErr(opts.Stderr, "%s: %s\n", res.path, status)
		for _, r := range res.remarks {
			writeErr(opts.Stderr, "%s\n", r)
		}
	}

	if opts.Check {
		if res.input != res.output {
			if !opts.Quiet {
				writeErr(opts.Stderr, "%s\n", res.path)
			}
			return ExitFormatDiff
		}
		markClean(store, res)
		return ExitOK
	}

	if opts.Diff {
		d := diffPrinter(opts).Render(res.path, res.input, res.output)
		if d != "" {
			writeOut(opts.Stdout, d)
			return ExitFormatDiff
		}
		markClean(store, res)
		return ExitOK
	}

	if opts.Print {
		return emit(opts, outputLayout(cfg, res.path), cfg.Output.HighlightStyle, res.output)
	}

	// Write mode (default for file args).
	if res.input == res.output {
		markClean(store, res)
		return ExitOK
	}

	encoded, err := encode(res.output, cfg.Output.Encoding)
	if err != nil {
		writeErr(opts.Stderr, "fortfmt: encoding %s: %v\n", res.path, err)
		return ExitError
	}
	if err := os.WriteFile(res.path, encoded, 0o644); err != nil {
		writeErr(opts.Stderr, "fortfmt: writing %s: %v\n", res.path, err)
		return ExitError
	}

	// The rewritten bytes are clean under the same config; remember that.
	if key, err := cache.Key(cfg, encoded); err == nil {
		_ = store.MarkClean(key, lineCount(res.output))
	}

	return ExitOK
}

func formatInput(input, name string, cfg *config.Config, formatRules []formatter.FormatRule) (string, []string) {
	lay := layout.Resolve(cfg.Formatter.Layout, name)
	doc := parser.Parse(input, lay, parser.Options{
		ExpandTabs: cfg.Formatter.ExpandTabs,
		TabWidth:   cfg.Formatter.TabWidth,
	})
	formatter.Run(doc, &cfg.Formatter, formatRules)

	var remarks []string
	for _, ln := range doc.Lines {
		for _, r := range ln.Remarks {
			remarks = append(remarks, fmt.Sprintf("%s:%d: %s", name, ln.Num, r))
		}
	}

	return formatter.Write(doc, cfg.Formatter.EmbedRemarks), remarks
}

// markClean records that the bytes behind res.key were already formatted.
func markClean(store *cache.Store, res *result) {
	if !res.keyOK || res.cached {
		return
	}
	_ = store.MarkClean(res.key, lineCount(res.output))
}

// outputLayout is the layout of the text the runner emits, which differs
// from the input layout when conversion ran.
func outputLayout(cfg *config.Config, name string) parser.Layout {
	if cfg.Formatter.Convert {
		return parser.LayoutFree
	}
	return layout.Resolve(cfg.Formatter.Layout, name)
}

// emit writes formatted output to stdout, syntax-colored when requested
// and the destination is a terminal.
func emit(opts *Options, lay parser.Layout, styleName, output string) int {
	if opts.Highlight && isTerminal(opts.Stdout) {
		if err := highlight(opts.Stdout, output, lay, styleName); err == nil {
			return ExitOK
		}
	}
	writeOut(opts.Stdout, output)
	return ExitOK
}

// highlight renders text through chroma's terminal formatter, picking the
// fixed- or free-form Fortran lexer to match the emitted layout.
func highlight(w io.Writer, text string, lay parser.Layout, styleName string) error {
	name := "fortran"
	if lay == parser.LayoutFixed {
		name = "fortranfixed"
	}
	lexer := lexers.Get(name)
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	iterator, err := lexer.Tokenise(nil, text)
	if err != nil {
		return err
	}
	return formatters.Get("terminal256").Format(w, styles.Get(styleName), iterator)
}

// decode converts on-disk bytes to text per the configured encoding.
func decode(src []byte, encoding string) (string, error) {
	if encoding != "latin-1" {
		return string(src), nil
	}
	out, err := charmap.ISO8859_1.NewDecoder().Bytes(src)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// encode converts formatted text back to on-disk bytes.
func encode(text, encoding string) ([]byte, error) {
	if encoding != "latin-1" {
		return []byte(text), nil
	}
	return charmap.ISO8859_1.NewEncoder().Bytes([]byte(text))
}

func lineCount(s string) int {
	if s == "" {
		return 0
	}
	n := strings.Count(s, "\n")
	if !strings.HasSuffix(s, "\n") {
		n++
	}
	return n
}

func diffPrinter(opts *Options) diff.Printer {
	return diff.Printer{Color: isTerminal(opts.Stdout)}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// writeOut writes to stdout.
func writeOut(w io.Writer, s string) {
	fmt.Fprint(w, s)
}

// writeErr formats and writes to stderr.
func writeErr(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, format, args...)
}
