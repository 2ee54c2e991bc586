// Package testutil provides shared test helpers for golden file testing.
package testutil

import (
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/donaldgifford/fortfmt/internal/config"
)

// Update is a flag that, when set, regenerates golden files from current output.
// Usage: go test ./... -update
var Update = flag.Bool("update", false, "update golden files")

// FormatFunc is the signature for a function that formats Fortran source.
// name is the input fixture's file name, used for layout detection.
type FormatFunc func(name, input string, cfg *config.Config) string

// RunGolden runs a single golden file test in the given directory. It reads
// the input.* fixture, formats it under the directory's config.yml (or the
// defaults when there is none), and compares against the expected.* fixture
// of the same extension.
func RunGolden(t *testing.T, dir string, formatFn FormatFunc) {
	t.Helper()

	inputPath := findFixture(t, dir, "input")
	expectedPath := filepath.Join(dir, "expected"+filepath.Ext(inputPath))

	cfg := loadFixtureConfig(t, dir)

	inputBytes, err := os.ReadFile(inputPath)
	if err != nil {
		t.Fatalf("failed to read %s: %v", inputPath, err)
	}

	actual := formatFn(filepath.Base(inputPath), string(inputBytes), cfg)

	if *Update {
		if err := os.WriteFile(expectedPath, []byte(actual), 0o644); err != nil {
			t.Fatalf("failed to update golden file %s: %v", expectedPath, err)
		}
		t.Logf("updated golden file: %s", expectedPath)
		return
	}

	expectedBytes, err := os.ReadFile(expectedPath)
	if err != nil {
		t.Fatalf("failed to read %s: %v", expectedPath, err)
	}

	expected := string(expectedBytes)
	if actual != expected {
		t.Errorf("output mismatch for %s:\n--- expected\n%s\n--- actual\n%s", dir, expected, actual)
	}
}

// RunGoldenDir walks all subdirectories under testdataDir and runs
// RunGolden for each as a subtest.
func RunGoldenDir(t *testing.T, testdataDir string, formatFn FormatFunc) {
	t.Helper()

	entries, err := os.ReadDir(testdataDir)
	if err != nil {
		t.Fatalf("failed to read testdata dir %s: %v", testdataDir, err)
	}

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		t.Run(entry.Name(), func(t *testing.T) {
			dir := filepath.Join(testdataDir, entry.Name())
			RunGolden(t, dir, formatFn)
		})
	}
}

// findFixture locates the single "<stem>.*" file in dir.
func findFixture(t *testing.T, dir, stem string) string {
	t.Helper()

	matches, err := filepath.Glob(filepath.Join(dir, stem+".*"))
	if err != nil {
		t.Fatalf("failed to glob %s fixtures in %s: %v", stem, dir, err)
	}
	if len(matches) != 1 {
		t.Fatalf("want exactly one %s.* fixture in %s, found %d", stem, dir, len(matches))
	}
	return matches[0]
}

// loadFixtureConfig loads dir/config.yml, or the defaults when the
// directory has none.
func loadFixtureConfig(t *testing.T, dir string) *config.Config {
	t.Helper()

	path := filepath.Join(dir, "config.yml")
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return config.DefaultConfig()
	}

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("failed to load %s: %v", path, err)
	}
	return cfg
}
