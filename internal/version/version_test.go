package version

import (
	"strings"
	"testing"
)

func TestStringIncludesVersion(t *testing.T) {
	if Version == "" {
		t.Fatal("Version should have a default value")
	}
	if !strings.Contains(String(), Version) {
		t.Errorf("String() = %q, missing version %q", String(), Version)
	}
}

func TestStringWithBuildMetadata(t *testing.T) {
	origCommit, origDate := GitCommit, BuildDate
	defer func() {
		GitCommit, BuildDate = origCommit, origDate
	}()

	GitCommit = "abc123"
	BuildDate = "2026-01-15T10:30:00Z"

	s := String()
	if !strings.Contains(s, "commit abc123") {
		t.Errorf("String() = %q, missing commit", s)
	}
	if !strings.Contains(s, "built 2026-01-15T10:30:00Z") {
		t.Errorf("String() = %q, missing build date", s)
	}
}

func TestStringWithoutBuildMetadata(t *testing.T) {
	origCommit, origDate := GitCommit, BuildDate
	defer func() {
		GitCommit, BuildDate = origCommit, origDate
	}()

	GitCommit = ""
	BuildDate = ""

	if s := String(); strings.Contains(s, "(") {
		t.Errorf("String() = %q, unexpected metadata section", s)
	}
}
