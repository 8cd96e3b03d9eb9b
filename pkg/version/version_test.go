package version

import (
	"strings"
	"testing"
)

func TestFullString(t *testing.T) {
	old := Version
	defer func() { Version = old }()

	Version = "dev"
	if got := FullString(); got != "diff-violations development version" {
		t.Errorf("FullString() = %q", got)
	}

	Version = "1.2.0"
	if got := FullString(); !strings.HasPrefix(got, "diff-violations 1.2.0 (") {
		t.Errorf("FullString() = %q", got)
	}
}

func TestInfo(t *testing.T) {
	info := Info()
	for _, key := range []string{"version", "buildDate", "gitCommit", "goVersion"} {
		if info[key] == "" {
			t.Errorf("Info()[%q] is empty", key)
		}
	}
}
