package cli

import (
	"strings"
	"testing"
)

func TestRunToolChecks(t *testing.T) {
	var out strings.Builder
	runToolChecks(&out)

	s := out.String()
	if !strings.Contains(s, "Tool check:") {
		t.Errorf("missing header:\n%s", s)
	}
	// Every tool gets exactly one status line, found or not.
	for _, tool := range []string{"git", "cmake", "doxygen"} {
		if !strings.Contains(s, tool) {
			t.Errorf("no status line for %s:\n%s", tool, s)
		}
	}
	for _, line := range strings.Split(strings.TrimSpace(s), "\n")[1:] {
		if !strings.HasPrefix(line, "  [") {
			t.Errorf("malformed status line %q", line)
		}
	}
}
