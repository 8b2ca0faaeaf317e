package scaffold

import (
	"fmt"
	"os"
)

// ensureDir creates a directory and any missing ancestors. It succeeds
// silently when the directory already exists, but rejects a non-directory
// occupying the path.
func ensureDir(path string) error {
	if info, err := os.Stat(path); err == nil {
		if info.IsDir() {
			return nil
		}
		return fmt.Errorf("%s exists but is not a directory", path)
	}

	if err := os.MkdirAll(path, 0755); err != nil {
		return fmt.Errorf("creating directory %s: %w", path, err)
	}
	return nil
}

// writeFile creates or overwrites a file with exact content. Re-running a
// scaffold against the same name overwrites without confirmation.
func writeFile(path, content string) error {
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
