package vcs

import (
	"fmt"
	"os/exec"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Init initializes a Git repository in dir. Stdout and stderr of the git
// subprocess are captured, never streamed; on a nonzero exit the trimmed
// output is folded into the returned error. A missing git binary is an
// error too — callers treat both the same way.
func Init(dir string) error {
	if err := ensureGit(); err != nil {
		return err
	}

	cmd := exec.Command("git", "init")
	cmd.Dir = dir
	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("git init in %s: %w\n%s", dir, err, strings.TrimSpace(string(output)))
	}
	return nil
}

// Version returns the version of the git binary on PATH, parsed from
// `git --version` output (e.g., "git version 2.39.2").
func Version() (*semver.Version, error) {
	if err := ensureGit(); err != nil {
		return nil, err
	}

	output, err := exec.Command("git", "--version").CombinedOutput()
	if err != nil {
		return nil, fmt.Errorf("running git --version: %w", err)
	}
	return ParseToolVersion(string(output))
}

// ParseToolVersion extracts a semver from tool banner output such as
// "git version 2.39.2" or "cmake version 3.28.1". The last
// whitespace-separated field that parses as a version wins; trailing
// platform suffixes like "2.39.2 (Apple Git-145)" are tolerated.
func ParseToolVersion(banner string) (*semver.Version, error) {
	line := banner
	if idx := strings.IndexByte(banner, '\n'); idx >= 0 {
		line = banner[:idx]
	}

	fields := strings.Fields(line)
	for i := len(fields) - 1; i >= 0; i-- {
		if v, err := semver.NewVersion(strings.TrimPrefix(fields[i], "v")); err == nil {
			return v, nil
		}
	}
	return nil, fmt.Errorf("no version found in %q", strings.TrimSpace(line))
}

// ensureGit verifies the git binary is available on PATH.
func ensureGit() error {
	if _, err := exec.LookPath("git"); err != nil {
		return fmt.Errorf("git is required but not found in PATH")
	}
	return nil
}
