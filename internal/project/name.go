package project

import (
	"fmt"
	"regexp"
)

// namePattern is the full allowed character set for project names. The name
// doubles as the root directory and the CMake project identifier, so it is
// kept to ASCII letters, digits, underscore, and hyphen. No trimming or case
// folding happens before the check.
var namePattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// ValidateName reports whether name is usable as a project name.
// The empty string is rejected.
func ValidateName(name string) error {
	if name == "" {
		return fmt.Errorf("project name cannot be empty")
	}
	if !namePattern.MatchString(name) {
		return fmt.Errorf("invalid project name %q: use only letters, digits, underscores, and hyphens", name)
	}
	return nil
}
