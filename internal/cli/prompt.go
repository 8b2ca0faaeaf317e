package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/cppstart-labs/cppstart/internal/project"
)

// promptForName asks for a project name on r until a valid one is entered.
// Only the line terminator is stripped; the name itself is never trimmed or
// normalized. EOF (or any read error) aborts with an error, which the
// caller surfaces as a nonzero exit.
func promptForName(r io.Reader, w io.Writer) (string, error) {
	reader := bufio.NewReader(r)

	for {
		fmt.Fprint(w, "Enter project name (letters, digits, underscores, and hyphens only): ")

		line, err := reader.ReadString('\n')
		name := strings.TrimRight(line, "\r\n")

		if vErr := project.ValidateName(name); vErr == nil {
			return name, nil
		} else if err == nil {
			fmt.Fprintf(w, "%v\n", vErr)
			continue
		}

		fmt.Fprintln(w)
		return "", fmt.Errorf("no valid project name entered: %w", err)
	}
}
