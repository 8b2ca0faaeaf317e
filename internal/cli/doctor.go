package cli

import (
	"fmt"
	"io"
	"os/exec"

	"github.com/Masterminds/semver/v3"
	"github.com/cppstart-labs/cppstart/internal/vcs"
	"github.com/spf13/cobra"
)

// Minimum tool versions the generated projects assume. Git below 2.0 predates
// default-safe init behavior; the CMake floor matches the generated
// cmake_minimum_required default.
var (
	minGitVersion   = semver.MustParse("2.0.0")
	minCMakeVersion = semver.MustParse("3.10.0")
)

func init() {
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check scaffolding prerequisites",
	Long: `Check that the tools a generated project relies on (git, cmake, doxygen)
are available on PATH and new enough. Doxygen is optional: the generated docs
target degrades gracefully without it.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		runToolChecks(cmd.OutOrStdout())
		return nil
	},
}

func runToolChecks(w io.Writer) {
	fmt.Fprintln(w, "Tool check:")
	checkTool(w, "git", minGitVersion)
	checkTool(w, "cmake", minCMakeVersion)
	checkTool(w, "doxygen", nil)
}

// checkTool reports presence, resolved path, and version of a tool.
// A nil minimum skips the version gate.
func checkTool(w io.Writer, name string, minimum *semver.Version) {
	path, err := exec.LookPath(name)
	if err != nil {
		fmt.Fprintf(w, "  [MISS] %s not found\n", name)
		return
	}

	output, err := exec.Command(name, "--version").CombinedOutput()
	if err != nil {
		fmt.Fprintf(w, "  [WARN] %s found at %s but --version failed: %v\n", name, path, err)
		return
	}

	v, err := vcs.ParseToolVersion(string(output))
	if err != nil {
		fmt.Fprintf(w, "  [WARN] %s found at %s, version unknown\n", name, path)
		return
	}

	if minimum != nil && v.LessThan(minimum) {
		fmt.Fprintf(w, "  [WARN] %s %s is older than required %s\n", name, v, minimum)
		return
	}
	fmt.Fprintf(w, "  [ OK ] %s %s at %s\n", name, v, path)
}
