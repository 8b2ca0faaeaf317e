package cli

import (
	"fmt"
	"strconv"

	"github.com/cppstart-labs/cppstart/internal/config"
	"github.com/cppstart-labs/cppstart/internal/profile"
	"github.com/cppstart-labs/cppstart/internal/project"
	"github.com/cppstart-labs/cppstart/internal/scaffold"
	"github.com/spf13/cobra"
)

var (
	newOutputDir string
	newStd       int
	newSkipGit   bool
	newProfile   string
	newNoInput   bool
)

func init() {
	newCmd.Flags().StringVar(&newOutputDir, "output-dir", ".", "Parent directory for the project root")
	newCmd.Flags().IntVar(&newStd, "std", scaffold.DefaultStd, "C++ standard (11, 14, 17, 20, 23)")
	newCmd.Flags().BoolVar(&newSkipGit, "skip-git", false, "Do not initialize a Git repository")
	newCmd.Flags().StringVar(&newProfile, "profile", "", "Path to a scaffolding profile YAML")
	newCmd.Flags().BoolVar(&newNoInput, "no-input", false, "Fail instead of prompting when no name is given")
	rootCmd.AddCommand(newCmd)
}

var newCmd = &cobra.Command{
	Use:   "new [name]",
	Short: "Scaffold a new C++ project",
	Long: `Scaffold a new C++ project: directory layout, CMake build descriptors,
.gitignore, README, starter sources, and a Git repository.

With no name argument, you are prompted until a valid name is entered.
Names may contain letters, digits, underscores, and hyphens only.

Examples:
  cppstart new my-app
  cppstart new my-app --std 20 --skip-git
  cppstart new --profile embedded.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runNew,
}

func runNew(cmd *cobra.Command, args []string) error {
	config.Load()

	var name string
	if len(args) == 1 {
		name = args[0]
		if err := project.ValidateName(name); err != nil {
			return err
		}
	} else {
		if newNoInput {
			return fmt.Errorf("a project name is required with --no-input")
		}
		var err error
		name, err = promptForName(cmd.InOrStdin(), cmd.ErrOrStderr())
		if err != nil {
			return err
		}
	}

	// Profile: flag wins over the configured default.
	profilePath := newProfile
	if profilePath == "" {
		profilePath = config.Get(config.KeyDefaultProfile)
	}
	var prof *profile.Profile
	if profilePath != "" {
		p, err := profile.Load(profilePath)
		if err != nil {
			return err
		}
		prof = p
	}

	data := scaffold.NewProjectData(name)

	// Standard precedence: flag > profile > user config > built-in default.
	switch {
	case cmd.Flags().Changed("std"):
		data.Std = newStd
	case prof != nil && prof.CxxStandard != 0:
		data.Std = prof.CxxStandard
	case config.Get(config.KeyDefaultStd) != "":
		raw := config.Get(config.KeyDefaultStd)
		std, err := strconv.Atoi(raw)
		if err != nil {
			return fmt.Errorf("config %s: %q is not a number", config.KeyDefaultStd, raw)
		}
		data.Std = std
	}
	if !scaffold.ValidStd(data.Std) {
		return fmt.Errorf("unsupported C++ standard %d: choose one of 11, 14, 17, 20, 23", data.Std)
	}

	if prof != nil && prof.CMakeMinimumVersion != "" {
		data.CMakeMinVersion = prof.CMakeMinimumVersion
	}

	initGit := config.GetBool(config.KeyGitEnabled, true)
	if prof != nil && !prof.GitEnabled() {
		initGit = false
	}
	if newSkipGit {
		initGit = false
	}

	opts := scaffold.Options{
		ParentDir: newOutputDir,
		InitGit:   initGit,
	}
	if prof != nil {
		opts.ExtraDirs = prof.ExtraDirs
	}

	result, err := scaffold.Generate(data, opts)
	if err != nil {
		return err
	}

	printResult(cmd, name, result)
	return nil
}

// printResult writes the created-structure summary to stdout and warnings
// to stderr, so piping the summary stays clean.
func printResult(cmd *cobra.Command, name string, result *scaffold.Result) {
	out := cmd.OutOrStdout()

	for _, w := range result.Warnings {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: %s\n", w)
	}

	fmt.Fprintf(out, "Project '%s' created at %s/\n", name, result.Root)
	for _, d := range result.Dirs {
		fmt.Fprintf(out, "  %s/\n", d)
	}
	for _, f := range result.Files {
		fmt.Fprintf(out, "  %s\n", f)
	}
	if result.GitInitialized {
		fmt.Fprintln(out, "Initialized empty Git repository.")
	}

	fmt.Fprintln(out, "\nNext steps:")
	fmt.Fprintf(out, "  1. cd %s\n", result.Root)
	fmt.Fprintln(out, "  2. cmake -B build && cmake --build build")
	fmt.Fprintf(out, "  3. ./build/bin/%s\n", name)
}
