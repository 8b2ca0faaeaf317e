package scaffold

import (
	"fmt"
	"path/filepath"

	"github.com/cppstart-labs/cppstart/internal/vcs"
)

// initRepo is swapped out in tests to simulate git failures.
var initRepo = vcs.Init

// Generate runs the full scaffolding sequence for data under
// opts.ParentDir: project root, subdirectories, git init, template files.
//
// Root creation is the only fatal step. Subdirectory, git, and file
// failures are collected on Result.Warnings and the run continues, so a
// run that returns a nil error always produced a usable (if partial)
// project tree. There are no retries and no rollback.
func Generate(data *ProjectData, opts Options) (*Result, error) {
	parent := opts.ParentDir
	if parent == "" {
		parent = "."
	}
	root := filepath.Join(parent, data.Name)

	if err := ensureDir(root); err != nil {
		return nil, fmt.Errorf("creating project directory: %w", err)
	}

	result := &Result{Root: root}

	// Fixed subdirectories first, profile extras after.
	dirs := make([]string, 0, len(SubDirs)+len(opts.ExtraDirs))
	dirs = append(dirs, SubDirs...)
	dirs = append(dirs, opts.ExtraDirs...)

	for _, sub := range dirs {
		if err := ensureDir(filepath.Join(root, sub)); err != nil {
			result.Warnings = append(result.Warnings, err.Error())
			continue
		}
		result.Dirs = append(result.Dirs, sub)
	}

	if opts.InitGit {
		if err := initRepo(root); err != nil {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("initializing git repository: %v", err))
		} else {
			result.GitInitialized = true
		}
	}

	for _, tf := range templateFiles {
		content, err := render(tf.src, data)
		if err != nil {
			result.Warnings = append(result.Warnings, err.Error())
			continue
		}
		if err := writeFile(filepath.Join(root, filepath.FromSlash(tf.dst)), content); err != nil {
			result.Warnings = append(result.Warnings, err.Error())
			continue
		}
		result.Files = append(result.Files, tf.dst)
	}

	return result, nil
}
