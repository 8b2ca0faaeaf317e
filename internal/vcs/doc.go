// Package vcs wraps the Git CLI (via os/exec) for repository initialization
// and version probing. We shell out to `git` rather than using a Go Git
// library because init is the only operation needed and the user's own git
// configuration (default branch, templates, hooks) should apply.
package vcs
