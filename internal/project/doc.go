// Package project holds the naming rules shared by the CLI and the scaffold
// generator. A project name is both a directory name and a CMake identifier,
// so the same validation applies everywhere.
package project
