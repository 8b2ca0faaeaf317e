// Package scaffold generates a new C++ project skeleton from embedded
// templates. It powers the "cppstart new" command, producing the fixed
// directory layout (src, include, lib, bin, tests, docs), the CMake build
// descriptors, ignore rules, readme, and starter sources, and initializing
// a Git repository in the project root.
//
// Only root-directory creation is fatal. Every other step reports failure
// as a warning on the Result and the run continues, so a single denied
// write never aborts the rest of the scaffolding.
package scaffold
