// Package profile handles parsing and validation of scaffolding profiles —
// optional YAML files that supply defaults (C++ standard, CMake minimum
// version, extra directories) for the "cppstart new" command. Profiles are
// validated against an embedded JSON Schema before any value is used.
package profile
