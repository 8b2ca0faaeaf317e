// Package config manages user-level settings stored at ~/.cppstart/config.yaml.
// It provides functions to load, read, and write configuration keys such as
// the default C++ standard and the default scaffolding profile path.
package config
