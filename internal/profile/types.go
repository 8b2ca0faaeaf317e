package profile

// Profile holds scaffolding defaults loaded from a profile YAML file.
// Every field is optional; zero values mean "use the built-in default".
// CLI flags always win over profile values.
type Profile struct {
	// Name identifies the profile in diagnostics. Purely informational.
	Name string `yaml:"name"`

	// Description is a free-form note about what the profile is for.
	Description string `yaml:"description,omitempty"`

	// CxxStandard selects the C++ standard wired into the generated
	// CMakeLists.txt. One of 11, 14, 17, 20, 23.
	CxxStandard int `yaml:"cxx_standard,omitempty"`

	// CMakeMinimumVersion overrides the cmake_minimum_required() value.
	CMakeMinimumVersion string `yaml:"cmake_minimum_version,omitempty"`

	// Git controls repository initialization. Nil means "on".
	Git *bool `yaml:"git,omitempty"`

	// ExtraDirs lists additional subdirectories created after the fixed
	// set (src, include, lib, bin, tests, docs). Same character rules as
	// project names.
	ExtraDirs []string `yaml:"extra_dirs,omitempty"`
}

// GitEnabled resolves the tri-state Git field.
func (p *Profile) GitEnabled() bool {
	return p.Git == nil || *p.Git
}
