package scaffold

// SubDirs is the fixed set of directories created under the project root,
// in creation order. Profiles may append to it but never reorder or remove.
var SubDirs = []string{"src", "include", "lib", "bin", "tests", "docs"}

// Built-in defaults used when neither flags, profile, nor user config
// supply a value.
const (
	DefaultStd             = 17
	DefaultCMakeMinVersion = "3.10"
)

// ValidStds lists the C++ standards the generated CMakeLists.txt accepts.
var ValidStds = []int{11, 14, 17, 20, 23}

// ProjectData holds all template variables available to project templates.
// Template output is fully determined by these fields: no timestamps, no
// environment reads, no randomness.
type ProjectData struct {
	Name            string // project and binary target name, e.g. "my-app"
	Std             int    // C++ standard, e.g. 17
	CMakeMinVersion string // cmake_minimum_required value, e.g. "3.10"
}

// NewProjectData creates a ProjectData with defaults filled in.
func NewProjectData(name string) *ProjectData {
	return &ProjectData{
		Name:            name,
		Std:             DefaultStd,
		CMakeMinVersion: DefaultCMakeMinVersion,
	}
}

// ValidStd reports whether std is a supported C++ standard.
func ValidStd(std int) bool {
	for _, s := range ValidStds {
		if s == std {
			return true
		}
	}
	return false
}

// Options control a single Generate run.
type Options struct {
	// ParentDir is where the project root is created. Empty means ".".
	ParentDir string

	// InitGit runs `git init` in the new root when true.
	InitGit bool

	// ExtraDirs are created after the fixed SubDirs. Callers validate
	// the names before passing them in.
	ExtraDirs []string
}

// Result holds the outcome of a scaffold run.
type Result struct {
	Root           string   // created project root path
	Dirs           []string // subdirectories created, relative to Root
	Files          []string // files written, relative to Root
	GitInitialized bool
	Warnings       []string // non-fatal failures, in occurrence order
}
