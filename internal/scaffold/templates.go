package scaffold

import (
	"bytes"
	"embed"
	"fmt"
	"text/template"
)

//go:embed templates
var templateFS embed.FS

// templateFile maps an embedded template to its output path, relative to
// the project root. The slice order is the emission order.
type templateFile struct {
	src string // name under templates/
	dst string // slash-separated path under the project root
}

var templateFiles = []templateFile{
	{"gitignore.tmpl", ".gitignore"},
	{"readme.md.tmpl", "README.md"},
	{"cmake_root.tmpl", "CMakeLists.txt"},
	{"cmake_src.tmpl", "src/CMakeLists.txt"},
	{"cmake_tests.tmpl", "tests/CMakeLists.txt"},
	{"cmake_docs.tmpl", "docs/CMakeLists.txt"},
	{"main.cpp.tmpl", "src/main.cpp"},
	{"project_header.h.tmpl", "include/project_header.h"},
	{"test_main.cpp.tmpl", "tests/test_main.cpp"},
}

// render parses and executes one embedded template against data.
func render(name string, data *ProjectData) (string, error) {
	raw, err := templateFS.ReadFile("templates/" + name)
	if err != nil {
		return "", fmt.Errorf("reading template %s: %w", name, err)
	}

	tmpl, err := template.New(name).Parse(string(raw))
	if err != nil {
		return "", fmt.Errorf("parsing template %s: %w", name, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("executing template %s: %w", name, err)
	}
	return buf.String(), nil
}
