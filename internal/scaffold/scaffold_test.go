package scaffold

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewProjectData(t *testing.T) {
	d := NewProjectData("my-app")
	if d.Name != "my-app" {
		t.Errorf("Name = %q, want %q", d.Name, "my-app")
	}
	if d.Std != DefaultStd {
		t.Errorf("Std = %d, want %d", d.Std, DefaultStd)
	}
	if d.CMakeMinVersion != DefaultCMakeMinVersion {
		t.Errorf("CMakeMinVersion = %q, want %q", d.CMakeMinVersion, DefaultCMakeMinVersion)
	}
}

func TestValidStd(t *testing.T) {
	for _, std := range []int{11, 14, 17, 20, 23} {
		if !ValidStd(std) {
			t.Errorf("ValidStd(%d) = false, want true", std)
		}
	}
	for _, std := range []int{0, 3, 16, 98, 26} {
		if ValidStd(std) {
			t.Errorf("ValidStd(%d) = true, want false", std)
		}
	}
}

func TestGenerate(t *testing.T) {
	parent := t.TempDir()

	data := NewProjectData("my-app")
	result, err := Generate(data, Options{ParentDir: parent})
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}

	if result.Root != filepath.Join(parent, "my-app") {
		t.Errorf("Root = %q, want %q", result.Root, filepath.Join(parent, "my-app"))
	}
	if len(result.Warnings) > 0 {
		t.Errorf("unexpected warnings: %v", result.Warnings)
	}

	// All six fixed subdirectories, in order.
	wantDirs := []string{"src", "include", "lib", "bin", "tests", "docs"}
	assertStrings(t, "Dirs", result.Dirs, wantDirs)
	for _, d := range wantDirs {
		info, err := os.Stat(filepath.Join(result.Root, d))
		if err != nil || !info.IsDir() {
			t.Errorf("subdirectory %s missing: %v", d, err)
		}
	}

	// All fixed files, in emission order.
	wantFiles := []string{
		".gitignore",
		"README.md",
		"CMakeLists.txt",
		"src/CMakeLists.txt",
		"tests/CMakeLists.txt",
		"docs/CMakeLists.txt",
		"src/main.cpp",
		"include/project_header.h",
		"tests/test_main.cpp",
	}
	assertStrings(t, "Files", result.Files, wantFiles)

	// Project name is interpolated where the build and readme need it.
	rootCMake := readGenerated(t, result.Root, "CMakeLists.txt")
	assertContains(t, rootCMake, "project(my-app VERSION 1.0 LANGUAGES CXX)")
	assertContains(t, rootCMake, "cmake_minimum_required(VERSION 3.10)")
	assertContains(t, rootCMake, "set(CMAKE_CXX_STANDARD 17)")
	assertContains(t, rootCMake, "add_compile_options(-Wall -Wextra -Wpedantic)")
	assertContains(t, rootCMake, "add_compile_options(/W4 /permissive-)")

	readme := readGenerated(t, result.Root, "README.md")
	assertContains(t, readme, "# my-app")
	assertContains(t, readme, "`src/`: Source files")

	// Header guard is a fixed token, never derived from the name.
	header := readGenerated(t, result.Root, "include/project_header.h")
	assertContains(t, header, "#ifndef PROJECT_HEADER_H")
	assertNotContains(t, header, "my-app")
	assertNotContains(t, header, "MY_APP")

	mainCpp := readGenerated(t, result.Root, "src/main.cpp")
	assertContains(t, mainCpp, `"Hello, World!"`)

	testCpp := readGenerated(t, result.Root, "tests/test_main.cpp")
	assertContains(t, testCpp, "Running tests...")

	gitignore := readGenerated(t, result.Root, ".gitignore")
	assertContains(t, gitignore, "CMakeCache.txt")
	assertContains(t, gitignore, ".DS_Store")
	assertNotContains(t, gitignore, "my-app")

	docsCMake := readGenerated(t, result.Root, "docs/CMakeLists.txt")
	assertContains(t, docsCMake, "find_package(Doxygen)")
	assertContains(t, docsCMake, "if (DOXYGEN_FOUND)")
}

func TestGenerateCustomStdAndCMakeVersion(t *testing.T) {
	parent := t.TempDir()

	data := &ProjectData{Name: "embedded-app", Std: 20, CMakeMinVersion: "3.16"}
	result, err := Generate(data, Options{ParentDir: parent})
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}

	rootCMake := readGenerated(t, result.Root, "CMakeLists.txt")
	assertContains(t, rootCMake, "cmake_minimum_required(VERSION 3.16)")
	assertContains(t, rootCMake, "set(CMAKE_CXX_STANDARD 20)")
}

func TestGenerateExtraDirs(t *testing.T) {
	parent := t.TempDir()

	data := NewProjectData("my-app")
	result, err := Generate(data, Options{ParentDir: parent, ExtraDirs: []string{"third_party", "scripts"}})
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}

	if len(result.Dirs) != len(SubDirs)+2 {
		t.Fatalf("Dirs = %v, want fixed set plus two extras", result.Dirs)
	}
	// Extras come after the fixed set.
	if result.Dirs[len(result.Dirs)-2] != "third_party" || result.Dirs[len(result.Dirs)-1] != "scripts" {
		t.Errorf("extras out of order: %v", result.Dirs)
	}
}

func TestGenerateIdempotent(t *testing.T) {
	parent := t.TempDir()
	data := NewProjectData("my-app")

	first, err := Generate(data, Options{ParentDir: parent})
	if err != nil {
		t.Fatalf("first Generate() error: %v", err)
	}

	// Re-running against the same name overwrites without complaint.
	second, err := Generate(data, Options{ParentDir: parent})
	if err != nil {
		t.Fatalf("second Generate() error: %v", err)
	}
	if len(second.Warnings) > 0 {
		t.Errorf("re-run produced warnings: %v", second.Warnings)
	}
	assertStrings(t, "Dirs", second.Dirs, first.Dirs)
	assertStrings(t, "Files", second.Files, first.Files)
}

func TestGenerateRootCreationFailureIsFatal(t *testing.T) {
	parent := t.TempDir()

	// A regular file where the root should go makes creation fail.
	if err := os.WriteFile(filepath.Join(parent, "my-app"), []byte("in the way"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := Generate(NewProjectData("my-app"), Options{ParentDir: parent})
	if err == nil {
		t.Fatal("expected error when root path is occupied by a file")
	}
	if !strings.Contains(err.Error(), "not a directory") {
		t.Errorf("error should mention the blocking file, got: %v", err)
	}
}

func TestGenerateSubdirFailureIsWarning(t *testing.T) {
	parent := t.TempDir()
	root := filepath.Join(parent, "my-app")

	// Pre-create the root with a file squatting on the lib slot.
	if err := os.MkdirAll(root, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(root, "lib"), []byte("in the way"), 0644); err != nil {
		t.Fatal(err)
	}

	result, err := Generate(NewProjectData("my-app"), Options{ParentDir: parent})
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}

	if len(result.Warnings) != 1 {
		t.Fatalf("Warnings = %v, want exactly one", result.Warnings)
	}
	assertContains(t, result.Warnings[0], "lib")

	// The rest of the tree was still created.
	assertStrings(t, "Dirs", result.Dirs, []string{"src", "include", "bin", "tests", "docs"})
	if _, err := os.Stat(filepath.Join(root, "README.md")); err != nil {
		t.Errorf("README.md missing after partial failure: %v", err)
	}
}

func TestGenerateGitFailureIsWarning(t *testing.T) {
	parent := t.TempDir()

	orig := initRepo
	initRepo = func(dir string) error { return fmt.Errorf("git is required but not found in PATH") }
	defer func() { initRepo = orig }()

	result, err := Generate(NewProjectData("my-app"), Options{ParentDir: parent, InitGit: true})
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}

	if result.GitInitialized {
		t.Error("GitInitialized = true, want false")
	}
	if len(result.Warnings) != 1 || !strings.Contains(result.Warnings[0], "git") {
		t.Errorf("Warnings = %v, want one git warning", result.Warnings)
	}

	// Every file-based artifact is still produced.
	if len(result.Files) != len(templateFiles) {
		t.Errorf("Files = %v, want all %d templates", result.Files, len(templateFiles))
	}
}

func TestGenerateGitSuccess(t *testing.T) {
	parent := t.TempDir()

	calls := 0
	orig := initRepo
	initRepo = func(dir string) error {
		calls++
		if dir != filepath.Join(parent, "my-app") {
			t.Errorf("initRepo dir = %q, want project root", dir)
		}
		return nil
	}
	defer func() { initRepo = orig }()

	result, err := Generate(NewProjectData("my-app"), Options{ParentDir: parent, InitGit: true})
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	if calls != 1 {
		t.Errorf("initRepo called %d times, want 1", calls)
	}
	if !result.GitInitialized {
		t.Error("GitInitialized = false, want true")
	}
}

func TestGenerateSkipGit(t *testing.T) {
	parent := t.TempDir()

	orig := initRepo
	initRepo = func(dir string) error {
		t.Error("initRepo should not be called when InitGit is false")
		return nil
	}
	defer func() { initRepo = orig }()

	result, err := Generate(NewProjectData("my-app"), Options{ParentDir: parent})
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	if result.GitInitialized {
		t.Error("GitInitialized = true, want false")
	}
}

func TestRenderDeterministic(t *testing.T) {
	data := NewProjectData("my-app")
	for _, tf := range templateFiles {
		first, err := render(tf.src, data)
		if err != nil {
			t.Fatalf("render(%s) error: %v", tf.src, err)
		}
		second, err := render(tf.src, data)
		if err != nil {
			t.Fatalf("render(%s) error: %v", tf.src, err)
		}
		if first != second {
			t.Errorf("render(%s) is not deterministic", tf.src)
		}
	}
}

// ─── Test Helpers ──────────────────────────────────────────────────

func readGenerated(t *testing.T, root, rel string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(rel)))
	if err != nil {
		t.Fatalf("reading %s: %v", rel, err)
	}
	return string(data)
}

func assertStrings(t *testing.T, label string, got, want []string) {
	t.Helper()
	if len(got) != len(want) {
		t.Errorf("%s = %v, want %v", label, got, want)
		return
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("%s[%d] = %q, want %q", label, i, got[i], want[i])
		}
	}
}

func assertContains(t *testing.T, content, substr string) {
	t.Helper()
	if !strings.Contains(content, substr) {
		t.Errorf("content does not contain %q\n--- content ---\n%s", substr, content)
	}
}

func assertNotContains(t *testing.T, content, substr string) {
	t.Helper()
	if strings.Contains(content, substr) {
		t.Errorf("content should not contain %q", substr)
	}
}
