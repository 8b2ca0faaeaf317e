package cli

import (
	"strings"
	"testing"
)

func TestPromptForNameFirstTry(t *testing.T) {
	var out strings.Builder
	name, err := promptForName(strings.NewReader("my-app\n"), &out)
	if err != nil {
		t.Fatalf("promptForName() error: %v", err)
	}
	if name != "my-app" {
		t.Errorf("name = %q, want %q", name, "my-app")
	}
}

func TestPromptForNameRepeatsUntilValid(t *testing.T) {
	var out strings.Builder
	input := "bad name!\n\nmy_app2\n"
	name, err := promptForName(strings.NewReader(input), &out)
	if err != nil {
		t.Fatalf("promptForName() error: %v", err)
	}
	if name != "my_app2" {
		t.Errorf("name = %q, want %q", name, "my_app2")
	}

	// One prompt per attempt.
	prompts := strings.Count(out.String(), "Enter project name")
	if prompts != 3 {
		t.Errorf("prompted %d times, want 3\n--- output ---\n%s", prompts, out.String())
	}
	if !strings.Contains(out.String(), "bad name!") {
		t.Errorf("rejection message should mention the bad name:\n%s", out.String())
	}
}

func TestPromptForNameCRLF(t *testing.T) {
	var out strings.Builder
	name, err := promptForName(strings.NewReader("my-app\r\n"), &out)
	if err != nil {
		t.Fatalf("promptForName() error: %v", err)
	}
	if name != "my-app" {
		t.Errorf("name = %q, want %q", name, "my-app")
	}
}

func TestPromptForNameDoesNotTrimSpaces(t *testing.T) {
	var out strings.Builder
	_, err := promptForName(strings.NewReader(" padded \n"), &out)
	if err == nil {
		t.Fatal("expected abort after invalid input hits EOF")
	}
}

func TestPromptForNameEOFAborts(t *testing.T) {
	var out strings.Builder
	_, err := promptForName(strings.NewReader(""), &out)
	if err == nil {
		t.Fatal("expected error on immediate EOF")
	}
}

func TestPromptForNameValidFinalLineWithoutNewline(t *testing.T) {
	var out strings.Builder
	name, err := promptForName(strings.NewReader("my-app"), &out)
	if err != nil {
		t.Fatalf("promptForName() error: %v", err)
	}
	if name != "my-app" {
		t.Errorf("name = %q, want %q", name, "my-app")
	}
}
