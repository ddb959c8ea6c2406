// Package main provides the entry point for the verbs CLI.
package main

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/gorewood/verbs/internal/output"
)

func TestExplainCommand(t *testing.T) {
	stdout, _, err := executeCommand(t, "explain", "%-10s $%5.2f")
	if err != nil {
		t.Fatalf("command error: %v", err)
	}

	for _, want := range []string{
		"%-10s",
		"%5.2f",
		"string, left-justified in a field of 10",
		"2 decimal places",
		"PLACEHOLDER",
		"Placeholders",
	} {
		if !strings.Contains(stdout, want) {
			t.Errorf("stdout does not contain %q:\n%s", want, stdout)
		}
	}
}

func TestExplainCommand_NoPlaceholders(t *testing.T) {
	stdout, _, err := executeCommand(t, "explain", "plain text")
	if err != nil {
		t.Fatalf("command error: %v", err)
	}
	if !strings.Contains(stdout, "literal text") {
		t.Errorf("stdout = %q, want a literal-text note", stdout)
	}
}

func TestExplainCommand_JSON(t *testing.T) {
	stdout, _, err := executeCommand(t, "--json", "explain", "file_%03d.txt")
	if err != nil {
		t.Fatalf("command error: %v", err)
	}

	var got struct {
		Format       string `json:"format"`
		ArgCount     int    `json:"arg_count"`
		Placeholders []struct {
			Raw      string `json:"raw"`
			Verb     string `json:"verb"`
			VerbName string `json:"verb_name"`
			Width    string `json:"width"`
		} `json:"placeholders"`
	}
	if err := json.Unmarshal([]byte(stdout), &got); err != nil {
		t.Fatalf("stdout is not JSON: %v (%q)", err, stdout)
	}
	if got.ArgCount != 1 {
		t.Errorf("arg_count = %d, want 1", got.ArgCount)
	}
	if len(got.Placeholders) != 1 {
		t.Fatalf("got %d placeholders, want 1", len(got.Placeholders))
	}
	ph := got.Placeholders[0]
	if ph.Raw != "%03d" || ph.Verb != "d" || ph.Width != "3" {
		t.Errorf("placeholder = %+v", ph)
	}
}

func TestExplainCommand_BadFormat(t *testing.T) {
	_, _, err := executeCommand(t, "explain", "%y")
	if output.GetExitCode(err) != output.ExitUserError {
		t.Errorf("exit code = %d, want %d", output.GetExitCode(err), output.ExitUserError)
	}
}
