// Package main provides the entry point for the verbs CLI.
package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gorewood/verbs/internal/output"
)

// executeWithStdin runs the CLI with args and a stdin payload.
func executeWithStdin(t *testing.T, stdin string, args ...string) (stdout, stderr string, err error) {
	t.Helper()

	dir := t.TempDir()
	old, wdErr := os.Getwd()
	if wdErr != nil {
		t.Fatal(wdErr)
	}
	if chErr := os.Chdir(dir); chErr != nil {
		t.Fatal(chErr)
	}
	t.Cleanup(func() { _ = os.Chdir(old) })
	t.Setenv("VERBS_CONFIG_HOME", filepath.Join(dir, "config"))

	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestRenderCommand_Stdin(t *testing.T) {
	t.Run("tab separated lines", func(t *testing.T) {
		stdin := "Espresso\t2.50\nLatte\t3.50\n"
		stdout, _, err := executeWithStdin(t, stdin, "render", "--stdin", "%-10s $%5.2f")
		if err != nil {
			t.Fatalf("command error: %v", err)
		}
		want := "Espresso   $ 2.50\nLatte      $ 3.50\n"
		if stdout != want {
			t.Errorf("stdout = %q, want %q", stdout, want)
		}
	})

	t.Run("whitespace separated lines", func(t *testing.T) {
		stdout, _, err := executeWithStdin(t, "1\n2\n3\n", "render", "--stdin", "file_%03d.txt")
		if err != nil {
			t.Fatalf("command error: %v", err)
		}
		want := "file_001.txt\nfile_002.txt\nfile_003.txt\n"
		if stdout != want {
			t.Errorf("stdout = %q, want %q", stdout, want)
		}
	})

	t.Run("blank lines skipped", func(t *testing.T) {
		stdout, _, err := executeWithStdin(t, "a\n\nb\n", "render", "--stdin", "[%s]")
		if err != nil {
			t.Fatalf("command error: %v", err)
		}
		if stdout != "[a]\n[b]\n" {
			t.Errorf("stdout = %q", stdout)
		}
	})

	t.Run("bad line keeps going and fails at the end", func(t *testing.T) {
		stdout, stderr, err := executeWithStdin(t, "1\nnot-a-number\n3\n", "render", "--stdin", "%03d")
		if output.GetExitCode(err) != output.ExitUserError {
			t.Fatalf("exit code = %d, want %d", output.GetExitCode(err), output.ExitUserError)
		}
		if !strings.Contains(stdout, "001") || !strings.Contains(stdout, "003") {
			t.Errorf("good lines missing from stdout %q", stdout)
		}
		if !strings.Contains(stderr, "line 2") {
			t.Errorf("stderr = %q, want the failing line named", stderr)
		}
	})

	t.Run("json mode collects results", func(t *testing.T) {
		stdout, _, err := executeWithStdin(t, "7\n", "--json", "render", "--stdin", "%02d")
		if err != nil {
			t.Fatalf("command error: %v", err)
		}
		var got struct {
			Count   int `json:"count"`
			Results []struct {
				Line   int    `json:"line"`
				Output string `json:"output"`
			} `json:"results"`
		}
		if err := json.Unmarshal([]byte(stdout), &got); err != nil {
			t.Fatalf("stdout is not JSON: %v (%q)", err, stdout)
		}
		if got.Count != 1 || got.Results[0].Output != "07" {
			t.Errorf("got %+v", got)
		}
	})

	t.Run("command line args rejected", func(t *testing.T) {
		_, _, err := executeWithStdin(t, "", "render", "--stdin", "%s", "extra")
		if output.GetExitCode(err) != output.ExitUserError {
			t.Errorf("exit code = %d, want %d", output.GetExitCode(err), output.ExitUserError)
		}
	})
}
