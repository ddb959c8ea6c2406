// Package main provides the entry point for the verbs CLI.
package main

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/gorewood/verbs/internal/output"
)

func TestRenderCommand(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		want     string
		wantErr  bool
		wantCode int
	}{
		{
			name: "zero padded integer",
			args: []string{"render", "%02d", "7"},
			want: "07\n",
		},
		{
			name: "inferred float",
			args: []string{"render", "%.3f", "0.166666"},
			want: "0.167\n",
		},
		{
			name: "positional arguments",
			args: []string{"render", "%2$s %1$s", "world", "hello"},
			want: "hello world\n",
		},
		{
			name: "no trailing newline",
			args: []string{"render", "-n", "%s", "ready"},
			want: "ready",
		},
		{
			name: "strings flag keeps digits literal",
			args: []string{"render", "--strings", "%c", "7"},
			want: "7\n",
		},
		{
			name: "builtin template",
			args: []string{"render", "--template", "sequence-file", "7"},
			want: "file_007.txt\n",
		},
		{
			name:     "missing format",
			args:     []string{"render"},
			wantErr:  true,
			wantCode: output.ExitUserError,
		},
		{
			name:     "malformed format",
			args:     []string{"render", "%y", "1"},
			wantErr:  true,
			wantCode: output.ExitUserError,
		},
		{
			name:     "missing argument",
			args:     []string{"render", "%s and %s", "one"},
			wantErr:  true,
			wantCode: output.ExitUserError,
		},
		{
			name:     "unknown template",
			args:     []string{"render", "--template", "nope"},
			wantErr:  true,
			wantCode: output.ExitUserError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, _, err := executeCommand(t, tt.args...)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("command succeeded, want error (stdout: %q)", stdout)
				}
				if got := output.GetExitCode(err); got != tt.wantCode {
					t.Errorf("exit code = %d, want %d", got, tt.wantCode)
				}
				return
			}
			if err != nil {
				t.Fatalf("command error: %v", err)
			}
			if stdout != tt.want {
				t.Errorf("stdout = %q, want %q", stdout, tt.want)
			}
		})
	}
}

func TestRenderCommand_JSON(t *testing.T) {
	stdout, _, err := executeCommand(t, "--json", "render", "file_%03d.txt", "7")
	if err != nil {
		t.Fatalf("command error: %v", err)
	}

	var got map[string]any
	if err := json.Unmarshal([]byte(stdout), &got); err != nil {
		t.Fatalf("stdout is not JSON: %v (%q)", err, stdout)
	}
	if got["output"] != "file_007.txt" {
		t.Errorf("output = %v, want file_007.txt", got["output"])
	}
}

func TestRenderCommand_ErrorNamesPlaceholder(t *testing.T) {
	_, stderr, err := executeCommand(t, "render", "%d", "fast")
	if err == nil {
		t.Fatal("command succeeded, want error")
	}
	if !strings.Contains(stderr, "%d") || !strings.Contains(stderr, "fast") {
		t.Errorf("stderr = %q, want the placeholder and value named", stderr)
	}
}
