package inspect

import (
	"strings"
	"testing"

	"github.com/gorewood/verbs/internal/printf"
)

func mustParse(t *testing.T, format string) *printf.Template {
	t.Helper()
	tmpl, err := printf.Parse(format)
	if err != nil {
		t.Fatalf("Parse(%q) error: %v", format, err)
	}
	return tmpl
}

func TestCheck(t *testing.T) {
	tests := []struct {
		name         string
		format       string
		args         []any
		checkArgs    bool
		wantErrors   bool
		wantMessages []string
	}{
		{
			name:      "clean",
			format:    "%-10s $%5.2f",
			args:      []any{"Latte", 3.5},
			checkArgs: true,
		},
		{
			name:         "too few arguments",
			format:       "%s %s",
			args:         []any{"one"},
			checkArgs:    true,
			wantErrors:   true,
			wantMessages: []string{"missing argument 2"},
		},
		{
			name:         "too many arguments",
			format:       "%s",
			args:         []any{"a", "b", "c"},
			checkArgs:    true,
			wantMessages: []string{"3 arguments given"},
		},
		{
			name:         "uncoercible argument",
			format:       "status %d",
			args:         []any{"fast"},
			checkArgs:    true,
			wantErrors:   true,
			wantMessages: []string{"cannot render"},
		},
		{
			name:         "sign flag on unsigned verb",
			format:       "%+x",
			args:         []any{255},
			checkArgs:    true,
			wantMessages: []string{"sign flags have no effect"},
		},
		{
			name:         "zero with minus",
			format:       "%-05d",
			checkArgs:    false,
			wantMessages: []string{"'0' is ignored when '-' is given"},
		},
		{
			name:         "zero on string verb",
			format:       "%05s",
			checkArgs:    false,
			wantMessages: []string{"'0' has no effect"},
		},
		{
			name:         "length modifier warning",
			format:       "%lld",
			checkArgs:    false,
			wantMessages: []string{"length modifier"},
		},
		{
			name:      "positional reuse needs one argument",
			format:    "%1$s vs %1$s",
			args:      []any{"coffee"},
			checkArgs: true,
		},
		{
			name:         "star width from bad argument",
			format:       "%*d",
			args:         []any{"wide", 42},
			checkArgs:    true,
			wantErrors:   true,
			wantMessages: []string{"width argument"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			findings := Check(mustParse(t, tt.format), tt.args, tt.checkArgs)
			if got := HasErrors(findings); got != tt.wantErrors {
				t.Errorf("HasErrors = %v, want %v (findings: %+v)", got, tt.wantErrors, findings)
			}
			for _, want := range tt.wantMessages {
				if !containsMessage(findings, want) {
					t.Errorf("no finding contains %q (findings: %+v)", want, findings)
				}
			}
			if len(tt.wantMessages) == 0 && len(findings) != 0 {
				t.Errorf("want no findings, got %+v", findings)
			}
		})
	}
}

func containsMessage(findings []Finding, substr string) bool {
	for _, f := range findings {
		if strings.Contains(f.Message, substr) {
			return true
		}
	}
	return false
}
