package inspect

import (
	"strings"
	"testing"

	"github.com/gorewood/verbs/internal/printf"
)

func TestExplain(t *testing.T) {
	tests := []struct {
		name   string
		format string
		want   []Detail
	}{
		{
			name:   "zero padded decimal",
			format: "file_%03d.txt",
			want: []Detail{{
				Raw:         "%03d",
				Offset:      5,
				Arg:         1,
				Verb:        "d",
				VerbName:    "signed decimal integer",
				Flags:       []string{"pad with zeros"},
				Width:       "3",
				Description: "signed decimal integer, zero-padded to a minimum width of 3",
			}},
		},
		{
			name:   "price row",
			format: "%-10s $%5.2f",
			want: []Detail{
				{
					Raw:         "%-10s",
					Offset:      0,
					Arg:         1,
					Verb:        "s",
					VerbName:    "string",
					Flags:       []string{"left-justify"},
					Width:       "10",
					Description: "string, left-justified in a field of 10",
				},
				{
					Raw:         "%5.2f",
					Offset:      7,
					Arg:         2,
					Verb:        "f",
					VerbName:    "fixed-point decimal",
					Width:       "5",
					Precision:   "2",
					Description: "fixed-point decimal, right-justified in a field of 5, 2 decimal places",
				},
			},
		},
		{
			name:   "positional",
			format: "%1$s",
			want: []Detail{{
				Raw:         "%1$s",
				Offset:      0,
				Arg:         1,
				Verb:        "s",
				VerbName:    "string",
				Description: "string, argument 1 explicitly",
			}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpl, err := printf.Parse(tt.format)
			if err != nil {
				t.Fatalf("Parse(%q) error: %v", tt.format, err)
			}
			got := Explain(tmpl)
			if len(got) != len(tt.want) {
				t.Fatalf("got %d details, want %d", len(got), len(tt.want))
			}
			for i, want := range tt.want {
				d := got[i]
				if d.Raw != want.Raw || d.Offset != want.Offset || d.Arg != want.Arg ||
					d.Verb != want.Verb || d.VerbName != want.VerbName ||
					d.Width != want.Width || d.Precision != want.Precision ||
					d.Description != want.Description {
					t.Errorf("detail %d = %+v, want %+v", i, d, want)
				}
				if strings.Join(d.Flags, "|") != strings.Join(want.Flags, "|") {
					t.Errorf("detail %d flags = %v, want %v", i, d.Flags, want.Flags)
				}
			}
		})
	}
}

func TestExplain_StarForms(t *testing.T) {
	tmpl, err := printf.Parse("%*.*f")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	details := Explain(tmpl)
	if details[0].Width != "*" || details[0].Precision != "*" {
		t.Errorf("star forms = width %q precision %q, want \"*\" and \"*\"", details[0].Width, details[0].Precision)
	}
	// The value argument follows the two star arguments.
	if details[0].Arg != 3 {
		t.Errorf("Arg = %d, want 3", details[0].Arg)
	}
}
