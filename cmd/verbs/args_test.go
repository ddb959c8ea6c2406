// Package main provides the entry point for the verbs CLI.
package main

import (
	"reflect"
	"testing"
)

func TestParseArgs(t *testing.T) {
	tests := []struct {
		name    string
		raw     []string
		literal bool
		want    []any
	}{
		{
			name: "inference",
			raw:  []string{"42", "3.5", "true", "hello", "-7"},
			want: []any{int64(42), 3.5, true, "hello", int64(-7)},
		},
		{
			name:    "literal",
			raw:     []string{"42", "true"},
			literal: true,
			want:    []any{"42", "true"},
		},
		{
			name: "empty",
			raw:  nil,
			want: []any{},
		},
		{
			name: "integer wins over float",
			raw:  []string{"7"},
			want: []any{int64(7)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseArgs(tt.raw, tt.literal)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("parseArgs(%v, %v) = %#v, want %#v", tt.raw, tt.literal, got, tt.want)
			}
		})
	}
}
