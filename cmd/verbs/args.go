// Package main provides the entry point for the verbs CLI.
package main

import "strconv"

// parseArgs converts command-line argument strings into typed values, so
// "42" renders as an integer under %d and "3.5" as a float under %f.
// With literal=true every argument stays a string and numeric verbs fall
// back to the engine's own string coercion.
func parseArgs(raw []string, literal bool) []any {
	args := make([]any, 0, len(raw))
	for _, s := range raw {
		if literal {
			args = append(args, s)
			continue
		}
		args = append(args, inferArg(s))
	}
	return args
}

// inferArg picks the most specific type a CLI string can hold.
func inferArg(s string) any {
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	if b, err := strconv.ParseBool(s); err == nil {
		return b
	}
	return s
}
