// Package main provides the entry point for the verbs CLI.
package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/gorewood/verbs/internal/output"
	"github.com/gorewood/verbs/internal/printf"
)

// batchResult is one rendered line of a batch run, for JSON output.
type batchResult struct {
	Line   int    `json:"line"`
	Output string `json:"output,omitempty"`
	Error  string `json:"error,omitempty"`
}

// runRenderBatch renders the template once per input line. Each line is
// split into fields (tab-separated when a tab is present, whitespace
// otherwise), so both `printf`-style pipelines and TSV exports work:
//
//	printf "Espresso\t2.50\nLatte\t3.50\n" | verbs render --stdin "%-10s $%5.2f"
//
// Lines that fail to render are reported on stderr and the run continues;
// the command fails at the end if any line failed.
func runRenderBatch(printer *output.Printer, in io.Reader, tmpl *printf.Template, flags renderFlags) error {
	scanner := bufio.NewScanner(in)

	var results []batchResult
	failures := 0
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}

		args := parseArgs(splitBatchLine(line), flags.literal)
		out, err := tmpl.Format(args...)
		if err != nil {
			failures++
			if printer.IsJSON() {
				results = append(results, batchResult{Line: lineNo, Error: err.Error()})
			} else {
				printer.Warn("line %d: %v", lineNo, err)
			}
			continue
		}

		if printer.IsJSON() {
			results = append(results, batchResult{Line: lineNo, Output: out})
		} else {
			printer.Println(out)
		}
	}
	if err := scanner.Err(); err != nil {
		sysErr := output.NewSystemError(fmt.Sprintf("reading input: %v", err))
		printer.Error(sysErr)
		return sysErr
	}

	if printer.IsJSON() {
		if err := printer.WriteJSON(map[string]any{
			"count":    len(results),
			"failures": failures,
			"results":  results,
		}); err != nil {
			return err
		}
	}
	if failures > 0 {
		return output.NewUserError(fmt.Sprintf("%d of %d lines failed to render", failures, lineNo))
	}
	return nil
}

// splitBatchLine splits an input line into argument fields. A tab anywhere
// makes the line TSV (fields may then hold spaces); otherwise any run of
// whitespace separates fields.
func splitBatchLine(line string) []string {
	if strings.ContainsRune(line, '\t') {
		return strings.Split(line, "\t")
	}
	return strings.Fields(line)
}
