// Package main provides the entry point for the verbs CLI.
package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gorewood/verbs/internal/inspect"
	"github.com/gorewood/verbs/internal/output"
	"github.com/gorewood/verbs/internal/printf"
)

// newExplainCmd creates the explain command.
func newExplainCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "explain <format>",
		Short: "Break a format string into its placeholders",
		Long: `Break a printf-style format string into its placeholders and describe
what each one does: verb, flags, width, precision, and which argument it
renders.

Examples:
  verbs explain "%-10s $%5.2f"
  verbs explain "file_%03d.txt" --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExplain(cmd, args[0])
		},
	}
}

// runExplain executes the explain command.
func runExplain(cmd *cobra.Command, format string) error {
	printer := newPrinter(cmd)

	tmpl, err := printf.Parse(format)
	if err != nil {
		userErr := output.NewUserErrorWithCause(err.Error(), err)
		printer.Error(userErr)
		return userErr
	}

	details := inspect.Explain(tmpl)

	if printer.IsJSON() {
		return printer.WriteJSON(map[string]any{
			"format":       format,
			"arg_count":    tmpl.MaxArg(),
			"placeholders": details,
		})
	}

	outputExplainHuman(printer, format, tmpl.MaxArg(), details)
	return nil
}

// outputExplainHuman renders the placeholder table.
func outputExplainHuman(printer *output.Printer, format string, argCount int, details []inspect.Detail) {
	printer.KeyValue("Format", fmt.Sprintf("%q", format))
	printer.KeyValue("Arguments", fmt.Sprintf("%d", argCount))

	if len(details) == 0 {
		printer.Println("No placeholders: the format string renders as literal text.")
		return
	}

	printer.Section("Placeholders")
	rows := make([][]string, 0, len(details))
	for _, d := range details {
		rows = append(rows, []string{
			d.Raw,
			fmt.Sprintf("%d", d.Arg),
			d.Description,
			strings.Join(d.Flags, ", "),
		})
	}
	printer.Table([]string{"PLACEHOLDER", "ARG", "MEANING", "FLAGS"}, rows)
}
