// Package main provides the entry point for the verbs CLI.
package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gorewood/verbs/internal/inspect"
	"github.com/gorewood/verbs/internal/output"
	"github.com/gorewood/verbs/internal/printf"
)

// checkFlags holds the flags of the check command.
type checkFlags struct {
	literal bool
	strict  bool
}

// newCheckCmd creates the check command.
func newCheckCmd() *cobra.Command {
	var flags checkFlags

	cmd := &cobra.Command{
		Use:   "check <format> [args...]",
		Short: "Lint a format string, optionally against arguments",
		Long: `Lint a printf-style format string: grammar errors, argument count
mismatches, values a verb cannot render, and flags the renderer ignores.

Without arguments only the format string itself is linted. The exit code
is 3 when errors are found (or warnings, with --strict), so check works
in CI pipelines and git hooks.

Examples:
  verbs check "%02d bottles" 99
  verbs check "%s %s" only-one          # error: missing argument 2
  verbs check "%-05d"                   # warning: '0' ignored with '-'
  verbs check --strict "%lld" 7`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, args[0], args[1:], flags)
		},
	}

	cmd.Flags().BoolVar(&flags.literal, "strings", false, "Treat every argument as a string")
	cmd.Flags().BoolVar(&flags.strict, "strict", false, "Treat warnings as errors")

	return cmd
}

// runCheck executes the check command.
func runCheck(cmd *cobra.Command, format string, rawArgs []string, flags checkFlags) error {
	printer := newPrinter(cmd)

	var findings []inspect.Finding
	tmpl, err := printf.Parse(format)
	switch {
	case err != nil:
		var parseErr *printf.ParseError
		if !errors.As(err, &parseErr) {
			sysErr := output.NewSystemError(err.Error())
			printer.Error(sysErr)
			return sysErr
		}
		findings = []inspect.Finding{{
			Severity: inspect.SeverityError,
			Message:  parseErr.Error(),
		}}
	default:
		args := parseArgs(rawArgs, flags.literal)
		findings = inspect.Check(tmpl, args, len(rawArgs) > 0)
	}

	failed := inspect.HasErrors(findings) || (flags.strict && len(findings) > 0)

	if printer.IsJSON() {
		if err := printer.WriteJSON(map[string]any{
			"format":   format,
			"ok":       !failed,
			"findings": findings,
		}); err != nil {
			return err
		}
		if failed {
			return output.NewLintError("format string check failed")
		}
		return nil
	}

	outputCheckHuman(printer, findings)
	if failed {
		return output.NewLintError("format string check failed")
	}
	return nil
}

// outputCheckHuman prints the findings, or a confirmation when clean.
func outputCheckHuman(printer *output.Printer, findings []inspect.Finding) {
	if len(findings) == 0 {
		printer.Println("OK: no problems found.")
		return
	}
	styles := printer.Styles()
	for _, f := range findings {
		prefix := string(f.Severity)
		if f.Severity == inspect.SeverityError {
			prefix = styles.Error.Render(prefix)
		} else {
			prefix = styles.Warning.Render(prefix)
		}
		where := ""
		if f.Placeholder != "" {
			where = fmt.Sprintf(" %s", f.Placeholder)
		}
		printer.Println(fmt.Sprintf("%s:%s %s", prefix, where, f.Message))
	}
}
