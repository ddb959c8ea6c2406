// Package main provides the entry point for the verbs CLI.
package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gorewood/verbs/internal/library"
	"github.com/gorewood/verbs/internal/output"
	"github.com/gorewood/verbs/internal/printf"
)

// renderFlags holds the flags of the render command.
type renderFlags struct {
	template  string
	literal   bool
	noNewline bool
	stdin     bool
}

// newRenderCmd creates the render command.
func newRenderCmd() *cobra.Command {
	var flags renderFlags

	cmd := &cobra.Command{
		Use:   "render [<format>] [args...]",
		Short: "Render a format string against arguments",
		Long: `Render a printf-style format string against a list of arguments.

Arguments are typed by inference: "42" becomes an integer, "3.5" a float,
"true" a boolean, everything else a string. Use --strings to pass every
argument through as a string.

Examples:
  verbs render "%02d" 7                        # 07
  verbs render "%.3f" 0.16666                  # 0.167
  verbs render "%2$s %1$s" world hello         # hello world
  verbs render --template sequence-file 7      # file_007.txt
  verbs render -n "%s" ready                   # no trailing newline

With --stdin the template renders once per input line, each line split
into arguments (tab-separated when a tab is present):

  printf "Espresso\t2.50\nLatte\t3.50\n" | verbs render --stdin --template price-row`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, args, flags)
		},
	}

	cmd.Flags().StringVarP(&flags.template, "template", "t", "", "Render a library template instead of a format argument")
	cmd.Flags().BoolVar(&flags.literal, "strings", false, "Treat every argument as a string")
	cmd.Flags().BoolVarP(&flags.noNewline, "no-newline", "n", false, "Do not print a trailing newline")
	cmd.Flags().BoolVar(&flags.stdin, "stdin", false, "Render once per input line, splitting each line into arguments")

	return cmd
}

// runRender executes the render command.
func runRender(cmd *cobra.Command, args []string, flags renderFlags) error {
	printer := newPrinter(cmd)

	format, rest, err := resolveRenderFormat(args, flags.template)
	if err != nil {
		printer.Error(err)
		return err
	}

	tmpl, err := printf.Parse(format)
	if err != nil {
		userErr := output.NewUserErrorWithCause(err.Error(), err)
		printer.Error(userErr)
		return userErr
	}

	if flags.stdin {
		if len(rest) > 0 {
			userErr := output.NewUserError("--stdin takes arguments from input lines, not the command line")
			printer.Error(userErr)
			return userErr
		}
		return runRenderBatch(printer, cmd.InOrStdin(), tmpl, flags)
	}

	out, err := tmpl.Format(parseArgs(rest, flags.literal)...)
	if err != nil {
		userErr := output.NewUserErrorWithCause(err.Error(), err)
		printer.Error(userErr)
		return userErr
	}

	if printer.IsJSON() {
		return printer.WriteJSON(map[string]any{"output": out})
	}
	if flags.noNewline {
		printer.Print("%s", out)
		return nil
	}
	printer.Println(out)
	return nil
}

// resolveRenderFormat determines the format string and the value arguments,
// from either the first positional argument or a library template.
func resolveRenderFormat(args []string, templateName string) (string, []string, error) {
	if templateName != "" {
		tmpl, err := library.Load(templateName)
		if err != nil {
			if errors.Is(err, library.ErrNotFound) {
				return "", nil, output.NewUserError(fmt.Sprintf("template %q not found; run 'verbs template list'", templateName))
			}
			return "", nil, output.NewSystemError(err.Error())
		}
		return tmpl.Format, args, nil
	}
	if len(args) == 0 {
		return "", nil, output.NewUserError("missing <format> argument; usage: verbs render \"<format>\" [args...]")
	}
	return args[0], args[1:], nil
}
