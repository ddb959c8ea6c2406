// Package main provides the entry point for the verbs CLI.
package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gorewood/verbs/internal/library"
	"github.com/gorewood/verbs/internal/output"
)

// newTemplateCmd creates the template command group.
func newTemplateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "template",
		Short: "Manage the named format template library",
		Long: `Manage named format templates.

Templates are YAML files resolved project-local (.verbs/templates/), then
global (the verbs config dir), then built-in. A project template shadows a
global or built-in one with the same name.`,
	}

	cmd.AddCommand(newTemplateListCmd())
	cmd.AddCommand(newTemplateShowCmd())
	cmd.AddCommand(newTemplateSaveCmd())
	cmd.AddCommand(newTemplateRmCmd())

	return cmd
}

// newTemplateListCmd creates the template list command.
func newTemplateListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List available templates",
		RunE: func(cmd *cobra.Command, _ []string) error {
			printer := newPrinter(cmd)
			templates := library.List()

			if printer.IsJSON() {
				return printer.WriteJSON(map[string]any{"templates": templates})
			}

			rows := make([][]string, 0, len(templates))
			for _, info := range templates {
				source := info.Source
				if info.Overrides != "" {
					source += " (shadows " + info.Overrides + ")"
				}
				rows = append(rows, []string{info.Name, info.Format, source, info.Description})
			}
			printer.Table([]string{"NAME", "FORMAT", "SOURCE", "DESCRIPTION"}, rows)
			return nil
		},
	}
}

// newTemplateShowCmd creates the template show command.
func newTemplateShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <name>",
		Short: "Display a single template",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			printer := newPrinter(cmd)

			tmpl, err := library.Load(args[0])
			if err != nil {
				userErr := templateLoadError(args[0], err)
				printer.Error(userErr)
				return userErr
			}

			if printer.IsJSON() {
				return printer.WriteJSON(tmpl)
			}

			var b strings.Builder
			fmt.Fprintf(&b, "Format: %q\n", tmpl.Format)
			fmt.Fprintf(&b, "Source: %s", tmpl.Source)
			if tmpl.Description != "" {
				fmt.Fprintf(&b, "\n\n%s", tmpl.Description)
			}
			printer.Box(tmpl.Name, b.String())
			return nil
		},
	}
}

// newTemplateSaveCmd creates the template save command.
func newTemplateSaveCmd() *cobra.Command {
	var description string
	var global bool

	cmd := &cobra.Command{
		Use:   "save <name> <format>",
		Short: "Save a template to the project or global library",
		Long: `Save a named format template.

By default templates are written to the project-local library
(.verbs/templates/). Use --global to write to the verbs config dir so the
template is available in every repo.

Examples:
  verbs template save invoice "INV-%06d"
  verbs template save ratio "%.1f%%" --global --description "A percentage"`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			printer := newPrinter(cmd)

			tmpl := &library.Template{
				Name:        args[0],
				Description: description,
				Format:      args[1],
			}
			path, err := library.Save(tmpl, global)
			if err != nil {
				userErr := output.NewUserErrorWithCause(err.Error(), err)
				printer.Error(userErr)
				return userErr
			}

			if printer.IsJSON() {
				return printer.WriteJSON(map[string]any{"saved": tmpl.Name, "path": path})
			}
			printer.Println("Saved", tmpl.Name, "to", path)
			return nil
		},
	}

	cmd.Flags().StringVarP(&description, "description", "d", "", "One-line description of the template")
	cmd.Flags().BoolVarP(&global, "global", "g", false, "Save to the global library instead of the project")

	return cmd
}

// newTemplateRmCmd creates the template rm command.
func newTemplateRmCmd() *cobra.Command {
	var global bool

	cmd := &cobra.Command{
		Use:   "rm <name>",
		Short: "Remove a template from the project or global library",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			printer := newPrinter(cmd)

			if err := library.Remove(args[0], global); err != nil {
				userErr := templateLoadError(args[0], err)
				printer.Error(userErr)
				return userErr
			}

			if printer.IsJSON() {
				return printer.WriteJSON(map[string]any{"removed": args[0]})
			}
			printer.Println("Removed", args[0])
			return nil
		},
	}

	cmd.Flags().BoolVarP(&global, "global", "g", false, "Remove from the global library instead of the project")

	return cmd
}

// templateLoadError maps a library error onto an exit-coded error.
func templateLoadError(name string, err error) *output.ExitError {
	if errors.Is(err, library.ErrNotFound) {
		return output.NewUserError(fmt.Sprintf("template %q not found; run 'verbs template list'", name))
	}
	return output.NewSystemError(err.Error())
}
