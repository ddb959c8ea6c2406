package mcp

import (
	"context"
	"errors"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/gorewood/verbs/internal/inspect"
	"github.com/gorewood/verbs/internal/library"
	"github.com/gorewood/verbs/internal/printf"
)

// --- Render tool ---

// RenderInput is the input for the render tool. Either format or template
// must be set.
type RenderInput struct {
	Format   string `json:"format,omitempty"   jsonschema:"printf-style format string"`
	Template string `json:"template,omitempty" jsonschema:"name of a library template to render instead of format"`
	Args     []any  `json:"args,omitempty"     jsonschema:"arguments substituted into the placeholders, in order"`
}

// RenderOutput is the output for the render tool.
type RenderOutput struct {
	Output string `json:"output" jsonschema:"the rendered text"`
}

func handleRender(_ context.Context, _ *mcp.CallToolRequest, input RenderInput) (*mcp.CallToolResult, RenderOutput, error) {
	format, err := resolveFormat(input.Format, input.Template)
	if err != nil {
		return nil, RenderOutput{}, err
	}
	out, err := printf.Sprintf(format, input.Args...)
	if err != nil {
		return nil, RenderOutput{}, fmt.Errorf("rendering: %w", err)
	}
	return nil, RenderOutput{Output: out}, nil
}

// --- Explain tool ---

// ExplainInput is the input for the explain tool.
type ExplainInput struct {
	Format string `json:"format" jsonschema:"printf-style format string to break down"`
}

// ExplainOutput is the output for the explain tool.
type ExplainOutput struct {
	Placeholders []inspect.Detail `json:"placeholders" jsonschema:"one entry per placeholder, in order of appearance"`
	ArgCount     int              `json:"arg_count"    jsonschema:"number of arguments a render consumes"`
}

func handleExplain(_ context.Context, _ *mcp.CallToolRequest, input ExplainInput) (*mcp.CallToolResult, ExplainOutput, error) {
	tmpl, err := printf.Parse(input.Format)
	if err != nil {
		return nil, ExplainOutput{}, fmt.Errorf("parsing format string: %w", err)
	}
	return nil, ExplainOutput{
		Placeholders: inspect.Explain(tmpl),
		ArgCount:     tmpl.MaxArg(),
	}, nil
}

// --- Check tool ---

// CheckInput is the input for the check tool.
type CheckInput struct {
	Format    string `json:"format"              jsonschema:"printf-style format string to lint"`
	Args      []any  `json:"args,omitempty"      jsonschema:"arguments to lint the format string against"`
	CheckArgs bool   `json:"check_args,omitempty" jsonschema:"lint against args even when the list is empty"`
}

// CheckOutput is the output for the check tool.
type CheckOutput struct {
	OK       bool              `json:"ok"                 jsonschema:"true when no error-severity findings exist"`
	Findings []inspect.Finding `json:"findings,omitempty" jsonschema:"lint findings, errors and warnings"`
}

func handleCheck(_ context.Context, _ *mcp.CallToolRequest, input CheckInput) (*mcp.CallToolResult, CheckOutput, error) {
	tmpl, err := printf.Parse(input.Format)
	if err != nil {
		// A grammar error is itself the finding, not a tool failure.
		var parseErr *printf.ParseError
		if errors.As(err, &parseErr) {
			return nil, CheckOutput{
				OK: false,
				Findings: []inspect.Finding{{
					Severity: inspect.SeverityError,
					Message:  parseErr.Error(),
				}},
			}, nil
		}
		return nil, CheckOutput{}, err
	}
	findings := inspect.Check(tmpl, input.Args, input.CheckArgs || len(input.Args) > 0)
	return nil, CheckOutput{
		OK:       !inspect.HasErrors(findings),
		Findings: findings,
	}, nil
}

// --- Template list tool ---

// TemplateListInput is the input for the template_list tool (no parameters).
type TemplateListInput struct{}

// TemplateListOutput is the output for the template_list tool.
type TemplateListOutput struct {
	Templates []library.Info `json:"templates" jsonschema:"available templates with their source layer"`
}

func handleTemplateList(_ context.Context, _ *mcp.CallToolRequest, _ TemplateListInput) (*mcp.CallToolResult, TemplateListOutput, error) {
	return nil, TemplateListOutput{Templates: library.List()}, nil
}

// resolveFormat picks the format string from direct input or the library.
func resolveFormat(format, templateName string) (string, error) {
	switch {
	case format != "" && templateName != "":
		return "", errors.New("give either format or template, not both")
	case templateName != "":
		tmpl, err := library.Load(templateName)
		if err != nil {
			return "", err
		}
		return tmpl.Format, nil
	case format != "":
		return format, nil
	default:
		return "", errors.New("either format or template is required")
	}
}
