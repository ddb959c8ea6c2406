package inspect

import (
	"errors"
	"fmt"

	"github.com/gorewood/verbs/internal/printf"
)

// Severity classifies a lint finding.
type Severity string

// Finding severities.
const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Finding is one lint result for a template and argument list.
type Finding struct {
	Severity    Severity `json:"severity"`
	Placeholder string   `json:"placeholder,omitempty"` // the placeholder involved, if any
	Arg         int      `json:"arg,omitempty"`         // 1-based argument number, 0 if not tied to one
	Message     string   `json:"message"`
}

// HasErrors reports whether any finding is an error.
func HasErrors(findings []Finding) bool {
	for _, f := range findings {
		if f.Severity == SeverityError {
			return true
		}
	}
	return false
}

// Check lints a template against an argument list: argument count, a render
// dry-run for each placeholder, and flag combinations that render ignores.
// Pass checkArgs=false to lint the template alone.
func Check(t *printf.Template, args []any, checkArgs bool) []Finding {
	var findings []Finding

	for _, ph := range t.Placeholders() {
		findings = append(findings, lintFlags(ph)...)
	}

	if !checkArgs {
		return findings
	}

	if len(args) > t.MaxArg() {
		findings = append(findings, Finding{
			Severity: SeverityWarning,
			Message: fmt.Sprintf("%d arguments given, but the format string only uses %d",
				len(args), t.MaxArg()),
		})
	}

	// Render for real and report what breaks, one finding per placeholder.
	seen := map[string]bool{}
	for _, ph := range t.Placeholders() {
		f, ok := dryRun(t, ph, args)
		if !ok {
			continue
		}
		key := fmt.Sprintf("%d:%s", f.Arg, f.Message)
		if !seen[key] {
			seen[key] = true
			findings = append(findings, f)
		}
	}
	return findings
}

// dryRun renders a single placeholder against the argument list and converts
// a failure into a finding.
func dryRun(t *printf.Template, ph *printf.Placeholder, args []any) (Finding, bool) {
	if ph.ArgIndex() >= len(args) {
		return Finding{
			Severity:    SeverityError,
			Placeholder: ph.Raw(),
			Arg:         ph.ArgIndex() + 1,
			Message:     fmt.Sprintf("missing argument %d", ph.ArgIndex()+1),
		}, true
	}
	if ph.WidthStar || ph.PrecStar {
		// Star placeholders pull extra numbers from the list; rendering the
		// whole template is the only way to exercise them.
		if _, err := t.Format(args...); err != nil {
			return findingFromError(err), true
		}
		return Finding{}, false
	}
	if _, err := ph.Format(args[ph.ArgIndex()]); err != nil {
		return findingFromError(err), true
	}
	return Finding{}, false
}

// findingFromError maps an engine error onto a finding.
func findingFromError(err error) Finding {
	var argErr *printf.ArgError
	if errors.As(err, &argErr) {
		return Finding{
			Severity:    SeverityError,
			Placeholder: argErr.Placeholder,
			Arg:         argErr.Arg + 1,
			Message:     argErr.Msg,
		}
	}
	var missing *printf.MissingArgError
	if errors.As(err, &missing) {
		return Finding{
			Severity:    SeverityError,
			Placeholder: missing.Placeholder,
			Arg:         missing.Arg + 1,
			Message:     fmt.Sprintf("missing argument %d", missing.Arg+1),
		}
	}
	return Finding{Severity: SeverityError, Message: err.Error()}
}

// lintFlags reports flag combinations the renderer accepts but ignores.
func lintFlags(ph *printf.Placeholder) []Finding {
	var findings []Finding
	warn := func(format string, a ...any) {
		findings = append(findings, Finding{
			Severity:    SeverityWarning,
			Placeholder: ph.Raw(),
			Arg:         ph.ArgIndex() + 1,
			Message:     fmt.Sprintf(format, a...),
		})
	}

	if (ph.Flags.Plus || ph.Flags.Space) && !ph.Verb.IsSigned() {
		warn("sign flags have no effect on %%%c", byte(ph.Verb))
	}
	if ph.Flags.Zero && ph.Flags.Minus {
		warn("'0' is ignored when '-' is given")
	}
	if ph.Flags.Zero && !ph.Verb.IsNumeric() {
		warn("'0' has no effect on %%%c", byte(ph.Verb))
	}
	if ph.Flags.Alt && !ph.Verb.IsNumeric() {
		warn("'#' has no effect on %%%c", byte(ph.Verb))
	}
	if ph.Flags.Zero && ph.Prec >= 0 && ph.Verb.IsInteger() {
		warn("'0' is ignored when an integer precision is given")
	}
	if ph.Length != "" {
		warn("length modifier %q is accepted for compatibility but has no effect", ph.Length)
	}
	return findings
}
