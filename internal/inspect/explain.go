// Package inspect turns parsed format templates into human-readable
// breakdowns and lints them against argument lists.
package inspect

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gorewood/verbs/internal/printf"
)

// Detail describes one placeholder for display.
type Detail struct {
	Raw         string   `json:"raw"`                 // the placeholder as written
	Offset      int      `json:"offset"`              // byte offset in the format string
	Arg         int      `json:"arg"`                 // 1-based argument number
	Verb        string   `json:"verb"`                // conversion letter
	VerbName    string   `json:"verb_name"`           // human name of the conversion
	Flags       []string `json:"flags,omitempty"`     // flags spelled out
	Width       string   `json:"width,omitempty"`     // minimum field width, "*" for argument-supplied
	Precision   string   `json:"precision,omitempty"` // precision, "*" for argument-supplied
	Length      string   `json:"length,omitempty"`    // C length modifier, if any
	Description string   `json:"description"`         // one-line prose summary
}

// Explain describes every placeholder in the template.
func Explain(t *printf.Template) []Detail {
	phs := t.Placeholders()
	details := make([]Detail, 0, len(phs))
	for _, ph := range phs {
		details = append(details, describe(ph))
	}
	return details
}

// describe builds the Detail for one placeholder.
func describe(ph *printf.Placeholder) Detail {
	d := Detail{
		Raw:      ph.Raw(),
		Offset:   ph.Offset,
		Arg:      ph.ArgIndex() + 1,
		Verb:     string(ph.Verb),
		VerbName: ph.Verb.Name(),
		Flags:    flagDescriptions(ph),
		Length:   ph.Length,
	}
	switch {
	case ph.WidthStar:
		d.Width = "*"
	case ph.Width >= 0:
		d.Width = strconv.Itoa(ph.Width)
	}
	switch {
	case ph.PrecStar:
		d.Precision = "*"
	case ph.Prec >= 0:
		d.Precision = strconv.Itoa(ph.Prec)
	}
	d.Description = describeProse(ph)
	return d
}

// flagDescriptions spells out the flag characters.
func flagDescriptions(ph *printf.Placeholder) []string {
	var out []string
	f := ph.Flags
	if f.Minus {
		out = append(out, "left-justify")
	}
	if f.Plus {
		out = append(out, "always show sign")
	}
	if f.Space {
		out = append(out, "blank before positive numbers")
	}
	if f.Zero {
		out = append(out, "pad with zeros")
	}
	if f.Alt {
		out = append(out, "alternate form")
	}
	if f.Pad != 0 {
		out = append(out, fmt.Sprintf("pad with %q", f.Pad))
	}
	return out
}

// describeProse builds the one-line summary, e.g. "signed decimal integer,
// zero-padded to a minimum width of 2".
func describeProse(ph *printf.Placeholder) string {
	parts := []string{ph.Verb.Name()}

	switch {
	case ph.WidthStar && ph.Flags.Zero:
		parts = append(parts, "zero-padded to an argument-supplied width")
	case ph.WidthStar:
		parts = append(parts, "padded to an argument-supplied width")
	case ph.Width >= 0 && ph.Flags.Zero && !ph.Flags.Minus:
		parts = append(parts, fmt.Sprintf("zero-padded to a minimum width of %d", ph.Width))
	case ph.Width >= 0 && ph.Flags.Minus:
		parts = append(parts, fmt.Sprintf("left-justified in a field of %d", ph.Width))
	case ph.Width >= 0:
		parts = append(parts, fmt.Sprintf("right-justified in a field of %d", ph.Width))
	}

	switch {
	case ph.PrecStar:
		parts = append(parts, "argument-supplied precision")
	case ph.Prec >= 0 && ph.Verb == printf.VerbString:
		parts = append(parts, fmt.Sprintf("truncated to %d characters", ph.Prec))
	case ph.Prec >= 0 && ph.Verb.IsFloat():
		parts = append(parts, fmt.Sprintf("%d decimal places", ph.Prec))
	case ph.Prec >= 0 && ph.Verb.IsInteger():
		parts = append(parts, fmt.Sprintf("at least %d digits", ph.Prec))
	}

	if ph.Flags.Plus && ph.Verb.IsSigned() {
		parts = append(parts, "sign always shown")
	}
	if ph.Param > 0 {
		parts = append(parts, fmt.Sprintf("argument %d explicitly", ph.Param))
	}
	return strings.Join(parts, ", ")
}
