package printf

import (
	"math"
	"strconv"
	"strings"
	"unicode/utf8"
)

// render produces the text for one placeholder. Width and prec are the
// resolved values: either the placeholder's own or, for '*' forms, numbers
// pulled from the argument list by Format.
func (p *Placeholder) render(v any, width, prec int) (string, error) {
	var (
		out string
		err error
	)
	switch p.Verb {
	case VerbString:
		out, err = p.renderString(v, width, prec)
	case VerbChar:
		out, err = p.renderChar(v, width)
	case VerbDecimal, VerbInteger:
		out, err = p.renderSigned(v, width, prec)
	case VerbUnsigned:
		out, err = p.renderUnsigned(v, 10, width, prec)
	case VerbBinary:
		out, err = p.renderUnsigned(v, 2, width, prec)
	case VerbOctal:
		out, err = p.renderUnsigned(v, 8, width, prec)
	case VerbHexLower, VerbHexUpper:
		out, err = p.renderUnsigned(v, 16, width, prec)
	default:
		out, err = p.renderFloat(v, width, prec)
	}
	if err != nil {
		return "", &ArgError{Placeholder: p.raw, Arg: p.argIndex, Msg: err.Error()}
	}
	return out, nil
}

// renderString renders %s: precision truncates to a rune count, width pads.
func (p *Placeholder) renderString(v any, width, prec int) (string, error) {
	s, err := toString(v)
	if err != nil {
		return "", err
	}
	if prec >= 0 {
		s = truncateRunes(s, prec)
	}
	return p.pad(s, width, 0), nil
}

// truncateRunes cuts s after at most n runes, never splitting a rune.
func truncateRunes(s string, n int) string {
	if n <= 0 {
		return ""
	}
	count := 0
	for i := range s {
		if count == n {
			return s[:i]
		}
		count++
	}
	return s
}

// renderChar renders %c.
func (p *Placeholder) renderChar(v any, width int) (string, error) {
	r, err := toRune(v)
	if err != nil {
		return "", err
	}
	return p.pad(string(r), width, 0), nil
}

// renderSigned renders %d and %i.
func (p *Placeholder) renderSigned(v any, width, prec int) (string, error) {
	n, err := toInt(v)
	if err != nil {
		return "", err
	}
	var magnitude uint64
	if n < 0 {
		// Negate via uint64 so MinInt64 survives.
		magnitude = uint64(-(n + 1)) + 1
	} else {
		magnitude = uint64(n)
	}
	digits := applyIntPrecision(strconv.FormatUint(magnitude, 10), prec, magnitude)
	sign := p.signFor(n < 0)
	return p.padNumeric(sign, "", digits, width, prec < 0), nil
}

// renderUnsigned renders %u, %b, %o, %x, and %X. Negative signed inputs wrap
// to their two's-complement bit pattern.
func (p *Placeholder) renderUnsigned(v any, base int, width, prec int) (string, error) {
	n, err := toUint(v)
	if err != nil {
		return "", err
	}
	digits := strconv.FormatUint(n, base)
	if p.Verb == VerbHexUpper {
		digits = strings.ToUpper(digits)
	}
	digits = applyIntPrecision(digits, prec, n)

	prefix := ""
	if p.Flags.Alt && n != 0 {
		switch p.Verb {
		case VerbHexLower:
			prefix = "0x"
		case VerbHexUpper:
			prefix = "0X"
		case VerbBinary:
			prefix = "0b"
		case VerbOctal:
			// Alternate octal guarantees a leading zero.
			if !strings.HasPrefix(digits, "0") {
				digits = "0" + digits
			}
		}
	}
	return p.padNumeric("", prefix, digits, width, prec < 0), nil
}

// renderFloat renders %e, %E, %f, %F, %g, and %G.
func (p *Placeholder) renderFloat(v any, width, prec int) (string, error) {
	f, err := toFloat(v)
	if err != nil {
		return "", err
	}
	sign := p.signFor(math.Signbit(f))

	if math.IsNaN(f) || math.IsInf(f, 0) {
		body := "nan"
		if math.IsInf(f, 0) {
			body = "inf"
		}
		if p.Verb == VerbSciUpper || p.Verb == VerbFixedUp || p.Verb == VerbCompactU {
			body = strings.ToUpper(body)
		}
		// Zero padding never applies to nan/inf.
		return p.pad(sign+body, width, 0), nil
	}

	abs := math.Abs(f)
	if prec < 0 {
		prec = 6
	}

	var digits string
	switch p.Verb {
	case VerbFixed, VerbFixedUp:
		digits = strconv.FormatFloat(abs, 'f', prec, 64)
	case VerbSciLower, VerbSciUpper:
		digits = strconv.FormatFloat(abs, 'e', prec, 64)
	default: // g, G
		if prec == 0 {
			prec = 1
		}
		if p.Flags.Alt {
			digits = formatCompactAlt(abs, prec)
		} else {
			digits = strconv.FormatFloat(abs, 'g', prec, 64)
		}
	}
	if p.Flags.Alt && prec == 0 && !strings.Contains(digits, ".") {
		// '#' keeps the decimal point even with nothing after it.
		if idx := strings.IndexByte(digits, 'e'); idx >= 0 {
			digits = digits[:idx] + "." + digits[idx:]
		} else {
			digits += "."
		}
	}
	if p.Verb == VerbSciUpper || p.Verb == VerbCompactU {
		digits = strings.ToUpper(digits)
	}
	return p.padNumeric(sign, "", digits, width, true), nil
}

// formatCompactAlt is %#g: the usual fixed/scientific choice of %g, but with
// trailing zeros kept.
func formatCompactAlt(abs float64, prec int) string {
	sci := strconv.FormatFloat(abs, 'e', prec-1, 64)
	exp := exponentOf(sci)
	if exp < -4 || exp >= prec {
		return sci
	}
	return strconv.FormatFloat(abs, 'f', prec-1-exp, 64)
}

// exponentOf extracts the decimal exponent from strconv's 'e' output.
func exponentOf(sci string) int {
	idx := strings.IndexByte(sci, 'e')
	if idx < 0 {
		return 0
	}
	exp, err := strconv.Atoi(sci[idx+1:])
	if err != nil {
		return 0
	}
	return exp
}

// signFor returns the sign prefix for a signed numeric rendering.
func (p *Placeholder) signFor(negative bool) string {
	switch {
	case negative:
		return "-"
	case p.Flags.Plus:
		return "+"
	case p.Flags.Space:
		return " "
	default:
		return ""
	}
}

// applyIntPrecision pads integer digits with leading zeros to the minimum
// digit count. Precision zero with value zero renders as nothing at all.
func applyIntPrecision(digits string, prec int, value uint64) string {
	if prec < 0 {
		return digits
	}
	if prec == 0 && value == 0 {
		return ""
	}
	if len(digits) >= prec {
		return digits
	}
	return strings.Repeat("0", prec-len(digits)) + digits
}

// padNumeric pads a numeric rendering to the field width. Zero padding goes
// between the sign or base prefix and the digits; it is suppressed by '-'
// and, for integers, by an explicit precision (zeroOK is false then).
func (p *Placeholder) padNumeric(sign, prefix, digits string, width int, zeroOK bool) string {
	body := sign + prefix + digits
	if width < 0 || len(body) >= width {
		return body
	}
	if p.Flags.Zero && !p.Flags.Minus && zeroOK && p.Flags.Pad == 0 {
		return sign + prefix + strings.Repeat("0", width-len(body)) + digits
	}
	return p.pad(body, width, utf8.RuneCountInString(body))
}

// pad fills a rendering out to the field width with the pad character
// (space, or the 'x custom pad), honoring '-' for left justification.
// knownRunes carries a precomputed rune count, 0 to count here.
func (p *Placeholder) pad(s string, width, knownRunes int) string {
	if width < 0 {
		return s
	}
	runes := knownRunes
	if runes == 0 {
		runes = utf8.RuneCountInString(s)
	}
	if runes >= width {
		return s
	}
	fill := " "
	if p.Flags.Pad != 0 {
		fill = string(p.Flags.Pad)
	}
	padding := strings.Repeat(fill, width-runes)
	if p.Flags.Minus {
		return s + padding
	}
	return padding + s
}
