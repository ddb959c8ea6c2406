package printf

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// maxWidth caps field widths and precisions to keep hostile format strings
// from requesting gigabytes of padding.
const maxWidth = 1 << 20

// lengthModifiers lists the C length modifiers the parser accepts, longest
// first so "ll" wins over "l". Values carry their own size in Go, so the
// modifier is recorded but has no effect on rendering.
var lengthModifiers = []string{"hh", "ll", "h", "l", "q", "L", "j", "z", "t"}

// segment is one piece of a parsed template: literal text or a placeholder.
type segment struct {
	lit string
	ph  *Placeholder
}

// Template is a parsed format string. Parsing happens once; a Template is
// immutable afterwards and safe for concurrent Format calls.
type Template struct {
	format   string
	segments []segment
	phs      []*Placeholder
	maxArg   int
}

// Parse parses a printf-style format string into a Template.
//
// The placeholder grammar is
//
//	%[parameter$][flags][width][.precision][length]verb
//
// with flags '-', '+', ' ', '0', '#' and 'x (custom pad character), width
// and precision as digits or '*', C length modifiers (accepted, ignored),
// and verbs %, b, c, d, i, e, E, f, F, g, G, o, s, u, x, X.
func Parse(format string) (*Template, error) {
	t := &Template{format: format}
	var lit strings.Builder

	flush := func() {
		if lit.Len() > 0 {
			t.segments = append(t.segments, segment{lit: lit.String()})
			lit.Reset()
		}
	}

	i := 0
	for i < len(format) {
		c := format[i]
		if c != '%' {
			lit.WriteByte(c)
			i++
			continue
		}
		if i+1 < len(format) && format[i+1] == '%' {
			lit.WriteByte('%')
			i += 2
			continue
		}
		ph, next, err := parsePlaceholder(format, i)
		if err != nil {
			return nil, err
		}
		flush()
		t.segments = append(t.segments, segment{ph: ph})
		t.phs = append(t.phs, ph)
		i = next
	}
	flush()

	if err := t.resolveArgs(); err != nil {
		return nil, err
	}
	return t, nil
}

// MustParse is Parse for compile-time-known format strings; it panics on error.
func MustParse(format string) *Template {
	t, err := Parse(format)
	if err != nil {
		panic(err)
	}
	return t
}

// String returns the original format string.
func (t *Template) String() string {
	return t.format
}

// Placeholders returns the template's placeholders in order of appearance.
func (t *Template) Placeholders() []*Placeholder {
	return t.phs
}

// MaxArg returns the number of arguments a Format call consumes.
func (t *Template) MaxArg() int {
	return t.maxArg
}

// parsePlaceholder parses one placeholder starting at the '%' at offset
// start. It returns the placeholder and the offset just past its verb.
func parsePlaceholder(format string, start int) (*Placeholder, int, error) {
	ph := &Placeholder{
		Offset:   start,
		Width:    -1,
		Prec:     -1,
		widthArg: -1,
		precArg:  -1,
	}
	i := start + 1

	// Explicit parameter: digits followed by '$'.
	if end := scanDigits(format, i); end > i && end < len(format) && format[end] == '$' {
		n, err := parseNumber(format, i, end, "parameter index")
		if err != nil {
			return nil, 0, err
		}
		if n == 0 {
			return nil, 0, &ParseError{Offset: i, Msg: "parameter index must be at least 1"}
		}
		ph.Param = n
		i = end + 1
	}

	// Flags, in any order, repeats tolerated.
flags:
	for i < len(format) {
		switch format[i] {
		case '-':
			ph.Flags.Minus = true
		case '+':
			ph.Flags.Plus = true
		case ' ':
			ph.Flags.Space = true
		case '0':
			ph.Flags.Zero = true
		case '#':
			ph.Flags.Alt = true
		case '\'':
			if i+1 >= len(format) {
				return nil, 0, &ParseError{Offset: i, Msg: "missing pad character after '"}
			}
			r, size := utf8.DecodeRuneInString(format[i+1:])
			ph.Flags.Pad = r
			i += size
		default:
			break flags
		}
		i++
	}

	// Width.
	if i < len(format) && format[i] == '*' {
		ph.WidthStar = true
		i++
	} else if end := scanDigits(format, i); end > i {
		n, err := parseNumber(format, i, end, "width")
		if err != nil {
			return nil, 0, err
		}
		ph.Width = n
		i = end
	}

	// Precision. A bare '.' means precision zero.
	if i < len(format) && format[i] == '.' {
		i++
		switch {
		case i < len(format) && format[i] == '*':
			ph.PrecStar = true
			i++
		default:
			end := scanDigits(format, i)
			if end == i {
				ph.Prec = 0
			} else {
				n, err := parseNumber(format, i, end, "precision")
				if err != nil {
					return nil, 0, err
				}
				ph.Prec = n
				i = end
			}
		}
	}

	// Length modifier.
	for _, mod := range lengthModifiers {
		if strings.HasPrefix(format[i:], mod) {
			ph.Length = mod
			i += len(mod)
			break
		}
	}

	// Verb.
	if i >= len(format) {
		return nil, 0, &ParseError{Offset: start, Msg: "unterminated placeholder: missing conversion verb"}
	}
	verb := format[i]
	switch Verb(verb) {
	case VerbBinary, VerbChar, VerbDecimal, VerbInteger, VerbSciLower, VerbSciUpper,
		VerbFixed, VerbFixedUp, VerbCompact, VerbCompactU, VerbOctal, VerbString,
		VerbUnsigned, VerbHexLower, VerbHexUpper:
		ph.Verb = Verb(verb)
	case '%':
		return nil, 0, &ParseError{Offset: start, Msg: "%% takes no parameter, flags, width, or precision"}
	case 'n':
		return nil, 0, &ParseError{Offset: start, Msg: "the %n conversion is not supported"}
	default:
		return nil, 0, &ParseError{Offset: i, Msg: "unknown conversion verb " + strconv.QuoteRune(rune(verb))}
	}
	i++

	ph.raw = format[start:i]
	return ph, i, nil
}

// resolveArgs assigns each placeholder its argument index. A template is
// either fully sequential or fully positional: with explicit parameter
// indexes, the order of '*' consumption would be ambiguous, so mixing the
// two styles (or combining '*' with positional parameters) is an error.
func (t *Template) resolveArgs() error {
	positional := false
	for _, ph := range t.phs {
		if ph.Param > 0 {
			positional = true
			break
		}
	}

	if !positional {
		cursor := 0
		for _, ph := range t.phs {
			if ph.WidthStar {
				ph.widthArg = cursor
				cursor++
			}
			if ph.PrecStar {
				ph.precArg = cursor
				cursor++
			}
			ph.argIndex = cursor
			cursor++
		}
		t.maxArg = cursor
		return nil
	}

	for _, ph := range t.phs {
		if ph.Param == 0 {
			return &ParseError{
				Offset: ph.Offset,
				Msg:    "cannot mix positional and sequential placeholders in one format string",
			}
		}
		if ph.WidthStar || ph.PrecStar {
			return &ParseError{
				Offset: ph.Offset,
				Msg:    "'*' width or precision cannot be combined with positional parameters",
			}
		}
		ph.argIndex = ph.Param - 1
		if ph.Param > t.maxArg {
			t.maxArg = ph.Param
		}
	}
	return nil
}

// scanDigits returns the offset just past a run of ASCII digits at i.
func scanDigits(s string, i int) int {
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	return i
}

// parseNumber parses s[from:to] as a bounded non-negative integer.
func parseNumber(s string, from, to int, what string) (int, error) {
	n, err := strconv.Atoi(s[from:to])
	if err != nil || n > maxWidth {
		return 0, &ParseError{Offset: from, Msg: what + " too large: " + s[from:to]}
	}
	return n, nil
}
