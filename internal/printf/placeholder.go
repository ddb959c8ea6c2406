package printf

// Verb identifies the conversion type letter of a placeholder.
type Verb byte

// Supported conversion verbs.
const (
	VerbBinary   Verb = 'b'
	VerbChar     Verb = 'c'
	VerbDecimal  Verb = 'd'
	VerbInteger  Verb = 'i' // alias for 'd'
	VerbSciLower Verb = 'e'
	VerbSciUpper Verb = 'E'
	VerbFixed    Verb = 'f'
	VerbFixedUp  Verb = 'F'
	VerbCompact  Verb = 'g'
	VerbCompactU Verb = 'G'
	VerbOctal    Verb = 'o'
	VerbString   Verb = 's'
	VerbUnsigned Verb = 'u'
	VerbHexLower Verb = 'x'
	VerbHexUpper Verb = 'X'
)

// verbNames maps each verb to a short human-readable name.
// Used in error messages and by the explain output.
var verbNames = map[Verb]string{
	VerbBinary:   "binary integer",
	VerbChar:     "character",
	VerbDecimal:  "signed decimal integer",
	VerbInteger:  "signed decimal integer",
	VerbSciLower: "scientific notation",
	VerbSciUpper: "scientific notation (uppercase)",
	VerbFixed:    "fixed-point decimal",
	VerbFixedUp:  "fixed-point decimal (uppercase)",
	VerbCompact:  "compact floating point",
	VerbCompactU: "compact floating point (uppercase)",
	VerbOctal:    "octal integer",
	VerbString:   "string",
	VerbUnsigned: "unsigned decimal integer",
	VerbHexLower: "hexadecimal integer",
	VerbHexUpper: "hexadecimal integer (uppercase)",
}

// Name returns a short human-readable name for the verb.
func (v Verb) Name() string {
	if name, ok := verbNames[v]; ok {
		return name
	}
	return "unknown"
}

// IsNumeric reports whether the verb renders a numeric value.
func (v Verb) IsNumeric() bool {
	return v.IsInteger() || v.IsFloat()
}

// IsInteger reports whether the verb renders an integer value.
func (v Verb) IsInteger() bool {
	switch v {
	case VerbBinary, VerbDecimal, VerbInteger, VerbOctal, VerbUnsigned, VerbHexLower, VerbHexUpper:
		return true
	}
	return false
}

// IsFloat reports whether the verb renders a floating-point value.
func (v Verb) IsFloat() bool {
	switch v {
	case VerbSciLower, VerbSciUpper, VerbFixed, VerbFixedUp, VerbCompact, VerbCompactU:
		return true
	}
	return false
}

// IsSigned reports whether sign flags ('+' and space) apply to the verb.
func (v Verb) IsSigned() bool {
	switch v {
	case VerbDecimal, VerbInteger:
		return true
	}
	return v.IsFloat()
}

// Flags records the flag characters of a placeholder.
type Flags struct {
	Minus bool // '-': left-justify within the width
	Plus  bool // '+': always show the sign on signed values
	Space bool // ' ': blank before positive signed values
	Zero  bool // '0': pad with zeros instead of spaces
	Alt   bool // '#': alternate form (base prefix, forced decimal point)
	Pad   rune // '\'x': custom pad character, 0 when unset
}

// String returns the flags as they appear in a format string.
func (f Flags) String() string {
	var out []rune
	if f.Minus {
		out = append(out, '-')
	}
	if f.Plus {
		out = append(out, '+')
	}
	if f.Space {
		out = append(out, ' ')
	}
	if f.Zero {
		out = append(out, '0')
	}
	if f.Alt {
		out = append(out, '#')
	}
	if f.Pad != 0 {
		out = append(out, '\'', f.Pad)
	}
	return string(out)
}

// Placeholder is one parsed conversion specification within a template.
// Width and Prec are -1 when unset; WidthStar and PrecStar mark '*' forms
// that take the value from the argument list.
type Placeholder struct {
	Param     int    // explicit 1-based parameter index ("%2$s"), 0 = sequential
	Flags     Flags  //
	Width     int    // minimum field width, -1 = unset
	WidthStar bool   // width given as '*'
	Prec      int    // precision, -1 = unset
	PrecStar  bool   // precision given as '*'
	Length    string // C length modifier ("h", "ll", ...), parsed and ignored
	Verb      Verb   //
	Offset    int    // byte offset of '%' in the format string

	raw      string // the placeholder as written, e.g. "%-8.2f"
	argIndex int    // resolved 0-based index of the value argument
	widthArg int    // 0-based index of the '*' width argument, -1 if none
	precArg  int    // 0-based index of the '*' precision argument, -1 if none
}

// Raw returns the placeholder text as it appears in the format string.
func (p *Placeholder) Raw() string {
	return p.raw
}

// ArgIndex returns the 0-based index of the argument the placeholder renders.
func (p *Placeholder) ArgIndex() int {
	return p.argIndex
}

// Format renders a single value through the placeholder. Placeholders with
// '*' width or precision cannot be rendered standalone because the missing
// numbers live in the argument list.
func (p *Placeholder) Format(v any) (string, error) {
	if p.WidthStar || p.PrecStar {
		return "", &ArgError{
			Placeholder: p.raw,
			Arg:         p.argIndex,
			Msg:         "cannot render standalone: '*' takes width or precision from the argument list",
		}
	}
	return p.render(v, p.Width, p.Prec)
}
