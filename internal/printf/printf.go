// Package printf implements a C-style format string engine: the placeholder
// grammar %[parameter$][flags][width][.precision][length]verb, parsed once
// into an immutable Template and rendered against argument lists.
//
// The engine follows C semantics where C defines them (default precision 6
// for %e and %f, '-' overriding '0', precision as a minimum digit count for
// integers and a maximum length for strings) and takes the pragmatic road
// where C leaves behavior undefined: values are coerced per verb, and a
// value a verb cannot render is a typed error rather than garbage output.
//
// Positional parameters ("%1$s") follow POSIX: a format string uses either
// positional or sequential placeholders, never both, and a parameter may be
// referenced any number of times without consuming further arguments.
package printf

// Sprintf parses format and renders args through it in one call. Callers
// formatting the same template repeatedly should Parse once and reuse the
// Template.
func Sprintf(format string, args ...any) (string, error) {
	t, err := Parse(format)
	if err != nil {
		return "", err
	}
	return t.Format(args...)
}

// Format renders the template against args. Surplus arguments are ignored;
// a placeholder without a matching argument is a MissingArgError.
func (t *Template) Format(args ...any) (string, error) {
	var b []byte
	for _, seg := range t.segments {
		if seg.ph == nil {
			b = append(b, seg.lit...)
			continue
		}
		s, err := t.renderPlaceholder(seg.ph, args)
		if err != nil {
			return "", err
		}
		b = append(b, s...)
	}
	return string(b), nil
}

// renderPlaceholder resolves '*' width and precision from the argument list
// and renders one placeholder.
func (t *Template) renderPlaceholder(ph *Placeholder, args []any) (string, error) {
	width := ph.Width
	prec := ph.Prec

	if ph.WidthStar {
		n, err := starValue(ph, ph.widthArg, args, "width")
		if err != nil {
			return "", err
		}
		// A negative '*' width means left-justify, as in C. The template
		// stays immutable, so the flag lands on a copy.
		if n < 0 {
			flipped := *ph
			flipped.Flags.Minus = true
			ph = &flipped
			n = -n
		}
		width = n
	}
	if ph.PrecStar {
		n, err := starValue(ph, ph.precArg, args, "precision")
		if err != nil {
			return "", err
		}
		// A negative '*' precision counts as no precision at all.
		prec = n
		if n < 0 {
			prec = -1
		}
	}

	if ph.argIndex >= len(args) {
		return "", &MissingArgError{Placeholder: ph.raw, Arg: ph.argIndex}
	}
	return ph.render(args[ph.argIndex], width, prec)
}

// starValue pulls a '*' width or precision from the argument list.
func starValue(ph *Placeholder, index int, args []any, what string) (int, error) {
	if index >= len(args) {
		return 0, &MissingArgError{Placeholder: ph.raw, Arg: index}
	}
	n, err := toInt(args[index])
	if err != nil {
		return 0, &ArgError{Placeholder: ph.raw, Arg: index, Msg: what + " argument: " + err.Error()}
	}
	if n > maxWidth || n < -maxWidth {
		return 0, &ArgError{Placeholder: ph.raw, Arg: index, Msg: what + " argument out of range"}
	}
	return int(n), nil
}
