// Package chesc escapes and unescapes text using a user-supplied table of
// single-character rules.
//
// An Escaper is built from an escape marker and an ordered rule table.
// Escaping replaces every rune that has a rule with marker+escaped rune,
// unescaping reverses that exactly. The table must map the marker itself so
// it can occur literally in escaped text:
//
//	esc, err := chesc.New('\\', []chesc.Rule{
//		{Raw: '\n', Escaped: 'n'},
//		{Raw: '\t', Escaped: 't'},
//		{Raw: '\\', Escaped: '\\'},
//	})
//
// For any table without duplicate Raw or duplicate Escaped values,
// Unescape(Escape(x)) == x for every x.
package chesc

import "strings"

// DefaultEscapeChar is the conventional escape marker.
const DefaultEscapeChar = '\\'

// Escaper escapes and unescapes strings according to a fixed rule table.
// It is immutable after construction and safe for concurrent use.
type Escaper struct {
	escapeChar rune
	rules      []Rule

	// first-occurrence indexes; table order decides ties, in both directions
	byRaw     map[rune]rune
	byEscaped map[rune]rune
}

// New creates an Escaper from escapeChar and rules. The rule slice is
// referenced, not copied; callers must not mutate it afterwards.
//
// It fails with ErrMissingEscapeCharRule when no rule escapes the escape
// character itself. Duplicate Raw or Escaped values are accepted as-is: the
// first matching rule in table order wins.
func New(escapeChar rune, rules []Rule) (*Escaper, error) {
	if !containsEscapeCharRule(escapeChar, rules) {
		return nil, ErrMissingEscapeCharRule
	}

	return NewUnchecked(escapeChar, rules), nil
}

// NewUnchecked creates an Escaper without validating the rule table.
//
// If rules lack a rule for the escape character, Escape and Unescape will
// silently mishandle any literal escape character. Use New unless the table
// is statically known to be valid.
func NewUnchecked(escapeChar rune, rules []Rule) *Escaper {
	e := &Escaper{
		escapeChar: escapeChar,
		rules:      rules,
		byRaw:      make(map[rune]rune, len(rules)),
		byEscaped:  make(map[rune]rune, len(rules)),
	}

	for _, r := range rules {
		if _, ok := e.byRaw[r.Raw]; !ok {
			e.byRaw[r.Raw] = r.Escaped
		}
		if _, ok := e.byEscaped[r.Escaped]; !ok {
			e.byEscaped[r.Escaped] = r.Raw
		}
	}

	return e
}

// MustNew is New that panics on an invalid table. Intended for static,
// package-level tables.
func MustNew(escapeChar rune, rules []Rule) *Escaper {
	e, err := New(escapeChar, rules)
	if err != nil {
		panic(err)
	}

	return e
}

// EscapeChar returns the escape marker.
func (e *Escaper) EscapeChar() rune {
	return e.escapeChar
}

// Rules returns the rule table in construction order. The caller must not
// mutate the returned slice.
func (e *Escaper) Rules() []Rule {
	return e.rules
}

// Equal reports whether both escapers have the same escape character and
// the same rule sequence, order included.
func (e *Escaper) Equal(other *Escaper) bool {
	if e.escapeChar != other.escapeChar || len(e.rules) != len(other.rules) {
		return false
	}

	for i, r := range e.rules {
		if r != other.rules[i] {
			return false
		}
	}
	return true
}

// Escape returns s with every rune that has a rule replaced by the escape
// character followed by the rule's escaped rune. It never fails; runes
// without a rule pass through unchanged.
func (e *Escaper) Escape(s string) string {
	var out strings.Builder
	out.Grow(2 * len(s))
	for _, c := range s {
		escaped, ok := e.byRaw[c]
		if !ok {
			out.WriteRune(c)
			continue
		}

		out.WriteRune(e.escapeChar)
		out.WriteRune(escaped)
	}
	return out.String()
}

// Unescape reverts Escape.
//
// It fails with *InvalidSequenceError when the input contains an escape
// sequence no rule recognizes, and with ErrIncompleteSequence when the input
// ends with a lone escape character.
func (e *Escaper) Unescape(s string) (string, error) {
	var out strings.Builder
	out.Grow(len(s))

	pending := false
	for _, c := range s {
		switch {
		case pending:
			raw, ok := e.byEscaped[c]
			if !ok {
				return "", &InvalidSequenceError{Sequence: string([]rune{e.escapeChar, c})}
			}
			out.WriteRune(raw)
			pending = false

		case c == e.escapeChar:
			pending = true

		default:
			out.WriteRune(c)
		}
	}

	if pending {
		return "", ErrIncompleteSequence
	}
	return out.String(), nil
}

// IsEscaped reports whether s could have been produced by Escape: every
// escape sequence is known, no rune that has a rule occurs bare, and the
// input doesn't end on a lone escape character.
//
// IsEscaped(Escape(x)) is true for every x, and IsEscaped(s) guarantees
// that Unescape(s) cannot fail.
func (e *Escaper) IsEscaped(s string) bool {
	pending := false
	for _, c := range s {
		switch {
		case pending:
			if _, ok := e.byEscaped[c]; !ok {
				return false
			}
			pending = false

		case c == e.escapeChar:
			pending = true

		default:
			if _, ok := e.byRaw[c]; ok {
				return false
			}
		}
	}

	return !pending
}
