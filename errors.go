package chesc

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingEscapeCharRule is returned by New when the rule table has no
	// rule for the escape character itself.
	ErrMissingEscapeCharRule = errors.New("no escape sequence defined for the escape character")

	// ErrIncompleteSequence is returned by Unescape when the input ends with
	// a lone escape character.
	ErrIncompleteSequence = errors.New("incomplete escape sequence")
)

// InvalidSequenceError is returned by Unescape when the input contains a
// two-character escape sequence that no rule recognizes.
type InvalidSequenceError struct {
	// Sequence is the offending two-character sequence, marker included.
	Sequence string
}

func (e *InvalidSequenceError) Error() string {
	return fmt.Sprintf("invalid escape sequence: %s", e.Sequence)
}

// Is reports sequence-level equality, so two errors for the same offending
// sequence compare equal through errors.Is.
func (e *InvalidSequenceError) Is(target error) bool {
	var other *InvalidSequenceError
	if !errors.As(target, &other) {
		return false
	}
	return e.Sequence == other.Sequence
}
