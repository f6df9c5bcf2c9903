package ruleset

import (
	"fmt"
	"unicode/utf8"
)

// Char is a single-rune config scalar. Config values must decode to exactly
// one code point.
type Char rune

func (c *Char) UnmarshalText(data []byte) error {
	if len(data) == 0 {
		return fmt.Errorf("empty character")
	}

	r, size := utf8.DecodeRune(data)
	if r == utf8.RuneError && size <= 1 {
		return fmt.Errorf("invalid utf-8: %q", string(data))
	}

	if size != len(data) {
		return fmt.Errorf("expected a single character, got %q", string(data))
	}

	*c = Char(r)
	return nil
}

func (c Char) MarshalText() ([]byte, error) {
	return []byte(string(rune(c))), nil
}

func (c Char) String() string {
	return string(rune(c))
}
