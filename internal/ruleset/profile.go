package ruleset

import (
	"errors"
	"fmt"

	"github.com/chesc/chesc"
)

// RuleDef is one declarative escape rule.
type RuleDef struct {
	Raw     Char `koanf:"raw"`
	Escaped Char `koanf:"escaped"`
}

// Profile is a named escaper table. EscapeChar defaults to backslash when
// unset; a self-escaping rule is added implicitly unless the table already
// escapes the escape character itself.
type Profile struct {
	Name       string    `koanf:"name"`
	EscapeChar Char      `koanf:"escape_char"`
	Rules      []RuleDef `koanf:"rules"`
}

func (p *Profile) Validate() error {
	if p.Name == "" {
		return errors.New("name is empty")
	}

	if len(p.Rules) == 0 {
		return fmt.Errorf("profile %q has no rules", p.Name)
	}

	return nil
}

// Escaper builds the escaper this profile describes.
func (p *Profile) Escaper() (*chesc.Escaper, error) {
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("invalid profile: %w", err)
	}

	escapeChar := rune(p.EscapeChar)
	if escapeChar == 0 {
		escapeChar = chesc.DefaultEscapeChar
	}

	rules := make([]chesc.Rule, 0, len(p.Rules)+1)
	for _, r := range p.Rules {
		rules = append(rules, chesc.Rule{
			Raw:     rune(r.Raw),
			Escaped: rune(r.Escaped),
		})
	}

	esc, err := chesc.New(escapeChar, rules)
	if errors.Is(err, chesc.ErrMissingEscapeCharRule) {
		return chesc.New(escapeChar, append(rules, chesc.SelfRule(escapeChar)))
	}

	return esc, err
}
