package chesc

// Rule maps a single raw character to the single character that represents
// it after the escape marker. Escaping Raw yields marker+Escaped, unescaping
// marker+Escaped yields Raw.
type Rule struct {
	Raw     rune
	Escaped rune
}

// SelfRule returns the rule that maps the escape marker to itself. Every
// valid table must contain a rule with Raw == escapeChar so the marker can
// appear literally in escaped text.
func SelfRule(escapeChar rune) Rule {
	return Rule{Raw: escapeChar, Escaped: escapeChar}
}

func containsEscapeCharRule(escapeChar rune, rules []Rule) bool {
	for _, r := range rules {
		if r.Raw == escapeChar {
			return true
		}
	}
	return false
}
