package ruleset

// Builtin profiles available without any configuration.
var builtins = []Profile{
	{
		Name:       "cstyle",
		EscapeChar: '\\',
		Rules: []RuleDef{
			{Raw: '\n', Escaped: 'n'},
			{Raw: '\r', Escaped: 'r'},
			{Raw: '\t', Escaped: 't'},
			{Raw: '\\', Escaped: '\\'},
			{Raw: '\'', Escaped: '\''},
			{Raw: '"', Escaped: '"'},
		},
	},
	{
		Name:       "whitespace",
		EscapeChar: '\\',
		Rules: []RuleDef{
			{Raw: '\n', Escaped: 'n'},
			{Raw: ' ', Escaped: 'w'},
			{Raw: '\\', Escaped: '\\'},
		},
	},
}

// Builtin returns the builtin profile with the given name.
func Builtin(name string) (Profile, bool) {
	for _, p := range builtins {
		if p.Name == name {
			return p, true
		}
	}
	return Profile{}, false
}

// Builtins returns all builtin profiles in a fresh slice.
func Builtins() []Profile {
	out := make([]Profile, len(builtins))
	copy(out, builtins)
	return out
}
