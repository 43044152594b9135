package suggest

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Rule is a literal substitution. Pattern matches anywhere in the text,
// including inside other words.
type Rule struct {
	Pattern     string
	Replacement string
}

// Rules apply in slice order.
type Rules []Rule

// Apply replaces every occurrence of each pattern, then every occurrence of
// its capitalized form with the capitalized replacement, rule by rule.
func (rs Rules) Apply(text string) string {
	result := text
	for _, r := range rs {
		result = strings.ReplaceAll(result, r.Pattern, r.Replacement)
		result = strings.ReplaceAll(result, Capitalize(r.Pattern), Capitalize(r.Replacement))
	}
	return result
}

// Capitalize upper-cases the first letter and lower-cases the rest.
func Capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToTitle(r)) + strings.ToLower(s[size:])
}

var professionalRules = Rules{
	{Pattern: "gonna", Replacement: "going to"},
	{Pattern: "wanna", Replacement: "want to"},
	{Pattern: "ok", Replacement: "okay"},
	{Pattern: "yeah", Replacement: "yes"},
	{Pattern: "thanks", Replacement: "thank you"},
}

var culturalRules = Rules{
	{Pattern: "buddy", Replacement: "friend"},
	{Pattern: "dude", Replacement: "person"},
	{Pattern: "mate", Replacement: "friend (UK/AU)"},
}

// ProfessionalRules returns a copy of the informal-to-formal table.
func ProfessionalRules() Rules {
	return append(Rules(nil), professionalRules...)
}

// CulturalRules returns a copy of the slang-to-neutral table.
func CulturalRules() Rules {
	return append(Rules(nil), culturalRules...)
}
