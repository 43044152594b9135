package suggest

import (
	"errors"
	"fmt"
	"strings"
)

// CulturalNote is appended to every cultural suggestion.
const CulturalNote = "\n\nNote: Consider local greetings depending on the culture."

var ErrUnknownKind = errors.New("unknown suggestion kind")

type Kind int

const (
	Professional Kind = iota
	Neutral
	Cultural
)

func (k Kind) String() string {
	switch k {
	case Professional:
		return "Professional"
	case Neutral:
		return "Neutral"
	case Cultural:
		return "Cultural"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Kinds lists the suggestions in the order the write window offers them.
func Kinds() []Kind {
	return []Kind{Professional, Neutral, Cultural}
}

func ParseKind(s string) (Kind, error) {
	for _, k := range Kinds() {
		if strings.EqualFold(strings.TrimSpace(s), k.String()) {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// Func is a text rewrite.
type Func func(string) string

// Func returns the transform behind k, or nil for an unknown kind.
func (k Kind) Func() Func {
	switch k {
	case Professional:
		return ProfessionalText
	case Neutral:
		return NeutralText
	case Cultural:
		return CulturalText
	default:
		return nil
	}
}

func Apply(kind Kind, text string) (string, error) {
	fn := kind.Func()
	if fn == nil {
		return "", fmt.Errorf("%w: %s", ErrUnknownKind, kind)
	}
	return fn(text), nil
}

// ProfessionalText swaps informal words for formal ones, then rebuilds the
// sentences: split on '.', trim, capitalize, drop empties, join with ". ".
// A trailing period on the input survives the rebuild.
func ProfessionalText(text string) string {
	result := professionalRules.Apply(text)

	parts := strings.Split(result, ".")
	sentences := make([]string, 0, len(parts))
	for _, p := range parts {
		s := Capitalize(strings.TrimSpace(p))
		if s != "" {
			sentences = append(sentences, s)
		}
	}

	out := strings.Join(sentences, ". ")
	if out != "" && strings.HasSuffix(strings.TrimSpace(result), ".") {
		out += "."
	}
	return out
}

// NeutralText collapses whitespace and removes spaces before commas and periods.
func NeutralText(text string) string {
	t := strings.Join(strings.Fields(text), " ")
	t = strings.ReplaceAll(t, " ,", ",")
	t = strings.ReplaceAll(t, " .", ".")
	return t
}

func CulturalText(text string) string {
	return culturalRules.Apply(text) + CulturalNote
}

