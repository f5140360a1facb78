// Package emotion defines the closed category set and the normalization of
// upstream classifier labels onto it.
package emotion

import "strings"

// Category is one of the eight internal emotion buckets. Every catalog
// lookup keys on this type.
type Category string

const (
	Happy     Category = "happy"
	Sad       Category = "sad"
	Angry     Category = "angry"
	Anxious   Category = "anxious"
	Fear      Category = "fear"
	Stressed  Category = "stressed"
	LowEnergy Category = "low_energy"
	Neutral   Category = "neutral"
)

// Categories returns all categories in declaration order.
func Categories() []Category {
	return []Category{Happy, Sad, Angry, Anxious, Fear, Stressed, LowEnergy, Neutral}
}

var valid = map[Category]bool{
	Happy:     true,
	Sad:       true,
	Angry:     true,
	Anxious:   true,
	Fear:      true,
	Stressed:  true,
	LowEnergy: true,
	Neutral:   true,
}

// fineGrained maps the upstream 28-way taxonomy onto the category set.
// Read-only after init; unknown labels fall through to Neutral.
var fineGrained = map[string]Category{
	"joy":        Happy,
	"amusement":  Happy,
	"excitement": Happy,
	"optimism":   Happy,
	"love":       Happy,
	"gratitude":  Happy,
	"pride":      Happy,
	"admiration": Happy,
	"approval":   Happy,
	"caring":     Happy,
	"relief":     Happy,

	"sadness":        Sad,
	"grief":          Sad,
	"disappointment": Sad,
	"remorse":        Sad,

	"anger":       Angry,
	"annoyance":   Angry,
	"disapproval": Angry,
	"disgust":     Angry,

	"nervousness":   Anxious,
	"embarrassment": Anxious,

	"confusion": Stressed,

	"curiosity":   Neutral,
	"surprise":    Neutral,
	"realization": Neutral,
	"desire":      Neutral,
}

// Normalize resolves an arbitrary upstream label to a Category. It is total
// over all strings: category names pass through (case-insensitively), mapped
// fine-grained labels resolve through the table, and everything else is
// Neutral.
func Normalize(raw string) Category {
	lower := Category(strings.ToLower(strings.TrimSpace(raw)))
	if valid[lower] {
		return lower
	}
	if mapped, ok := fineGrained[string(lower)]; ok {
		return mapped
	}
	return Neutral
}

// IsNegative reports whether c belongs to the negative set used by the mood
// history analyzer and the high-intensity tool prioritization.
func IsNegative(c Category) bool {
	switch c {
	case Sad, Angry, Anxious, Fear, Stressed:
		return true
	default:
		return false
	}
}
