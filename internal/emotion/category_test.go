package emotion

import "testing"

func TestNormalizeDirectCategories(t *testing.T) {
	cases := map[string]Category{
		"happy":      Happy,
		"Sad":        Sad,
		"ANGRY":      Angry,
		"Anxious":    Anxious,
		"fear":       Fear,
		"stressed":   Stressed,
		"low_energy": LowEnergy,
		"neutral":    Neutral,
		" Happy ":    Happy,
	}
	for raw, want := range cases {
		if got := Normalize(raw); got != want {
			t.Fatalf("Normalize(%q) = %q, want %q", raw, got, want)
		}
	}
}

func TestNormalizeFineGrained(t *testing.T) {
	cases := map[string]Category{
		"joy":         Happy,
		"gratitude":   Happy,
		"grief":       Sad,
		"remorse":     Sad,
		"annoyance":   Angry,
		"disgust":     Angry,
		"nervousness": Anxious,
		"confusion":   Stressed,
		"curiosity":   Neutral,
		"surprise":    Neutral,
		"Realization": Neutral,
	}
	for raw, want := range cases {
		if got := Normalize(raw); got != want {
			t.Fatalf("Normalize(%q) = %q, want %q", raw, got, want)
		}
	}
}

func TestNormalizeIsTotal(t *testing.T) {
	inputs := []string{"", "  ", "bogus", "WAT", "低落", "happy!", "12345"}
	for _, raw := range inputs {
		got := Normalize(raw)
		if !valid[got] {
			t.Fatalf("Normalize(%q) returned unrecognized category %q", raw, got)
		}
	}
	if got := Normalize("never-seen-label"); got != Neutral {
		t.Fatalf("unknown label should normalize to neutral, got %q", got)
	}
}

func TestIsNegative(t *testing.T) {
	negatives := []Category{Sad, Angry, Anxious, Fear, Stressed}
	for _, c := range negatives {
		if !IsNegative(c) {
			t.Fatalf("expected %q to be negative", c)
		}
	}
	for _, c := range []Category{Happy, LowEnergy, Neutral} {
		if IsNegative(c) {
			t.Fatalf("expected %q to not be negative", c)
		}
	}
}
