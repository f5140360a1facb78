package history

import (
	"testing"

	"github.com/solacekit/solace/internal/types"
)

func entries(emotions ...string) []types.MoodEntry {
	out := make([]types.MoodEntry, len(emotions))
	for i, e := range emotions {
		out[i] = types.MoodEntry{Emotion: e}
	}
	return out
}

func TestAnalyzeSustainedNegative(t *testing.T) {
	a := NewAnalyzer(0, 0, 0)
	key, ok := a.Analyze(entries("sad", "angry", "anxious", "fear", "stressed", "happy", "happy"))
	if !ok || key != StressReliefRoutine {
		t.Fatalf("expected stress_relief override, got (%q, %v)", key, ok)
	}
}

func TestAnalyzeLowEnergyPattern(t *testing.T) {
	a := NewAnalyzer(0, 0, 0)
	key, ok := a.Analyze(entries("low_energy", "happy", "low_energy", "neutral", "low_energy"))
	if !ok || key != MorningBoostRoutine {
		t.Fatalf("expected morning_boost override, got (%q, %v)", key, ok)
	}
}

func TestAnalyzeNegativeWinsOverLowEnergy(t *testing.T) {
	a := NewAnalyzer(0, 0, 0)
	// 5 negatives and 2 low_energy in a 7-entry window: negative check runs
	// first and short-circuits.
	key, ok := a.Analyze(entries("sad", "angry", "anxious", "fear", "stressed", "low_energy", "low_energy"))
	if !ok || key != StressReliefRoutine {
		t.Fatalf("negative pattern must take precedence, got (%q, %v)", key, ok)
	}
}

func TestAnalyzeOnlyTrailingWindowCounts(t *testing.T) {
	a := NewAnalyzer(0, 0, 0)
	// Five negatives fall outside the trailing 7 entries.
	history := entries("sad", "sad", "sad", "sad", "sad",
		"happy", "happy", "happy", "happy", "neutral", "neutral", "neutral")
	if key, ok := a.Analyze(history); ok {
		t.Fatalf("entries outside the window must not count, got (%q, %v)", key, ok)
	}
}

func TestAnalyzeNormalizesRawLabels(t *testing.T) {
	a := NewAnalyzer(0, 0, 0)
	// Fine-grained upstream labels count toward the negative set once
	// normalized.
	key, ok := a.Analyze(entries("grief", "annoyance", "nervousness", "confusion", "sadness", "joy", "joy"))
	if !ok || key != StressReliefRoutine {
		t.Fatalf("expected normalized labels to trigger override, got (%q, %v)", key, ok)
	}
}

func TestAnalyzeNoPattern(t *testing.T) {
	a := NewAnalyzer(0, 0, 0)
	if key, ok := a.Analyze(nil); ok {
		t.Fatalf("nil history must not trigger override, got %q", key)
	}
	if key, ok := a.Analyze(entries()); ok {
		t.Fatalf("empty history must not trigger override, got %q", key)
	}
	if key, ok := a.Analyze(entries("sad", "happy", "neutral", "sad", "happy")); ok {
		t.Fatalf("below-threshold history must not trigger override, got %q", key)
	}
}

func TestAnalyzeCustomThresholds(t *testing.T) {
	a := NewAnalyzer(5, 2, 2)
	key, ok := a.Analyze(entries("sad", "angry", "happy", "happy", "happy"))
	if !ok || key != StressReliefRoutine {
		t.Fatalf("custom negative threshold should trigger, got (%q, %v)", key, ok)
	}
	key, ok = a.Analyze(entries("low_energy", "low_energy", "happy", "happy", "happy"))
	if !ok || key != MorningBoostRoutine {
		t.Fatalf("custom low-energy threshold should trigger, got (%q, %v)", key, ok)
	}
}
