// Package history inspects a caller-supplied window of recent mood entries
// for sustained-negative and low-energy patterns.
package history

import (
	"github.com/solacekit/solace/internal/emotion"
	"github.com/solacekit/solace/internal/types"
)

// Defaults carried over from the deployed rule set. They have no documented
// derivation, so they stay configurable rather than hard-coded invariants.
const (
	DefaultWindow             = 7
	DefaultNegativeThreshold  = 5
	DefaultLowEnergyThreshold = 3
)

// Routine keys the analyzer can redirect to.
const (
	StressReliefRoutine = "stress_relief"
	MorningBoostRoutine = "morning_boost"
)

// Analyzer detects mood history patterns that override the default
// emotion-to-routine mapping.
type Analyzer struct {
	window             int
	negativeThreshold  int
	lowEnergyThreshold int
}

// NewAnalyzer returns an Analyzer. Non-positive arguments fall back to the
// defaults.
func NewAnalyzer(window, negativeThreshold, lowEnergyThreshold int) *Analyzer {
	if window <= 0 {
		window = DefaultWindow
	}
	if negativeThreshold <= 0 {
		negativeThreshold = DefaultNegativeThreshold
	}
	if lowEnergyThreshold <= 0 {
		lowEnergyThreshold = DefaultLowEnergyThreshold
	}
	return &Analyzer{
		window:             window,
		negativeThreshold:  negativeThreshold,
		lowEnergyThreshold: lowEnergyThreshold,
	}
}

// Analyze inspects the trailing window of entries. It returns the routine
// key to redirect to and true when a pattern threshold is met. The
// sustained-negative check runs first and short-circuits the low-energy
// check. Entries are never mutated.
func (a *Analyzer) Analyze(entries []types.MoodEntry) (string, bool) {
	if len(entries) == 0 {
		return "", false
	}
	recent := entries
	if len(recent) > a.window {
		recent = recent[len(recent)-a.window:]
	}

	var negative, lowEnergy int
	for _, entry := range recent {
		cat := emotion.Normalize(entry.Emotion)
		if emotion.IsNegative(cat) {
			negative++
		}
		if cat == emotion.LowEnergy {
			lowEnergy++
		}
	}

	if negative >= a.negativeThreshold {
		return StressReliefRoutine, true
	}
	if lowEnergy >= a.lowEnergyThreshold {
		return MorningBoostRoutine, true
	}
	return "", false
}
