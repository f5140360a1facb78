// Package sentiment aggregates pluggable polarity backends and keyword tone
// detection into a single result the composer can consume.
package sentiment

import (
	"log/slog"
	"math"

	"github.com/solacekit/solace/internal/types"
)

// Thresholds for the overall positive/negative classification.
const (
	positiveCompound = 0.05
	negativeCompound = -0.05
)

// Scorer combines a compound-score backend, a polarity/subjectivity
// backend, and tone detection. A nil backend degrades to the Unavailable
// variant at construction time.
type Scorer struct {
	compound CompoundBackend
	polarity PolarityBackend
}

// NewScorer returns a Scorer. Missing backends are replaced with the
// defaulted Unavailable variant and logged once, here, not per call.
func NewScorer(compound CompoundBackend, polarity PolarityBackend) *Scorer {
	if compound == nil {
		slog.Warn("compound sentiment backend unavailable, using neutral defaults")
		compound = Unavailable{}
	}
	if polarity == nil {
		slog.Warn("polarity sentiment backend unavailable, using neutral defaults")
		polarity = Unavailable{}
	}
	return &Scorer{compound: compound, polarity: polarity}
}

// Score returns the aggregated sentiment for text. It always returns a
// complete result; backend absence yields neutral defaults, never an error.
func (s *Scorer) Score(text string) types.SentimentResult {
	scores := s.compound.PolarityScores(text)
	polarity, subjectivity := s.polarity.Polarity(text)

	overall := types.SentimentNeutral
	switch {
	case scores.Compound >= positiveCompound:
		overall = types.SentimentPositive
	case scores.Compound <= negativeCompound:
		overall = types.SentimentNegative
	}

	return types.SentimentResult{
		Polarity:     polarity,
		Subjectivity: subjectivity,
		Compound:     scores.Compound,
		Positive:     scores.Positive,
		Neutral:      scores.Neutral,
		Negative:     scores.Negative,
		Tones:        DetectTones(text),
		Overall:      overall,
		Intensity:    math.Abs(scores.Compound),
	}
}
