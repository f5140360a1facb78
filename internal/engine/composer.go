// Package engine composes the multi-facet support response: it orchestrates
// normalization, safety scanning, sentiment scoring, mood history analysis,
// and the catalog lookups, with safety able to override everything else.
package engine

import (
	"log/slog"

	"github.com/solacekit/solace/internal/catalog"
	"github.com/solacekit/solace/internal/emotion"
	"github.com/solacekit/solace/internal/history"
	"github.com/solacekit/solace/internal/safety"
	"github.com/solacekit/solace/internal/sentiment"
	"github.com/solacekit/solace/internal/types"
)

// DefaultHighIntensity is the threshold above which de-escalation tooling is
// front-loaded for negative categories.
const DefaultHighIntensity = 0.7

// breathingTool is prepended to the tools list under high-intensity
// negative states.
const breathingTool = "breathing_exercise"

// highArousalCategories are the states that get the breathing tool
// front-loaded at high intensity. Sad is deliberately absent: it is
// negative for history purposes but not a de-escalation target.
var highArousalCategories = map[emotion.Category]bool{
	emotion.Angry:    true,
	emotion.Anxious:  true,
	emotion.Fear:     true,
	emotion.Stressed: true,
}

// Request carries one compose call's inputs. Text, Intensity, and History
// are optional; a nil Intensity with no Text skips intensity-based
// prioritization entirely.
type Request struct {
	Emotion   string
	Text      string
	Intensity *float64
	History   []types.MoodEntry
}

// Composer assembles ResponsePayloads. All collaborators are read-only
// after construction, so concurrent Compose calls need no coordination.
type Composer struct {
	scanner       *safety.Scanner
	scorer        *sentiment.Scorer
	catalog       *catalog.Catalog
	history       *history.Analyzer
	highIntensity float64
}

// New returns a Composer. A non-positive highIntensity falls back to the
// default threshold.
func New(scanner *safety.Scanner, scorer *sentiment.Scorer, cat *catalog.Catalog, analyzer *history.Analyzer, highIntensity float64) *Composer {
	if highIntensity <= 0 {
		highIntensity = DefaultHighIntensity
	}
	return &Composer{
		scanner:       scanner,
		scorer:        scorer,
		catalog:       cat,
		history:       analyzer,
		highIntensity: highIntensity,
	}
}

// Compose builds the full response for req. It always returns a complete
// payload: facet-level failures degrade that facet only.
func (c *Composer) Compose(req Request) *types.ResponsePayload {
	cat := emotion.Normalize(req.Emotion)

	var verdict types.RiskVerdict
	var sentimentResult *types.SentimentResult
	if req.Text != "" {
		verdict = c.scanner.Scan(req.Text)
		result := c.scoreText(req.Text)
		sentimentResult = &result
	}

	intensity, haveIntensity := resolveIntensity(req.Intensity, sentimentResult)

	routineKey := ""
	if len(req.History) > 0 {
		if key, ok := c.history.Analyze(req.History); ok {
			routineKey = key
		}
	}

	suggestions := c.catalog.Suggestions(cat)
	tools := suggestions.Tools
	if haveIntensity && intensity > c.highIntensity && highArousalCategories[cat] {
		tools = prependTool(tools, breathingTool)
	}

	var routine types.Routine
	if routineKey != "" {
		if record, ok := c.catalog.Routine(routineKey); ok {
			routine = record
		} else {
			routine = c.catalog.RoutineFor(cat)
		}
	} else {
		routine = c.catalog.RoutineFor(cat)
	}

	payload := &types.ResponsePayload{
		SupportiveMessage: c.catalog.SupportiveMessage(cat),
		Actions:           suggestions.Actions,
		Tools:             tools,
		Intervention:      c.catalog.Intervention(cat, suggestions.Intervention),
		Routine:           routine,
		Affirmation:       c.catalog.Affirmation(cat),
		Music:             c.catalog.Music(cat),
		Sentiment:         sentimentResult,
	}

	// The override is additive: the supportive message stays in place, but
	// consumers must surface the override above everything else.
	if verdict.IsRisk {
		payload.SafeOverride = safety.Override(verdict)
	}

	return payload
}

// scoreText isolates sentiment backend failures: a panicking backend
// degrades to the defaulted result instead of aborting composition.
func (c *Composer) scoreText(text string) (result types.SentimentResult) {
	defer func() {
		if r := recover(); r != nil {
			slog.Warn("sentiment scoring failed, using neutral defaults", "panic", r)
			result = sentiment.NewScorer(nil, nil).Score(text)
		}
	}()
	return c.scorer.Score(text)
}

// resolveIntensity applies the caller's intensity when supplied (clamped to
// [0,1]), else the sentiment-derived intensity when text was scored, else
// reports that no intensity is known.
func resolveIntensity(supplied *float64, scored *types.SentimentResult) (float64, bool) {
	if supplied != nil {
		return clamp01(*supplied), true
	}
	if scored != nil {
		return clamp01(scored.Intensity), true
	}
	return 0, false
}

func clamp01(f float64) float64 {
	switch {
	case f < 0:
		return 0
	case f > 1:
		return 1
	default:
		return f
	}
}

func prependTool(tools []string, tool string) []string {
	for _, t := range tools {
		if t == tool {
			return tools
		}
	}
	return append([]string{tool}, tools...)
}
