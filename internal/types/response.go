// Package types holds the wire types shared between the engine and any
// serving layer. Field names follow the existing consumer contract.
package types

// RiskLevel is the crisis tier assigned by the safety scanner.
type RiskLevel string

const (
	RiskNone   RiskLevel = "none"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

// Hotline is one crisis-line directory entry.
type Hotline struct {
	Name    string `json:"name"`
	Phone   string `json:"phone,omitempty"`
	Text    string `json:"text,omitempty"`
	Website string `json:"website"`
	Note    string `json:"note,omitempty"`
}

// HotlineDirectory points to a primary national crisis line and an
// international fallback directory.
type HotlineDirectory struct {
	Primary       Hotline `json:"primary"`
	International Hotline `json:"international"`
}

// RiskVerdict is the safety scanner's result for one text. It is produced
// fresh per call and never cached.
type RiskVerdict struct {
	IsRisk          bool              `json:"is_risk"`
	Level           RiskLevel         `json:"risk_level"`
	Message         string            `json:"message,omitempty"`
	Recommendations []string          `json:"recommendations,omitempty"`
	Hotlines        *HotlineDirectory `json:"hotline_info,omitempty"`
}

// Sentiment is the coarse overall classification of a text.
type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNegative Sentiment = "negative"
	SentimentNeutral  Sentiment = "neutral"
)

// SentimentResult aggregates the compound-score and polarity backends plus
// keyword tone detection. Intensity is the absolute compound score.
type SentimentResult struct {
	Polarity     float64   `json:"polarity"`
	Subjectivity float64   `json:"subjectivity"`
	Compound     float64   `json:"compound"`
	Positive     float64   `json:"pos"`
	Neutral      float64   `json:"neu"`
	Negative     float64   `json:"neg"`
	Tones        []string  `json:"tones"`
	Overall      Sentiment `json:"overall_sentiment"`
	Intensity    float64   `json:"intensity"`
}

// MoodEntry is one caller-supplied mood history sample, most recent last.
// The engine never mutates or retains these.
type MoodEntry struct {
	Emotion string `json:"emotion"`
}

// Intervention is a short guided exercise from the catalog.
type Intervention struct {
	Key             string   `json:"key"`
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	DurationSeconds int      `json:"duration"`
	Steps           []string `json:"steps"`
	Icon            string   `json:"icon"`
	Category        string   `json:"category"`
	TargetRoute     string   `json:"target_route,omitempty"`
}

// Routine is a multi-step wellness routine from the catalog.
type Routine struct {
	Key         string   `json:"key"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Duration    string   `json:"duration"`
	Steps       []string `json:"steps"`
	Icon        string   `json:"icon"`
	BestFor     []string `json:"best_for"`
}

// MusicTrack is one concrete listening suggestion.
type MusicTrack struct {
	Title       string `json:"title"`
	Artist      string `json:"artist"`
	Type        string `json:"type"`
	Description string `json:"description"`
}

// MusicSet is a mood category of listening suggestions.
type MusicSet struct {
	Category    string       `json:"category"`
	Description string       `json:"description"`
	Suggestions []MusicTrack `json:"suggestions"`
}

// SuggestionSet is the per-category pool behind the message, action, and
// tool facets, plus the default micro-intervention key.
type SuggestionSet struct {
	Messages     []string `json:"supportive_messages"`
	Actions      []string `json:"suggested_actions"`
	Tools        []string `json:"recommended_tools"`
	Intervention string   `json:"micro_intervention"`
}

// SafetyOverride is attached to a response when the safety scanner signals
// risk. Consumers must display it above every other facet.
type SafetyOverride struct {
	Message         string           `json:"message"`
	Recommendations []string         `json:"recommendations"`
	Hotlines        HotlineDirectory `json:"hotline_info"`
	Priority        string           `json:"priority"`
}

// ResponsePayload is the engine's sole output. Ownership transfers to the
// caller on return; the engine keeps no reference to it.
type ResponsePayload struct {
	SupportiveMessage string           `json:"supportive_message"`
	Actions           []string         `json:"actions"`
	Tools             []string         `json:"tools"`
	Intervention      Intervention     `json:"intervention"`
	Routine           Routine          `json:"routine"`
	Affirmation       string           `json:"affirmation"`
	Music             MusicSet         `json:"music"`
	SafeOverride      *SafetyOverride  `json:"safe_override_if_any,omitempty"`
	Sentiment         *SentimentResult `json:"sentiment_analysis,omitempty"`
}
