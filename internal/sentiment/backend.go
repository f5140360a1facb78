package sentiment

import (
	"strings"

	"github.com/jonreiter/govader"
)

// CompoundScores is the lexicon analyzer output shape.
type CompoundScores struct {
	Compound float64
	Positive float64
	Neutral  float64
	Negative float64
}

// CompoundBackend produces VADER-style compound scores for a text.
type CompoundBackend interface {
	PolarityScores(text string) CompoundScores
}

// PolarityBackend produces polarity in [-1,1] and subjectivity in [0,1].
type PolarityBackend interface {
	Polarity(text string) (polarity, subjectivity float64)
}

// Unavailable is the explicit no-backend variant. It returns neutral
// defaults instead of failing, so a missing backend is decided once at
// startup rather than handled at every call site.
type Unavailable struct{}

func (Unavailable) PolarityScores(string) CompoundScores {
	return CompoundScores{Compound: 0, Positive: 0, Neutral: 1, Negative: 0}
}

func (Unavailable) Polarity(string) (float64, float64) {
	return 0, 0.5
}

// VaderBackend wraps the govader analyzer as the compound backend.
type VaderBackend struct {
	analyzer *govader.SentimentIntensityAnalyzer
}

// NewVaderBackend returns a VaderBackend with a fresh lexicon.
func NewVaderBackend() *VaderBackend {
	return &VaderBackend{analyzer: govader.NewSentimentIntensityAnalyzer()}
}

func (b *VaderBackend) PolarityScores(text string) CompoundScores {
	scores := b.analyzer.PolarityScores(text)
	return CompoundScores{
		Compound: scores.Compound,
		Positive: scores.Positive,
		Neutral:  scores.Neutral,
		Negative: scores.Negative,
	}
}

// wordPolarity is a small averaged-word lexicon standing in for a
// polarity/subjectivity analyzer. Values are (polarity, subjectivity).
var wordPolarity = map[string][2]float64{
	"happy":      {0.8, 1.0},
	"joy":        {0.8, 0.9},
	"love":       {0.5, 0.6},
	"great":      {0.8, 0.75},
	"good":       {0.7, 0.6},
	"wonderful":  {1.0, 1.0},
	"amazing":    {0.6, 0.9},
	"excellent":  {1.0, 1.0},
	"grateful":   {0.6, 0.8},
	"calm":       {0.3, 0.7},
	"peaceful":   {0.4, 0.8},
	"relaxed":    {0.4, 0.7},
	"proud":      {0.5, 0.8},
	"hopeful":    {0.5, 0.8},
	"excited":    {0.4, 0.8},
	"better":     {0.5, 0.5},
	"fine":       {0.2, 0.5},
	"okay":       {0.2, 0.5},
	"sad":        {-0.5, 1.0},
	"unhappy":    {-0.6, 0.9},
	"depressed":  {-0.7, 0.9},
	"miserable":  {-0.8, 1.0},
	"terrible":   {-1.0, 1.0},
	"awful":      {-1.0, 1.0},
	"horrible":   {-1.0, 1.0},
	"bad":        {-0.7, 0.67},
	"angry":      {-0.6, 0.9},
	"furious":    {-0.8, 1.0},
	"annoyed":    {-0.5, 0.8},
	"frustrated": {-0.6, 0.85},
	"anxious":    {-0.5, 0.9},
	"worried":    {-0.4, 0.8},
	"scared":     {-0.6, 0.9},
	"afraid":     {-0.6, 0.9},
	"hopeless":   {-0.8, 0.95},
	"exhausted":  {-0.4, 0.8},
	"tired":      {-0.3, 0.7},
	"lonely":     {-0.6, 0.9},
	"stressed":   {-0.5, 0.85},
	"hurt":       {-0.5, 0.8},
	"worse":      {-0.6, 0.6},
	"alone":      {-0.3, 0.6},
}

// LexiconBackend is a lightweight averaged-word polarity/subjectivity
// analyzer. Only words carrying sentiment contribute to the average;
// "not" flips the polarity of the following sentiment word.
type LexiconBackend struct{}

// NewLexiconBackend returns a LexiconBackend.
func NewLexiconBackend() *LexiconBackend {
	return &LexiconBackend{}
}

func (*LexiconBackend) Polarity(text string) (float64, float64) {
	words := strings.Fields(strings.ToLower(text))
	var polaritySum, subjectivitySum float64
	var count int
	negate := false
	for _, word := range words {
		word = strings.Trim(word, ".,!?;:'\"()")
		if word == "not" || word == "never" || strings.HasSuffix(word, "n't") {
			negate = true
			continue
		}
		if scores, ok := wordPolarity[word]; ok {
			polarity := scores[0]
			if negate {
				polarity = -polarity
			}
			polaritySum += polarity
			subjectivitySum += scores[1]
			count++
		}
		negate = false
	}
	if count == 0 {
		return 0, 0.5
	}
	return polaritySum / float64(count), subjectivitySum / float64(count)
}
