// Package safety scans user text for crisis language. Its verdict can
// override every other facet of a composed response, so it runs before
// anything user-visible is assembled.
package safety

import (
	"regexp"
	"strings"

	"github.com/solacekit/solace/internal/types"
)

// Tier-1 patterns signal active suicidal ideation, self-harm intent, or
// explicit hopelessness. A single match anywhere classifies the text as
// high risk and stops further evaluation. Word boundaries keep substrings
// from matching ("hopelessly" is not "hopeless").
var highRiskPatterns = compileAll([]string{
	`\b(kill\s+myself|end\s+it\s+all|suicide|not\s+worth\s+living|want\s+to\s+die)\b`,
	`\b(hurt\s+myself|cut\s+myself|self\s+harm|harm\s+myself)\b`,
	`\b(no\s+point|nothing\s+left|no\s+reason\s+to\s+live|better\s+off\s+dead)\b`,
	`\b(can't\s+go\s+on|can't\s+take\s+it\s+anymore|giving\s+up|hopeless)\b`,
	`\b(no\s+way\s+out|trapped|stuck\s+forever|never\s+get\s+better)\b`,
	`\b(completely\s+alone|nobody\s+cares|everyone\s+hates\s+me|worthless)\b`,
	`\b(pain\s+too\s+much|can't\s+handle\s+it|overwhelming\s+pain)\b`,
})

// Tier-2 patterns signal significant distress short of active crisis. They
// are only evaluated when tier 1 found nothing. Some triggers here are
// deliberately broad ("considering"); tightening them is a precision/recall
// tuning decision, not a code fix.
var mediumRiskPatterns = compileAll([]string{
	`\b(very\s+depressed|deeply\s+sad|extremely\s+anxious|panic)\b`,
	`\b(thoughts\s+of\s+death|thinking\s+about\s+ending|considering)\b`,
	`\b(no\s+one\s+understands|completely\s+isolated|cut\s+off)\b`,
})

func compileAll(exprs []string) []*regexp.Regexp {
	compiled := make([]*regexp.Regexp, len(exprs))
	for i, expr := range exprs {
		compiled[i] = regexp.MustCompile(`(?i)` + expr)
	}
	return compiled
}

func hotlines() *types.HotlineDirectory {
	return &types.HotlineDirectory{
		Primary: types.Hotline{
			Name:    "988 Suicide & Crisis Lifeline",
			Phone:   "988",
			Text:    "Text HOME to 741741",
			Website: "https://988lifeline.org",
		},
		International: types.Hotline{
			Name:    "International Association for Suicide Prevention",
			Website: "https://www.iasp.info/resources/Crisis_Centres/",
			Note:    "Find local crisis centers in your country",
		},
	}
}

const highRiskMessage = "I'm concerned about what you've shared. Your life has value, and there are people who want to help. " +
	"Please reach out to a crisis hotline or a trusted person in your life right away. " +
	"You don't have to face this alone."

const mediumRiskMessage = "I hear that you're going through a really difficult time. Your feelings are valid, and it's important " +
	"that you have support. Consider reaching out to a mental health professional or someone you trust."

func highRiskRecommendations() []string {
	return []string{
		"Contact a crisis hotline immediately (see information below)",
		"Reach out to a trusted friend, family member, or mental health professional",
		"Go to your nearest emergency room if you're in immediate danger",
		"Remember: These feelings are temporary, even when they don't feel that way",
	}
}

func mediumRiskRecommendations() []string {
	return []string{
		"Consider speaking with a mental health professional",
		"Reach out to a trusted friend or family member",
		"Use the crisis resources available if you need immediate support",
		"Remember that you don't have to handle everything alone",
	}
}

// Scanner classifies text against the tiered risk phrase sets.
type Scanner struct{}

// NewScanner returns a Scanner.
func NewScanner() *Scanner {
	return &Scanner{}
}

// Scan returns the risk verdict for text. It never fails; absence of a
// match is the only no-risk outcome.
func (s *Scanner) Scan(text string) types.RiskVerdict {
	lower := strings.ToLower(text)

	for _, pattern := range highRiskPatterns {
		if pattern.MatchString(lower) {
			return types.RiskVerdict{
				IsRisk:          true,
				Level:           types.RiskHigh,
				Message:         highRiskMessage,
				Recommendations: highRiskRecommendations(),
				Hotlines:        hotlines(),
			}
		}
	}

	for _, pattern := range mediumRiskPatterns {
		if pattern.MatchString(lower) {
			return types.RiskVerdict{
				IsRisk:          true,
				Level:           types.RiskMedium,
				Message:         mediumRiskMessage,
				Recommendations: mediumRiskRecommendations(),
				Hotlines:        hotlines(),
			}
		}
	}

	return types.RiskVerdict{Level: types.RiskNone}
}

// Override converts a risky verdict into the response-level safety override.
// It returns nil when the verdict carries no risk.
func Override(verdict types.RiskVerdict) *types.SafetyOverride {
	if !verdict.IsRisk {
		return nil
	}
	override := &types.SafetyOverride{
		Message:         verdict.Message,
		Recommendations: verdict.Recommendations,
		Priority:        "safety",
	}
	if verdict.Hotlines != nil {
		override.Hotlines = *verdict.Hotlines
	}
	return override
}
