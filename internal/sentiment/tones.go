package sentiment

import "strings"

// toneOrder fixes the evaluation and output order of the tone categories.
var toneOrder = []string{"frustrated", "confused", "overwhelmed", "calm", "low-energy", "positive"}

// toneTriggers lists the phrases that mark each tone. Matching is plain
// substring containment on the lower-cased text, not word-bounded; short
// trigger phrases are chosen so that partial-word hits stay harmless.
var toneTriggers = map[string][]string{
	"frustrated":  {"frustrated", "frustrating", "annoyed", "irritated", "fed up", "can't stand", "so done"},
	"confused":    {"confused", "confusing", "unclear", "don't understand", "not sure", "puzzled", "bewildered"},
	"overwhelmed": {"overwhelmed", "overwhelming", "too much", "can't handle", "drowning", "swamped", "buried"},
	"calm":        {"calm", "peaceful", "relaxed", "serene", "tranquil", "at ease", "content"},
	"low-energy":  {"tired", "exhausted", "drained", "low energy", "lethargic", "worn out", "fatigued", "weary"},
	"positive":    {"great", "wonderful", "amazing", "excellent", "fantastic", "love", "happy", "joy", "grateful"},
}

// DetectTones returns the tone tags whose trigger phrases appear in text.
// Multiple tones may co-occur; the result order is fixed.
func DetectTones(text string) []string {
	lower := strings.ToLower(text)
	var detected []string
	for _, tone := range toneOrder {
		for _, trigger := range toneTriggers[tone] {
			if strings.Contains(lower, trigger) {
				detected = append(detected, tone)
				break
			}
		}
	}
	return detected
}
