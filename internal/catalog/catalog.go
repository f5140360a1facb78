// Package catalog holds the static response tables: affirmations,
// suggestions, micro-interventions, routines, and music. Tables are built
// once at startup, validated for totality over the category set, and
// read-only afterwards.
package catalog

import (
	"fmt"
	"math/rand"
	"sort"
	"sync"
	"time"

	"github.com/solacekit/solace/internal/emotion"
	"github.com/solacekit/solace/internal/types"
)

const (
	fallbackIntervention = "breathing_reset"
	fallbackRoutine      = "general_wellness"
	fallbackMusic        = "ambient"
)

// Catalog is the queryable set of static response tables.
type Catalog struct {
	affirmations    map[emotion.Category][]string
	suggestions     map[emotion.Category]types.SuggestionSet
	interventions   map[string]types.Intervention
	interventionFor map[emotion.Category]string
	routines        map[string]types.Routine
	routineFor      map[emotion.Category]string
	music           map[string]types.MusicSet
	musicFor        map[emotion.Category]string

	mu  sync.Mutex
	rng *rand.Rand
}

// Option configures a Catalog.
type Option func(*Catalog) error

// WithRand replaces the random source used for affirmation and message
// draws. Tests use this to pin the draw order.
func WithRand(rng *rand.Rand) Option {
	return func(c *Catalog) error {
		c.rng = rng
		return nil
	}
}

// WithOverlayFile applies a YAML overlay on top of the embedded defaults.
// A broken overlay fails construction; catalog problems are startup errors,
// never per-call conditions.
func WithOverlayFile(path string) Option {
	return func(c *Catalog) error {
		return c.applyOverlayFile(path)
	}
}

// New builds a Catalog from the embedded defaults, applies options, and
// validates that every table is total over the category set.
func New(opts ...Option) (*Catalog, error) {
	c := &Catalog{
		affirmations:    defaultAffirmations(),
		suggestions:     defaultSuggestions(),
		interventions:   defaultInterventions(),
		interventionFor: defaultInterventionFor(),
		routines:        defaultRoutines(),
		routineFor:      defaultRoutineFor(),
		music:           defaultMusic(),
		musicFor:        defaultMusicFor(),
		rng:             rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Catalog) validate() error {
	for _, cat := range emotion.Categories() {
		if len(c.affirmations[cat]) == 0 {
			return fmt.Errorf("affirmations table missing category %q", cat)
		}
		set, ok := c.suggestions[cat]
		if !ok || len(set.Messages) == 0 {
			return fmt.Errorf("suggestions table missing category %q", cat)
		}
		if set.Intervention != "" {
			if _, ok := c.interventions[set.Intervention]; !ok {
				return fmt.Errorf("suggestions for %q reference unknown intervention %q", cat, set.Intervention)
			}
		}
		if key := c.interventionFor[cat]; key != "" {
			if _, ok := c.interventions[key]; !ok {
				return fmt.Errorf("intervention default for %q references unknown key %q", cat, key)
			}
		}
		if key, ok := c.routineFor[cat]; !ok {
			return fmt.Errorf("routine table missing category %q", cat)
		} else if _, ok := c.routines[key]; !ok {
			return fmt.Errorf("routine default for %q references unknown key %q", cat, key)
		}
		if key, ok := c.musicFor[cat]; !ok {
			return fmt.Errorf("music table missing category %q", cat)
		} else if _, ok := c.music[key]; !ok {
			return fmt.Errorf("music default for %q references unknown key %q", cat, key)
		}
	}
	if _, ok := c.interventions[fallbackIntervention]; !ok {
		return fmt.Errorf("fallback intervention %q missing from catalog", fallbackIntervention)
	}
	if _, ok := c.routines[fallbackRoutine]; !ok {
		return fmt.Errorf("fallback routine %q missing from catalog", fallbackRoutine)
	}
	if _, ok := c.music[fallbackMusic]; !ok {
		return fmt.Errorf("fallback music category %q missing from catalog", fallbackMusic)
	}
	return nil
}

func (c *Catalog) intn(n int) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.rng.Intn(n)
}

func (c *Catalog) shuffled(pool []string) []string {
	out := append([]string(nil), pool...)
	c.mu.Lock()
	defer c.mu.Unlock()
	c.rng.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}

// Affirmation returns one uniformly drawn affirmation for cat, falling back
// to the neutral pool if the category has none.
func (c *Catalog) Affirmation(cat emotion.Category) string {
	pool := c.affirmations[cat]
	if len(pool) == 0 {
		pool = c.affirmations[emotion.Neutral]
	}
	return pool[c.intn(len(pool))]
}

// Affirmations returns up to n distinct affirmations for cat in random order.
func (c *Catalog) Affirmations(cat emotion.Category, n int) []string {
	pool := c.affirmations[cat]
	if len(pool) == 0 {
		pool = c.affirmations[emotion.Neutral]
	}
	out := c.shuffled(pool)
	if n < len(out) {
		out = out[:n]
	}
	return out
}

// Suggestions returns the suggestion set for cat, falling back to neutral.
// The returned slices are copies; callers own them.
func (c *Catalog) Suggestions(cat emotion.Category) types.SuggestionSet {
	set, ok := c.suggestions[cat]
	if !ok {
		set = c.suggestions[emotion.Neutral]
	}
	return types.SuggestionSet{
		Messages:     append([]string(nil), set.Messages...),
		Actions:      append([]string(nil), set.Actions...),
		Tools:        append([]string(nil), set.Tools...),
		Intervention: set.Intervention,
	}
}

// SupportiveMessage draws one supportive message for cat from the
// suggestion pool.
func (c *Catalog) SupportiveMessage(cat emotion.Category) string {
	set, ok := c.suggestions[cat]
	if !ok || len(set.Messages) == 0 {
		set = c.suggestions[emotion.Neutral]
	}
	return set.Messages[c.intn(len(set.Messages))]
}

// Intervention resolves a micro-intervention: an explicit key wins when it
// exists, otherwise the category default, otherwise the breathing reset.
func (c *Catalog) Intervention(cat emotion.Category, key string) types.Intervention {
	if key != "" {
		if record, ok := c.interventions[key]; ok {
			return record
		}
	}
	if defaultKey, ok := c.interventionFor[cat]; ok {
		if record, ok := c.interventions[defaultKey]; ok {
			return record
		}
	}
	return c.interventions[fallbackIntervention]
}

// Interventions returns all interventions ordered by key.
func (c *Catalog) Interventions() []types.Intervention {
	keys := make([]string, 0, len(c.interventions))
	for key := range c.interventions {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	out := make([]types.Intervention, 0, len(keys))
	for _, key := range keys {
		out = append(out, c.interventions[key])
	}
	return out
}

// InterventionsByCategory returns interventions whose category tag matches.
func (c *Catalog) InterventionsByCategory(tag string) []types.Intervention {
	var out []types.Intervention
	for _, record := range c.Interventions() {
		if record.Category == tag {
			out = append(out, record)
		}
	}
	return out
}

// Routine returns the routine for key if it exists.
func (c *Catalog) Routine(key string) (types.Routine, bool) {
	record, ok := c.routines[key]
	return record, ok
}

// RoutineFor returns the default routine for cat, falling back to the
// general wellness routine.
func (c *Catalog) RoutineFor(cat emotion.Category) types.Routine {
	if key, ok := c.routineFor[cat]; ok {
		if record, ok := c.routines[key]; ok {
			return record
		}
	}
	return c.routines[fallbackRoutine]
}

// Routines returns all routines ordered by key.
func (c *Catalog) Routines() []types.Routine {
	keys := make([]string, 0, len(c.routines))
	for key := range c.routines {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	out := make([]types.Routine, 0, len(keys))
	for _, key := range keys {
		out = append(out, c.routines[key])
	}
	return out
}

// Music returns the music set for cat via the emotion-to-mood mapping,
// falling back to ambient.
func (c *Catalog) Music(cat emotion.Category) types.MusicSet {
	if key, ok := c.musicFor[cat]; ok {
		if set, ok := c.music[key]; ok {
			return set
		}
	}
	return c.music[fallbackMusic]
}

// MusicByCategory returns the music set for a mood category key, falling
// back to ambient.
func (c *Catalog) MusicByCategory(key string) types.MusicSet {
	if set, ok := c.music[key]; ok {
		return set
	}
	return c.music[fallbackMusic]
}

// MusicCategories returns all music mood categories in sorted order.
func (c *Catalog) MusicCategories() []string {
	keys := make([]string, 0, len(c.music))
	for key := range c.music {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
