package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/solacekit/solace/internal/emotion"
	"github.com/solacekit/solace/internal/types"
)

// overlayFile is the YAML shape of an external catalog overlay. Every
// section is optional; present entries replace the embedded default for
// that key only. Removal is not expressible, so an overlay can never break
// table totality by itself.
type overlayFile struct {
	Version              int                            `yaml:"version"`
	Affirmations         map[string][]string            `yaml:"affirmations"`
	Suggestions          map[string]overlaySuggestion   `yaml:"suggestions"`
	Interventions        map[string]overlayIntervention `yaml:"interventions"`
	InterventionDefaults map[string]string              `yaml:"intervention_defaults"`
	Routines             map[string]overlayRoutine      `yaml:"routines"`
	RoutineDefaults      map[string]string              `yaml:"routine_defaults"`
	Music                map[string]overlayMusic        `yaml:"music"`
	MusicDefaults        map[string]string              `yaml:"music_defaults"`
}

type overlaySuggestion struct {
	Messages     []string `yaml:"messages"`
	Actions      []string `yaml:"actions"`
	Tools        []string `yaml:"tools"`
	Intervention string   `yaml:"intervention"`
}

type overlayIntervention struct {
	Name        string   `yaml:"name"`
	Description string   `yaml:"description"`
	Duration    int      `yaml:"duration"`
	Steps       []string `yaml:"steps"`
	Icon        string   `yaml:"icon"`
	Category    string   `yaml:"category"`
	TargetRoute string   `yaml:"target_route"`
}

type overlayRoutine struct {
	Name        string   `yaml:"name"`
	Description string   `yaml:"description"`
	Duration    string   `yaml:"duration"`
	Steps       []string `yaml:"steps"`
	Icon        string   `yaml:"icon"`
	BestFor     []string `yaml:"best_for"`
}

type overlayMusic struct {
	Description string `yaml:"description"`
	Suggestions []struct {
		Title       string `yaml:"title"`
		Artist      string `yaml:"artist"`
		Type        string `yaml:"type"`
		Description string `yaml:"description"`
	} `yaml:"suggestions"`
}

func (c *Catalog) applyOverlayFile(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read catalog overlay: %w", err)
	}
	var file overlayFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return fmt.Errorf("failed to parse catalog overlay: %w", err)
	}

	for name, pool := range file.Affirmations {
		cat, err := overlayCategory(name)
		if err != nil {
			return fmt.Errorf("affirmations overlay: %w", err)
		}
		if len(pool) == 0 {
			return fmt.Errorf("affirmations overlay for %q is empty", name)
		}
		c.affirmations[cat] = pool
	}

	for name, entry := range file.Suggestions {
		cat, err := overlayCategory(name)
		if err != nil {
			return fmt.Errorf("suggestions overlay: %w", err)
		}
		if len(entry.Messages) == 0 {
			return fmt.Errorf("suggestions overlay for %q has no messages", name)
		}
		c.suggestions[cat] = types.SuggestionSet{
			Messages:     entry.Messages,
			Actions:      entry.Actions,
			Tools:        entry.Tools,
			Intervention: entry.Intervention,
		}
	}

	for key, entry := range file.Interventions {
		c.interventions[key] = types.Intervention{
			Key:             key,
			Name:            entry.Name,
			Description:     entry.Description,
			DurationSeconds: entry.Duration,
			Steps:           entry.Steps,
			Icon:            entry.Icon,
			Category:        entry.Category,
			TargetRoute:     entry.TargetRoute,
		}
	}
	for name, key := range file.InterventionDefaults {
		cat, err := overlayCategory(name)
		if err != nil {
			return fmt.Errorf("intervention defaults overlay: %w", err)
		}
		c.interventionFor[cat] = key
	}

	for key, entry := range file.Routines {
		c.routines[key] = types.Routine{
			Key:         key,
			Name:        entry.Name,
			Description: entry.Description,
			Duration:    entry.Duration,
			Steps:       entry.Steps,
			Icon:        entry.Icon,
			BestFor:     entry.BestFor,
		}
	}
	for name, key := range file.RoutineDefaults {
		cat, err := overlayCategory(name)
		if err != nil {
			return fmt.Errorf("routine defaults overlay: %w", err)
		}
		c.routineFor[cat] = key
	}

	for key, entry := range file.Music {
		set := types.MusicSet{Category: key, Description: entry.Description}
		for _, track := range entry.Suggestions {
			set.Suggestions = append(set.Suggestions, types.MusicTrack{
				Title:       track.Title,
				Artist:      track.Artist,
				Type:        track.Type,
				Description: track.Description,
			})
		}
		c.music[key] = set
	}
	for name, key := range file.MusicDefaults {
		cat, err := overlayCategory(name)
		if err != nil {
			return fmt.Errorf("music defaults overlay: %w", err)
		}
		c.musicFor[cat] = key
	}

	return nil
}

func overlayCategory(name string) (emotion.Category, error) {
	cat := emotion.Normalize(name)
	if string(cat) != name {
		return "", fmt.Errorf("unknown category %q", name)
	}
	return cat, nil
}
