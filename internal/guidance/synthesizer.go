package guidance

import (
	"fmt"
	"math/rand"
)

// Rand is the source of randomness for template selection. *rand.Rand
// satisfies it; tests inject a fixed-seed or stub source.
type Rand interface {
	Intn(n int) int
}

// Synthesizer turns a resolved theme plus the user's own goal text into
// practical steps, a dua recommendation, related habit names, and a
// reflection/life-application pair drawn from the per-theme template tables.
type Synthesizer struct {
	rand Rand
}

func NewSynthesizer(r Rand) *Synthesizer {
	if r == nil {
		r = rand.New(rand.NewSource(rand.Int63()))
	}
	return &Synthesizer{rand: r}
}

// PracticalSteps returns the first two template entries for the theme
// followed by three goal-specific prompts that interpolate the literal goal
// text. Themes without a template table use the "guidance" table.
func (s *Synthesizer) PracticalSteps(theme Theme, goalText string) []string {
	entries := ThemeGuidanceEntries(theme)
	if len(entries) > 2 {
		entries = entries[:2]
	}

	steps := make([]string, 0, len(entries)+3)
	steps = append(steps, entries...)
	steps = append(steps,
		fmt.Sprintf("Set a realistic timeline for \"%s\" and review it every week", goalText),
		fmt.Sprintf("Make dua for success with \"%s\" after each prayer", goalText),
		fmt.Sprintf("Break \"%s\" into small daily tasks you can complete", goalText),
	)
	return steps
}

// DuaRecommendation looks up the theme's supplication, defaulting to the
// "guidance" entry.
func (s *Synthesizer) DuaRecommendation(theme Theme) string {
	if dua, ok := duaRecommendations[theme]; ok {
		return dua
	}
	return duaRecommendations[ThemeGuidance]
}

// RelatedHabits looks up the theme's habit suggestions. Themes without an
// entry deliberately fall back to the "prayer" list (see the table comment).
func (s *Synthesizer) RelatedHabits(theme Theme) []string {
	if habits, ok := relatedHabits[theme]; ok {
		return habits
	}
	return relatedHabits[Theme("prayer")]
}

// Reflection picks one of the theme's reflection sentences at random.
func (s *Synthesizer) Reflection(theme Theme) string {
	return s.pick(reflectionTemplates, theme)
}

// LifeApplication picks one of the theme's life-application sentences at
// random.
func (s *Synthesizer) LifeApplication(theme Theme) string {
	return s.pick(lifeApplicationTemplates, theme)
}

func (s *Synthesizer) pick(table map[Theme][]string, theme Theme) string {
	entries, ok := table[theme]
	if !ok || len(entries) == 0 {
		entries = table[ThemeGuidance]
	}
	if len(entries) == 0 {
		return ""
	}
	return entries[s.rand.Intn(len(entries))]
}
