package guidance

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedRand always picks the first template, for tests that need one
// deterministic choice rather than seed-reproducibility.
type fixedRand struct{}

func (fixedRand) Intn(n int) int { return 0 }

func TestPracticalStepsShape(t *testing.T) {
	synth := NewSynthesizer(fixedRand{})

	steps := synth.PracticalSteps("patience", "learn Arabic")
	require.Len(t, steps, 5)

	// First two come from the theme's template table.
	assert.Equal(t, practicalGuidance["patience"][0], steps[0])
	assert.Equal(t, practicalGuidance["patience"][1], steps[1])

	// Last three interpolate the literal goal text.
	for _, step := range steps[2:] {
		assert.Contains(t, step, "learn Arabic")
	}
}

func TestPracticalStepsUnknownThemeUsesGuidanceTable(t *testing.T) {
	synth := NewSynthesizer(fixedRand{})

	steps := synth.PracticalSteps("justice", "treat people fairly")
	require.Len(t, steps, 5)
	assert.Equal(t, practicalGuidance[ThemeGuidance][0], steps[0])
	assert.Equal(t, practicalGuidance[ThemeGuidance][1], steps[1])
}

func TestDuaRecommendationFallsBackToGuidance(t *testing.T) {
	synth := NewSynthesizer(fixedRand{})

	assert.Equal(t, duaRecommendations["patience"], synth.DuaRecommendation("patience"))
	assert.Equal(t, duaRecommendations[ThemeGuidance], synth.DuaRecommendation("honesty"))
}

func TestRelatedHabitsFallsBackToPrayer(t *testing.T) {
	synth := NewSynthesizer(fixedRand{})

	assert.Equal(t, relatedHabits["family"], synth.RelatedHabits("family"))
	// Themes without a habit list use the prayer list, not guidance.
	assert.Equal(t, relatedHabits["prayer"], synth.RelatedHabits("wealth"))
}

func TestNonRandomFieldsAreDeterministic(t *testing.T) {
	a := NewSynthesizer(rand.New(rand.NewSource(1)))
	b := NewSynthesizer(rand.New(rand.NewSource(99)))

	assert.Equal(t, a.PracticalSteps("success", "memorize Juz Amma"), b.PracticalSteps("success", "memorize Juz Amma"))
	assert.Equal(t, a.DuaRecommendation("success"), b.DuaRecommendation("success"))
	assert.Equal(t, a.RelatedHabits("success"), b.RelatedHabits("success"))
}

func TestReflectionDrawsFromThemeTemplates(t *testing.T) {
	synth := NewSynthesizer(rand.New(rand.NewSource(7)))

	for i := 0; i < 20; i++ {
		reflection := synth.Reflection("prayer")
		assert.Contains(t, reflectionTemplates["prayer"], reflection)
	}
}

func TestLifeApplicationUnknownThemeUsesGuidance(t *testing.T) {
	synth := NewSynthesizer(fixedRand{})

	sentence := synth.LifeApplication("business")
	assert.Contains(t, lifeApplicationTemplates[ThemeGuidance], sentence)
	assert.True(t, strings.TrimSpace(sentence) != "")
}
