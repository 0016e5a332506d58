package guidance

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRelevanceScoreRange(t *testing.T) {
	verse := Verse{
		TextEn:     "And seek help through patience and prayer",
		Reflection: "Prayer is a refuge for the patient heart.",
	}
	goals := []string{
		"", "be more patient", "patience and prayer", "learn woodworking",
		"patience prayer patient help seek refuge heart",
	}
	for _, goal := range goals {
		score := RelevanceScore(goal, verse)
		assert.GreaterOrEqual(t, score, 0.0, "goal %q", goal)
		assert.LessOrEqual(t, score, 0.95, "goal %q", goal)
	}
}

func TestRelevanceScoreCapAt95(t *testing.T) {
	verse := Verse{TextEn: "patience and prayer bring peace"}
	// Every goal keyword overlaps a verse keyword, so the raw ratio is 1.0
	// and the cap must clamp it.
	score := RelevanceScore("patience prayer peace", verse)
	assert.Equal(t, 0.95, score)
}

func TestRelevanceScoreNoOverlap(t *testing.T) {
	verse := Verse{TextEn: "guidance for the believers"}
	assert.Equal(t, 0.0, RelevanceScore("quarterly tax filing", verse))
}

func TestRelevanceScoreEmptyGoal(t *testing.T) {
	verse := Verse{TextEn: "guidance for the believers"}
	assert.Equal(t, 0.0, RelevanceScore("", verse))
}

func TestRelevanceScoreSubstringBothWays(t *testing.T) {
	verse := Verse{TextEn: "the steadfast are rewarded"}
	// "rewarded" contains "reward": counted. "woodwork" finds no partner.
	score := RelevanceScore("reward woodwork", verse)
	assert.InDelta(t, 0.5, score, 1e-9)
}
