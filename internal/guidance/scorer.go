package guidance

import "strings"

// maxRelevance caps the word-overlap score. The formula never awards a
// perfect 1.0; the ceiling signals "strong match" without implying the verse
// was written for the goal.
const maxRelevance = 0.95

// RelevanceScore computes a [0, 0.95] overlap score between a goal's text
// and a candidate verse. A goal keyword counts as matched when it contains,
// or is contained in, any keyword of the verse's translation and reflection.
func RelevanceScore(goalText string, verse Verse) float64 {
	goalWords := ExtractKeywords(goalText)
	verseWords := ExtractKeywords(verse.TextEn + " " + verse.Reflection)

	matches := 0
	for _, goalWord := range goalWords {
		for _, verseWord := range verseWords {
			if strings.Contains(verseWord, goalWord) || strings.Contains(goalWord, verseWord) {
				matches++
				break
			}
		}
	}

	denominator := len(goalWords)
	if denominator < 1 {
		denominator = 1
	}
	score := float64(matches) / float64(denominator)
	if score > maxRelevance {
		return maxRelevance
	}
	return score
}
