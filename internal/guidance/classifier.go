package guidance

import "strings"

// ClassifyTheme resolves a keyword list to exactly one theme.
//
// Each keyword awards +1 to every theme listing it as a synonym and +0.5 to
// every theme whose practical-guidance templates contain it as a
// case-insensitive substring. Themes are scored and tie-broken in themeOrder;
// a total of zero resolves to the default theme "guidance".
func ClassifyTheme(keywords []string) Theme {
	best := ThemeGuidance
	bestScore := 0.0

	for _, theme := range themeOrder {
		score := 0.0
		for _, keyword := range keywords {
			for _, synonym := range themeSynonyms[theme] {
				if keyword == synonym {
					score++
					break
				}
			}
			for _, template := range practicalGuidance[theme] {
				if strings.Contains(strings.ToLower(template), keyword) {
					score += 0.5
					break
				}
			}
		}
		if score > bestScore {
			best = theme
			bestScore = score
		}
	}

	return best
}

// ClassifyText is a convenience wrapper combining extraction and
// classification for callers holding raw goal text.
func ClassifyText(text string) Theme {
	return ClassifyTheme(ExtractKeywords(text))
}
