package guidance

import "strings"

// ExtractKeywords normalizes free text into lowercase tokens for matching:
// split on whitespace, strip non-word runes, drop anything of length <= 2.
// Always returns a (possibly empty) slice.
func ExtractKeywords(text string) []string {
	fields := strings.Fields(strings.ToLower(text))
	keywords := make([]string, 0, len(fields))
	for _, field := range fields {
		word := strings.Map(func(r rune) rune {
			if r >= 'a' && r <= 'z' || r >= '0' && r <= '9' {
				return r
			}
			return -1
		}, field)
		if len(word) > 2 {
			keywords = append(keywords, word)
		}
	}
	return keywords
}
