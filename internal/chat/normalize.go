package chat

import (
	"regexp"
	"strings"
)

var (
	nonWordChars = regexp.MustCompile(`[^a-z0-9àâçéèêëîïôûùüÿñæœ\s']`)
	spaceRuns    = regexp.MustCompile(`\s+`)
)

// Normalize prepares a message for keyword and phrase matching: lowercase,
// typographic apostrophe mapped to ASCII, anything outside letters, digits,
// the accented latin set, whitespace and apostrophes replaced by a space,
// whitespace collapsed. Pure and total; idempotent.
func Normalize(message string) string {
	text := strings.ToLower(strings.TrimSpace(message))
	text = strings.ReplaceAll(text, "’", "'")
	text = nonWordChars.ReplaceAllString(text, " ")
	text = spaceRuns.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

// normalizeJoin normalizes each text and joins with single spaces. Used to
// build a searchable blob out of recent session history.
func normalizeJoin(texts []string) string {
	parts := make([]string, 0, len(texts))
	for _, t := range texts {
		parts = append(parts, Normalize(t))
	}
	return strings.Join(parts, " ")
}

// lastN returns the trailing n elements of texts.
func lastN(texts []string, n int) []string {
	if len(texts) <= n {
		return texts
	}
	return texts[len(texts)-n:]
}

func containsAny(text string, tokens []string) bool {
	for _, token := range tokens {
		if strings.Contains(text, token) {
			return true
		}
	}
	return false
}
