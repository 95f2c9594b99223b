package llm

import (
	"regexp"
	"strings"
)

// The frontend renders replies as plain text, so markdown markers coming back
// from the model must be stripped while keeping the inner text. Sanitize is
// an ordered pipeline of stateless transforms; order matters (fences before
// emphasis, emphasis bold before italic).
var sanitizePipeline = []func(string) string{
	stripCodeFences,
	stripHeadings,
	normalizeBullets,
	stripEmphasis,
	collapseBlankLines,
}

// Sanitize removes markdown artifacts from model output. Pure and total;
// empty input yields empty output.
func Sanitize(text string) string {
	cleaned := strings.TrimSpace(text)
	if cleaned == "" {
		return cleaned
	}
	for _, transform := range sanitizePipeline {
		cleaned = transform(cleaned)
	}
	return strings.TrimSpace(cleaned)
}

var fenceOpen = regexp.MustCompile("```[a-zA-Z0-9_-]*\n?")

func stripCodeFences(text string) string {
	text = fenceOpen.ReplaceAllString(text, "")
	return strings.ReplaceAll(text, "```", "")
}

var headingMarker = regexp.MustCompile(`(?m)^\s{0,3}#{1,6}\s+`)

func stripHeadings(text string) string {
	return headingMarker.ReplaceAllString(text, "")
}

var (
	starBullet = regexp.MustCompile(`(?m)^\s*\*\s+`)
	plusBullet = regexp.MustCompile(`(?m)^\s*\+\s+`)
)

func normalizeBullets(text string) string {
	text = starBullet.ReplaceAllString(text, "- ")
	return plusBullet.ReplaceAllString(text, "- ")
}

var (
	boldStars       = regexp.MustCompile(`\*\*(.+?)\*\*`)
	boldUnderscores = regexp.MustCompile(`__(.+?)__`)
	italicStar      = regexp.MustCompile(`\*(.+?)\*`)
	italicUnder     = regexp.MustCompile(`_(.+?)_`)
)

func stripEmphasis(text string) string {
	text = boldStars.ReplaceAllString(text, "$1")
	text = boldUnderscores.ReplaceAllString(text, "$1")
	text = italicStar.ReplaceAllString(text, "$1")
	return italicUnder.ReplaceAllString(text, "$1")
}

var excessNewlines = regexp.MustCompile(`\n{3,}`)

func collapseBlankLines(text string) string {
	return excessNewlines.ReplaceAllString(text, "\n\n")
}
