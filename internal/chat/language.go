package chat

import "strings"

// Reply languages.
const (
	LangFR = "fr"
	LangEN = "en"
)

var englishMarkers = []string{
	"hello",
	"hi",
	"hey",
	"who are you",
	"who r you",
	"what do you do",
	"tell me",
	"about",
	"projects",
	"project",
	"career",
	"background",
	"education",
	"can you",
	"please",
}

var frenchMarkers = []string{
	"bonjour",
	"salut",
	"parle",
	"projet",
	"parcours",
	"études",
	"realisations",
	"réalisations",
	"scolaire",
}

// ResolveLang picks the reply language. The message content is the stronger
// signal and overrides the UI locale hint; markers are counted on the raw
// lower-cased message, not the stripped normalized form. Default is French.
func ResolveLang(message, localeHint string) string {
	hint := strings.ToLower(strings.TrimSpace(localeHint))
	text := strings.ToLower(strings.TrimSpace(message))

	var enScore, frScore int
	for _, token := range englishMarkers {
		if strings.Contains(text, token) {
			enScore++
		}
	}
	for _, token := range frenchMarkers {
		if strings.Contains(text, token) {
			frScore++
		}
	}

	if enScore > frScore && enScore > 0 {
		return LangEN
	}
	if frScore > enScore && frScore > 0 {
		return LangFR
	}

	if strings.HasPrefix(hint, "en") {
		return LangEN
	}
	if strings.HasPrefix(hint, "fr") {
		return LangFR
	}
	return LangFR
}
