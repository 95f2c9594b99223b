package chat

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveLangContentOverridesLocale(t *testing.T) {
	assert.Equal(t, LangEN, ResolveLang("Hello, tell me about projects", "fr"))
	assert.Equal(t, LangFR, ResolveLang("Bonjour, parle-moi de son parcours", "en"))
}

func TestResolveLangFallsBackToLocaleHint(t *testing.T) {
	assert.Equal(t, LangEN, ResolveLang("xyz", "en-US"))
	assert.Equal(t, LangFR, ResolveLang("xyz", "fr-FR"))
}

func TestResolveLangDefaultsToFrench(t *testing.T) {
	assert.Equal(t, LangFR, ResolveLang("xyz", ""))
	assert.Equal(t, LangFR, ResolveLang("", "de"))
}

func TestResolveLangTieKeepsHint(t *testing.T) {
	// One marker on each side ("parcours" vs "background"): equal scores
	// defer to the hint.
	assert.Equal(t, LangEN, ResolveLang("parcours background", "en"))
	assert.Equal(t, LangFR, ResolveLang("parcours background", "fr"))
}
