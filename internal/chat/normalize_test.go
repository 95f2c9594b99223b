package chat

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"lowercases", "BONJOUR", "bonjour"},
		{"keeps accents", "Études supérieures", "études supérieures"},
		{"typographic apostrophe", "c’est quoi", "c'est quoi"},
		{"strips punctuation", "salut !", "salut"},
		{"collapses whitespace", "parle   moi \t de  saleh", "parle moi de saleh"},
		{"strips symbols", "projet #2 (le top)", "projet 2 le top"},
		{"empty", "", ""},
		{"only punctuation", "?!...", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.in))
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	once := Normalize("Salut, c’est MOI !")
	assert.Equal(t, once, Normalize(once))
}
