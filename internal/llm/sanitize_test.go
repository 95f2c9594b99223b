package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeMarkdownRoundTrip(t *testing.T) {
	in := "**Hello** world\n```py\ncode\n```"
	got := Sanitize(in)

	assert.Equal(t, "Hello world\ncode", got)
}

func TestSanitizeTransforms(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"whitespace only", "  \n ", ""},
		{"plain text untouched", "Bonjour.\nVoici une réponse.", "Bonjour.\nVoici une réponse."},
		{"headings stripped", "## Titre\ntexte", "Titre\ntexte"},
		{"star bullets normalized", "* premier\n+ second", "- premier\n- second"},
		{"dash bullets kept", "- premier\n- second", "- premier\n- second"},
		{"bold stripped", "c'est **important** ici", "c'est important ici"},
		{"italic stripped", "un *mot* et _un autre_", "un mot et un autre"},
		{"double underscore stripped", "__titre__ ok", "titre ok"},
		{"fence with language tag", "```go\nfmt.Println()\n```\nfin", "fmt.Println()\nfin"},
		{"blank lines collapsed", "a\n\n\n\n\nb", "a\n\nb"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Sanitize(tt.in))
		})
	}
}

func TestSanitizeLeavesNoMarkdownMarkers(t *testing.T) {
	got := Sanitize("# Titre\n**gras** et *italique*\n```\nbloc\n```\n* liste")

	assert.NotContains(t, got, "#")
	assert.NotContains(t, got, "*")
	assert.NotContains(t, got, "`")
}
