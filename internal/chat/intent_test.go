package chat

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsGreeting(t *testing.T) {
	for _, msg := range []string{"salut", "hello", "Bonjour", "salut !", "salut assistant", "hey toi la"} {
		assert.True(t, isGreeting(msg), msg)
	}
	for _, msg := range []string{"", "salut parle moi de son parcours stp", "merci"} {
		assert.False(t, isGreeting(msg), msg)
	}
}

func TestIsIdentityQuestion(t *testing.T) {
	assert.True(t, isIdentityQuestion("Who are you ?"))
	assert.True(t, isIdentityQuestion("qui êtes vous"))
	assert.False(t, isIdentityQuestion("who is saleh"))
}

func TestIsSalehIntroQuestion(t *testing.T) {
	assert.True(t, isSalehIntroQuestion("Parle moi de Saleh Minawi"))
	assert.True(t, isSalehIntroQuestion("qui est saleh"))
	assert.False(t, isSalehIntroQuestion("parle moi de ses projets"))
}

func TestParcoursVsParcoursScolaire(t *testing.T) {
	// "scolaire" excludes the general intent, and vice versa.
	assert.True(t, isParcoursQuestion("quel est son parcours"))
	assert.False(t, isParcoursQuestion("son parcours scolaire"))

	assert.True(t, isParcoursScolaireQuestion("son parcours scolaire"))
	assert.True(t, isParcoursScolaireQuestion("ses études"))
	assert.False(t, isParcoursScolaireQuestion("quel est son parcours"))
}

func TestIsTechnicalPathQuestion(t *testing.T) {
	assert.True(t, isTechnicalPathQuestion("parcours technique"))
	assert.True(t, isTechnicalPathQuestion("raconte son parcour tech"))
	assert.False(t, isTechnicalPathQuestion("son parcours"))
	assert.False(t, isTechnicalPathQuestion("la technique"))
}

func TestIsGradientFocusQuestion(t *testing.T) {
	assert.True(t, isGradientFocusQuestion("explique la descente de gradient"))
	assert.True(t, isGradientFocusQuestion("c'est quoi un gradiant"))
	assert.True(t, isGradientFocusQuestion("oui explique le gradient"))
	assert.False(t, isGradientFocusQuestion("parle moi de pytorch"))
}

func TestIsLogisticRegressionQuestion(t *testing.T) {
	assert.True(t, isLogisticRegressionQuestion("la régression logistique"))
	assert.True(t, isLogisticRegressionQuestion("sigmoid activation"))
	assert.False(t, isLogisticRegressionQuestion("parle moi de ses projets"))
}

func TestIsPositiveFeedback(t *testing.T) {
	assert.True(t, isPositiveFeedback("merci c'est super"))
	assert.True(t, isPositiveFeedback("très intéressant !"))
	// Long messages never count as acknowledgements.
	assert.False(t, isPositiveFeedback("merci mais je voudrais maintenant des informations beaucoup plus détaillées sur tout"))
	assert.False(t, isPositiveFeedback("bof"))
}

func TestIsProjectQuestion(t *testing.T) {
	assert.True(t, isProjectQuestion("Parle moi de ses PROJETS"))
	assert.True(t, isProjectQuestion("ses réalisations?"))
	assert.False(t, isProjectQuestion("son parcours"))
}

func TestIsProjectSelector(t *testing.T) {
	for _, msg := range []string{"2", "projet 3", "project 1", "le premier", "parle de la 1", "celui 2"} {
		assert.True(t, isProjectSelector(msg), msg)
	}
	assert.False(t, isProjectSelector("parle moi de ses projets"))
}

func TestExtractProjectIndex(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"le premier", 1},
		{"le deuxième", 2},
		{"troisieme projet", 3},
		{"projet 2", 2},
		{"project 3", 3},
		{"parle de la 1", 1},
		{"2", 2},
		// Standalone digits only count on very short messages.
		{"il a fait 3 projets je crois vraiment", 0},
		{"aucun numéro ici", 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, extractProjectIndex(tt.in), tt.in)
	}
}
