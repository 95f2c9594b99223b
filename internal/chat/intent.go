package chat

import (
	"regexp"
	"strings"
)

// Intent is the classified purpose of a user message. The enumeration is
// closed; IntentLLM is the fallback when no rule fires.
type Intent int

const (
	IntentGreeting Intent = iota
	IntentIdentity
	IntentSalehIntro
	IntentParcoursScolaire
	IntentParcours
	IntentTechnicalPath
	IntentGradientFocus
	IntentLogisticFocus
	IntentPositiveFeedback
	IntentProjects
	IntentProjectSelector
	IntentLLM

	intentCount = int(IntentLLM) + 1
)

func (i Intent) String() string {
	switch i {
	case IntentGreeting:
		return "greeting"
	case IntentIdentity:
		return "identity"
	case IntentSalehIntro:
		return "saleh_intro"
	case IntentParcoursScolaire:
		return "parcours_scolaire"
	case IntentParcours:
		return "parcours"
	case IntentTechnicalPath:
		return "technical_path"
	case IntentGradientFocus:
		return "gradient_focus"
	case IntentLogisticFocus:
		return "logistic_focus"
	case IntentPositiveFeedback:
		return "positive_feedback"
	case IntentProjects:
		return "projects"
	case IntentProjectSelector:
		return "project_selector"
	case IntentLLM:
		return "llm"
	}
	return "unknown"
}

// Classifier predicates below all take the normalized message (Normalize is
// idempotent, so already-normalized input is fine). Token sets stay as data
// so each rule can be audited and tested on its own.

var greetingWords = map[string]bool{
	"salut":   true,
	"bonjour": true,
	"bonsoir": true,
	"coucou":  true,
	"yo":      true,
	"hey":     true,
	"hello":   true,
	"hi":      true,
	"slt":     true,
}

func isGreeting(text string) bool {
	text = Normalize(text)
	if text == "" {
		return false
	}

	parts := strings.Fields(text)
	if len(parts) == 0 {
		return false
	}
	if len(parts) == 1 && greetingWords[parts[0]] {
		return true
	}
	// Forms like "salut assistant" or "hello how are".
	return greetingWords[parts[0]] && len(parts) <= 3
}

var identityPhrases = map[string]bool{
	"who are you":   true,
	"who r you":     true,
	"who are u":     true,
	"what are you":  true,
	"qui es tu":     true,
	"qui etes vous": true,
	"qui êtes vous": true,
	"tu es qui":     true,
}

func isIdentityQuestion(text string) bool {
	return identityPhrases[Normalize(text)]
}

var salehIntroPhrases = map[string]bool{
	"parle moi de saleh minawi":        true,
	"parle moi un peu de saleh minawi": true,
	"parle moi de saleh":               true,
	"parle moi un peu de saleh":        true,
	"qui est saleh minawi":             true,
	"qui est saleh":                    true,
	"presente moi saleh minawi":        true,
	"présente moi saleh minawi":        true,
}

func isSalehIntroQuestion(text string) bool {
	return salehIntroPhrases[Normalize(text)]
}

var parcoursPhrases = map[string]bool{
	"parle moi de son parcours":        true,
	"parle moi un peu de son parcours": true,
	"quel est son parcours":            true,
	"c'est quoi son parcours":          true,
	"c est quoi son parcours":          true,
	"son parcours":                     true,
}

func isParcoursQuestion(text string) bool {
	text = Normalize(text)
	if parcoursPhrases[text] {
		return true
	}
	// Mutually exclusive with the academic-path intent.
	return strings.Contains(text, "parcours") && !strings.Contains(text, "scolaire")
}

var parcoursScolairePhrases = map[string]bool{
	"son parcours scolaire":              true,
	"parcours scolaire":                  true,
	"parle moi de son parcours scolaire": true,
	"quel est son parcours scolaire":     true,
	"etudes de saleh":                    true,
	"études de saleh":                    true,
}

func isParcoursScolaireQuestion(text string) bool {
	text = Normalize(text)
	if parcoursScolairePhrases[text] {
		return true
	}
	if strings.Contains(text, "parcours") && strings.Contains(text, "scolaire") {
		return true
	}
	return strings.Contains(text, "etudes") || strings.Contains(text, "études")
}

var (
	parcoursStem       = regexp.MustCompile(`\bparcour\w*\b`)
	techMarkers        = []string{"tech", "technique", "techniq", "technical"}
	technicalPathForms = map[string]bool{
		"sur son parcour technique":  true,
		"sur son parcours technique": true,
		"parcours technique":         true,
		"parcour technique":          true,
		"technical background":       true,
		"technical path":             true,
	}
)

func isTechnicalPathQuestion(text string) bool {
	text = Normalize(text)
	if technicalPathForms[text] {
		return true
	}
	return parcoursStem.MatchString(text) && containsAny(text, techMarkers)
}

var (
	gradientMarkers = []string{
		"descente de gradient",
		"gradient descent",
		"gradiant",
		"gradient",
		"optimisation",
	}
	gradientFollowUp = regexp.MustCompile(`\boui\b.*\b(parle|explique|detail|détail|zoom)\b`)
)

func isGradientFocusQuestion(text string) bool {
	text = Normalize(text)
	if containsAny(text, gradientMarkers) {
		return true
	}
	// Affirmative follow-ups after the assistant offered a gradient deep-dive.
	return gradientFollowUp.MatchString(text) && strings.Contains(text, "gradient")
}

var logisticMarkers = []string{
	"regression logistique",
	"régression logistique",
	"logistic regression",
	"neurone artificiel",
	"artificial neuron",
	"sigmoid",
	"sigmoide",
	"sigmoïde",
	"admis",
	"w0",
	"w1",
	"w2",
	"log vraisemblance",
}

func isLogisticRegressionQuestion(text string) bool {
	return containsAny(Normalize(text), logisticMarkers)
}

var feedbackMarkers = []string{
	"interessant",
	"intéressant",
	"interess",
	"intéress",
	"super",
	"top",
	"merci",
	"genial",
	"génial",
	"cool",
	"parfait",
	"j aime",
	"j'aime",
	"tres bien",
	"très bien",
	"tout ca",
	"tout ça",
	"c est interessant",
	"c'est intéressant",
}

func isPositiveFeedback(text string) bool {
	text = Normalize(text)
	if text == "" {
		return false
	}
	// Only short acknowledgement messages qualify.
	return len(strings.Fields(text)) <= 8 && containsAny(text, feedbackMarkers)
}

var projectQuestionMarkers = []string{"projet", "project", "réalisation", "realisation"}

// isProjectQuestion matches on the lower-cased input as given, without
// stripping punctuation. Intentionally loose.
func isProjectQuestion(text string) bool {
	return containsAny(strings.ToLower(text), projectQuestionMarkers)
}

var (
	selectorShortForms = map[string]bool{
		"1": true, "2": true, "3": true,
		"projet 1": true, "projet 2": true, "projet 3": true,
		"project 1": true, "project 2": true, "project 3": true,
	}
	ordinalWords    = []string{"premier", "deuxieme", "deuxième", "troisieme", "troisième"}
	explicitProject = regexp.MustCompile(`\b(?:projet|project)\s*([123])\b`)
	naturalProject  = regexp.MustCompile(`\b(?:la|le|du|de|d|celui)\s*([123])\b`)
	standaloneDigit = regexp.MustCompile(`\b([123])\b`)
)

func isProjectSelector(text string) bool {
	raw := strings.ToLower(strings.TrimSpace(text))
	if selectorShortForms[raw] {
		return true
	}

	normalized := Normalize(raw)
	if containsAny(normalized, ordinalWords) {
		return true
	}
	if explicitProject.MatchString(normalized) {
		return true
	}
	// Natural references like "parle de la 1".
	return naturalProject.MatchString(normalized)
}

// extractProjectIndex pulls a 1..3 project reference out of the message,
// or 0 when none is present. A standalone digit only counts on very short
// messages, so "il a fait 3 projets" does not select project 3.
func extractProjectIndex(text string) int {
	text = Normalize(text)

	if strings.Contains(text, "premier") {
		return 1
	}
	if strings.Contains(text, "deuxieme") || strings.Contains(text, "deuxième") {
		return 2
	}
	if strings.Contains(text, "troisieme") || strings.Contains(text, "troisième") {
		return 3
	}

	if m := explicitProject.FindStringSubmatch(text); m != nil {
		return int(m[1][0] - '0')
	}
	if m := naturalProject.FindStringSubmatch(text); m != nil {
		return int(m[1][0] - '0')
	}
	if m := standaloneDigit.FindStringSubmatch(text); m != nil && len(strings.Fields(text)) <= 4 {
		return int(m[1][0] - '0')
	}
	return 0
}
