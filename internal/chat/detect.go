package chat

// Secondary keyword families used for score boosts.
var (
	deepLearningTokens  = []string{"gradient", "pytorch", "wavenet", "cnn", "mlp", "deep learning"}
	logisticBoostTokens = []string{"sigmoid", "sigmoide", "sigmoïde", "logistique", "logistic", "admis", "nll"}
	gradientBoostTokens = []string{"gradient", "gradiant", "descente"}
	elaborationTokens   = []string{"approfond", "detail", "plus", "encore", "explique"}
	recentProjectTokens = []string{"projet", "project"}
)

// DetectIntent scores every intent against the message and picks the best
// one. Additive weighted voting lets specific intents outrank generic ones
// when several markers co-occur, and recent session context disambiguates
// short follow-ups like "2" or "oui". Ties break on declaration order of the
// Intent enumeration, first maximum wins. All scores at zero means no rule
// fired and the message goes to the LLM path.
func DetectIntent(message string, recentUserTexts []string) Intent {
	text := Normalize(message)
	var scores [intentCount]int

	// Primary classifier hits. Weights are calibrated so rarer, more
	// specific intents outrank generic ones.
	if isGreeting(text) {
		scores[IntentGreeting] += 10
	}
	if isIdentityQuestion(text) {
		scores[IntentIdentity] += 10
	}
	if isSalehIntroQuestion(text) {
		scores[IntentSalehIntro] += 10
	}
	if isParcoursScolaireQuestion(text) {
		scores[IntentParcoursScolaire] += 10
	}
	if isParcoursQuestion(text) {
		scores[IntentParcours] += 8
	}
	if isTechnicalPathQuestion(text) {
		scores[IntentTechnicalPath] += 10
	}
	if isGradientFocusQuestion(text) {
		scores[IntentGradientFocus] += 12
	}
	if isLogisticRegressionQuestion(text) {
		scores[IntentLogisticFocus] += 13
	}
	if isPositiveFeedback(text) {
		scores[IntentPositiveFeedback] += 9
	}
	if isProjectQuestion(text) {
		scores[IntentProjects] += 7
	}
	if isProjectSelector(text) {
		scores[IntentProjectSelector] += 10
	}

	if idx := extractProjectIndex(text); idx >= 1 && idx <= 3 {
		scores[IntentProjectSelector] += 6
	}

	// Secondary keyword boosts.
	if containsAny(text, deepLearningTokens) {
		scores[IntentProjects] += 4
	}
	if containsAny(text, logisticBoostTokens) {
		scores[IntentLogisticFocus] += 4
	}
	if containsAny(text, gradientBoostTokens) {
		scores[IntentGradientFocus] += 3
	}

	// Contextual boosts from the last two remembered user messages.
	recent := normalizeJoin(lastN(recentUserTexts, 2))
	if recent != "" && containsAny(recent, recentProjectTokens) {
		if idx := extractProjectIndex(text); idx >= 1 && idx <= 3 {
			scores[IntentProjectSelector] += 8
		}
		if containsAny(text, elaborationTokens) {
			scores[IntentProjects] += 4
		}
	}

	best := IntentGreeting
	for i := 1; i < intentCount; i++ {
		if scores[i] > scores[best] {
			best = Intent(i)
		}
	}
	if scores[best] == 0 {
		return IntentLLM
	}
	return best
}
