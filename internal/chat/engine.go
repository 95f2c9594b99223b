package chat

import (
	"context"
	"log/slog"

	"github.com/saleh-td/Profile-Saleh-AI/internal/llm"
	"github.com/saleh-td/Profile-Saleh-AI/internal/session"
)

// Request is one validated chat exchange request. Message is non-empty and
// within the configured size limit; the handler enforces both before the
// engine runs, so no history is written for rejected input.
type Request struct {
	Message   string
	SessionID string
	Locale    string
}

// EngineDeps wires the engine's collaborators.
type EngineDeps struct {
	Store  *session.Store
	LLM    llm.Client
	Logger *slog.Logger
}

// Engine classifies a message and composes the reply, either from the
// deterministic generators or through the LLM delegation path.
type Engine struct {
	store  *session.Store
	llm    llm.Client
	logger *slog.Logger
}

func NewEngine(deps EngineDeps) *Engine {
	return &Engine{
		store:  deps.Store,
		llm:    deps.LLM,
		logger: deps.Logger,
	}
}

// Respond runs the full pipeline: remember the user turn, resolve language,
// detect intent, generate or delegate, remember the assistant turn.
// Deterministic intents never fail; only the delegated path returns errors.
func (e *Engine) Respond(ctx context.Context, req Request) (string, error) {
	sessionID := session.NormalizeID(req.SessionID)
	lang := ResolveLang(req.Message, req.Locale)

	e.store.Remember(sessionID, session.RoleUser, req.Message)
	recent := e.store.RecentUserTexts(sessionID)

	intent := DetectIntent(req.Message, recent)
	e.logger.Debug("intent detected",
		slog.String("intent", intent.String()),
		slog.String("lang", lang),
	)

	var text string
	switch intent {
	case IntentGreeting:
		text = greetingAnswer(lang)
	case IntentIdentity:
		text = identityAnswer(lang)
	case IntentSalehIntro:
		text = salehIntroAnswer(lang)
	case IntentParcoursScolaire:
		text = parcoursScolaireAnswer(lang)
	case IntentParcours:
		text = parcoursAnswer(lang)
	case IntentTechnicalPath:
		text = technicalPathAnswer(lang)
	case IntentGradientFocus:
		text = appendFollowUp(gradientFocusAnswer(lang), lang)
	case IntentLogisticFocus:
		text = logisticRegressionAnswer(lang)
	case IntentPositiveFeedback:
		text = positiveFeedbackAnswer(recent, lang)
	case IntentProjects, IntentProjectSelector:
		text = e.projectAnswer(req.Message, recent, lang)
	case IntentLLM:
		delegated, err := e.delegate(ctx, req.Message, lang)
		if err != nil {
			return "", err
		}
		text = delegated
	}

	e.store.Remember(sessionID, session.RoleAI, text)
	return text, nil
}

// projectAnswer serves the project flow entirely from the approved catalog:
// a numbered menu for generic requests, otherwise one picked project at the
// requested detail level.
func (e *Engine) projectAnswer(message string, recent []string, lang string) string {
	if isGenericProjectsRequest(message) {
		return appendFollowUp(projectsMenuAnswer(lang), lang)
	}
	project := pickProject(message)
	level := projectDetailLevel(message, recent)
	return appendFollowUp(projectAnswerWithLevel(project, level, lang), lang)
}

// delegate sends the message to the completion API under the bounded system
// prompt, then sanitizes the reply and applies the off-topic guardrail.
func (e *Engine) delegate(ctx context.Context, message, lang string) (string, error) {
	content, err := e.llm.Complete(ctx, buildSystemPrompt(lang), message)
	if err != nil {
		return "", err
	}

	content = llm.Sanitize(content)
	if content == "" {
		content = scopeGuardrailText(lang)
	}
	if isScopeGuardrailResponse(content, lang) {
		return content, nil
	}
	return appendFollowUp(content, lang), nil
}
