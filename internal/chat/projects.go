package chat

import (
	"fmt"
	"strings"
)

// Project is one authored catalog entry. The catalog is the single source of
// truth for what both the deterministic generators and the remote model may
// claim about Saleh's work.
type Project struct {
	Name         string
	Context      string
	Architecture string
	Result       string
}

// projectsCatalog is read-only at runtime; entries are referenced 1..3.
var projectsCatalog = [3]Project{
	{
		Name:         "IA Training – Deep Learning Foundations",
		Context:      "Projet personnel structuré comme un parcours progressif pour maîtriser les fondements mathématiques et techniques du machine learning puis du deep learning, avec une approche orientée compréhension des mécanismes internes plutôt que simple utilisation de librairies.",
		Architecture: "1) Reprise des bases mathématiques : dérivées, gradients, règle de la chaîne, implémentation manuelle de la descente de gradient et visualisation des fonctions de coût (MSE, log-loss) avec Matplotlib. 2) Implémentation from scratch de régression linéaire et logistique en NumPy pour comprendre l'optimisation et la convergence. 3) Construction d’un réseau de neurones fully connected (MLP) en PyTorch : forward pass, fonctions d’activation (ReLU, Sigmoid), backpropagation, choix d’optimiseur (SGD, Adam), régularisation et early stopping. 4) Réseaux convolutifs (CNN) pour classification d’images : couches Conv2D, pooling, normalisation, analyse des cartes d’activation. 5) Premières expérimentations en NLP : tokenisation, embeddings, classification de texte simple, compréhension des pipelines séquentiels et de la représentation vectorielle du langage.",
		Result:       "Maîtrise opérationnelle des concepts d’optimisation, compréhension concrète de la backpropagation, capacité à construire et entraîner des architectures MLP et CNN avec PyTorch, lecture et interprétation de courbes de loss/accuracy, et compréhension des bases nécessaires pour évoluer vers des architectures plus avancées (RNN, modèles génératifs ou architectures inspirées de WaveNet).",
	},
	{
		Name:         "Extension IA – Analyse des builds échoués",
		Context:      "Module d'assistance LLM intégré pour diagnostiquer rapidement les échecs de build TeamCity.",
		Architecture: "Collecte des logs via API TeamCity → structuration du contexte → envoi au LLM → résumé technique + cause probable + classification (compilation/test/dépendance) + suggestion de correction.",
		Result:       "Diagnostic accéléré grâce à une reformulation claire des erreurs, avec une base technique généralisable à d'autres CI/CD (GitHub Actions, GitLab CI, Jenkins).",
	},
	{
		Name:         "Ourtiguet Naturel – Laboratoire intelligent d’huiles essentielles",
		Context:      "Projet de formation pour un laboratoire interne où l'IA assiste la création des recettes et le contrôle des dosages.",
		Architecture: "Frontend React + backend Django, intégration OpenAI avec RAG et base vectorielle Quadrant, CI/CD avec GitHub Runner sur serveur local, stack Docker + Redis + Nginx, sauvegardes locales chiffrées automatisées via scripts Python.",
		Result:       "Assistant métier opérationnel en environnement interne, avec automatisation, confidentialité renforcée et couverture complète du cycle dev → IA → déploiement.",
	},
}

// translatedProjects overlays hand-written English fields keyed by the
// French catalog name. Entries without an overlay fall back to French.
var translatedProjects = map[string]Project{
	"IA Training – Deep Learning Foundations": {
		Name:         "IA Training – Deep Learning Foundations",
		Context:      "Personal project built as a progressive learning path to master machine learning and deep learning foundations through internal understanding of model behavior.",
		Architecture: "From math fundamentals and gradient descent to NumPy implementations of linear/logistic regression, then PyTorch MLP/CNN models and first NLP experiments.",
		Result:       "Strong understanding of optimization, backpropagation, and practical model training workflows for production-oriented AI systems.",
	},
	"Extension IA – Analyse des builds échoués": {
		Name:         "AI Extension – Failed Build Analysis",
		Context:      "LLM-powered assistant module to diagnose TeamCity build failures faster.",
		Architecture: "Collect logs from TeamCity API, structure context, send to LLM, then produce technical summary, probable root cause, error category, and fix suggestions.",
		Result:       "Faster troubleshooting with reusable architecture for CI/CD ecosystems such as GitHub Actions, GitLab CI, and Jenkins.",
	},
	"Ourtiguet Naturel – Laboratoire intelligent d’huiles essentielles": {
		Name:         "Ourtiguet Naturel – Intelligent Essential Oils Lab",
		Context:      "Training project where AI assists recipe creation and dosage control for an internal lab environment.",
		Architecture: "React frontend, Django backend, OpenAI + RAG + vector database, local CI/CD runner, Docker stack with Redis/Nginx, and encrypted local backups.",
		Result:       "Operational internal assistant with automation, confidentiality, and full dev-to-deployment AI lifecycle coverage.",
	},
}

func translatedProject(p Project, lang string) Project {
	if lang != LangEN {
		return p
	}
	if overlay, ok := translatedProjects[p.Name]; ok {
		return overlay
	}
	return p
}

// projectsBlock serializes the catalog for the system prompt, so the model
// cannot invent facts outside of it.
func projectsBlock() string {
	var b strings.Builder
	b.WriteString("PROJETS AUTORISÉS (source unique):")
	for i, p := range projectsCatalog {
		fmt.Fprintf(&b, "\n%d) %s", i+1, p.Name)
		fmt.Fprintf(&b, "\n   - Contexte: %s", p.Context)
		fmt.Fprintf(&b, "\n   - Architecture: %s", p.Architecture)
		fmt.Fprintf(&b, "\n   - Résultat: %s", p.Result)
	}
	return b.String()
}

// Keyword families routing a message to a specific project.
var (
	mlFoundationTokens = []string{
		"ia training",
		"training",
		"régression",
		"regression",
		"linéaire",
		"lineaire",
		"logistique",
		"sigmoid",
		"classification",
		"standardscaler",
	}
	cicdTokens = []string{
		"teamcity",
		"build",
		"logs",
		"log",
		"ci",
		"cd",
		"github actions",
		"gitlab ci",
		"jenkins",
		"compilation",
		"dépendance",
		"dependance",
		"test",
	}
	labTokens = []string{
		"ourtiguet",
		"huiles essentielles",
		"laboratoire",
		"dosage",
		"recette",
		"django",
		"react",
		"quadrant",
		"vectorielle",
		"rag",
		"openai",
		"runner",
		"github runner",
		"redis",
		"nginx",
		"sauvegarde",
		"chiffr",
	}
)

// pickProject selects a catalog entry for the message. Total and
// default-safe: explicit index wins, then exact short forms, then domain
// keyword families, then project 1.
func pickProject(message string) Project {
	text := strings.ToLower(message)

	if idx := extractProjectIndex(text); idx >= 1 && idx <= 3 {
		return projectsCatalog[idx-1]
	}

	switch strings.TrimSpace(text) {
	case "1", "projet 1", "project 1":
		return projectsCatalog[0]
	case "2", "projet 2", "project 2":
		return projectsCatalog[1]
	case "3", "projet 3", "project 3":
		return projectsCatalog[2]
	}

	if containsAny(text, mlFoundationTokens) {
		return projectsCatalog[0]
	}
	if containsAny(text, cicdTokens) {
		return projectsCatalog[1]
	}
	if containsAny(text, labTokens) {
		return projectsCatalog[2]
	}

	return projectsCatalog[0]
}

// Detail levels for a project answer.
const (
	detailShort    = "short"
	detailStandard = "standard"
	detailDeep     = "deep"
)

var (
	shortLevelTokens = []string{"resumé", "résumé", "court", "bref", "rapidement"}
	deepLevelTokens  = []string{"detail", "détail", "approfond", "technique", "en profondeur"}
	recentDeepTokens = []string{"approfond", "detail", "technique", "deep learning"}
)

// projectDetailLevel decides how much to say: summary markers in the message
// win, then depth markers in the message or in the last three remembered
// user messages, else standard.
func projectDetailLevel(message string, recentUserTexts []string) string {
	text := Normalize(message)
	if containsAny(text, shortLevelTokens) {
		return detailShort
	}
	if containsAny(text, deepLevelTokens) {
		return detailDeep
	}

	recent := normalizeJoin(lastN(recentUserTexts, 3))
	if containsAny(recent, recentDeepTokens) {
		return detailDeep
	}
	return detailStandard
}

var genericProjectMarkers = []string{
	"ses projets",
	"ses projet",
	"de ses projets",
	"de ses projet",
	"tes projets",
	"tes projet",
	"vos projets",
	"vos projet",
	"les projets",
	"les projet",
	"parle moi de ses projets",
	"parle-moi de ses projets",
	"parle moi de tes projets",
	"parle-moi de tes projets",
}

var discriminantProjectTokens = []string{
	"1",
	"2",
	"3",
	"ia training",
	"teamcity",
	"ourtiguet",
	"django",
	"react",
	"rag",
	"vector",
	"quadrant",
	"build",
	"logs",
	"ci",
	"cd",
	"régression",
	"regression",
}

// isGenericProjectsRequest reports a project question with nothing to
// discriminate on ("parle moi de ses projets"), which gets the numbered menu
// instead of a specific answer.
func isGenericProjectsRequest(message string) bool {
	text := strings.TrimSpace(strings.ToLower(message))
	if !isProjectQuestion(text) {
		return false
	}
	if containsAny(text, genericProjectMarkers) {
		return true
	}
	return !containsAny(text, discriminantProjectTokens)
}
