package chat

import (
	"fmt"
	"strings"
)

// Deterministic answer generators. Every reply here comes from authored
// text, never from the remote model. Replies stay plain text: "- " bullets,
// no markup.

func greetingAnswer(lang string) string {
	if lang == LangEN {
		return "Hello, I am the AI assistant for Saleh Minawi's portfolio.\n" +
			"I can present his background, his deep learning projects, his AI architecture approach, or his work on CI/CD log analysis systems."
	}
	return "Bonjour, je suis l’assistant IA du portfolio de Saleh Minawi.\n" +
		"Je peux vous présenter son parcours, ses projets en deep learning, son approche architecture IA ou ses travaux autour des systèmes d’analyse de logs CI/CD."
}

func identityAnswer(lang string) string {
	if lang == LangEN {
		return "I am the AI assistant for Saleh Minawi's portfolio.\n" +
			"I can explain his background, his AI projects, and his approach to building production-ready AI systems."
	}
	return "Je suis l’assistant IA du portfolio de Saleh Minawi.\n" +
		"Je peux vous expliquer son parcours, ses projets IA et son approche pour concevoir des systèmes IA prêts pour la production."
}

func salehIntroAnswer(lang string) string {
	if lang == LangEN {
		return "Saleh Minawi is a backend developer specialized in AI architecture.\n\n" +
			"He is moving toward a Master's in AI Architecture (2026 intake), with a strong technical approach based on:\n" +
			"- mathematical foundations of machine learning\n" +
			"- internal understanding of backpropagation\n" +
			"- building MLP and CNN models with PyTorch\n" +
			"- CI log analysis with LLMs to automate error understanding\n\n" +
			"His goal is to design robust AI systems that can be integrated into production, especially in DevOps and CI/CD environments."
	}
	return "Saleh Minawi est un développeur backend spécialisé en architecture IA.\n\n" +
		"Il s’oriente vers un Master Architecte en Intelligence Artificielle (rentrée 2026) avec une approche technique solide basée sur :\n" +
		"- les fondements mathématiques du machine learning\n" +
		"- la compréhension interne de la backpropagation\n" +
		"- la construction de modèles MLP et CNN avec PyTorch\n" +
		"- l’analyse de logs CI via LLM pour automatiser la compréhension d’erreurs\n\n" +
		"Son objectif est de concevoir des systèmes IA robustes et intégrables en production, notamment dans des environnements DevOps et CI/CD."
}

func parcoursAnswer(lang string) string {
	if lang == LangEN {
		return "He first strengthened his foundations in computer science and applied mathematics, with a focus on algorithms and backend system design.\n\n" +
			"Then he deliberately approached AI through fundamentals:\n" +
			"- derivatives and optimization\n" +
			"- gradient descent\n" +
			"- linear and logistic regression\n" +
			"- implementation of a first fully connected network in PyTorch\n" +
			"- detailed understanding of backpropagation\n\n" +
			"He then progressed to:\n" +
			"- multi-layer neural networks (MLP)\n" +
			"- convolutional neural networks (CNN)\n" +
			"- first NLP experiments\n" +
			"- end-to-end AI project structuring\n\n" +
			"In parallel, he moved toward a systems-oriented approach:\n" +
			"- AI integration in backend environments\n" +
			"- automated CI/CD log analysis using LLMs\n" +
			"- design of scalable hybrid architectures (specific → multi-systems)\n\n" +
			"His goal is clear: become an AI Architect by designing robust, understandable, and production-ready systems."
	}
	return "Il a d’abord consolidé ses bases en informatique et en mathématiques appliquées, avec un focus sur l’algorithmique et la structuration des systèmes backend.\n\n" +
		"Ensuite, il a volontairement abordé l’intelligence artificielle par les fondements :\n" +
		"- dérivées et optimisation\n" +
		"- descente de gradient\n" +
		"- régression linéaire et logistique\n" +
		"- implémentation d’un premier réseau fully connected en PyTorch\n" +
		"- compréhension détaillée de la backpropagation\n\n" +
		"Il a ensuite évolué vers :\n" +
		"- réseaux de neurones multi-couches (MLP)\n" +
		"- réseaux convolutifs (CNN)\n" +
		"- premières expérimentations en NLP\n" +
		"- structuration de projets IA de bout en bout\n\n" +
		"Parallèlement, il s’est orienté vers une approche plus système :\n" +
		"- intégration d’IA dans des environnements backend\n" +
		"- analyse automatisée de logs CI/CD via LLM\n" +
		"- conception d’architectures hybrides évolutives (spécifique → multi-systèmes)\n\n" +
		"Son objectif est clair : devenir Architecte IA en concevant des systèmes robustes, compréhensibles et intégrables en production."
}

func parcoursScolaireAnswer(lang string) string {
	if lang == LangEN {
		return "Saleh has an academic path focused on computer science and artificial intelligence.\n\n" +
			"He first completed a Bachelor's degree in application development with specialization in algorithms and data science, where he built strong foundations in programming, applied mathematics, and optimization.\n\n" +
			"He is currently preparing for a Master's in AI Architecture (2026 intake), with a clear objective: design and integrate complete AI systems, from model development to production deployment.\n\n" +
			"His trajectory logically evolves from software development toward advanced AI systems architecture."
	}
	return "Saleh a un parcours orienté informatique et intelligence artificielle.\n\n" +
		"Il a d’abord suivi un Bachelor en développement d’applications avec une spécialisation en algorithmique et data science, où il a construit des bases solides en programmation, mathématiques appliquées et optimisation.\n\n" +
		"Il prépare actuellement un Master Architecte en Intelligence Artificielle (rentrée 2026), avec un objectif clair : concevoir et intégrer des systèmes IA complets, du modèle jusqu’à la mise en production.\n\n" +
		"Son parcours évolue logiquement du développement logiciel vers l’architecture avancée de systèmes IA."
}

func technicalPathAnswer(lang string) string {
	if lang == LangEN {
		return "Technical path of Saleh (high-level view):\n" +
			"- Math and optimization foundations: derivatives, chain rule, gradient descent behavior, and loss curve visualization.\n" +
			"- ML foundations: linear/logistic regression implemented and analyzed to understand convergence and hyperparameter impact.\n" +
			"- Deep learning engineering: first fully connected network (MLP) and CNN models with PyTorch, with practical training/debug workflow.\n" +
			"- Early NLP steps: tokenization, embeddings, and text classification experiments.\n" +
			"- Systems approach: backend integration, CI/CD log analysis with LLMs, and production-oriented architecture decisions.\n" +
			"If you want, I can now zoom in only on his gradient descent work with a concrete step-by-step example."
	}
	return "Parcours technique de Saleh (vue d'ensemble):\n" +
		"- Fondations math/optimisation: dérivées, règle de la chaîne, comportement de la descente de gradient, visualisation des courbes de coût.\n" +
		"- Bases ML: régression linéaire/logistique implémentées et analysées pour comprendre convergence et impact des hyperparamètres.\n" +
		"- Ingénierie deep learning: premier réseau fully connected (MLP) puis CNN en PyTorch, avec workflow d'entraînement et de debug.\n" +
		"- Premiers travaux NLP: tokenisation, embeddings, classification de texte.\n" +
		"- Approche système: intégration backend, analyse de logs CI/CD via LLM, et décisions d'architecture orientées production.\n" +
		"Si vous voulez, je peux maintenant zoomer uniquement sur sa descente de gradient avec un exemple concret étape par étape."
}

func gradientFocusAnswer(lang string) string {
	if lang == LangEN {
		return "Saleh's gradient descent work (concrete view):\n" +
			"- He starts with f(x)=2x^2-3x+4 and computes numerical slope with h=0.0001.\n" +
			"- Numerical checks: derivative at x=-1 is about -6.9998, and at x=2 is about 5.0002.\n" +
			"- He then derives f'(x)=4x-3 and runs iterative updates from x=2.0 with alpha=0.01 over 250 iterations.\n" +
			"- Observed result: approximate minimum x≈0.76 (close to analytical optimum x=0.75).\n" +
			"- Chain-rule phase: with derivative 6x-3, same loop converges near x≈0.50.\n" +
			"- Multi-variable optimization: updates a,b,c with partial derivatives; observed values a≈0.30, b≈0, c≈-11.5 after iterations.\n" +
			"- Interpretation: because c has a constant positive gradient in his setup, c keeps decreasing with more iterations.\n" +
			"Outcome: he built intuition from math to code, then reused it in linear/logistic regression and PyTorch training workflows."
	}
	return "Descente de gradient de Saleh (version concrète):\n" +
		"- Il part d'une fonction simple f(x)=2x^2-3x+4 et estime la dérivée numériquement avec h=0.0001.\n" +
		"- Vérifications numériques: dérivée en x=-1 ≈ -6.9998 et en x=2 ≈ 5.0002.\n" +
		"- Ensuite il pose la dérivée analytique f'(x)=4x-3 et lance une boucle d'optimisation depuis x=2.0, alpha=0.01, 250 itérations.\n" +
		"- Résultat observé: minimum approché x≈0.76 (proche de l'optimum théorique x=0.75).\n" +
		"- Partie règle de la chaîne: avec la dérivée 6x-3, la boucle converge vers x≈0.50.\n" +
		"- Optimisation multi-variables: mise à jour de a,b,c avec dérivées partielles; valeurs observées a≈0.30, b≈0, c≈-11.5 après itérations.\n" +
		"- Interprétation: dans son setup, c a un gradient constant positif, donc c continue de diminuer si on itère davantage.\n" +
		"Résultat: il relie les maths, l'implémentation et l'interprétation terrain, puis réutilise cette base dans la régression et l'entraînement PyTorch."
}

func logisticRegressionAnswer(lang string) string {
	if lang == LangEN {
		return "Saleh's logistic regression work (concrete):\n" +
			"- He starts from the artificial neuron formula: weighted sum + bias, then sigmoid activation for binary probability output.\n" +
			"- Practical use case: predict university admission from 3 normalized inputs (exam, average grade, motivation), with labels 0/1.\n" +
			"- He implements the model from scratch: parameters w0,w1,w2,b, negative log-likelihood loss, and gradient updates:\n" +
			"  dL/dw0=(pred-y)*x0, dL/dw1=(pred-y)*x1, dL/dw2=(pred-y)*x2, dL/db=(pred-y).\n" +
			"- Before training, predictions are uncertain (~60% and ~59%).\n" +
			"- Training setup: learning_rate=0.01, long run up to 40,000 epochs, with loss decreasing from ~0.01468 to ~0.00728.\n" +
			"- Learned parameters observed: w0=19.4643, w1=-3.2723, w2=-8.2449, b=-4.9032.\n" +
			"- After training, test predictions become coherent: ~93% admission for (0.8,0.7,0.7) and ~0% for (0.4,0.5,0.9).\n" +
			"Outcome: he connected the math (sigmoid + chain rule + NLL) to a fully working training loop with interpretable model behavior."
	}
	return "Régression logistique de Saleh (version concrète):\n" +
		"- Il part du neurone artificiel: somme pondérée + biais, puis activation sigmoïde pour obtenir une probabilité binaire.\n" +
		"- Cas pratique: prédire l'admission d'un étudiant à partir de 3 entrées normalisées (examen, moyenne, motivation), avec labels 0/1.\n" +
		"- Implémentation from scratch: paramètres w0,w1,w2,b, loss de log-vraisemblance négative, et dérivées:\n" +
		"  dL/dw0=(pred-y)*x0, dL/dw1=(pred-y)*x1, dL/dw2=(pred-y)*x2, dL/db=(pred-y).\n" +
		"- Avant entraînement, les prédictions sont incertaines (~60% et ~59%).\n" +
		"- Configuration d'entraînement: learning_rate=0.01, montée en itérations jusqu'à 40 000 epochs, avec une loss qui diminue de ~0.01468 à ~0.00728.\n" +
		"- Paramètres appris observés: w0=19.4643, w1=-3.2723, w2=-8.2449, b=-4.9032.\n" +
		"- Après entraînement, prédictions cohérentes: ~93% d'admission pour (0.8,0.7,0.7) et ~0% pour (0.4,0.5,0.9).\n" +
		"Résultat: il relie les fondements mathématiques (sigmoïde, chaîne, NLL) à une boucle d'entraînement complète et interprétable."
}

var (
	feedbackPathContext    = []string{"parcours", "saleh", "profil"}
	feedbackProjectContext = []string{"projet", "project", "realisation", "réalisation", "teamcity", "wavenet", "pytorch"}
)

// positiveFeedbackAnswer turns a context-free "thanks, interesting!" into a
// context-aware follow-up offer based on the last four remembered user
// messages.
func positiveFeedbackAnswer(recentUserTexts []string, lang string) string {
	recent := normalizeJoin(lastN(recentUserTexts, 4))

	if containsAny(recent, feedbackPathContext) {
		if lang == LangEN {
			return "Glad this is useful.\n" +
				"Would you like a more technical version of his journey,\n" +
				"or should I switch to concrete projects one by one?"
		}
		return "Avec plaisir.\n" +
			"Vous voulez que je continue sur son parcours avec une version encore plus technique,\n" +
			"ou que je bascule sur ses réalisations concrètes projet par projet ?"
	}

	if containsAny(recent, feedbackProjectContext) {
		if lang == LangEN {
			return "Great.\n" +
				"Would you like me to detail project 1 (IA Training), project 2 (CI/CD log analysis),\n" +
				"or project 3 (Ourtiguet Naturel)?"
		}
		return "Ravi que ça vous intéresse.\n" +
			"Souhaitez-vous que je détaille le projet 1 (IA Training), le projet 2 (analyse de logs CI/CD),\n" +
			"ou le projet 3 (Ourtiguet Naturel) ?"
	}

	if lang == LangEN {
		return "With pleasure.\n" +
			"Would you like me to present his background, his projects,\n" +
			"or his technical deep learning approach?"
	}
	return "Avec plaisir.\n" +
		"Voulez-vous que je vous présente son parcours, ses réalisations,\n" +
		"ou son approche technique en deep learning ?"
}

func projectsMenuAnswer(lang string) string {
	if lang == LangEN {
		return "Saleh worked on several AI projects. Which one would you like me to detail?\n" +
			"1) IA Training — deep learning foundations (linear/logistic regression, MLP/CNN)\n" +
			"2) AI Extension — failed build analysis (TeamCity / CI/CD logs)\n" +
			"3) Ourtiguet Naturel — domain AI assistant (Django/React, RAG, vectors)\n" +
			"You can reply with: 'project 2' or 'TeamCity'."
	}
	return "Saleh a travaillé sur plusieurs projets IA. Lequel veux-tu que je détaille ?\n" +
		"1) IA Training — apprentissage des bases (régression linéaire/logistique)\n" +
		"2) Extension IA — analyse de builds échoués (TeamCity / logs CI/CD)\n" +
		"3) Ourtiguet Naturel — assistant IA métier (Django/React, RAG, vecteurs)\n" +
		"Réponds par exemple: 'projet 2' ou 'TeamCity'."
}

func projectAnswerShort(p Project) string {
	return fmt.Sprintf("%s\nContexte: %s\nCe qu'il a construit: %s\nCe que ça apporte: %s",
		p.Name, p.Context, p.Architecture, p.Result)
}

// projectAnswerDeep renders the French deep variant; project 1 has a
// hand-written deep-dive paragraph instead of the field template.
func projectAnswerDeep(p Project) string {
	if strings.HasPrefix(p.Name, "IA Training") {
		return "IA Training – Deep Learning Foundations\n" +
			"Contexte: projet fondateur de son parcours IA, conçu pour comprendre les mécanismes internes des modèles et pas seulement utiliser des librairies.\n" +
			"Approche mathématique: dérivées, règle de la chaîne, descente de gradient, visualisation des fonctions de coût et des tangentes avec Matplotlib.\n" +
			"Machine learning de base: implémentations from scratch (NumPy) de régression linéaire et logistique pour analyser convergence, learning rate et epochs.\n" +
			"Deep learning avec PyTorch: premier réseau fully connected (MLP), activations, backpropagation, choix d'optimiseurs (SGD/Adam), régularisation et early stopping.\n" +
			"Vision par ordinateur: CNN avec couches convolution/pooling, lecture des cartes d'activation et interprétation des performances.\n" +
			"NLP: premières expérimentations sur tokenisation, embeddings et classification de texte, avec transition progressive vers des architectures plus avancées comme WaveNet.\n" +
			"Résultat: il sait expliquer de bout en bout comment un modèle apprend, pourquoi il converge (ou non), et comment structurer un pipeline d'entraînement robuste."
	}

	return fmt.Sprintf("%s\nContexte détaillé: %s\nArchitecture détaillée: %s\nImpact concret: %s\n",
		p.Name, p.Context, p.Architecture, p.Result) +
		"Si vous voulez, je peux décomposer ce projet en 3 parties: problème initial, choix d'architecture, résultats opérationnels."
}

const projectDeepEnglishIATraining = "IA Training – Deep Learning Foundations\n" +
	"Context: foundational project built to understand how models learn internally, not only how to use libraries.\n" +
	"Math layer: derivatives, chain rule, gradient descent, and loss/tangent visualization with Matplotlib.\n" +
	"ML base: from-scratch NumPy implementations of linear and logistic regression to study convergence, learning rate, and epochs.\n" +
	"Deep learning with PyTorch: first fully connected network (MLP), activations, backpropagation, optimizer choices (SGD/Adam), regularization, and early stopping.\n" +
	"Computer vision: CNN experiments with convolution/pooling layers and activation-map interpretation.\n" +
	"NLP: first experiments in tokenization, embeddings, and text classification, with progression toward advanced architectures like WaveNet.\n" +
	"Outcome: practical ability to explain and build robust end-to-end AI training pipelines."

// projectAnswerWithLevel renders a project with the requested detail level
// and language. The English deep-dive paragraph exists only for project 1;
// other projects fall back to the French deep template.
func projectAnswerWithLevel(p Project, level, lang string) string {
	data := translatedProject(p, lang)

	if level == detailShort {
		return projectAnswerShort(data)
	}
	if level == detailDeep && lang == LangEN && strings.HasPrefix(data.Name, "IA Training") {
		return projectDeepEnglishIATraining
	}
	if level == detailDeep {
		return projectAnswerDeep(p)
	}

	if lang == LangEN {
		return fmt.Sprintf("%s\nContext: %s\nWhat he built: %s\nImpact: %s\n",
			data.Name, data.Context, data.Architecture, data.Result) +
			"If you want, I can also provide a concrete breakdown (problem → approach → result) for this project."
	}

	return fmt.Sprintf("%s\nContexte: %s\nCe qu'il a construit: %s\nCe que ça apporte: %s\n",
		p.Name, p.Context, p.Architecture, p.Result) +
		"Si tu veux, je peux aussi te donner un exemple concret (problème → approche → résultat) sur ce projet."
}

func conversationFollowUp(lang string) string {
	if lang == LangEN {
		return "Would you like to dive deeper into Saleh's gradient descent work, his first PyTorch neural network, or his progression toward WaveNet?"
	}
	return "Voulez-vous approfondir la descente de gradient de Saleh, son premier réseau de neurones PyTorch, ou sa progression vers WaveNet ?"
}

// appendFollowUp adds the canned deeper-dive suggestion. Idempotent: if the
// suggestion already appears in the text, the text comes back unchanged.
func appendFollowUp(text, lang string) string {
	base := strings.TrimSpace(text)
	followUp := conversationFollowUp(lang)
	if base == "" {
		return followUp
	}
	if strings.Contains(base, followUp) {
		return base
	}
	return base + "\n\n" + followUp
}

// scopeGuardrailText is the fixed off-topic refusal substituted for empty or
// out-of-scope model output.
func scopeGuardrailText(lang string) string {
	if lang == LangEN {
		return "This space is dedicated only to AI architecture and AI project discussions."
	}
	return "Cet espace est dédié uniquement aux échanges autour de l’architecture et des projets IA."
}

func isScopeGuardrailResponse(text, lang string) bool {
	return strings.HasPrefix(strings.TrimSpace(text), scopeGuardrailText(lang))
}
