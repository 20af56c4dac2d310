package usecase

const (
	CollectionCategories  = "support_categories"
	CollectionQuestions   = "support_questions"
	CollectionSuggestions = "support_suggestions"

	DefaultMinScore       = 0.65
	DefaultSuggestionTopK = 3

	// candidateLimit leaves headroom for in-process exclusion of
	// already-asked questions.
	candidateLimit = 32
)
