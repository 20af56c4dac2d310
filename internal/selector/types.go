package selector

type SelectCategoryInput struct {
	Text string
}

type CategoryMatch struct {
	CategoryID    string
	SubCategoryID string
	Score         float32
}

type SelectQuestionInput struct {
	SubCategoryID string
	BatchID       int
	ExcludedIDs   []string
}

type SelectSuggestionsInput struct {
	SubCategoryID string
	ClusterTally  map[string]float64
	TopK          int
}
