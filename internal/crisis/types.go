package crisis

type ClassifyInput struct {
	Text string
	Lang string
}

type ClassifyOutput struct {
	Flagged      bool
	MatchedTerms []string
}
