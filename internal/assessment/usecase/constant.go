package usecase

const (
	DefaultTotalEstimated = 10
	DefaultSuggestionTopK = 3

	// Fallback range for scale questions that declare no bounds and whose
	// text encodes none.
	DefaultScaleMin = 1
	DefaultScaleMax = 10
)
