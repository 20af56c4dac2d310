package usecase

import (
	"context"
	"strings"

	"support-srv/internal/crisis"
	"support-srv/pkg/locale"
)

// Classify screens raw user text for crisis-indicative language. Pure and
// deterministic: case-insensitive substring match against the configured
// term list for the locale, with English always included as a fallback.
// Recall is prioritized over precision.
func (uc *implUseCase) Classify(ctx context.Context, input crisis.ClassifyInput) crisis.ClassifyOutput {
	text := strings.ToLower(input.Text)
	if text == "" {
		return crisis.ClassifyOutput{}
	}

	lang := locale.ParseLang(input.Lang)

	var matched []string
	for _, term := range uc.terms[lang] {
		if strings.Contains(text, term) {
			matched = append(matched, term)
		}
	}
	if lang != locale.EN {
		for _, term := range uc.terms[locale.EN] {
			if strings.Contains(text, term) {
				matched = append(matched, term)
			}
		}
	}

	if len(matched) == 0 {
		return crisis.ClassifyOutput{}
	}

	uc.l.Warnf(ctx, "crisis.usecase.Classify: flagged input, %d term(s) matched", len(matched))
	return crisis.ClassifyOutput{
		Flagged:      true,
		MatchedTerms: matched,
	}
}

// SafetyMessage returns the fixed safety-resource text for the locale.
func (uc *implUseCase) SafetyMessage(lang string) string {
	if msg, ok := safetyMessages[locale.ParseLang(lang)]; ok {
		return msg
	}
	return safetyMessages[locale.DefaultLang]
}

func lowercaseAll(list []string) []string {
	out := make([]string, len(list))
	for i, s := range list {
		out[i] = strings.ToLower(s)
	}
	return out
}
