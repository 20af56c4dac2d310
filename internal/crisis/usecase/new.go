package usecase

import (
	"support-srv/internal/crisis"
	"support-srv/pkg/locale"
	"support-srv/pkg/log"
)

type implUseCase struct {
	terms map[string][]string // lang -> lowercased term list
	l     log.Logger
}

// New - Factory function. extraTerms lets deployments extend the built-in
// term lists per language without a rebuild.
func New(l log.Logger, extraTerms map[string][]string) crisis.UseCase {
	terms := make(map[string][]string, len(defaultTerms))
	for lang, list := range defaultTerms {
		terms[lang] = append([]string(nil), list...)
	}
	for lang, list := range extraTerms {
		lang = locale.ParseLang(lang)
		terms[lang] = append(terms[lang], lowercaseAll(list)...)
	}
	return &implUseCase{
		terms: terms,
		l:     l,
	}
}
