package usecase

import (
	"context"
	"crypto/sha256"
	"fmt"

	"support-srv/internal/embedding"
	"support-srv/internal/embedding/repository"
)

// Generate embeds a single query text, consulting the redis cache first.
// Cache failures degrade to a direct Voyage call; a cache-save failure is
// logged but never fails the turn.
func (uc *implUseCase) Generate(ctx context.Context, input embedding.GenerateInput) (embedding.GenerateOutput, error) {
	if input.Text == "" {
		uc.l.Errorf(ctx, "embedding.usecase.Generate: empty text")
		return embedding.GenerateOutput{}, embedding.ErrEmptyText
	}

	hash := fmt.Sprintf("%x", sha256.Sum256([]byte(input.Text)))

	// 1. Check cache
	cached, err := uc.repo.Get(ctx, repository.GetOptions{Key: hash})
	if err == nil && cached != nil {
		uc.l.Debugf(ctx, "embedding.usecase.Generate: cache hit")
		return embedding.GenerateOutput{Vector: cached}, nil
	}

	// 2. Call Voyage
	vectors, err := uc.voyage.Embed(ctx, []string{input.Text})
	if err != nil {
		uc.l.Errorf(ctx, "embedding.usecase.Generate: Voyage embed failed: %v", err)
		return embedding.GenerateOutput{}, err
	}
	if len(vectors) == 0 {
		uc.l.Errorf(ctx, "embedding.usecase.Generate: no vector returned")
		return embedding.GenerateOutput{}, embedding.ErrNoVectorReturned
	}
	vector := vectors[0]

	// 3. Save cache
	if err := uc.repo.Save(ctx, repository.SaveOptions{
		Key:    hash,
		Vector: vector,
	}); err != nil {
		uc.l.Warnf(ctx, "embedding.usecase.Generate: cache save failed: %v", err)
	}

	return embedding.GenerateOutput{Vector: vector}, nil
}
