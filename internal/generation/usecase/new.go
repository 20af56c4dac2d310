package usecase

import (
	"time"

	"support-srv/internal/generation"
	"support-srv/internal/generation/provider"
	"support-srv/pkg/log"
)

type Config struct {
	// AttemptTimeout bounds each provider try. A provider that produced no
	// chunk within the deadline is abandoned for the next in the chain.
	AttemptTimeout time.Duration
}

type implUseCase struct {
	providers []provider.Provider
	cfg       Config
	l         log.Logger
}

// New builds the orchestrator over an ordered provider chain; earlier
// providers are preferred.
func New(providers []provider.Provider, cfg Config, l log.Logger) generation.UseCase {
	if cfg.AttemptTimeout <= 0 {
		cfg.AttemptTimeout = DefaultAttemptTimeout
	}
	return &implUseCase{
		providers: providers,
		cfg:       cfg,
		l:         l,
	}
}
