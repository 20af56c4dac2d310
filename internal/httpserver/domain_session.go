package httpserver

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	assessmentUsecase "support-srv/internal/assessment/usecase"
	crisisUsecase "support-srv/internal/crisis/usecase"
	"support-srv/internal/generation/provider"
	generationUsecase "support-srv/internal/generation/usecase"
	"support-srv/internal/middleware"
	sessionWS "support-srv/internal/session/delivery/ws"
	sessionRepo "support-srv/internal/session/repository/redis"
	sessionUsecase "support-srv/internal/session/usecase"
)

func (srv *HTTPServer) setupSessionDomain(ctx context.Context, r *gin.RouterGroup, mw middleware.Middleware) error {
	crisisUC := crisisUsecase.New(srv.l, srv.config.Crisis.ExtraTerms)

	srv.assessmentUC = assessmentUsecase.New(srv.selectorUC, assessmentUsecase.Config{
		TotalEstimated: srv.config.Assessment.TotalEstimated,
		SuggestionTopK: srv.config.Assessment.SuggestionTopK,
	}, srv.l)

	// Provider order is the fallback order. Gemini leads when configured.
	var providers []provider.Provider
	if srv.geminiClient != nil {
		providers = append(providers, provider.NewGemini(srv.geminiClient, srv.config.Gemini.Streaming))
	}
	if srv.openaiClient != nil {
		providers = append(providers, provider.NewOpenAI(srv.openaiClient, srv.config.OpenAI.Streaming))
	}
	srv.generationUC = generationUsecase.New(providers, generationUsecase.Config{
		AttemptTimeout: time.Duration(srv.config.Generation.AttemptTimeout) * time.Second,
	}, srv.l)

	sessionTTL := time.Duration(srv.config.Session.TTL) * time.Second
	repo := sessionRepo.New(srv.redisClient, sessionTTL, srv.l)

	srv.sessionUC = sessionUsecase.New(
		repo,
		crisisUC,
		srv.selectorUC,
		srv.assessmentUC,
		srv.generationUC,
		srv.producer,
		sessionUsecase.Config{
			OfferScore:    float32(srv.config.Session.OfferScore),
			OfferStreak:   srv.config.Session.OfferStreak,
			HistoryWindow: srv.config.Session.HistoryWindow,
		},
		srv.l,
	)

	handler := sessionWS.New(srv.l, srv.sessionUC)
	handler.RegisterRoutes(r, mw)

	srv.l.Infof(ctx, "Session domain registered")
	return nil
}
