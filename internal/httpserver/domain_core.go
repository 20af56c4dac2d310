package httpserver

import (
	"context"

	embeddingRepo "support-srv/internal/embedding/repository/redis"
	embeddingUsecase "support-srv/internal/embedding/usecase"
	pointRepo "support-srv/internal/point/repository/qdrant"
	pointUsecase "support-srv/internal/point/usecase"
	selectorUsecase "support-srv/internal/selector/usecase"
)

func (srv *HTTPServer) setupCoreDomains(ctx context.Context) error {
	embeddingCacheRepo := embeddingRepo.New(srv.redisClient, srv.l)
	srv.embeddingUC = embeddingUsecase.New(embeddingCacheRepo, srv.voyageClient, srv.l)

	pointQdrantRepo := pointRepo.New(srv.qdrantClient, srv.l)
	srv.pointUC = pointUsecase.New(pointQdrantRepo, srv.l)

	srv.selectorUC = selectorUsecase.New(srv.embeddingUC, srv.pointUC, selectorUsecase.Config{
		MinScore: float32(srv.config.Selector.MinScore),
	}, srv.l)

	srv.l.Infof(ctx, "Core domains (Embedding, Point, Selector) initialized")
	return nil
}
