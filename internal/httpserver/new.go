package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"support-srv/config"
	"support-srv/internal/assessment"
	"support-srv/internal/embedding"
	"support-srv/internal/generation"
	"support-srv/internal/point"
	"support-srv/internal/selector"
	"support-srv/internal/session"
	"support-srv/pkg/discord"
	pkgGemini "support-srv/pkg/gemini"
	pkgKafka "support-srv/pkg/kafka"
	"support-srv/pkg/log"
	pkgOpenAI "support-srv/pkg/openai"
	pkgQdrant "support-srv/pkg/qdrant"
	pkgRedis "support-srv/pkg/redis"
	pkgVoyage "support-srv/pkg/voyage"
)

type HTTPServer struct {
	// Server Configuration
	gin         *gin.Engine
	l           log.Logger
	host        string
	port        int
	mode        string
	environment string
	config      *config.Config

	// Infrastructure clients
	redisClient  pkgRedis.IRedis
	qdrantClient pkgQdrant.IQdrant
	voyageClient pkgVoyage.IVoyage
	geminiClient pkgGemini.IGemini
	openaiClient pkgOpenAI.IOpenAI
	producer     pkgKafka.IProducer

	// Monitoring & Notification Configuration
	discord discord.IDiscord

	// Usecases (wired in mapHandlers)
	embeddingUC  embedding.UseCase
	pointUC      point.UseCase
	selectorUC   selector.UseCase
	assessmentUC assessment.UseCase
	generationUC generation.UseCase
	sessionUC    session.UseCase
}

type Config struct {
	// Server Configuration
	Logger      log.Logger
	Host        string
	Port        int
	Mode        string
	Environment string
	Config      *config.Config

	// Infrastructure clients
	RedisClient  pkgRedis.IRedis
	QdrantClient pkgQdrant.IQdrant
	VoyageClient pkgVoyage.IVoyage
	GeminiClient pkgGemini.IGemini
	OpenAIClient pkgOpenAI.IOpenAI
	Producer     pkgKafka.IProducer

	// Monitoring & Notification Configuration
	Discord discord.IDiscord
}

// New creates a new HTTPServer instance with the provided configuration.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		// Server Configuration
		l:           logger,
		gin:         gin.Default(),
		host:        cfg.Host,
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		config:      cfg.Config,

		// Infrastructure clients
		redisClient:  cfg.RedisClient,
		qdrantClient: cfg.QdrantClient,
		voyageClient: cfg.VoyageClient,
		geminiClient: cfg.GeminiClient,
		openaiClient: cfg.OpenAIClient,
		producer:     cfg.Producer,

		// Monitoring & Notification Configuration
		discord: cfg.Discord,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

// validate validates that all required dependencies are provided.
func (srv *HTTPServer) validate() error {
	// Server Configuration
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	// host can be empty (listen on all interfaces)
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.config == nil {
		return errors.New("config is required")
	}

	// Infrastructure clients
	if srv.redisClient == nil {
		return errors.New("redisClient is required")
	}
	if srv.qdrantClient == nil {
		return errors.New("qdrantClient is required")
	}
	if srv.voyageClient == nil {
		return errors.New("voyageClient is required")
	}
	// The generation chain degrades through whichever providers are
	// configured, but at least one must exist.
	if srv.geminiClient == nil && srv.openaiClient == nil {
		return errors.New("at least one LLM client (Gemini or OpenAI) is required")
	}

	// Kafka producer and Discord are optional. Turn events and alerting
	// degrade to no-ops when absent.

	return nil
}
