package main

import (
	"context"
	"fmt"

	"support-srv/config"
	configAI "support-srv/config/ai"
	configKafka "support-srv/config/kafka"
	configQdrant "support-srv/config/qdrant"
	configRedis "support-srv/config/redis"
	"support-srv/internal/httpserver"
	"support-srv/pkg/discord"
	pkgGemini "support-srv/pkg/gemini"
	pkgKafka "support-srv/pkg/kafka"
	"support-srv/pkg/log"
	pkgOpenAI "support-srv/pkg/openai"
)

func main() {
	// 1. Load configuration
	// Reads config from YAML file and environment variables
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Initialize logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx := context.Background()

	// 3. Initialize Discord (optional)
	discordClient, err := discord.New(logger, &discord.DiscordWebhook{
		ID:    cfg.Discord.WebhookID,
		Token: cfg.Discord.WebhookToken,
	})
	if err != nil {
		logger.Warnf(ctx, "Discord webhook not configured (optional): %v", err)
		discordClient = nil // Continue without Discord
	} else {
		logger.Infof(ctx, "Discord webhook initialized successfully")
	}

	// 4. Initialize Redis (session store, embedding cache)
	redisClient, err := configRedis.Connect(ctx, cfg.Redis)
	if err != nil {
		logger.Errorf(ctx, "Failed to connect to Redis: %v", err)
		return
	}
	defer configRedis.Disconnect()
	logger.Infof(ctx, "Redis connected successfully to %s:%d (DB %d)", cfg.Redis.Host, cfg.Redis.Port, cfg.Redis.DB)

	// 5. Initialize Qdrant (semantic selection)
	qdrantClient, err := configQdrant.Connect(ctx, cfg.Qdrant)
	if err != nil {
		logger.Errorf(ctx, "Failed to connect to Qdrant: %v", err)
		return
	}
	defer configQdrant.Disconnect()
	logger.Infof(ctx, "Qdrant connected successfully to %s:%d", cfg.Qdrant.Host, cfg.Qdrant.Port)

	// 6. Initialize AI clients
	voyageClient := configAI.ConnectVoyage(cfg.Voyage)

	var geminiClient pkgGemini.IGemini
	if cfg.Gemini.APIKey != "" {
		geminiClient, err = configAI.ConnectGemini(cfg.Gemini)
		if err != nil {
			logger.Errorf(ctx, "Failed to initialize Gemini client: %v", err)
			return
		}
		logger.Infof(ctx, "Gemini client initialized (model %s)", cfg.Gemini.Model)
	}

	var openaiClient pkgOpenAI.IOpenAI
	if cfg.OpenAI.APIKey != "" {
		openaiClient, err = configAI.ConnectOpenAI(cfg.OpenAI)
		if err != nil {
			logger.Errorf(ctx, "Failed to initialize OpenAI client: %v", err)
			return
		}
		logger.Infof(ctx, "OpenAI client initialized (model %s)", cfg.OpenAI.Model)
	}

	// 7. Initialize Kafka producer (optional, turn events)
	var producer pkgKafka.IProducer
	if len(cfg.Kafka.Brokers) > 0 {
		producer, err = configKafka.ConnectProducer(cfg.Kafka)
		if err != nil {
			logger.Warnf(ctx, "Kafka not available, turn events disabled: %v", err)
			producer = nil
		} else {
			defer configKafka.DisconnectProducer()
			logger.Infof(ctx, "Kafka producer connected to %v (topic %s)", cfg.Kafka.Brokers, cfg.Kafka.Topic)
		}
	}

	// 8. Initialize HTTP server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		// Server Configuration
		Logger:      logger,
		Host:        cfg.HTTPServer.Host,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		Config:      cfg,

		// Infrastructure clients
		RedisClient:  redisClient,
		QdrantClient: qdrantClient,
		VoyageClient: voyageClient,
		GeminiClient: geminiClient,
		OpenAIClient: openaiClient,
		Producer:     producer,

		// Monitoring & Notification Configuration
		Discord: discordClient,
	})
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize HTTP server: %v", err)
		return
	}

	if err := httpServer.Run(); err != nil {
		logger.Errorf(ctx, "Failed to run server: %v", err)
		return
	}
}
