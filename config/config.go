package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment Configuration
	Environment EnvironmentConfig

	// Server Configuration
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Qdrant - Vector database
	Qdrant QdrantConfig

	// Voyage - Embedding
	Voyage VoyageConfig

	// Gemini - Primary LLM
	Gemini GeminiConfig

	// OpenAI - Secondary LLM
	OpenAI OpenAIConfig

	// Redis - Session store, embedding cache
	Redis RedisConfig

	// Kafka - Turn event publishing
	Kafka KafkaConfig

	// Domain tuning
	Crisis     CrisisConfig
	Selector   SelectorConfig
	Assessment AssessmentConfig
	Generation GenerationConfig
	Session    SessionConfig

	// Monitoring & Notification Configuration
	Discord DiscordConfig
}

// EnvironmentConfig is the configuration for the deployment environment.
type EnvironmentConfig struct {
	Name string
}

// HTTPServerConfig is the configuration for the HTTP server
type HTTPServerConfig struct {
	Host string
	Port int
	Mode string
}

// LoggerConfig is the configuration for the logger
type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// QdrantConfig is the configuration for Qdrant
type QdrantConfig struct {
	Host    string
	Port    int
	APIKey  string
	UseTLS  bool
	Timeout int // in seconds
}

// VoyageConfig is the configuration for Voyage AI (embedding). Same shape as pkg/voyage.VoyageConfig.
type VoyageConfig struct {
	APIKey string
}

// GeminiConfig is the configuration for Google Gemini (primary LLM). Same shape as pkg/gemini.GeminiConfig.
type GeminiConfig struct {
	APIKey    string
	Model     string
	Streaming bool
}

// OpenAIConfig is the configuration for OpenAI (fallback LLM).
type OpenAIConfig struct {
	APIKey    string
	Model     string
	Streaming bool
}

// RedisConfig is the configuration for Redis
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// KafkaConfig is the configuration for Kafka
type KafkaConfig struct {
	Brokers []string
	Topic   string
}

// CrisisConfig extends the built-in crisis term lists per language.
type CrisisConfig struct {
	ExtraTerms map[string][]string
}

// SelectorConfig tunes the semantic selector.
type SelectorConfig struct {
	MinScore float64
}

// AssessmentConfig tunes the assessment state machine.
type AssessmentConfig struct {
	TotalEstimated int
	SuggestionTopK int
}

// GenerationConfig tunes the provider fallback chain.
type GenerationConfig struct {
	AttemptTimeout int // in seconds
}

// SessionConfig tunes session persistence and the offer rule.
type SessionConfig struct {
	TTL           int // in seconds
	OfferScore    float64
	OfferStreak   int
	HistoryWindow int
}

type DiscordConfig struct {
	WebhookID    string
	WebhookToken string
}

// Load loads configuration using Viper
func Load() (*Config, error) {
	// Set config file name and paths
	viper.SetConfigName("support-config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/support/")

	// Enable environment variable override
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Set defaults
	setDefaults()

	// Read config file (optional - will use env vars if file not found)
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found; using environment variables
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Host = viper.GetString("http_server.host")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Qdrant
	cfg.Qdrant.Host = viper.GetString("qdrant.host")
	cfg.Qdrant.Port = viper.GetInt("qdrant.port")
	cfg.Qdrant.APIKey = viper.GetString("qdrant.api_key")
	cfg.Qdrant.UseTLS = viper.GetBool("qdrant.use_tls")
	cfg.Qdrant.Timeout = viper.GetInt("qdrant.timeout")

	// Voyage - Embedding
	cfg.Voyage.APIKey = viper.GetString("voyage.api_key")

	// Gemini - Primary LLM
	cfg.Gemini.APIKey = viper.GetString("gemini.api_key")
	cfg.Gemini.Model = viper.GetString("gemini.model")
	cfg.Gemini.Streaming = viper.GetBool("gemini.streaming")

	// OpenAI - Fallback LLM
	cfg.OpenAI.APIKey = viper.GetString("openai.api_key")
	cfg.OpenAI.Model = viper.GetString("openai.model")
	cfg.OpenAI.Streaming = viper.GetBool("openai.streaming")

	// Redis - Session store, embedding cache
	cfg.Redis.Host = viper.GetString("redis.host")
	cfg.Redis.Port = viper.GetInt("redis.port")
	cfg.Redis.Password = viper.GetString("redis.password")
	cfg.Redis.DB = viper.GetInt("redis.db")

	// Kafka - Turn event publishing (optional)
	cfg.Kafka.Brokers = viper.GetStringSlice("kafka.brokers")
	cfg.Kafka.Topic = viper.GetString("kafka.topic")

	// Crisis interceptor
	cfg.Crisis.ExtraTerms = make(map[string][]string)
	if viper.IsSet("crisis.extra_terms") {
		for lang, terms := range viper.GetStringMapStringSlice("crisis.extra_terms") {
			cfg.Crisis.ExtraTerms[lang] = terms
		}
	}

	// Selector
	cfg.Selector.MinScore = viper.GetFloat64("selector.min_score")

	// Assessment
	cfg.Assessment.TotalEstimated = viper.GetInt("assessment.total_estimated")
	cfg.Assessment.SuggestionTopK = viper.GetInt("assessment.suggestion_top_k")

	// Generation
	cfg.Generation.AttemptTimeout = viper.GetInt("generation.attempt_timeout")

	// Session
	cfg.Session.TTL = viper.GetInt("session.ttl")
	cfg.Session.OfferScore = viper.GetFloat64("session.offer_score")
	cfg.Session.OfferStreak = viper.GetInt("session.offer_streak")
	cfg.Session.HistoryWindow = viper.GetInt("session.history_window")

	// Discord
	cfg.Discord.WebhookID = viper.GetString("discord.webhook_id")
	cfg.Discord.WebhookToken = viper.GetString("discord.webhook_token")

	// Validate required fields
	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults() {
	// Environment
	viper.SetDefault("environment.name", "production")

	// HTTP Server
	viper.SetDefault("http_server.host", "")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")

	// Logger
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	// 1. Qdrant
	viper.SetDefault("qdrant.host", "localhost")
	viper.SetDefault("qdrant.port", 6333)
	viper.SetDefault("qdrant.use_tls", false)
	viper.SetDefault("qdrant.timeout", 30)

	// 2. AI (Gemini primary, OpenAI fallback)
	viper.SetDefault("gemini.model", "gemini-2.0-flash")
	viper.SetDefault("gemini.streaming", true)
	viper.SetDefault("openai.model", "gpt-4o-mini")
	viper.SetDefault("openai.streaming", true)

	// 3. Redis
	viper.SetDefault("redis.host", "localhost")
	viper.SetDefault("redis.port", 6379)
	viper.SetDefault("redis.password", "")
	viper.SetDefault("redis.db", 0)

	// 4. Kafka (topic per specs: support.turns)
	viper.SetDefault("kafka.brokers", []string{"localhost:9092"})
	viper.SetDefault("kafka.topic", "support.turns")

	// 5. Domain tuning
	viper.SetDefault("selector.min_score", 0.65)
	viper.SetDefault("assessment.total_estimated", 10)
	viper.SetDefault("assessment.suggestion_top_k", 3)
	viper.SetDefault("generation.attempt_timeout", 30)
	viper.SetDefault("session.ttl", 86400) // 24 hours
	viper.SetDefault("session.offer_score", 0.72)
	viper.SetDefault("session.offer_streak", 2)
	viper.SetDefault("session.history_window", 12)
}

func validate(cfg *Config) error {
	// Validate Redis Configuration
	if cfg.Redis.Host == "" {
		return fmt.Errorf("redis.host is required")
	}
	if cfg.Redis.Port == 0 {
		return fmt.Errorf("redis.port is required")
	}

	// Validate Qdrant Configuration
	if cfg.Qdrant.Host == "" {
		return fmt.Errorf("qdrant.host is required")
	}
	if cfg.Qdrant.Port == 0 {
		return fmt.Errorf("qdrant.port is required")
	}

	// Validate AI Configuration: at least one provider must be usable.
	if cfg.Gemini.APIKey == "" && cfg.OpenAI.APIKey == "" {
		return fmt.Errorf("at least one of gemini.api_key or openai.api_key is required")
	}
	if cfg.Voyage.APIKey == "" {
		return fmt.Errorf("voyage.api_key is required")
	}

	// Validate domain tuning ranges
	if cfg.Selector.MinScore < 0 || cfg.Selector.MinScore > 1 {
		return fmt.Errorf("selector.min_score must be within [0,1]")
	}
	if cfg.Session.OfferScore < 0 || cfg.Session.OfferScore > 1 {
		return fmt.Errorf("session.offer_score must be within [0,1]")
	}
	if cfg.Session.OfferStreak < 1 {
		return fmt.Errorf("session.offer_streak must be at least 1")
	}

	return nil
}
