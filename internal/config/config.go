package config

import (
	"fmt"
	"log"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Port  string `envconfig:"PORT" default:"8080"`
	Debug bool   `envconfig:"DEBUG" default:"false"`

	// Postgres is the primary store; when DATABASE_URL is empty the service
	// falls back to the SQLite store at SQLITE_PATH.
	DatabaseURL string `envconfig:"DATABASE_URL"`
	SQLitePath  string `envconfig:"SQLITE_PATH" default:"data/profilechat.db"`

	OpenAIAPIKey   string `envconfig:"OPENAI_API_KEY"`
	EmbeddingModel string `envconfig:"EMBEDDING_MODEL"`
	ChatModel      string `envconfig:"CHAT_MODEL"`

	// Profile document source: a local JSON file, or an S3 object when the
	// S3 settings are present.
	ProfilePath  string `envconfig:"PROFILE_PATH" default:"data/profile.json"`
	WatchProfile bool   `envconfig:"WATCH_PROFILE" default:"false"`

	S3Endpoint   string `envconfig:"S3_ENDPOINT"`
	S3AccessKey  string `envconfig:"S3_ACCESS_KEY_ID"`
	S3SecretKey  string `envconfig:"S3_SECRET_ACCESS_KEY"`
	S3Bucket     string `envconfig:"S3_BUCKET"`
	S3Region     string `envconfig:"S3_REGION" default:"us-east-1"`
	S3ProfileKey string `envconfig:"S3_PROFILE_KEY" default:"profile.json"`

	// Persona, either inline or via a YAML file (file wins when set).
	PersonaName  string `envconfig:"PERSONA_NAME"`
	PersonaTitle string `envconfig:"PERSONA_TITLE"`
	PersonaFile  string `envconfig:"PERSONA_FILE"`

	// AdminToken protects the reindex endpoint.
	AdminToken string `envconfig:"ADMIN_TOKEN"`

	TopK int `envconfig:"TOP_K" default:"3"`

	SentryDSN         string `envconfig:"SENTRY_DSN"`
	SentryEnvironment string `envconfig:"SENTRY_ENVIRONMENT" default:"development"`
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("PROFILECHAT", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	return &cfg, nil
}

func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	return cfg
}

func (c *Config) HasPostgres() bool {
	return c.DatabaseURL != ""
}

func (c *Config) HasOpenAI() bool {
	return c.OpenAIAPIKey != ""
}

func (c *Config) HasS3Profile() bool {
	return c.S3Endpoint != "" && c.S3AccessKey != "" && c.S3SecretKey != "" && c.S3Bucket != ""
}
