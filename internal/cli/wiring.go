package cli

import (
	"context"
	"fmt"
	"log"

	goopenai "github.com/sashabaranov/go-openai"

	"github.com/solenne-labs/profilechat/internal/config"
	"github.com/solenne-labs/profilechat/internal/database"
	"github.com/solenne-labs/profilechat/internal/domain"
	"github.com/solenne-labs/profilechat/internal/jobs"
	"github.com/solenne-labs/profilechat/internal/openai"
	"github.com/solenne-labs/profilechat/internal/profile"
	"github.com/solenne-labs/profilechat/internal/repository"
	"github.com/solenne-labs/profilechat/internal/service"
	"github.com/solenne-labs/profilechat/internal/storage"
)

// app holds the wired service graph shared by the CLI commands.
type app struct {
	cfg       *config.Config
	persona   domain.PersonaConfig
	retrieval *service.RetrievalService
	chat      *service.ChatService
	indexer   *jobs.Indexer
	source    profile.Source

	closers []func()
}

func (a *app) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
}

// buildApp wires stores, clients and services from configuration. Postgres is
// used when DATABASE_URL is set, otherwise the SQLite fallback.
func buildApp(ctx context.Context, cfg *config.Config) (*app, error) {
	if !cfg.HasOpenAI() {
		return nil, fmt.Errorf("OPENAI_API_KEY is required")
	}

	persona, err := cfg.LoadPersona()
	if err != nil {
		return nil, fmt.Errorf("failed to load persona: %w", err)
	}

	a := &app{cfg: cfg, persona: persona}

	var embeddingStore service.EmbeddingStore
	var messageRepo service.MessageRepositoryInterface

	if cfg.HasPostgres() {
		pool, err := database.NewPool(ctx, cfg.DatabaseURL)
		if err != nil {
			a.Close()
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		a.closers = append(a.closers, pool.Close)
		log.Println("connected to postgres")

		embeddingStore = repository.NewEmbeddingRepository(pool)
		messageRepo = repository.NewMessageRepository(pool)
	} else {
		embeddingRepo, err := repository.NewSQLiteEmbeddingRepository(cfg.SQLitePath)
		if err != nil {
			a.Close()
			return nil, fmt.Errorf("failed to open sqlite store: %w", err)
		}
		a.closers = append(a.closers, func() { embeddingRepo.Close() })

		sqliteMessages, err := repository.NewSQLiteMessageRepository(cfg.SQLitePath)
		if err != nil {
			a.Close()
			return nil, fmt.Errorf("failed to open sqlite transcript store: %w", err)
		}
		a.closers = append(a.closers, func() { sqliteMessages.Close() })
		log.Printf("using sqlite store at %s", cfg.SQLitePath)

		embeddingStore = embeddingRepo
		messageRepo = sqliteMessages
	}

	openaiClient := openai.NewClientWithConfig(openai.Config{
		APIKey:         cfg.OpenAIAPIKey,
		EmbeddingModel: goopenai.EmbeddingModel(cfg.EmbeddingModel),
		ChatModel:      cfg.ChatModel,
	})

	chatModel := cfg.ChatModel
	if chatModel == "" {
		chatModel = openai.DefaultChatModel
	}

	embedder := service.NewEmbeddingService(openaiClient)
	a.retrieval = service.NewRetrievalService(embedder, embeddingStore, persona)
	a.chat = service.NewChatService(a.retrieval, openaiClient, messageRepo, chatModel)

	if cfg.HasS3Profile() {
		s3Client, err := storage.NewS3Client(ctx, storage.S3ClientConfig{
			Endpoint:        cfg.S3Endpoint,
			Region:          cfg.S3Region,
			AccessKeyID:     cfg.S3AccessKey,
			SecretAccessKey: cfg.S3SecretKey,
			Bucket:          cfg.S3Bucket,
			UsePathStyle:    true,
		})
		if err != nil {
			a.Close()
			return nil, fmt.Errorf("failed to create S3 client: %w", err)
		}
		a.source = profile.NewS3Source(s3Client, cfg.S3ProfileKey)
		log.Printf("loading profile from s3://%s/%s", cfg.S3Bucket, cfg.S3ProfileKey)
	} else {
		a.source = profile.NewFileSource(cfg.ProfilePath)
	}

	a.indexer = jobs.NewIndexer(a.source, a.retrieval)

	return a, nil
}
