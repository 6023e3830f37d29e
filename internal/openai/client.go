package openai

import (
	"context"
	"errors"
	"fmt"
	"os"

	openai "github.com/sashabaranov/go-openai"
)

const (
	// DefaultEmbeddingModel is the OpenAI model used for generating embeddings
	DefaultEmbeddingModel = openai.SmallEmbedding3
	// DefaultEmbeddingDimensions is the expected dimension of embeddings from text-embedding-3-small
	DefaultEmbeddingDimensions = 1536
	// DefaultChatModel is the model used for chat completions
	DefaultChatModel = openai.GPT4TurboPreview
	// DefaultChatMaxTokens bounds completion length
	DefaultChatMaxTokens = 1000
)

var (
	// ErrEmptyText is returned when text is empty
	ErrEmptyText = errors.New("text cannot be empty")
	// ErrEmptyBatch is returned when a batch contains no texts
	ErrEmptyBatch = errors.New("batch cannot be empty")
	// ErrWrongDimensions is returned when an embedding has wrong dimensions
	ErrWrongDimensions = errors.New("embedding has wrong dimensions")
	// ErrNoAPIKey is returned when the OpenAI API key is not set
	ErrNoAPIKey = errors.New("OPENAI_API_KEY environment variable not set")
)

// EmbeddingAPI defines the interface for embedding generation
type EmbeddingAPI interface {
	CreateEmbeddings(ctx context.Context, texts []string) ([][]float32, error)
}

// ChatAPI defines the interface for chat completion generation
type ChatAPI interface {
	CreateChatCompletion(ctx context.Context, messages []ChatMessage, temperature float32) (string, error)
}

// ChatMessage is a single turn in a chat completion request.
type ChatMessage struct {
	Role    string
	Content string
}

// Chat message roles accepted by the completion API.
const (
	RoleSystem    = openai.ChatMessageRoleSystem
	RoleUser      = openai.ChatMessageRoleUser
	RoleAssistant = openai.ChatMessageRoleAssistant
)

// Client wraps the OpenAI API client
type Client struct {
	embeddings EmbeddingAPI
	chat       ChatAPI
	dimensions int
}

type OpenAIAdapter struct {
	client    *openai.Client
	model     openai.EmbeddingModel
	chatModel string
}

func NewOpenAIAdapter(apiKey string, model openai.EmbeddingModel, chatModel string) *OpenAIAdapter {
	if model == "" {
		model = DefaultEmbeddingModel
	}
	if chatModel == "" {
		chatModel = DefaultChatModel
	}
	return &OpenAIAdapter{
		client:    openai.NewClient(apiKey),
		model:     model,
		chatModel: chatModel,
	}
}

// CreateEmbeddings calls the OpenAI API to create embeddings for a batch of texts
func (a *OpenAIAdapter) CreateEmbeddings(ctx context.Context, texts []string) ([][]float32, error) {
	resp, err := a.client.CreateEmbeddings(ctx, openai.EmbeddingRequest{
		Input: texts,
		Model: a.model,
	})
	if err != nil {
		return nil, err
	}

	if len(resp.Data) != len(texts) {
		return nil, fmt.Errorf("expected %d embeddings, got %d", len(texts), len(resp.Data))
	}

	embeddings := make([][]float32, len(resp.Data))
	for i, item := range resp.Data {
		embeddings[i] = item.Embedding
	}
	return embeddings, nil
}

// CreateChatCompletion calls the OpenAI API to generate an assistant reply
func (a *OpenAIAdapter) CreateChatCompletion(ctx context.Context, messages []ChatMessage, temperature float32) (string, error) {
	reqMessages := make([]openai.ChatCompletionMessage, len(messages))
	for i, m := range messages {
		reqMessages[i] = openai.ChatCompletionMessage{Role: m.Role, Content: m.Content}
	}

	resp, err := a.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       a.chatModel,
		Messages:    reqMessages,
		Temperature: temperature,
		MaxTokens:   DefaultChatMaxTokens,
	})
	if err != nil {
		return "", err
	}

	if len(resp.Choices) == 0 {
		return "", errors.New("no completion choices returned")
	}

	return resp.Choices[0].Message.Content, nil
}

type Config struct {
	APIKey              string
	EmbeddingModel      openai.EmbeddingModel
	EmbeddingDimensions int
	ChatModel           string
}

// NewClient creates a new OpenAI client using defaults.
func NewClient(apiKey string) *Client {
	return NewClientWithConfig(Config{APIKey: apiKey})
}

// NewClientWithConfig creates a new OpenAI client with explicit configuration.
func NewClientWithConfig(cfg Config) *Client {
	dimensions := cfg.EmbeddingDimensions
	if dimensions <= 0 {
		dimensions = DefaultEmbeddingDimensions
	}
	adapter := NewOpenAIAdapter(cfg.APIKey, cfg.EmbeddingModel, cfg.ChatModel)
	return &Client{
		embeddings: adapter,
		chat:       adapter,
		dimensions: dimensions,
	}
}

// NewClientFromEnv creates a new OpenAI client using OPENAI_API_KEY environment variable
func NewClientFromEnv() (*Client, error) {
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		return nil, ErrNoAPIKey
	}
	return NewClient(apiKey), nil
}

// GenerateEmbedding generates an embedding for the given text
func (c *Client) GenerateEmbedding(ctx context.Context, text string) ([]float32, error) {
	if text == "" {
		return nil, ErrEmptyText
	}

	embeddings, err := c.GenerateEmbeddings(ctx, []string{text})
	if err != nil {
		return nil, err
	}
	return embeddings[0], nil
}

// GenerateEmbeddings generates embeddings for a batch of texts in one API call
func (c *Client) GenerateEmbeddings(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return nil, ErrEmptyBatch
	}

	embeddings, err := c.embeddings.CreateEmbeddings(ctx, texts)
	if err != nil {
		return nil, fmt.Errorf("failed to create embeddings: %w", err)
	}

	expected := c.dimensions
	if expected <= 0 {
		expected = DefaultEmbeddingDimensions
	}
	for _, embedding := range embeddings {
		if len(embedding) != expected {
			return nil, ErrWrongDimensions
		}
	}

	return embeddings, nil
}

// GenerateChatCompletion generates an assistant reply for the given messages
func (c *Client) GenerateChatCompletion(ctx context.Context, messages []ChatMessage, temperature float32) (string, error) {
	if len(messages) == 0 {
		return "", ErrEmptyBatch
	}

	reply, err := c.chat.CreateChatCompletion(ctx, messages, temperature)
	if err != nil {
		return "", fmt.Errorf("failed to create chat completion: %w", err)
	}
	return reply, nil
}
