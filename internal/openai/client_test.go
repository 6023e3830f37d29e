package openai

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockEmbeddingAPI is a mock for the embedding API
type MockEmbeddingAPI struct {
	mock.Mock
}

func (m *MockEmbeddingAPI) CreateEmbeddings(ctx context.Context, texts []string) ([][]float32, error) {
	args := m.Called(ctx, texts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([][]float32), args.Error(1)
}

// MockChatAPI is a mock for the chat completion API
type MockChatAPI struct {
	mock.Mock
}

func (m *MockChatAPI) CreateChatCompletion(ctx context.Context, messages []ChatMessage, temperature float32) (string, error) {
	args := m.Called(ctx, messages, temperature)
	return args.String(0), args.Error(1)
}

func makeEmbedding(dims int) []float32 {
	embedding := make([]float32, dims)
	for i := range embedding {
		embedding[i] = float32(i) * 0.001
	}
	return embedding
}

func TestClient_GenerateEmbedding_Success(t *testing.T) {
	mockAPI := new(MockEmbeddingAPI)
	client := &Client{embeddings: mockAPI, dimensions: DefaultEmbeddingDimensions}

	ctx := context.Background()
	text := "TypeScript: expert level with 5 years of experience."
	expected := makeEmbedding(1536)

	mockAPI.On("CreateEmbeddings", ctx, []string{text}).Return([][]float32{expected}, nil)

	embedding, err := client.GenerateEmbedding(ctx, text)

	assert.NoError(t, err)
	assert.Len(t, embedding, 1536)
	assert.Equal(t, expected, embedding)
	mockAPI.AssertExpectations(t)
}

func TestClient_GenerateEmbedding_EmptyText(t *testing.T) {
	client := NewClient("")

	ctx := context.Background()
	embedding, err := client.GenerateEmbedding(ctx, "")

	assert.Error(t, err)
	assert.Nil(t, embedding)
	assert.Equal(t, ErrEmptyText, err)
}

func TestClient_GenerateEmbeddings_Batch(t *testing.T) {
	mockAPI := new(MockEmbeddingAPI)
	client := &Client{embeddings: mockAPI, dimensions: DefaultEmbeddingDimensions}

	ctx := context.Background()
	texts := []string{"first chunk", "second chunk", "third chunk"}
	expected := [][]float32{makeEmbedding(1536), makeEmbedding(1536), makeEmbedding(1536)}

	mockAPI.On("CreateEmbeddings", ctx, texts).Return(expected, nil)

	embeddings, err := client.GenerateEmbeddings(ctx, texts)

	assert.NoError(t, err)
	assert.Len(t, embeddings, 3)
	mockAPI.AssertExpectations(t)
}

func TestClient_GenerateEmbeddings_EmptyBatch(t *testing.T) {
	client := NewClient("")

	ctx := context.Background()
	embeddings, err := client.GenerateEmbeddings(ctx, nil)

	assert.Error(t, err)
	assert.Nil(t, embeddings)
	assert.Equal(t, ErrEmptyBatch, err)
}

func TestClient_GenerateEmbeddings_APIError(t *testing.T) {
	mockAPI := new(MockEmbeddingAPI)
	client := &Client{embeddings: mockAPI, dimensions: DefaultEmbeddingDimensions}

	ctx := context.Background()
	apiError := errors.New("rate limit exceeded")

	mockAPI.On("CreateEmbeddings", ctx, mock.Anything).Return(nil, apiError)

	embeddings, err := client.GenerateEmbeddings(ctx, []string{"text"})

	assert.Error(t, err)
	assert.Nil(t, embeddings)
	assert.Contains(t, err.Error(), "failed to create embeddings")
	assert.ErrorIs(t, err, apiError)
	mockAPI.AssertExpectations(t)
}

func TestClient_GenerateEmbeddings_WrongDimensions(t *testing.T) {
	mockAPI := new(MockEmbeddingAPI)
	client := &Client{embeddings: mockAPI, dimensions: DefaultEmbeddingDimensions}

	ctx := context.Background()
	mockAPI.On("CreateEmbeddings", ctx, mock.Anything).Return([][]float32{makeEmbedding(768)}, nil)

	embeddings, err := client.GenerateEmbeddings(ctx, []string{"text"})

	assert.Error(t, err)
	assert.Nil(t, embeddings)
	assert.Equal(t, ErrWrongDimensions, err)
	mockAPI.AssertExpectations(t)
}

func TestClient_GenerateChatCompletion_Success(t *testing.T) {
	mockChat := new(MockChatAPI)
	client := &Client{chat: mockChat, dimensions: DefaultEmbeddingDimensions}

	ctx := context.Background()
	messages := []ChatMessage{
		{Role: RoleSystem, Content: "You are an assistant."},
		{Role: RoleUser, Content: "Do you know TypeScript?"},
	}

	mockChat.On("CreateChatCompletion", ctx, messages, float32(0.7)).
		Return("Yes, I have five years of TypeScript experience.", nil)

	reply, err := client.GenerateChatCompletion(ctx, messages, 0.7)

	assert.NoError(t, err)
	assert.Contains(t, reply, "TypeScript")
	mockChat.AssertExpectations(t)
}

func TestClient_GenerateChatCompletion_NoMessages(t *testing.T) {
	client := NewClient("")

	reply, err := client.GenerateChatCompletion(context.Background(), nil, 0.7)

	assert.Error(t, err)
	assert.Empty(t, reply)
}
