package profile

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/solenne-labs/profilechat/internal/domain"
)

// Source loads the profile document from wherever it lives.
type Source interface {
	Load(ctx context.Context) (*domain.Profile, error)
}

// Parse decodes a profile JSON document.
func Parse(data []byte) (*domain.Profile, error) {
	var p domain.Profile
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, domain.NewDomainErrorWithCause(domain.ErrCodeInvalidInput, "failed to parse profile document", err)
	}
	return &p, nil
}

// FileSource reads the profile from a local JSON file.
type FileSource struct {
	path string
}

func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

func (s *FileSource) Load(ctx context.Context) (*domain.Profile, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read profile file: %w", err)
	}
	return Parse(data)
}

// Path returns the file path being watched and loaded.
func (s *FileSource) Path() string {
	return s.path
}

// ObjectStore is the subset of the storage client the S3 source needs.
type ObjectStore interface {
	GetObject(ctx context.Context, key string) ([]byte, error)
}

// S3Source reads the profile from an object store.
type S3Source struct {
	store ObjectStore
	key   string
}

func NewS3Source(store ObjectStore, key string) *S3Source {
	return &S3Source{store: store, key: key}
}

func (s *S3Source) Load(ctx context.Context) (*domain.Profile, error) {
	data, err := s.store.GetObject(ctx, s.key)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch profile object: %w", err)
	}
	return Parse(data)
}
