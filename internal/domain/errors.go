package domain

import "fmt"

// DomainError represents a domain-specific error
type DomainError struct {
	Code    string
	Message string
	Err     error
}

// Error implements the error interface
func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying error
func (e *DomainError) Unwrap() error {
	return e.Err
}

// NewDomainError creates a new DomainError
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Err:     nil,
	}
}

// NewDomainErrorWithCause creates a new DomainError with an underlying cause
func NewDomainErrorWithCause(code, message string, err error) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Common domain error codes
const (
	ErrCodeInvalidInput     = "INVALID_INPUT"
	ErrCodeEmbeddingFailed  = "EMBEDDING_FAILED"
	ErrCodeStoreUnavailable = "STORE_UNAVAILABLE"
	ErrCodeRetrievalFailed  = "RETRIEVAL_FAILED"
	ErrCodeUnauthorized     = "UNAUTHORIZED"
	ErrCodeInternalError    = "INTERNAL_ERROR"
)

// Input validation errors
var (
	ErrEmptyBatch        = NewDomainError(ErrCodeInvalidInput, "batch must contain at least one text")
	ErrInvalidTopK       = NewDomainError(ErrCodeInvalidInput, "topK must be positive")
	ErrDimensionMismatch = NewDomainError(ErrCodeInvalidInput, "embedding dimensions do not match")
	ErrEmptyText         = NewDomainError(ErrCodeInvalidInput, "text cannot be empty")
)

// EmbeddingFailed wraps an upstream embedding error in a typed domain error.
func EmbeddingFailed(err error) *DomainError {
	return NewDomainErrorWithCause(ErrCodeEmbeddingFailed, "embedding generation failed", err)
}

// StoreUnavailable wraps a persistence error in a typed domain error.
func StoreUnavailable(err error) *DomainError {
	return NewDomainErrorWithCause(ErrCodeStoreUnavailable, "vector store unavailable", err)
}

// RetrievalFailed wraps any component failure observed during retrieval.
func RetrievalFailed(err error) *DomainError {
	return NewDomainErrorWithCause(ErrCodeRetrievalFailed, "retrieval failed", err)
}
