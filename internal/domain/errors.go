package domain

import "errors"

// Classified failures surfaced across module boundaries. Callers branch on
// these with errors.Is to distinguish retryable collaborator failures from
// cache corruption.
var (
	// ErrInvalidQuestion indicates a blank or whitespace-only question.
	ErrInvalidQuestion = errors.New("question cannot be empty")

	// ErrDimensionMismatch indicates an embedding whose length disagrees
	// with the index's configured dimensionality.
	ErrDimensionMismatch = errors.New("embedding dimension mismatch")

	// ErrDuplicateID indicates an id collision on insert. This should not
	// occur under UUID generation and is treated as a programming error.
	ErrDuplicateID = errors.New("duplicate record id")

	// ErrNotFound indicates the requested record id is absent.
	ErrNotFound = errors.New("record not found")

	// ErrEmbedding indicates the embedding collaborator failed. Not
	// retried here; retry policy belongs to the caller.
	ErrEmbedding = errors.New("embedding generation failed")

	// ErrAnswerGeneration indicates the answering collaborator failed.
	ErrAnswerGeneration = errors.New("answer generation failed")

	// ErrStorage indicates an I/O failure in the cache store or vector
	// index.
	ErrStorage = errors.New("storage failure")
)
