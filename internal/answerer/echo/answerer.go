// Package echo provides an answerer that restates the question instead of
// calling an external model. It is deterministic and runs entirely
// in-memory, which makes it useful for development and tests.
package echo

import (
	"context"
	"errors"
	"fmt"
)

const answererName = "echo"

// Answerer implements the domain.Answerer interface for offline use.
type Answerer struct{}

// New creates a new echo answerer. No configuration is required.
func New() *Answerer {
	return &Answerer{}
}

// Generate returns a canned answer built from the question.
func (a *Answerer) Generate(_ context.Context, question string) (string, error) {
	if question == "" {
		return "", errors.New("question cannot be empty")
	}
	return fmt.Sprintf("[echo] You asked: %s", question), nil
}

// Name returns the answerer identifier.
func (a *Answerer) Name() string {
	return answererName
}
