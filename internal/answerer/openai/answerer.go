// Package openai provides an answerer over the OpenAI chat completions API
// using the official SDK. Any OpenAI-compatible endpoint works via BaseURL.
package openai

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// Answerer generates answers using OpenAI chat completions.
type Answerer struct {
	client openai.Client
	model  string
}

// New creates a new OpenAI answerer.
func New(config Config) (*Answerer, error) {
	if config.APIKey == "" {
		return nil, errors.New("OpenAI API key is required")
	}

	opts := []option.RequestOption{
		option.WithAPIKey(config.APIKey),
	}
	if config.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(config.BaseURL))
	}
	if config.Timeout > 0 {
		opts = append(opts, option.WithRequestTimeout(time.Duration(config.Timeout)*time.Second))
	}
	if config.MaxRetries > 0 {
		opts = append(opts, option.WithMaxRetries(config.MaxRetries))
	}

	return &Answerer{
		client: openai.NewClient(opts...),
		model:  config.Model,
	}, nil
}

// Generate produces an answer for the question. Temperature is pinned to
// zero so repeated misses for the same question produce stable answers.
func (a *Answerer) Generate(ctx context.Context, question string) (string, error) {
	if question == "" {
		return "", errors.New("question cannot be empty")
	}

	//nolint:exhaustruct // OpenAI SDK struct has many optional fields
	resp, err := a.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(question),
		},
		Model:       openai.ChatModel(a.model),
		Temperature: openai.Float(0),
	})
	if err != nil {
		return "", fmt.Errorf("failed to create completion: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", errors.New("no completion choices returned")
	}

	return resp.Choices[0].Message.Content, nil
}

// Name returns the answerer identifier.
func (a *Answerer) Name() string {
	return "openai"
}
