// Package openai adapts the OpenAI chat completion API to the engine's
// text generation capability.
package openai

import (
	"context"
	"fmt"
	"time"

	"github.com/sashabaranov/go-openai"
)

// Client wraps the OpenAI client behind the engine's TextGenerator
// contract: one prompt in, raw text out, or a failure the node layer
// degrades from.
type Client struct {
	client         *openai.Client
	model          string
	maxTokens      int
	temperature    float32
	requestTimeout time.Duration
}

// Config holds client settings. Zero values fall back to defaults
// suitable for short joke/explanation completions.
type Config struct {
	APIKey         string
	Model          string
	MaxTokens      int
	Temperature    float32
	RequestTimeout time.Duration
}

// NewClient creates a new OpenAI client wrapper.
func NewClient(config Config) *Client {
	if config.Model == "" {
		config.Model = openai.GPT4oMini
	}
	if config.MaxTokens == 0 {
		config.MaxTokens = 512
	}
	if config.Temperature == 0 {
		config.Temperature = 0.9
	}
	if config.RequestTimeout == 0 {
		config.RequestTimeout = 30 * time.Second
	}
	return &Client{
		client:         openai.NewClient(config.APIKey),
		model:          config.Model,
		maxTokens:      config.MaxTokens,
		temperature:    config.Temperature,
		requestTimeout: config.RequestTimeout,
	}
}

// Complete sends the prompt as a single user message and returns the
// raw completion text.
func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.requestTimeout)
	defer cancel()

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.model,
		MaxTokens:   c.maxTokens,
		Temperature: c.temperature,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to create chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no choices returned from API")
	}
	return resp.Choices[0].Message.Content, nil
}
