package translation

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"
)

// OpenAIConfig holds settings for the OpenAI backend
type OpenAIConfig struct {
	APIKey  string
	Model   string
	BaseURL string // optional, for OpenAI compatible endpoints
	Timeout time.Duration
}

// OpenAIClient translates documents with OpenAI chat completions
type OpenAIClient struct {
	config *OpenAIConfig
	client *openai.Client
}

// NewOpenAIClient creates an OpenAI translation client
func NewOpenAIClient(config *OpenAIConfig) (*OpenAIClient, error) {
	if config.APIKey == "" {
		return nil, fmt.Errorf("OpenAI API key not found")
	}
	if config.Model == "" {
		return nil, fmt.Errorf("OpenAI model is required")
	}

	clientConfig := openai.DefaultConfig(config.APIKey)
	if config.BaseURL != "" {
		clientConfig.BaseURL = config.BaseURL
	}

	return &OpenAIClient{
		config: config,
		client: openai.NewClientWithConfig(clientConfig),
	}, nil
}

// Translate sends the document to OpenAI and returns the translated text
func (o *OpenAIClient) Translate(ctx context.Context, content, language string) (string, error) {
	if o.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, o.config.Timeout)
		defer cancel()
	}

	req := openai.ChatCompletionRequest{
		Model: o.config.Model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: BuildPrompt(content, language),
			},
		},
		Temperature: 0.2,
	}

	resp, err := o.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("OpenAI API error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", ErrEmptyResponse
	}
	text := CleanResponse(resp.Choices[0].Message.Content)
	if strings.TrimSpace(text) == "" {
		return "", ErrEmptyResponse
	}
	return text, nil
}

// Name returns the backend name
func (o *OpenAIClient) Name() string {
	return "openai/" + o.config.Model
}
