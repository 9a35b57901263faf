package models

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/sashabaranov/go-openai"
	"google.golang.org/genai"

	"codeberg.org/snonux/htmltrans/internal/config"
)

// Source returns the model identifiers usable for translation
type Source interface {
	Models(ctx context.Context) ([]string, error)
}

// Lister prints the models of one provider
type Lister struct {
	provider string
	source   Source
}

// NewLister creates a lister for the configured provider
func NewLister(cfg *config.Config) (*Lister, error) {
	switch cfg.Provider {
	case config.ProviderGemini:
		if cfg.APIKey == "" {
			return nil, fmt.Errorf("Gemini API key not found. Set GEMINI_API_KEY environment variable or configure in .htmltrans.yaml")
		}
		return &Lister{provider: cfg.Provider, source: &geminiSource{apiKey: cfg.APIKey, baseURL: cfg.BaseURL}}, nil
	case config.ProviderOpenAI:
		if cfg.APIKey == "" {
			return nil, fmt.Errorf("OpenAI API key not found. Set OPENAI_API_KEY environment variable or configure in .htmltrans.yaml")
		}
		return &Lister{provider: cfg.Provider, source: &openaiSource{apiKey: cfg.APIKey, baseURL: cfg.BaseURL}}, nil
	default:
		return nil, fmt.Errorf("unknown provider %q", cfg.Provider)
	}
}

// NewListerWithSource creates a lister backed by an arbitrary source
func NewListerWithSource(provider string, source Source) *Lister {
	return &Lister{provider: provider, source: source}
}

// ListAvailableModels writes the sorted model list to w
func (l *Lister) ListAvailableModels(ctx context.Context, w io.Writer) error {
	ids, err := l.source.Models(ctx)
	if err != nil {
		return fmt.Errorf("failed to list models: %w", err)
	}
	sort.Strings(ids)

	fmt.Fprintf(w, "Available %s models for translation:\n", l.provider)
	if len(ids) == 0 {
		fmt.Fprintln(w, "  No models found")
		return nil
	}
	for _, id := range ids {
		fmt.Fprintf(w, "  %s\n", id)
	}
	return nil
}

type geminiSource struct {
	apiKey  string
	baseURL string
}

func (s *geminiSource) Models(ctx context.Context) ([]string, error) {
	clientConfig := &genai.ClientConfig{
		APIKey:  s.apiKey,
		Backend: genai.BackendGeminiAPI,
	}
	if s.baseURL != "" {
		clientConfig.HTTPOptions = genai.HTTPOptions{BaseURL: s.baseURL}
	}

	client, err := genai.NewClient(ctx, clientConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	var ids []string
	for model, err := range client.Models.All(ctx) {
		if err != nil {
			return nil, err
		}
		if !supportsGenerate(model.SupportedActions) {
			continue
		}
		ids = append(ids, strings.TrimPrefix(model.Name, "models/"))
	}
	return ids, nil
}

func supportsGenerate(actions []string) bool {
	for _, action := range actions {
		if action == "generateContent" {
			return true
		}
	}
	return false
}

type openaiSource struct {
	apiKey  string
	baseURL string
}

func (s *openaiSource) Models(ctx context.Context) ([]string, error) {
	clientConfig := openai.DefaultConfig(s.apiKey)
	if s.baseURL != "" {
		clientConfig.BaseURL = s.baseURL
	}
	client := openai.NewClientWithConfig(clientConfig)

	list, err := client.ListModels(ctx)
	if err != nil {
		return nil, err
	}

	var ids []string
	for _, model := range list.Models {
		if isChatModel(model.ID) {
			ids = append(ids, model.ID)
		}
	}
	return ids, nil
}

// isChatModel filters out speech, image and embedding models
func isChatModel(id string) bool {
	for _, skip := range []string{"tts", "audio", "dall-e", "embedding", "whisper", "realtime", "transcribe"} {
		if strings.Contains(id, skip) {
			return false
		}
	}
	return strings.Contains(id, "gpt") || strings.HasPrefix(id, "o1") || strings.HasPrefix(id, "o3") || strings.HasPrefix(id, "o4")
}
