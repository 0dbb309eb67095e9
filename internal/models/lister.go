package models

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/sashabaranov/go-openai"
)

// Lister handles listing available OpenAI models
type Lister struct {
	apiKey string
	client *openai.Client
}

// NewLister creates a new model lister. baseURL may be empty for the
// public API.
func NewLister(apiKey, baseURL string) *Lister {
	config := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		config.BaseURL = baseURL
	}
	return &Lister{
		apiKey: apiKey,
		client: openai.NewClientWithConfig(config),
	}
}

// ChatModels returns the sorted IDs of all models that can answer chat
// completions
func (l *Lister) ChatModels(ctx context.Context) ([]string, error) {
	if l.apiKey == "" {
		return nil, fmt.Errorf("OpenAI API key not found. Set OPENAI_API_KEY environment variable or configure in .saypyu.yaml")
	}

	models, err := l.client.ListModels(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list models: %w", err)
	}

	var chatModels []string
	for _, model := range models.Models {
		if isChatModel(model.ID) {
			chatModels = append(chatModels, model.ID)
		}
	}
	sort.Strings(chatModels)

	return chatModels, nil
}

// ListAvailableModels writes the chat models to w, marking current
func (l *Lister) ListAvailableModels(ctx context.Context, w io.Writer, current string) error {
	chatModels, err := l.ChatModels(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintln(w, "Chat models usable for IPA lookups:")
	if len(chatModels) == 0 {
		fmt.Fprintln(w, "  No chat models found")
		return nil
	}

	for _, model := range chatModels {
		if model == current {
			fmt.Fprintf(w, "  %s (current)\n", model)
		} else {
			fmt.Fprintf(w, "  %s\n", model)
		}
	}

	return nil
}

func isChatModel(id string) bool {
	// Speech, transcription and image variants share the gpt prefix
	for _, skip := range []string{"tts", "audio", "realtime", "transcribe", "image", "search"} {
		if strings.Contains(id, skip) {
			return false
		}
	}
	return strings.HasPrefix(id, "gpt") || strings.Contains(id, "chat") ||
		strings.HasPrefix(id, "o1") || strings.HasPrefix(id, "o3") || strings.HasPrefix(id, "o4")
}
