package phonetic

import (
	"context"
	"fmt"
	"time"

	"github.com/sashabaranov/go-openai"
	"github.com/sony/gobreaker"
)

// OpenAISource asks an OpenAI chat model for British IPA transcriptions.
// Calls go through a circuit breaker so a failing API is not hammered
// during batch lookups.
type OpenAISource struct {
	apiKey  string
	model   string
	client  *openai.Client
	breaker *gobreaker.CircuitBreaker
}

// NewOpenAISource creates a new OpenAI backed source
func NewOpenAISource(config *Config) *OpenAISource {
	clientConfig := openai.DefaultConfig(config.OpenAIKey)
	if config.OpenAIBaseURL != "" {
		clientConfig.BaseURL = config.OpenAIBaseURL
	}

	model := config.OpenAIModel
	if model == "" {
		model = openai.GPT4oMini
	}

	return &OpenAISource{
		apiKey: config.OpenAIKey,
		model:  model,
		client: openai.NewClientWithConfig(clientConfig),
		breaker: gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:    "openai-phonetic",
			Timeout: 30 * time.Second,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures >= 3
			},
		}),
	}
}

// Transcribe returns the IPA for word
func (s *OpenAISource) Transcribe(ctx context.Context, word string) (string, error) {
	if s.apiKey == "" {
		return "", fmt.Errorf("OpenAI API key not configured")
	}

	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	result, err := s.breaker.Execute(func() (interface{}, error) {
		return s.complete(ctx, word)
	})
	if err != nil {
		return "", err
	}

	return result.(string), nil
}

func (s *OpenAISource) complete(ctx context.Context, word string) (string, error) {
	req := openai.ChatCompletionRequest{
		Model: s.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: "You are a pronunciation dictionary. Reply with the British English IPA transcription of the given word or phrase, including stress marks and length marks, as found in the Oxford English Dictionary. Reply with the transcription only, no slashes, no explanation.",
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: word,
			},
		},
		Temperature: 0,
		MaxTokens:   50,
	}

	resp, err := s.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("OpenAI API error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no response from OpenAI")
	}

	ipa := CleanIPA(resp.Choices[0].Message.Content)
	if ipa == "" {
		return "", fmt.Errorf("empty transcription from OpenAI")
	}
	return ipa, nil
}

// Name returns the source name
func (s *OpenAISource) Name() string {
	return "openai"
}

// IsAvailable checks that an API key is configured and the breaker is closed
func (s *OpenAISource) IsAvailable() error {
	if s.apiKey == "" {
		return fmt.Errorf("OpenAI API key not configured")
	}
	if s.breaker.State() == gobreaker.StateOpen {
		return fmt.Errorf("OpenAI circuit breaker is open")
	}
	return nil
}
