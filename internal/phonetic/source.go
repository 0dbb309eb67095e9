package phonetic

import (
	"context"
	"fmt"
	"strings"
)

// Source produces an IPA transcription for a word
type Source interface {
	// Transcribe returns the IPA pronunciation of word
	Transcribe(ctx context.Context, word string) (string, error)

	// Name returns the source name
	Name() string

	// IsAvailable checks if the source is properly configured and available
	IsAvailable() error
}

// Config holds configuration for phonetic sources
type Config struct {
	Source string // "openai", "espeak" or "auto"

	// OpenAI settings
	OpenAIKey     string
	OpenAIModel   string
	OpenAIBaseURL string // empty for the public API

	// espeak-ng settings
	ESpeakVoice   string
	ESpeakCommand string
}

// DefaultConfig returns default configuration
func DefaultConfig() *Config {
	return &Config{
		Source:        "auto",
		OpenAIModel:   "gpt-4o-mini",
		ESpeakVoice:   "en-gb",
		ESpeakCommand: "espeak-ng",
	}
}

// NewSource creates the phonetic source selected by config.Source.
// "auto" uses OpenAI with espeak-ng as fallback when an API key is set,
// and espeak-ng alone otherwise.
func NewSource(config *Config) (Source, error) {
	if config == nil {
		config = DefaultConfig()
	}

	switch config.Source {
	case "openai":
		if config.OpenAIKey == "" {
			return nil, fmt.Errorf("OpenAI API key is required")
		}
		return NewOpenAISource(config), nil

	case "espeak":
		return NewESpeakSource(config), nil

	case "auto", "":
		espeak := NewESpeakSource(config)
		if config.OpenAIKey == "" {
			return espeak, nil
		}
		return NewSourceWithFallback(NewOpenAISource(config), espeak), nil

	default:
		return nil, fmt.Errorf("unknown phonetic source: %s", config.Source)
	}
}

// SourceWithFallback wraps a primary source with a fallback option
type SourceWithFallback struct {
	primary  Source
	fallback Source
}

// NewSourceWithFallback creates a source that falls back to secondary if primary fails
func NewSourceWithFallback(primary, fallback Source) Source {
	return &SourceWithFallback{
		primary:  primary,
		fallback: fallback,
	}
}

// Transcribe tries the primary source first, falls back to secondary on error
func (s *SourceWithFallback) Transcribe(ctx context.Context, word string) (string, error) {
	ipa, err := s.primary.Transcribe(ctx, word)
	if err != nil {
		fmt.Printf("Primary source (%s) failed: %v. Falling back to %s\n",
			s.primary.Name(), err, s.fallback.Name())
		return s.fallback.Transcribe(ctx, word)
	}
	return ipa, nil
}

// Name returns the source name
func (s *SourceWithFallback) Name() string {
	return fmt.Sprintf("%s (fallback: %s)", s.primary.Name(), s.fallback.Name())
}

// IsAvailable checks if at least one source is available
func (s *SourceWithFallback) IsAvailable() error {
	primaryErr := s.primary.IsAvailable()
	if primaryErr == nil {
		return nil
	}

	fallbackErr := s.fallback.IsAvailable()
	if fallbackErr == nil {
		return nil
	}

	return fmt.Errorf("both sources unavailable: primary=%v, fallback=%v",
		primaryErr, fallbackErr)
}

// CleanIPA reduces a transcription to the bare IPA: the first non-empty
// line, without surrounding slashes or brackets.
func CleanIPA(s string) string {
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		line = strings.Trim(line, "/[]")
		return strings.TrimSpace(line)
	}
	return ""
}
