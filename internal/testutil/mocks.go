package testutil

import (
	"context"
	"fmt"
)

// MockSource mocks a phonetic source
type MockSource struct {
	SourceName     string
	Transcriptions map[string]string
	Errors         map[string]error
	Unavailable    error
	Calls          []string
}

// Transcribe mocks looking up the IPA of a word
func (m *MockSource) Transcribe(ctx context.Context, word string) (string, error) {
	m.Calls = append(m.Calls, fmt.Sprintf("Transcribe: %s", word))

	if err, ok := m.Errors[word]; ok {
		return "", err
	}

	if ipa, ok := m.Transcriptions[word]; ok {
		return ipa, nil
	}

	return "", fmt.Errorf("no transcription for %s", word)
}

// Name returns the mock source name
func (m *MockSource) Name() string {
	if m.SourceName == "" {
		return "mock"
	}
	return m.SourceName
}

// IsAvailable returns the configured availability error
func (m *MockSource) IsAvailable() error {
	return m.Unavailable
}
