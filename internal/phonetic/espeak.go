package phonetic

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// ESpeakSource reads IPA from the espeak-ng speech synthesizer
type ESpeakSource struct {
	voice   string
	command string
}

// NewESpeakSource creates a new espeak-ng backed source
func NewESpeakSource(config *Config) *ESpeakSource {
	voice := config.ESpeakVoice
	if voice == "" {
		voice = "en-gb"
	}
	command := config.ESpeakCommand
	if command == "" {
		command = "espeak-ng"
	}
	return &ESpeakSource{voice: voice, command: command}
}

// Transcribe returns the IPA for word as printed by espeak-ng --ipa
func (s *ESpeakSource) Transcribe(ctx context.Context, word string) (string, error) {
	if strings.TrimSpace(word) == "" {
		return "", fmt.Errorf("text cannot be empty")
	}

	cmd := exec.CommandContext(ctx, s.command, "-q", "--ipa", "-v", s.voice, word)
	output, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("espeak-ng failed: %w", err)
	}

	// espeak-ng prints one line per clause
	ipa := strings.Join(strings.Fields(string(output)), " ")
	if ipa == "" {
		return "", fmt.Errorf("empty transcription from espeak-ng")
	}
	return ipa, nil
}

// Name returns the source name
func (s *ESpeakSource) Name() string {
	return "espeak"
}

// IsAvailable verifies that espeak-ng is available on the system
func (s *ESpeakSource) IsAvailable() error {
	if err := exec.Command(s.command, "--version").Run(); err != nil {
		return fmt.Errorf("espeak-ng is not installed or not in PATH: %w", err)
	}
	return nil
}
