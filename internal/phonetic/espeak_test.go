package phonetic

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strconv"
	"testing"
)

// fakeESpeak writes a shell script that prints output and returns its path
func fakeESpeak(t *testing.T, output string, exitCode int) string {
	t.Helper()

	if runtime.GOOS == "windows" {
		t.Skip("shell script fake needs a POSIX shell")
	}

	path := filepath.Join(t.TempDir(), "espeak-ng")
	script := "#!/bin/sh\nprintf '%s' '" + output + "'\nexit " + strconv.Itoa(exitCode) + "\n"
	if err := os.WriteFile(path, []byte(script), 0755); err != nil {
		t.Fatalf("Failed to write fake espeak-ng: %v", err)
	}
	return path
}

func TestNewESpeakSource_Defaults(t *testing.T) {
	source := NewESpeakSource(&Config{})

	if source.voice != "en-gb" {
		t.Errorf("Expected voice 'en-gb', got '%s'", source.voice)
	}
	if source.command != "espeak-ng" {
		t.Errorf("Expected command 'espeak-ng', got '%s'", source.command)
	}
	if source.Name() != "espeak" {
		t.Errorf("Expected name 'espeak', got '%s'", source.Name())
	}
}

func TestESpeakSource_Transcribe(t *testing.T) {
	command := fakeESpeak(t, " həlˈəʊ\n wˈɜːld\n", 0)
	source := NewESpeakSource(&Config{ESpeakCommand: command})

	ipa, err := source.Transcribe(context.Background(), "hello world")
	if err != nil {
		t.Fatalf("Transcribe() error: %v", err)
	}
	if ipa != "həlˈəʊ wˈɜːld" {
		t.Errorf("Transcribe() = %q, want %q", ipa, "həlˈəʊ wˈɜːld")
	}
	if err := source.IsAvailable(); err != nil {
		t.Errorf("IsAvailable() error: %v", err)
	}
}

func TestESpeakSource_Errors(t *testing.T) {
	tests := []struct {
		name   string
		output string
		exit   int
		word   string
	}{
		{"empty word", "x", 0, "  "},
		{"command fails", "x", 1, "hello"},
		{"empty output", "", 0, "hello"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			source := NewESpeakSource(&Config{ESpeakCommand: fakeESpeak(t, tt.output, tt.exit)})
			if _, err := source.Transcribe(context.Background(), tt.word); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestESpeakSource_NotInstalled(t *testing.T) {
	source := NewESpeakSource(&Config{ESpeakCommand: filepath.Join(t.TempDir(), "missing")})

	if err := source.IsAvailable(); err == nil {
		t.Error("IsAvailable() should fail for a missing binary")
	}
	if _, err := source.Transcribe(context.Background(), "hello"); err == nil {
		t.Error("Transcribe() should fail for a missing binary")
	}
}

func TestESpeakSource_Integration(t *testing.T) {
	if _, err := exec.LookPath("espeak-ng"); err != nil {
		t.Skip("Skipping integration test: espeak-ng not installed")
	}

	source := NewESpeakSource(DefaultConfig())

	ipa, err := source.Transcribe(context.Background(), "crustacean")
	if err != nil {
		t.Fatalf("Transcribe failed: %v", err)
	}
	if ipa == "" {
		t.Error("Got empty transcription")
	}

	t.Logf("espeak-ng IPA for 'crustacean': %s", ipa)
}
