//go:build mage

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const binary = "saypyu"

var Default = Build

// Build compiles the saypyu binary
func Build() error {
	return sh.RunV("go", "build", "-o", binary, "./cmd/saypyu")
}

// Test runs all unit tests
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// Fixture builds saypyu and runs the bundled transliteration fixture
func Fixture() error {
	mg.Deps(Build)
	return sh.RunV("./"+binary, "--fixture", filepath.Join("internal", "fixture", "testdata", "ipa_to_saypyu.test"))
}

// Install copies the binary to ~/go/bin
func Install() error {
	mg.Deps(Build)

	home, err := os.UserHomeDir()
	if err != nil {
		return err
	}
	binDir := filepath.Join(home, "go", "bin")
	if err := os.MkdirAll(binDir, 0755); err != nil {
		return fmt.Errorf("failed to create %s: %w", binDir, err)
	}
	return sh.Copy(filepath.Join(binDir, binary), binary)
}

// Clean removes build artifacts
func Clean() error {
	return sh.Rm(binary)
}
