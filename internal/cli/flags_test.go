package cli

import (
	"reflect"
	"testing"
)

func TestNewFlags(t *testing.T) {
	flags := NewFlags()

	// Test default values
	tests := []struct {
		name     string
		got      interface{}
		expected interface{}
	}{
		{"Source", flags.Source, "auto"},
		{"OpenAIModel", flags.OpenAIModel, "gpt-4o-mini"},
		{"ESpeakVoice", flags.ESpeakVoice, "en-gb"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !reflect.DeepEqual(tt.got, tt.expected) {
				t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.expected)
			}
		})
	}

	// Test boolean defaults (should be false)
	boolTests := []struct {
		name  string
		value bool
	}{
		{"Stdin", flags.Stdin},
		{"Explain", flags.Explain},
		{"Archive", flags.Archive},
		{"NoCache", flags.NoCache},
		{"ListCache", flags.ListCache},
		{"ListModels", flags.ListModels},
	}

	for _, tt := range boolTests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.value != false {
				t.Errorf("%s = %v, want false", tt.name, tt.value)
			}
		})
	}

	// Test string defaults (should be empty)
	stringTests := []struct {
		name  string
		value string
	}{
		{"CfgFile", flags.CfgFile},
		{"OutputDir", flags.OutputDir},
		{"BatchFile", flags.BatchFile},
		{"FixtureFile", flags.FixtureFile},
		{"Word", flags.Word},
		{"CachePath", flags.CachePath},
		{"Forget", flags.Forget},
	}

	for _, tt := range stringTests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.value != "" {
				t.Errorf("%s = %v, want empty string", tt.name, tt.value)
			}
		})
	}
}

func TestFlagsStructure(t *testing.T) {
	// Test that Flags struct has all expected fields
	flags := &Flags{}
	flagsType := reflect.TypeOf(*flags)

	expectedFields := []string{
		"CfgFile", "OutputDir", "BatchFile", "FixtureFile",
		"Stdin", "Explain", "Archive",
		"Word", "Source", "OpenAIModel", "ESpeakVoice", "ListModels",
		"CachePath", "NoCache", "ListCache", "Forget",
	}

	for _, fieldName := range expectedFields {
		t.Run("has_field_"+fieldName, func(t *testing.T) {
			if _, ok := flagsType.FieldByName(fieldName); !ok {
				t.Errorf("Flags struct missing field: %s", fieldName)
			}
		})
	}
}
