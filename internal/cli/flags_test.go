package cli

import (
	"reflect"
	"testing"
	"time"
)

func TestNewFlags(t *testing.T) {
	flags := NewFlags()

	// Test default values
	tests := []struct {
		name     string
		got      interface{}
		expected interface{}
	}{
		{"InputDir", flags.InputDir, "resources"},
		{"Prefix", flags.Prefix, "resources"},
		{"Pattern", flags.Pattern, "*.html"},
		{"Exclude", flags.Exclude, []string{"resource_template.html"}},
		{"Provider", flags.Provider, "gemini"},
		{"Timeout", flags.Timeout, 5 * time.Minute},
		{"Delay", flags.Delay, 3 * time.Second},
		{"BreakerThreshold", flags.BreakerThreshold, uint(5)},
		{"BreakerCooldown", flags.BreakerCooldown, time.Minute},
		{"LogLevel", flags.LogLevel, "info"},
		{"LogFormat", flags.LogFormat, "text"},
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
		{"DryRun", flags.DryRun},
		{"Strict", flags.Strict},
		{"Interactive", flags.Interactive},
		{"Archive", flags.Archive},
		{"ListModels", flags.ListModels},
		{"Failures", flags.Failures},
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
		{"FilesList", flags.FilesList},
		{"JournalPath", flags.JournalPath},
		{"Model", flags.Model},
		{"BaseURL", flags.BaseURL},
	}

	for _, tt := range stringTests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.value != "" {
				t.Errorf("%s = %v, want empty string", tt.name, tt.value)
			}
		})
	}

	if flags.Languages != nil {
		t.Errorf("Languages = %v, want nil", flags.Languages)
	}
}
