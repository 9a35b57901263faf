package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// ErrMissingCredential is returned when no API key is configured for the provider
var ErrMissingCredential = errors.New("missing API key")

// Language pairs a short code (used for the output directory) with a display name (used in the prompt)
type Language struct {
	Code string `mapstructure:"code"`
	Name string `mapstructure:"name"`
}

// Config holds everything a translation sweep needs
type Config struct {
	InputDir   string
	OutputRoot string
	DirPrefix  string
	Pattern    string
	Exclude    []string
	Languages  []Language

	// Translation client settings
	Provider string
	Model    string
	APIKey   string
	BaseURL  string
	Timeout  time.Duration

	// Throttle settings
	Delay             time.Duration
	RequestsPerMinute int

	// Circuit breaker settings, threshold 0 disables the breaker
	BreakerThreshold uint32
	BreakerCooldown  time.Duration

	JournalPath string
	DryRun      bool
	Strict      bool
}

// Supported provider names
const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"
)

// DefaultLanguages returns the built-in target language table in sweep order
func DefaultLanguages() []Language {
	return []Language{
		{Code: "es", Name: "Spanish"},
		{Code: "de", Name: "German"},
		{Code: "fr", Name: "French"},
		{Code: "pt", Name: "Portuguese"},
		{Code: "it", Name: "Italian"},
	}
}

// DefaultModel returns the default model for a provider
func DefaultModel(provider string) string {
	switch provider {
	case ProviderOpenAI:
		return "gpt-4o"
	default:
		return "gemini-2.0-flash-thinking-exp-01-21"
	}
}

// Default returns a Config with default values
func Default() *Config {
	return &Config{
		InputDir:         "resources",
		DirPrefix:        "resources",
		Pattern:          "*.html",
		Exclude:          []string{"resource_template.html"},
		Languages:        DefaultLanguages(),
		Provider:         ProviderGemini,
		Model:            DefaultModel(ProviderGemini),
		Timeout:          5 * time.Minute,
		Delay:            3 * time.Second,
		BreakerThreshold: 5,
		BreakerCooldown:  time.Minute,
	}
}

// Validate checks the configuration and fills derived defaults.
// A missing API key is reported as ErrMissingCredential unless the run is a dry run.
func (c *Config) Validate() error {
	if c.InputDir == "" {
		return fmt.Errorf("input directory is required")
	}
	if c.OutputRoot == "" {
		c.OutputRoot = c.InputDir
	}
	if c.DirPrefix == "" {
		return fmt.Errorf("output directory prefix is required")
	}
	if strings.ContainsAny(c.DirPrefix, `/\`) {
		return fmt.Errorf("output directory prefix must not contain path separators: %q", c.DirPrefix)
	}
	if c.Pattern == "" {
		c.Pattern = "*.html"
	}
	if len(c.Languages) == 0 {
		return fmt.Errorf("at least one target language is required")
	}
	seen := make(map[string]bool, len(c.Languages))
	for _, lang := range c.Languages {
		if lang.Code == "" || lang.Name == "" {
			return fmt.Errorf("language entries need a code and a name: %+v", lang)
		}
		if filepath.Base(lang.Code) != lang.Code {
			return fmt.Errorf("invalid language code %q", lang.Code)
		}
		if seen[lang.Code] {
			return fmt.Errorf("duplicate language code %q", lang.Code)
		}
		seen[lang.Code] = true
	}

	switch c.Provider {
	case ProviderGemini, ProviderOpenAI:
	default:
		return fmt.Errorf("unknown translation provider: %s", c.Provider)
	}
	if c.Model == "" {
		c.Model = DefaultModel(c.Provider)
	}
	if c.Delay < 0 {
		return fmt.Errorf("delay must not be negative: %s", c.Delay)
	}
	if c.RequestsPerMinute < 0 {
		return fmt.Errorf("requests per minute must not be negative: %d", c.RequestsPerMinute)
	}

	if c.APIKey == "" && !c.DryRun {
		return fmt.Errorf("%w for provider %s", ErrMissingCredential, c.Provider)
	}
	return nil
}

// ExcludeSet returns the exclusion list as a set for exact filename lookup
func (c *Config) ExcludeSet() map[string]struct{} {
	set := make(map[string]struct{}, len(c.Exclude))
	for _, name := range c.Exclude {
		set[name] = struct{}{}
	}
	return set
}

// ResolveLanguages turns a list of codes into Languages, in the given order.
// Names come from known when the code is listed there, otherwise from the
// English display name of the BCP 47 tag.
func ResolveLanguages(codes []string, known []Language) ([]Language, error) {
	names := make(map[string]string, len(known))
	for _, lang := range known {
		names[lang.Code] = lang.Name
	}

	langs := make([]Language, 0, len(codes))
	for _, code := range codes {
		code = strings.TrimSpace(code)
		if code == "" {
			continue
		}
		if name, ok := names[code]; ok && name != "" {
			langs = append(langs, Language{Code: code, Name: name})
			continue
		}
		name, err := DisplayName(code)
		if err != nil {
			return nil, err
		}
		langs = append(langs, Language{Code: code, Name: name})
	}
	return langs, nil
}

// DisplayName returns the English name for a language code such as "es" or "pt-BR"
func DisplayName(code string) (string, error) {
	tag, err := language.Parse(code)
	if err != nil {
		return "", fmt.Errorf("invalid language code %q: %w", code, err)
	}
	name := display.English.Tags().Name(tag)
	if name == "" {
		return "", fmt.Errorf("no display name for language code %q", code)
	}
	return name, nil
}
