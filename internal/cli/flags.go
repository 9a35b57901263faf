package cli

import "time"

// Flags holds all command-line flag values
type Flags struct {
	// General flags
	CfgFile     string
	InputDir    string
	OutputDir   string
	Prefix      string
	Pattern     string
	Exclude     []string
	Languages   []string
	FilesList   string
	JournalPath string
	DryRun      bool
	Strict      bool
	Interactive bool
	Archive     bool
	ListModels  bool
	Failures    bool

	// Translation flags
	Provider string
	Model    string
	BaseURL  string
	Timeout  time.Duration
	Delay    time.Duration
	RPM      int

	// Circuit breaker flags
	BreakerThreshold uint
	BreakerCooldown  time.Duration

	// Logging flags
	LogLevel  string
	LogFormat string
}

// NewFlags creates a new Flags instance with default values
func NewFlags() *Flags {
	return &Flags{
		InputDir:         "resources",
		Prefix:           "resources",
		Pattern:          "*.html",
		Exclude:          []string{"resource_template.html"},
		Provider:         "gemini",
		Timeout:          5 * time.Minute,
		Delay:            3 * time.Second,
		BreakerThreshold: 5,
		BreakerCooldown:  time.Minute,
		LogLevel:         "info",
		LogFormat:        "text",
	}
}
