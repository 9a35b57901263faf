package cli

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/viper"

	"codeberg.org/snonux/htmltrans/internal/config"
)

// InitConfig initializes viper configuration
func InitConfig(cfgFile string) {
	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error getting home directory: %v\n", err)
			return
		}

		// Search config in home directory with name ".htmltrans" (without extension)
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".htmltrans")
	}

	// Environment variables, HTMLTRANS_TRANSLATION_MODEL maps to translation.model
	viper.SetEnvPrefix("HTMLTRANS")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// Read config file
	if err := viper.ReadInConfig(); err == nil {
		slog.Debug("using config file", "path", viper.ConfigFileUsed())
	}
}

// GetAPIKey retrieves the API key of a provider from environment or config
func GetAPIKey(provider string) string {
	switch provider {
	case config.ProviderOpenAI:
		if key := os.Getenv("OPENAI_API_KEY"); key != "" {
			return key
		}
		return viper.GetString("openai.api_key")
	default:
		for _, env := range []string{"GEMINI_API_KEY", "GOOGLE_API_KEY"} {
			if key := os.Getenv(env); key != "" {
				return key
			}
		}
		return viper.GetString("gemini.api_key")
	}
}

// BuildConfig merges flags, config file and environment into a Config.
// The result is not validated yet since some modes need no API key.
func BuildConfig(flags *Flags) (*config.Config, error) {
	cfg := config.Default()

	cfg.InputDir = viper.GetString("input.directory")
	cfg.OutputRoot = viper.GetString("output.directory")
	if cfg.OutputRoot == "" {
		cfg.OutputRoot = cfg.InputDir
	}
	cfg.DirPrefix = viper.GetString("output.prefix")
	cfg.Pattern = viper.GetString("corpus.pattern")
	cfg.Exclude = viper.GetStringSlice("corpus.exclude")
	cfg.JournalPath = viper.GetString("journal.path")

	cfg.Provider = strings.ToLower(viper.GetString("translation.provider"))
	cfg.Model = viper.GetString("translation.model")
	if cfg.Model == "" {
		cfg.Model = config.DefaultModel(cfg.Provider)
	}
	cfg.BaseURL = viper.GetString("translation.base_url")
	cfg.APIKey = GetAPIKey(cfg.Provider)
	cfg.Timeout = viper.GetDuration("translation.timeout")
	cfg.Delay = viper.GetDuration("translation.delay")
	cfg.RequestsPerMinute = viper.GetInt("translation.rpm")
	cfg.BreakerThreshold = viper.GetUint32("breaker.threshold")
	cfg.BreakerCooldown = viper.GetDuration("breaker.cooldown")

	cfg.DryRun = flags.DryRun
	cfg.Strict = flags.Strict

	langs, err := languages(flags.Languages)
	if err != nil {
		return nil, err
	}
	cfg.Languages = langs

	return cfg, nil
}

// languages resolves the target languages. Codes given on the command line
// win; otherwise the "languages" list of the config file is used in order,
// and the built-in table is the fallback.
func languages(codes []string) ([]config.Language, error) {
	known := config.DefaultLanguages()

	if viper.IsSet("languages") {
		var configured []config.Language
		if err := viper.UnmarshalKey("languages", &configured); err != nil {
			return nil, fmt.Errorf("invalid languages in config: %w", err)
		}
		for i, lang := range configured {
			if lang.Name == "" && lang.Code != "" {
				name, err := config.DisplayName(lang.Code)
				if err != nil {
					return nil, err
				}
				configured[i].Name = name
			}
		}
		if len(codes) == 0 {
			return configured, nil
		}
		known = append(known, configured...)
	}

	if len(codes) == 0 {
		return known, nil
	}
	return config.ResolveLanguages(codes, known)
}
