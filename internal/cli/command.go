package cli

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"codeberg.org/snonux/htmltrans/internal"
)

// CreateRootCommand creates and configures the root cobra command
func CreateRootCommand(flags *Flags) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "htmltrans [document]",
		Short: "HTML document translator",
		Long: `htmltrans translates a directory of HTML documents into several
languages with a generative language model.

Every document is translated into every configured language. Translations
that already exist in the <prefix>_<code> directories are skipped, so an
interrupted run can simply be started again.

Examples:
  htmltrans                          # Translate the whole ./resources corpus
  htmltrans intro.html               # Translate a single document
  htmltrans --interactive            # Ask for a document on stdin
  htmltrans --lang es,de --dry-run   # Show what would be translated
  htmltrans --files batch.txt        # Translate the documents listed in a file
  htmltrans --journal j.db --failures  # Show what is still failing`,
		Args:    cobra.MaximumNArgs(1),
		Version: internal.Version,
	}

	// Set up flags
	setupFlags(rootCmd, flags)

	return rootCmd
}

func setupFlags(cmd *cobra.Command, flags *Flags) {
	// Global flags
	cmd.PersistentFlags().StringVar(&flags.CfgFile, "config", "", "config file (default is $HOME/.htmltrans.yaml)")
	cmd.PersistentFlags().StringVar(&flags.LogLevel, "log-level", flags.LogLevel, "Diagnostic log level: debug, info, warn, error")
	cmd.PersistentFlags().StringVar(&flags.LogFormat, "log-format", flags.LogFormat, "Diagnostic log format: text or json")

	// Corpus and output flags
	cmd.Flags().StringVarP(&flags.InputDir, "input", "i", flags.InputDir, "Directory holding the source documents")
	cmd.Flags().StringVarP(&flags.OutputDir, "output", "o", "", "Directory receiving the language directories (default is the input directory)")
	cmd.Flags().StringVar(&flags.Prefix, "prefix", flags.Prefix, "Prefix of the language directory names (<prefix>_<code>)")
	cmd.Flags().StringVar(&flags.Pattern, "pattern", flags.Pattern, "Filename pattern of source documents")
	cmd.Flags().StringSliceVar(&flags.Exclude, "exclude", flags.Exclude, "Filenames that are never translated")
	cmd.Flags().StringSliceVarP(&flags.Languages, "lang", "l", nil, "Target language codes, e.g. es,de (default from config or es,de,fr,pt,it)")
	cmd.Flags().StringVar(&flags.FilesList, "files", "", "Translate only the documents listed in file (one per line)")
	cmd.Flags().StringVar(&flags.JournalPath, "journal", "", "SQLite journal recording every task outcome")
	cmd.Flags().BoolVar(&flags.DryRun, "dry-run", false, "Show which translations would run without calling the model")
	cmd.Flags().BoolVar(&flags.Strict, "strict", false, "Exit with status 1 when any translation failed")
	cmd.Flags().BoolVar(&flags.Interactive, "interactive", false, "Prompt for a single document to translate")
	cmd.Flags().BoolVar(&flags.Archive, "archive", false, "Move existing language directories to <output>/archive and exit")
	cmd.Flags().BoolVar(&flags.Failures, "failures", false, "Report translations whose latest journal entry failed and exit")
	cmd.Flags().BoolVar(&flags.ListModels, "list-models", false, "List available models for the current provider and API key")

	// Translation flags
	cmd.Flags().StringVar(&flags.Provider, "provider", flags.Provider, "Translation provider: gemini or openai")
	cmd.Flags().StringVarP(&flags.Model, "model", "m", "", "Model name (default depends on the provider)")
	cmd.Flags().StringVar(&flags.BaseURL, "base-url", "", "Override the provider API endpoint")
	cmd.Flags().DurationVar(&flags.Timeout, "timeout", flags.Timeout, "Timeout of a single translation request")
	cmd.Flags().DurationVar(&flags.Delay, "delay", flags.Delay, "Pause between consecutive translation requests")
	cmd.Flags().IntVar(&flags.RPM, "rpm", 0, "Maximum translation requests per minute (0 for no limit)")

	// Circuit breaker flags
	cmd.Flags().UintVar(&flags.BreakerThreshold, "breaker-threshold", flags.BreakerThreshold, "Consecutive failures that open the circuit breaker (0 disables it)")
	cmd.Flags().DurationVar(&flags.BreakerCooldown, "breaker-cooldown", flags.BreakerCooldown, "Time the circuit breaker stays open")

	// Bind flags to viper
	bindFlagsToViper(cmd)
}

func bindFlagsToViper(cmd *cobra.Command) {
	viper.BindPFlag("log.level", cmd.PersistentFlags().Lookup("log-level"))
	viper.BindPFlag("log.format", cmd.PersistentFlags().Lookup("log-format"))
	viper.BindPFlag("input.directory", cmd.Flags().Lookup("input"))
	viper.BindPFlag("output.directory", cmd.Flags().Lookup("output"))
	viper.BindPFlag("output.prefix", cmd.Flags().Lookup("prefix"))
	viper.BindPFlag("corpus.pattern", cmd.Flags().Lookup("pattern"))
	viper.BindPFlag("corpus.exclude", cmd.Flags().Lookup("exclude"))
	viper.BindPFlag("journal.path", cmd.Flags().Lookup("journal"))
	viper.BindPFlag("translation.provider", cmd.Flags().Lookup("provider"))
	viper.BindPFlag("translation.model", cmd.Flags().Lookup("model"))
	viper.BindPFlag("translation.base_url", cmd.Flags().Lookup("base-url"))
	viper.BindPFlag("translation.timeout", cmd.Flags().Lookup("timeout"))
	viper.BindPFlag("translation.delay", cmd.Flags().Lookup("delay"))
	viper.BindPFlag("translation.rpm", cmd.Flags().Lookup("rpm"))
	viper.BindPFlag("breaker.threshold", cmd.Flags().Lookup("breaker-threshold"))
	viper.BindPFlag("breaker.cooldown", cmd.Flags().Lookup("breaker-cooldown"))
}
