package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"codeberg.org/snonux/htmltrans/internal"
	"codeberg.org/snonux/htmltrans/internal/archive"
	"codeberg.org/snonux/htmltrans/internal/batch"
	"codeberg.org/snonux/htmltrans/internal/config"
	"codeberg.org/snonux/htmltrans/internal/corpus"
	"codeberg.org/snonux/htmltrans/internal/journal"
	"codeberg.org/snonux/htmltrans/internal/models"
	"codeberg.org/snonux/htmltrans/internal/output"
	"codeberg.org/snonux/htmltrans/internal/processor"
	"codeberg.org/snonux/htmltrans/internal/throttle"
	"codeberg.org/snonux/htmltrans/internal/translation"
)

var (
	// ErrTasksFailed is returned in strict mode when any task failed
	ErrTasksFailed = errors.New("some translations failed")
	// ErrInterrupted is returned when the sweep was cancelled
	ErrInterrupted = errors.New("interrupted")
)

// Runner executes one invocation of the command
type Runner struct {
	Flags *Flags
	In    io.Reader
	Out   io.Writer

	// NewClient builds the translation client, translation.NewClient by default
	NewClient func(ctx context.Context, cfg *config.Config) (translation.Client, error)
}

// Run dispatches to the mode selected by flags and arguments
func (r *Runner) Run(ctx context.Context, args []string) error {
	cfg, err := BuildConfig(r.Flags)
	if err != nil {
		return err
	}

	if r.Flags.Archive {
		return r.archive(cfg)
	}

	if r.Flags.Failures {
		return r.failures(cfg)
	}

	if r.Flags.ListModels {
		lister, err := models.NewLister(cfg)
		if err != nil {
			return err
		}
		return lister.ListAvailableModels(ctx, r.Out)
	}

	if err := cfg.Validate(); err != nil {
		if errors.Is(err, config.ErrMissingCredential) {
			return fmt.Errorf("%w. %s", err, credentialHint(cfg.Provider))
		}
		return err
	}

	scanner, err := corpus.NewScanner(cfg.InputDir, cfg.Pattern, cfg.ExcludeSet())
	if err != nil {
		return err
	}

	names, ok, err := r.selection(scanner, args)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(r.Out, "No suitable HTML files found")
		return nil
	}

	opts := processor.Options{
		Languages: cfg.Languages,
		Corpus:    scanner,
		Outputs:   output.NewLocator(cfg.OutputRoot, cfg.DirPrefix),
		Gate:      throttle.New(cfg.Delay, cfg.RequestsPerMinute),
		Out:       r.Out,
		DryRun:    cfg.DryRun,
	}

	// A dry run never calls the model, so it works without credentials
	if !cfg.DryRun {
		newClient := r.NewClient
		if newClient == nil {
			newClient = translation.NewClient
		}
		client, err := newClient(ctx, cfg)
		if err != nil {
			return err
		}
		opts.Client = client
	}

	if cfg.JournalPath != "" {
		j, err := journal.Open(cfg.JournalPath, internal.GenerateRunID(cfg.InputDir))
		if err != nil {
			return err
		}
		defer j.Close()
		opts.Recorder = j
	}

	proc := processor.New(opts)

	var summary *processor.Summary
	if names == nil {
		summary, err = proc.Run(ctx)
	} else {
		summary, err = proc.RunSelected(ctx, names)
	}
	if err != nil {
		return err
	}

	processor.PrintSummary(r.Out, summary)

	if summary.Interrupted {
		return ErrInterrupted
	}
	if cfg.Strict && summary.Failed() > 0 {
		return fmt.Errorf("%w: %d of %d", ErrTasksFailed, summary.Failed(), len(summary.Results))
	}
	return nil
}

// selection returns the documents to translate. A nil slice means the whole
// corpus. ok is false when interactive selection found no document at all.
func (r *Runner) selection(scanner *corpus.Scanner, args []string) (names []string, ok bool, err error) {
	switch {
	case len(args) > 0:
		if err := scanner.Lookup(args[0]); err != nil {
			return nil, false, err
		}
		return []string{args[0]}, true, nil

	case r.Flags.Interactive:
		return r.prompt(scanner)

	case r.Flags.FilesList != "":
		names, err := batch.ReadDocumentList(r.Flags.FilesList)
		if err != nil {
			return nil, false, err
		}
		return names, true, nil
	}
	return nil, true, nil
}

func (r *Runner) prompt(scanner *corpus.Scanner) ([]string, bool, error) {
	first, found, err := scanner.First()
	if err != nil {
		return nil, false, err
	}
	if !found {
		return nil, false, nil
	}

	fmt.Fprintf(r.Out, "Enter filename (or press Enter for %s): ", first)
	line, err := bufio.NewReader(r.In).ReadString('\n')
	if err != nil && err != io.EOF {
		return nil, false, fmt.Errorf("failed to read filename: %w", err)
	}

	name := strings.TrimSpace(line)
	if name == "" {
		return []string{first}, true, nil
	}
	if err := scanner.Lookup(name); err != nil {
		return nil, false, err
	}
	return []string{name}, true, nil
}

func (r *Runner) archive(cfg *config.Config) error {
	codes := make([]string, 0, len(cfg.Languages))
	for _, lang := range cfg.Languages {
		codes = append(codes, lang.Code)
	}

	archived, err := archive.ArchiveLanguageDirs(r.Out, cfg.OutputRoot, cfg.DirPrefix, codes)
	if err != nil {
		return fmt.Errorf("failed to archive language directories: %w", err)
	}
	if len(archived) == 0 {
		fmt.Fprintln(r.Out, "Nothing to archive")
	}
	return nil
}

func (r *Runner) failures(cfg *config.Config) error {
	if cfg.JournalPath == "" {
		return fmt.Errorf("--failures needs a journal, set --journal or journal.path")
	}

	j, err := journal.Open(cfg.JournalPath, internal.GenerateRunID(cfg.InputDir))
	if err != nil {
		return err
	}
	defer j.Close()
	return j.PrintFailures(r.Out)
}

func credentialHint(provider string) string {
	if provider == config.ProviderOpenAI {
		return "Set OPENAI_API_KEY environment variable or configure openai.api_key in .htmltrans.yaml"
	}
	return "Set GEMINI_API_KEY environment variable or configure gemini.api_key in .htmltrans.yaml"
}
