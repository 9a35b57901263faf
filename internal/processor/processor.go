package processor

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"
	"unicode/utf8"

	"codeberg.org/snonux/htmltrans/internal/config"
	"codeberg.org/snonux/htmltrans/internal/throttle"
	"codeberg.org/snonux/htmltrans/internal/translation"
)

// Corpus lists and reads source documents
type Corpus interface {
	Scan() ([]string, error)
	Read(name string) (string, error)
}

// Outputs locates and persists translated documents
type Outputs interface {
	EnsureDir(code string) (string, error)
	Path(code, filename string) string
	Exists(code, filename string) bool
	Write(code, filename, content string) (string, error)
}

// Recorder receives every task result, for example to keep a journal
type Recorder interface {
	Record(result TaskResult) error
}

// Options configures a Processor. Corpus, Outputs and Client are required.
type Options struct {
	Languages []config.Language
	Corpus    Corpus
	Outputs   Outputs
	Client    translation.Client
	Gate      throttle.Gate
	Recorder  Recorder
	Out       io.Writer
	Logger    *slog.Logger
	DryRun    bool
}

// Processor runs translation sweeps
type Processor struct {
	languages []config.Language
	corpus    Corpus
	outputs   Outputs
	client    translation.Client
	gate      throttle.Gate
	recorder  Recorder
	out       io.Writer
	logger    *slog.Logger
	dryRun    bool
}

// New creates a processor from options, filling defaults for the optional parts
func New(opts Options) *Processor {
	p := &Processor{
		languages: opts.Languages,
		corpus:    opts.Corpus,
		outputs:   opts.Outputs,
		client:    opts.Client,
		gate:      opts.Gate,
		recorder:  opts.Recorder,
		out:       opts.Out,
		logger:    opts.Logger,
		dryRun:    opts.DryRun,
	}
	if p.gate == nil {
		p.gate = throttle.NewInterval(0)
	}
	if p.out == nil {
		p.out = os.Stdout
	}
	if p.logger == nil {
		p.logger = slog.Default()
	}
	return p
}

// Run translates every eligible document into every configured language.
// The only errors returned are the fatal ones: language directories that
// cannot be created and a corpus that cannot be listed.
func (p *Processor) Run(ctx context.Context) (*Summary, error) {
	if err := p.prepare(); err != nil {
		return nil, err
	}

	documents, err := p.corpus.Scan()
	if err != nil {
		return nil, err
	}
	return p.sweep(ctx, documents), nil
}

// RunSelected translates only the named documents, in the given order.
// Names that are not eligible corpus members are reported and ignored.
func (p *Processor) RunSelected(ctx context.Context, names []string) (*Summary, error) {
	if err := p.prepare(); err != nil {
		return nil, err
	}

	documents, err := p.corpus.Scan()
	if err != nil {
		return nil, err
	}
	eligible := make(map[string]bool, len(documents))
	for _, name := range documents {
		eligible[name] = true
	}

	var selected []string
	seen := make(map[string]bool, len(names))
	for _, name := range names {
		if seen[name] {
			continue
		}
		seen[name] = true
		if !eligible[name] {
			p.logger.Warn("ignoring document that is not an eligible corpus member", "document", name)
			continue
		}
		selected = append(selected, name)
	}
	return p.sweep(ctx, selected), nil
}

// prepare creates every language directory before any task runs
func (p *Processor) prepare() error {
	for _, lang := range p.languages {
		dir, err := p.outputs.EnsureDir(lang.Code)
		if err != nil {
			return err
		}
		p.logger.Debug("output directory ready", "language", lang.Code, "dir", dir)
	}
	return nil
}

func (p *Processor) sweep(ctx context.Context, documents []string) *Summary {
	start := time.Now()
	summary := &Summary{Documents: len(documents)}

	fmt.Fprintf(p.out, "Found %d documents to translate into %d languages\n", len(documents), len(p.languages))

	for i, name := range documents {
		if ctx.Err() != nil {
			summary.Interrupted = true
			break
		}

		fmt.Fprintf(p.out, "[%d/%d] Processing: %s\n", i+1, len(documents), name)
		p.processDocument(ctx, name, summary)
		if summary.Interrupted {
			break
		}
	}

	summary.Elapsed = time.Since(start)
	return summary
}

// processDocument reads the document once and runs one task per language
func (p *Processor) processDocument(ctx context.Context, name string, summary *Summary) {
	content, err := p.corpus.Read(name)
	if err != nil {
		p.logger.Error("failed to read document", "document", name, "error", err)
		fmt.Fprintf(p.out, "  Error reading %s: %v\n", name, err)
		for _, lang := range p.languages {
			p.finish(summary, TaskResult{
				Task:       Task{Document: name, Language: lang},
				State:      TaskFailedRead,
				OutputPath: p.outputs.Path(lang.Code, name),
				Err:        err,
			})
		}
		return
	}
	fmt.Fprintf(p.out, "  File size: %d characters\n", utf8.RuneCountInString(content))

	for _, lang := range p.languages {
		if ctx.Err() != nil {
			summary.Interrupted = true
			return
		}

		task := Task{Document: name, Language: lang}
		result := p.runTask(ctx, task, content, summary)
		p.finish(summary, result)
	}
}

func (p *Processor) runTask(ctx context.Context, task Task, content string, summary *Summary) TaskResult {
	lang := task.Language
	result := TaskResult{Task: task, OutputPath: p.outputs.Path(lang.Code, task.Document)}

	if p.outputs.Exists(lang.Code, task.Document) {
		fmt.Fprintf(p.out, "  - %s translation already exists, skipping\n", lang.Name)
		result.State = TaskSkippedExists
		return result
	}

	if p.dryRun {
		fmt.Fprintf(p.out, "  - Would translate to %s -> %s\n", lang.Name, result.OutputPath)
		result.State = TaskPending
		return result
	}

	if err := p.gate.Wait(ctx); err != nil {
		summary.Interrupted = true
		result.State = TaskPending
		result.Err = err
		return result
	}

	fmt.Fprintf(p.out, "  - Starting translation to %s...\n", lang.Name)
	start := time.Now()
	translated, err := p.client.Translate(ctx, content, lang.Name)
	result.Duration = time.Since(start)
	summary.Invocations++
	p.gate.Done()
	if err == nil && strings.TrimSpace(translated) == "" {
		err = translation.ErrEmptyResponse
	}

	if err != nil {
		p.logger.Error("translation failed", "document", task.Document, "language", lang.Code, "error", err)
		fmt.Fprintf(p.out, "    Failed to translate to %s\n", lang.Name)
		result.State = TaskFailedTranslate
		result.Err = err
		if ctx.Err() != nil {
			summary.Interrupted = true
		}
		return result
	}

	path, err := p.outputs.Write(lang.Code, task.Document, translated)
	if err != nil {
		p.logger.Error("failed to save translation", "document", task.Document, "language", lang.Code, "error", err)
		fmt.Fprintf(p.out, "    Error saving %s translation\n", lang.Name)
		result.State = TaskFailedWrite
		result.Err = err
		return result
	}

	result.State = TaskSucceeded
	result.OutputPath = path
	fmt.Fprintf(p.out, "    Saved to %s\n", path)
	fmt.Fprintf(p.out, "    Translation took %.2f seconds\n", result.Duration.Seconds())
	return result
}

// finish stores a result and hands it to the recorder
func (p *Processor) finish(summary *Summary, result TaskResult) {
	summary.Results = append(summary.Results, result)
	if p.recorder == nil || result.State == TaskPending {
		return
	}
	if err := p.recorder.Record(result); err != nil {
		p.logger.Warn("failed to record task result", "document", result.Task.Document, "language", result.Task.Language.Code, "error", err)
	}
}

// PrintSummary writes the end-of-run report
func PrintSummary(w io.Writer, s *Summary) {
	fmt.Fprintf(w, "\n=== Translation Summary ===\n")
	fmt.Fprintf(w, "Documents: %d\n", s.Documents)
	fmt.Fprintf(w, "Tasks: %d\n", len(s.Results))
	fmt.Fprintf(w, "Translated: %d\n", s.Count(TaskSucceeded))
	fmt.Fprintf(w, "Skipped (already translated): %d\n", s.Count(TaskSkippedExists))
	if n := s.Count(TaskPending); n > 0 {
		fmt.Fprintf(w, "Pending: %d\n", n)
	}
	if s.Failed() > 0 {
		fmt.Fprintf(w, "Failed: %d (read %d, translate %d, write %d)\n", s.Failed(),
			s.Count(TaskFailedRead), s.Count(TaskFailedTranslate), s.Count(TaskFailedWrite))
	}
	fmt.Fprintf(w, "API calls: %d\n", s.Invocations)
	fmt.Fprintf(w, "Elapsed: %s\n", s.Elapsed.Round(time.Millisecond))
	if s.Interrupted {
		fmt.Fprintf(w, "Run was interrupted before all tasks finished\n")
	}
	fmt.Fprintf(w, "===========================\n")
}
