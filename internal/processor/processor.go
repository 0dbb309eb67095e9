package processor

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"golang.org/x/text/transform"

	"codeberg.org/snonux/saypyu/internal/archive"
	"codeberg.org/snonux/saypyu/internal/batch"
	"codeberg.org/snonux/saypyu/internal/cli"
	"codeberg.org/snonux/saypyu/internal/fixture"
	"codeberg.org/snonux/saypyu/internal/models"
	"codeberg.org/snonux/saypyu/internal/phonetic"
	"codeberg.org/snonux/saypyu/internal/saypyu"
	"codeberg.org/snonux/saypyu/internal/store"
)

// ResultsFile is the name of the batch output file inside the output directory
const ResultsFile = "results.txt"

// Processor handles the main transliteration logic
type Processor struct {
	flags  *cli.Flags
	source phonetic.Source // created on first lookup
}

// NewProcessor creates a new processor
func NewProcessor(flags *cli.Flags) *Processor {
	return &Processor{
		flags: flags,
	}
}

// ProcessSingle transliterates one IPA string and prints the result.
// With --explain it also lists the characters that were dropped.
func (p *Processor) ProcessSingle(ipa string) error {
	fmt.Println(saypyu.Transliterate(ipa))

	if p.flags.Explain {
		dropped := saypyu.Dropped(ipa)
		if len(dropped) == 0 {
			fmt.Println("No characters dropped")
			return nil
		}
		fmt.Printf("Dropped %d character(s):\n", len(dropped))
		fmt.Print(saypyu.Explain(ipa))
	}

	return nil
}

// Stream transliterates everything read from r and writes it to w.
// Line breaks are kept.
func (p *Processor) Stream(r io.Reader, w io.Writer) error {
	t := saypyu.NewTransformer()
	br := bufio.NewReader(r)

	for {
		line, err := br.ReadString('\n')
		if err != nil && err != io.EOF {
			return fmt.Errorf("failed to read input: %w", err)
		}

		text := strings.TrimRight(line, "\r\n")
		if _, cerr := io.Copy(w, transform.NewReader(strings.NewReader(text), t)); cerr != nil {
			return fmt.Errorf("failed to transliterate stream: %w", cerr)
		}
		if strings.HasSuffix(line, "\n") {
			if _, werr := io.WriteString(w, "\n"); werr != nil {
				return fmt.Errorf("failed to write output: %w", werr)
			}
		}

		if err == io.EOF {
			return nil
		}
	}
}

// ProcessWord looks up the IPA of an English word, prints its SaypYu
// spelling and saves both to the output directory
func (p *Processor) ProcessWord(ctx context.Context, word string) error {
	if word == "" {
		return fmt.Errorf("word cannot be empty")
	}

	fetcher, closeFn, err := p.newFetcher()
	if err != nil {
		return err
	}
	defer closeFn()

	if err := os.MkdirAll(p.outputDir(), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	e, err := fetcher.FetchAndSave(ctx, word, p.outputDir())
	if err != nil {
		return err
	}

	fmt.Printf("%s /%s/ => %s\n", e.Word, e.IPA, e.SaypYu)
	if debug() {
		fmt.Printf("  [DEBUG] source: %s\n", e.Source)
	}

	return nil
}

// ProcessBatch transliterates every entry of the batch file and writes
// the results to <output>/results.txt
func (p *Processor) ProcessBatch(ctx context.Context) error {
	entries, err := batch.ReadBatchFile(p.flags.BatchFile)
	if err != nil {
		return err
	}

	// Create output directory (including parent directories)
	if err := os.MkdirAll(p.outputDir(), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	lookupCount := 0
	errorCount := 0

	// First pass: look up entries that only have a word
	if needsLookup(entries) {
		fetcher, closeFn, err := p.newFetcher()
		if err != nil {
			return err
		}
		defer closeFn()

		for i, entry := range entries {
			if !entry.NeedsLookup {
				continue
			}
			e, err := fetcher.Lookup(ctx, entry.Label)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error looking up '%s': %v\n", entry.Label, err)
				errorCount++
				continue
			}
			entries[i].IPA = e.IPA
			lookupCount++
			if debug() {
				fmt.Printf("  [DEBUG] %s: /%s/ from %s\n", e.Word, e.IPA, e.Source)
			}
		}
	}

	results := batch.Convert(entries)

	outputFile := filepath.Join(p.outputDir(), ResultsFile)
	f, err := os.Create(outputFile)
	if err != nil {
		return fmt.Errorf("failed to create results file: %w", err)
	}
	defer f.Close()

	if err := batch.WriteResults(f, results); err != nil {
		return err
	}

	// Print summary
	fmt.Printf("\n=== Batch Processing Summary ===\n")
	fmt.Printf("Total entries: %d\n", len(entries))
	fmt.Printf("Transliterated: %d\n", len(results))
	if lookupCount > 0 {
		fmt.Printf("Looked up: %d\n", lookupCount)
	}
	if errorCount > 0 {
		fmt.Printf("Errors: %d\n", errorCount)
	}
	fmt.Printf("Results: %s\n", outputFile)
	fmt.Printf("================================\n")

	return nil
}

// RunFixture runs the fixture file and prints a report. It returns an
// error when at least one case failed.
func (p *Processor) RunFixture() error {
	fx, err := fixture.Load(p.flags.FixtureFile)
	if err != nil {
		return err
	}

	if failed := fixture.Report(os.Stdout, fx.Run()); failed > 0 {
		return fmt.Errorf("%d fixture case(s) failed", failed)
	}
	return nil
}

// ListCache prints every cached word
func (p *Processor) ListCache(ctx context.Context) error {
	s, err := p.openCache()
	if err != nil {
		return err
	}
	if s == nil {
		return fmt.Errorf("cache is disabled")
	}
	defer s.Close()

	entries, err := s.List(ctx)
	if err != nil {
		return err
	}

	if len(entries) == 0 {
		fmt.Println("Cache is empty")
		return nil
	}

	for _, e := range entries {
		fmt.Printf("%s\t/%s/\t%s\t(%s, %s)\n", e.Word, e.IPA, e.SaypYu, e.Source, e.CreatedAt.Format("2006-01-02"))
	}
	fmt.Printf("\n%d cached word(s)\n", len(entries))
	return nil
}

// Forget removes word from the cache
func (p *Processor) Forget(ctx context.Context, word string) error {
	s, err := p.openCache()
	if err != nil {
		return err
	}
	if s == nil {
		return fmt.Errorf("cache is disabled")
	}
	defer s.Close()

	if _, ok, err := s.Get(ctx, word); err != nil {
		return err
	} else if !ok {
		fmt.Printf("'%s' is not cached\n", word)
		return nil
	}

	if err := s.Delete(ctx, word); err != nil {
		return err
	}
	fmt.Printf("Removed '%s' from the cache\n", word)
	return nil
}

// ListModels prints the OpenAI chat models available for IPA lookups
func (p *Processor) ListModels(ctx context.Context) error {
	config := p.phoneticConfig()
	lister := models.NewLister(config.OpenAIKey, config.OpenAIBaseURL)
	return lister.ListAvailableModels(ctx, os.Stdout, config.OpenAIModel)
}

// Archive moves the output directory into the archive and returns the new path
func (p *Processor) Archive() (string, error) {
	path, err := archive.ArchiveDir(p.outputDir())
	if err != nil {
		return "", fmt.Errorf("failed to archive output: %w", err)
	}
	return path, nil
}

// Helper methods

func (p *Processor) phoneticConfig() *phonetic.Config {
	config := phonetic.DefaultConfig()
	config.Source = p.flags.Source
	config.OpenAIKey = cli.GetOpenAIKey()
	config.OpenAIModel = p.flags.OpenAIModel
	config.ESpeakVoice = p.flags.ESpeakVoice
	config.OpenAIBaseURL = viper.GetString("phonetic.openai_base_url")

	// Use config file values if not overridden by flags
	if p.flags.Source == "auto" && viper.IsSet("phonetic.source") {
		config.Source = viper.GetString("phonetic.source")
	}
	if p.flags.OpenAIModel == "gpt-4o-mini" && viper.IsSet("phonetic.openai_model") {
		config.OpenAIModel = viper.GetString("phonetic.openai_model")
	}
	if p.flags.ESpeakVoice == "en-gb" && viper.IsSet("phonetic.espeak_voice") {
		config.ESpeakVoice = viper.GetString("phonetic.espeak_voice")
	}
	if viper.IsSet("phonetic.espeak_command") {
		config.ESpeakCommand = viper.GetString("phonetic.espeak_command")
	}

	return config
}

func (p *Processor) phoneticSource() (phonetic.Source, error) {
	if p.source != nil {
		return p.source, nil
	}

	source, err := phonetic.NewSource(p.phoneticConfig())
	if err != nil {
		return nil, err
	}
	if err := source.IsAvailable(); err != nil {
		return nil, fmt.Errorf("phonetic source %s is not available: %w", source.Name(), err)
	}

	p.source = source
	return source, nil
}

// outputDir prefers output.directory from the config file unless --output was given
func (p *Processor) outputDir() string {
	if viper.IsSet("output.directory") {
		return viper.GetString("output.directory")
	}
	return p.flags.OutputDir
}

func (p *Processor) cachePath() string {
	if viper.IsSet("cache.path") {
		return viper.GetString("cache.path")
	}
	return p.flags.CachePath
}

// openCache returns nil when caching is disabled
func (p *Processor) openCache() (*store.Store, error) {
	path := p.cachePath()
	if p.flags.NoCache || viper.GetBool("cache.disabled") || path == "" {
		return nil, nil
	}
	return store.Open(path)
}

func (p *Processor) newFetcher() (*phonetic.Fetcher, func(), error) {
	source, err := p.phoneticSource()
	if err != nil {
		return nil, nil, err
	}

	s, err := p.openCache()
	if err != nil {
		// Lookups still work without the cache
		fmt.Fprintf(os.Stderr, "Warning: failed to open cache: %v\n", err)
	}

	if s == nil {
		return phonetic.NewFetcher(source, nil), func() {}, nil
	}
	return phonetic.NewFetcher(source, s), func() { s.Close() }, nil
}

func needsLookup(entries []batch.Entry) bool {
	for _, e := range entries {
		if e.NeedsLookup {
			return true
		}
	}
	return false
}

func debug() bool {
	return os.Getenv("DEBUG_SAYPYU") != ""
}
