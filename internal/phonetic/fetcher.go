package phonetic

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"codeberg.org/snonux/saypyu/internal"
	"codeberg.org/snonux/saypyu/internal/saypyu"
	"codeberg.org/snonux/saypyu/internal/store"
)

// Cache stores looked-up pronunciations between runs
type Cache interface {
	Get(ctx context.Context, word string) (store.Entry, bool, error)
	Put(ctx context.Context, e store.Entry) error
}

// Fetcher looks up the IPA of words and converts it to SaypYu
type Fetcher struct {
	source Source
	cache  Cache // may be nil
}

// NewFetcher creates a new fetcher. cache may be nil.
func NewFetcher(source Source, cache Cache) *Fetcher {
	return &Fetcher{
		source: source,
		cache:  cache,
	}
}

// Lookup returns the pronunciation of word, from the cache when possible.
// Cache errors are reported but do not fail the lookup.
func (f *Fetcher) Lookup(ctx context.Context, word string) (store.Entry, error) {
	if f.cache != nil {
		e, ok, err := f.cache.Get(ctx, word)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: cache lookup for '%s' failed: %v\n", word, err)
		} else if ok {
			return e, nil
		}
	}

	ipa, err := f.source.Transcribe(ctx, word)
	if err != nil {
		return store.Entry{}, fmt.Errorf("failed to transcribe '%s': %w", word, err)
	}

	e := store.Entry{
		Word:   word,
		IPA:    ipa,
		SaypYu: saypyu.Transliterate(ipa),
		Source: f.source.Name(),
	}

	if f.cache != nil {
		if err := f.cache.Put(ctx, e); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to cache '%s': %v\n", word, err)
		}
	}

	return e, nil
}

// FetchAndSave looks up word and saves the result to <dir>/<word>.txt
func (f *Fetcher) FetchAndSave(ctx context.Context, word, dir string) (store.Entry, error) {
	e, err := f.Lookup(ctx, word)
	if err != nil {
		return e, err
	}

	file := filepath.Join(dir, internal.SanitizeFilename(word)+".txt")
	content := fmt.Sprintf("%s\n/%s/\n%s\n", e.Word, e.IPA, e.SaypYu)
	if err := os.WriteFile(file, []byte(content), 0644); err != nil {
		return e, fmt.Errorf("failed to write phonetic file: %w", err)
	}

	return e, nil
}
