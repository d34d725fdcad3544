package catalog

import (
	_ "embed"
	"fmt"
	"math/rand/v2"
	"os"
	"strings"

	"lexibot/internal/domain"

	"gopkg.in/yaml.v3"
)

//go:embed words.yaml
var defaultWords []byte

// Picker returns an index in [0, n)
type Picker func(n int) int

// Catalog is a read-only mapping from level to words
type Catalog struct {
	words map[domain.Level][]domain.WordEntry
}

// Default returns the catalog shipped with the binary
func Default() (*Catalog, error) {
	return Parse(defaultWords)
}

// Load reads a YAML catalog from disk
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates a YAML catalog
func Parse(data []byte) (*Catalog, error) {
	raw := make(map[string][]domain.WordEntry)
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}

	words := make(map[domain.Level][]domain.WordEntry, len(raw))
	for key, entries := range raw {
		level, err := domain.ParseLevel(key)
		if err != nil {
			return nil, fmt.Errorf("catalog level %q: %w", key, err)
		}
		if err := validate(level, entries); err != nil {
			return nil, err
		}
		words[level] = entries
	}

	for _, level := range domain.Levels() {
		if len(words[level]) == 0 {
			return nil, fmt.Errorf("catalog has no words for level %s", level)
		}
	}

	return &Catalog{words: words}, nil
}

func validate(level domain.Level, entries []domain.WordEntry) error {
	seen := make(map[string]struct{}, len(entries))
	for i, e := range entries {
		if strings.TrimSpace(e.Source) == "" || strings.TrimSpace(e.Target) == "" {
			return fmt.Errorf("catalog level %s entry %d: empty term", level, i)
		}
		if !domain.FitsCallback(e.Source) {
			return fmt.Errorf("catalog level %s entry %q: term too long for a button", level, e.Source)
		}
		if _, ok := seen[e.Source]; ok {
			return fmt.Errorf("catalog level %s: duplicate term %q", level, e.Source)
		}
		seen[e.Source] = struct{}{}
	}
	return nil
}

// Words returns a copy of the entries for level
func (c *Catalog) Words(level domain.Level) []domain.WordEntry {
	entries := c.words[level]
	out := make([]domain.WordEntry, len(entries))
	copy(out, entries)
	return out
}

// Contains reports whether entry belongs to level
func (c *Catalog) Contains(level domain.Level, entry domain.WordEntry) bool {
	for _, e := range c.words[level] {
		if e == entry {
			return true
		}
	}
	return false
}

// Random picks an entry uniformly with replacement. A nil pick uses math/rand/v2.
func (c *Catalog) Random(level domain.Level, pick Picker) (domain.WordEntry, error) {
	entries := c.words[level]
	if len(entries) == 0 {
		return domain.WordEntry{}, fmt.Errorf("no words for level %q: %w", level, domain.ErrUnknownLevel)
	}
	if pick == nil {
		pick = rand.IntN
	}
	return entries[pick(len(entries))], nil
}
