// internal/words/words.go
//
// Dictionary loading for the game engine.
//
// Responsibilities:
//   - Sanitize raw lines into canonical candidate words (uppercase, alphabetic).
//   - Parse a raw word list: skip header lines, drop malformed lines, keep
//     only words of the configured length.
//   - Maintain an immutable Dictionary with set lookups and uniform random
//     selection.
//
// Sources (in order of preference at startup):
//   1. WORDS_FILE environment variable pointing at a plain-text list.
//   2. The embedded default list in the assets package.
//
// Constraints:
//   • Candidate words are uppercase ASCII letters only.
//   • Malformed or empty lines are silently dropped, never an error.
//   • Header lines are excluded regardless of their content.

package words

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"os"
	"strings"

	"gordle/assets"
)

// Config controls how a raw word list is interpreted.
type Config struct {
	Length      int // required word length after sanitizing
	HeaderLines int // leading lines to skip before parsing
}

// DefaultConfig matches the bundled asset: 5-letter words, 2 header lines.
func DefaultConfig() Config { return Config{Length: 5, HeaderLines: 2} }

// Dictionary is the immutable set of candidate words, all sanitized and all
// of the configured length.
type Dictionary struct {
	words []string
	set   map[string]struct{}
	cfg   Config
}

// Sanitize normalizes a raw line into candidate form: trimmed, uppercased,
// with every non-ASCII-alphabetic rune removed. Idempotent.
func Sanitize(s string) string {
	var b strings.Builder
	for _, r := range strings.ToUpper(strings.TrimSpace(s)) {
		if r >= 'A' && r <= 'Z' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Parse builds a Dictionary from raw text. The first cfg.HeaderLines lines
// are skipped, each remaining line is sanitized, and only words whose
// sanitized length equals cfg.Length are kept. Duplicates collapse.
func Parse(raw string, cfg Config) *Dictionary {
	lines := strings.Split(raw, "\n")
	if cfg.HeaderLines >= len(lines) {
		lines = nil
	} else {
		lines = lines[cfg.HeaderLines:]
	}

	d := &Dictionary{cfg: cfg, set: make(map[string]struct{})}
	for _, line := range lines {
		w := Sanitize(line)
		if len(w) != cfg.Length {
			continue
		}
		if _, ok := d.set[w]; ok {
			continue
		}
		d.set[w] = struct{}{}
		d.words = append(d.words, w)
	}
	return d
}

// FromFile loads a word list from disk. Read errors are returned as-is; an
// empty result after filtering is also an error, since a game cannot start
// without candidates.
func FromFile(path string, cfg Config) (*Dictionary, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read word list: %w", err)
	}
	d := Parse(string(raw), cfg)
	if d.Len() == 0 {
		return nil, fmt.Errorf("word list %s has no %d-letter words", path, cfg.Length)
	}
	return d, nil
}

// Default parses the embedded word list.
func Default(cfg Config) (*Dictionary, error) {
	d := Parse(assets.Words(), cfg)
	if d.Len() == 0 {
		return nil, fmt.Errorf("embedded word list has no %d-letter words", cfg.Length)
	}
	return d, nil
}

// Len reports the number of candidate words.
func (d *Dictionary) Len() int { return len(d.words) }

// Length reports the configured word length.
func (d *Dictionary) Length() int { return d.cfg.Length }

// Contains reports whether w (in any casing) is a candidate word.
func (d *Dictionary) Contains(w string) bool {
	_, ok := d.set[Sanitize(w)]
	return ok
}

// WordAt returns the candidate at index i, in load order.
func (d *Dictionary) WordAt(i int) string { return d.words[i] }

// Random returns a uniformly random candidate using crypto/rand entropy.
// Returns "" on an empty dictionary; callers reject empty dictionaries at
// construction time.
func (d *Dictionary) Random() string {
	if len(d.words) == 0 {
		return ""
	}
	nBig, _ := rand.Int(rand.Reader, big.NewInt(int64(len(d.words))))
	return d.words[nBig.Int64()]
}
