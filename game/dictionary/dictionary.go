package dictionary

import (
	"bufio"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"strings"
)

var (
	ErrTooFewWords   = errors.New("dictionary needs at least two words")
	ErrInvalidLength = errors.New("invalid word length")
)

const (
	// MinWordLength and MaxWordLength bound the playable word sizes.
	MinWordLength = 3
	MaxWordLength = 8
)

// Dictionary is an immutable set of lowercase words of one fixed length.
type Dictionary struct {
	wordLength int
	words      []string            // stable load order, used for sampling
	lookup     map[string]struct{} // membership set
}

// New builds a Dictionary from a raw word list. Words are lowercased and
// trimmed; entries with the wrong length, characters outside a-z, or that
// duplicate an earlier entry are dropped. At least two words must survive,
// which guarantees a distinct start/target pair can always be drawn.
func New(words []string, wordLength int) (*Dictionary, error) {
	if wordLength < MinWordLength || wordLength > MaxWordLength {
		return nil, fmt.Errorf("%w: must be between %d and %d, got %d",
			ErrInvalidLength, MinWordLength, MaxWordLength, wordLength)
	}

	d := &Dictionary{
		wordLength: wordLength,
		lookup:     make(map[string]struct{}, len(words)),
	}

	for _, raw := range words {
		w := strings.TrimSpace(strings.ToLower(raw))
		if len(w) != wordLength || !isAlpha(w) {
			continue
		}
		if _, seen := d.lookup[w]; seen {
			continue
		}
		d.lookup[w] = struct{}{}
		d.words = append(d.words, w)
	}

	if len(d.words) < 2 {
		return nil, fmt.Errorf("%w: got %d usable %d-letter words",
			ErrTooFewWords, len(d.words), wordLength)
	}

	return d, nil
}

// Load reads a dictionary from a file with one word per line.
func Load(path string, wordLength int) (*Dictionary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dictionary file: %w", err)
	}
	defer f.Close()

	var words []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		words = append(words, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read dictionary file: %w", err)
	}

	return New(words, wordLength)
}

// WordLength returns the fixed length shared by every member.
func (d *Dictionary) WordLength() int {
	return d.wordLength
}

// Len returns the number of words.
func (d *Dictionary) Len() int {
	return len(d.words)
}

// Contains reports whether word is a member. The check is case-insensitive.
func (d *Dictionary) Contains(word string) bool {
	_, ok := d.lookup[strings.ToLower(word)]
	return ok
}

// Sample returns a random member drawn from r. If the dictionary is somehow
// empty it returns fallback instead; construction rules make that unreachable
// in practice.
func (d *Dictionary) Sample(r *rand.Rand, fallback string) string {
	if len(d.words) == 0 {
		return fallback
	}
	return d.words[r.Intn(len(d.words))]
}

// Words returns a copy of the member list in load order.
func (d *Dictionary) Words() []string {
	out := make([]string, len(d.words))
	copy(out, d.words)
	return out
}

// isAlpha reports whether s is all lowercase ASCII letters.
func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}
