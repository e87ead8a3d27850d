package dictionary

import (
	_ "embed"
	"strings"
)

// Embedded default list so the engine can run with no files configured.
//
//go:embed default_words.txt
var embeddedWords string

// DefaultWordLength matches the embedded word list.
const DefaultWordLength = 4

// Default returns a Dictionary built from the embedded word list, filtered to
// the requested length. Use DefaultWordLength for the full list.
func Default(wordLength int) (*Dictionary, error) {
	return New(strings.Split(embeddedWords, "\n"), wordLength)
}
