package engine

import (
	"fmt"
	"strings"

	"github.com/mfigueredo/weaver/game/dictionary"
)

// GameConfig represents the game configuration from JSON
type GameConfig struct {
	Name           string `json:"name"`
	Description    string `json:"description"`
	WordLength     int    `json:"word_length"`
	DictionaryFile string `json:"dictionary_file,omitempty"` // empty uses the embedded list
	StartWord      string `json:"start_word"`
	TargetWord     string `json:"target_word"`
	RandomWords    bool   `json:"random_words"`
	ShowErrors     bool   `json:"show_error_messages"`
	ShowPath       bool   `json:"show_path"`
	Messages       struct {
		Welcome         string `json:"welcome"`
		InvalidWord     string `json:"invalid_word"`
		NotInDictionary string `json:"not_in_dictionary"`
		NotOneLetter    string `json:"not_one_letter"`
		WordAccepted    string `json:"word_accepted"`
		Victory         string `json:"victory"`
		Reset           string `json:"reset"`
		NewGame         string `json:"new_game"`
	} `json:"messages"`
}

// ValidateGameConfig validates a game configuration for correctness and playability
func ValidateGameConfig(config *GameConfig) error {
	if config == nil {
		return fmt.Errorf("config validation: config cannot be nil")
	}
	if config.Name == "" {
		return fmt.Errorf("config validation: name is required")
	}
	if config.Description == "" {
		return fmt.Errorf("config validation: description is required")
	}

	if config.WordLength < dictionary.MinWordLength || config.WordLength > dictionary.MaxWordLength {
		return fmt.Errorf("config validation: word_length must be between %d and %d, got %d",
			dictionary.MinWordLength, dictionary.MaxWordLength, config.WordLength)
	}

	// Validate the default word pair
	for _, pair := range []struct {
		field string
		word  string
	}{
		{"start_word", config.StartWord},
		{"target_word", config.TargetWord},
	} {
		if pair.word == "" {
			return fmt.Errorf("config validation: %s is required", pair.field)
		}
		if len(pair.word) != config.WordLength {
			return fmt.Errorf("config validation: %s must have %d letters, got %q",
				pair.field, config.WordLength, pair.word)
		}
		if pair.word != strings.ToLower(pair.word) || !isLowerAlpha(pair.word) {
			return fmt.Errorf("config validation: %s must be lowercase a-z, got %q",
				pair.field, pair.word)
		}
	}
	if config.StartWord == config.TargetWord {
		return fmt.Errorf("config validation: start_word and target_word must differ, both are %q",
			config.StartWord)
	}

	// Validate messages
	requiredMessages := []struct {
		key   string
		value string
	}{
		{"welcome", config.Messages.Welcome},
		{"invalid_word", config.Messages.InvalidWord},
		{"not_in_dictionary", config.Messages.NotInDictionary},
		{"not_one_letter", config.Messages.NotOneLetter},
		{"word_accepted", config.Messages.WordAccepted},
		{"victory", config.Messages.Victory},
		{"reset", config.Messages.Reset},
		{"new_game", config.Messages.NewGame},
	}
	for _, msg := range requiredMessages {
		if msg.value == "" {
			return fmt.Errorf("config validation: missing required message: %s", msg.key)
		}
	}

	return nil
}

// DefaultGameConfig returns the built-in classic ruleset: four-letter words
// from the embedded dictionary, with the fixed "sale" to "opal" pair.
func DefaultGameConfig() *GameConfig {
	config := &GameConfig{
		Name:        "Classic Weaver",
		Description: "Transform sale into opal, one letter at a time",
		WordLength:  dictionary.DefaultWordLength,
		StartWord:   "sale",
		TargetWord:  "opal",
	}
	config.Messages.Welcome = "Weave from %s to %s!"
	config.Messages.InvalidWord = "That word doesn't work here"
	config.Messages.NotInDictionary = "'%s' is not in the dictionary"
	config.Messages.NotOneLetter = "'%s' must change exactly one letter"
	config.Messages.WordAccepted = "'%s' accepted"
	config.Messages.Victory = "You reached %s in %d steps!"
	config.Messages.Reset = "Game reset, start weaving again"
	config.Messages.NewGame = "New game: weave from %s to %s"
	return config
}

// isLowerAlpha reports whether s is all lowercase ASCII letters.
func isLowerAlpha(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}
