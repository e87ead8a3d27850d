// Command validate provides a small CLI that validates game configuration JSON
// files in the ../configs directory. It checks:
//   - JSON structure and required fields
//   - Word length bounds and word shape (lowercase a-z, matching length)
//   - Start and target words are distinct and present in the dictionary
//   - Required message keys
//   - Connectivity: the target word is reachable from the start word via
//     one-letter substitutions through dictionary words
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mfigueredo/weaver/game/dictionary"
)

// Config mirrors the JSON schema for a game configuration.
type Config struct {
	Name           string            `json:"name"`
	Description    string            `json:"description"`
	WordLength     int               `json:"word_length"`
	DictionaryFile string            `json:"dictionary_file"`
	StartWord      string            `json:"start_word"`
	TargetWord     string            `json:"target_word"`
	RandomWords    bool              `json:"random_words"`
	ShowErrors     bool              `json:"show_error_messages"`
	ShowPath       bool              `json:"show_path"`
	Messages       map[string]string `json:"messages"`
}

// ValidationResult captures the outcome of validating a single file.
// If Valid is true, Errors contains informational messages; otherwise it
// accumulates the validation errors that were found.
type ValidationResult struct {
	File   string
	Valid  bool
	Errors []string
}

// validateConfig loads and validates a single configuration JSON file.
// It performs structural checks, word validation, message presence, and
// reachability analysis for the start/target pair.
func validateConfig(filePath string) ValidationResult {
	result := ValidationResult{
		File:   filepath.Base(filePath),
		Valid:  true,
		Errors: []string{},
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("Failed to read file: %v", err))
		return result
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("Invalid JSON: %v", err))
		return result
	}

	if config.Name == "" {
		result.Valid = false
		result.Errors = append(result.Errors, "Name is empty")
	}

	if config.WordLength < dictionary.MinWordLength || config.WordLength > dictionary.MaxWordLength {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("word_length must be between %d and %d, got %d",
			dictionary.MinWordLength, dictionary.MaxWordLength, config.WordLength))
	}

	// Validate the word pair
	for _, pair := range []struct{ field, word string }{
		{"start_word", config.StartWord},
		{"target_word", config.TargetWord},
	} {
		if pair.word == "" {
			result.Valid = false
			result.Errors = append(result.Errors, fmt.Sprintf("%s is empty", pair.field))
			continue
		}
		if len(pair.word) != config.WordLength {
			result.Valid = false
			result.Errors = append(result.Errors, fmt.Sprintf("%s %q must be %d letters, got %d",
				pair.field, pair.word, config.WordLength, len(pair.word)))
		}
		if !isLowerAlpha(pair.word) {
			result.Valid = false
			result.Errors = append(result.Errors, fmt.Sprintf("%s %q must be lowercase a-z", pair.field, pair.word))
		}
	}

	if config.StartWord != "" && config.StartWord == config.TargetWord {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("start_word and target_word are both %q", config.StartWord))
	}

	// Validate messages
	requiredMessages := []string{
		"welcome",
		"invalid_word",
		"not_in_dictionary",
		"not_one_letter",
		"word_accepted",
		"victory",
		"reset",
		"new_game",
	}
	for _, msg := range requiredMessages {
		if _, exists := config.Messages[msg]; !exists {
			result.Valid = false
			result.Errors = append(result.Errors, fmt.Sprintf("Missing required message: %s", msg))
		}
	}

	if !result.Valid {
		return result
	}

	// Dictionary and reachability validation
	dictPath := config.DictionaryFile
	if dictPath != "" && !filepath.IsAbs(dictPath) {
		dictPath = filepath.Join(filepath.Dir(filePath), dictPath)
	}

	dict, err := resolveDictionary(dictPath, config.WordLength)
	if err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("Failed to load dictionary: %v", err))
		return result
	}

	if dictPath != "" {
		result.Errors = append(result.Errors, lintDictionaryFile(dictPath, config.WordLength)...)
	}

	for _, pair := range []struct{ field, word string }{
		{"start_word", config.StartWord},
		{"target_word", config.TargetWord},
	} {
		if !dict.Contains(pair.word) {
			result.Valid = false
			result.Errors = append(result.Errors, fmt.Sprintf("%s %q is not in the dictionary", pair.field, pair.word))
		}
	}

	if result.Valid {
		reachability := validateReachability(dict, config.StartWord, config.TargetWord)
		if !reachability.Valid {
			result.Valid = false
		}
		result.Errors = append(result.Errors, reachability.Errors...)
	}

	// Add informational data
	if result.Valid {
		result.Errors = append(result.Errors, fmt.Sprintf("✓ Name: %s", config.Name))
		result.Errors = append(result.Errors, fmt.Sprintf("✓ Word length: %d", config.WordLength))
		result.Errors = append(result.Errors, fmt.Sprintf("✓ Dictionary: %d words", dict.Len()))
		result.Errors = append(result.Errors, fmt.Sprintf("✓ Pair: %s -> %s", config.StartWord, config.TargetWord))
	}

	return result
}

// lintDictionaryFile reports word-list entries the loader silently drops:
// wrong-length words, non a-z characters, and duplicates. These are warnings
// rather than errors since the filtered dictionary still plays.
func lintDictionaryFile(path string, wordLength int) []string {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil
	}

	var findings []string
	seen := map[string]bool{}
	for i, line := range strings.Split(string(data), "\n") {
		word := strings.ToLower(strings.TrimSpace(line))
		if word == "" {
			continue
		}
		switch {
		case len(word) != wordLength:
			findings = append(findings, fmt.Sprintf("⚠ Line %d: %q is not %d letters, skipped", i+1, word, wordLength))
		case !isLowerAlpha(word):
			findings = append(findings, fmt.Sprintf("⚠ Line %d: %q has characters outside a-z, skipped", i+1, word))
		case seen[word]:
			findings = append(findings, fmt.Sprintf("⚠ Line %d: duplicate word %q", i+1, word))
		default:
			seen[word] = true
		}
	}
	return findings
}

// resolveDictionary loads the word list from disk, or falls back to the
// embedded default list when no file is configured.
func resolveDictionary(path string, wordLength int) (*dictionary.Dictionary, error) {
	if path == "" {
		return dictionary.Default(wordLength)
	}
	return dictionary.Load(path, wordLength)
}

// validateReachability runs a breadth-first search over one-letter
// substitutions to confirm a ladder exists from start to target. It reports
// the shortest ladder length when one is found.
func validateReachability(dict *dictionary.Dictionary, start, target string) ValidationResult {
	result := ValidationResult{
		Valid:  true,
		Errors: []string{},
	}

	if start == target {
		result.Valid = false
		result.Errors = append(result.Errors, "Cannot validate reachability: start equals target")
		return result
	}

	visited := map[string]int{start: 0}
	queue := []string{start}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		if current == target {
			result.Errors = append(result.Errors,
				fmt.Sprintf("✓ Reachability: shortest ladder is %d steps", visited[current]))
			return result
		}

		// Try every one-letter substitution instead of scanning the
		// whole dictionary per word.
		word := []byte(current)
		for i := 0; i < len(word); i++ {
			original := word[i]
			for c := byte('a'); c <= 'z'; c++ {
				if c == original {
					continue
				}
				word[i] = c
				candidate := string(word)
				if _, seen := visited[candidate]; !seen && dict.Contains(candidate) {
					visited[candidate] = visited[current] + 1
					queue = append(queue, candidate)
				}
			}
			word[i] = original
		}
	}

	result.Valid = false
	result.Errors = append(result.Errors,
		fmt.Sprintf("Reachability failure: no ladder connects %q to %q", start, target))
	return result
}

func isLowerAlpha(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return len(s) > 0
}

// main scans ../configs for *.json files and validates each one, printing a
// concise report and exiting with non-zero status if any are invalid.
func main() {
	configDir := "../configs"
	files, err := filepath.Glob(filepath.Join(configDir, "*.json"))
	if err != nil {
		fmt.Printf("Error finding config files: %v\n", err)
		os.Exit(1)
	}

	allValid := true
	for _, file := range files {
		result := validateConfig(file)

		fmt.Printf("\n%s %s\n", strings.Repeat("=", 20), result.File)

		if result.Valid {
			fmt.Println("✅ VALID")
			for _, info := range result.Errors {
				fmt.Println("  " + info)
			}
		} else {
			fmt.Println("❌ INVALID")
			allValid = false
			for _, err := range result.Errors {
				if !strings.HasPrefix(err, "✓") {
					fmt.Println("  ❌ " + err)
				}
			}
		}
	}

	fmt.Printf("\n%s\n", strings.Repeat("=", 40))
	if allValid {
		fmt.Println("✅ All configurations are valid!")
	} else {
		fmt.Println("❌ Some configurations have errors")
		os.Exit(1)
	}
}
