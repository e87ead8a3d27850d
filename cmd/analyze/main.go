// Command analyze prints quick, human-readable heuristics about configuration
// files in the project's configs directory. It summarizes dictionary size,
// ladder connectivity per word, isolated words that no ladder can pass
// through, and the shortest ladder for the configured start/target pair.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mfigueredo/weaver/game/dictionary"
)

// AnalysisConfig is a light struct for reading config files used by analysis.
type AnalysisConfig struct {
	Name           string            `json:"name"`
	Description    string            `json:"description"`
	WordLength     int               `json:"word_length"`
	DictionaryFile string            `json:"dictionary_file"`
	StartWord      string            `json:"start_word"`
	TargetWord     string            `json:"target_word"`
	RandomWords    bool              `json:"random_words"`
	Messages       map[string]string `json:"messages"`
}

// DegreeStats summarizes how many one-letter neighbors the dictionary words
// have. Isolated words have no neighbors at all and can never appear in a
// ladder.
type DegreeStats struct {
	Min      int
	Max      int
	Average  float64
	Isolated []string
}

func main() {
	configs := []string{
		"classic.json",
		"pentaweave.json",
		"shuffle.json",
	}

	for _, configFile := range configs {
		fmt.Printf("\n=== Analyzing %s ===\n", configFile)
		analyzeConfig(filepath.Join("configs", configFile))
	}
}

func analyzeConfig(path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Printf("Error reading file: %v\n", err)
		return
	}

	var config AnalysisConfig
	if err := json.Unmarshal(data, &config); err != nil {
		fmt.Printf("Error parsing JSON: %v\n", err)
		return
	}

	fmt.Printf("Name: %s\n", config.Name)
	fmt.Printf("Word Length: %d\n", config.WordLength)
	fmt.Printf("Pair: %s -> %s\n", config.StartWord, config.TargetWord)
	fmt.Printf("Random Words: %v\n", config.RandomWords)

	dictPath := config.DictionaryFile
	if dictPath != "" && !filepath.IsAbs(dictPath) {
		dictPath = filepath.Join(filepath.Dir(path), dictPath)
	}

	var dict *dictionary.Dictionary
	if dictPath == "" {
		dict, err = dictionary.Default(config.WordLength)
	} else {
		dict, err = dictionary.Load(dictPath, config.WordLength)
	}
	if err != nil {
		fmt.Printf("Error loading dictionary: %v\n", err)
		return
	}

	fmt.Printf("Dictionary: %d words\n", dict.Len())

	stats := degreeStats(dict)
	fmt.Printf("Neighbors per word: min %d, max %d, avg %.1f\n", stats.Min, stats.Max, stats.Average)

	if len(stats.Isolated) > 0 {
		fmt.Printf("⚠️  WARNING: %d words have no one-letter neighbors!\n", len(stats.Isolated))
		fmt.Printf("   These words can never appear in a ladder\n")
		for i, word := range stats.Isolated {
			if i < 5 { // Show first 5 isolated words
				fmt.Printf("   Isolated: %s\n", word)
			}
		}
		if len(stats.Isolated) > 5 {
			fmt.Printf("   ... and %d more\n", len(stats.Isolated)-5)
		}
	} else {
		fmt.Printf("✅ Every word has at least one ladder neighbor\n")
	}

	reachable := componentSize(dict, config.StartWord)
	fmt.Printf("Reachable from %s: %d of %d words\n", config.StartWord, reachable, dict.Len())

	ladder := shortestLadder(dict, config.StartWord, config.TargetWord)
	if ladder == nil {
		fmt.Printf("⚠️  CRITICAL: no ladder connects %s to %s!\n", config.StartWord, config.TargetWord)
	} else {
		fmt.Printf("✅ Shortest ladder (%d steps): %s\n", len(ladder)-1, strings.Join(ladder, " -> "))
	}
}

// degreeStats counts one-letter neighbors for every dictionary word using
// lazy a-z substitution rather than pairwise comparison.
func degreeStats(dict *dictionary.Dictionary) DegreeStats {
	stats := DegreeStats{Min: -1}

	words := dict.Words()
	total := 0
	for _, word := range words {
		degree := neighborCount(dict, word)
		total += degree

		if stats.Min == -1 || degree < stats.Min {
			stats.Min = degree
		}
		if degree > stats.Max {
			stats.Max = degree
		}
		if degree == 0 {
			stats.Isolated = append(stats.Isolated, word)
		}
	}

	if stats.Min == -1 {
		stats.Min = 0
	}
	if len(words) > 0 {
		stats.Average = float64(total) / float64(len(words))
	}
	return stats
}

// neighborCount returns how many dictionary words differ from word by exactly
// one letter.
func neighborCount(dict *dictionary.Dictionary, word string) int {
	count := 0
	buf := []byte(word)
	for i := 0; i < len(buf); i++ {
		original := buf[i]
		for c := byte('a'); c <= 'z'; c++ {
			if c == original {
				continue
			}
			buf[i] = c
			if dict.Contains(string(buf)) {
				count++
			}
		}
		buf[i] = original
	}
	return count
}

// componentSize returns how many dictionary words are reachable from start,
// including start itself.
func componentSize(dict *dictionary.Dictionary, start string) int {
	if !dict.Contains(start) {
		return 0
	}

	visited := map[string]bool{start: true}
	queue := []string{start}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		buf := []byte(current)
		for i := 0; i < len(buf); i++ {
			original := buf[i]
			for c := byte('a'); c <= 'z'; c++ {
				if c == original {
					continue
				}
				buf[i] = c
				candidate := string(buf)
				if !visited[candidate] && dict.Contains(candidate) {
					visited[candidate] = true
					queue = append(queue, candidate)
				}
			}
			buf[i] = original
		}
	}
	return len(visited)
}

// shortestLadder runs a breadth-first search from start and reconstructs the
// shortest ladder to target, or nil when none exists.
func shortestLadder(dict *dictionary.Dictionary, start, target string) []string {
	if !dict.Contains(start) || !dict.Contains(target) {
		return nil
	}
	if start == target {
		return []string{start}
	}

	parents := map[string]string{start: ""}
	queue := []string{start}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		buf := []byte(current)
		for i := 0; i < len(buf); i++ {
			original := buf[i]
			for c := byte('a'); c <= 'z'; c++ {
				if c == original {
					continue
				}
				buf[i] = c
				candidate := string(buf)
				if _, seen := parents[candidate]; !seen && dict.Contains(candidate) {
					parents[candidate] = current
					if candidate == target {
						return reconstruct(parents, start, target)
					}
					queue = append(queue, candidate)
				}
			}
			buf[i] = original
		}
	}
	return nil
}

func reconstruct(parents map[string]string, start, target string) []string {
	var ladder []string
	for word := target; word != ""; word = parents[word] {
		ladder = append(ladder, word)
	}
	// Reverse into start-to-target order
	for i, j := 0, len(ladder)-1; i < j; i, j = i+1, j-1 {
		ladder[i], ladder[j] = ladder[j], ladder[i]
	}
	return ladder
}
