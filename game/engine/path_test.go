package engine

import (
	"math/rand"
	"testing"

	"github.com/mfigueredo/weaver/game/dictionary"
)

func createPathEngine(t *testing.T, words []string, start, target string) *GameEngine {
	t.Helper()
	dict, err := dictionary.New(words, len(start))
	if err != nil {
		t.Fatalf("Failed to build dictionary: %v", err)
	}

	config := createTestConfig()
	config.WordLength = len(start)
	config.StartWord = start
	config.TargetWord = target

	eng, err := NewEngine(dict, config, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("Failed to create engine: %v", err)
	}
	return eng
}

func TestFindPathShortest(t *testing.T) {
	// Two ladders exist from cold to warm; the one through ward is shorter
	// than the detour through cart and wart.
	words := []string{"cold", "cord", "card", "ward", "warm", "cart", "wart", "core"}
	eng := createPathEngine(t, words, "cold", "warm")

	path := eng.FindPath()
	if len(path) != 5 {
		t.Fatalf("Expected shortest ladder of 5 words, got %v", path)
	}
	if path[0] != "cold" {
		t.Errorf("Path must start with the start word, got %q", path[0])
	}
	if path[len(path)-1] != "warm" {
		t.Errorf("Path must end with the target word, got %q", path[len(path)-1])
	}

	for i := 1; i < len(path); i++ {
		if !differsByOneLetter(path[i-1], path[i]) {
			t.Errorf("Consecutive words %q and %q must differ by one letter", path[i-1], path[i])
		}
		if !eng.dict.Contains(path[i]) {
			t.Errorf("Path word %q must be a dictionary member", path[i])
		}
	}
}

func TestFindPathAdjacentPair(t *testing.T) {
	eng := createPathEngine(t, []string{"sale", "pale", "opal"}, "sale", "pale")

	path := eng.FindPath()
	if len(path) != 2 || path[0] != "sale" || path[1] != "pale" {
		t.Errorf("Expected [sale pale], got %v", path)
	}
}

func TestFindPathNoPath(t *testing.T) {
	// opal has no one-letter neighbors in this pool
	eng := createPathEngine(t, []string{"sale", "pale", "pane", "opal"}, "sale", "opal")

	path := eng.FindPath()
	if len(path) != 0 {
		t.Errorf("Expected empty path, got %v", path)
	}
}

func TestFindPathAfterNewGame(t *testing.T) {
	words := []string{"cold", "cord", "card", "ward", "warm"}
	eng := createPathEngine(t, words, "cold", "warm")

	// The path reflects the current pair even after attempts and resets
	eng.SubmitWord("cord")
	eng.ResetGame()

	path := eng.FindPath()
	if len(path) == 0 || path[0] != "cold" || path[len(path)-1] != "warm" {
		t.Errorf("Expected ladder from cold to warm, got %v", path)
	}
}
