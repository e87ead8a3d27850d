package dictionary

import (
	"math/rand"
	"os"
	"path/filepath"
	"testing"
)

func TestNew(t *testing.T) {
	dict, err := New([]string{"sale", "PALE", " pane ", "opal", "sale", "toolong", "ab", "c4fe"}, 4)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if dict.WordLength() != 4 {
		t.Errorf("Expected word length 4, got %d", dict.WordLength())
	}

	// "sale" deduped, "toolong"/"ab" filtered by length, "c4fe" by charset
	if dict.Len() != 4 {
		t.Errorf("Expected 4 words, got %d", dict.Len())
	}

	tests := []struct {
		word string
		want bool
	}{
		{"sale", true},
		{"SALE", true},
		{"pale", true},
		{"pane", true},
		{"opal", true},
		{"toolong", false},
		{"ab", false},
		{"c4fe", false},
		{"zinc", false},
	}

	for _, tt := range tests {
		if got := dict.Contains(tt.word); got != tt.want {
			t.Errorf("Contains(%q) = %v, want %v", tt.word, got, tt.want)
		}
	}
}

func TestNewTooFewWords(t *testing.T) {
	if _, err := New([]string{"sale"}, 4); err == nil {
		t.Error("Expected error for single-word dictionary")
	}

	if _, err := New([]string{"toolong", "words"}, 4); err == nil {
		t.Error("Expected error when no words survive filtering")
	}
}

func TestNewInvalidLength(t *testing.T) {
	for _, length := range []int{0, 2, 9, -3} {
		if _, err := New([]string{"sale", "pale"}, length); err == nil {
			t.Errorf("Expected error for word length %d", length)
		}
	}
}

func TestSample(t *testing.T) {
	dict, err := New([]string{"sale", "pale", "pane", "opal"}, 4)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	r := rand.New(rand.NewSource(42))
	for i := 0; i < 50; i++ {
		w := dict.Sample(r, "sale")
		if !dict.Contains(w) {
			t.Fatalf("Sample returned non-member %q", w)
		}
	}
}

func TestSampleDeterministic(t *testing.T) {
	dict, err := New([]string{"sale", "pale", "pane", "opal"}, 4)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	a := dict.Sample(rand.New(rand.NewSource(7)), "sale")
	b := dict.Sample(rand.New(rand.NewSource(7)), "sale")
	if a != b {
		t.Errorf("Same seed should sample the same word, got %q and %q", a, b)
	}
}

func TestSampleEmptyFallback(t *testing.T) {
	// Constructing an empty dictionary is not possible through New, so build
	// the degenerate value directly to exercise the fallback path.
	d := &Dictionary{wordLength: 4, lookup: map[string]struct{}{}}
	if got := d.Sample(rand.New(rand.NewSource(1)), "sale"); got != "sale" {
		t.Errorf("Expected fallback word, got %q", got)
	}
}

func TestWordsReturnsCopy(t *testing.T) {
	dict, err := New([]string{"sale", "pale"}, 4)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	words := dict.Words()
	words[0] = "hack"

	if !dict.Contains("sale") || dict.Words()[0] == "hack" {
		t.Error("Mutating the returned slice should not affect the dictionary")
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "words.txt")
	content := "sale\npale\nPANE\nopal\n\nnotfourletters\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write fixture: %v", err)
	}

	dict, err := Load(path, 4)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if dict.Len() != 4 {
		t.Errorf("Expected 4 words, got %d", dict.Len())
	}
	if !dict.Contains("pane") {
		t.Error("Expected lowercased 'pane' to be present")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load("/non/existent/words.txt", 4); err == nil {
		t.Error("Expected error for missing file")
	}
}

func TestDefault(t *testing.T) {
	for _, length := range []int{3, 4, 5} {
		dict, err := Default(length)
		if err != nil {
			t.Fatalf("Default(%d) failed: %v", length, err)
		}
		if dict.Len() < 2 {
			t.Errorf("Default(%d) has %d words", length, dict.Len())
		}
		for _, w := range dict.Words() {
			if len(w) != length {
				t.Fatalf("Default(%d) contains %q", length, w)
			}
		}
	}

	dict, err := Default(DefaultWordLength)
	if err != nil {
		t.Fatalf("Default failed: %v", err)
	}
	for _, w := range []string{"sale", "pale", "pane", "pant", "opal", "oval"} {
		if !dict.Contains(w) {
			t.Errorf("Expected default list to contain %q", w)
		}
	}
}
