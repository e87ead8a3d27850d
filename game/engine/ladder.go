package engine

import "strings"

// SubmitWord validates and records one attempt. Invalid submissions return
// false and leave the session untouched; accepted words are appended to the
// attempt history and fire a state-change notification. Winning does not
// block further submissions, that policy belongs to the caller.
func (e *GameEngine) SubmitWord(word string) bool {
	word = normalize(word)

	if !e.IsValidWord(word) {
		return false
	}

	e.attempts = append(e.attempts, word)
	e.currentAttempt++
	e.notify()
	return true
}

// IsValidWord reports whether word would be accepted right now: it must be a
// dictionary member and differ by exactly one letter from the last accepted
// attempt, or from the start word when no attempts exist. Words of the wrong
// length are rejected, never a crash.
func (e *GameEngine) IsValidWord(word string) bool {
	word = normalize(word)

	if len(word) != e.dict.WordLength() {
		return false
	}
	if !e.dict.Contains(word) {
		return false
	}

	if len(e.attempts) > 0 {
		return differsByOneLetter(e.attempts[len(e.attempts)-1], word)
	}
	return differsByOneLetter(e.startWord, word)
}

// HasWon reports whether the last accepted attempt equals the target word.
func (e *GameEngine) HasWon() bool {
	if len(e.attempts) == 0 {
		return false
	}
	return e.attempts[len(e.attempts)-1] == e.targetWord
}

// ResetGame clears the attempt history and keeps the same word pair.
func (e *GameEngine) ResetGame() {
	e.attempts = []string{}
	e.currentAttempt = 0
	e.notify()
}

// NewGame clears the attempt history and picks fresh words: a random pair
// when the random-words flag is set, otherwise the configured default pair.
func (e *GameEngine) NewGame() {
	e.initializeGame()
	e.notify()
}

// differsByOneLetter reports whether two equal-length words differ in exactly
// one letter position. Identical words and words differing in two or more
// positions both fail.
func differsByOneLetter(word1, word2 string) bool {
	if len(word1) != len(word2) {
		return false
	}

	differences := 0
	for i := 0; i < len(word1); i++ {
		if word1[i] != word2[i] {
			differences++
			if differences > 1 {
				return false
			}
		}
	}
	return differences == 1
}

// normalize lowercases and trims a submitted word.
func normalize(word string) string {
	return strings.ToLower(strings.TrimSpace(word))
}
