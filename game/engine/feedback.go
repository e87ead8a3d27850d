package engine

import "strings"

// Feedback scores word against the target, one Mark per letter position:
// MarkCorrect when the letter matches the target at that position,
// MarkPresent when it occurs anywhere else in the target, MarkAbsent
// otherwise. Words of the wrong length get a nil result.
//
// Present is a pure containment check with no count limiting: a letter
// repeated in the guess can be marked Present more times than it occurs in
// the target. This matches the original game's scoring and is intentionally
// not Wordle-style duplicate-limited accounting.
func (e *GameEngine) Feedback(word string) []Mark {
	word = normalize(word)
	if len(word) != len(e.targetWord) {
		return nil
	}

	marks := make([]Mark, len(word))
	for i := 0; i < len(word); i++ {
		switch {
		case word[i] == e.targetWord[i]:
			marks[i] = MarkCorrect
		case strings.IndexByte(e.targetWord, word[i]) >= 0:
			marks[i] = MarkPresent
		default:
			marks[i] = MarkAbsent
		}
	}
	return marks
}
