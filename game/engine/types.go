package engine

// Mark represents the evaluation result for a single letter of a guess.
type Mark string

const (
	// MarkCorrect means the letter matches the target at this position.
	MarkCorrect Mark = "correct"
	// MarkPresent means the letter occurs somewhere else in the target.
	MarkPresent Mark = "present"
	// MarkAbsent means the letter does not occur in the target at all.
	MarkAbsent Mark = "absent"
)

// GameStatus is a coarse description of where a session stands.
type GameStatus string

const (
	StatusFresh      GameStatus = "fresh"
	StatusInProgress GameStatus = "in_progress"
	StatusWon        GameStatus = "won"
)

const (
	// MaxTargetDraws bounds the rejection-sampling loop that picks a target
	// word distinct from the start word. The dictionary guarantees at least
	// two words, so the loop terminates long before this in practice; hitting
	// the bound falls back to the configured default pair.
	MaxTargetDraws = 64

	// AlphabetSize is the number of letters candidates are substituted from.
	AlphabetSize = 26
)

// GameState is a JSON-friendly snapshot of one session. It carries everything
// needed to persist and later restore an engine.
type GameState struct {
	StartWord         string     `json:"start_word"`
	TargetWord        string     `json:"target_word"`
	Attempts          []string   `json:"attempts"`
	CurrentAttempt    int        `json:"current_attempt"`
	Status            GameStatus `json:"status"`
	Won               bool       `json:"won"`
	WordLength        int        `json:"word_length"`
	ShowErrorMessages bool       `json:"show_error_messages"`
	ShowPath          bool       `json:"show_path"`
	RandomWords       bool       `json:"random_words"`
	ConfigName        string     `json:"config_name"`
}
