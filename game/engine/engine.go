package engine

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/mfigueredo/weaver/game/dictionary"
)

// Engine provides the main interface for game operations
type Engine interface {
	// Game state
	GetStartWord() string
	GetTargetWord() string
	GetCurrentAttempt() int
	GetAttempts() []string
	HasWon() bool
	GetState() *GameState
	SetState(state *GameState) error

	// Play operations
	SubmitWord(word string) bool
	IsValidWord(word string) bool
	ResetGame()
	NewGame()

	// Solution and feedback
	FindPath() []string
	Feedback(word string) []Mark

	// Settings
	IsShowErrorMessages() bool
	SetShowErrorMessages(flag bool)
	IsShowPath() bool
	SetShowPath(flag bool)
	IsRandomWords() bool
	SetRandomWords(flag bool)

	// Configuration and notifications
	GetConfig() *GameConfig
	GetDictionary() *dictionary.Dictionary
	OnChange(fn func())
}

// GameEngine implements the Engine interface
type GameEngine struct {
	dict   *dictionary.Dictionary
	config *GameConfig
	rng    *rand.Rand

	startWord         string
	targetWord        string
	attempts          []string
	currentAttempt    int
	showErrorMessages bool
	showPath          bool
	randomWords       bool

	listeners []func()
}

// NewEngine creates a new game engine playing over dict with the provided
// configuration. rng drives random word selection; pass nil for a
// time-seeded source. The config's default word pair must be present in the
// dictionary.
func NewEngine(dict *dictionary.Dictionary, config *GameConfig, rng *rand.Rand) (*GameEngine, error) {
	if dict == nil {
		return nil, fmt.Errorf("dictionary cannot be nil")
	}
	if err := ValidateGameConfig(config); err != nil {
		return nil, err
	}
	if config.WordLength != dict.WordLength() {
		return nil, fmt.Errorf("config word_length %d does not match dictionary word length %d",
			config.WordLength, dict.WordLength())
	}
	for _, w := range []string{config.StartWord, config.TargetWord} {
		if !dict.Contains(w) {
			return nil, fmt.Errorf("default word %q is not in the dictionary", w)
		}
	}

	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	e := &GameEngine{
		dict:              dict,
		config:            config,
		rng:               rng,
		attempts:          []string{},
		showErrorMessages: config.ShowErrors,
		showPath:          config.ShowPath,
		randomWords:       config.RandomWords,
	}
	e.initializeGame()
	return e, nil
}

// initializeGame sets up the word pair and empty attempt list. Used by the
// constructor and NewGame; only the latter notifies.
func (e *GameEngine) initializeGame() {
	e.attempts = []string{}
	e.currentAttempt = 0

	if e.randomWords {
		e.startWord = e.dict.Sample(e.rng, e.config.StartWord)
		e.targetWord = e.drawDistinctTarget(e.startWord)
	} else {
		e.startWord = e.config.StartWord
		e.targetWord = e.config.TargetWord
	}
}

// drawDistinctTarget samples a target word different from start. The draw
// loop is bounded; if it exhausts the budget the configured default pair is
// used wholesale so the distinct-words invariant still holds.
func (e *GameEngine) drawDistinctTarget(start string) string {
	for i := 0; i < MaxTargetDraws; i++ {
		target := e.dict.Sample(e.rng, e.config.TargetWord)
		if target != start {
			return target
		}
	}
	e.startWord = e.config.StartWord
	return e.config.TargetWord
}

// GetStartWord returns the word the ladder starts from.
func (e *GameEngine) GetStartWord() string {
	return e.startWord
}

// GetTargetWord returns the word the player is weaving toward.
func (e *GameEngine) GetTargetWord() string {
	return e.targetWord
}

// GetCurrentAttempt returns the number of accepted attempts so far.
func (e *GameEngine) GetCurrentAttempt() int {
	return e.currentAttempt
}

// GetAttempts returns a copy of the accepted attempt history in order.
func (e *GameEngine) GetAttempts() []string {
	out := make([]string, len(e.attempts))
	copy(out, e.attempts)
	return out
}

// GetConfig returns the configuration the engine was built with.
func (e *GameEngine) GetConfig() *GameConfig {
	return e.config
}

// GetDictionary returns the immutable dictionary the engine plays over.
func (e *GameEngine) GetDictionary() *dictionary.Dictionary {
	return e.dict
}

// IsShowErrorMessages returns the error-message display flag.
func (e *GameEngine) IsShowErrorMessages() bool {
	return e.showErrorMessages
}

// SetShowErrorMessages stores the error-message display flag.
func (e *GameEngine) SetShowErrorMessages(flag bool) {
	e.showErrorMessages = flag
	e.notify()
}

// IsShowPath returns the solution-path display flag.
func (e *GameEngine) IsShowPath() bool {
	return e.showPath
}

// SetShowPath stores the solution-path display flag.
func (e *GameEngine) SetShowPath(flag bool) {
	e.showPath = flag
	e.notify()
}

// IsRandomWords returns whether word pairs are drawn randomly.
func (e *GameEngine) IsRandomWords() bool {
	return e.randomWords
}

// SetRandomWords stores the random-words flag. Changing this setting always
// starts a fresh game.
func (e *GameEngine) SetRandomWords(flag bool) {
	e.randomWords = flag
	e.NewGame()
}

// OnChange registers a callback fired once after every mutating call.
func (e *GameEngine) OnChange(fn func()) {
	if fn != nil {
		e.listeners = append(e.listeners, fn)
	}
}

// notify fires all registered state-change callbacks.
func (e *GameEngine) notify() {
	for _, fn := range e.listeners {
		fn()
	}
}

// status reports where the session stands.
func (e *GameEngine) status() GameStatus {
	switch {
	case e.HasWon():
		return StatusWon
	case len(e.attempts) > 0:
		return StatusInProgress
	default:
		return StatusFresh
	}
}

// GetState returns a snapshot of the current session.
func (e *GameEngine) GetState() *GameState {
	return &GameState{
		StartWord:         e.startWord,
		TargetWord:        e.targetWord,
		Attempts:          e.GetAttempts(),
		CurrentAttempt:    e.currentAttempt,
		Status:            e.status(),
		Won:               e.HasWon(),
		WordLength:        e.dict.WordLength(),
		ShowErrorMessages: e.showErrorMessages,
		ShowPath:          e.showPath,
		RandomWords:       e.randomWords,
		ConfigName:        e.config.Name,
	}
}

// SetState restores a snapshot, typically one loaded from persistence. The
// snapshot must satisfy the session invariants: both words in the
// dictionary and distinct, and every attempt a dictionary member one letter
// away from its predecessor.
func (e *GameEngine) SetState(state *GameState) error {
	if state == nil {
		return fmt.Errorf("state cannot be nil")
	}
	if state.WordLength != 0 && state.WordLength != e.dict.WordLength() {
		return fmt.Errorf("state word_length %d does not match dictionary word length %d",
			state.WordLength, e.dict.WordLength())
	}
	for _, w := range []string{state.StartWord, state.TargetWord} {
		if !e.dict.Contains(w) {
			return fmt.Errorf("state word %q is not in the dictionary", w)
		}
	}
	if state.StartWord == state.TargetWord {
		return fmt.Errorf("state start and target words must differ, both are %q", state.StartWord)
	}

	prev := state.StartWord
	for i, attempt := range state.Attempts {
		if !e.dict.Contains(attempt) {
			return fmt.Errorf("state attempt %d (%q) is not in the dictionary", i, attempt)
		}
		if !differsByOneLetter(prev, attempt) {
			return fmt.Errorf("state attempt %d (%q) is not one letter from %q", i, attempt, prev)
		}
		prev = attempt
	}

	e.startWord = state.StartWord
	e.targetWord = state.TargetWord
	e.attempts = append([]string{}, state.Attempts...)
	e.currentAttempt = len(e.attempts)
	e.showErrorMessages = state.ShowErrorMessages
	e.showPath = state.ShowPath
	e.randomWords = state.RandomWords
	return nil
}
