package service

import (
	"time"

	"github.com/mfigueredo/weaver/game/engine"
)

// SessionInfo provides information about a game session
type SessionInfo struct {
	ID             string             `json:"id"`
	ConfigName     string             `json:"config_name"`
	CreatedAt      time.Time          `json:"created_at"`
	LastAccessedAt time.Time          `json:"last_accessed_at"`
	GameState      *engine.GameState  `json:"game_state"`
	GameConfig     *engine.GameConfig `json:"game_config"`
}

// SubmitResult contains the result of a word submission
type SubmitResult struct {
	Success   bool              `json:"success"`
	Word      string            `json:"word"`
	Feedback  []engine.Mark     `json:"feedback,omitempty"`
	Won       bool              `json:"won"`
	Message   string            `json:"message,omitempty"`
	GameState *engine.GameState `json:"game_state"`
	Events    []GameEvent       `json:"events,omitempty"`

	// Path is filled on a winning submission when the session has the
	// show-path flag on, so callers can display the optimal ladder next to
	// the one the player found.
	Path []string `json:"path,omitempty"`
}

// GameEvent represents an event that occurred during gameplay
type GameEvent struct {
	Type      string    `json:"type"` // "word_accepted", "word_rejected", "victory", "reset", "new_game", "settings_changed"
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// PathResult contains a computed shortest solution ladder
type PathResult struct {
	Found bool     `json:"found"`
	Path  []string `json:"path"`
	Steps int      `json:"steps"` // letter changes from start to target, 0 when not found
}

// FeedbackResult contains per-letter feedback for a candidate word
type FeedbackResult struct {
	Word     string        `json:"word"`
	Feedback []engine.Mark `json:"feedback"`
}

// SettingsUpdate carries optional flag changes; nil fields are left untouched
type SettingsUpdate struct {
	RandomWords       *bool `json:"random_words,omitempty"`
	ShowPath          *bool `json:"show_path,omitempty"`
	ShowErrorMessages *bool `json:"show_error_messages,omitempty"`
}

// HistoryOptions configures attempt history retrieval
type HistoryOptions struct {
	Page  int    `json:"page"`
	Limit int    `json:"limit"`
	Order string `json:"order"` // "asc" or "desc"
}

// HistoryResponse contains paginated attempt history
type HistoryResponse struct {
	Attempts      []string `json:"attempts"`
	TotalAttempts int      `json:"total_attempts"`
	Page          int      `json:"page"`
	PageSize      int      `json:"page_size"`
	TotalPages    int      `json:"total_pages"`
	HasNext       bool     `json:"has_next"`
	HasPrevious   bool     `json:"has_previous"`
}

// ConfigInfo provides information about a game configuration
type ConfigInfo struct {
	Filename    string `json:"filename"`
	ConfigID    string `json:"config_id"` // The identifier to use for session creation
	Name        string `json:"name"`      // Display name
	Description string `json:"description"`
	WordLength  int    `json:"word_length"`
	RandomWords bool   `json:"random_words"`
}
