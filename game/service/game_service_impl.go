package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/mfigueredo/weaver/game/engine"
)

// gameServiceImpl implements the GameService interface
type gameServiceImpl struct {
	sessions SessionManager
	configs  ConfigManager
	mu       sync.RWMutex
}

// NewGameService creates a new game service instance
func NewGameService(sessions SessionManager, configs ConfigManager) GameService {
	return &gameServiceImpl{
		sessions: sessions,
		configs:  configs,
	}
}

// getConfigID returns the config_id for a given config display name, used for
// consistent API responses.
func (s *gameServiceImpl) getConfigID(configName string) string {
	availableConfigs, err := s.configs.ListConfigs()
	if err == nil {
		for _, cfg := range availableConfigs {
			if cfg.Name == configName {
				return cfg.ConfigID
			}
		}
	}
	if configName == "" {
		return "default"
	}
	return configName
}

// CreateSession creates a new game session
func (s *gameServiceImpl) CreateSession(ctx context.Context, configName string) (*SessionInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var config *engine.GameConfig
	var err error
	if configName != "" {
		config, err = s.configs.LoadConfig(configName)
		if err != nil {
			if strings.Contains(err.Error(), "configuration not found") {
				availableConfigs, listErr := s.configs.ListConfigs()
				if listErr == nil && len(availableConfigs) > 0 {
					var configIDs []string
					for _, cfg := range availableConfigs {
						configIDs = append(configIDs, cfg.ConfigID)
					}
					return nil, fmt.Errorf("config '%s' not found. Available configs: %v", configName, configIDs)
				}
				return nil, fmt.Errorf("config '%s' not found. Use /api/configs to list available configurations", configName)
			}
			return nil, fmt.Errorf("failed to load config %s: %w", configName, err)
		}
	} else {
		config = s.configs.GetDefault()
	}

	// Let the session manager generate an ID
	session, err := s.sessions.Create("", config)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	configID := configName
	if configID == "" {
		configID = s.getConfigID(config.Name)
	}

	return s.sessionInfoWithConfigID(session, configID), nil
}

// GetSession retrieves session information
func (s *gameServiceImpl) GetSession(ctx context.Context, sessionID string) (*SessionInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}

	s.sessions.UpdateLastAccessed(sessionID)

	return s.sessionInfo(session), nil
}

// ListSessions returns all active sessions
func (s *gameServiceImpl) ListSessions(ctx context.Context) ([]*SessionInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sessions := s.sessions.List()
	result := make([]*SessionInfo, 0, len(sessions))
	for _, sess := range sessions {
		result = append(result, s.sessionInfo(sess))
	}
	return result, nil
}

// DeleteSession removes a session
func (s *gameServiceImpl) DeleteSession(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.sessions.Delete(sessionID)
}

// SubmitWord validates and records one attempt for a session. The returned
// result carries feedback, config-driven messages, and the events the
// submission produced. An unknown session is an error; a rejected word is
// not, it comes back with Success=false and untouched game state.
func (s *gameServiceImpl) SubmitWord(ctx context.Context, sessionID, word string) (*SubmitResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}

	eng := session.Engine
	messages := session.Config.Messages
	word = strings.ToLower(strings.TrimSpace(word))
	now := time.Now()

	result := &SubmitResult{Word: word}

	if !eng.SubmitWord(word) {
		result.Success = false
		if eng.IsShowErrorMessages() {
			result.Message = s.rejectionMessage(session, word)
		}
		result.GameState = eng.GetState()
		result.Events = []GameEvent{{
			Type:      "word_rejected",
			Message:   s.rejectionMessage(session, word),
			Timestamp: now,
		}}
		s.sessions.UpdateLastAccessed(sessionID)
		return result, nil
	}

	result.Success = true
	result.Feedback = eng.Feedback(word)
	result.Won = eng.HasWon()
	result.Message = fmt.Sprintf(messages.WordAccepted, word)
	result.Events = []GameEvent{{
		Type:      "word_accepted",
		Message:   fmt.Sprintf(messages.WordAccepted, word),
		Timestamp: now,
	}}

	if result.Won {
		victory := fmt.Sprintf(messages.Victory, eng.GetTargetWord(), eng.GetCurrentAttempt())
		result.Message = victory
		result.Events = append(result.Events, GameEvent{
			Type:      "victory",
			Message:   victory,
			Timestamp: now,
		})
		if eng.IsShowPath() {
			result.Path = eng.FindPath()
		}
	}

	result.GameState = eng.GetState()
	s.sessions.UpdateLastAccessed(sessionID)
	return result, nil
}

// rejectionMessage classifies why a word was not accepted.
func (s *gameServiceImpl) rejectionMessage(session *Session, word string) string {
	messages := session.Config.Messages
	dict := session.Engine.GetDictionary()

	switch {
	case len(word) != dict.WordLength():
		return messages.InvalidWord
	case !dict.Contains(word):
		return fmt.Sprintf(messages.NotInDictionary, word)
	default:
		return fmt.Sprintf(messages.NotOneLetter, word)
	}
}

// Reset clears the attempt history for a session and keeps its word pair.
func (s *gameServiceImpl) Reset(ctx context.Context, sessionID string) (*engine.GameState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}

	session.Engine.ResetGame()
	s.sessions.UpdateLastAccessed(sessionID)
	return session.Engine.GetState(), nil
}

// NewGame starts a fresh game for a session, regenerating the word pair when
// the session plays in random mode.
func (s *gameServiceImpl) NewGame(ctx context.Context, sessionID string) (*engine.GameState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}

	session.Engine.NewGame()
	s.sessions.UpdateLastAccessed(sessionID)
	return session.Engine.GetState(), nil
}

// UpdateSettings applies the non-nil flags. Random-words is applied last
// because flipping it starts a fresh game.
func (s *gameServiceImpl) UpdateSettings(ctx context.Context, sessionID string, update SettingsUpdate) (*engine.GameState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}

	eng := session.Engine
	if update.ShowErrorMessages != nil {
		eng.SetShowErrorMessages(*update.ShowErrorMessages)
	}
	if update.ShowPath != nil {
		eng.SetShowPath(*update.ShowPath)
	}
	if update.RandomWords != nil {
		eng.SetRandomWords(*update.RandomWords)
	}

	s.sessions.UpdateLastAccessed(sessionID)
	return eng.GetState(), nil
}

// GetGameState returns the current state for a session
func (s *gameServiceImpl) GetGameState(ctx context.Context, sessionID string) (*engine.GameState, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}

	return session.Engine.GetState(), nil
}

// GetAttemptHistory returns a paginated view of the accepted attempts.
func (s *gameServiceImpl) GetAttemptHistory(ctx context.Context, sessionID string, opts HistoryOptions) (*HistoryResponse, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}

	attempts := session.Engine.GetAttempts()
	total := len(attempts)

	if opts.Order == "desc" {
		for i, j := 0, total-1; i < j; i, j = i+1, j-1 {
			attempts[i], attempts[j] = attempts[j], attempts[i]
		}
	}

	page := opts.Page
	if page < 1 {
		page = 1
	}
	limit := opts.Limit
	if limit < 1 {
		limit = 20
	}

	totalPages := (total + limit - 1) / limit
	if totalPages == 0 {
		totalPages = 1
	}

	start := (page - 1) * limit
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}

	return &HistoryResponse{
		Attempts:      attempts[start:end],
		TotalAttempts: total,
		Page:          page,
		PageSize:      limit,
		TotalPages:    totalPages,
		HasNext:       page < totalPages,
		HasPrevious:   page > 1 && page <= totalPages,
	}, nil
}

// FindPath computes the shortest solution ladder for a session's current pair.
func (s *gameServiceImpl) FindPath(ctx context.Context, sessionID string) (*PathResult, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}

	path := session.Engine.FindPath()
	result := &PathResult{
		Found: len(path) > 0,
		Path:  path,
	}
	if result.Found {
		result.Steps = len(path) - 1
	}
	return result, nil
}

// GetFeedback scores a candidate word against a session's target word.
func (s *gameServiceImpl) GetFeedback(ctx context.Context, sessionID, word string) (*FeedbackResult, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}

	word = strings.ToLower(strings.TrimSpace(word))
	feedback := session.Engine.Feedback(word)
	if feedback == nil {
		return nil, fmt.Errorf("word must have %d letters, got %q",
			session.Engine.GetDictionary().WordLength(), word)
	}

	return &FeedbackResult{Word: word, Feedback: feedback}, nil
}

// ListConfigs returns all available configurations
func (s *gameServiceImpl) ListConfigs(ctx context.Context) ([]*ConfigInfo, error) {
	return s.configs.ListConfigs()
}

// LoadConfig loads a specific configuration
func (s *gameServiceImpl) LoadConfig(ctx context.Context, configName string) (*engine.GameConfig, error) {
	return s.configs.LoadConfig(configName)
}

// SaveConfig persists a configuration
func (s *gameServiceImpl) SaveConfig(ctx context.Context, configName string, config *engine.GameConfig) error {
	return s.configs.SaveConfig(configName, config)
}

// sessionInfo builds a SessionInfo, resolving the config ID from the display name.
func (s *gameServiceImpl) sessionInfo(session *Session) *SessionInfo {
	return s.sessionInfoWithConfigID(session, s.getConfigID(session.Config.Name))
}

func (s *gameServiceImpl) sessionInfoWithConfigID(session *Session, configID string) *SessionInfo {
	return &SessionInfo{
		ID:             session.ID,
		ConfigName:     configID,
		CreatedAt:      session.CreatedAt,
		LastAccessedAt: session.LastAccessedAt,
		GameState:      session.Engine.GetState(),
		GameConfig:     session.Config,
	}
}
