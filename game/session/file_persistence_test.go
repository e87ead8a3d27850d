package session

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/mfigueredo/weaver/game/config"
	"github.com/mfigueredo/weaver/game/dictionary"
	"github.com/mfigueredo/weaver/game/engine"
	"github.com/mfigueredo/weaver/game/service"
)

func TestFilePersistence(t *testing.T) {
	tempDir := t.TempDir()

	configManager, err := config.NewManager("../../configs")
	if err != nil {
		t.Fatalf("Failed to create config manager: %v", err)
	}

	dicts := dictionary.NewCatalog()
	persistence, err := NewFilePersistence(tempDir, configManager, dicts)
	if err != nil {
		t.Fatalf("Failed to create file persistence: %v", err)
	}

	gameConfig := configManager.GetDefault()
	dict, err := dicts.Resolve(gameConfig.DictionaryFile, gameConfig.WordLength)
	if err != nil {
		t.Fatalf("Failed to resolve dictionary: %v", err)
	}
	gameEngine, err := engine.NewEngine(dict, gameConfig, nil)
	if err != nil {
		t.Fatalf("Failed to create engine: %v", err)
	}

	session := &service.Session{
		ID:             "test1",
		Engine:         gameEngine,
		Config:         gameConfig,
		CreatedAt:      time.Now(),
		LastAccessedAt: time.Now(),
	}

	t.Run("Save and Load Session", func(t *testing.T) {
		err := persistence.Save(session)
		if err != nil {
			t.Fatalf("Failed to save session: %v", err)
		}

		if !persistence.Exists("test1") {
			t.Error("Session file should exist after save")
		}

		loadedSession, err := persistence.Load("test1")
		if err != nil {
			t.Fatalf("Failed to load session: %v", err)
		}

		if loadedSession.ID != session.ID {
			t.Errorf("Expected ID %s, got %s", session.ID, loadedSession.ID)
		}
		if loadedSession.Config.Name != session.Config.Name {
			t.Errorf("Expected config name %s, got %s", session.Config.Name, loadedSession.Config.Name)
		}
		if loadedSession.Engine.GetStartWord() != session.Engine.GetStartWord() {
			t.Errorf("Expected start word %s, got %s",
				session.Engine.GetStartWord(), loadedSession.Engine.GetStartWord())
		}
	})

	t.Run("Save State Changes", func(t *testing.T) {
		if !session.Engine.SubmitWord("pale") {
			t.Fatal("Expected 'pale' to be accepted")
		}

		err := persistence.Save(session)
		if err != nil {
			t.Fatalf("Failed to save updated session: %v", err)
		}

		loadedSession, err := persistence.Load("test1")
		if err != nil {
			t.Fatalf("Failed to load updated session: %v", err)
		}

		attempts := loadedSession.Engine.GetAttempts()
		if len(attempts) != 1 || attempts[0] != "pale" {
			t.Errorf("Attempt history not persisted correctly, got %v", attempts)
		}
		if loadedSession.Engine.GetCurrentAttempt() != 1 {
			t.Errorf("Expected attempt counter 1, got %d", loadedSession.Engine.GetCurrentAttempt())
		}
	})

	t.Run("List All Sessions", func(t *testing.T) {
		session2 := &service.Session{
			ID:             "test2",
			Engine:         gameEngine,
			Config:         gameConfig,
			CreatedAt:      time.Now(),
			LastAccessedAt: time.Now(),
		}
		err := persistence.Save(session2)
		if err != nil {
			t.Fatalf("Failed to save second session: %v", err)
		}

		sessionIDs, err := persistence.ListAll()
		if err != nil {
			t.Fatalf("Failed to list sessions: %v", err)
		}

		if len(sessionIDs) < 2 {
			t.Errorf("Expected at least 2 sessions, got %d", len(sessionIDs))
		}

		found := make(map[string]bool)
		for _, id := range sessionIDs {
			found[id] = true
		}
		if !found["test1"] || !found["test2"] {
			t.Error("Expected sessions not found in list")
		}
	})

	t.Run("Delete Session", func(t *testing.T) {
		err := persistence.Delete("test2")
		if err != nil {
			t.Fatalf("Failed to delete session: %v", err)
		}

		if persistence.Exists("test2") {
			t.Error("Session should not exist after delete")
		}

		_, err = persistence.Load("test2")
		if err == nil {
			t.Error("Should not be able to load deleted session")
		}
	})

	t.Run("Error Cases", func(t *testing.T) {
		_, err := persistence.Load("nonexistent")
		if err == nil {
			t.Error("Should get error when loading non-existent session")
		}

		err = persistence.Delete("nonexistent")
		if err == nil {
			t.Error("Should get error when deleting non-existent session")
		}

		err = persistence.Save(nil)
		if err == nil {
			t.Error("Should get error when saving nil session")
		}
	})
}

func TestFilePersistenceFileStructure(t *testing.T) {
	tempDir := t.TempDir()

	configManager, err := config.NewManager("../../configs")
	if err != nil {
		t.Fatalf("Failed to create config manager: %v", err)
	}

	dicts := dictionary.NewCatalog()
	persistence, err := NewFilePersistence(tempDir, configManager, dicts)
	if err != nil {
		t.Fatalf("Failed to create file persistence: %v", err)
	}

	gameConfig := configManager.GetDefault()
	dict, err := dicts.Resolve(gameConfig.DictionaryFile, gameConfig.WordLength)
	if err != nil {
		t.Fatalf("Failed to resolve dictionary: %v", err)
	}
	gameEngine, err := engine.NewEngine(dict, gameConfig, nil)
	if err != nil {
		t.Fatalf("Failed to create engine: %v", err)
	}

	session := &service.Session{
		ID:             "file_test",
		Engine:         gameEngine,
		Config:         gameConfig,
		CreatedAt:      time.Now(),
		LastAccessedAt: time.Now(),
	}

	err = persistence.Save(session)
	if err != nil {
		t.Fatalf("Failed to save session: %v", err)
	}

	expectedFile := filepath.Join(tempDir, "file_test.json")
	if _, err := os.Stat(expectedFile); os.IsNotExist(err) {
		t.Errorf("Expected file %s does not exist", expectedFile)
	}

	data, err := os.ReadFile(expectedFile)
	if err != nil {
		t.Fatalf("Failed to read session file: %v", err)
	}

	if len(data) == 0 {
		t.Error("Session file should not be empty")
	}

	content := string(data)
	expectedFields := []string{"\"id\"", "\"config_name\"", "\"created_at\"", "\"game_state\""}
	for _, field := range expectedFields {
		if !strings.Contains(content, field) {
			t.Errorf("Session file should contain field %s", field)
		}
	}
}

func TestManagerWithPersistence(t *testing.T) {
	tempDir := t.TempDir()

	configManager, err := config.NewManager("../../configs")
	if err != nil {
		t.Fatalf("Failed to create config manager: %v", err)
	}

	dicts := dictionary.NewCatalog()
	persistence, err := NewFilePersistence(tempDir, configManager, dicts)
	if err != nil {
		t.Fatalf("Failed to create file persistence: %v", err)
	}

	manager := NewManagerWithPersistence(dicts, persistence)
	gameConfig := configManager.GetDefault()

	t.Run("create persists to disk", func(t *testing.T) {
		session, err := manager.Create("persist-1", gameConfig)
		if err != nil {
			t.Fatalf("Failed to create session: %v", err)
		}
		if !persistence.Exists(session.ID) {
			t.Error("Session should be persisted on create")
		}
	})

	t.Run("get falls back to persistence", func(t *testing.T) {
		if err := manager.DeleteFromMemory("persist-1"); err != nil {
			t.Fatalf("Failed to evict session: %v", err)
		}

		session, err := manager.Get("persist-1")
		if err != nil {
			t.Fatalf("Failed to reload persisted session: %v", err)
		}
		if session.ID != "persist-1" {
			t.Errorf("Expected session ID 'persist-1', got '%s'", session.ID)
		}
	})

	t.Run("load persisted sessions on startup", func(t *testing.T) {
		manager.Create("persist-2", gameConfig)

		fresh := NewManagerWithPersistence(dicts, persistence)
		if err := fresh.LoadPersistedSessions(); err != nil {
			t.Fatalf("Failed to load persisted sessions: %v", err)
		}
		if fresh.Count() < 2 {
			t.Errorf("Expected at least 2 sessions after load, got %d", fresh.Count())
		}
	})

	t.Run("delete removes session file", func(t *testing.T) {
		if err := manager.Delete("persist-2"); err != nil {
			t.Fatalf("Failed to delete session: %v", err)
		}
		if persistence.Exists("persist-2") {
			t.Error("Session file should be removed on delete")
		}
	})

	t.Run("save all sessions", func(t *testing.T) {
		if err := manager.SaveAllSessions(); err != nil {
			t.Fatalf("Failed to save all sessions: %v", err)
		}
	})
}
