package session

import (
	"sync"
	"testing"
	"time"

	"github.com/mfigueredo/weaver/game/dictionary"
	"github.com/mfigueredo/weaver/game/engine"
)

func createTestConfig() *engine.GameConfig {
	config := &engine.GameConfig{
		Name:        "Session Test Config",
		Description: "Fixed sale to opal ladder",
		WordLength:  4,
		StartWord:   "sale",
		TargetWord:  "opal",
	}
	config.Messages.Welcome = "Weave from %s to %s!"
	config.Messages.InvalidWord = "That word doesn't work here"
	config.Messages.NotInDictionary = "'%s' is not in the dictionary"
	config.Messages.NotOneLetter = "'%s' must change exactly one letter"
	config.Messages.WordAccepted = "'%s' accepted"
	config.Messages.Victory = "You reached %s in %d steps!"
	config.Messages.Reset = "Game reset"
	config.Messages.NewGame = "New game: %s to %s"
	return config
}

func TestManager_Create(t *testing.T) {
	manager := NewManager(dictionary.NewCatalog())
	config := createTestConfig()

	t.Run("create with custom ID", func(t *testing.T) {
		session, err := manager.Create("test-session", config)
		if err != nil {
			t.Fatalf("Failed to create session: %v", err)
		}
		if session.ID != "test-session" {
			t.Errorf("Expected session ID 'test-session', got '%s'", session.ID)
		}
		if session.Engine == nil {
			t.Error("Expected engine to be initialized")
		}
		if session.Engine.GetStartWord() != "sale" {
			t.Errorf("Expected start word 'sale', got '%s'", session.Engine.GetStartWord())
		}
	})

	t.Run("create with auto-generated ID", func(t *testing.T) {
		session, err := manager.Create("", config)
		if err != nil {
			t.Fatalf("Failed to create session: %v", err)
		}
		if session.ID == "" {
			t.Error("Expected auto-generated session ID")
		}
		if len(session.ID) != 4 {
			t.Errorf("Expected 4-character session ID, got %d characters", len(session.ID))
		}
	})

	t.Run("duplicate session ID", func(t *testing.T) {
		_, err := manager.Create("test-session", config)
		if err != ErrSessionAlreadyExists {
			t.Errorf("Expected ErrSessionAlreadyExists, got %v", err)
		}
	})

	t.Run("case-insensitive duplicate check", func(t *testing.T) {
		_, err := manager.Create("TEST-SESSION", config)
		if err != ErrSessionAlreadyExists {
			t.Errorf("Expected ErrSessionAlreadyExists for case variant, got %v", err)
		}
	})

	t.Run("invalid config", func(t *testing.T) {
		invalidConfig := createTestConfig()
		invalidConfig.TargetWord = invalidConfig.StartWord
		_, err := manager.Create("invalid-test", invalidConfig)
		if err == nil {
			t.Error("Expected error for invalid config")
		}
	})

	t.Run("missing dictionary file", func(t *testing.T) {
		badConfig := createTestConfig()
		badConfig.DictionaryFile = "/nonexistent/words.txt"
		_, err := manager.Create("bad-dict", badConfig)
		if err == nil {
			t.Error("Expected error for missing dictionary file")
		}
	})
}

func TestManager_Get(t *testing.T) {
	manager := NewManager(dictionary.NewCatalog())
	config := createTestConfig()

	created, _ := manager.Create("get-test", config)

	t.Run("get existing session", func(t *testing.T) {
		session, err := manager.Get("get-test")
		if err != nil {
			t.Fatalf("Failed to get session: %v", err)
		}
		if session.ID != created.ID {
			t.Errorf("Expected session ID '%s', got '%s'", created.ID, session.ID)
		}
	})

	t.Run("case-insensitive get", func(t *testing.T) {
		session, err := manager.Get("GET-TEST")
		if err != nil {
			t.Fatalf("Failed to get session with different case: %v", err)
		}
		if session.ID != created.ID {
			t.Errorf("Expected same session regardless of case")
		}
	})

	t.Run("get non-existent session", func(t *testing.T) {
		_, err := manager.Get("non-existent")
		if err != ErrSessionNotFound {
			t.Errorf("Expected ErrSessionNotFound, got %v", err)
		}
	})
}

func TestManager_GetOrCreate(t *testing.T) {
	manager := NewManager(dictionary.NewCatalog())
	config := createTestConfig()

	t.Run("create new session", func(t *testing.T) {
		session, err := manager.GetOrCreate("new-session", config)
		if err != nil {
			t.Fatalf("Failed to get or create session: %v", err)
		}
		if session.ID != "new-session" {
			t.Errorf("Expected session ID 'new-session', got '%s'", session.ID)
		}
	})

	t.Run("get existing session", func(t *testing.T) {
		first, _ := manager.Get("new-session")
		first.Engine.SubmitWord("pale")

		session, err := manager.GetOrCreate("new-session", config)
		if err != nil {
			t.Fatalf("Failed to get existing session: %v", err)
		}
		if len(session.Engine.GetAttempts()) != 1 {
			t.Error("Expected the same session, not a fresh one")
		}
	})
}

func TestManager_Delete(t *testing.T) {
	manager := NewManager(dictionary.NewCatalog())
	config := createTestConfig()

	manager.Create("delete-test", config)

	t.Run("delete existing session", func(t *testing.T) {
		err := manager.Delete("delete-test")
		if err != nil {
			t.Fatalf("Failed to delete session: %v", err)
		}

		_, err = manager.Get("delete-test")
		if err != ErrSessionNotFound {
			t.Error("Expected session to be deleted")
		}
	})

	t.Run("delete non-existent session", func(t *testing.T) {
		err := manager.Delete("non-existent")
		if err != ErrSessionNotFound {
			t.Errorf("Expected ErrSessionNotFound, got %v", err)
		}
	})

	t.Run("case-insensitive delete", func(t *testing.T) {
		manager.Create("case-test", config)
		err := manager.Delete("CASE-TEST")
		if err != nil {
			t.Fatalf("Failed to delete with different case: %v", err)
		}
		_, err = manager.Get("case-test")
		if err != ErrSessionNotFound {
			t.Error("Expected session to be deleted regardless of case")
		}
	})
}

func TestManager_List(t *testing.T) {
	manager := NewManager(dictionary.NewCatalog())
	config := createTestConfig()

	session1, _ := manager.Create("list-1", config)
	session2, _ := manager.Create("list-2", config)
	session3, _ := manager.Create("list-3", config)

	sessions := manager.List()

	if len(sessions) != 3 {
		t.Errorf("Expected 3 sessions, got %d", len(sessions))
	}

	foundSessions := make(map[string]bool)
	for _, s := range sessions {
		foundSessions[s.ID] = true
	}

	for _, s := range []string{session1.ID, session2.ID, session3.ID} {
		if !foundSessions[s] {
			t.Errorf("Session %s not found in list", s)
		}
	}
}

func TestManager_UpdateLastAccessed(t *testing.T) {
	manager := NewManager(dictionary.NewCatalog())
	config := createTestConfig()

	session, _ := manager.Create("access-test", config)
	before := session.LastAccessedAt

	time.Sleep(5 * time.Millisecond)

	if err := manager.UpdateLastAccessed("access-test"); err != nil {
		t.Fatalf("Failed to update last accessed: %v", err)
	}
	if !session.LastAccessedAt.After(before) {
		t.Error("Expected last accessed time to advance")
	}

	if err := manager.UpdateLastAccessed("missing"); err != ErrSessionNotFound {
		t.Errorf("Expected ErrSessionNotFound, got %v", err)
	}
}

func TestManager_CleanupExpired(t *testing.T) {
	manager := NewManager(dictionary.NewCatalog())
	config := createTestConfig()

	active, _ := manager.Create("active", config)
	expired, _ := manager.Create("expired", config)

	expired.LastAccessedAt = time.Now().Add(-2 * time.Hour)
	active.LastAccessedAt = time.Now()

	deleted := manager.CleanupExpiredSessions(1 * time.Hour)

	if deleted != 1 {
		t.Errorf("Expected 1 expired session removed, got %d", deleted)
	}
	if _, err := manager.Get("active"); err != nil {
		t.Error("Active session should survive cleanup")
	}
	if _, err := manager.Get("expired"); err != ErrSessionNotFound {
		t.Error("Expired session should be removed")
	}
	if manager.Count() != 1 {
		t.Errorf("Expected 1 remaining session, got %d", manager.Count())
	}
}

func TestManager_ConcurrentAccess(t *testing.T) {
	manager := NewManager(dictionary.NewCatalog())
	config := createTestConfig()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			session, err := manager.Create("", config)
			if err != nil {
				// Generated IDs are only 2 bytes; collisions are possible
				if err != ErrSessionAlreadyExists {
					t.Errorf("Unexpected create error: %v", err)
				}
				return
			}
			if _, err := manager.Get(session.ID); err != nil {
				t.Errorf("Failed to get session %s: %v", session.ID, err)
			}
		}()
	}
	wg.Wait()

	if manager.Count() == 0 {
		t.Error("Expected at least one session after concurrent creates")
	}
}
