package config

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/mfigueredo/weaver/game/engine"
)

func createValidConfig() *engine.GameConfig {
	config := &engine.GameConfig{
		Name:        "Test Config",
		Description: "Test configuration",
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

func writeConfigFile(t *testing.T, dir, name string, config *engine.GameConfig) {
	t.Helper()
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		t.Fatalf("Failed to marshal config: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, name+".json"), data, 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}
}

func TestNewManager(t *testing.T) {
	t.Run("missing directory", func(t *testing.T) {
		_, err := NewManager("/nonexistent/config/dir")
		if err == nil {
			t.Error("Expected error for missing config directory")
		}
	})

	t.Run("empty directory uses built-in default", func(t *testing.T) {
		manager, err := NewManager(t.TempDir())
		if err != nil {
			t.Fatalf("Failed to create manager: %v", err)
		}
		def := manager.GetDefault()
		if def == nil {
			t.Fatal("Expected a default config")
		}
		if def.StartWord != "sale" || def.TargetWord != "opal" {
			t.Errorf("Expected built-in sale/opal pair, got %s/%s", def.StartWord, def.TargetWord)
		}
	})

	t.Run("classic config becomes default", func(t *testing.T) {
		dir := t.TempDir()
		classic := createValidConfig()
		classic.Name = "Classic From Disk"
		writeConfigFile(t, dir, "classic", classic)

		manager, err := NewManager(dir)
		if err != nil {
			t.Fatalf("Failed to create manager: %v", err)
		}
		if manager.GetDefault().Name != "Classic From Disk" {
			t.Errorf("Expected classic.json as default, got %s", manager.GetDefault().Name)
		}
	})
}

func TestManager_LoadConfig(t *testing.T) {
	dir := t.TempDir()
	writeConfigFile(t, dir, "alpha", createValidConfig())

	manager, err := NewManager(dir)
	if err != nil {
		t.Fatalf("Failed to create manager: %v", err)
	}

	t.Run("load by name", func(t *testing.T) {
		config, err := manager.LoadConfig("alpha")
		if err != nil {
			t.Fatalf("Failed to load config: %v", err)
		}
		if config.Name != "Test Config" {
			t.Errorf("Expected name 'Test Config', got '%s'", config.Name)
		}
	})

	t.Run("load with .json suffix", func(t *testing.T) {
		config, err := manager.LoadConfig("alpha.json")
		if err != nil {
			t.Fatalf("Failed to load config with suffix: %v", err)
		}
		if config.Name != "Test Config" {
			t.Errorf("Expected name 'Test Config', got '%s'", config.Name)
		}
	})

	t.Run("not found", func(t *testing.T) {
		_, err := manager.LoadConfig("missing")
		if !errors.Is(err, ErrConfigNotFound) {
			t.Errorf("Expected ErrConfigNotFound, got %v", err)
		}
	})

	t.Run("invalid JSON", func(t *testing.T) {
		os.WriteFile(filepath.Join(dir, "broken.json"), []byte("{not json"), 0644)
		_, err := manager.LoadConfig("broken")
		if err == nil {
			t.Error("Expected error for malformed JSON")
		}
	})

	t.Run("invalid config rejected", func(t *testing.T) {
		bad := createValidConfig()
		bad.TargetWord = bad.StartWord
		writeConfigFile(t, dir, "bad", bad)

		_, err := manager.LoadConfig("bad")
		if !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("Expected ErrInvalidConfig, got %v", err)
		}
	})

	t.Run("relative dictionary path resolved", func(t *testing.T) {
		withDict := createValidConfig()
		withDict.DictionaryFile = "words.txt"
		writeConfigFile(t, dir, "withdict", withDict)

		config, err := manager.LoadConfig("withdict")
		if err != nil {
			t.Fatalf("Failed to load config: %v", err)
		}
		expected := filepath.Join(dir, "words.txt")
		if config.DictionaryFile != expected {
			t.Errorf("Expected dictionary path %s, got %s", expected, config.DictionaryFile)
		}
	})

	t.Run("cached after first load", func(t *testing.T) {
		first, _ := manager.LoadConfig("alpha")
		second, _ := manager.LoadConfig("alpha")
		if first != second {
			t.Error("Expected the cached config instance on repeat load")
		}
	})
}

func TestManager_ListConfigs(t *testing.T) {
	dir := t.TempDir()
	writeConfigFile(t, dir, "alpha", createValidConfig())

	beta := createValidConfig()
	beta.Name = "Beta Config"
	beta.RandomWords = true
	writeConfigFile(t, dir, "beta", beta)

	// An invalid file should be skipped, not break the listing
	os.WriteFile(filepath.Join(dir, "junk.json"), []byte("{}"), 0644)
	os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("not a config"), 0644)

	manager, err := NewManager(dir)
	if err != nil {
		t.Fatalf("Failed to create manager: %v", err)
	}

	configs, err := manager.ListConfigs()
	if err != nil {
		t.Fatalf("Failed to list configs: %v", err)
	}

	if len(configs) != 2 {
		t.Fatalf("Expected 2 valid configs, got %d", len(configs))
	}

	byID := make(map[string]bool)
	for _, info := range configs {
		byID[info.ConfigID] = true
		if info.Filename != info.ConfigID+".json" {
			t.Errorf("Expected filename %s.json, got %s", info.ConfigID, info.Filename)
		}
	}
	if !byID["alpha"] || !byID["beta"] {
		t.Errorf("Expected alpha and beta in listing, got %v", byID)
	}
}

func TestManager_SetDefault(t *testing.T) {
	dir := t.TempDir()
	writeConfigFile(t, dir, "alpha", createValidConfig())

	other := createValidConfig()
	other.Name = "Other Config"
	writeConfigFile(t, dir, "other", other)

	manager, err := NewManager(dir)
	if err != nil {
		t.Fatalf("Failed to create manager: %v", err)
	}

	if err := manager.SetDefault("other"); err != nil {
		t.Fatalf("Failed to set default: %v", err)
	}
	if manager.GetDefault().Name != "Other Config" {
		t.Errorf("Expected default 'Other Config', got '%s'", manager.GetDefault().Name)
	}

	if err := manager.SetDefault("missing"); err == nil {
		t.Error("Expected error setting a missing config as default")
	}
}

func TestManager_SaveConfig(t *testing.T) {
	dir := t.TempDir()
	manager, err := NewManager(dir)
	if err != nil {
		t.Fatalf("Failed to create manager: %v", err)
	}

	t.Run("save and reload", func(t *testing.T) {
		config := createValidConfig()
		config.Name = "Saved Config"

		if err := manager.SaveConfig("saved", config); err != nil {
			t.Fatalf("Failed to save config: %v", err)
		}
		if _, err := os.Stat(filepath.Join(dir, "saved.json")); err != nil {
			t.Errorf("Expected saved.json on disk: %v", err)
		}

		loaded, err := manager.LoadConfig("saved")
		if err != nil {
			t.Fatalf("Failed to load saved config: %v", err)
		}
		if loaded.Name != "Saved Config" {
			t.Errorf("Expected name 'Saved Config', got '%s'", loaded.Name)
		}
	})

	t.Run("invalid config rejected", func(t *testing.T) {
		bad := createValidConfig()
		bad.WordLength = 99
		if err := manager.SaveConfig("bad", bad); !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("Expected ErrInvalidConfig, got %v", err)
		}
	})
}

func TestManager_RefreshCache(t *testing.T) {
	dir := t.TempDir()
	writeConfigFile(t, dir, "alpha", createValidConfig())

	manager, err := NewManager(dir)
	if err != nil {
		t.Fatalf("Failed to create manager: %v", err)
	}

	before, _ := manager.LoadConfig("alpha")

	updated := createValidConfig()
	updated.Description = "Updated on disk"
	writeConfigFile(t, dir, "alpha", updated)

	if err := manager.RefreshCache(); err != nil {
		t.Fatalf("Failed to refresh cache: %v", err)
	}

	after, err := manager.LoadConfig("alpha")
	if err != nil {
		t.Fatalf("Failed to reload config: %v", err)
	}
	if after == before {
		t.Error("Expected a fresh instance after refresh")
	}
	if after.Description != "Updated on disk" {
		t.Errorf("Expected updated description, got '%s'", after.Description)
	}
}

func TestManager_ConcurrentLoads(t *testing.T) {
	dir := t.TempDir()
	writeConfigFile(t, dir, "alpha", createValidConfig())

	manager, err := NewManager(dir)
	if err != nil {
		t.Fatalf("Failed to create manager: %v", err)
	}

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := manager.LoadConfig("alpha"); err != nil {
				t.Errorf("Concurrent load failed: %v", err)
			}
		}()
	}
	wg.Wait()
}
