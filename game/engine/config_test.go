package engine

import (
	"testing"

	"github.com/mfigueredo/weaver/game/dictionary"
)

func TestValidateGameConfig(t *testing.T) {
	if err := ValidateGameConfig(createTestConfig()); err != nil {
		t.Errorf("Expected test config to validate, got %v", err)
	}
}

func TestValidateGameConfigErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*GameConfig)
	}{
		{"missing name", func(c *GameConfig) { c.Name = "" }},
		{"missing description", func(c *GameConfig) { c.Description = "" }},
		{"word length too small", func(c *GameConfig) { c.WordLength = 2 }},
		{"word length too large", func(c *GameConfig) { c.WordLength = 9 }},
		{"missing start word", func(c *GameConfig) { c.StartWord = "" }},
		{"start word wrong length", func(c *GameConfig) { c.StartWord = "sales" }},
		{"start word uppercase", func(c *GameConfig) { c.StartWord = "Sale" }},
		{"target word non-alphabetic", func(c *GameConfig) { c.TargetWord = "op4l" }},
		{"identical pair", func(c *GameConfig) { c.TargetWord = c.StartWord }},
		{"missing victory message", func(c *GameConfig) { c.Messages.Victory = "" }},
		{"missing welcome message", func(c *GameConfig) { c.Messages.Welcome = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := createTestConfig()
			tt.mutate(config)
			if err := ValidateGameConfig(config); err == nil {
				t.Error("Expected validation error")
			}
		})
	}

	if err := ValidateGameConfig(nil); err == nil {
		t.Error("Expected validation error for nil config")
	}
}

func TestDefaultGameConfig(t *testing.T) {
	config := DefaultGameConfig()
	if err := ValidateGameConfig(config); err != nil {
		t.Fatalf("Default config must validate, got %v", err)
	}

	dict, err := dictionary.Default(config.WordLength)
	if err != nil {
		t.Fatalf("Failed to build default dictionary: %v", err)
	}

	// The default pair must be playable against the embedded list
	if _, err := NewEngine(dict, config, nil); err != nil {
		t.Errorf("Default config must work with the embedded dictionary, got %v", err)
	}
}
