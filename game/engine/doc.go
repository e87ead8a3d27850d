// Package engine provides the core game logic for Weaver, a word-ladder
// puzzle.
//
// The engine package implements the game mechanics including:
//   - Submission validation against the dictionary and the one-letter rule
//   - Attempt history tracking and win detection
//   - Reset and new-game transitions, including random word selection
//   - Shortest solution computation via breadth-first search
//   - Per-letter feedback scoring against the target word
//   - Game state snapshots and restoration for persistence
//
// Core Types:
//
// The Engine interface defines the main contract for game operations,
// implemented by GameEngine. GameState is a JSON-friendly snapshot of one
// session, while GameConfig defines the game rules loaded from JSON files.
//
// Usage:
//
//	dict, err := dictionary.Default(4)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	eng, err := engine.NewEngine(dict, engine.DefaultGameConfig(), nil)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// Submit a word
//	accepted := eng.SubmitWord("pale")
//	state := eng.GetState()
//
// Game Rules:
//
// Players transform a start word into a target word one letter at a time.
// Every intermediate word must exist in the dictionary and differ from the
// previous word in exactly one letter position. The game is won when the
// last accepted word equals the target.
//
// Notifications:
//
// Every mutating call fires the callbacks registered with OnChange once,
// after the mutation completes. Callbacks carry no payload; interested
// callers re-read state through the getters.
//
// Concurrency:
//
// A GameEngine is confined to a single caller at a time; the session layer
// provides that confinement. The Dictionary it reads is immutable and may be
// shared across engines freely.
package engine
