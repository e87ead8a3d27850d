// Package session provides session management for the Weaver game.
//
// The session package implements:
//   - Thread-safe session storage and retrieval
//   - Unique session ID generation
//   - Session lifecycle management and expiry cleanup
//   - Optional JSON file persistence with restore on startup
//
// Core Types:
//
// Manager is the main session manager that handles all session operations.
// Each session owns an independent game engine; the dictionaries the engines
// play over are shared read-only through a dictionary.Catalog.
//
// Session Identifiers:
//
// Sessions use 4-character hex IDs for easy reference, generated with
// cryptographic randomness. Lookups are case-insensitive.
//
// Persistence:
//
// When a SessionPersistence is configured, sessions are saved as JSON files
// carrying the engine's GameState snapshot. Loading a persisted session
// rebuilds its engine from the named configuration and restores the snapshot,
// re-checking the game invariants in the process.
//
// Usage:
//
//	manager := session.NewManager(dictionary.NewCatalog())
//
//	sess, err := manager.Create("", config)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	sess, err = manager.Get(sess.ID)
package session
