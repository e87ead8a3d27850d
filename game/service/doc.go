// Package service provides the business logic layer for the Weaver game.
//
// The service package implements:
//   - Multi-session game management
//   - Word submission with feedback and config-driven messages
//   - Solution path and feedback queries
//   - Settings updates, reset and new-game transitions
//   - Configuration management and loading
//
// Core Interfaces:
//
// GameService is the main service interface providing high-level game
// operations. SessionManager handles session creation, retrieval, and
// lifecycle. ConfigManager manages game configuration loading and validation.
//
// Architecture:
//
// The service layer sits between the transport layer (HTTP/WebSocket/MCP) and
// the game engine, providing session isolation, configuration management, and
// business logic orchestration. Each session maintains its own game engine
// instance with independent state, while dictionaries are shared read-only
// between sessions playing the same configuration.
//
// Usage:
//
//	sessionMgr := session.NewManager(dictionary.NewCatalog())
//	configMgr := config.NewManager("configs")
//	gameService := service.NewGameService(sessionMgr, configMgr)
//
//	// Create a new session and play
//	info, err := gameService.CreateSession(ctx, "classic")
//	result, err := gameService.SubmitWord(ctx, info.ID, "pale")
//
// Messages:
//
// Rejection reasons and progress messages come from the session's GameConfig
// message block. Rejection text is only attached when the session's
// show-error-messages flag is on; the flag belongs to the session, the
// rendering belongs to the caller.
package service
