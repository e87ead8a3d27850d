// Package websocket provides real-time state broadcasting for word ladder
// sessions.
//
// The package uses a hub-and-spoke model where a central Hub manages all
// WebSocket connections. Each client connection is handled by a dedicated
// goroutine that manages reading, writing, and cleanup.
//
// Message Protocol:
//
// Messages are JSON-encoded. After every accepted word, reset, new game, or
// settings change the full GameState is pushed to every client watching that
// session:
//
//	{"session_id": "ab12", "event": "state_update", "game_state": {...}}
//
// Session Integration:
//
// WebSocket connections are session-aware. Clients specify their session ID
// via query parameter (?session=ab12) when establishing the connection.
// State updates are broadcast only to clients connected to the same session,
// so several spectators can follow one player's ladder.
//
// Usage:
//
//	hub := websocket.NewHub()
//	go hub.Run()
//
//	// after a mutating operation
//	hub.BroadcastToSession(sessionID, state)
//
// Concurrency:
//
// The hub and client handlers are designed for concurrent operation.
// Multiple clients can connect, disconnect, and receive updates
// simultaneously without blocking each other.
package websocket
