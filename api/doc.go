// Package api provides HTTP REST handlers for the word ladder game.
//
// The api package implements:
//   - RESTful endpoints for game operations
//   - Session management endpoints
//   - Configuration listing and creation
//   - WebSocket upgrade handling
//
// Endpoints:
//
// Session Management:
//   - POST /api/sessions - Create new session (body: {"config_id": "classic"})
//   - GET /api/sessions - List all sessions (sort, order, limit query params)
//   - GET /api/sessions/{id} - Get specific session
//   - DELETE /api/sessions/{id} - Delete session
//
// Game Operations:
//   - GET /api/sessions/{id}/state - Current game state
//   - POST /api/sessions/{id}/guess - Submit a word (body: {"word": "pale"})
//   - POST /api/sessions/{id}/reset - Clear attempts, keep the word pair
//   - POST /api/sessions/{id}/new-game - Start over (new pair in random mode)
//   - PATCH /api/sessions/{id}/settings - Flip display and random-words flags
//   - GET /api/sessions/{id}/attempts - Attempt history with pagination
//   - GET /api/sessions/{id}/path - Shortest solution ladder
//   - GET /api/sessions/{id}/feedback?word=pale - Per-letter feedback
//
// Configuration:
//   - GET /api/configs - List available configurations
//   - POST /api/configs - Save a new configuration
//   - GET /api/configs/{name} - Get a configuration
//
// Request/Response Format:
//
// All endpoints accept and return JSON. Errors are returned as JSON with
// appropriate HTTP status codes:
//
//	{"error": "error message"}
//
// Mutating operations broadcast the resulting game state to every WebSocket
// client watching the session.
//
// Usage:
//
//	server := api.NewServer(gameService, hub)
//	http.ListenAndServe(":8080", server)
package api
