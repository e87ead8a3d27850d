// Package mcp provides Model Context Protocol access to the word ladder game.
//
// The mcp package implements:
//   - MCP server for AI agent integration
//   - Tool definitions for game operations
//   - Session-aware command execution
//   - Stdio transport mode
//
// MCP Tools:
//
// The package exposes the following tools for AI agents:
//   - game_state: Get current game state with the ladder so far
//   - submit_word: Submit the next word in the ladder
//   - feedback: Score a candidate word against the target without submitting
//   - find_path: Reveal the shortest solution ladder
//   - reset_game: Clear attempts, keep the word pair
//   - new_game: Start over (fresh pair in random mode)
//   - update_settings: Toggle random words, shown path, error messages
//   - attempt_history: Retrieve accepted words with pagination
//   - create_session: Create new game session with config selection
//   - get_session: Get specific session details
//   - list_sessions: List all active sessions
//   - list_configs: List available game configurations
//   - game_instructions: Get comprehensive rules and strategy notes
//
// Architecture:
//
// The client is intentionally thin: every tool call is proxied to the REST
// API, so the MCP surface and the HTTP surface always agree on game
// semantics. The client holds no game state of its own.
//
// Usage:
//
//	client := mcp.NewClient("http://localhost:8080")
//	server.ServeStdio(client.GetMCPServer())
//
// AI Integration:
//
// The MCP interface enables AI agents to:
//   - Autonomously solve word ladders
//   - Probe the dictionary with free feedback queries
//   - Manage multiple game sessions
//   - Compare their ladders against the optimal path
package mcp
