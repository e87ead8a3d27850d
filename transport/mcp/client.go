package mcp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/mfigueredo/weaver/game/engine"
	"github.com/mfigueredo/weaver/game/service"
)

// Client is a thin MCP client that proxies to the REST API
type Client struct {
	baseURL    string
	httpClient *http.Client
	mcpServer  *server.MCPServer
}

// NewClient creates a new MCP client that calls the REST API
func NewClient(baseURL string) *Client {
	c := &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}

	c.initMCPServer()
	return c
}

// initMCPServer initializes the MCP server with all tools
func (c *Client) initMCPServer() {
	c.mcpServer = server.NewMCPServer(
		"Weaver Word Ladder",
		"1.0.0",
		server.WithToolCapabilities(true),
		server.WithInstructions(`Weaver Word Ladder - MCP Interface

This is a thin client that proxies all requests to the REST API server.

GAME OBJECTIVE:
Transform the start word into the target word one letter at a time. Every
intermediate word must be a real dictionary word of the same length.

AVAILABLE TOOLS:
- game_state: Get current game state
- submit_word: Submit the next word in your ladder - requires intent explanation
- feedback: Score any candidate word against the target without submitting it
- find_path: Reveal the shortest solution ladder
- reset_game: Clear your attempts, keep the same word pair
- new_game: Start over (a fresh random pair when random mode is on)
- attempt_history: View past accepted words
- update_settings: Toggle random words, the solution path, and error messages
- create_session: Create new game session
- get_session: Get session details
- list_sessions: List all active sessions
- list_configs: List available configurations
- game_instructions: Get comprehensive game instructions and rules

NOTE: The 'intent' parameter on submit_word serves as rubber duck debugging - explain your reasoning!`),
	)

	c.registerTools()
}

// registerTools registers all MCP tools
func (c *Client) registerTools() {
	// Session management
	c.mcpServer.AddTool(mcp.Tool{
		Name:        "create_session",
		Description: "Create a new game session with optional config selection",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"config_id": map[string]interface{}{
					"type":        "string",
					"description": "ID of the config to use (optional)",
				},
			},
		},
	}, c.handleCreateSession)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "list_sessions",
		Description: "List all active game sessions",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, c.handleListSessions)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "get_session",
		Description: "Get details of a specific session",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID to retrieve",
				},
			},
			Required: []string{"session_id"},
		},
	}, c.handleGetSession)

	// Game operations
	c.mcpServer.AddTool(mcp.Tool{
		Name:        "game_state",
		Description: "Get the current game state",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
			},
			Required: []string{"session_id"},
		},
	}, c.handleGameState)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "submit_word",
		Description: "Submit the next word in your ladder. It must be a dictionary word of the right length that changes exactly one letter from your current word.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
				"word": map[string]interface{}{
					"type":        "string",
					"description": "The word to submit",
				},
				"intent": map[string]interface{}{
					"type":        "string",
					"description": "Brief explanation of the intent behind this word (serves as a rubber duck to help explain your reasoning)",
				},
			},
			Required: []string{"session_id", "word"},
		},
	}, c.handleSubmitWord)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "feedback",
		Description: "Score a candidate word against the target word without submitting it. Returns per-letter marks: correct (right letter, right spot), present (letter occurs elsewhere in the target), absent.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
				"word": map[string]interface{}{
					"type":        "string",
					"description": "The candidate word to score",
				},
			},
			Required: []string{"session_id", "word"},
		},
	}, c.handleFeedback)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "find_path",
		Description: "Reveal the shortest solution ladder from the start word to the target word",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
			},
			Required: []string{"session_id"},
		},
	}, c.handleFindPath)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "reset_game",
		Description: "Clear the attempt history while keeping the same word pair",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
			},
			Required: []string{"session_id"},
		},
	}, c.handleReset)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "new_game",
		Description: "Start a new game. In random mode this draws a fresh word pair.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
			},
			Required: []string{"session_id"},
		},
	}, c.handleNewGame)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "update_settings",
		Description: "Toggle session settings. Enabling random_words starts a fresh game with a new pair.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
				"random_words": map[string]interface{}{
					"type":        "boolean",
					"description": "Draw random word pairs instead of the configured pair",
				},
				"show_path": map[string]interface{}{
					"type":        "boolean",
					"description": "Include the optimal ladder in winning results",
				},
				"show_error_messages": map[string]interface{}{
					"type":        "boolean",
					"description": "Explain why a word was rejected",
				},
			},
			Required: []string{"session_id"},
		},
	}, c.handleUpdateSettings)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "attempt_history",
		Description: "Get the accepted words for a session",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
				"page": map[string]interface{}{
					"type":        "integer",
					"description": "Page number",
				},
				"limit": map[string]interface{}{
					"type":        "integer",
					"description": "Items per page",
				},
			},
			Required: []string{"session_id"},
		},
	}, c.handleAttemptHistory)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "list_configs",
		Description: "List available game configurations",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, c.handleListConfigs)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "game_instructions",
		Description: "Get comprehensive game instructions and rules",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, c.handleGameInstructions)
}

// GetMCPServer returns the underlying MCP server for serving
func (c *Client) GetMCPServer() *server.MCPServer {
	return c.mcpServer
}

// Helper methods for API calls

func (c *Client) apiCall(method, path string, body interface{}, result interface{}) error {
	url := c.baseURL + path

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reqBody = bytes.NewBuffer(data)
	}

	req, err := http.NewRequest(method, url, reqBody)
	if err != nil {
		return err
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var errResp map[string]string
		json.NewDecoder(resp.Body).Decode(&errResp)
		if msg, ok := errResp["error"]; ok {
			return fmt.Errorf("%s", msg)
		}
		return fmt.Errorf("API error: %d", resp.StatusCode)
	}

	if result != nil {
		return json.NewDecoder(resp.Body).Decode(result)
	}

	return nil
}

// Tool handlers

func (c *Client) handleCreateSession(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	configID, _ := args["config_id"].(string)

	body := map[string]string{}
	if configID != "" {
		body["config_id"] = configID
	}

	var session service.SessionInfo
	err := c.apiCall("POST", "/api/sessions", body, &session)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := fmt.Sprintf("Created session: %s\nConfig: %s\n\n%s",
		session.ID, session.ConfigName, formatGameState(session.GameState))
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleListSessions(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var response struct {
		Count    int                   `json:"count"`
		Sessions []service.SessionInfo `json:"sessions"`
	}

	err := c.apiCall("GET", "/api/sessions", nil, &response)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := fmt.Sprintf("Active Sessions (%d):\n\n", response.Count)
	for _, s := range response.Sessions {
		pair := ""
		if s.GameState != nil {
			pair = fmt.Sprintf(", %s -> %s", s.GameState.StartWord, s.GameState.TargetWord)
		}
		result += fmt.Sprintf("- %s (Config: %s%s, Created: %s)\n",
			s.ID, s.ConfigName, pair, s.CreatedAt.Format("15:04:05"))
	}

	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleGetSession(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)

	var session service.SessionInfo
	err := c.apiCall("GET", fmt.Sprintf("/api/sessions/%s", sessionID), nil, &session)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := formatSessionInfo(&session)
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleGameState(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)

	var state engine.GameState
	err := c.apiCall("GET", fmt.Sprintf("/api/sessions/%s/state", sessionID), nil, &state)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := formatGameState(&state)
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleSubmitWord(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)
	word, _ := args["word"].(string)
	intent, _ := args["intent"].(string)

	// Intent parameter serves as rubber duck debugging - we don't need to process it further
	_ = intent

	body := map[string]interface{}{
		"word": word,
	}

	var result service.SubmitResult
	err := c.apiCall("POST", fmt.Sprintf("/api/sessions/%s/guess", sessionID), body, &result)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	response := formatSubmitResult(&result)
	return mcp.NewToolResultText(response), nil
}

func (c *Client) handleFeedback(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)
	word, _ := args["word"].(string)

	var result service.FeedbackResult
	err := c.apiCall("GET", fmt.Sprintf("/api/sessions/%s/feedback?word=%s", sessionID, word), nil, &result)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	response := fmt.Sprintf("Feedback for %q:\n%s", result.Word, formatFeedback(result.Word, result.Feedback))
	return mcp.NewToolResultText(response), nil
}

func (c *Client) handleFindPath(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)

	var result service.PathResult
	err := c.apiCall("GET", fmt.Sprintf("/api/sessions/%s/path", sessionID), nil, &result)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	if !result.Found {
		return mcp.NewToolResultText("No ladder connects the start word to the target word in this dictionary."), nil
	}

	response := fmt.Sprintf("Shortest ladder (%d steps):\n  %s",
		result.Steps, strings.Join(result.Path, " -> "))
	return mcp.NewToolResultText(response), nil
}

func (c *Client) handleReset(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)

	var response struct {
		Message string            `json:"message"`
		State   *engine.GameState `json:"state"`
	}

	err := c.apiCall("POST", fmt.Sprintf("/api/sessions/%s/reset", sessionID), nil, &response)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := fmt.Sprintf("%s\n\n%s", response.Message, formatGameState(response.State))
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleNewGame(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)

	var response struct {
		Message string            `json:"message"`
		State   *engine.GameState `json:"state"`
	}

	err := c.apiCall("POST", fmt.Sprintf("/api/sessions/%s/new-game", sessionID), nil, &response)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := fmt.Sprintf("%s\n\n%s", response.Message, formatGameState(response.State))
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleUpdateSettings(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)

	body := map[string]interface{}{}
	for _, key := range []string{"random_words", "show_path", "show_error_messages"} {
		if v, ok := args[key].(bool); ok {
			body[key] = v
		}
	}

	var state engine.GameState
	err := c.apiCall("PATCH", fmt.Sprintf("/api/sessions/%s/settings", sessionID), body, &state)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := fmt.Sprintf("Settings updated.\n\n%s", formatGameState(&state))
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleAttemptHistory(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)

	params := "?"
	if page, ok := args["page"].(float64); ok {
		params += fmt.Sprintf("page=%d&", int(page))
	}
	if limit, ok := args["limit"].(float64); ok {
		params += fmt.Sprintf("limit=%d&", int(limit))
	}

	var history service.HistoryResponse
	err := c.apiCall("GET", fmt.Sprintf("/api/sessions/%s/attempts%s", sessionID, params), nil, &history)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := formatHistory(&history)
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleListConfigs(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var configs []service.ConfigInfo
	err := c.apiCall("GET", "/api/configs", nil, &configs)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := "Available Configurations:\n\n"
	for _, config := range configs {
		mode := "fixed pair"
		if config.RandomWords {
			mode = "random pairs"
		}
		result += fmt.Sprintf("• %s (id: %s)\n  %s\n  %d-letter words, %s\n\n",
			config.Name, config.ConfigID, config.Description, config.WordLength, mode)
	}

	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleGameInstructions(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	instructions := `🎮 Weaver Word Ladder - Complete Instructions

GAME OBJECTIVE:
Transform the start word into the target word one letter at a time. Every
intermediate word must be a real dictionary word of the same length.

GAME MECHANICS:
• Each submission must change EXACTLY one letter of your current word
• Your current word is your last accepted word (the start word before that)
• Words must exist in the session's dictionary
• Length is fixed per configuration (classic play is 4 letters)
• You win the moment an accepted word equals the target word
• There is no step limit, but fewer steps is a better ladder

EXAMPLE LADDER (sale to opal is a famous impossible-looking pair):
  cold -> cord -> card -> ward -> warm
Each step swaps one letter and lands on a dictionary word.

🤖 AI AGENTS - SUCCESS STRATEGIES:

1. **Work both ends**: compare your current word against the target and
   prefer substitutions that fix a letter into its final position.
2. **Use the feedback tool** before submitting: it marks each letter as
   correct (right spot), present (in the target elsewhere), or absent,
   without spending a submission.
3. **Pivot through common patterns**: words ending in -ale, -old, -art
   have many one-letter neighbours and make good stepping stones.
4. **Rejected words cost nothing**: the attempt counter only advances on
   accepted words, so probing the dictionary is free.
5. **Stuck?** reset_game keeps the pair and clears your ladder; find_path
   reveals the optimal solution when you give up.

COMMON REJECTION REASONS:
- Wrong length for the session's configuration
- Not in the dictionary
- Changes zero letters (resubmitting the current word) or more than one

SESSION MANAGEMENT:
- Multiple game sessions can run simultaneously
- Each session has a unique 4-character ID
- Sessions maintain independent state and configuration
- Settings (random pairs, shown path, error messages) are per session

VICTORY:
- The winning submission reports how many steps your ladder took
- With show_path on, it also reports the optimal ladder for comparison

Good luck weaving!`

	return mcp.NewToolResultText(instructions), nil
}

// Formatting helpers

func formatSessionInfo(session *service.SessionInfo) string {
	return fmt.Sprintf("Session: %s\nConfig: %s\nCreated: %s\n\n%s",
		session.ID, session.ConfigName,
		session.CreatedAt.Format("2006-01-02 15:04:05"),
		formatGameState(session.GameState))
}

func formatGameState(state *engine.GameState) string {
	if state == nil {
		return "No game state available"
	}

	var result strings.Builder

	result.WriteString(fmt.Sprintf("%s -> %s | %d-letter words | Attempts: %d\n",
		state.StartWord, state.TargetWord, state.WordLength, state.CurrentAttempt))

	current := state.StartWord
	if len(state.Attempts) > 0 {
		current = state.Attempts[len(state.Attempts)-1]
	}
	result.WriteString(fmt.Sprintf("Current word: %s\n", current))

	if len(state.Attempts) > 0 {
		result.WriteString("\nLadder so far:\n")
		result.WriteString("  " + state.StartWord + "\n")
		for _, attempt := range state.Attempts {
			result.WriteString("  " + attempt + "\n")
		}
	}

	var flags []string
	if state.RandomWords {
		flags = append(flags, "random words")
	}
	if state.ShowPath {
		flags = append(flags, "show path")
	}
	if state.ShowErrorMessages {
		flags = append(flags, "error messages")
	}
	if len(flags) > 0 {
		result.WriteString(fmt.Sprintf("\nSettings: %s\n", strings.Join(flags, ", ")))
	}

	switch state.Status {
	case engine.StatusWon:
		result.WriteString(fmt.Sprintf("\n🎉 VICTORY! Reached %s in %d steps.", state.TargetWord, state.CurrentAttempt))
	case engine.StatusFresh:
		result.WriteString("\nFresh game, no words submitted yet.")
	}

	return result.String()
}

func formatSubmitResult(result *service.SubmitResult) string {
	var b strings.Builder

	if result.Success {
		b.WriteString(fmt.Sprintf("✓ %q accepted\n", result.Word))
	} else {
		b.WriteString(fmt.Sprintf("✗ %q rejected\n", result.Word))
	}

	if result.Message != "" {
		b.WriteString(result.Message + "\n")
	}

	if len(result.Feedback) > 0 {
		b.WriteString("\n" + formatFeedback(result.Word, result.Feedback))
	}

	if len(result.Events) > 0 {
		b.WriteString("\nEvents:\n")
		for _, event := range result.Events {
			b.WriteString(fmt.Sprintf("- %s: %s\n", event.Type, event.Message))
		}
	}

	if len(result.Path) > 0 {
		b.WriteString(fmt.Sprintf("\nOptimal ladder (%d steps):\n  %s\n",
			len(result.Path)-1, strings.Join(result.Path, " -> ")))
	}

	b.WriteString("\n" + formatGameState(result.GameState))
	return b.String()
}

// formatFeedback renders per-letter marks under the word:
//
//	o p a l
//	✓ · ~ ✓
func formatFeedback(word string, marks []engine.Mark) string {
	if len(marks) != len(word) {
		return ""
	}

	var letters, symbols strings.Builder
	for i, mark := range marks {
		letters.WriteByte(word[i])
		letters.WriteByte(' ')
		switch mark {
		case engine.MarkCorrect:
			symbols.WriteString("✓ ")
		case engine.MarkPresent:
			symbols.WriteString("~ ")
		default:
			symbols.WriteString("· ")
		}
	}
	return fmt.Sprintf("  %s\n  %s\n  (✓ right spot, ~ in target elsewhere, · absent)\n",
		strings.TrimRight(letters.String(), " "), strings.TrimRight(symbols.String(), " "))
}

func formatHistory(history *service.HistoryResponse) string {
	result := fmt.Sprintf("Attempt History (Page %d/%d), Total: %d\n\n",
		history.Page, history.TotalPages, history.TotalAttempts)

	if len(history.Attempts) == 0 {
		return result + "(no accepted words yet)"
	}

	for i, word := range history.Attempts {
		num := (history.Page-1)*history.PageSize + i + 1
		result += fmt.Sprintf("%d. %s\n", num, word)
	}

	return result
}
