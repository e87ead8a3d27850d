// Command weaver starts the Weaver word ladder server.
//
// It supports three modes:
//  1. "server" (default) – runs the HTTP server exposing REST API, WebSocket, and an /mcp HTTP endpoint
//  2. "stdio-mcp" – runs an MCP stdio server and spins up an internal HTTP API if none is available
//  3. "play" – plays a game interactively in the terminal
//
// Flags control host/port, config and session directories, debug logging,
// and optional ngrok tunneling for easy external access during development.
package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"
	"golang.ngrok.com/ngrok"
	ngrokConfig "golang.ngrok.com/ngrok/config"

	"github.com/mfigueredo/weaver/api"
	"github.com/mfigueredo/weaver/game/config"
	"github.com/mfigueredo/weaver/game/dictionary"
	"github.com/mfigueredo/weaver/game/engine"
	"github.com/mfigueredo/weaver/game/service"
	"github.com/mfigueredo/weaver/game/session"
	"github.com/mfigueredo/weaver/transport/mcp"
	"github.com/mfigueredo/weaver/transport/websocket"
)

// Version information
const (
	Version = "1.0.0"
	AppName = "Weaver Word Ladder Server"
)

func main() {
	// Load .env file if it exists (ignore error if not found)
	if err := godotenv.Load(); err != nil {
		if !os.IsNotExist(err) {
			log.Warn().Err(err).Msg("Error loading .env file")
		}
	} else {
		log.Info().Msg("Loaded environment variables from .env file")
	}

	cmd := &cli.Command{
		Name:    "weaver",
		Usage:   AppName,
		Version: Version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "host",
				Value:   "localhost",
				Usage:   "HTTP server host",
				Sources: cli.EnvVars("WEAVER_HOST"),
			},
			&cli.IntFlag{
				Name:    "port",
				Value:   8080,
				Usage:   "HTTP server port",
				Sources: cli.EnvVars("WEAVER_PORT"),
			},
			&cli.StringFlag{
				Name:    "config-dir",
				Value:   "configs",
				Usage:   "Directory containing game configurations",
				Sources: cli.EnvVars("WEAVER_CONFIG_DIR"),
			},
			&cli.StringFlag{
				Name:    "sessions-dir",
				Value:   "sessions",
				Usage:   "Directory for persisted sessions",
				Sources: cli.EnvVars("WEAVER_SESSIONS_DIR"),
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "Enable debug logging",
			},
		},
		Commands: []*cli.Command{
			{
				Name:  "server",
				Usage: "Run HTTP server with API, WebSocket, and MCP endpoint (default)",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:    "ngrok",
						Usage:   "Enable ngrok tunnel",
						Sources: cli.EnvVars("NGROK_ENABLED"),
					},
					&cli.StringFlag{
						Name:    "ngrok-auth",
						Usage:   "Ngrok auth token",
						Sources: cli.EnvVars("NGROK_AUTHTOKEN"),
					},
					&cli.StringFlag{
						Name:    "ngrok-domain",
						Usage:   "Custom ngrok domain (optional)",
						Sources: cli.EnvVars("NGROK_DOMAIN"),
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					setupLogging(cmd.Bool("debug"))
					gameService, sessionManager, persistence, err := initializeServices(
						cmd.String("config-dir"), cmd.String("sessions-dir"))
					if err != nil {
						return err
					}
					go sessionCleanupRoutine(sessionManager)
					go filesystemSyncRoutine(sessionManager, persistence)
					return runHTTPServer(gameService, sessionManager, serverOptions{
						host:        cmd.String("host"),
						port:        int(cmd.Int("port")),
						ngrok:       cmd.Bool("ngrok"),
						ngrokAuth:   cmd.String("ngrok-auth"),
						ngrokDomain: cmd.String("ngrok-domain"),
					})
				},
			},
			{
				Name:    "stdio-mcp",
				Aliases: []string{"mcp", "mcp-stdio"},
				Usage:   "Run MCP stdio server with internal HTTP server",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					setupLogging(cmd.Bool("debug"))
					gameService, sessionManager, persistence, err := initializeServices(
						cmd.String("config-dir"), cmd.String("sessions-dir"))
					if err != nil {
						return err
					}
					go sessionCleanupRoutine(sessionManager)
					go filesystemSyncRoutine(sessionManager, persistence)
					return runStdioMCP(gameService, int(cmd.Int("port")))
				},
			},
			{
				Name:  "play",
				Usage: "Play a game interactively in the terminal",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "config",
						Usage: "Configuration name to play (defaults to the default config)",
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					setupLogging(cmd.Bool("debug"))
					gameService, _, _, err := initializeServices(
						cmd.String("config-dir"), cmd.String("sessions-dir"))
					if err != nil {
						return err
					}
					return runPlay(ctx, gameService, cmd.String("config"))
				},
			},
		},
		DefaultCommand: "server",
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal().Err(err).Msg("Command failed")
	}
}

// setupLogging configures the global zerolog logger for human-readable
// console output.
func setupLogging(debug bool) {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	if debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else if lvl, err := zerolog.ParseLevel(os.Getenv("LOG_LEVEL")); err == nil && lvl != zerolog.NoLevel {
		zerolog.SetGlobalLevel(lvl)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}

// serverOptions bundles the HTTP server settings resolved from flags and
// environment.
type serverOptions struct {
	host        string
	port        int
	ngrok       bool
	ngrokAuth   string
	ngrokDomain string
}

// initializeServices wires the dictionary catalog, config manager, session
// persistence, session manager, and the game service.
func initializeServices(configDir, sessionsDir string) (service.GameService, *session.Manager, session.SessionPersistence, error) {
	dicts := dictionary.NewCatalog()

	configManager, err := config.NewManager(configDir)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to create config manager: %w", err)
	}

	persistence, err := session.NewFilePersistence(sessionsDir, configManager, dicts)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to create session persistence: %w", err)
	}

	sessionManager := session.NewManagerWithPersistence(dicts, persistence)

	// Load persisted sessions on startup
	if err := sessionManager.LoadPersistedSessions(); err != nil {
		log.Warn().Err(err).Msg("Failed to load persisted sessions")
	}

	gameService := service.NewGameService(sessionManager, configManager)
	return gameService, sessionManager, persistence, nil
}

// sessionCleanupRoutine periodically removes sessions that have not been
// accessed within the retention window.
func sessionCleanupRoutine(manager *session.Manager) {
	ticker := time.NewTicker(1 * time.Hour)
	defer ticker.Stop()

	for range ticker.C {
		removed := manager.CleanupExpiredSessions(24 * time.Hour)
		if removed > 0 {
			log.Info().Int("removed", removed).Msg("Cleaned up expired sessions")
		}
	}
}

// filesystemSyncRoutine prunes in-memory sessions whose files were deleted
// out from under the server.
func filesystemSyncRoutine(manager *session.Manager, persistence session.SessionPersistence) {
	ticker := time.NewTicker(5 * time.Second)
	defer ticker.Stop()

	for range ticker.C {
		if persistence == nil {
			continue
		}

		pruned := 0
		for _, s := range manager.List() {
			if !persistence.Exists(s.ID) {
				if err := manager.DeleteFromMemory(s.ID); err == nil {
					pruned++
				}
			}
		}

		if pruned > 0 {
			log.Info().Int("pruned", pruned).Msg("Filesystem sync: pruned orphaned sessions from memory")
		}
	}
}

// runHTTPServer starts the HTTP server with REST API, WebSocket hub, and an
// /mcp proxy endpoint. If ngrok is enabled it also provisions a public tunnel.
func runHTTPServer(gameService service.GameService, sessionManager *session.Manager, opts serverOptions) error {
	hub := websocket.NewHub()
	go hub.Run()

	apiServer := api.NewServer(gameService, hub)

	addr := fmt.Sprintf("%s:%d", opts.host, opts.port)
	baseURL := fmt.Sprintf("http://%s", addr)
	mcpClient := mcp.NewClient(baseURL)

	mainRouter := http.NewServeMux()
	mainRouter.Handle("/", apiServer)
	mainRouter.HandleFunc("/mcp", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != "POST" {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}

		body, err := io.ReadAll(r.Body)
		if err != nil {
			http.Error(w, "Failed to read request", http.StatusBadRequest)
			return
		}
		defer r.Body.Close()

		response := mcpClient.GetMCPServer().HandleMessage(r.Context(), body)

		w.Header().Set("Content-Type", "application/json")
		responseData, err := json.Marshal(response)
		if err != nil {
			http.Error(w, "Failed to marshal response", http.StatusInternalServerError)
			return
		}
		w.Write(responseData)
	})

	httpServer := &http.Server{
		Addr:         addr,
		Handler:      mainRouter,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()

		log.Info().Str("addr", addr).Msg("HTTP server listening")
		log.Info().Str("rest", baseURL+"/api").
			Str("websocket", fmt.Sprintf("ws://%s/ws?session=<session_id>", addr)).
			Str("mcp", baseURL+"/mcp").
			Msg("Endpoints")

		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	if opts.ngrok {
		wg.Add(1)
		go func() {
			defer wg.Done()
			runNgrokTunnel(ctx, mainRouter, opts)
		}()
	}

	sig := <-stop
	log.Info().Str("signal", sig.String()).Msg("Shutting down")
	cancel()

	// Persist everything before the process exits
	if err := sessionManager.SaveAllSessions(); err != nil {
		log.Error().Err(err).Msg("Failed to save sessions on shutdown")
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("HTTP server shutdown error")
	}

	wg.Wait()
	log.Info().Msg("Server stopped")
	return nil
}

// runNgrokTunnel provisions a public ngrok endpoint and serves the router
// through it until the context is cancelled.
func runNgrokTunnel(ctx context.Context, handler http.Handler, opts serverOptions) {
	if opts.ngrokAuth == "" {
		log.Warn().Msg("Ngrok enabled but no auth token provided (use --ngrok-auth or NGROK_AUTHTOKEN)")
		return
	}

	log.Info().Msg("Starting ngrok tunnel")

	var tunnel ngrokConfig.Tunnel
	if opts.ngrokDomain != "" {
		tunnel = ngrokConfig.HTTPEndpoint(ngrokConfig.WithDomain(opts.ngrokDomain))
		log.Info().Str("domain", opts.ngrokDomain).Msg("Using custom ngrok domain")
	} else {
		tunnel = ngrokConfig.HTTPEndpoint()
	}

	tun, err := ngrok.Listen(ctx, tunnel, ngrok.WithAuthtoken(opts.ngrokAuth))
	if err != nil {
		log.Error().Err(err).Msg("Failed to start ngrok tunnel")
		return
	}
	defer func() {
		if err := tun.Close(); err != nil {
			log.Error().Err(err).Msg("Failed to close ngrok tunnel")
		}
	}()

	log.Info().Str("url", tun.URL()).Msg("Ngrok tunnel established")

	if err := http.Serve(tun, handler); err != nil && err != http.ErrServerClosed {
		log.Error().Err(err).Msg("Ngrok server error")
	}
	log.Info().Msg("Ngrok tunnel closed")
}

// runStdioMCP runs an MCP stdio server. It tries to reuse an external API at
// the configured port; if unavailable, it starts a minimal internal HTTP API
// bound to a random loopback port and targets that.
func runStdioMCP(gameService service.GameService, port int) error {
	var baseURL string

	externalURL := fmt.Sprintf("http://localhost:%d", port)
	log.Info().Str("url", externalURL).Msg("Checking for external API server")

	testClient := &http.Client{Timeout: 2 * time.Second}
	resp, err := testClient.Get(externalURL + "/api/health")
	if err == nil && resp.StatusCode < 500 {
		resp.Body.Close()
		log.Info().Str("url", externalURL).Msg("External API server found, using it for MCP")
		baseURL = externalURL
	} else {
		log.Info().Msg("No external API server found, starting internal HTTP server")

		listener, err := net.Listen("tcp", "127.0.0.1:0")
		if err != nil {
			return fmt.Errorf("failed to get available port: %w", err)
		}

		internalAddr := listener.Addr().String()
		log.Info().Str("addr", internalAddr).Msg("Starting internal HTTP server for MCP stdio")

		hub := websocket.NewHub()
		go hub.Run()

		apiServer := api.NewServer(gameService, hub)
		httpServer := &http.Server{Handler: apiServer}

		go func() {
			if err := httpServer.Serve(listener); err != nil && err != http.ErrServerClosed {
				log.Error().Err(err).Msg("Internal HTTP server error")
			}
		}()

		// Give the listener a moment to accept connections
		time.Sleep(100 * time.Millisecond)

		baseURL = fmt.Sprintf("http://%s", internalAddr)
	}

	mcpClient := mcp.NewClient(baseURL)
	log.Info().Str("base_url", baseURL).Msg("MCP stdio server ready")

	if err := server.ServeStdio(mcpClient.GetMCPServer()); err != nil {
		return fmt.Errorf("MCP stdio server error: %w", err)
	}
	return nil
}

// runPlay drives a single interactive game in the terminal. Words are
// submitted as typed; slash commands expose the rest of the service surface.
func runPlay(ctx context.Context, gameService service.GameService, configName string) error {
	info, err := gameService.CreateSession(ctx, configName)
	if err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}

	state := info.GameState
	fmt.Printf("%s\n\n", AppName)
	fmt.Printf("Weave from %s to %s, changing one letter at a time.\n", state.StartWord, state.TargetWord)
	fmt.Println("Type a word to play, or /help for commands.")

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Printf("\n[%s -> %s] > ", currentWord(state), state.TargetWord)
		if !scanner.Scan() {
			break
		}

		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}

		if strings.HasPrefix(input, "/") {
			quit, err := handlePlayCommand(ctx, gameService, info.ID, input, &state)
			if err != nil {
				fmt.Printf("Error: %v\n", err)
			}
			if quit {
				break
			}
			continue
		}

		result, err := gameService.SubmitWord(ctx, info.ID, input)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			continue
		}

		state = result.GameState
		if result.Message != "" {
			fmt.Println(result.Message)
		}
		if len(result.Feedback) > 0 {
			printFeedback(result.Word, result.Feedback)
		}
		if result.Won {
			fmt.Printf("\n🎉 You won in %d steps!\n", state.CurrentAttempt)
			if len(result.Path) > 0 {
				fmt.Printf("Optimal ladder (%d steps): %s\n",
					len(result.Path)-1, strings.Join(result.Path, " -> "))
			}
			break
		}
	}
	return scanner.Err()
}

// handlePlayCommand executes a slash command and reports whether the game
// loop should exit.
func handlePlayCommand(ctx context.Context, gameService service.GameService, sessionID, input string, state **engine.GameState) (bool, error) {
	fields := strings.Fields(input)
	switch fields[0] {
	case "/help":
		fmt.Println("Commands:")
		fmt.Println("  /state            show the full game state")
		fmt.Println("  /feedback <word>  preview feedback for a word without playing it")
		fmt.Println("  /path             reveal the shortest ladder")
		fmt.Println("  /reset            restart the current pair")
		fmt.Println("  /new              start a new game")
		fmt.Println("  /quit             leave the game")
	case "/state":
		s, err := gameService.GetGameState(ctx, sessionID)
		if err != nil {
			return false, err
		}
		*state = s
		fmt.Printf("%s -> %s | attempts: %d | status: %s\n",
			s.StartWord, s.TargetWord, s.CurrentAttempt, s.Status)
		if len(s.Attempts) > 0 {
			fmt.Printf("Ladder: %s -> %s\n", s.StartWord, strings.Join(s.Attempts, " -> "))
		}
	case "/feedback":
		if len(fields) < 2 {
			return false, fmt.Errorf("usage: /feedback <word>")
		}
		result, err := gameService.GetFeedback(ctx, sessionID, fields[1])
		if err != nil {
			return false, err
		}
		printFeedback(result.Word, result.Feedback)
	case "/path":
		result, err := gameService.FindPath(ctx, sessionID)
		if err != nil {
			return false, err
		}
		if !result.Found {
			fmt.Println("No ladder connects these words.")
		} else {
			fmt.Printf("Shortest ladder (%d steps): %s\n", result.Steps, strings.Join(result.Path, " -> "))
		}
	case "/reset":
		s, err := gameService.Reset(ctx, sessionID)
		if err != nil {
			return false, err
		}
		*state = s
		fmt.Printf("Reset. Weave from %s to %s.\n", s.StartWord, s.TargetWord)
	case "/new":
		s, err := gameService.NewGame(ctx, sessionID)
		if err != nil {
			return false, err
		}
		*state = s
		fmt.Printf("New game. Weave from %s to %s.\n", s.StartWord, s.TargetWord)
	case "/quit", "/exit":
		return true, nil
	default:
		return false, fmt.Errorf("unknown command %s (try /help)", fields[0])
	}
	return false, nil
}

// currentWord returns the latest accepted word, or the start word when no
// words have been played yet.
func currentWord(state *engine.GameState) string {
	if len(state.Attempts) > 0 {
		return state.Attempts[len(state.Attempts)-1]
	}
	return state.StartWord
}

// printFeedback renders per-letter marks under the word.
func printFeedback(word string, marks []engine.Mark) {
	if len(marks) != len(word) {
		return
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
	fmt.Printf("  %s\n  %s\n", strings.TrimRight(letters.String(), " "), strings.TrimRight(symbols.String(), " "))
}
