// Command robotsim starts the robot grid simulator.
//
// It supports three modes:
//  1. "serve" (default) - runs the HTTP server exposing REST API, WebSocket, and an /mcp HTTP endpoint
//  2. "mcp" - runs an MCP stdio server and spins up an internal HTTP API if none is available
//  3. "repl" - runs an interactive command loop against a single local simulation
//
// Flags control the listen address, scenario directory, session directory,
// and optional ngrok tunneling for easy external access during development.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/urfave/cli/v3"
	"golang.ngrok.com/ngrok"
	ngrokConfig "golang.ngrok.com/ngrok/config"

	"github.com/jeneen24/robot-grid-simulator/api"
	"github.com/jeneen24/robot-grid-simulator/logger"
	"github.com/jeneen24/robot-grid-simulator/repl"
	"github.com/jeneen24/robot-grid-simulator/sim/config"
	"github.com/jeneen24/robot-grid-simulator/sim/engine"
	"github.com/jeneen24/robot-grid-simulator/sim/service"
	"github.com/jeneen24/robot-grid-simulator/sim/session"
	"github.com/jeneen24/robot-grid-simulator/transport/mcp"
	"github.com/jeneen24/robot-grid-simulator/transport/websocket"
)

// Version information
const (
	Version = "1.0.0"
	AppName = "Robot Grid Simulator"
)

var log = logger.NewZerologLogger("main")

func main() {
	// Load .env file if it exists (ignore error if not found)
	if err := godotenv.Load(); err != nil {
		if !os.IsNotExist(err) {
			log.Warnf("Error loading .env file: %v", err)
		}
	} else {
		log.Infof("Loaded environment variables from .env file")
	}

	cmd := &cli.Command{
		Name:    "robotsim",
		Usage:   "robot grid simulator server and tools",
		Version: Version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "addr",
				Value:   "localhost:8080",
				Usage:   "HTTP listen address",
				Sources: cli.EnvVars("ROBOTSIM_ADDR"),
			},
			&cli.StringFlag{
				Name:    "scenario-dir",
				Value:   "configs",
				Usage:   "directory containing scenario JSON files",
				Sources: cli.EnvVars("ROBOTSIM_SCENARIO_DIR"),
			},
			&cli.StringFlag{
				Name:    "sessions-dir",
				Value:   "sessions",
				Usage:   "directory for persisted session files",
				Sources: cli.EnvVars("ROBOTSIM_SESSIONS_DIR"),
			},
		},
		Commands: []*cli.Command{
			{
				Name:  "serve",
				Usage: "run the HTTP server with REST API, WebSocket, and MCP endpoint",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:    "ngrok",
						Usage:   "enable ngrok tunnel",
						Sources: cli.EnvVars("NGROK_ENABLED"),
					},
					&cli.StringFlag{
						Name:    "ngrok-auth",
						Usage:   "ngrok auth token",
						Sources: cli.EnvVars("NGROK_AUTHTOKEN", "NGROK_AUTH_TOKEN"),
					},
					&cli.StringFlag{
						Name:    "ngrok-domain",
						Usage:   "custom ngrok domain",
						Sources: cli.EnvVars("NGROK_DOMAIN"),
					},
				},
				Action: runServe,
			},
			{
				Name:    "mcp",
				Aliases: []string{"stdio-mcp"},
				Usage:   "run an MCP stdio server, reusing or spawning an HTTP API",
				Action:  runStdioMCP,
			},
			{
				Name:  "repl",
				Usage: "run an interactive command loop against a local simulation",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "scenario",
						Usage: "scenario name to load (defaults to the built-in 5x5 grid)",
					},
				},
				Action: runREPL,
			},
		},
		// No subcommand behaves like "serve" so a bare invocation starts the server.
		Action: runServe,
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Errorf("%v", err)
		os.Exit(1)
	}
}

// runServe starts the HTTP server with REST API, WebSocket hub, and an /mcp proxy
// endpoint. If ngrok is enabled (via flag or environment), it also provisions a
// public tunnel.
func runServe(ctx context.Context, cmd *cli.Command) error {
	simService, err := initializeServices(cmd.String("scenario-dir"), cmd.String("sessions-dir"))
	if err != nil {
		return fmt.Errorf("failed to initialize services: %w", err)
	}

	hub := websocket.NewHub()
	go hub.Run()

	apiServer := api.NewServer(simService, hub)

	addr := cmd.String("addr")
	baseURL := fmt.Sprintf("http://%s", addr)
	mcpClient := mcp.NewClient(baseURL)

	// Main router combines the API surface and the MCP endpoint.
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

	serveCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()

		log.Infof("HTTP server listening on %s", addr)
		log.Infof("REST API: http://%s/api", addr)
		log.Infof("WebSocket: ws://%s/ws?session=<session_id>", addr)
		log.Infof("MCP endpoint: http://%s/mcp", addr)

		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Errorf("HTTP server failed: %v", err)
			os.Exit(1)
		}
	}()

	if cmd.Bool("ngrok") {
		wg.Add(1)
		go func() {
			defer wg.Done()
			runNgrokTunnel(serveCtx, cmd, mainRouter)
		}()
	}

	sig := <-stop
	log.Infof("Received signal: %v. Shutting down...", sig)
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Errorf("HTTP server shutdown error: %v", err)
	}

	wg.Wait()
	log.Infof("Server stopped")
	return nil
}

// runNgrokTunnel provisions a public ngrok endpoint and serves the router
// through it until the context is cancelled.
func runNgrokTunnel(ctx context.Context, cmd *cli.Command, handler http.Handler) {
	authToken := cmd.String("ngrok-auth")
	if authToken == "" {
		log.Warnf("Ngrok enabled but no auth token provided (use --ngrok-auth, NGROK_AUTHTOKEN, or NGROK_AUTH_TOKEN env var)")
		return
	}

	log.Infof("Starting ngrok tunnel...")

	var tunnel ngrokConfig.Tunnel
	if domain := cmd.String("ngrok-domain"); domain != "" {
		tunnel = ngrokConfig.HTTPEndpoint(ngrokConfig.WithDomain(domain))
		log.Infof("Using custom ngrok domain: %s", domain)
	} else {
		tunnel = ngrokConfig.HTTPEndpoint()
	}

	tun, err := ngrok.Listen(ctx,
		tunnel,
		ngrok.WithAuthtoken(authToken),
	)
	if err != nil {
		log.Errorf("Failed to start ngrok tunnel: %v", err)
		return
	}
	defer func() {
		if err := tun.Close(); err != nil {
			log.Errorf("Failed to close ngrok tunnel: %v", err)
		}
	}()

	ngrokURL := tun.URL()
	log.Infof("Ngrok tunnel established: %s", ngrokURL)
	log.Infof("  REST API (ngrok): %s/api", ngrokURL)
	log.Infof("  WebSocket (ngrok): %s/ws?session=<session_id>", ngrokURL)
	log.Infof("  MCP endpoint (ngrok): %s/mcp", ngrokURL)

	if err := http.Serve(tun, handler); err != nil && err != http.ErrServerClosed {
		log.Errorf("Ngrok server error: %v", err)
	}
	log.Infof("Ngrok tunnel closed")
}

// initializeServices wires the scenario and session managers and the simulator
// service. It also starts background routines to prune stale sessions and to
// keep memory in sync with the session files on disk.
func initializeServices(scenarioDir, sessionsDir string) (service.SimulatorService, error) {
	scenarioManager, err := config.NewManager(scenarioDir)
	if err != nil {
		return nil, fmt.Errorf("failed to create scenario manager: %w", err)
	}

	persistence, err := session.NewFilePersistence(sessionsDir)
	if err != nil {
		return nil, fmt.Errorf("failed to create session persistence: %w", err)
	}

	sessionManager := session.NewManagerWithPersistence(persistence)

	if err := sessionManager.LoadPersistedSessions(); err != nil {
		log.Warnf("Failed to load persisted sessions: %v", err)
	}

	simService := service.NewSimulatorService(sessionManager, scenarioManager)

	go sessionCleanupRoutine(sessionManager)
	go filesystemSyncRoutine(sessionManager, persistence)

	return simService, nil
}

// sessionCleanupRoutine periodically removes sessions that have not been
// accessed within the retention window.
func sessionCleanupRoutine(manager *session.Manager) {
	ticker := time.NewTicker(1 * time.Hour)
	defer ticker.Stop()

	for range ticker.C {
		removed := manager.CleanupExpiredSessions(24 * time.Hour)
		if removed > 0 {
			log.Infof("Cleaned up %d expired sessions", removed)
		}
	}
}

// filesystemSyncRoutine periodically syncs in-memory sessions with filesystem
// state, dropping sessions from memory when their files are deleted.
func filesystemSyncRoutine(manager *session.Manager, persistence session.Persistence) {
	ticker := time.NewTicker(5 * time.Second)
	defer ticker.Stop()

	for range ticker.C {
		if persistence == nil {
			continue
		}

		pruned := 0
		for _, sess := range manager.List() {
			if !persistence.Exists(sess.ID) {
				if err := manager.DeleteFromMemory(sess.ID); err == nil {
					pruned++
					log.Infof("Pruned session %s from memory (file deleted)", sess.ID)
				}
			}
		}

		if pruned > 0 {
			log.Infof("Filesystem sync: pruned %d orphaned sessions from memory", pruned)
		}
	}
}

// runStdioMCP runs an MCP stdio server. It tries to reuse an external API at
// the configured address first; if unavailable, it starts a minimal internal
// HTTP API bound to a random loopback port and targets that.
func runStdioMCP(ctx context.Context, cmd *cli.Command) error {
	externalURL := fmt.Sprintf("http://%s", cmd.String("addr"))
	log.Infof("Checking for external API server at %s...", externalURL)

	var baseURL string

	testClient := &http.Client{Timeout: 2 * time.Second}
	resp, err := testClient.Get(externalURL + "/api/health")
	if err == nil && resp.StatusCode < 500 {
		resp.Body.Close()
		log.Infof("External API server found at %s, using it for MCP", externalURL)
		baseURL = externalURL
	} else {
		log.Infof("No external API server found, starting internal HTTP server")

		simService, err := initializeServices(cmd.String("scenario-dir"), cmd.String("sessions-dir"))
		if err != nil {
			return fmt.Errorf("failed to initialize services: %w", err)
		}

		listener, err := net.Listen("tcp", "127.0.0.1:0")
		if err != nil {
			return fmt.Errorf("failed to get available port: %w", err)
		}

		internalAddr := listener.Addr().String()
		log.Infof("Starting internal HTTP server on %s for MCP stdio", internalAddr)

		hub := websocket.NewHub()
		go hub.Run()

		httpServer := &http.Server{Handler: api.NewServer(simService, hub)}
		go func() {
			if err := httpServer.Serve(listener); err != nil && err != http.ErrServerClosed {
				log.Errorf("Internal HTTP server error: %v", err)
			}
		}()

		// Give the listener a moment before the first tool call.
		time.Sleep(100 * time.Millisecond)

		baseURL = fmt.Sprintf("http://%s", internalAddr)
	}

	mcpClient := mcp.NewClient(baseURL)
	log.Infof("MCP stdio server ready (API at %s)", baseURL)

	if err := mcpserver.ServeStdio(mcpClient.GetMCPServer()); err != nil {
		return fmt.Errorf("MCP stdio server error: %w", err)
	}
	return nil
}

// runREPL loads the requested scenario and runs the interactive loop on
// stdin/stdout until EOF or a quit command.
func runREPL(ctx context.Context, cmd *cli.Command) error {
	var sc *engine.Scenario

	if name := cmd.String("scenario"); name != "" {
		scenarioManager, err := config.NewManager(cmd.String("scenario-dir"))
		if err != nil {
			return fmt.Errorf("failed to create scenario manager: %w", err)
		}
		sc, err = scenarioManager.LoadScenario(name)
		if err != nil {
			return fmt.Errorf("failed to load scenario %q: %w", name, err)
		}
	}

	sim, err := engine.NewSimulation(sc)
	if err != nil {
		return fmt.Errorf("failed to create simulation: %w", err)
	}

	return repl.New(sim, os.Stdin, os.Stdout).Run()
}
