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

	"github.com/jeneen24/robot-grid-simulator/sim/engine"
	"github.com/jeneen24/robot-grid-simulator/sim/service"
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
		"Robot Grid Simulator",
		"1.0.0",
		server.WithToolCapabilities(true),
		server.WithInstructions(`Robot Grid Simulator - MCP Interface

This is a thin client that proxies all requests to the REST API server.

A robot sits on a rectangular grid and obeys text commands: forward, left,
right, diagonal, charge, obstacle, remove_obstacle, expand, report, grid,
reset. Moving costs battery; obstacles and grid edges block movement, and a
multi-step forward keeps the progress made before the blocking step.

AVAILABLE TOOLS:
- create_session: Create a new simulation session
- get_session: Get session details
- list_sessions: List all active sessions
- execute_command: Run one command line against a session
- execute_script: Run a sequence of command lines (stops on first failure)
- get_report: Get the robot's status report
- render_grid: Get the textual grid snapshot
- command_history: View past commands
- reset_session: Restore the starting state
- list_scenarios: List available scenarios
- simulator_instructions: Get the full command reference

NOTE: The 'intent' parameter on execute tools serves as rubber duck debugging - explain your reasoning!`),
	)

	c.registerTools()
}

// registerTools registers all MCP tools
func (c *Client) registerTools() {
	// Session management
	c.mcpServer.AddTool(mcp.Tool{
		Name:        "create_session",
		Description: "Create a new simulation session with optional scenario selection",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"scenario": map[string]interface{}{
					"type":        "string",
					"description": "Name of the scenario to load (optional, defaults to the classic 5x5 grid)",
				},
			},
		},
	}, c.handleCreateSession)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "list_sessions",
		Description: "List all active simulation sessions",
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

	// Simulation operations
	c.mcpServer.AddTool(mcp.Tool{
		Name:        "execute_command",
		Description: "Execute one command line (e.g. 'forward 2', 'left', 'obstacle 1 3', 'charge 60')",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
				"command": map[string]interface{}{
					"type":        "string",
					"description": "Command line to execute",
				},
				"intent": map[string]interface{}{
					"type":        "string",
					"description": "Brief explanation of the intent behind this command (serves as a rubber duck to help explain your reasoning)",
				},
			},
			Required: []string{"session_id", "command"},
		},
	}, c.handleExecuteCommand)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "execute_script",
		Description: "Execute multiple command lines in sequence, stopping at the first failure",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
				"commands": map[string]interface{}{
					"type": "array",
					"items": map[string]interface{}{
						"type": "string",
					},
					"description": "Array of command lines",
				},
				"intent": map[string]interface{}{
					"type":        "string",
					"description": "Brief explanation of the intent behind this sequence (serves as a rubber duck to help explain your reasoning)",
				},
			},
			Required: []string{"session_id", "commands"},
		},
	}, c.handleExecuteScript)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "reset_session",
		Description: "Restore the session's starting position, heading, battery, and obstacles",
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
		Name:        "get_report",
		Description: "Get the robot's status report (position, heading, battery, grid, counters)",
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
	}, c.handleGetReport)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "render_grid",
		Description: "Get the textual grid snapshot showing the robot (R) and obstacles (X)",
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
	}, c.handleRenderGrid)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "command_history",
		Description: "Get command history for a session",
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
	}, c.handleCommandHistory)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "list_scenarios",
		Description: "List available simulation scenarios",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, c.handleListScenarios)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "simulator_instructions",
		Description: "Get the full command reference and simulation rules",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, c.handleSimulatorInstructions)
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
	scenario, _ := args["scenario"].(string)

	body := map[string]string{}
	if scenario != "" {
		body["scenario"] = scenario
	}

	var session service.SessionInfo
	err := c.apiCall("POST", "/api/sessions", body, &session)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := fmt.Sprintf("Created session: %s\nScenario: %s\n\n%s",
		session.ID, session.ScenarioName, formatReport(&session.Report))
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
		result += fmt.Sprintf("- %s (Scenario: %s, Created: %s)\n",
			s.ID, s.ScenarioName, s.CreatedAt.Format("15:04:05"))
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

	result := fmt.Sprintf("Session: %s\nScenario: %s\nCreated: %s\n\n%s",
		session.ID, session.ScenarioName,
		session.CreatedAt.Format("2006-01-02 15:04:05"),
		formatReport(&session.Report))
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleExecuteCommand(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)
	command, _ := args["command"].(string)
	intent, _ := args["intent"].(string)

	// Intent parameter serves as rubber duck debugging - we don't need to process it further
	_ = intent

	body := map[string]string{"command": command}

	var result service.CommandResult
	err := c.apiCall("POST", fmt.Sprintf("/api/sessions/%s/command", sessionID), body, &result)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(formatCommandResult(&result)), nil
}

func (c *Client) handleExecuteScript(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)
	commandsRaw, _ := args["commands"].([]interface{})
	intent, _ := args["intent"].(string)

	// Intent parameter serves as rubber duck debugging - we don't need to process it further
	_ = intent

	commands := make([]string, 0, len(commandsRaw))
	for _, c := range commandsRaw {
		if line, ok := c.(string); ok {
			commands = append(commands, line)
		}
	}

	body := map[string]interface{}{"commands": commands}

	var result service.ScriptResult
	err := c.apiCall("POST", fmt.Sprintf("/api/sessions/%s/script", sessionID), body, &result)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(formatScriptResult(sessionID, &result)), nil
}

func (c *Client) handleReset(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)

	var result service.CommandResult
	err := c.apiCall("POST", fmt.Sprintf("/api/sessions/%s/reset", sessionID), nil, &result)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(formatCommandResult(&result)), nil
}

func (c *Client) handleGetReport(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)

	var report engine.Report
	err := c.apiCall("GET", fmt.Sprintf("/api/sessions/%s/report", sessionID), nil, &report)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(formatReport(&report)), nil
}

func (c *Client) handleRenderGrid(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)

	var response struct {
		Grid string `json:"grid"`
	}
	err := c.apiCall("GET", fmt.Sprintf("/api/sessions/%s/grid", sessionID), nil, &response)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(response.Grid), nil
}

func (c *Client) handleCommandHistory(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
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
	err := c.apiCall("GET", fmt.Sprintf("/api/sessions/%s/history%s", sessionID, params), nil, &history)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(formatHistory(&history)), nil
}

func (c *Client) handleListScenarios(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var scenarios []service.ScenarioInfo
	err := c.apiCall("GET", "/api/scenarios", nil, &scenarios)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := "Available Scenarios:\n\n"
	for _, sc := range scenarios {
		expandable := "fixed"
		if sc.Expandable {
			expandable = "expandable"
		}
		result += fmt.Sprintf("- %s\n  %s\n  Grid: %dx%d (%s)\n\n",
			sc.ScenarioID, sc.Description, sc.GridWidth, sc.GridHeight, expandable)
	}

	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleSimulatorInstructions(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	instructions := `Robot Grid Simulator - Command Reference

A robot sits on a rectangular grid of cells addressed (x, y) with the origin
at the bottom-left. It faces one of eight headings: N, NE, E, SE, S, SW, W, NW.

COMMANDS (case-insensitive, whitespace-separated arguments):
- forward <n>            Move n steps in the current heading (alias: f)
- left                   Turn 45 degrees counterclockwise (alias: l)
- right                  Turn 45 degrees clockwise (alias: r)
- diagonal <dir>         Move one step toward NE, SE, SW, or NW without
                         changing the heading (alias: d)
- charge [amount]        Add battery charge, default 50, capped at 100
- obstacle <x> <y>       Place an obstacle at (x, y)
- remove_obstacle <x> <y> Remove the obstacle at (x, y)
- expand <w> <h>         Grow the grid (expandable scenarios only; never shrinks)
- report                 One-line status summary
- grid                   Render the grid (R = robot, X = obstacle, . = empty)
- reset                  Restore the starting position, heading, battery,
                         and obstacle set

MOVEMENT RULES:
- Each step costs 1 battery unit; the battery check happens before the
  bounds and obstacle checks, per step.
- A multi-step forward that hits an obstacle, an edge, or a flat battery
  keeps the steps already taken and reports how many completed.
- On expandable grids, moving past the north or east edge grows the grid
  automatically. The robot never moves below the origin.

ERROR KINDS (returned in result.error_kind on failure):
unknown_command, invalid_argument, out_of_bounds, blocked,
insufficient_battery, expansion_disabled, invalid_dimension

STRATEGY NOTES:
- Use execute_script for command sequences; it stops at the first failed
  line and reports which line stopped it and why.
- render_grid before planning routes; obstacles block both forward and
  diagonal movement.
- charge before long runs; a move attempt with an empty battery fails
  without consuming anything.

SESSION MANAGEMENT:
- Multiple sessions run simultaneously with independent state.
- Each session has a unique short ID; pass it to every operation.`

	return mcp.NewToolResultText(instructions), nil
}

// Formatting helpers

func formatReport(r *engine.Report) string {
	if r == nil {
		return "No report available"
	}
	return fmt.Sprintf("Position: (%d, %d) | Heading: %s | Battery: %d/100\nGrid: %dx%d | Moves: %d | Obstacles: %d | Commands: %d",
		r.Position.X, r.Position.Y, r.Heading, r.Battery,
		r.GridWidth, r.GridHeight, r.MoveCount, r.Obstacles, r.CommandsExecuted)
}

func formatCommandResult(result *service.CommandResult) string {
	var b strings.Builder

	if result.Result.Success {
		b.WriteString("OK: ")
	} else {
		b.WriteString(fmt.Sprintf("FAILED (%s): ", result.Result.ErrorKind))
	}
	b.WriteString(result.Result.Message)
	b.WriteString("\n\n")
	b.WriteString(formatReport(&result.Report))
	if result.Grid != "" {
		b.WriteString("\n\n")
		b.WriteString(result.Grid)
	}
	return b.String()
}

func formatScriptResult(sessionID string, result *service.ScriptResult) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Session: %s\nExecuted %d/%d lines\n",
		sessionID, result.LinesExecuted, result.RequestedLines))
	if !result.Success {
		b.WriteString(fmt.Sprintf("Stopped on line %d (%s)\n",
			result.StoppedOnLine, result.StopErrorKind))
	}

	if len(result.Steps) > 0 {
		b.WriteString("\nSteps:\n")
		for _, step := range result.Steps {
			status := "OK"
			if !step.Result.Success {
				status = "FAIL"
			}
			b.WriteString(fmt.Sprintf("%d. %q %s: %s\n",
				step.Idx+1, step.Input, status, step.Result.Message))
		}
	}

	b.WriteString("\n")
	b.WriteString(formatReport(&result.Report))
	if result.Grid != "" {
		b.WriteString("\n\n")
		b.WriteString(result.Grid)
	}
	return b.String()
}

func formatHistory(history *service.HistoryResponse) string {
	result := fmt.Sprintf("Command History (Page %d/%d) - Total: %d\n\n",
		history.Page, history.TotalPages, history.Total)

	for _, record := range history.Commands {
		status := "OK"
		if !record.Success {
			status = "FAIL"
		}
		result += fmt.Sprintf("%d. %q %s [Battery: %d]\n",
			record.Number, record.Input, status, record.Battery)
	}

	return result
}
