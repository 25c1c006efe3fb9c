// Package mcp provides the Model Context Protocol surface for the robot
// grid simulator.
//
// The mcp package implements:
//   - MCP server for AI agent integration
//   - Tool definitions for simulator operations
//   - Session-aware command execution
//
// MCP Tools:
//
// The package exposes the following tools for AI agents:
//   - create_session: Create new simulation session with scenario selection
//   - get_session: Get specific session details
//   - list_sessions: List all active sessions
//   - execute_command: Run one command line against a session
//   - execute_script: Run a command sequence, stopping at the first failure
//   - get_report: Get the robot's status report
//   - render_grid: Get the textual grid snapshot
//   - command_history: Retrieve command history with pagination
//   - reset_session: Restore the starting state
//   - list_scenarios: List available scenarios
//   - simulator_instructions: Get the full command reference
//
// Architecture:
//
// The Client is a thin proxy: every tool handler calls the REST API and
// formats the JSON response as text. Running the MCP surface against the
// API (instead of the service directly) keeps a single execution path and
// lets the WebSocket broadcast fire for MCP-driven commands too.
//
// Usage:
//
//	client := mcp.NewClient("http://localhost:8080")
//	mcpServer := client.GetMCPServer()
//	// mount via server.NewStreamableHTTPServer or stdio
package mcp
