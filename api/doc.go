// Package api provides the HTTP REST surface for the robot grid simulator.
//
// The api package implements:
//   - RESTful endpoints for command execution
//   - Session management endpoints
//   - Scenario listing, loading, and creation
//   - WebSocket upgrade handling
//
// Endpoints:
//
// Session Management:
//   - POST   /api/sessions          - Create new session (optional {"scenario": "name"})
//   - GET    /api/sessions          - List sessions (sort/order/limit query params)
//   - GET    /api/sessions/{id}     - Get specific session
//   - DELETE /api/sessions/{id}     - Delete session
//
// Simulation Operations:
//   - POST /api/sessions/{id}/command - Execute one command line ({"command": "forward 2"})
//   - POST /api/sessions/{id}/script  - Execute a command sequence ({"commands": [...]})
//   - POST /api/sessions/{id}/reset   - Restore the starting state
//   - GET  /api/sessions/{id}/report  - Status report
//   - GET  /api/sessions/{id}/grid    - Rendered grid snapshot
//   - GET  /api/sessions/{id}/history - Command history with pagination
//
// Scenarios:
//   - GET  /api/scenarios        - List available scenarios
//   - POST /api/scenarios        - Save a new scenario
//   - GET  /api/scenarios/{name} - Load one scenario
//
// Request/Response Format:
//
// All endpoints accept and return JSON. Command execution responses carry
// the interpreter result together with the refreshed report and rendered
// grid, so front-ends never need a second round trip. Interpreter failures
// (unknown command, blocked move, flat battery) are HTTP 200 with
// result.success=false; HTTP errors are reserved for missing sessions and
// malformed requests:
//
//	{
//	  "error": "error message"
//	}
//
// Usage:
//
//	server := api.NewServer(simService, hub)
//	http.ListenAndServe(":8080", server)
package api
