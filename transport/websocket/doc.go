// Package websocket provides WebSocket transport for the robot grid
// simulator.
//
// The websocket package implements:
//   - Session-aware WebSocket connections
//   - Automatic state broadcasting after each executed command
//   - Connection lifecycle management
//
// Architecture:
//
// The package uses a hub-and-spoke model where a central Hub manages all
// WebSocket connections. Each client connection is handled by a dedicated
// goroutine pair that manages reading, writing, and cleanup.
//
// Message Protocol:
//
// Outgoing frames are JSON-encoded Message values carrying the session ID,
// the refreshed status report, and the rendered grid snapshot. Incoming
// client messages are ignored; commands go through the REST or MCP surface
// and updates fan out here.
//
// Session Integration:
//
// Clients specify their session ID via query parameter (?session=abc1) when
// establishing the connection. State updates are broadcast only to clients
// connected to the same session.
//
// Usage:
//
//	hub := websocket.NewHub()
//	go hub.Run()
//
//	// after each executed command:
//	hub.BroadcastToSession(sessionID, report, grid)
package websocket
