// Package service provides the business logic layer for the robot grid
// simulator.
//
// The service package implements:
//   - Multi-session simulation management
//   - Scenario loading and validation
//   - Command and script execution
//   - Command history pagination
//
// Core Interfaces:
//
// SimulatorService is the main service interface providing high-level
// simulator operations. SessionManager handles session creation, retrieval,
// and lifecycle. ScenarioManager manages scenario file loading.
//
// Architecture:
//
// The service layer sits between the transport layer (HTTP/WebSocket/MCP/REPL)
// and the simulation engine, providing session isolation and orchestration.
// Each session maintains its own Simulation instance with independent state.
//
// Usage:
//
//	sessionMgr := session.NewManager()
//	scenarioMgr := config.NewManager("configs")
//	svc := service.NewSimulatorService(sessionMgr, scenarioMgr)
//
//	info, err := svc.CreateSession(ctx, "classic")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	result, err := svc.Execute(ctx, info.ID, "forward 2")
package service
