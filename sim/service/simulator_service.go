package service

import (
	"context"

	"github.com/jeneen24/robot-grid-simulator/sim/engine"
)

// SimulatorService defines all simulator-facing operations exposed to
// front-ends (REST, WebSocket, MCP, REPL).
type SimulatorService interface {
	// Session management
	CreateSession(ctx context.Context, scenarioName string) (*SessionInfo, error)
	GetSession(ctx context.Context, sessionID string) (*SessionInfo, error)
	ListSessions(ctx context.Context) ([]*SessionInfo, error)
	DeleteSession(ctx context.Context, sessionID string) error

	// Command execution
	Execute(ctx context.Context, sessionID, command string) (*CommandResult, error)
	ExecuteScript(ctx context.Context, sessionID string, lines []string) (*ScriptResult, error)
	Reset(ctx context.Context, sessionID string) (*CommandResult, error)

	// State reads
	GetReport(ctx context.Context, sessionID string) (*engine.Report, error)
	RenderGrid(ctx context.Context, sessionID string) (string, error)
	GetHistory(ctx context.Context, sessionID string, opts HistoryOptions) (*HistoryResponse, error)

	// Scenarios
	ListScenarios(ctx context.Context) ([]*ScenarioInfo, error)
	LoadScenario(ctx context.Context, name string) (*engine.Scenario, error)
	SaveScenario(ctx context.Context, name string, sc *engine.Scenario) error
}

// SessionManager defines session storage operations.
type SessionManager interface {
	Create(id string, sc *engine.Scenario) (*Session, error)
	Get(id string) (*Session, error)
	List() []*Session
	Delete(id string) error
	UpdateLastAccessed(id string) error
	Save(id string) error
}

// ScenarioManager handles scenario file loading.
type ScenarioManager interface {
	LoadScenario(name string) (*engine.Scenario, error)
	ListScenarios() ([]*ScenarioInfo, error)
	GetDefault() *engine.Scenario
	SaveScenario(name string, sc *engine.Scenario) error
}
