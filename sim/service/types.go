package service

import (
	"time"

	"github.com/jeneen24/robot-grid-simulator/sim/engine"
)

// SessionInfo provides information about a simulator session.
type SessionInfo struct {
	ID             string           `json:"id"`
	ScenarioName   string           `json:"scenario_name"`
	CreatedAt      time.Time        `json:"created_at"`
	LastAccessedAt time.Time        `json:"last_accessed_at"`
	Report         engine.Report    `json:"report"`
	Scenario       *engine.Scenario `json:"scenario"`
}

// CommandResult contains the outcome of executing one command line,
// together with the refreshed state projections front-ends render.
type CommandResult struct {
	Result engine.Result `json:"result"`
	Report engine.Report `json:"report"`
	Grid   string        `json:"grid"`
}

// ScriptStep is a compact record for each executed line in a script call.
type ScriptStep struct {
	Idx    int           `json:"idx"`
	Input  string        `json:"input"`
	Result engine.Result `json:"result"`
}

// ScriptResult contains the outcome of executing a sequence of command
// lines. Execution stops at the first failed line; completed lines keep
// their effect (the interpreter's partial-progress policy applies per line
// as well as across the script).
type ScriptResult struct {
	LinesExecuted  int           `json:"lines_executed"`
	RequestedLines int           `json:"requested_lines"`
	Success        bool          `json:"success"`
	Steps          []ScriptStep  `json:"steps"`
	StoppedOnLine  int           `json:"stopped_on_line,omitempty"` // 1-based
	StopErrorKind  engine.Kind   `json:"stop_error_kind,omitempty"`
	Report         engine.Report `json:"report"`
	Grid           string        `json:"grid"`
}

// HistoryOptions configures command history retrieval.
type HistoryOptions struct {
	Page  int    `json:"page"`
	Limit int    `json:"limit"`
	Order string `json:"order"` // "asc" or "desc"
}

// HistoryResponse contains paginated command history.
type HistoryResponse struct {
	Commands    []engine.CommandRecord `json:"commands"`
	Total       int                    `json:"total"`
	Page        int                    `json:"page"`
	PageSize    int                    `json:"page_size"`
	TotalPages  int                    `json:"total_pages"`
	HasNext     bool                   `json:"has_next"`
	HasPrevious bool                   `json:"has_previous"`
}

// ScenarioInfo provides information about an available scenario file.
type ScenarioInfo struct {
	Filename    string `json:"filename"`
	ScenarioID  string `json:"scenario_id"` // identifier used for session creation
	Name        string `json:"name"`
	Description string `json:"description"`
	GridWidth   int    `json:"grid_width"`
	GridHeight  int    `json:"grid_height"`
	Expandable  bool   `json:"expandable"`
}

// Session represents an active simulator session.
type Session struct {
	ID             string
	Sim            *engine.Simulation
	Scenario       *engine.Scenario
	CreatedAt      time.Time
	LastAccessedAt time.Time
}
