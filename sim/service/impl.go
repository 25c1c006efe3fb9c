package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/jeneen24/robot-grid-simulator/sim/engine"
)

// simulatorServiceImpl implements SimulatorService. A single service-level
// mutex serializes command execution: the engine itself is single-owner and
// takes no locks (see engine package docs).
type simulatorServiceImpl struct {
	sessions  SessionManager
	scenarios ScenarioManager
	mu        sync.RWMutex
}

// NewSimulatorService creates a new simulator service instance.
func NewSimulatorService(sessions SessionManager, scenarios ScenarioManager) SimulatorService {
	return &simulatorServiceImpl{
		sessions:  sessions,
		scenarios: scenarios,
	}
}

// CreateSession creates a new session running the named scenario, or the
// built-in default when scenarioName is empty.
func (s *simulatorServiceImpl) CreateSession(ctx context.Context, scenarioName string) (*SessionInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var sc *engine.Scenario
	var err error
	if scenarioName != "" {
		sc, err = s.scenarios.LoadScenario(scenarioName)
		if err != nil {
			if infos, listErr := s.scenarios.ListScenarios(); listErr == nil && len(infos) > 0 {
				ids := make([]string, 0, len(infos))
				for _, info := range infos {
					ids = append(ids, info.ScenarioID)
				}
				return nil, fmt.Errorf("scenario %q not found, available: %v", scenarioName, ids)
			}
			return nil, fmt.Errorf("failed to load scenario %q: %w", scenarioName, err)
		}
	} else {
		sc = s.scenarios.GetDefault()
	}

	session, err := s.sessions.Create("", sc)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	return s.sessionInfo(session), nil
}

// GetSession retrieves session information.
func (s *simulatorServiceImpl) GetSession(ctx context.Context, sessionID string) (*SessionInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}
	s.sessions.UpdateLastAccessed(sessionID)

	return s.sessionInfo(session), nil
}

// ListSessions returns all active sessions.
func (s *simulatorServiceImpl) ListSessions(ctx context.Context) ([]*SessionInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sessions := s.sessions.List()
	result := make([]*SessionInfo, 0, len(sessions))
	for _, session := range sessions {
		result = append(result, s.sessionInfo(session))
	}
	return result, nil
}

// DeleteSession removes a session.
func (s *simulatorServiceImpl) DeleteSession(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.sessions.Delete(sessionID)
}

// Execute runs one command line against the session's simulation. The
// command outcome, including interpreter errors, is returned as data; an
// error return means the session itself was unavailable.
func (s *simulatorServiceImpl) Execute(ctx context.Context, sessionID, command string) (*CommandResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}
	s.sessions.UpdateLastAccessed(sessionID)

	result := session.Sim.Execute(command)
	s.sessions.Save(sessionID)

	return &CommandResult{
		Result: result,
		Report: session.Sim.Report(),
		Grid:   session.Sim.RenderGrid(),
	}, nil
}

// ExecuteScript runs a sequence of command lines, stopping at the first
// failure. Completed lines keep their effect.
func (s *simulatorServiceImpl) ExecuteScript(ctx context.Context, sessionID string, lines []string) (*ScriptResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}
	s.sessions.UpdateLastAccessed(sessionID)

	script := &ScriptResult{
		RequestedLines: len(lines),
		Success:        true,
		Steps:          make([]ScriptStep, 0, len(lines)),
	}

	for i, line := range lines {
		result := session.Sim.Execute(line)
		script.Steps = append(script.Steps, ScriptStep{Idx: i, Input: line, Result: result})
		script.LinesExecuted++

		if !result.Success {
			script.Success = false
			script.StoppedOnLine = i + 1
			script.StopErrorKind = result.ErrorKind
			break
		}
	}

	s.sessions.Save(sessionID)
	script.Report = session.Sim.Report()
	script.Grid = session.Sim.RenderGrid()
	return script, nil
}

// Reset restores the session's simulation to its starting state.
func (s *simulatorServiceImpl) Reset(ctx context.Context, sessionID string) (*CommandResult, error) {
	return s.Execute(ctx, sessionID, "reset")
}

// GetReport returns the status summary for a session.
func (s *simulatorServiceImpl) GetReport(ctx context.Context, sessionID string) (*engine.Report, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}

	report := session.Sim.Report()
	return &report, nil
}

// RenderGrid returns the textual grid snapshot for a session.
func (s *simulatorServiceImpl) RenderGrid(ctx context.Context, sessionID string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, err := s.sessions.Get(sessionID)
	if err != nil {
		return "", fmt.Errorf("session not found: %w", err)
	}

	return session.Sim.RenderGrid(), nil
}

// GetHistory returns a page of the session's command history.
func (s *simulatorServiceImpl) GetHistory(ctx context.Context, sessionID string, opts HistoryOptions) (*HistoryResponse, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}

	history := session.Sim.History()
	total := len(history)

	if opts.Page < 1 {
		opts.Page = 1
	}
	if opts.Limit < 1 {
		opts.Limit = 50
	}
	if opts.Order != "asc" {
		opts.Order = "desc"
	}

	ordered := make([]engine.CommandRecord, total)
	copy(ordered, history)
	if opts.Order == "desc" {
		for i, j := 0, total-1; i < j; i, j = i+1, j-1 {
			ordered[i], ordered[j] = ordered[j], ordered[i]
		}
	}

	totalPages := (total + opts.Limit - 1) / opts.Limit
	if totalPages == 0 {
		totalPages = 1
	}

	start := (opts.Page - 1) * opts.Limit
	if start > total {
		start = total
	}
	end := start + opts.Limit
	if end > total {
		end = total
	}

	return &HistoryResponse{
		Commands:    ordered[start:end],
		Total:       total,
		Page:        opts.Page,
		PageSize:    opts.Limit,
		TotalPages:  totalPages,
		HasNext:     opts.Page < totalPages,
		HasPrevious: opts.Page > 1,
	}, nil
}

// ListScenarios returns the available scenarios.
func (s *simulatorServiceImpl) ListScenarios(ctx context.Context) ([]*ScenarioInfo, error) {
	return s.scenarios.ListScenarios()
}

// LoadScenario loads one scenario by name.
func (s *simulatorServiceImpl) LoadScenario(ctx context.Context, name string) (*engine.Scenario, error) {
	return s.scenarios.LoadScenario(name)
}

// SaveScenario validates and stores a scenario.
func (s *simulatorServiceImpl) SaveScenario(ctx context.Context, name string, sc *engine.Scenario) error {
	if name == "" {
		return errors.New("scenario name is required")
	}
	return s.scenarios.SaveScenario(name, sc)
}

func (s *simulatorServiceImpl) sessionInfo(session *Session) *SessionInfo {
	return &SessionInfo{
		ID:             session.ID,
		ScenarioName:   session.Scenario.Name,
		CreatedAt:      session.CreatedAt,
		LastAccessedAt: session.LastAccessedAt,
		Report:         session.Sim.Report(),
		Scenario:       session.Scenario,
	}
}
