package engine

import "fmt"

// Simulation is a single-owner session: it holds the robot, the grid, and
// the command history, and interprets command lines against them. All of its
// operations are immediate, bounded-time mutations; it performs no I/O and
// holds no locks (callers that share a Simulation must serialize access).
type Simulation struct {
	Robot *Robot
	Grid  *Grid

	scenario         *Scenario
	initialObstacles []Position
	history          []CommandRecord
	commandCount     int
}

// NewSimulation validates the scenario and builds a fresh simulation from
// it. A nil scenario uses DefaultScenario.
func NewSimulation(sc *Scenario) (*Simulation, error) {
	if sc == nil {
		sc = DefaultScenario()
	}
	if err := ValidateScenario(sc); err != nil {
		return nil, err
	}

	grid, err := NewGrid(sc.GridWidth, sc.GridHeight, sc.Expandable)
	if err != nil {
		return nil, err
	}
	for _, o := range sc.Obstacles {
		if err := grid.AddObstacle(o[0], o[1]); err != nil {
			return nil, fmt.Errorf("scenario obstacle: %w", err)
		}
	}

	heading, _ := ParseHeading(sc.StartHeading)
	sim := &Simulation{
		Robot:            NewRobot(sc.Start, heading, sc.StartingBattery),
		Grid:             grid,
		scenario:         sc,
		initialObstacles: append([]Position{}, grid.Obstacles...),
	}
	return sim, nil
}

// Scenario returns the scenario this simulation was built from.
func (s *Simulation) Scenario() *Scenario {
	return s.scenario
}

// Report projects the current state into a status summary. Read-only.
func (s *Simulation) Report() Report {
	return Report{
		Position:         s.Robot.Position,
		Heading:          s.Robot.Heading.String(),
		Battery:          s.Robot.Battery,
		GridWidth:        s.Grid.Width,
		GridHeight:       s.Grid.Height,
		Expandable:       s.Grid.Expandable,
		MoveCount:        s.Robot.MoveCount,
		Obstacles:        len(s.Grid.Obstacles),
		CommandsExecuted: s.commandCount,
	}
}

// RenderGrid returns the textual grid snapshot with the robot's position
// marked. Read-only.
func (s *Simulation) RenderGrid() string {
	return s.Grid.Render(s.Robot.Position)
}

// Reset restores the robot to its starting snapshot and the obstacle set to
// the scenario's initial obstacles. Grid dimensions are kept: grids never
// shrink, so expansion survives a reset. The command history is cumulative
// and is not cleared.
func (s *Simulation) Reset() {
	s.Robot.Reset()
	s.Grid.SetObstacles(s.initialObstacles)
}

// History returns the full command history, oldest first.
func (s *Simulation) History() []CommandRecord {
	return s.history
}

// CommandCount returns the number of command lines executed so far,
// including failed ones.
func (s *Simulation) CommandCount() int {
	return s.commandCount
}

// State is the serializable form of a Simulation, used by persistence.
type State struct {
	Robot            *Robot          `json:"robot"`
	Grid             *Grid           `json:"grid"`
	InitialObstacles []Position      `json:"initial_obstacles"`
	History          []CommandRecord `json:"history,omitempty"`
	CommandCount     int             `json:"command_count"`
}

// State captures the simulation for persistence.
func (s *Simulation) State() *State {
	return &State{
		Robot:            s.Robot,
		Grid:             s.Grid,
		InitialObstacles: s.initialObstacles,
		History:          s.history,
		CommandCount:     s.commandCount,
	}
}

// SetState restores a previously captured state (used when loading a
// persisted session).
func (s *Simulation) SetState(st *State) error {
	if st == nil || st.Robot == nil || st.Grid == nil {
		return fmt.Errorf("state is incomplete")
	}
	s.Robot = st.Robot
	s.Grid = st.Grid
	s.initialObstacles = append([]Position{}, st.InitialObstacles...)
	s.history = st.History
	s.commandCount = st.CommandCount
	return nil
}
