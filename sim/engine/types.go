package engine

import "strings"

// Limits and defaults for the simulation.
const (
	MaxBattery          = 100
	MoveCost            = 1
	DefaultCharge       = 50
	DefaultForwardSteps = 1
	MinGridDimension    = 1
)

// Heading is one of the 8 compass directions the robot can face.
type Heading int

const (
	North Heading = iota
	NorthEast
	East
	SouthEast
	South
	SouthWest
	West
	NorthWest

	headingCount = 8
)

var headingCodes = [headingCount]string{"N", "NE", "E", "SE", "S", "SW", "W", "NW"}

var headingNames = [headingCount]string{
	"north", "northeast", "east", "southeast",
	"south", "southwest", "west", "northwest",
}

// headingDeltas maps each heading to its unit displacement. Y grows north.
var headingDeltas = [headingCount]Position{
	{0, 1},   // N
	{1, 1},   // NE
	{1, 0},   // E
	{1, -1},  // SE
	{0, -1},  // S
	{-1, -1}, // SW
	{-1, 0},  // W
	{-1, 1},  // NW
}

// String returns the short compass code (N, NE, ..., NW).
func (h Heading) String() string {
	if h < 0 || h >= headingCount {
		return "?"
	}
	return headingCodes[h]
}

// Name returns the long compass name (north, northeast, ...).
func (h Heading) Name() string {
	if h < 0 || h >= headingCount {
		return "?"
	}
	return headingNames[h]
}

// Delta returns the unit displacement for one step along h.
func (h Heading) Delta() Position {
	return headingDeltas[h]
}

// Left returns the heading rotated 45 degrees counterclockwise.
func (h Heading) Left() Heading {
	return (h + headingCount - 1) % headingCount
}

// Right returns the heading rotated 45 degrees clockwise.
func (h Heading) Right() Heading {
	return (h + 1) % headingCount
}

// Diagonal reports whether h is one of the four intercardinal directions.
func (h Heading) Diagonal() bool {
	return h == NorthEast || h == SouthEast || h == SouthWest || h == NorthWest
}

// MarshalText implements encoding.TextMarshaler so headings serialize as
// their compass codes in JSON.
func (h Heading) MarshalText() ([]byte, error) {
	return []byte(h.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (h *Heading) UnmarshalText(text []byte) error {
	parsed, ok := ParseHeading(string(text))
	if !ok {
		return newError(InvalidArgument, "invalid heading: %q", string(text))
	}
	*h = parsed
	return nil
}

// ParseHeading parses a compass code or long name, case-insensitively.
func ParseHeading(s string) (Heading, bool) {
	for i := 0; i < headingCount; i++ {
		if strings.EqualFold(s, headingCodes[i]) || strings.EqualFold(s, headingNames[i]) {
			return Heading(i), true
		}
	}
	return North, false
}

// Position represents x,y coordinates on the grid.
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Scenario is the construction-time configuration of a simulation: grid
// dimensions, initial obstacles, and the robot's starting state.
type Scenario struct {
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	GridWidth       int      `json:"grid_width"`
	GridHeight      int      `json:"grid_height"`
	Expandable      bool     `json:"expandable"`
	Obstacles       [][2]int `json:"obstacles,omitempty"`
	Start           Position `json:"start"`
	StartHeading    string   `json:"start_heading"`
	StartingBattery int      `json:"starting_battery"`
}

// Report is a read-only projection of the current simulation state.
type Report struct {
	Position         Position `json:"position"`
	Heading          string   `json:"heading"`
	Battery          int      `json:"battery"`
	GridWidth        int      `json:"grid_width"`
	GridHeight       int      `json:"grid_height"`
	Expandable       bool     `json:"expandable"`
	MoveCount        int      `json:"move_count"`
	Obstacles        int      `json:"obstacles"`
	CommandsExecuted int      `json:"commands_executed"`
}

// Result is the outcome of interpreting one command line. Failed commands
// carry the error kind; a multi-step move that failed partway reports the
// steps that did complete (partial progress is kept, not rolled back).
type Result struct {
	Success    bool   `json:"success"`
	Message    string `json:"message"`
	ErrorKind  Kind   `json:"error_kind,omitempty"`
	StepsTaken int    `json:"steps_taken,omitempty"`
}

// CommandRecord is one entry in the simulation's command history.
type CommandRecord struct {
	Input     string   `json:"input"`
	Verb      string   `json:"verb"`
	Message   string   `json:"message"`
	Success   bool     `json:"success"`
	ErrorKind Kind     `json:"error_kind,omitempty"`
	From      Position `json:"from"`
	To        Position `json:"to"`
	Battery   int      `json:"battery"`
	Timestamp int64    `json:"timestamp"`
	Number    int      `json:"number"`
}
