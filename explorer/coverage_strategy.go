package main

// CoverageStrategy picks the next command to visit every reachable cell.
// It knows the grid dimensions from the first report; obstacle positions are
// learned by running into them. Cells that stay unreachable after repeated
// blocks are written off so the run can still finish.
type CoverageStrategy struct {
	width  int
	height int

	visited   map[Position]bool
	obstacles map[Position]bool
	abandoned map[Position]bool

	// Current navigation target and a stall counter for it.
	target     *Position
	stallCount int
	lastPos    Position
}

// headings lists the compass codes in clockwise order, matching the robot's
// 45 degree turn steps.
var headings = []string{"N", "NE", "E", "SE", "S", "SW", "W", "NW"}

// headingDeltas maps a heading index to its unit step.
var headingDeltas = [][2]int{
	{0, 1}, {1, 1}, {1, 0}, {1, -1},
	{0, -1}, {-1, -1}, {-1, 0}, {-1, 1},
}

// lowBattery is the threshold below which the strategy charges before moving.
const lowBattery = 5

// maxStalls is how many commands a target gets before being abandoned.
const maxStalls = 30

func NewCoverageStrategy(report *Report) *CoverageStrategy {
	s := &CoverageStrategy{
		width:  report.GridWidth,
		height: report.GridHeight,
	}
	s.Reset()
	return s
}

// Reset clears per-attempt state. Learned obstacles are kept; they do not
// change across resets of the same scenario.
func (s *CoverageStrategy) Reset() {
	s.visited = make(map[Position]bool)
	if s.obstacles == nil {
		s.obstacles = make(map[Position]bool)
	}
	s.abandoned = make(map[Position]bool)
	s.target = nil
	s.stallCount = 0
}

// Observe records the robot's current cell as visited.
func (s *CoverageStrategy) Observe(report *Report) {
	s.visited[report.Position] = true

	if report.Position != s.lastPos {
		s.lastPos = report.Position
		s.stallCount = 0
	}

	if s.target != nil && s.visited[*s.target] {
		s.target = nil
	}
}

// ObserveFailure learns from a rejected command. A blocked forward move
// reveals an obstacle in the cell ahead.
func (s *CoverageStrategy) ObserveFailure(report *Report, command, errorKind string) {
	s.stallCount++

	if errorKind == "blocked" {
		hi := headingIndex(report.Heading)
		if hi >= 0 {
			blocked := Position{
				X: report.Position.X + headingDeltas[hi][0],
				Y: report.Position.Y + headingDeltas[hi][1],
			}
			s.obstacles[blocked] = true
			if s.target != nil && *s.target == blocked {
				s.target = nil
			}
		}
	}
}

// Done reports whether every cell that is not a known obstacle has been
// visited or written off.
func (s *CoverageStrategy) Done() bool {
	return s.nextUnvisited(Position{}) == nil && s.target == nil
}

// VisitedCount returns the number of distinct cells visited this attempt.
func (s *CoverageStrategy) VisitedCount() int {
	return len(s.visited)
}

// TargetCount returns the number of cells the strategy is trying to cover.
func (s *CoverageStrategy) TargetCount() int {
	return s.width*s.height - len(s.obstacles) - len(s.abandoned)
}

// NextCommand returns the next command line to execute, or "" when there is
// nothing left to do.
func (s *CoverageStrategy) NextCommand(report *Report) string {
	// Keep enough battery to take the next step.
	if report.Battery < lowBattery {
		return "charge"
	}

	// Give up on a target that keeps failing.
	if s.target != nil && s.stallCount > maxStalls {
		s.abandoned[*s.target] = true
		s.target = nil
		s.stallCount = 0
	}

	if s.target == nil {
		s.target = s.nextUnvisited(report.Position)
		if s.target == nil {
			return ""
		}
	}

	return s.stepToward(report, *s.target)
}

// stepToward turns the robot toward the target and moves one step. Diagonal
// headings are reached the same way as cardinal ones, one 45 degree turn at
// a time.
func (s *CoverageStrategy) stepToward(report *Report, target Position) string {
	dx := sign(target.X - report.Position.X)
	dy := sign(target.Y - report.Position.Y)

	desired := deltaHeadingIndex(dx, dy)
	current := headingIndex(report.Heading)
	if desired < 0 || current < 0 {
		return "forward 1"
	}

	// If the cell straight ahead is a known obstacle, try a detour heading.
	if desired == current {
		ahead := Position{
			X: report.Position.X + headingDeltas[current][0],
			Y: report.Position.Y + headingDeltas[current][1],
		}
		if s.obstacles[ahead] {
			s.stallCount++
			return "right"
		}
		return "forward 1"
	}

	diff := (desired - current + 8) % 8
	if diff <= 4 {
		return "right"
	}
	return "left"
}

// nextUnvisited returns the nearest cell still to cover, by Chebyshev
// distance from the given position.
func (s *CoverageStrategy) nextUnvisited(from Position) *Position {
	var best *Position
	bestDist := -1

	for y := 0; y < s.height; y++ {
		for x := 0; x < s.width; x++ {
			p := Position{X: x, Y: y}
			if s.visited[p] || s.obstacles[p] || s.abandoned[p] {
				continue
			}
			dist := chebyshev(p.X-from.X, p.Y-from.Y)
			if best == nil || dist < bestDist {
				q := p
				best = &q
				bestDist = dist
			}
		}
	}

	return best
}

func headingIndex(code string) int {
	for i, h := range headings {
		if h == code {
			return i
		}
	}
	return -1
}

func deltaHeadingIndex(dx, dy int) int {
	for i, d := range headingDeltas {
		if d[0] == dx && d[1] == dy {
			return i
		}
	}
	return -1
}

func chebyshev(dx, dy int) int {
	dx, dy = abs(dx), abs(dy)
	if dx > dy {
		return dx
	}
	return dy
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}
