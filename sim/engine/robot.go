package engine

// Snapshot records the robot's starting state for reset.
type Snapshot struct {
	Position Position `json:"position"`
	Heading  Heading  `json:"heading"`
	Battery  int      `json:"battery"`
}

// Robot is the moving agent: a position, a heading, a battery in [0, 100],
// and a move counter. Battery is spent on movement only; turning is free.
type Robot struct {
	Position  Position `json:"position"`
	Heading   Heading  `json:"heading"`
	Battery   int      `json:"battery"`
	MoveCount int      `json:"move_count"`
	Start     Snapshot `json:"start"`
}

// NewRobot creates a robot and records its starting snapshot. The battery is
// clamped into [0, MaxBattery].
func NewRobot(pos Position, heading Heading, battery int) *Robot {
	battery = clampBattery(battery)
	return &Robot{
		Position: pos,
		Heading:  heading,
		Battery:  battery,
		Start:    Snapshot{Position: pos, Heading: heading, Battery: battery},
	}
}

// TurnLeft rotates the heading 45 degrees counterclockwise.
func (r *Robot) TurnLeft() {
	r.Heading = r.Heading.Left()
}

// TurnRight rotates the heading 45 degrees clockwise.
func (r *Robot) TurnRight() {
	r.Heading = r.Heading.Right()
}

// step moves the robot one cell along dir. The battery precondition is
// checked before the target cell, so an exhausted robot reports
// InsufficientBattery even when facing a wall. On an expandable grid a
// target past the north or east edge grows the grid instead of blocking.
func (r *Robot) step(grid *Grid, dir Heading) error {
	if r.Battery < MoveCost {
		return newError(InsufficientBattery, "battery exhausted at (%d, %d): %d%% remaining", r.Position.X, r.Position.Y, r.Battery)
	}

	delta := dir.Delta()
	target := Position{X: r.Position.X + delta.X, Y: r.Position.Y + delta.Y}

	if !grid.Contains(target.X, target.Y) {
		if grid.Expandable && target.X >= 0 && target.Y >= 0 {
			grid.growTo(target.X, target.Y)
		} else {
			return newError(Blocked, "cannot move to (%d, %d): outside %dx%d grid", target.X, target.Y, grid.Width, grid.Height)
		}
	}
	if grid.IsObstacle(target.X, target.Y) {
		return newError(Blocked, "cannot move to (%d, %d): obstacle present", target.X, target.Y)
	}

	r.Position = target
	r.Battery -= MoveCost
	r.MoveCount++
	return nil
}

// Forward moves the robot steps cells along its current heading, one unit
// step at a time. It returns the number of steps completed and the error
// that stopped it, if any. Completed steps are kept (partial progress).
func (r *Robot) Forward(grid *Grid, steps int) (int, error) {
	taken := 0
	for i := 0; i < steps; i++ {
		if err := r.step(grid, r.Heading); err != nil {
			return taken, err
		}
		taken++
	}
	return taken, nil
}

// Diagonal moves the robot one cell along the given intercardinal direction
// under the same battery and collision rules as Forward. The current heading
// is unchanged: a diagonal move is a one-off displacement, not a turn.
func (r *Robot) Diagonal(grid *Grid, dir Heading) error {
	if !dir.Diagonal() {
		return newError(InvalidArgument, "not a diagonal direction: %s", dir)
	}
	return r.step(grid, dir)
}

// Charge raises the battery by amount, clamped to MaxBattery, and returns
// the amount actually gained. Charging a full battery is a no-op.
func (r *Robot) Charge(amount int) int {
	before := r.Battery
	r.Battery = clampBattery(r.Battery + amount)
	return r.Battery - before
}

// Reset restores position, heading, battery, and move count to the recorded
// starting snapshot.
func (r *Robot) Reset() {
	r.Position = r.Start.Position
	r.Heading = r.Start.Heading
	r.Battery = r.Start.Battery
	r.MoveCount = 0
}

func clampBattery(level int) int {
	if level < 0 {
		return 0
	}
	if level > MaxBattery {
		return MaxBattery
	}
	return level
}
