package engine

import "testing"

func TestTurnLeftRight_Inverse(t *testing.T) {
	for h := Heading(0); h < headingCount; h++ {
		robot := NewRobot(Position{X: 2, Y: 2}, h, MaxBattery)
		robot.TurnLeft()
		robot.TurnRight()
		if robot.Heading != h {
			t.Errorf("left then right from %s: expected %s, got %s", h, h, robot.Heading)
		}
		robot.TurnRight()
		robot.TurnLeft()
		if robot.Heading != h {
			t.Errorf("right then left from %s: expected %s, got %s", h, h, robot.Heading)
		}
	}
}

func TestTurn_WrapsAroundCompass(t *testing.T) {
	robot := NewRobot(Position{}, North, MaxBattery)
	robot.TurnLeft()
	if robot.Heading != NorthWest {
		t.Errorf("Expected NW after left from N, got %s", robot.Heading)
	}
	for i := 0; i < headingCount; i++ {
		robot.TurnRight()
	}
	if robot.Heading != NorthWest {
		t.Errorf("Expected full clockwise rotation to return to NW, got %s", robot.Heading)
	}
}

func TestTurn_DoesNotConsumeBattery(t *testing.T) {
	robot := NewRobot(Position{}, North, 42)
	robot.TurnLeft()
	robot.TurnRight()
	if robot.Battery != 42 {
		t.Errorf("Expected battery 42 after turns, got %d", robot.Battery)
	}
}

func TestForward(t *testing.T) {
	grid, _ := NewGrid(5, 5, false)
	robot := NewRobot(Position{X: 0, Y: 0}, North, MaxBattery)

	taken, err := robot.Forward(grid, 2)
	if err != nil {
		t.Fatalf("Forward failed: %v", err)
	}
	if taken != 2 {
		t.Errorf("Expected 2 steps taken, got %d", taken)
	}
	if robot.Position != (Position{X: 0, Y: 2}) {
		t.Errorf("Expected position (0, 2), got (%d, %d)", robot.Position.X, robot.Position.Y)
	}
	if robot.Battery != MaxBattery-2 {
		t.Errorf("Expected battery %d, got %d", MaxBattery-2, robot.Battery)
	}
	if robot.MoveCount != 2 {
		t.Errorf("Expected move count 2, got %d", robot.MoveCount)
	}
}

func TestForward_BlockedByObstacle_PartialProgress(t *testing.T) {
	grid, _ := NewGrid(5, 5, false)
	grid.AddObstacle(0, 2)
	robot := NewRobot(Position{X: 0, Y: 0}, North, MaxBattery)

	taken, err := robot.Forward(grid, 2)
	if KindOf(err) != Blocked {
		t.Fatalf("Expected Blocked, got %v", err)
	}
	if taken != 1 {
		t.Errorf("Expected 1 completed step, got %d", taken)
	}
	if robot.Position != (Position{X: 0, Y: 1}) {
		t.Errorf("Expected position (0, 1), got (%d, %d)", robot.Position.X, robot.Position.Y)
	}
	if robot.MoveCount != 1 {
		t.Errorf("Expected move count 1, got %d", robot.MoveCount)
	}
}

func TestForward_BlockedByBoundary(t *testing.T) {
	grid, _ := NewGrid(5, 5, false)
	robot := NewRobot(Position{X: 0, Y: 4}, North, MaxBattery)

	taken, err := robot.Forward(grid, 1)
	if KindOf(err) != Blocked {
		t.Fatalf("Expected Blocked, got %v", err)
	}
	if taken != 0 {
		t.Errorf("Expected no steps taken, got %d", taken)
	}
	if robot.Position != (Position{X: 0, Y: 4}) {
		t.Error("Expected position unchanged at the boundary")
	}
}

func TestForward_InsufficientBattery(t *testing.T) {
	grid, _ := NewGrid(5, 5, false)
	robot := NewRobot(Position{X: 0, Y: 0}, North, 1)

	taken, err := robot.Forward(grid, 3)
	if KindOf(err) != InsufficientBattery {
		t.Fatalf("Expected InsufficientBattery, got %v", err)
	}
	if taken != 1 {
		t.Errorf("Expected 1 completed step before exhaustion, got %d", taken)
	}
	if robot.Battery != 0 {
		t.Errorf("Expected battery 0, got %d", robot.Battery)
	}
}

func TestForward_BatteryCheckedBeforeWall(t *testing.T) {
	grid, _ := NewGrid(5, 5, false)
	robot := NewRobot(Position{X: 0, Y: 4}, North, 0)

	// Exhausted and facing the boundary: battery precondition wins.
	_, err := robot.Forward(grid, 1)
	if KindOf(err) != InsufficientBattery {
		t.Errorf("Expected InsufficientBattery, got %v", err)
	}
}

func TestForward_AutoExpansion(t *testing.T) {
	grid, _ := NewGrid(5, 5, true)
	robot := NewRobot(Position{X: 0, Y: 4}, North, MaxBattery)

	taken, err := robot.Forward(grid, 2)
	if err != nil {
		t.Fatalf("Forward on expandable grid failed: %v", err)
	}
	if taken != 2 {
		t.Errorf("Expected 2 steps, got %d", taken)
	}
	if grid.Height != 7 {
		t.Errorf("Expected grid height 7 after auto-expansion, got %d", grid.Height)
	}
	if robot.Position != (Position{X: 0, Y: 6}) {
		t.Errorf("Expected position (0, 6), got (%d, %d)", robot.Position.X, robot.Position.Y)
	}
}

func TestForward_NoExpansionBelowOrigin(t *testing.T) {
	// Even an expandable grid never grows past the origin.
	grid, _ := NewGrid(5, 5, true)
	robot := NewRobot(Position{X: 0, Y: 0}, South, MaxBattery)

	_, err := robot.Forward(grid, 1)
	if KindOf(err) != Blocked {
		t.Errorf("Expected Blocked moving south of the origin, got %v", err)
	}
}

func TestDiagonal(t *testing.T) {
	grid, _ := NewGrid(5, 5, false)
	robot := NewRobot(Position{X: 1, Y: 1}, North, MaxBattery)

	if err := robot.Diagonal(grid, SouthEast); err != nil {
		t.Fatalf("Diagonal failed: %v", err)
	}
	if robot.Position != (Position{X: 2, Y: 0}) {
		t.Errorf("Expected position (2, 0), got (%d, %d)", robot.Position.X, robot.Position.Y)
	}
	if robot.Heading != North {
		t.Errorf("Diagonal must not change heading, got %s", robot.Heading)
	}
	if robot.Battery != MaxBattery-MoveCost {
		t.Errorf("Expected diagonal to cost %d, battery is %d", MoveCost, robot.Battery)
	}
	if robot.MoveCount != 1 {
		t.Errorf("Expected move count 1, got %d", robot.MoveCount)
	}
}

func TestDiagonal_RejectsCardinal(t *testing.T) {
	grid, _ := NewGrid(5, 5, false)
	robot := NewRobot(Position{X: 1, Y: 1}, North, MaxBattery)

	err := robot.Diagonal(grid, East)
	if KindOf(err) != InvalidArgument {
		t.Errorf("Expected InvalidArgument for cardinal direction, got %v", err)
	}
}

func TestCharge_ClampsAtMax(t *testing.T) {
	robot := NewRobot(Position{}, North, 60)

	gained := robot.Charge(DefaultCharge)
	if robot.Battery != MaxBattery {
		t.Errorf("Expected battery clamped at %d, got %d", MaxBattery, robot.Battery)
	}
	if gained != 40 {
		t.Errorf("Expected gain of 40, got %d", gained)
	}

	// Charging a full battery is a no-op
	if gained := robot.Charge(10); gained != 0 {
		t.Errorf("Expected no gain at full battery, got %d", gained)
	}
}

func TestBatteryStaysInRange(t *testing.T) {
	grid, _ := NewGrid(3, 100, false)
	robot := NewRobot(Position{X: 1, Y: 0}, North, 3)

	robot.Forward(grid, 50) // stops on exhaustion
	if robot.Battery < 0 {
		t.Errorf("Battery dropped below 0: %d", robot.Battery)
	}
	robot.Charge(500)
	if robot.Battery > MaxBattery {
		t.Errorf("Battery exceeded %d: %d", MaxBattery, robot.Battery)
	}
}

func TestReset_RestoresSnapshot(t *testing.T) {
	grid, _ := NewGrid(5, 5, false)
	robot := NewRobot(Position{X: 1, Y: 1}, East, 80)

	robot.Forward(grid, 2)
	robot.TurnLeft()
	robot.Charge(5)
	robot.Reset()

	if robot.Position != (Position{X: 1, Y: 1}) {
		t.Errorf("Expected position restored to (1, 1), got (%d, %d)", robot.Position.X, robot.Position.Y)
	}
	if robot.Heading != East {
		t.Errorf("Expected heading restored to E, got %s", robot.Heading)
	}
	if robot.Battery != 80 {
		t.Errorf("Expected battery restored to 80, got %d", robot.Battery)
	}
	if robot.MoveCount != 0 {
		t.Errorf("Expected move count restored to 0, got %d", robot.MoveCount)
	}
}
