package engine

import "fmt"

// DefaultScenario returns the built-in 5x5 scenario used when no scenario
// file is named: start at the origin facing north with a full battery.
func DefaultScenario() *Scenario {
	return &Scenario{
		Name:            "classic",
		Description:     "The 5x5 training grid.",
		GridWidth:       5,
		GridHeight:      5,
		Expandable:      false,
		Start:           Position{X: 0, Y: 0},
		StartHeading:    "N",
		StartingBattery: MaxBattery,
	}
}

// ValidateScenario checks a scenario for correctness: positive dimensions,
// a legal starting battery, a start cell inside the grid and off the
// obstacles, and unique in-bounds obstacle coordinates.
func ValidateScenario(sc *Scenario) error {
	if sc.Name == "" {
		return fmt.Errorf("scenario validation: name is required")
	}
	if sc.GridWidth < MinGridDimension || sc.GridHeight < MinGridDimension {
		return fmt.Errorf("scenario validation: grid dimensions must be positive, got %dx%d", sc.GridWidth, sc.GridHeight)
	}
	if sc.StartingBattery < 1 || sc.StartingBattery > MaxBattery {
		return fmt.Errorf("scenario validation: starting_battery must be between 1 and %d, got %d", MaxBattery, sc.StartingBattery)
	}
	if _, ok := ParseHeading(sc.StartHeading); !ok {
		return fmt.Errorf("scenario validation: invalid start_heading %q", sc.StartHeading)
	}
	if sc.Start.X < 0 || sc.Start.X >= sc.GridWidth || sc.Start.Y < 0 || sc.Start.Y >= sc.GridHeight {
		return fmt.Errorf("scenario validation: start (%d, %d) outside %dx%d grid", sc.Start.X, sc.Start.Y, sc.GridWidth, sc.GridHeight)
	}

	seen := make(map[[2]int]bool, len(sc.Obstacles))
	for _, o := range sc.Obstacles {
		x, y := o[0], o[1]
		if x < 0 || x >= sc.GridWidth || y < 0 || y >= sc.GridHeight {
			return fmt.Errorf("scenario validation: obstacle (%d, %d) outside %dx%d grid", x, y, sc.GridWidth, sc.GridHeight)
		}
		if x == sc.Start.X && y == sc.Start.Y {
			return fmt.Errorf("scenario validation: obstacle (%d, %d) sits on the start cell", x, y)
		}
		if seen[o] {
			return fmt.Errorf("scenario validation: duplicate obstacle (%d, %d)", x, y)
		}
		seen[o] = true
	}

	return nil
}
