package engine

import "testing"

func TestValidateScenario(t *testing.T) {
	if err := ValidateScenario(DefaultScenario()); err != nil {
		t.Errorf("Default scenario should validate, got %v", err)
	}
}

func TestValidateScenario_Errors(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Scenario)
	}{
		{"missing name", func(sc *Scenario) { sc.Name = "" }},
		{"zero width", func(sc *Scenario) { sc.GridWidth = 0 }},
		{"negative height", func(sc *Scenario) { sc.GridHeight = -3 }},
		{"battery too low", func(sc *Scenario) { sc.StartingBattery = 0 }},
		{"battery too high", func(sc *Scenario) { sc.StartingBattery = 150 }},
		{"bad heading", func(sc *Scenario) { sc.StartHeading = "up" }},
		{"start outside grid", func(sc *Scenario) { sc.Start = Position{X: 5, Y: 0} }},
		{"obstacle outside grid", func(sc *Scenario) { sc.Obstacles = [][2]int{{7, 7}} }},
		{"obstacle on start", func(sc *Scenario) { sc.Obstacles = [][2]int{{0, 0}} }},
		{"duplicate obstacle", func(sc *Scenario) { sc.Obstacles = [][2]int{{2, 2}, {2, 2}} }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			sc := DefaultScenario()
			tc.mutate(sc)
			if err := ValidateScenario(sc); err == nil {
				t.Errorf("Expected validation error for %s", tc.name)
			}
		})
	}
}

func TestParseHeading(t *testing.T) {
	cases := []struct {
		in   string
		want Heading
		ok   bool
	}{
		{"N", North, true},
		{"ne", NorthEast, true},
		{"NORTHWEST", NorthWest, true},
		{"southeast", SouthEast, true},
		{"w", West, true},
		{"up", North, false},
		{"", North, false},
	}
	for _, tc := range cases {
		got, ok := ParseHeading(tc.in)
		if ok != tc.ok || (ok && got != tc.want) {
			t.Errorf("ParseHeading(%q) = %v, %v; want %v, %v", tc.in, got, ok, tc.want, tc.ok)
		}
	}
}

func TestHeadingDeltas(t *testing.T) {
	// One full clockwise lap sums to zero displacement.
	sumX, sumY := 0, 0
	for h := Heading(0); h < headingCount; h++ {
		d := h.Delta()
		sumX += d.X
		sumY += d.Y
	}
	if sumX != 0 || sumY != 0 {
		t.Errorf("Compass deltas do not cancel: (%d, %d)", sumX, sumY)
	}

	if (North.Delta() != Position{X: 0, Y: 1}) {
		t.Errorf("North delta should be (0, 1), got %v", North.Delta())
	}
	if (SouthWest.Delta() != Position{X: -1, Y: -1}) {
		t.Errorf("SouthWest delta should be (-1, -1), got %v", SouthWest.Delta())
	}
}
