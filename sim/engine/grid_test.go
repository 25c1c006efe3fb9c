package engine

import (
	"strings"
	"testing"
)

func TestNewGrid(t *testing.T) {
	grid, err := NewGrid(5, 4, false)
	if err != nil {
		t.Fatalf("Failed to create grid: %v", err)
	}
	if grid.Width != 5 || grid.Height != 4 {
		t.Errorf("Expected 5x4 grid, got %dx%d", grid.Width, grid.Height)
	}
	if !grid.Contains(0, 0) || !grid.Contains(4, 3) {
		t.Error("Expected corners to be inside the grid")
	}
	if grid.Contains(5, 0) || grid.Contains(0, 4) || grid.Contains(-1, 0) {
		t.Error("Expected out-of-range coordinates to be outside the grid")
	}
}

func TestNewGrid_InvalidDimensions(t *testing.T) {
	for _, dims := range [][2]int{{0, 5}, {5, 0}, {-1, 5}} {
		_, err := NewGrid(dims[0], dims[1], false)
		if KindOf(err) != InvalidDimension {
			t.Errorf("NewGrid(%d, %d): expected InvalidDimension, got %v", dims[0], dims[1], err)
		}
	}
}

func TestAddObstacle(t *testing.T) {
	grid, _ := NewGrid(5, 5, false)

	if err := grid.AddObstacle(2, 3); err != nil {
		t.Fatalf("AddObstacle failed: %v", err)
	}
	if !grid.IsObstacle(2, 3) {
		t.Error("Expected obstacle at (2, 3)")
	}

	// Adding an existing obstacle is a no-op, not an error
	if err := grid.AddObstacle(2, 3); err != nil {
		t.Errorf("Re-adding obstacle should be a no-op, got %v", err)
	}
	if len(grid.Obstacles) != 1 {
		t.Errorf("Expected 1 obstacle after duplicate add, got %d", len(grid.Obstacles))
	}
}

func TestAddObstacle_OutOfBounds(t *testing.T) {
	grid, _ := NewGrid(5, 5, false)
	err := grid.AddObstacle(5, 5)
	if KindOf(err) != OutOfBounds {
		t.Errorf("Expected OutOfBounds, got %v", err)
	}
}

func TestRemoveObstacle(t *testing.T) {
	grid, _ := NewGrid(5, 5, false)
	grid.AddObstacle(4, 3)

	if !grid.RemoveObstacle(4, 3) {
		t.Error("Expected RemoveObstacle to report removal")
	}
	if grid.IsObstacle(4, 3) {
		t.Error("Expected obstacle at (4, 3) to be gone")
	}

	// Removing an absent obstacle is a no-op
	if grid.RemoveObstacle(4, 3) {
		t.Error("Expected RemoveObstacle on empty cell to report false")
	}
}

func TestExpand(t *testing.T) {
	grid, _ := NewGrid(5, 5, true)
	if err := grid.Expand(10, 8); err != nil {
		t.Fatalf("Expand failed: %v", err)
	}
	if grid.Width != 10 || grid.Height != 8 {
		t.Errorf("Expected 10x8 after expand, got %dx%d", grid.Width, grid.Height)
	}
}

func TestExpand_Disabled(t *testing.T) {
	grid, _ := NewGrid(5, 5, false)
	err := grid.Expand(10, 10)
	if KindOf(err) != ExpansionDisabled {
		t.Errorf("Expected ExpansionDisabled, got %v", err)
	}
	if grid.Width != 5 || grid.Height != 5 {
		t.Errorf("Expected dimensions unchanged, got %dx%d", grid.Width, grid.Height)
	}
}

func TestExpand_NeverShrinks(t *testing.T) {
	grid, _ := NewGrid(5, 5, true)
	err := grid.Expand(3, 10)
	if KindOf(err) != InvalidDimension {
		t.Errorf("Expected InvalidDimension, got %v", err)
	}
	if grid.Width != 5 || grid.Height != 5 {
		t.Errorf("Expected dimensions unchanged, got %dx%d", grid.Width, grid.Height)
	}
}

func TestRender(t *testing.T) {
	grid, _ := NewGrid(3, 3, false)
	grid.AddObstacle(2, 0)

	out := grid.Render(Position{X: 0, Y: 0})
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 4 { // 3 rows + axis labels
		t.Fatalf("Expected 4 lines, got %d:\n%s", len(lines), out)
	}

	// Rows are printed top to bottom in decreasing y, so the robot at
	// (0, 0) and the obstacle at (2, 0) are on the last grid row.
	bottom := lines[2]
	if !strings.Contains(bottom, "R") || !strings.Contains(bottom, "X") {
		t.Errorf("Expected robot and obstacle on bottom row, got %q", bottom)
	}
	if strings.Contains(lines[0], "R") {
		t.Errorf("Expected top row empty, got %q", lines[0])
	}
}
