package engine

import (
	"fmt"
	"strings"
)

// Grid holds the simulation's 2D boundary and obstacle set. Coordinates are
// zero-based with the origin in the south-west corner; valid cells satisfy
// 0 <= x < Width and 0 <= y < Height. Dimensions only ever grow.
type Grid struct {
	Width      int        `json:"width"`
	Height     int        `json:"height"`
	Expandable bool       `json:"expandable"`
	Obstacles  []Position `json:"obstacles"`
}

// NewGrid creates a grid with the given dimensions.
func NewGrid(width, height int, expandable bool) (*Grid, error) {
	if width < MinGridDimension || height < MinGridDimension {
		return nil, newError(InvalidDimension, "grid dimensions must be positive, got %dx%d", width, height)
	}
	return &Grid{
		Width:      width,
		Height:     height,
		Expandable: expandable,
		Obstacles:  []Position{},
	}, nil
}

// Contains reports whether (x, y) is within the current bounds.
func (g *Grid) Contains(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// IsObstacle reports whether (x, y) holds an obstacle.
func (g *Grid) IsObstacle(x, y int) bool {
	for _, o := range g.Obstacles {
		if o.X == x && o.Y == y {
			return true
		}
	}
	return false
}

// AddObstacle places an obstacle at (x, y). Adding an existing obstacle is a
// no-op. Coordinates outside the grid fail with OutOfBounds.
func (g *Grid) AddObstacle(x, y int) error {
	if !g.Contains(x, y) {
		return newError(OutOfBounds, "cannot place obstacle at (%d, %d): outside %dx%d grid", x, y, g.Width, g.Height)
	}
	if g.IsObstacle(x, y) {
		return nil
	}
	g.Obstacles = append(g.Obstacles, Position{X: x, Y: y})
	return nil
}

// RemoveObstacle clears the obstacle at (x, y), reporting whether one was
// present. Removing an absent obstacle is not an error.
func (g *Grid) RemoveObstacle(x, y int) bool {
	for i, o := range g.Obstacles {
		if o.X == x && o.Y == y {
			g.Obstacles = append(g.Obstacles[:i], g.Obstacles[i+1:]...)
			return true
		}
	}
	return false
}

// SetObstacles replaces the obstacle set with a copy of positions.
func (g *Grid) SetObstacles(positions []Position) {
	g.Obstacles = append([]Position{}, positions...)
}

// Expand grows the grid to newWidth x newHeight. The grid must have been
// configured as expandable, and dimensions never shrink.
func (g *Grid) Expand(newWidth, newHeight int) error {
	if !g.Expandable {
		return newError(ExpansionDisabled, "grid is not expandable")
	}
	if newWidth < g.Width || newHeight < g.Height {
		return newError(InvalidDimension, "grid cannot shrink: %dx%d -> %dx%d", g.Width, g.Height, newWidth, newHeight)
	}
	g.Width = newWidth
	g.Height = newHeight
	return nil
}

// growTo stretches the bounds to include (x, y). Only called for expandable
// grids with non-negative targets; the origin never moves.
func (g *Grid) growTo(x, y int) {
	if x >= g.Width {
		g.Width = x + 1
	}
	if y >= g.Height {
		g.Height = y + 1
	}
}

// Render produces a character map of the grid with the robot at the given
// position: R for the robot, X for obstacles, . for empty cells. Rows are
// printed top to bottom in decreasing y, so north is up; this orientation is
// fixed across renders. Row and column labels frame the map.
func (g *Grid) Render(robot Position) string {
	var b strings.Builder
	for y := g.Height - 1; y >= 0; y-- {
		fmt.Fprintf(&b, "%2d |", y)
		for x := 0; x < g.Width; x++ {
			switch {
			case robot.X == x && robot.Y == y:
				b.WriteString(" R ")
			case g.IsObstacle(x, y):
				b.WriteString(" X ")
			default:
				b.WriteString(" . ")
			}
		}
		b.WriteString("|\n")
	}
	b.WriteString("    ")
	for x := 0; x < g.Width; x++ {
		fmt.Fprintf(&b, "%2d ", x)
	}
	b.WriteString("\n")
	return b.String()
}
