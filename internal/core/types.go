package core

import "fmt"

// Coord identifies a tile in the infinite world grid.
type Coord struct {
	X, Y int
}

// Add offsets the coordinate.
func (c Coord) Add(dx, dy int) Coord { return Coord{X: c.X + dx, Y: c.Y + dy} }

// Less orders coordinates by Y then X.
func (c Coord) Less(o Coord) bool {
	if c.Y != o.Y {
		return c.Y < o.Y
	}
	return c.X < o.X
}

func (c Coord) String() string { return fmt.Sprintf("(%d,%d)", c.X, c.Y) }
