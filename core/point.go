package core

import "fmt"

// Point is a grid cell coordinate, X is the column and Y is the row
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Add returns the point offset by d
func (p Point) Add(d Point) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

// In reports whether p lies inside a width x height grid anchored at the origin
func (p Point) In(width, height int) bool {
	return p.X >= 0 && p.X < width && p.Y >= 0 && p.Y < height
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}
