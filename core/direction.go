package core

// Direction is a snake heading on the grid
type Direction uint8

const (
	DirRight Direction = iota
	DirLeft
	DirUp
	DirDown
)

var directionDeltas = [...]Point{
	DirRight: {X: 1, Y: 0},
	DirLeft:  {X: -1, Y: 0},
	DirUp:    {X: 0, Y: -1},
	DirDown:  {X: 0, Y: 1},
}

var directionNames = [...]string{
	DirRight: "Right",
	DirLeft:  "Left",
	DirUp:    "Up",
	DirDown:  "Down",
}

// Valid reports whether d is one of the four headings
func (d Direction) Valid() bool {
	return int(d) < len(directionDeltas)
}

// Delta returns the one-cell offset for the heading, zero for invalid values
func (d Direction) Delta() Point {
	if !d.Valid() {
		return Point{}
	}
	return directionDeltas[d]
}

// Opposite returns the 180 degree reverse of d
func (d Direction) Opposite() Direction {
	switch d {
	case DirRight:
		return DirLeft
	case DirLeft:
		return DirRight
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	}
	return d
}

func (d Direction) String() string {
	if !d.Valid() {
		return "Unknown"
	}
	return directionNames[d]
}
