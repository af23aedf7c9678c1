package chess

import "strings"

type Direction int8

const (
	North Direction = iota
	NorthEast
	East
	SouthEast
	South
	SouthWest
	West
	NorthWest
)

// Directions lists the eight headings clockwise from north.
var Directions = [...]Direction{North, NorthEast, East, SouthEast, South, SouthWest, West, NorthWest}

var directionOffsets = [...][2]int{
	North:     {0, -1},
	NorthEast: {1, -1},
	East:      {1, 0},
	SouthEast: {1, 1},
	South:     {0, 1},
	SouthWest: {-1, 1},
	West:      {-1, 0},
	NorthWest: {-1, -1},
}

var directionNames = [...]string{"N", "NE", "E", "SE", "S", "SW", "W", "NW"}

func (d Direction) Valid() bool {
	return d >= North && d <= NorthWest
}

func (d Direction) Offset() (dx, dy int) {
	o := directionOffsets[d]
	return o[0], o[1]
}

// Angle is the heading in degrees, clockwise from north.
func (d Direction) Angle() float64 {
	return float64(d) * 45.0
}

func (d Direction) String() string {
	if !d.Valid() {
		return ""
	}
	return directionNames[d]
}

func ParseDirection(s string) (Direction, bool) {
	for i, name := range directionNames {
		if strings.EqualFold(name, s) {
			return Direction(i), true
		}
	}
	return 0, false
}
