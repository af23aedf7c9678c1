package chess

import "fmt"

const (
	GridSize  = 6
	CellCount = GridSize * GridSize
)

// CenterCell is the reference cell of the centre bonus.
var CenterCell = Position{X: 3, Y: 3}

// CenterCells are the four cells around the middle of the grid.
var CenterCells = [...]Position{
	{X: 2, Y: 2},
	{X: 3, Y: 2},
	{X: 2, Y: 3},
	{X: 3, Y: 3},
}

type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func NewPosition(x, y int) Position {
	return Position{X: x, Y: y}
}

func (p Position) Valid() bool {
	return p.X >= 0 && p.X < GridSize && p.Y >= 0 && p.Y < GridSize
}

// Moved offsets p one step towards d. The result is not bounds checked.
func (p Position) Moved(d Direction) Position {
	dx, dy := d.Offset()
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// Index flattens a valid position row by row.
func (p Position) Index() int {
	return p.Y*GridSize + p.X
}

func PositionAt(index int) Position {
	return Position{X: index % GridSize, Y: index / GridSize}
}

func (p Position) IsCenter() bool {
	for _, c := range CenterCells {
		if c == p {
			return true
		}
	}
	return false
}

func (p Position) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

var allPositions = func() (positions [CellCount]Position) {
	for i := range CellCount {
		positions[i] = PositionAt(i)
	}
	return
}()

// Positions lists every cell in row-major order.
func Positions() []Position {
	return allPositions[:]
}

type PositionSet map[Position]struct{}

func (s PositionSet) Contains(p Position) bool {
	_, c := s[p]
	return c
}

func (s PositionSet) Add(p Position) {
	s[p] = struct{}{}
}

// Sorted returns the members in row-major order.
func (s PositionSet) Sorted() (positions []Position) {
	for _, p := range allPositions {
		if s.Contains(p) {
			positions = append(positions, p)
		}
	}
	return
}
