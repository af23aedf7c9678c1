package assess

import (
	"fmt"

	"github.com/HuXin0817/circuit-lines/pkg/models/chess"
)

// Move is a placement or, when returned by SuggestRotation, the new
// direction for the arrow already at Position.
type Move struct {
	Position  chess.Position  `json:"position"`
	Direction chess.Direction `json:"direction"`
}

func (m Move) Target() chess.Position {
	return m.Position.Moved(m.Direction)
}

func (m Move) Edge() chess.Edge {
	return chess.NewEdge(m.Position, m.Target())
}

func (m Move) String() string {
	return fmt.Sprintf("%s %s", m.Position, m.Direction)
}

// maxWalk bounds the successor walk of closesCycle.
const maxWalk = chess.CellCount + 1

// closesCycle reports whether adding m to the arrows makes a closed walk
// through m.Position of at least three cells. An arrow already at
// m.Position is replaced by m.
func closesCycle(arrows []chess.Arrow, m Move) bool {
	if !m.Target().Valid() {
		return false
	}

	next := make(map[chess.Position]chess.Position, len(arrows)+1)
	for _, a := range arrows {
		if target := a.Target(); target.Valid() {
			next[a.Position] = target
		}
	}
	next[m.Position] = m.Target()

	visited := make(chess.PositionSet)
	current := m.Position
	for steps := 0; steps < maxWalk; steps++ {
		n, ok := next[current]
		if !ok {
			return false
		}
		if n == m.Position && steps >= 2 {
			return true
		}
		if visited.Contains(n) {
			return false
		}
		visited.Add(current)
		current = n
	}
	return false
}

// crossesAny reports whether m's edge strictly crosses one of the arrows' edges.
func crossesAny(arrows []chess.Arrow, m Move) bool {
	if !m.Target().Valid() {
		return false
	}
	edge := m.Edge()
	for _, a := range arrows {
		if e, ok := a.Edge(); ok && edge.Crosses(e) {
			return true
		}
	}
	return false
}

func occupiedBy(arrows []chess.Arrow, p chess.Position) bool {
	for _, a := range arrows {
		if a.Position == p {
			return true
		}
	}
	return false
}

// pointingAt counts the arrows whose target is p.
func pointingAt(arrows []chess.Arrow, p chess.Position) (count int) {
	for _, a := range arrows {
		if a.Target() == p {
			count++
		}
	}
	return
}
