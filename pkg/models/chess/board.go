package chess

type Player int8

const (
	NoPlayer Player = 0
	PlayerA  Player = 1
	PlayerB  Player = -1
)

// Players is the fixed order used for tie-breaks.
var Players = [...]Player{PlayerA, PlayerB}

func (p Player) Opponent() Player {
	return -p
}

func (p Player) String() string {
	switch p {
	case PlayerA:
		return "A"
	case PlayerB:
		return "B"
	}
	return ""
}

func ParsePlayer(s string) Player {
	switch s {
	case "A", "a":
		return PlayerA
	case "B", "b":
		return PlayerB
	}
	return NoPlayer
}

type Arrow struct {
	Player    Player    `json:"player"`
	Position  Position  `json:"position"`
	Direction Direction `json:"direction"`
	MoveIndex int       `json:"moveIndex"`
}

func (a Arrow) Target() Position {
	return a.Position.Moved(a.Direction)
}

// Edge returns the arrow's segment, or false when it points off the grid.
func (a Arrow) Edge() (Edge, bool) {
	target := a.Target()
	if !target.Valid() {
		return Edge{}, false
	}
	return NewEdge(a.Position, target), true
}

type PlayerEdge struct {
	Edge
	Player Player
}

// Board maps each cell to the arrow it holds. A cell whose arrow has no
// player is empty.
type Board [CellCount]Arrow

func (b *Board) At(p Position) (Arrow, bool) {
	if !p.Valid() {
		return Arrow{}, false
	}
	a := b[p.Index()]
	return a, a.Player != NoPlayer
}

func (b *Board) Occupied(p Position) bool {
	_, ok := b.At(p)
	return ok
}

func (b *Board) Set(a Arrow) {
	b[a.Position.Index()] = a
}

func (b *Board) Clear(p Position) {
	b[p.Index()] = Arrow{}
}

// Arrows returns the player's arrows in row-major order.
func (b *Board) Arrows(player Player) (arrows []Arrow) {
	for _, a := range b {
		if a.Player == player {
			arrows = append(arrows, a)
		}
	}
	return
}

func (b *Board) EmptyCells() (cells []Position) {
	for i, a := range b {
		if a.Player == NoPlayer {
			cells = append(cells, PositionAt(i))
		}
	}
	return
}

// Edges returns every on-board edge together with its owner.
func (b *Board) Edges() (edges []PlayerEdge) {
	for _, a := range b {
		if a.Player == NoPlayer {
			continue
		}
		if e, ok := a.Edge(); ok {
			edges = append(edges, PlayerEdge{Edge: e, Player: a.Player})
		}
	}
	return
}

func (b *Board) Count() (count int) {
	for _, a := range b {
		if a.Player != NoPlayer {
			count++
		}
	}
	return
}
