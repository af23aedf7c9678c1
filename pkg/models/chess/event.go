package chess

// Event is an entry of the game log. The log holds one event per move plus
// the terminal GameEnded event, so undo can drop exactly one entry.
type Event interface {
	event()
}

type ArrowPlaced struct {
	Player    Player
	Position  Position
	Direction Direction
	MoveIndex int
}

// ArrowRotated keeps the replaced arrow so the rotation can be reversed.
type ArrowRotated struct {
	Player            Player
	Position          Position
	Direction         Direction
	MoveIndex         int
	PreviousDirection Direction
	PreviousMoveIndex int
}

type GameEnded struct {
	Winner Player
	Reason string
}

func (ArrowPlaced) event()  {}
func (ArrowRotated) event() {}
func (GameEnded) event()    {}

const (
	ReasonStableCycles = "3 stable cycles achieved"
	ReasonHigherScore  = "Higher score"
	ReasonDraw         = "Draw"
)
