package chess

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type move struct {
	x, y int
	d    Direction
}

// play places the moves in turn order, alternating players as the game does.
func play(t *testing.T, g *Game, moves ...move) (last Report) {
	t.Helper()
	for _, m := range moves {
		var err error
		last, err = g.Place(NewPosition(m.x, m.y), m.d)
		require.NoError(t, err, "place %d %d %s", m.x, m.y, m.d)
	}
	return
}

// interleave pairs up the moves of A and B starting with A.
func interleave(a, b []move) (moves []move) {
	for i := 0; i < len(a) || i < len(b); i++ {
		if i < len(a) {
			moves = append(moves, a[i])
		}
		if i < len(b) {
			moves = append(moves, b[i])
		}
	}
	return
}

// east column arrows all point off the board.
var eastColumn = []move{{5, 0, East}, {5, 1, East}, {5, 2, East}, {5, 3, East}, {5, 4, East}, {5, 5, East}}

func triangle(x, y int) []move {
	return []move{{x, y, East}, {x + 1, y, SouthWest}, {x, y + 1, North}}
}

func TestPlaceAlternatesPlayers(t *testing.T) {
	g := NewGame(Mode{Kind: LocalDuel})
	assert.Equal(t, PlayerA, g.NowPlayer)

	report := play(t, g, move{2, 2, North})
	assert.Equal(t, ArrowPlaced{Player: PlayerA, Position: NewPosition(2, 2), Direction: North}, report.Event)
	assert.Equal(t, PlayerB, g.NowPlayer)
	assert.Equal(t, 1, g.MoveNumber)

	play(t, g, move{3, 3, South})
	assert.Equal(t, PlayerA, g.NowPlayer)
	assert.Equal(t, 2, g.Stats.TotalMoves)

	a, ok := g.Board.At(NewPosition(3, 3))
	require.True(t, ok)
	assert.Equal(t, PlayerB, a.Player)
	assert.Equal(t, 1, a.MoveIndex)
}

func TestPlaceRejectsIllegalMovesWithoutChangingState(t *testing.T) {
	g := NewGame(Mode{Kind: LocalDuel})
	play(t, g, move{2, 2, North})
	before := g.Clone()

	_, err := g.Place(NewPosition(2, 2), East)
	assert.ErrorIs(t, err, ErrCellOccupied)
	_, err = g.Place(NewPosition(6, 0), East)
	assert.ErrorIs(t, err, ErrOutOfBounds)
	_, err = g.Place(NewPosition(0, 0), Direction(9))
	assert.ErrorIs(t, err, ErrInvalidDirection)

	assert.Equal(t, before, g)
}

func TestRotateOncePerPlayer(t *testing.T) {
	g := NewGame(Mode{Kind: LocalDuel})
	play(t, g, move{0, 0, East}, move{5, 0, East})

	_, err := g.Rotate(NewPosition(5, 0), West)
	assert.ErrorIs(t, err, ErrNotOwner)
	_, err = g.Rotate(NewPosition(1, 1), West)
	assert.ErrorIs(t, err, ErrNoArrowAtPosition)

	report, err := g.Rotate(NewPosition(0, 0), South)
	require.NoError(t, err)
	assert.Equal(t, ArrowRotated{
		Player:            PlayerA,
		Position:          NewPosition(0, 0),
		Direction:         South,
		MoveIndex:         2,
		PreviousDirection: East,
		PreviousMoveIndex: 0,
	}, report.Event)
	assert.False(t, g.RotationAvailable[PlayerA])
	assert.True(t, g.Stats.RotationUsed[PlayerA])
	assert.True(t, g.CanRotate(PlayerB))
	assert.Equal(t, PlayerB, g.NowPlayer)

	play(t, g, move{5, 1, East})
	before := g.Clone()
	_, err = g.Rotate(NewPosition(0, 0), West)
	assert.ErrorIs(t, err, ErrRotationAlreadyUsed)
	assert.Equal(t, before, g)
}

func TestRotateToSameDirectionSpendsTheTurn(t *testing.T) {
	g := NewGame(Mode{Kind: LocalDuel})
	play(t, g, move{0, 0, East}, move{5, 5, West})
	require.Equal(t, 2, g.MoveNumber)

	report, err := g.Rotate(NewPosition(0, 0), East)
	require.NoError(t, err)
	assert.Equal(t, ArrowRotated{
		Player:            PlayerA,
		Position:          NewPosition(0, 0),
		Direction:         East,
		MoveIndex:         2,
		PreviousDirection: East,
		PreviousMoveIndex: 0,
	}, report.Event)

	assert.Equal(t, 3, g.MoveNumber)
	assert.Equal(t, PlayerB, g.NowPlayer)
	assert.False(t, g.CanRotate(PlayerA))
	arrow, ok := g.Board.At(NewPosition(0, 0))
	require.True(t, ok)
	assert.Equal(t, East, arrow.Direction)
	assert.Equal(t, 2, arrow.MoveIndex)
}

func TestStableCycleScoresAndClaimsTerritory(t *testing.T) {
	g := NewGame(Mode{Kind: LocalDuel})
	report := play(t, g, interleave(triangle(0, 0), eastColumn[:2])...)

	require.Len(t, report.Stabilized, 1)
	assert.Equal(t, PlayerA, report.Stabilized[0].Player)
	assert.Equal(t, 1, g.StableCycleCount(PlayerA))
	assert.Equal(t, []Position{{0, 0}}, g.Territories[PlayerA].Sorted())
	assert.Equal(t, 2, g.Score(PlayerA))
	assert.Zero(t, g.Score(PlayerB))
	assert.Equal(t, 1, g.Stats.CyclesCreated[PlayerA])
	assert.Equal(t, 1, g.Stats.Territory[PlayerA])
}

func TestCentreBonus(t *testing.T) {
	g := NewGame(Mode{Kind: LocalDuel})
	square := []move{{3, 3, East}, {4, 3, South}, {4, 4, West}, {3, 4, North}}
	play(t, g, interleave(square, eastColumn[:3])...)

	assert.Equal(t, []Position{{3, 3}}, g.Territories[PlayerA].Sorted())
	assert.Equal(t, 3, g.Score(PlayerA))
}

func TestGashDestabilizesCycle(t *testing.T) {
	g := NewGame(Mode{Kind: LocalDuel})
	play(t, g, interleave(triangle(0, 0), eastColumn[:2])...)
	require.Equal(t, 1, g.StableCycleCount(PlayerA))

	report := play(t, g, move{1, 1, NorthWest})
	assert.ElementsMatch(t, []Edge{
		NewEdge(NewPosition(1, 0), NewPosition(0, 1)),
		NewEdge(NewPosition(1, 1), NewPosition(0, 0)),
	}, report.Gashed)
	require.Len(t, report.Destroyed, 1)
	assert.Len(t, g.Cycles[PlayerA], 1)
	assert.Zero(t, g.StableCycleCount(PlayerA))
	assert.Empty(t, g.Territories[PlayerA])
	assert.Zero(t, g.Score(PlayerA))
	assert.Equal(t, 2, g.Stats.SegmentsGashed)
	assert.Len(t, g.Gashed, 2)
}

func TestThreeStableCyclesWin(t *testing.T) {
	g := NewGame(Mode{Kind: LocalDuel})
	a := append(append(triangle(0, 0), triangle(3, 0)...), triangle(0, 3)...)
	b := append(append([]move(nil), eastColumn...), move{4, 5, South}, move{3, 5, South})

	report := play(t, g, interleave(a, b)...)
	assert.True(t, report.Ended)
	assert.True(t, g.Ended)
	assert.Equal(t, PlayerA, g.Winner)
	assert.Equal(t, ReasonStableCycles, g.EndReason)
	assert.Equal(t, 17, g.MoveNumber)
	// the winner keeps the turn
	assert.Equal(t, PlayerA, g.NowPlayer)
	assert.Equal(t, GameEnded{Winner: PlayerA, Reason: ReasonStableCycles}, g.Events[len(g.Events)-1])

	_, err := g.Place(NewPosition(2, 2), North)
	assert.ErrorIs(t, err, ErrAlreadyEnded)
	_, err = g.Rotate(NewPosition(0, 0), South)
	assert.ErrorIs(t, err, ErrAlreadyEnded)
	_, err = g.Undo()
	assert.ErrorIs(t, err, ErrAlreadyEnded)
	assert.False(t, g.CanUndo())
}

// harmless fills the board with off-board arrows for both players.
func harmless(n int) []move {
	a := append(append([]move(nil), eastColumn...), move{1, 0, North}, move{2, 0, North})
	b := []move{
		{0, 5, South}, {1, 5, South}, {2, 5, South}, {3, 5, South},
		{4, 5, South}, {0, 2, West}, {0, 3, West}, {0, 4, West},
	}
	return interleave(a, b)[:n]
}

func TestBlitzDrawAtMoveLimit(t *testing.T) {
	g := NewGame(Mode{Kind: Blitz})
	assert.Equal(t, BlitzMoveLimit, g.MaxMoves)

	play(t, g, harmless(BlitzMoveLimit-1)...)
	assert.False(t, g.Ended)

	report := play(t, g, harmless(BlitzMoveLimit)[BlitzMoveLimit-1])
	assert.True(t, report.Ended)
	assert.Equal(t, NoPlayer, g.Winner)
	assert.Equal(t, ReasonDraw, g.EndReason)
}

func TestBlitzHigherScoreWins(t *testing.T) {
	g := NewGame(Mode{Kind: Blitz})
	a := append(triangle(0, 3), eastColumn[:5]...)
	b := []move{
		{0, 0, North}, {1, 0, North}, {2, 0, North}, {3, 0, North},
		{4, 0, North}, {2, 5, South}, {3, 5, South}, {4, 5, South},
	}
	play(t, g, interleave(a, b)...)

	assert.True(t, g.Ended)
	assert.Equal(t, PlayerA, g.Winner)
	assert.Equal(t, ReasonHigherScore, g.EndReason)
	assert.Equal(t, 2, g.Score(PlayerA))
}

func TestUndoPlacement(t *testing.T) {
	g := NewGame(Mode{Kind: LocalDuel})
	_, err := g.Undo()
	assert.ErrorIs(t, err, ErrNothingToUndo)

	play(t, g, move{2, 2, North})
	e, err := g.Undo()
	require.NoError(t, err)
	assert.IsType(t, ArrowPlaced{}, e)
	assert.False(t, g.Board.Occupied(NewPosition(2, 2)))
	assert.Equal(t, PlayerA, g.NowPlayer)
	assert.Zero(t, g.MoveNumber)
	assert.Empty(t, g.Events)
	assert.Equal(t, 1, g.Stats.TotalMoves)
}

func TestUndoRotationRestoresPreviousArrow(t *testing.T) {
	g := NewGame(Mode{Kind: LocalDuel})
	play(t, g, move{0, 0, East}, move{5, 0, East})
	_, err := g.Rotate(NewPosition(0, 0), South)
	require.NoError(t, err)

	_, err = g.Undo()
	require.NoError(t, err)
	a, ok := g.Board.At(NewPosition(0, 0))
	require.True(t, ok)
	assert.Equal(t, East, a.Direction)
	assert.Zero(t, a.MoveIndex)
	assert.Equal(t, PlayerA, g.NowPlayer)
	assert.Equal(t, 2, g.MoveNumber)
	// rotation is not handed back
	assert.False(t, g.RotationAvailable[PlayerA])
}

func TestUndoKeepsGashes(t *testing.T) {
	g := NewGame(Mode{Kind: LocalDuel})
	play(t, g, move{0, 0, SouthEast}, move{1, 0, SouthWest})
	require.Len(t, g.Gashed, 2)

	_, err := g.Undo()
	require.NoError(t, err)
	assert.Len(t, g.Gashed, 2)
	assert.Equal(t, 2, g.Stats.SegmentsGashed)
	assert.Equal(t, PlayerB, g.NowPlayer)
}

func TestCloneIsIndependent(t *testing.T) {
	g := NewGame(Mode{Kind: LocalDuel})
	play(t, g, move{0, 0, SouthEast})
	c := g.Clone()

	play(t, c, move{1, 0, SouthWest})
	assert.Empty(t, g.Gashed)
	assert.Equal(t, 1, g.MoveNumber)
	assert.Equal(t, PlayerB, g.NowPlayer)
	assert.Len(t, c.Gashed, 2)
}

func TestReplayReproducesUndoneGashes(t *testing.T) {
	actions := []Action{
		PlaceAction(NewPosition(0, 0), SouthEast),
		PlaceAction(NewPosition(1, 0), SouthWest),
		UndoAction(),
		PlaceAction(NewPosition(5, 5), East),
		RotateAction(NewPosition(0, 0), East),
	}

	live := NewGame(Mode{Kind: Blitz})
	for _, a := range actions {
		_, err := live.Apply(a)
		require.NoError(t, err)
	}

	replayed, err := Replay(Mode{Kind: Blitz}, actions)
	require.NoError(t, err)
	assert.Equal(t, live, replayed)
	assert.Len(t, replayed.Gashed, 2)
}

func TestReplayReportsFailingAction(t *testing.T) {
	_, err := Replay(Mode{Kind: LocalDuel}, []Action{
		PlaceAction(NewPosition(0, 0), East),
		PlaceAction(NewPosition(0, 0), West),
	})
	assert.ErrorIs(t, err, ErrCellOccupied)
	assert.Contains(t, err.Error(), "action 1 (place)")
}

func TestActionOfMoveEvents(t *testing.T) {
	a, ok := ActionOf(ArrowPlaced{Position: NewPosition(1, 2), Direction: West})
	assert.True(t, ok)
	assert.Equal(t, PlaceAction(NewPosition(1, 2), West), a)

	a, ok = ActionOf(ArrowRotated{Position: NewPosition(1, 2), Direction: East, PreviousDirection: West})
	assert.True(t, ok)
	assert.Equal(t, RotateAction(NewPosition(1, 2), East), a)

	_, ok = ActionOf(GameEnded{})
	assert.False(t, ok)
}
