package chess

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDirectionOffsets(t *testing.T) {
	origin := NewPosition(2, 2)
	want := map[Direction]Position{
		North:     {2, 1},
		NorthEast: {3, 1},
		East:      {3, 2},
		SouthEast: {3, 3},
		South:     {2, 3},
		SouthWest: {1, 3},
		West:      {1, 2},
		NorthWest: {1, 1},
	}
	for d, p := range want {
		assert.Equal(t, p, origin.Moved(d), d.String())
	}
	assert.Equal(t, 0.0, North.Angle())
	assert.Equal(t, 315.0, NorthWest.Angle())
	assert.False(t, Direction(8).Valid())
}

func TestMovedIsNotBoundsChecked(t *testing.T) {
	p := NewPosition(0, 0).Moved(NorthWest)
	assert.Equal(t, NewPosition(-1, -1), p)
	assert.False(t, p.Valid())
}

func TestParseDirection(t *testing.T) {
	d, ok := ParseDirection("se")
	assert.True(t, ok)
	assert.Equal(t, SouthEast, d)

	_, ok = ParseDirection("up")
	assert.False(t, ok)
}

func TestCrossingDiagonals(t *testing.T) {
	a := NewEdge(NewPosition(0, 0), NewPosition(2, 2))
	b := NewEdge(NewPosition(0, 2), NewPosition(2, 0))
	assert.True(t, a.Crosses(b))
	assert.True(t, b.Crosses(a))
}

func TestEdgesSharingEndpointNeverCross(t *testing.T) {
	a := NewEdge(NewPosition(0, 0), NewPosition(1, 1))
	b := NewEdge(NewPosition(0, 0), NewPosition(1, 0))
	assert.True(t, a.SharesEndpoint(b))
	assert.False(t, a.Crosses(b))

	head := NewEdge(NewPosition(1, 1), NewPosition(2, 2))
	assert.False(t, a.Crosses(head))
}

func TestCollinearAndTouchingEdgesDoNotCross(t *testing.T) {
	overlap1 := NewEdge(NewPosition(0, 0), NewPosition(2, 0))
	overlap2 := NewEdge(NewPosition(1, 0), NewPosition(3, 0))
	assert.False(t, overlap1.Crosses(overlap2))

	// the tip of the second edge rests on the first one
	touch := NewEdge(NewPosition(1, 1), NewPosition(1, 0))
	assert.False(t, overlap1.Crosses(touch))

	parallel := NewEdge(NewPosition(0, 1), NewPosition(2, 1))
	assert.False(t, overlap1.Crosses(parallel))
}

func TestOrientationSign(t *testing.T) {
	a, b := NewPosition(0, 0), NewPosition(2, 0)
	assert.Zero(t, Orientation(a, b, NewPosition(5, 0)))
	assert.NotEqual(t,
		Orientation(a, b, NewPosition(1, 1)) > 0,
		Orientation(a, b, NewPosition(1, -1)) > 0,
	)
}

func TestEdgeSetAdd(t *testing.T) {
	s := make(EdgeSet)
	e := NewEdge(NewPosition(0, 0), NewPosition(1, 0))
	assert.True(t, s.Add(e))
	assert.False(t, s.Add(e))
	assert.True(t, s.Contains(e))
	assert.False(t, s.Contains(NewEdge(e.To, e.From)))
}
