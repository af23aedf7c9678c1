package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HuXin0817/circuit-lines/pkg/assess"
	"github.com/HuXin0817/circuit-lines/pkg/models/chess"
	"github.com/HuXin0817/circuit-lines/pkg/models/message"
	"github.com/HuXin0817/circuit-lines/pkg/models/pusher"
)

func testOptions() options {
	return options{
		games:   6,
		a:       assess.Hard,
		b:       assess.Easy,
		mode:    chess.Mode{Kind: chess.Blitz},
		seed:    42,
		workers: 3,
	}
}

func TestRunTalliesEveryGame(t *testing.T) {
	o := testOptions()
	var played int
	o.progress = func() { played++ }

	s, err := run(o)
	require.NoError(t, err)
	assert.Equal(t, o.games, played)
	assert.Equal(t, o.games, s.games)
	assert.Equal(t, o.games, s.draws+s.wins[chess.PlayerA]+s.wins[chess.PlayerB])

	var reasons int
	for _, n := range s.reasons {
		reasons += n
	}
	assert.Equal(t, o.games, reasons)
	assert.LessOrEqual(t, s.moves, o.games*chess.BlitzMoveLimit)
}

func TestSeededRunsAreReproducible(t *testing.T) {
	first, err := run(testOptions())
	require.NoError(t, err)
	second, err := run(testOptions())
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestRunQueuesRecords(t *testing.T) {
	o := testOptions()
	o.games = 2
	o.records = pusher.NewPusher[message.Record]()

	_, err := run(o)
	require.NoError(t, err)
	require.Equal(t, 4, o.records.Len())

	var starts, ends int
	for _, r := range o.records.MessagesBuffer {
		switch r.Kind {
		case message.GameStartRecord:
			starts++
			assert.Equal(t, "hard vs easy", r.Opponent)
		case message.GameEndRecord:
			ends++
			assert.NotEmpty(t, r.Reason)
		}
	}
	assert.Equal(t, 2, starts)
	assert.Equal(t, 2, ends)
}

func TestSummaryPrint(t *testing.T) {
	o := testOptions()
	s := newSummary(o)

	g := chess.NewGame(o.mode)
	g.MaxMoves = 2
	_, err := g.Place(chess.NewPosition(0, 0), chess.SouthEast)
	require.NoError(t, err)
	_, err = g.Place(chess.NewPosition(1, 0), chess.SouthWest)
	require.NoError(t, err)
	require.True(t, g.Ended)
	s.add(g)

	var buf bytes.Buffer
	s.print(&buf)
	assert.Contains(t, buf.String(), "1 games of blitz")
	assert.Contains(t, buf.String(), chess.ReasonDraw)
	assert.Equal(t, 1, s.draws)
	assert.Equal(t, 2.0, s.average(s.moves))
}
