package moverecord

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HuXin0817/circuit-lines/pkg/models/chess"
	"github.com/HuXin0817/circuit-lines/pkg/models/message"
)

type startModel struct {
	GameStartRecodeModel
	saved []*GameStartRecode
}

func (m *startModel) Insert(_ context.Context, data *GameStartRecode) error {
	m.saved = append(m.saved, data)
	return nil
}

type moveModel struct {
	MoveRecodeModel
	batches [][]*MoveRecode
	err     error
}

func (m *moveModel) InsertMany(_ context.Context, data []*MoveRecode) error {
	if len(data) > 0 {
		m.batches = append(m.batches, data)
	}
	return m.err
}

type endModel struct {
	GameEndRecodeModel
	saved []*GameEndRecode
}

func (m *endModel) Insert(_ context.Context, data *GameEndRecode) error {
	m.saved = append(m.saved, data)
	return nil
}

func finishedGame(t *testing.T) (*chess.Game, []chess.Report) {
	g := chess.NewGame(chess.Mode{Kind: chess.Blitz})
	g.MaxMoves = 2
	var reports []chess.Report
	for _, m := range []struct {
		x, y int
		d    chess.Direction
	}{{0, 0, chess.SouthEast}, {1, 0, chess.SouthWest}} {
		report, err := g.Place(chess.NewPosition(m.x, m.y), m.d)
		require.NoError(t, err)
		reports = append(reports, report)
	}
	return g, reports
}

func TestRecorderSave(t *testing.T) {
	uid := message.NewGameUid()
	g, reports := finishedGame(t)

	records := []message.Record{message.NewGameStartRecord(uid, g.Mode, "")}
	records = append(records, message.NewRecords(uid, g, reports...)...)

	start, move, end := new(startModel), new(moveModel), new(endModel)
	r := &Recorder{GameStart: start, Move: move, GameEnd: end}
	require.NoError(t, r.Save(context.Background(), records...))

	require.Len(t, start.saved, 1)
	assert.Equal(t, uid, start.saved[0].GameUid)
	assert.Equal(t, "blitz", start.saved[0].Mode)

	require.Len(t, move.batches, 1)
	require.Len(t, move.batches[0], 2)
	assert.Equal(t, 1, move.batches[0][0].MoveNumber)
	assert.Equal(t, "A", move.batches[0][0].Player)
	assert.Equal(t, 2, move.batches[0][1].MoveNumber)

	require.Len(t, end.saved, 1)
	assert.Equal(t, "Draw", end.saved[0].Winner)
	assert.Equal(t, 2, end.saved[0].SegmentsGashed)
	assert.Equal(t, map[string]bool{"A": false, "B": false}, end.saved[0].RotationUsed)
}

func TestRecorderSaveReportsMoveFailure(t *testing.T) {
	uid := message.NewGameUid()
	g, reports := finishedGame(t)

	move := &moveModel{err: errors.New("connection refused")}
	r := &Recorder{GameStart: new(startModel), Move: move, GameEnd: new(endModel)}
	err := r.Save(context.Background(), message.NewRecords(uid, g, reports[0])...)
	assert.ErrorContains(t, err, "insert 1 moves")
}
