package moverecord

import (
	"context"
	"fmt"

	"github.com/zeromicro/go-zero/core/logx"

	"github.com/HuXin0817/circuit-lines/pkg/models/chess"
	"github.com/HuXin0817/circuit-lines/pkg/models/message"
)

const drawWinner = "Draw"

func NewGameStartRecode(r message.Record) *GameStartRecode {
	return &GameStartRecode{
		GameUid:  r.GameUid,
		Mode:     r.Mode,
		Opponent: r.Opponent,
	}
}

func NewMoveRecode(r message.Record) *MoveRecode {
	return &MoveRecode{
		GameUid:    r.GameUid,
		MoveNumber: r.MoveNumber,
		Player:     r.Player,
		Event:      r.Event,
		ScoreA:     r.ScoreA,
		ScoreB:     r.ScoreB,
		Gashed:     r.Gashed,
	}
}

func NewGameEndRecode(r message.Record) *GameEndRecode {
	winner := r.Winner
	if winner == "" {
		winner = drawWinner
	}
	return &GameEndRecode{
		GameUid:         r.GameUid,
		Mode:            r.Mode,
		Winner:          winner,
		Reason:          r.Reason,
		ScoreA:          r.ScoreA,
		ScoreB:          r.ScoreB,
		TotalMoves:      r.TotalMoves,
		SegmentsGashed:  r.Stats.SegmentsGashed,
		CyclesCreated:   byPlayer(r.Stats.CyclesCreated),
		CyclesDestroyed: byPlayer(r.Stats.CyclesDestroyed),
		RotationUsed:    byPlayer(r.Stats.RotationUsed),
	}
}

// byPlayer keys a per-player map by the player's name, as bson needs string keys.
func byPlayer[V any](m map[chess.Player]V) map[string]V {
	named := make(map[string]V, len(m))
	for p, v := range m {
		named[p.String()] = v
	}
	return named
}

// Recorder writes queued records to their collections.
type Recorder struct {
	GameStart GameStartRecodeModel
	Move      MoveRecodeModel
	GameEnd   GameEndRecodeModel
}

func NewRecorder(url, db string) *Recorder {
	return &Recorder{
		GameStart: NewGameStartRecodeModel(url, db),
		Move:      NewMoveRecodeModel(url, db),
		GameEnd:   NewGameEndRecodeModel(url, db),
	}
}

// Save inserts the records, batching the moves of the call into one write.
func (r *Recorder) Save(ctx context.Context, records ...message.Record) error {
	var moves []*MoveRecode
	for _, record := range records {
		switch record.Kind {
		case message.GameStartRecord:
			if err := r.GameStart.Insert(ctx, NewGameStartRecode(record)); err != nil {
				return fmt.Errorf("insert game start of %s: %w", record.GameUid, err)
			}
		case message.MoveRecord:
			moves = append(moves, NewMoveRecode(record))
		case message.GameEndRecord:
			if err := r.GameEnd.Insert(ctx, NewGameEndRecode(record)); err != nil {
				return fmt.Errorf("insert game end of %s: %w", record.GameUid, err)
			}
		default:
			logx.WithContext(ctx).Errorf("skip record of unknown kind %q", record.Kind)
		}
	}

	if err := r.Move.InsertMany(ctx, moves); err != nil {
		return fmt.Errorf("insert %d moves: %w", len(moves), err)
	}
	return nil
}
