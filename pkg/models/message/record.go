package message

import (
	"github.com/bytedance/sonic"

	"github.com/HuXin0817/circuit-lines/pkg/models/chess"
)

type RecordKind string

const (
	GameStartRecord RecordKind = "gameStart"
	MoveRecord      RecordKind = "move"
	GameEndRecord   RecordKind = "gameEnd"
)

// Record is a history entry queued for the record store.
type Record struct {
	Kind      RecordKind `json:"kind"`
	GameUid   GameUid    `json:"gameUid"`
	TimeStamp TimeStamp  `json:"timeStamp"`

	Mode     string `json:"mode,omitempty"`
	Opponent string `json:"opponent,omitempty"`

	MoveNumber int    `json:"moveNumber,omitempty"`
	Player     string `json:"player,omitempty"`
	Event      string `json:"event,omitempty"`
	ScoreA     int    `json:"scoreA"`
	ScoreB     int    `json:"scoreB"`
	Gashed     int    `json:"gashed"`

	Winner     string      `json:"winner,omitempty"`
	Reason     string      `json:"reason,omitempty"`
	TotalMoves int         `json:"totalMoves,omitempty"`
	Stats      chess.Stats `json:"-"`
}

func (r Record) String() string {
	str, _ := sonic.MarshalString(r)
	return str
}

// NewGameStartRecord names the built-in opponent when there is one.
func NewGameStartRecord(uid GameUid, mode chess.Mode, opponent string) Record {
	return Record{
		Kind:      GameStartRecord,
		GameUid:   uid,
		TimeStamp: Now(),
		Mode:      mode.String(),
		Opponent:  opponent,
	}
}

func newRecord(kind RecordKind, uid GameUid, g *chess.Game) Record {
	return Record{
		Kind:       kind,
		GameUid:    uid,
		TimeStamp:  Now(),
		Mode:       g.Mode.String(),
		MoveNumber: g.MoveNumber,
		ScoreA:     g.Score(chess.PlayerA),
		ScoreB:     g.Score(chess.PlayerB),
		Gashed:     len(g.Gashed),
	}
}

func NewMoveRecord(uid GameUid, g *chess.Game, e chess.Event) Record {
	r := newRecord(MoveRecord, uid, g)
	r.Event, _ = EncodeEvent(e)
	switch e := e.(type) {
	case chess.ArrowPlaced:
		r.Player, r.MoveNumber = e.Player.String(), e.MoveIndex+1
	case chess.ArrowRotated:
		r.Player, r.MoveNumber = e.Player.String(), e.MoveIndex+1
	}
	return r
}

func NewGameEndRecord(uid GameUid, g *chess.Game) Record {
	r := newRecord(GameEndRecord, uid, g)
	r.Winner = g.Winner.String()
	r.Reason = g.EndReason
	r.TotalMoves = g.Stats.TotalMoves
	r.Stats = g.Stats
	return r
}

// NewRecords turns the reports of the moves just played into move records,
// plus an end record when the last one finished the game. g must be the
// state after those moves.
func NewRecords(uid GameUid, g *chess.Game, reports ...chess.Report) (records []Record) {
	for _, report := range reports {
		records = append(records, NewMoveRecord(uid, g, report.Event))
		if report.Ended {
			records = append(records, NewGameEndRecord(uid, g))
		}
	}
	return
}
