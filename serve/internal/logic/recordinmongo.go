package logic

import (
	"github.com/HuXin0817/circuit-lines/pkg/models/chess"
	"github.com/HuXin0817/circuit-lines/pkg/models/message"
	"github.com/HuXin0817/circuit-lines/serve/internal/svc"
)

// recordGameStart queues the start record of a new game.
func recordGameStart(svcCtx *svc.ServiceContext, snapshot message.Snapshot) {
	svcCtx.RecordPusher.AddMessages(message.NewGameStartRecord(snapshot.GameUid, snapshot.Mode, opponentName(snapshot.Mode)))
}

// recordMoves queues the moves just played, and the end of the game if they
// finished it. The pusher writes them to mongo in the background.
func recordMoves(svcCtx *svc.ServiceContext, uid message.GameUid, g *chess.Game, reports []chess.Report) {
	if len(reports) == 0 {
		return
	}
	svcCtx.RecordPusher.AddMessages(message.NewRecords(uid, g, reports...)...)
}
