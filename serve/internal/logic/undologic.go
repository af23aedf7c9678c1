package logic

import (
	"context"
	"fmt"

	"github.com/zeromicro/go-zero/core/logx"

	"github.com/HuXin0817/circuit-lines/pkg/assess"
	"github.com/HuXin0817/circuit-lines/pkg/models/chess"
	"github.com/HuXin0817/circuit-lines/pkg/models/message"
	"github.com/HuXin0817/circuit-lines/serve/internal/svc"
	"github.com/HuXin0817/circuit-lines/serve/internal/types"
)

type UndoLogic struct {
	ctx    context.Context
	svcCtx *svc.ServiceContext
	logx.Logger
}

func NewUndoLogic(ctx context.Context, svcCtx *svc.ServiceContext) *UndoLogic {
	return &UndoLogic{
		ctx:    ctx,
		svcCtx: svcCtx,
		Logger: logx.WithContext(ctx),
	}
}

// Undo takes back the last move. Against the built-in opponent it keeps
// undoing until the human is to move again.
func (l *UndoLogic) Undo(req *types.GameRequest) (*types.GameResponse, error) {
	uid, err := parseGameUid(req.Id)
	if err != nil {
		return nil, err
	}

	var (
		g      *chess.Game
		undone int
	)
	snapshot, err := l.svcCtx.Store.Update(l.ctx, uid, func(sn *message.Snapshot) (err error) {
		if g, err = sn.Game(); err != nil {
			return err
		}

		if _, err = sn.Apply(g, chess.UndoAction()); err != nil {
			return fmt.Errorf("undo: %w", err)
		}
		undone++

		if _, ok := assess.DifficultyFor(sn.Mode); !ok {
			return nil
		}
		for g.NowPlayer == svc.OpponentSide && g.CanUndo() {
			if _, err = sn.Apply(g, chess.UndoAction()); err != nil {
				return fmt.Errorf("undo: %w", err)
			}
			undone++
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	l.Infow("moves undone", logx.Field("game", req.Id), logx.Field("count", undone))
	return newGameResponse(snapshot, g), nil
}
