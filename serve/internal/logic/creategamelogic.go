package logic

import (
	"context"
	"fmt"

	"github.com/zeromicro/go-zero/core/logx"

	"github.com/HuXin0817/circuit-lines/pkg/models/chess"
	"github.com/HuXin0817/circuit-lines/pkg/models/message"
	"github.com/HuXin0817/circuit-lines/serve/internal/svc"
	"github.com/HuXin0817/circuit-lines/serve/internal/types"
)

type CreateGameLogic struct {
	ctx    context.Context
	svcCtx *svc.ServiceContext
	logx.Logger
}

func NewCreateGameLogic(ctx context.Context, svcCtx *svc.ServiceContext) *CreateGameLogic {
	return &CreateGameLogic{
		ctx:    ctx,
		svcCtx: svcCtx,
		Logger: logx.WithContext(ctx),
	}
}

func (l *CreateGameLogic) CreateGame(req *types.CreateGameRequest) (*types.GameResponse, error) {
	mode, err := chess.ParseMode(req.Mode)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadRequest, err)
	}
	if mode.Kind == chess.Puzzle && req.Puzzle != 0 {
		mode.PuzzleID = req.Puzzle
	}

	snapshot := message.NewSnapshot(message.NewGameUid(), mode)
	if err = l.svcCtx.Store.Create(l.ctx, snapshot); err != nil {
		return nil, err
	}

	g, err := snapshot.Game()
	if err != nil {
		return nil, err
	}

	recordGameStart(l.svcCtx, snapshot)
	l.Infow("game created", logx.Field("game", snapshot.GameUid), logx.Field("mode", mode.String()))
	return newGameResponse(snapshot, g), nil
}
