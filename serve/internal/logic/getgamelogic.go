package logic

import (
	"context"

	"github.com/zeromicro/go-zero/core/logx"

	"github.com/HuXin0817/circuit-lines/serve/internal/svc"
	"github.com/HuXin0817/circuit-lines/serve/internal/types"
)

type GetGameLogic struct {
	ctx    context.Context
	svcCtx *svc.ServiceContext
	logx.Logger
}

func NewGetGameLogic(ctx context.Context, svcCtx *svc.ServiceContext) *GetGameLogic {
	return &GetGameLogic{
		ctx:    ctx,
		svcCtx: svcCtx,
		Logger: logx.WithContext(ctx),
	}
}

func (l *GetGameLogic) GetGame(req *types.GameRequest) (*types.GameResponse, error) {
	uid, err := parseGameUid(req.Id)
	if err != nil {
		return nil, err
	}

	snapshot, err := l.svcCtx.Store.Load(l.ctx, uid)
	if err != nil {
		return nil, err
	}

	g, err := snapshot.Game()
	if err != nil {
		return nil, err
	}

	return newGameResponse(snapshot, g), nil
}
