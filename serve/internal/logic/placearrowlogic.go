package logic

import (
	"context"

	"github.com/zeromicro/go-zero/core/logx"

	"github.com/HuXin0817/circuit-lines/pkg/models/chess"
	"github.com/HuXin0817/circuit-lines/serve/internal/svc"
	"github.com/HuXin0817/circuit-lines/serve/internal/types"
)

type PlaceArrowLogic struct {
	ctx    context.Context
	svcCtx *svc.ServiceContext
	logx.Logger
}

func NewPlaceArrowLogic(ctx context.Context, svcCtx *svc.ServiceContext) *PlaceArrowLogic {
	return &PlaceArrowLogic{
		ctx:    ctx,
		svcCtx: svcCtx,
		Logger: logx.WithContext(ctx),
	}
}

func (l *PlaceArrowLogic) PlaceArrow(req *types.MoveRequest) (*types.GameResponse, error) {
	p, d, err := parseMove(req)
	if err != nil {
		return nil, err
	}

	resp, err := play(l.ctx, l.svcCtx, req.Id, chess.PlaceAction(p, d))
	if err != nil {
		return nil, err
	}

	l.Infow("arrow placed", logx.Field("game", req.Id), logx.Field("position", p.String()), logx.Field("direction", d.String()))
	return resp, nil
}
