package logic

import (
	"context"

	"github.com/zeromicro/go-zero/core/logx"

	"github.com/HuXin0817/circuit-lines/pkg/models/chess"
	"github.com/HuXin0817/circuit-lines/serve/internal/svc"
	"github.com/HuXin0817/circuit-lines/serve/internal/types"
)

type RotateArrowLogic struct {
	ctx    context.Context
	svcCtx *svc.ServiceContext
	logx.Logger
}

func NewRotateArrowLogic(ctx context.Context, svcCtx *svc.ServiceContext) *RotateArrowLogic {
	return &RotateArrowLogic{
		ctx:    ctx,
		svcCtx: svcCtx,
		Logger: logx.WithContext(ctx),
	}
}

func (l *RotateArrowLogic) RotateArrow(req *types.MoveRequest) (*types.GameResponse, error) {
	p, d, err := parseMove(req)
	if err != nil {
		return nil, err
	}

	resp, err := play(l.ctx, l.svcCtx, req.Id, chess.RotateAction(p, d))
	if err != nil {
		return nil, err
	}

	l.Infow("arrow rotated", logx.Field("game", req.Id), logx.Field("position", p.String()), logx.Field("direction", d.String()))
	return resp, nil
}
