package logic

import (
	"context"

	"github.com/zeromicro/go-zero/core/logx"

	"github.com/HuXin0817/circuit-lines/pkg/assess"
	"github.com/HuXin0817/circuit-lines/pkg/models/chess"
	"github.com/HuXin0817/circuit-lines/serve/internal/svc"
	"github.com/HuXin0817/circuit-lines/serve/internal/types"
)

type SuggestLogic struct {
	ctx    context.Context
	svcCtx *svc.ServiceContext
	logx.Logger
}

func NewSuggestLogic(ctx context.Context, svcCtx *svc.ServiceContext) *SuggestLogic {
	return &SuggestLogic{
		ctx:    ctx,
		svcCtx: svcCtx,
		Logger: logx.WithContext(ctx),
	}
}

// Suggest proposes a move for the player to move, at the difficulty of the
// game's opponent or at medium when it has none.
func (l *SuggestLogic) Suggest(req *types.GameRequest) (*types.SuggestResponse, error) {
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
	if g.Ended {
		return nil, chess.ErrAlreadyEnded
	}

	difficulty, ok := assess.DifficultyFor(g.Mode)
	if !ok {
		difficulty = assess.Medium
	}
	player := l.svcCtx.Opponent(difficulty, g.NowPlayer, g.MoveNumber)

	resp := &types.SuggestResponse{Player: g.NowPlayer.String()}
	m, rotate := player.SuggestRotation(g)
	if !rotate {
		if m, err = player.SuggestMove(g); err != nil {
			return nil, err
		}
	}

	resp.Rotate = rotate
	resp.X, resp.Y = m.Position.X, m.Position.Y
	resp.Direction = m.Direction.String()
	return resp, nil
}
