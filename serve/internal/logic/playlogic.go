package logic

import (
	"context"
	"fmt"

	"github.com/HuXin0817/circuit-lines/pkg/assess"
	"github.com/HuXin0817/circuit-lines/pkg/models/chess"
	"github.com/HuXin0817/circuit-lines/pkg/models/message"
	"github.com/HuXin0817/circuit-lines/serve/internal/svc"
	"github.com/HuXin0817/circuit-lines/serve/internal/types"
)

func parseGameUid(id string) (message.GameUid, error) {
	uid, err := message.ParseGameUid(id)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrInvalidGameUid, id)
	}
	return uid, nil
}

func parseMove(req *types.MoveRequest) (chess.Position, chess.Direction, error) {
	p := chess.NewPosition(req.X, req.Y)
	if !p.Valid() {
		return p, 0, fmt.Errorf("%w: %s", chess.ErrOutOfBounds, p)
	}
	d, ok := chess.ParseDirection(req.Direction)
	if !ok {
		return p, 0, fmt.Errorf("%w: %q", chess.ErrInvalidDirection, req.Direction)
	}
	return p, d, nil
}

// play applies action to the stored game under its lock. In practice modes
// the opponent answers before the game is stored again.
func play(ctx context.Context, svcCtx *svc.ServiceContext, id string, action chess.Action) (*types.GameResponse, error) {
	uid, err := parseGameUid(id)
	if err != nil {
		return nil, err
	}

	var (
		g       *chess.Game
		reports []chess.Report
	)
	snapshot, err := svcCtx.Store.Update(ctx, uid, func(sn *message.Snapshot) (err error) {
		if g, err = sn.Game(); err != nil {
			return err
		}

		report, err := sn.Apply(g, action)
		if err != nil {
			return fmt.Errorf("%s: %w", action.Kind, err)
		}
		reports = append(reports, report)

		replies, err := reply(svcCtx, sn, g)
		reports = append(reports, replies...)
		return err
	})
	if err != nil {
		return nil, err
	}

	recordMoves(svcCtx, uid, g, reports)
	return newGameResponse(snapshot, g), nil
}

// reply lets the built-in opponent move while it holds the turn and journals
// its moves.
func reply(svcCtx *svc.ServiceContext, sn *message.Snapshot, g *chess.Game) ([]chess.Report, error) {
	difficulty, ok := assess.DifficultyFor(sn.Mode)
	if !ok {
		return nil, nil
	}

	reports, err := svcCtx.Opponent(difficulty, svc.OpponentSide, g.MoveNumber).PlayOut(g)
	for _, report := range reports {
		if action, ok := chess.ActionOf(report.Event); ok {
			sn.Actions = append(sn.Actions, action)
		}
	}
	if err != nil {
		return reports, fmt.Errorf("opponent: %w", err)
	}
	return reports, nil
}
