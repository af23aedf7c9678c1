package logic

import (
	"github.com/HuXin0817/circuit-lines/pkg/assess"
	"github.com/HuXin0817/circuit-lines/pkg/models/chess"
	"github.com/HuXin0817/circuit-lines/pkg/models/message"
	"github.com/HuXin0817/circuit-lines/serve/internal/types"
)

func positions(ps []chess.Position) []types.Position {
	converted := make([]types.Position, 0, len(ps))
	for _, p := range ps {
		converted = append(converted, types.Position{X: p.X, Y: p.Y})
	}
	return converted
}

func byPlayer[V any](m map[chess.Player]V) map[string]V {
	named := make(map[string]V, len(m))
	for p, v := range m {
		named[p.String()] = v
	}
	return named
}

func opponentName(mode chess.Mode) string {
	if d, ok := assess.DifficultyFor(mode); ok {
		return d.String()
	}
	return ""
}

// newGameResponse renders the read-only view of g.
func newGameResponse(snapshot message.Snapshot, g *chess.Game) *types.GameResponse {
	resp := &types.GameResponse{
		Id:         string(snapshot.GameUid),
		Mode:       g.Mode.String(),
		Opponent:   opponentName(g.Mode),
		Cells:      []types.Cell{},
		NowPlayer:  g.NowPlayer.String(),
		MoveNumber: g.MoveNumber,
		MoveLimit:  g.MaxMoves,
		Gashed:     len(g.Gashed),
		CanUndo:    g.CanUndo(),
		Ended:      g.Ended,
		Winner:     g.Winner.String(),
		Reason:     g.EndReason,
		Stats: types.Stats{
			TotalMoves:      g.Stats.TotalMoves,
			SegmentsGashed:  g.Stats.SegmentsGashed,
			CyclesCreated:   byPlayer(g.Stats.CyclesCreated),
			CyclesDestroyed: byPlayer(g.Stats.CyclesDestroyed),
			RotationUsed:    byPlayer(g.Stats.RotationUsed),
		},
		Events: []any{},
	}

	for _, p := range chess.Positions() {
		if a, ok := g.Board.At(p); ok {
			resp.Cells = append(resp.Cells, types.Cell{
				X:         p.X,
				Y:         p.Y,
				Player:    a.Player.String(),
				Direction: a.Direction.String(),
			})
		}
	}

	for _, p := range chess.Players {
		state := types.PlayerState{
			Player:       p.String(),
			Score:        g.Score(p),
			StableCycles: g.StableCycleCount(p),
			Cycles:       []types.Cycle{},
			Territory:    positions(g.Territories[p].Sorted()),
			CanRotate:    g.CanRotate(p),
		}
		for _, c := range g.Cycles[p] {
			state.Cycles = append(state.Cycles, types.Cycle{Positions: positions(c.Positions), Stable: c.Stable})
		}
		resp.Players = append(resp.Players, state)
	}

	for _, e := range g.Events {
		if m, err := message.EventMessage(e); err == nil {
			resp.Events = append(resp.Events, m)
		}
	}

	return resp
}
