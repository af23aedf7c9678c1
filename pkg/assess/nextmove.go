package assess

import (
	"errors"
	"fmt"

	"github.com/HuXin0817/circuit-lines/pkg/models/chess"
)

// DefaultRotationChance is how often TakeTurn uses a suggested rotation.
const DefaultRotationChance = 0.4

var ErrNotPlayersTurn = errors.New("not the player's turn")

// TakeTurn plays one move for the player's side: a suggested rotation with
// probability RotationChance, otherwise a placement.
func (p *Player) TakeTurn(g *chess.Game) (chess.Report, error) {
	if g.Ended {
		return chess.Report{}, chess.ErrAlreadyEnded
	}
	if g.NowPlayer != p.Side {
		return chess.Report{}, ErrNotPlayersTurn
	}

	if m, ok := p.SuggestRotation(g); ok && p.rand.Float64() < p.RotationChance {
		report, err := g.Rotate(m.Position, m.Direction)
		if err != nil {
			return report, fmt.Errorf("rotate %s: %w", m, err)
		}
		return report, nil
	}

	m, err := p.SuggestMove(g)
	if err != nil {
		return chess.Report{}, err
	}
	report, err := g.Place(m.Position, m.Direction)
	if err != nil {
		return report, fmt.Errorf("place %s: %w", m, err)
	}
	return report, nil
}

// PlayOut lets the player keep moving while it holds the turn. In practice
// modes this is the reply to a human move.
func (p *Player) PlayOut(g *chess.Game) (reports []chess.Report, err error) {
	for !g.Ended && g.NowPlayer == p.Side {
		report, err := p.TakeTurn(g)
		if err != nil {
			return reports, err
		}
		reports = append(reports, report)
	}
	return
}

// SelfPlay alternates two players on g until it ends.
func SelfPlay(g *chess.Game, a, b *Player) error {
	players := map[chess.Player]*Player{a.Side: a, b.Side: b}
	for !g.Ended {
		p, ok := players[g.NowPlayer]
		if !ok {
			return fmt.Errorf("no player for side %s", g.NowPlayer)
		}
		if _, err := p.TakeTurn(g); err != nil {
			return err
		}
	}
	return nil
}
