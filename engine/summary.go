package main

import (
	"fmt"
	"io"
	"sort"

	"github.com/logrusorgru/aurora"

	"github.com/HuXin0817/circuit-lines/pkg/models/chess"
)

type summary struct {
	mode    chess.Mode
	names   map[chess.Player]string
	games   int
	draws   int
	wins    map[chess.Player]int
	scores  map[chess.Player]int
	moves   int
	reasons map[string]int
}

func newSummary(o options) *summary {
	return &summary{
		mode:    o.mode,
		names:   map[chess.Player]string{chess.PlayerA: o.a.String(), chess.PlayerB: o.b.String()},
		wins:    map[chess.Player]int{},
		scores:  map[chess.Player]int{},
		reasons: map[string]int{},
	}
}

func (s *summary) add(g *chess.Game) {
	s.games++
	s.moves += g.Stats.TotalMoves
	s.reasons[g.EndReason]++
	if g.Winner == chess.NoPlayer {
		s.draws++
	} else {
		s.wins[g.Winner]++
	}
	for _, p := range chess.Players {
		s.scores[p] += g.Score(p)
	}
}

func (s *summary) average(total int) float64 {
	if s.games == 0 {
		return 0
	}
	return float64(total) / float64(s.games)
}

func (s *summary) print(w io.Writer) {
	fmt.Fprintf(w, "%s %d games of %s\n", aurora.Bold("self-play:"), s.games, s.mode)
	for _, p := range chess.Players {
		fmt.Fprintf(w, "  %s %-6s wins %s  avg score %.2f\n",
			p, s.names[p], aurora.Green(s.wins[p]), s.average(s.scores[p]))
	}
	fmt.Fprintf(w, "  draws %s  avg moves %.2f\n", aurora.Yellow(s.draws), s.average(s.moves))

	reasons := make([]string, 0, len(s.reasons))
	for r := range s.reasons {
		reasons = append(reasons, r)
	}
	sort.Strings(reasons)
	for _, r := range reasons {
		fmt.Fprintf(w, "  %-14s %d\n", r, s.reasons[r])
	}
}
