package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/logrusorgru/aurora"

	"github.com/HuXin0817/circuit-lines/pkg/models/chess"
)

var arrowGlyphs = map[string]string{
	"N": "↑", "NE": "↗", "E": "→", "SE": "↘",
	"S": "↓", "SW": "↙", "W": "←", "NW": "↖",
}

func colorOf(player string) func(any) aurora.Value {
	if player == chess.PlayerA.String() {
		return aurora.Red
	}
	return aurora.Cyan
}

// render draws the grid with row and column numbers. Territory shows as a
// coloured dot in empty cells.
func render(w io.Writer, view gameView) {
	var grid [chess.GridSize][chess.GridSize]string
	for y := range chess.GridSize {
		for x := range chess.GridSize {
			grid[y][x] = "·"
		}
	}
	for _, p := range view.Players {
		for _, t := range p.Territory {
			grid[t.Y][t.X] = colorOf(p.Player)("•").String()
		}
	}
	for _, c := range view.Cells {
		grid[c.Y][c.X] = colorOf(c.Player)(arrowGlyphs[c.Direction]).Bold().String()
	}

	var b strings.Builder
	b.WriteString("  ")
	for x := range chess.GridSize {
		fmt.Fprintf(&b, " %d", x)
	}
	b.WriteString("\n")
	for y := range chess.GridSize {
		fmt.Fprintf(&b, "%d ", y)
		for x := range chess.GridSize {
			b.WriteString(" " + grid[y][x])
		}
		b.WriteString("\n")
	}
	_, _ = io.WriteString(w, b.String())

	for _, p := range view.Players {
		rotate := ""
		if p.CanRotate {
			rotate = " (rotation left)"
		}
		fmt.Fprintf(w, "%s score %d, stable cycles %d%s\n", colorOf(p.Player)(p.Player), p.Score, p.StableCycles, rotate)
	}
	fmt.Fprintf(w, "move %d/%d, gashed %d\n", view.MoveNumber, view.MoveLimit, view.Gashed)

	switch {
	case view.Ended && view.Winner == "":
		fmt.Fprintf(w, "%s\n", aurora.Yellow("draw"))
	case view.Ended:
		fmt.Fprintf(w, "%s wins: %s\n", colorOf(view.Winner)(view.Winner), view.Reason)
	default:
		fmt.Fprintf(w, "%s to move\n", colorOf(view.NowPlayer)(view.NowPlayer))
	}
}
