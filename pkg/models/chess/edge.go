package chess

import "fmt"

// Edge is the segment drawn by an arrow, from its cell to the cell it points at.
type Edge struct {
	From Position `json:"from"`
	To   Position `json:"to"`
}

func NewEdge(from, to Position) Edge {
	return Edge{From: from, To: to}
}

func (e Edge) String() string {
	return fmt.Sprintf("%s -> %s", e.From, e.To)
}

func (e Edge) SharesEndpoint(o Edge) bool {
	return e.From == o.From || e.From == o.To || e.To == o.From || e.To == o.To
}

// Orientation is the signed area spanned by c relative to the line a->b.
// Its sign tells on which side of the line c lies; zero means collinear.
func Orientation(a, b, c Position) int {
	return (c.X-a.X)*(b.Y-a.Y) - (b.X-a.X)*(c.Y-a.Y)
}

func oppositeSigns(a, b int) bool {
	return (a > 0 && b < 0) || (a < 0 && b > 0)
}

// Crosses reports whether two edges properly intersect. Edges sharing an
// endpoint never cross, and collinear or touching segments do not count.
func (e Edge) Crosses(o Edge) bool {
	if e.SharesEndpoint(o) {
		return false
	}

	d1 := Orientation(o.From, o.To, e.From)
	d2 := Orientation(o.From, o.To, e.To)
	d3 := Orientation(e.From, e.To, o.From)
	d4 := Orientation(e.From, e.To, o.To)

	return oppositeSigns(d1, d2) && oppositeSigns(d3, d4)
}

type EdgeSet map[Edge]struct{}

func (s EdgeSet) Contains(e Edge) bool {
	_, c := s[e]
	return c
}

// Add inserts e and reports whether it was missing.
func (s EdgeSet) Add(e Edge) bool {
	if s.Contains(e) {
		return false
	}
	s[e] = struct{}{}
	return true
}

func (s EdgeSet) Clone() EdgeSet {
	c := make(EdgeSet, len(s))
	for e := range s {
		c[e] = struct{}{}
	}
	return c
}
