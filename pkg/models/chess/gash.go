package chess

// DetectIntersections marks both edges of every crossing pair on the board as
// gashed and returns the edges that were not gashed before. Every pair is
// checked on each call, so the result does not depend on move order.
func DetectIntersections(b *Board, gashed EdgeSet) (newlyGashed []Edge) {
	edges := b.Edges()
	for i := range edges {
		for j := i + 1; j < len(edges); j++ {
			if !edges[i].Crosses(edges[j].Edge) {
				continue
			}
			if gashed.Add(edges[i].Edge) {
				newlyGashed = append(newlyGashed, edges[i].Edge)
			}
			if gashed.Add(edges[j].Edge) {
				newlyGashed = append(newlyGashed, edges[j].Edge)
			}
		}
	}
	return
}
