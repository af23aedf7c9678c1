package chess

// Encloses runs the even-odd ray test for p against the closed polygon.
// An edge is counted only when p.Y lies in its half-open span [lowY, highY)
// and it crosses strictly to the right of p, so horizontal edges and shared
// vertices are never counted twice.
func Encloses(polygon []Position, p Position) bool {
	inside := false
	for i, j := 0, len(polygon)-1; i < len(polygon); j, i = i, i+1 {
		a, b := polygon[i], polygon[j]
		if (a.Y > p.Y) == (b.Y > p.Y) {
			continue
		}

		// p.X < a.X + (b.X-a.X)*(p.Y-a.Y)/(b.Y-a.Y), kept in integers
		dy := b.Y - a.Y
		lhs := (p.X - a.X) * dy
		rhs := (b.X - a.X) * (p.Y - a.Y)
		if (dy > 0 && lhs < rhs) || (dy < 0 && lhs > rhs) {
			inside = !inside
		}
	}
	return inside
}

func boundingBox(positions []Position) (lo, hi Position) {
	lo, hi = positions[0], positions[0]
	for _, p := range positions[1:] {
		lo.X, lo.Y = min(lo.X, p.X), min(lo.Y, p.Y)
		hi.X, hi.Y = max(hi.X, p.X), max(hi.Y, p.Y)
	}
	return
}

// EnclosedBy scans the bounding box of the polygon for enclosed cells.
func EnclosedBy(polygon []Position) PositionSet {
	enclosed := make(PositionSet)
	if len(polygon) == 0 {
		return enclosed
	}

	lo, hi := boundingBox(polygon)
	for y := lo.Y; y <= hi.Y; y++ {
		for x := lo.X; x <= hi.X; x++ {
			if p := NewPosition(x, y); Encloses(polygon, p) {
				enclosed.Add(p)
			}
		}
	}
	return enclosed
}

// Territory is the union of the cells enclosed by the stable cycles.
func Territory(cycles []Cycle) PositionSet {
	territory := make(PositionSet)
	for _, c := range cycles {
		if !c.Stable {
			continue
		}
		for p := range EnclosedBy(c.Positions) {
			territory.Add(p)
		}
	}
	return territory
}
