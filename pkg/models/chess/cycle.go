package chess

import (
	"strconv"
	"strings"
)

// MinCycleLength excludes two arrows pointing at each other.
const MinCycleLength = 3

type Cycle struct {
	Player    Player     `json:"player"`
	Positions []Position `json:"positions"`
	Stable    bool       `json:"stable"`
}

// Edges returns the cycle's segments, closing back to the first position.
func (c Cycle) Edges() []Edge {
	edges := make([]Edge, len(c.Positions))
	for i, p := range c.Positions {
		edges[i] = NewEdge(p, c.Positions[(i+1)%len(c.Positions)])
	}
	return edges
}

// Key identifies the cycle regardless of the node it starts at.
func (c Cycle) Key() string {
	if len(c.Positions) == 0 {
		return ""
	}

	start := 0
	for i, p := range c.Positions {
		if p.Index() < c.Positions[start].Index() {
			start = i
		}
	}

	var builder strings.Builder
	builder.WriteString(c.Player.String())
	for i := range c.Positions {
		builder.WriteByte(':')
		builder.WriteString(strconv.Itoa(c.Positions[(start+i)%len(c.Positions)].Index()))
	}
	return builder.String()
}

func IsStable(positions []Position, gashed EdgeSet) bool {
	for i, p := range positions {
		if gashed.Contains(NewEdge(p, positions[(i+1)%len(positions)])) {
			return false
		}
	}
	return true
}

const noSuccessor = -1

// successors builds the functional graph of the arrows: each source cell maps
// to the flattened index of its on-board target.
func successors(arrows []Arrow) (next [CellCount]int) {
	for i := range next {
		next[i] = noSuccessor
	}
	for _, a := range arrows {
		if target := a.Target(); target.Valid() {
			next[a.Position.Index()] = target.Index()
		}
	}
	return
}

const (
	unvisited = iota
	onPath
	finished
)

// FindCycles returns every closed walk formed by the player's arrows.
// The walk from each arrow stops at a dead end, at a cell finished by an
// earlier walk, or after CellCount steps; reaching a cell on the current
// path closes a cycle made of the path from that cell onwards.
func FindCycles(b *Board, player Player, gashed EdgeSet) (cycles []Cycle) {
	arrows := b.Arrows(player)
	next := successors(arrows)

	var state [CellCount]int8
	for _, a := range arrows {
		start := a.Position.Index()
		if state[start] != unvisited {
			continue
		}

		var path []int
		current := start
		for {
			if state[current] == finished {
				break
			}
			if state[current] == onPath {
				cycle := cycleFrom(path, current)
				if len(cycle) >= MinCycleLength {
					cycles = append(cycles, Cycle{
						Player:    player,
						Positions: cycle,
						Stable:    IsStable(cycle, gashed),
					})
				}
				break
			}

			state[current] = onPath
			path = append(path, current)
			if next[current] == noSuccessor || len(path) > CellCount {
				break
			}
			current = next[current]
		}

		for _, i := range path {
			state[i] = finished
		}
	}
	return
}

func cycleFrom(path []int, first int) (positions []Position) {
	for i, index := range path {
		if index == first {
			for _, j := range path[i:] {
				positions = append(positions, PositionAt(j))
			}
			return
		}
	}
	return
}

func StableCount(cycles []Cycle) (count int) {
	for _, c := range cycles {
		if c.Stable {
			count++
		}
	}
	return
}
