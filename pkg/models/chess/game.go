package chess

// CyclesToWin stable cycles end the game at once.
const CyclesToWin = 3

type Stats struct {
	CyclesCreated   map[Player]int  `json:"cyclesCreated"`
	CyclesDestroyed map[Player]int  `json:"cyclesDestroyed"`
	Territory       map[Player]int  `json:"territory"`
	SegmentsGashed  int             `json:"segmentsGashed"`
	RotationUsed    map[Player]bool `json:"rotationUsed"`
	TotalMoves      int             `json:"totalMoves"`
}

func newStats() Stats {
	return Stats{
		CyclesCreated:   map[Player]int{PlayerA: 0, PlayerB: 0},
		CyclesDestroyed: map[Player]int{PlayerA: 0, PlayerB: 0},
		Territory:       map[Player]int{PlayerA: 0, PlayerB: 0},
		RotationUsed:    map[Player]bool{PlayerA: false, PlayerB: false},
	}
}

// Report describes what a move changed, for callers that re-render or log.
type Report struct {
	Event      Event
	Gashed     []Edge
	Stabilized []Cycle
	Destroyed  []Cycle
	Ended      bool
}

type Game struct {
	Board             Board
	NowPlayer         Player
	MoveNumber        int
	Events            []Event
	Cycles            map[Player][]Cycle
	Gashed            EdgeSet
	RotationAvailable map[Player]bool
	Territories       map[Player]PositionSet
	Stats             Stats
	Ended             bool
	Winner            Player
	EndReason         string
	Mode              Mode
	MaxMoves          int
}

func NewGame(mode Mode) *Game {
	return &Game{
		NowPlayer:         PlayerA,
		Cycles:            map[Player][]Cycle{PlayerA: nil, PlayerB: nil},
		Gashed:            make(EdgeSet),
		RotationAvailable: map[Player]bool{PlayerA: true, PlayerB: true},
		Territories:       map[Player]PositionSet{PlayerA: {}, PlayerB: {}},
		Stats:             newStats(),
		Mode:              mode,
		MaxMoves:          mode.MoveLimit(),
	}
}

func (g *Game) Place(p Position, d Direction) (Report, error) {
	if g.Ended {
		return Report{}, ErrAlreadyEnded
	}
	if !p.Valid() {
		return Report{}, ErrOutOfBounds
	}
	if !d.Valid() {
		return Report{}, ErrInvalidDirection
	}
	if g.Board.Occupied(p) {
		return Report{}, ErrCellOccupied
	}

	e := ArrowPlaced{
		Player:    g.NowPlayer,
		Position:  p,
		Direction: d,
		MoveIndex: g.MoveNumber,
	}
	g.Board.Set(Arrow{Player: e.Player, Position: p, Direction: d, MoveIndex: e.MoveIndex})
	return g.commit(e), nil
}

// Rotate turns one of the current player's arrows. Each player may rotate once;
// keeping the current direction still spends the rotation and the turn.
func (g *Game) Rotate(p Position, d Direction) (Report, error) {
	if g.Ended {
		return Report{}, ErrAlreadyEnded
	}
	if !p.Valid() {
		return Report{}, ErrOutOfBounds
	}
	if !d.Valid() {
		return Report{}, ErrInvalidDirection
	}
	arrow, ok := g.Board.At(p)
	if !ok {
		return Report{}, ErrNoArrowAtPosition
	}
	if arrow.Player != g.NowPlayer {
		return Report{}, ErrNotOwner
	}
	if !g.RotationAvailable[g.NowPlayer] {
		return Report{}, ErrRotationAlreadyUsed
	}

	e := ArrowRotated{
		Player:            g.NowPlayer,
		Position:          p,
		Direction:         d,
		MoveIndex:         g.MoveNumber,
		PreviousDirection: arrow.Direction,
		PreviousMoveIndex: arrow.MoveIndex,
	}
	g.Board.Set(Arrow{Player: e.Player, Position: p, Direction: d, MoveIndex: e.MoveIndex})
	g.RotationAvailable[g.NowPlayer] = false
	g.Stats.RotationUsed[g.NowPlayer] = true
	return g.commit(e), nil
}

func (g *Game) commit(e Event) (report Report) {
	before := g.stableKeys()

	g.Events = append(g.Events, e)
	g.MoveNumber++
	g.Stats.TotalMoves++

	report.Event = e
	report.Gashed = g.analyze()
	report.Stabilized, report.Destroyed = g.stableChanges(before)

	g.checkEnd()
	if !g.Ended {
		g.NowPlayer = g.NowPlayer.Opponent()
	}
	report.Ended = g.Ended
	return
}

func (g *Game) CanUndo() bool {
	return g.MoveNumber > 0 && !g.Ended
}

// Undo reverses the last move. The gashed set, the rotation flags and the
// stats are left as they are.
func (g *Game) Undo() (Event, error) {
	if g.Ended {
		return nil, ErrAlreadyEnded
	}
	if g.MoveNumber == 0 || len(g.Events) == 0 {
		return nil, ErrNothingToUndo
	}

	g.MoveNumber--
	last := g.Events[len(g.Events)-1]
	g.Events = g.Events[:len(g.Events)-1]

	for _, p := range Positions() {
		if a, ok := g.Board.At(p); ok && a.MoveIndex == g.MoveNumber {
			g.Board.Clear(p)
		}
	}

	switch e := last.(type) {
	case ArrowPlaced:
		g.NowPlayer = e.Player
	case ArrowRotated:
		g.Board.Set(Arrow{
			Player:    e.Player,
			Position:  e.Position,
			Direction: e.PreviousDirection,
			MoveIndex: e.PreviousMoveIndex,
		})
		g.NowPlayer = e.Player
	default:
		g.NowPlayer = g.NowPlayer.Opponent()
	}

	g.analyze()
	return last, nil
}

// analyze recomputes the derived state. Cycles are found twice so that
// stability reflects the edges gashed by the latest move.
func (g *Game) analyze() (newlyGashed []Edge) {
	g.detectCycles()
	newlyGashed = DetectIntersections(&g.Board, g.Gashed)
	g.Stats.SegmentsGashed += len(newlyGashed)
	g.detectCycles()
	g.updateTerritories()
	return
}

func (g *Game) detectCycles() {
	for _, p := range Players {
		cycles := FindCycles(&g.Board, p, g.Gashed)
		if diff := len(cycles) - len(g.Cycles[p]); diff > 0 {
			g.Stats.CyclesCreated[p] += diff
		} else if diff < 0 {
			g.Stats.CyclesDestroyed[p] -= diff
		}
		g.Cycles[p] = cycles
	}
}

func (g *Game) updateTerritories() {
	for _, p := range Players {
		g.Territories[p] = Territory(g.Cycles[p])
		g.Stats.Territory[p] = len(g.Territories[p])
	}
}

func (g *Game) stableKeys() map[string]Cycle {
	keys := make(map[string]Cycle)
	for _, p := range Players {
		for _, c := range g.Cycles[p] {
			if c.Stable {
				keys[c.Key()] = c
			}
		}
	}
	return keys
}

func (g *Game) stableChanges(before map[string]Cycle) (stabilized, destroyed []Cycle) {
	after := g.stableKeys()
	for _, p := range Players {
		for _, c := range g.Cycles[p] {
			if _, c2 := before[c.Key()]; c.Stable && !c2 {
				stabilized = append(stabilized, c)
			}
		}
	}
	for key, c := range before {
		if _, c2 := after[key]; !c2 {
			destroyed = append(destroyed, c)
		}
	}
	return
}

func (g *Game) checkEnd() {
	for _, p := range Players {
		if g.StableCycleCount(p) >= CyclesToWin {
			g.end(p, ReasonStableCycles)
			return
		}
	}

	if g.MoveNumber < g.MaxMoves {
		return
	}

	scoreA, scoreB := g.Score(PlayerA), g.Score(PlayerB)
	switch {
	case scoreA > scoreB:
		g.end(PlayerA, ReasonHigherScore)
	case scoreB > scoreA:
		g.end(PlayerB, ReasonHigherScore)
	default:
		g.end(NoPlayer, ReasonDraw)
	}
}

func (g *Game) end(winner Player, reason string) {
	g.Ended = true
	g.Winner = winner
	g.EndReason = reason
	g.Events = append(g.Events, GameEnded{Winner: winner, Reason: reason})
}

// Score is 2 per stable cycle, 1 per 3 cells of territory and 1 for holding
// the centre cell.
func (g *Game) Score(p Player) int {
	territory := g.Territories[p]
	score := g.StableCycleCount(p)*2 + len(territory)/3
	if territory.Contains(CenterCell) {
		score++
	}
	return score
}

func (g *Game) StableCycleCount(p Player) int {
	return StableCount(g.Cycles[p])
}

func (g *Game) StableCycles(p Player) (cycles []Cycle) {
	for _, c := range g.Cycles[p] {
		if c.Stable {
			cycles = append(cycles, c)
		}
	}
	return
}

func (g *Game) Arrows(p Player) []Arrow {
	return g.Board.Arrows(p)
}

func (g *Game) EmptyCells() []Position {
	return g.Board.EmptyCells()
}

func (g *Game) CanRotate(p Player) bool {
	return !g.Ended && g.RotationAvailable[p]
}

// Clone returns a deep copy that can be read or played on independently.
func (g *Game) Clone() *Game {
	c := *g
	c.Events = append([]Event(nil), g.Events...)
	c.Gashed = g.Gashed.Clone()
	c.Cycles = make(map[Player][]Cycle, len(g.Cycles))
	for p, cycles := range g.Cycles {
		c.Cycles[p] = append([]Cycle(nil), cycles...)
	}
	c.RotationAvailable = cloneMap(g.RotationAvailable)
	c.Territories = make(map[Player]PositionSet, len(g.Territories))
	for p, t := range g.Territories {
		c.Territories[p] = make(PositionSet, len(t))
		for pos := range t {
			c.Territories[p].Add(pos)
		}
	}
	c.Stats.CyclesCreated = cloneMap(g.Stats.CyclesCreated)
	c.Stats.CyclesDestroyed = cloneMap(g.Stats.CyclesDestroyed)
	c.Stats.Territory = cloneMap(g.Stats.Territory)
	c.Stats.RotationUsed = cloneMap(g.Stats.RotationUsed)
	return &c
}

func cloneMap[K comparable, V any](m map[K]V) map[K]V {
	c := make(map[K]V, len(m))
	for k, v := range m {
		c[k] = v
	}
	return c
}
