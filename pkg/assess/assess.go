package assess

import (
	"errors"
	"math"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/HuXin0817/circuit-lines/pkg/models/chess"
)

var ErrNoLegalMove = errors.New("no legal move")

type Difficulty int8

const (
	Easy Difficulty = iota
	Medium
	Hard
)

var difficultyNames = [...]string{"easy", "medium", "hard"}

func (d Difficulty) String() string {
	if d < Easy || d > Hard {
		return ""
	}
	return difficultyNames[d]
}

func ParseDifficulty(s string) (Difficulty, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range difficultyNames {
		if name == s {
			return Difficulty(i), true
		}
	}
	return 0, false
}

// DifficultyFor returns the opponent tier of a practice mode.
func DifficultyFor(mode chess.Mode) (Difficulty, bool) {
	switch mode.Kind {
	case chess.PracticeEasy:
		return Easy, true
	case chess.PracticeMedium:
		return Medium, true
	case chess.PracticeHard:
		return Hard, true
	}
	return 0, false
}

const (
	MaxSamples           = 24
	SamplesPerEmptyCell  = 3
	MediumRotationChance = 0.3
	HardRotationMinScore = 30
)

const (
	cycleScore    = 100
	crossScore    = 50
	linkScore     = 20
	centerScore   = 10
	maxJitter     = 5
	noScore       = math.MinInt
	parallelBatch = 8
)

// Player picks moves for one side. It only reads the game it is given.
// A Player is not safe for concurrent use because it owns its random source.
type Player struct {
	Difficulty     Difficulty
	Side           chess.Player
	RotationChance float64
	rand           *rand.Rand
}

func NewPlayer(difficulty Difficulty, side chess.Player, options ...Option) (newPlayer *Player) {
	newPlayer = &Player{
		Difficulty:     difficulty,
		Side:           side,
		RotationChance: DefaultRotationChance,
		rand:           rand.New(rand.NewSource(time.Now().UnixNano())),
	}

	for _, option := range options {
		option(newPlayer)
	}

	return
}

// SuggestMove returns a placement for an empty cell.
func (p *Player) SuggestMove(g *chess.Game) (Move, error) {
	empty := g.EmptyCells()
	if len(empty) == 0 {
		return Move{}, ErrNoLegalMove
	}

	switch p.Difficulty {
	case Medium:
		return p.mediumMove(g, empty), nil
	case Hard:
		return p.hardMove(g, empty), nil
	}
	return p.randomMove(empty), nil
}

// SuggestRotation returns the new direction for one of the side's arrows,
// or false when the side should not rotate.
func (p *Player) SuggestRotation(g *chess.Game) (Move, bool) {
	if !g.CanRotate(p.Side) {
		return Move{}, false
	}

	switch p.Difficulty {
	case Medium:
		if p.rand.Float64() < MediumRotationChance {
			return p.closingRotation(g)
		}
	case Hard:
		return p.bestRotation(g)
	}
	return Move{}, false
}

func (p *Player) randomMove(empty []chess.Position) Move {
	return Move{
		Position:  empty[p.rand.Intn(len(empty))],
		Direction: chess.Directions[p.rand.Intn(len(chess.Directions))],
	}
}

// candidates lists every placement with an on-board target, row by row.
func candidates(empty []chess.Position) (moves []Move) {
	for _, pos := range empty {
		for _, d := range chess.Directions {
			if m := (Move{Position: pos, Direction: d}); m.Target().Valid() {
				moves = append(moves, m)
			}
		}
	}
	return
}

func (p *Player) mediumMove(g *chess.Game, empty []chess.Position) Move {
	own := g.Arrows(p.Side)
	opponent := g.Arrows(p.Side.Opponent())
	moves := candidates(empty)

	for _, m := range moves {
		if closesCycle(own, m) {
			return m
		}
	}

	for _, m := range moves {
		if crossesAny(opponent, m) {
			return m
		}
	}

	for _, m := range moves {
		if occupiedBy(own, m.Target()) || pointingAt(own, m.Position) > 0 {
			return m
		}
	}

	for _, c := range chess.CenterCells {
		if !g.Board.Occupied(c) {
			return Move{Position: c, Direction: chess.Directions[p.rand.Intn(len(chess.Directions))]}
		}
	}

	return p.randomMove(empty)
}

// evaluate scores m without the random jitter.
func evaluate(own, opponent []chess.Arrow, m Move) (score int) {
	if closesCycle(own, m) {
		score += cycleScore
	}
	if crossesAny(opponent, m) {
		score += crossScore
	}
	if m.Target().Valid() {
		if occupiedBy(own, m.Target()) {
			score += linkScore
		}
		score += linkScore * pointingAt(own, m.Position)
	}
	if m.Position.IsCenter() {
		score += centerScore
	}
	return
}

// evaluateAll scores the moves in parallel. Jitter is drawn by the caller so
// the result stays reproducible for a seeded source.
func evaluateAll(own, opponent []chess.Arrow, moves []Move) []int {
	scores := make([]int, len(moves))
	if len(moves) < parallelBatch {
		for i, m := range moves {
			scores[i] = evaluate(own, opponent, m)
		}
		return scores
	}

	var wg sync.WaitGroup
	wg.Add(len(moves))
	for i, m := range moves {
		go func(i int, m Move) {
			scores[i] = evaluate(own, opponent, m)
			wg.Done()
		}(i, m)
	}
	wg.Wait()

	return scores
}

// best returns the first move with the highest score.
func best(moves []Move, scores []int) (bestMove Move, bestScore int) {
	bestScore = noScore
	for i, m := range moves {
		if scores[i] > bestScore {
			bestMove, bestScore = m, scores[i]
		}
	}
	return
}

func (p *Player) jitter(scores []int) {
	for i := range scores {
		scores[i] += p.rand.Intn(maxJitter + 1)
	}
}

func (p *Player) hardMove(g *chess.Game, empty []chess.Position) Move {
	samples := make([]Move, min(SamplesPerEmptyCell*len(empty), MaxSamples))
	jitter := make([]int, len(samples))
	for i := range samples {
		samples[i] = p.randomMove(empty)
		jitter[i] = p.rand.Intn(maxJitter + 1)
	}

	scores := evaluateAll(g.Arrows(p.Side), g.Arrows(p.Side.Opponent()), samples)
	for i := range scores {
		scores[i] += jitter[i]
	}

	m, _ := best(samples, scores)
	return m
}

func rotations(arrows []chess.Arrow) (moves []Move) {
	for _, a := range arrows {
		for _, d := range chess.Directions {
			if d != a.Direction {
				moves = append(moves, Move{Position: a.Position, Direction: d})
			}
		}
	}
	return
}

func (p *Player) closingRotation(g *chess.Game) (Move, bool) {
	own := g.Arrows(p.Side)
	for _, m := range rotations(own) {
		if closesCycle(own, m) {
			return m, true
		}
	}
	return Move{}, false
}

func (p *Player) bestRotation(g *chess.Game) (Move, bool) {
	own := g.Arrows(p.Side)
	moves := rotations(own)
	if len(moves) == 0 {
		return Move{}, false
	}

	scores := evaluateAll(own, g.Arrows(p.Side.Opponent()), moves)
	p.jitter(scores)

	m, score := best(moves, scores)
	if score <= HardRotationMinScore {
		return Move{}, false
	}
	return m, true
}
