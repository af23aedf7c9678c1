package chess

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	BlitzMoveLimit   = 16
	DefaultMoveLimit = 24
)

type ModeKind int8

const (
	PracticeEasy ModeKind = iota
	PracticeMedium
	PracticeHard
	LocalDuel
	Puzzle
	Blitz
)

var modeNames = [...]string{
	PracticeEasy:   "practice-easy",
	PracticeMedium: "practice-medium",
	PracticeHard:   "practice-hard",
	LocalDuel:      "local-duel",
	Puzzle:         "puzzle",
	Blitz:          "blitz",
}

// Mode selects the move limit and whether a built-in opponent plays B.
// PuzzleID is only meaningful for Puzzle.
type Mode struct {
	Kind     ModeKind `json:"kind"`
	PuzzleID int      `json:"puzzleId,omitempty"`
}

func (m Mode) MoveLimit() int {
	if m.Kind == Blitz {
		return BlitzMoveLimit
	}
	return DefaultMoveLimit
}

func (m Mode) Practice() bool {
	switch m.Kind {
	case PracticeEasy, PracticeMedium, PracticeHard:
		return true
	}
	return false
}

func (m Mode) String() string {
	if m.Kind < PracticeEasy || m.Kind > Blitz {
		return ""
	}
	if m.Kind == Puzzle {
		return fmt.Sprintf("%s(%d)", modeNames[Puzzle], m.PuzzleID)
	}
	return modeNames[m.Kind]
}

// ParseMode accepts the names produced by String, e.g. "blitz" or "puzzle(3)".
func ParseMode(s string) (Mode, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if rest, ok := strings.CutPrefix(s, modeNames[Puzzle]); ok {
		id := strings.TrimSuffix(strings.TrimPrefix(rest, "("), ")")
		if id == "" {
			return Mode{Kind: Puzzle}, nil
		}
		n, err := strconv.Atoi(id)
		if err != nil {
			return Mode{}, fmt.Errorf("invalid puzzle id %q: %w", id, err)
		}
		return Mode{Kind: Puzzle, PuzzleID: n}, nil
	}

	for kind, name := range modeNames {
		if name == s {
			return Mode{Kind: ModeKind(kind)}, nil
		}
	}
	return Mode{}, fmt.Errorf("unknown mode %q", s)
}
