package chess

import "fmt"

type ActionKind int8

const (
	ActionPlace ActionKind = iota
	ActionRotate
	ActionUndo
)

var actionNames = [...]string{"place", "rotate", "undo"}

func (k ActionKind) String() string {
	if k < ActionPlace || k > ActionUndo {
		return ""
	}
	return actionNames[k]
}

func ParseActionKind(s string) (ActionKind, bool) {
	for i, name := range actionNames {
		if name == s {
			return ActionKind(i), true
		}
	}
	return 0, false
}

// Action is one accepted intent. Unlike the event log, a list of actions
// keeps undone moves, so replaying it also restores edges they gashed.
type Action struct {
	Kind      ActionKind `json:"kind"`
	Position  Position   `json:"position"`
	Direction Direction  `json:"direction"`
}

func PlaceAction(p Position, d Direction) Action {
	return Action{Kind: ActionPlace, Position: p, Direction: d}
}

func RotateAction(p Position, d Direction) Action {
	return Action{Kind: ActionRotate, Position: p, Direction: d}
}

func UndoAction() Action {
	return Action{Kind: ActionUndo}
}

func (g *Game) Apply(a Action) (report Report, err error) {
	switch a.Kind {
	case ActionPlace:
		return g.Place(a.Position, a.Direction)
	case ActionRotate:
		return g.Rotate(a.Position, a.Direction)
	case ActionUndo:
		report.Event, err = g.Undo()
		return
	}
	return Report{}, fmt.Errorf("unknown action %d", a.Kind)
}

// Replay rebuilds a game from the actions accepted so far.
func Replay(mode Mode, actions []Action) (*Game, error) {
	g := NewGame(mode)
	for i, a := range actions {
		if _, err := g.Apply(a); err != nil {
			return nil, fmt.Errorf("action %d (%s): %w", i, a.Kind, err)
		}
	}
	return g, nil
}

// ActionOf returns the action that produced a move event.
func ActionOf(e Event) (Action, bool) {
	switch e := e.(type) {
	case ArrowPlaced:
		return PlaceAction(e.Position, e.Direction), true
	case ArrowRotated:
		return RotateAction(e.Position, e.Direction), true
	}
	return Action{}, false
}
