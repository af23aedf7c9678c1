package message

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/bytedance/sonic"

	"github.com/HuXin0817/circuit-lines/pkg/models/chess"
)

type EventType string

const (
	ArrowPlacedType  EventType = "arrowPlaced"
	ArrowRotatedType EventType = "arrowRotated"
	GameEndedType    EventType = "gameEnded"
)

var (
	ErrUnknownEventType = errors.New("unknown event type")
	ErrInvalidEvent     = errors.New("invalid event")
)

type eventHeader struct {
	Type EventType `json:"type"`
}

type ArrowPlacedMessage struct {
	Type      EventType      `json:"type"`
	Player    string         `json:"player"`
	Position  chess.Position `json:"position"`
	Direction string         `json:"direction"`
	MoveIndex int            `json:"moveIndex"`
}

type ArrowRotatedMessage struct {
	Type              EventType      `json:"type"`
	Player            string         `json:"player"`
	Position          chess.Position `json:"position"`
	Direction         string         `json:"direction"`
	MoveIndex         int            `json:"moveIndex"`
	PreviousDirection string         `json:"previousDirection"`
	PreviousMoveIndex int            `json:"previousMoveIndex"`
}

type GameEndedMessage struct {
	Type   EventType `json:"type"`
	Winner string    `json:"winner,omitempty"`
	Reason string    `json:"reason"`
}

// EventMessage converts an event into its tagged wire form.
func EventMessage(e chess.Event) (any, error) {
	switch e := e.(type) {
	case chess.ArrowPlaced:
		return ArrowPlacedMessage{
			Type:      ArrowPlacedType,
			Player:    e.Player.String(),
			Position:  e.Position,
			Direction: e.Direction.String(),
			MoveIndex: e.MoveIndex,
		}, nil
	case chess.ArrowRotated:
		return ArrowRotatedMessage{
			Type:              ArrowRotatedType,
			Player:            e.Player.String(),
			Position:          e.Position,
			Direction:         e.Direction.String(),
			MoveIndex:         e.MoveIndex,
			PreviousDirection: e.PreviousDirection.String(),
			PreviousMoveIndex: e.PreviousMoveIndex,
		}, nil
	case chess.GameEnded:
		return GameEndedMessage{
			Type:   GameEndedType,
			Winner: e.Winner.String(),
			Reason: e.Reason,
		}, nil
	}
	return nil, fmt.Errorf("%w: %T", ErrUnknownEventType, e)
}

func EncodeEvent(e chess.Event) (string, error) {
	m, err := EventMessage(e)
	if err != nil {
		return "", err
	}
	return sonic.MarshalString(m)
}

func DecodeEvent(s string) (chess.Event, error) {
	var header eventHeader
	if err := sonic.UnmarshalString(s, &header); err != nil {
		return nil, err
	}

	switch header.Type {
	case ArrowPlacedType:
		var m ArrowPlacedMessage
		if err := sonic.UnmarshalString(s, &m); err != nil {
			return nil, err
		}
		player, d, err := parseArrow(m.Player, m.Direction)
		if err != nil {
			return nil, err
		}
		return chess.ArrowPlaced{
			Player:    player,
			Position:  m.Position,
			Direction: d,
			MoveIndex: m.MoveIndex,
		}, nil
	case ArrowRotatedType:
		var m ArrowRotatedMessage
		if err := sonic.UnmarshalString(s, &m); err != nil {
			return nil, err
		}
		player, d, err := parseArrow(m.Player, m.Direction)
		if err != nil {
			return nil, err
		}
		previous, ok := chess.ParseDirection(m.PreviousDirection)
		if !ok {
			return nil, fmt.Errorf("%w: direction %q", ErrInvalidEvent, m.PreviousDirection)
		}
		return chess.ArrowRotated{
			Player:            player,
			Position:          m.Position,
			Direction:         d,
			MoveIndex:         m.MoveIndex,
			PreviousDirection: previous,
			PreviousMoveIndex: m.PreviousMoveIndex,
		}, nil
	case GameEndedType:
		var m GameEndedMessage
		if err := sonic.UnmarshalString(s, &m); err != nil {
			return nil, err
		}
		return chess.GameEnded{Winner: chess.ParsePlayer(m.Winner), Reason: m.Reason}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownEventType, header.Type)
}

func parseArrow(player, direction string) (chess.Player, chess.Direction, error) {
	p := chess.ParsePlayer(player)
	if p == chess.NoPlayer {
		return 0, 0, fmt.Errorf("%w: player %q", ErrInvalidEvent, player)
	}
	d, ok := chess.ParseDirection(direction)
	if !ok {
		return 0, 0, fmt.Errorf("%w: direction %q", ErrInvalidEvent, direction)
	}
	return p, d, nil
}

// EncodeEvents writes the log as a JSON array of tagged events.
func EncodeEvents(events []chess.Event) (string, error) {
	messages := make([]any, 0, len(events))
	for _, e := range events {
		m, err := EventMessage(e)
		if err != nil {
			return "", err
		}
		messages = append(messages, m)
	}
	return sonic.MarshalString(messages)
}

func DecodeEvents(s string) ([]chess.Event, error) {
	var raws []json.RawMessage
	if err := sonic.UnmarshalString(s, &raws); err != nil {
		return nil, err
	}

	events := make([]chess.Event, 0, len(raws))
	for i, raw := range raws {
		e, err := DecodeEvent(string(raw))
		if err != nil {
			return nil, fmt.Errorf("event %d: %w", i, err)
		}
		events = append(events, e)
	}
	return events, nil
}
