package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/HuXin0817/circuit-lines/pkg/models/chess"
)

var errQuit = errors.New("quit")

const help = `commands:
  place x y dir    put an arrow, dir is one of N NE E SE S SW W NW
  rotate x y dir   turn one of your arrows, once per game
  undo             take back the last move
  hint             ask for a suggestion
  show             draw the board again
  quit`

// session holds the game a terminal is playing.
type session struct {
	client Client
	id     string
	out    io.Writer
}

func parseMove(id string, args []string) (moveRequest, error) {
	if len(args) != 3 {
		return moveRequest{}, errors.New("want x y dir")
	}
	x, err := strconv.Atoi(args[0])
	if err != nil {
		return moveRequest{}, fmt.Errorf("x: %w", err)
	}
	y, err := strconv.Atoi(args[1])
	if err != nil {
		return moveRequest{}, fmt.Errorf("y: %w", err)
	}
	d, ok := chess.ParseDirection(args[2])
	if !ok {
		return moveRequest{}, fmt.Errorf("unknown direction %q", args[2])
	}
	return moveRequest{Id: id, X: x, Y: y, Direction: d.String()}, nil
}

// exec runs one command line. Errors from the service are printed and the
// session goes on; only quit ends it.
func (s *session) exec(ctx context.Context, line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}

	var (
		view gameView
		err  error
	)
	switch cmd, args := strings.ToLower(fields[0]), fields[1:]; cmd {
	case "quit", "exit":
		return errQuit
	case "help":
		fmt.Fprintln(s.out, help)
		return nil
	case "show":
		view, err = s.client.Get(ctx, s.id)
	case "undo":
		view, err = s.client.Undo(ctx, s.id)
	case "hint":
		var hint suggestion
		if hint, err = s.client.Suggest(ctx, s.id); err == nil {
			verb := "place"
			if hint.Rotate {
				verb = "rotate"
			}
			fmt.Fprintf(s.out, "try: %s %d %d %s\n", verb, hint.X, hint.Y, hint.Direction)
			return nil
		}
	case "place", "rotate":
		var req moveRequest
		if req, err = parseMove(s.id, args); err != nil {
			break
		}
		if cmd == "place" {
			view, err = s.client.Place(ctx, req)
		} else {
			view, err = s.client.Rotate(ctx, req)
		}
	default:
		err = fmt.Errorf("unknown command %q, try help", cmd)
	}

	if err != nil {
		fmt.Fprintf(s.out, "error: %v\n", err)
		return nil
	}
	render(s.out, view)
	return nil
}
