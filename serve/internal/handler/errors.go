package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/zeromicro/go-zero/core/logx"

	"github.com/HuXin0817/circuit-lines/pkg/assess"
	"github.com/HuXin0817/circuit-lines/pkg/models/chess"
	"github.com/HuXin0817/circuit-lines/pkg/models/session"
	"github.com/HuXin0817/circuit-lines/serve/internal/logic"
	"github.com/HuXin0817/circuit-lines/serve/internal/types"
)

var (
	badRequestErrors = []error{
		logic.ErrBadRequest,
		logic.ErrInvalidGameUid,
		chess.ErrOutOfBounds,
		chess.ErrInvalidDirection,
	}

	conflictErrors = []error{
		chess.ErrAlreadyEnded,
		chess.ErrCellOccupied,
		chess.ErrNoArrowAtPosition,
		chess.ErrNotOwner,
		chess.ErrRotationAlreadyUsed,
		chess.ErrNothingToUndo,
		assess.ErrNoLegalMove,
		assess.ErrNotPlayersTurn,
	}
)

func badRequest(err error) error {
	return fmt.Errorf("%w: %v", logic.ErrBadRequest, err)
}

func isAny(err error, targets []error) bool {
	for _, target := range targets {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// StatusOf maps a logic error to its http status. Rejected moves are
// conflicts with the current game state.
func StatusOf(err error) int {
	switch {
	case errors.Is(err, session.ErrNotFound):
		return http.StatusNotFound
	case isAny(err, badRequestErrors):
		return http.StatusBadRequest
	case isAny(err, conflictErrors):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// ErrorHandler renders errors as types.ErrorResponse; install it with
// httpx.SetErrorHandlerCtx.
func ErrorHandler(ctx context.Context, err error) (int, any) {
	code := StatusOf(err)
	if code == http.StatusInternalServerError {
		logx.WithContext(ctx).Errorf("request failed: %v", err)
	}
	return code, &types.ErrorResponse{Code: code, Message: err.Error()}
}
