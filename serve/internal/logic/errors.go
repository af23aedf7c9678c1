package logic

import "errors"

var (
	ErrBadRequest     = errors.New("bad request")
	ErrInvalidGameUid = errors.New("invalid game id")
)
