package chess

import "errors"

var (
	ErrAlreadyEnded        = errors.New("game already ended")
	ErrOutOfBounds         = errors.New("position out of bounds")
	ErrInvalidDirection    = errors.New("invalid direction")
	ErrCellOccupied        = errors.New("cell occupied")
	ErrNoArrowAtPosition   = errors.New("no arrow at position")
	ErrNotOwner            = errors.New("arrow belongs to the opponent")
	ErrRotationAlreadyUsed = errors.New("rotation already used")
	ErrNothingToUndo       = errors.New("nothing to undo")
)
