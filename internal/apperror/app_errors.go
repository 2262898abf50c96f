package apperror

import "errors"

var (
	ErrCellOccupied     = errors.New("cell is already occupied")
	ErrOutOfRange       = errors.New("cell is out of range")
	ErrInvalidMarker    = errors.New("invalid marker")
	ErrMalformedInput   = errors.New("malformed input")
	ErrInputClosed      = errors.New("input closed before the game ended")
	ErrNoAvailableMoves = errors.New("no available moves")
)
