package game

import "errors"

var (
	ErrNoDirection        = errors.New("no direction to move the rook")
	ErrInvalidConfig      = errors.New("invalid simulator configuration")
	ErrSimulationFinished = errors.New("simulation already finished")
)
