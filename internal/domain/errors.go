package domain

import "errors"

var (
	// ErrRoomNotFound is returned for an unknown room code.
	ErrRoomNotFound = errors.New("room not found")
	// ErrQuizNotFound indicates the quiz definition could not be loaded.
	ErrQuizNotFound = errors.New("quiz not found")
	// ErrQuizStarted is returned when a player tries to join after the lobby closed.
	ErrQuizStarted = errors.New("quiz already started")
	// ErrNotOwner is returned when a rejoin claims a room it does not own.
	ErrNotOwner = errors.New("not the owner of this room")
)
