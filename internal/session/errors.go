package session

import "errors"

var (
	ErrInvalidRating   = errors.New("session: invalid rating")
	ErrEmptyWorkingSet = errors.New("session: no cards to drill")
	ErrSessionActive   = errors.New("session: drill already in progress")
	ErrNotComplete     = errors.New("session: drill is not complete")
)
