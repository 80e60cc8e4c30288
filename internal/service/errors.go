package service

import "errors"

var (
	// ErrNothingToSubmit в сессии нет ни одной отметки, запись в базу не выполняется
	ErrNothingToSubmit = errors.New("nothing to submit")
	// ErrUnknownMeetingTime встреча не из набора "11 AM" / "4 PM"
	ErrUnknownMeetingTime = errors.New("unknown meeting time")
	ErrInvalidStatus      = errors.New("invalid attendance status")
	ErrTimeNotAllowed     = errors.New("time is outside of the meeting window")
)
