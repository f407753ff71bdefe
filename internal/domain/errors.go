package domain

import "errors"

var (
	// ErrTeamNotFound indicates an unknown team id was supplied.
	ErrTeamNotFound = errors.New("team not found")

	// ErrPlanNotFound indicates the requested plan does not exist.
	ErrPlanNotFound = errors.New("plan not found")

	// ErrSessionIndexOutOfRange indicates a session index outside the plan.
	ErrSessionIndexOutOfRange = errors.New("session index out of range")

	// ErrDayIndexOutOfRange indicates a day index outside the timeline.
	ErrDayIndexOutOfRange = errors.New("day index out of range")

	// ErrInvalidDateRange indicates a malformed or inverted date range.
	ErrInvalidDateRange = errors.New("invalid date range")
)
