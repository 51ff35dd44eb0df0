package worklog

import "errors"

var (
	ErrInvalidUserID       = errors.New("malformed user id")
	ErrInvalidProjectID    = errors.New("malformed project id")
	ErrInvalidLogType      = errors.New("unknown log type")
	ErrInvalidVacationType = errors.New("unknown vacation type")
	ErrInvalidDate         = errors.New("malformed date")
)
