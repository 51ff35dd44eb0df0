package timelog

import "errors"

var (
	ErrTimelogNotFound = errors.New("timelog not found")
	ErrNotYourTimelog  = errors.New("timelog belongs to another user")
	ErrPastMonth       = errors.New("timelog date is in a past month")
)
