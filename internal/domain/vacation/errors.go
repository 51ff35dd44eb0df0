package vacation

import "errors"

var (
	ErrVacationNotFound    = errors.New("vacation not found")
	ErrNoPaidVacationsLeft = errors.New("no paid vacation days left this year")
	ErrNoPaidSickDaysLeft  = errors.New("no paid sick days left this year")
	ErrPastMonth           = errors.New("leave cannot be requested for a past month")
	ErrUserTerminated      = errors.New("user is no longer employed")
	ErrAlreadyProcessed    = errors.New("vacation request already processed")
)
