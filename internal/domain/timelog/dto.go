package timelog

import "github.com/crewlog/crewlog-backend/internal/pkg/validator"

type CreateTimelogRequest struct {
	Date string `json:"date"`
	// Time is the worked duration as H:MM, e.g. "7:30".
	Time string `json:"time"`
	Desc string `json:"desc"`
}

func (r CreateTimelogRequest) Validate() error {
	var errs validator.ValidationErrors
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "Date must be in YYYY-MM-DD format"})
	}
	if !validator.IsValidClock(r.Time) {
		errs = append(errs, validator.ValidationError{Field: "time", Message: "Duration must be in H:MM format"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ChangeTimelogRequest struct {
	Date *string `json:"date"`
	Time *string `json:"time"`
	Desc *string `json:"desc"`
}

func (r ChangeTimelogRequest) Validate() error {
	var errs validator.ValidationErrors
	if r.Date != nil {
		if _, ok := validator.IsValidDate(*r.Date); !ok {
			errs = append(errs, validator.ValidationError{Field: "date", Message: "Date must be in YYYY-MM-DD format"})
		}
	}
	if r.Time != nil && !validator.IsValidClock(*r.Time) {
		errs = append(errs, validator.ValidationError{Field: "time", Message: "Duration must be in H:MM format"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}
