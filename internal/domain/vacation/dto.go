package vacation

import "github.com/crewlog/crewlog-backend/internal/pkg/validator"

type CreateVacationRequest struct {
	Date string `json:"date"`
	Type Type   `json:"type"`
	Desc string `json:"desc"`
}

func (r CreateVacationRequest) Validate() error {
	var errs validator.ValidationErrors
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "Date must be in YYYY-MM-DD format"})
	}
	switch r.Type {
	case TypeVacationUnpaid, TypeVacationPaid, TypeSickUnpaid, TypeSickPaid:
	default:
		errs = append(errs, validator.ValidationError{Field: "type", Message: "Unknown vacation type"})
	}
	if validator.IsEmpty(r.Desc) {
		errs = append(errs, validator.ValidationError{Field: "desc", Message: "Reason is required"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ChangeStatusRequest struct {
	Status Status `json:"status"`
}

func (r ChangeStatusRequest) Validate() error {
	switch r.Status {
	case StatusApproved, StatusRejected:
		return nil
	default:
		return validator.ValidationErrors{{Field: "status", Message: "Status must be approved or rejected"}}
	}
}
