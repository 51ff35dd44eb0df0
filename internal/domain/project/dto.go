package project

import "github.com/crewlog/crewlog-backend/internal/pkg/validator"

type CreateProjectRequest struct {
	Name         string   `json:"name"`
	CustomerName string   `json:"customerName"`
	StackIDs     []string `json:"stack"`
	UserIDs      []string `json:"users"`
	IsActive     bool     `json:"isActive"`
	IsInternal   bool     `json:"isInternal"`
	StartDate    string   `json:"startDate"`
}

func (r CreateProjectRequest) Validate() error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "Name is required"})
	}
	if _, ok := validator.IsValidDate(r.StartDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "startDate", Message: "Date must be in YYYY-MM-DD format"})
	}
	for _, id := range append(append([]string{}, r.StackIDs...), r.UserIDs...) {
		if !validator.IsValidUUID(id) {
			errs = append(errs, validator.ValidationError{Field: "ids", Message: "Malformed object id: " + id})
			break
		}
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateProjectRequest struct {
	Name         *string   `json:"name"`
	CustomerName *string   `json:"customerName"`
	StackIDs     *[]string `json:"stack"`
	UserIDs      *[]string `json:"users"`
	IsActive     *bool     `json:"isActive"`
	IsInternal   *bool     `json:"isInternal"`
	EndDate      *string   `json:"endDate"`
}
