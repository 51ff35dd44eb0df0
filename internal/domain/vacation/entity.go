package vacation

import "time"

type Type string

const (
	TypeVacationUnpaid Type = "vacation_unpaid"
	TypeVacationPaid   Type = "vacation_paid"
	TypeSickUnpaid     Type = "sick_unpaid"
	TypeSickPaid       Type = "sick_paid"
)

// Paid reports whether the type counts against a yearly entitlement cap.
func (t Type) Paid() bool {
	return t == TypeVacationPaid || t == TypeSickPaid
}

// Describe returns the human wording used in notifications.
func (t Type) Describe() string {
	switch t {
	case TypeVacationPaid:
		return "vacation (paid)"
	case TypeSickUnpaid:
		return "sick (non-paid)"
	case TypeSickPaid:
		return "sick (paid)"
	default:
		return "vacation (non-paid)"
	}
}

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// Vacation entity - a leave request for a single day.
type Vacation struct {
	ID     string
	UserID string
	Date   time.Time
	Type   Type
	Status Status
	Desc   string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Requester is the joined user info shown on pending requests.
type Requester struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	LastName string  `json:"lastName"`
	Avatar   string  `json:"avatar"`
	Slack    *string `json:"slack,omitempty"`
}

// WithRequester pairs a vacation with its requester for listings.
type WithRequester struct {
	Vacation
	User Requester `json:"user"`
}
