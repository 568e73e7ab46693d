package attendance

import (
	"time"

	"github.com/darasa-app/darasa/core"
)

// Request statuses. A request starts out pending and ends up either
// approved or rejected; neither terminal state transitions further.
type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// Request is a student's attendance-exception request for a date range.
type Request struct {
	ID             string               `json:"id"`
	StudentName    string               `json:"student_name"`
	StudentID      string               `json:"student_id"`
	Reason         string               `json:"reason"`
	StartDate      time.Time            `json:"start_date"`
	EndDate        time.Time            `json:"end_date"`
	SupportingDocs []core.ReferenceFile `json:"supporting_docs,omitempty"`
	Status         Status               `json:"status"`
	Comments       string               `json:"comments,omitempty"` // reviewer's comments
	CreatedAt      time.Time            `json:"created_at"`         // UTC
	UpdatedAt      time.Time            `json:"updated_at"`         // UTC
}

// NewRequest contains information needed to file a new Request.
type NewRequest struct {
	StudentName    string               `json:"student_name" validate:"required"`
	StudentID      string               `json:"student_id" validate:"required"`
	Reason         string               `json:"reason" validate:"required"`
	StartDate      time.Time            `json:"start_date" validate:"required"`
	EndDate        time.Time            `json:"end_date" validate:"required,gtefield=StartDate"`
	SupportingDocs []core.ReferenceFile `json:"supporting_docs"`
}

func (nr *NewRequest) Validate() error {
	nr.StudentName = core.CleanString(nr.StudentName)
	nr.StudentID = core.CleanString(nr.StudentID)
	nr.Reason = core.CleanString(nr.Reason)
	return core.Validate.Struct(nr)
}

// StatusUpdate is a reviewer's decision on a pending Request.
type StatusUpdate struct {
	Status   Status `json:"status" validate:"required,oneof=approved rejected"`
	Comments string `json:"comments"`
}

func (su *StatusUpdate) Validate() error {
	su.Comments = core.CleanString(su.Comments)
	return core.Validate.Struct(su)
}

type StatusCounts struct {
	Pending  int `json:"pending"`
	Approved int `json:"approved"`
	Rejected int `json:"rejected"`
}

// CountByStatus tallies requests per status. Pure; used by the dashboard.
func CountByStatus(requests []Request) StatusCounts {
	var counts StatusCounts
	for _, req := range requests {
		switch req.Status {
		case StatusPending:
			counts.Pending++
		case StatusApproved:
			counts.Approved++
		case StatusRejected:
			counts.Rejected++
		}
	}
	return counts
}
