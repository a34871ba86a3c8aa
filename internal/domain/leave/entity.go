package leave

import "time"

type LeaveRequest struct {
	ID              string
	UserID          string
	LeaveType       LeaveType
	StartDate       time.Time
	EndDate         time.Time
	Reason          string
	Status          Status
	ReviewedBy      *string
	ReviewedAt      *time.Time
	RejectionReason *string
	CreatedAt       time.Time
	UpdatedAt       time.Time

	// DTO / Join
	UserName *string
}

type LeaveType string

const (
	LeaveTypeAnnual LeaveType = "annual"
	LeaveTypeSick   LeaveType = "sick"
	LeaveTypeUnpaid LeaveType = "unpaid"
)

var LeaveTypeValues = []string{
	string(LeaveTypeAnnual),
	string(LeaveTypeSick),
	string(LeaveTypeUnpaid),
}

type Status string

const (
	StatusWaitingApproval Status = "waiting_approval"
	StatusApproved        Status = "approved"
	StatusRejected        Status = "rejected"
)
