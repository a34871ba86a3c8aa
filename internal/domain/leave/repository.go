package leave

import "context"

type LeaveRequestRepository interface {
	Create(ctx context.Context, request LeaveRequest) (LeaveRequest, error)
	GetByID(ctx context.Context, id string) (LeaveRequest, error)
	UpdateStatus(ctx context.Context, id string, status Status, reviewedBy string, rejectionReason *string) error
	List(ctx context.Context, filter ListFilter) ([]LeaveRequest, int64, error)
}

type LeaveService interface {
	Create(ctx context.Context, req CreateLeaveRequest) (LeaveResponse, error)
	Approve(ctx context.Context, leaveRequestID string) (LeaveResponse, error)
	Reject(ctx context.Context, req RejectLeaveRequest) (LeaveResponse, error)
	ListMine(ctx context.Context, filter ListFilter) ([]LeaveResponse, int64, error)
	ListAll(ctx context.Context, filter ListFilter) ([]LeaveResponse, int64, error)
}
