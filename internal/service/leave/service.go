package leave

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-chi/jwtauth/v5"
	"github.com/jackc/pgx/v5"
	"github.com/shiftdesk/shiftdesk-backend-go/internal/domain/leave"
	"github.com/shiftdesk/shiftdesk-backend-go/internal/pkg/database"
	"github.com/shiftdesk/shiftdesk-backend-go/internal/pkg/validator"
)

type leaveServiceImpl struct {
	db        *database.DB
	leaveRepo leave.LeaveRequestRepository
}

func NewLeaveService(db *database.DB, leaveRepo leave.LeaveRequestRepository) leave.LeaveService {
	return &leaveServiceImpl{
		db:        db,
		leaveRepo: leaveRepo,
	}
}

func userIDFromClaims(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}
	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", fmt.Errorf("user_id claim is missing or invalid")
	}
	return userID, nil
}

// Create implements leave.LeaveService.
func (s *leaveServiceImpl) Create(ctx context.Context, req leave.CreateLeaveRequest) (leave.LeaveResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveResponse{}, err
	}

	userID, err := userIDFromClaims(ctx)
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	startDate, _ := validator.IsValidDate(req.StartDate)
	endDate, _ := validator.IsValidDate(req.EndDate)

	created, err := s.leaveRepo.Create(ctx, leave.LeaveRequest{
		UserID:    userID,
		LeaveType: leave.LeaveType(req.LeaveType),
		StartDate: startDate,
		EndDate:   endDate,
		Reason:    req.Reason,
		Status:    leave.StatusWaitingApproval,
	})
	if err != nil {
		return leave.LeaveResponse{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	return leave.NewLeaveResponse(created), nil
}

// Approve implements leave.LeaveService.
func (s *leaveServiceImpl) Approve(ctx context.Context, leaveRequestID string) (leave.LeaveResponse, error) {
	return s.review(ctx, leaveRequestID, leave.StatusApproved, nil)
}

// Reject implements leave.LeaveService.
func (s *leaveServiceImpl) Reject(ctx context.Context, req leave.RejectLeaveRequest) (leave.LeaveResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveResponse{}, err
	}
	return s.review(ctx, req.LeaveRequestID, leave.StatusRejected, &req.RejectionReason)
}

func (s *leaveServiceImpl) review(ctx context.Context, id string, status leave.Status, rejectionReason *string) (leave.LeaveResponse, error) {
	reviewerID, err := userIDFromClaims(ctx)
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	current, err := s.leaveRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.LeaveResponse{}, leave.ErrLeaveRequestNotFound
		}
		return leave.LeaveResponse{}, fmt.Errorf("failed to get leave request: %w", err)
	}

	if current.Status != leave.StatusWaitingApproval {
		return leave.LeaveResponse{}, leave.ErrLeaveRequestAlreadyProcessed
	}

	if err := s.leaveRepo.UpdateStatus(ctx, id, status, reviewerID, rejectionReason); err != nil {
		return leave.LeaveResponse{}, fmt.Errorf("failed to update leave request: %w", err)
	}

	updated, err := s.leaveRepo.GetByID(ctx, id)
	if err != nil {
		return leave.LeaveResponse{}, fmt.Errorf("failed to reload leave request: %w", err)
	}

	return leave.NewLeaveResponse(updated), nil
}

// ListMine implements leave.LeaveService.
func (s *leaveServiceImpl) ListMine(ctx context.Context, filter leave.ListFilter) ([]leave.LeaveResponse, int64, error) {
	userID, err := userIDFromClaims(ctx)
	if err != nil {
		return nil, 0, err
	}
	filter.UserID = userID
	return s.list(ctx, filter)
}

// ListAll implements leave.LeaveService.
func (s *leaveServiceImpl) ListAll(ctx context.Context, filter leave.ListFilter) ([]leave.LeaveResponse, int64, error) {
	return s.list(ctx, filter)
}

func (s *leaveServiceImpl) list(ctx context.Context, filter leave.ListFilter) ([]leave.LeaveResponse, int64, error) {
	requests, total, err := s.leaveRepo.List(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list leave requests: %w", err)
	}

	responses := make([]leave.LeaveResponse, 0, len(requests))
	for _, lr := range requests {
		responses = append(responses, leave.NewLeaveResponse(lr))
	}
	return responses, total, nil
}
