package leave

import (
	"context"
	"errors"
	"time"

	employeeerrors "hr-admin/internal/employee/errors"
	leaveerrors "hr-admin/internal/leave/errors"
	"hr-admin/internal/shared/principal"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

//go:generate mockgen -source=leave_service.go -destination=mock/leave_service_mock.go -package=mock
type Service interface {
	List(ctx context.Context, p principal.Principal) ([]LeaveResponse, error)
	File(ctx context.Context, p principal.Principal, req FileLeaveRequest) (LeaveResponse, error)
	Act(ctx context.Context, id, action string) (LeaveResponse, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("leave.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leave.service")
	}
	return &service{repo: repo, logger: l}
}

// List shows every request to admins and only the caller's own requests
// to employees.
func (s *service) List(ctx context.Context, p principal.Principal) ([]LeaveResponse, error) {
	var (
		rows []leaveWithEmployee
		err  error
	)

	if p.IsAdmin() {
		rows, err = s.repo.FindAllWithEmployee(ctx)
	} else {
		if p.EmployeeID == nil {
			return []LeaveResponse{}, nil
		}
		rows, err = s.repo.FindByEmployeeWithEmployee(ctx, p.EmployeeID.String())
	}
	if err != nil {
		s.logger.Error("list leave requests failed", zap.Error(err))
		return nil, err
	}

	res := make([]LeaveResponse, len(rows))
	for i, row := range rows {
		res[i] = mapToResponse(row)
	}
	return res, nil
}

func (s *service) File(ctx context.Context, p principal.Principal, req FileLeaveRequest) (LeaveResponse, error) {
	var employeeID uuid.UUID
	if p.IsAdmin() {
		if req.EmployeeID == "" {
			return LeaveResponse{}, leaveerrors.ErrMissingEmployeeID
		}
		id, err := uuid.Parse(req.EmployeeID)
		if err != nil {
			return LeaveResponse{}, employeeerrors.ErrInvalidEmployeeID
		}
		employeeID = id
	} else {
		// employees always file against their own profile
		if p.EmployeeID == nil {
			return LeaveResponse{}, employeeerrors.ErrProfileNotFound
		}
		employeeID = *p.EmployeeID
	}

	start, err := time.Parse(dateLayout, req.StartDate)
	if err != nil {
		return LeaveResponse{}, leaveerrors.ErrInvalidDateFormat
	}
	end, err := time.Parse(dateLayout, req.EndDate)
	if err != nil {
		return LeaveResponse{}, leaveerrors.ErrInvalidDateFormat
	}
	if end.Before(start) {
		return LeaveResponse{}, leaveerrors.ErrInvalidDateRange
	}

	lr := &LeaveRequest{
		ID:         uuid.New(),
		EmployeeID: employeeID,
		StartDate:  start,
		EndDate:    end,
		Reason:     req.Reason,
		Status:     StatusPending,
		AppliedOn:  time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, lr); err != nil {
		s.logger.Error("file leave request failed",
			zap.String("employee_id", employeeID.String()),
			zap.Error(err),
		)
		return LeaveResponse{}, err
	}
	s.logger.Info("leave request filed",
		zap.String("leave_id", lr.ID.String()),
		zap.String("employee_id", employeeID.String()),
	)

	return mapToResponse(leaveWithEmployee{LeaveRequest: *lr, EmployeeName: p.FullName}), nil
}

// Act decides a request: exactly "approve" approves it, anything else
// rejects it. Already-decided requests can be re-decided; the latest
// action wins.
func (s *service) Act(ctx context.Context, id, action string) (LeaveResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return LeaveResponse{}, leaveerrors.ErrInvalidLeaveID
	}

	status := StatusRejected
	if action == "approve" {
		status = StatusApproved
	}

	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LeaveResponse{}, leaveerrors.ErrLeaveNotFound
		}
		s.logger.Error("leave action failed", zap.String("leave_id", id), zap.Error(err))
		return LeaveResponse{}, err
	}
	s.logger.Info("leave request decided",
		zap.String("leave_id", id),
		zap.String("status", status),
	)

	lr, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LeaveResponse{}, leaveerrors.ErrLeaveNotFound
		}
		return LeaveResponse{}, err
	}
	return mapToResponse(leaveWithEmployee{LeaveRequest: *lr}), nil
}

func mapToResponse(row leaveWithEmployee) LeaveResponse {
	return LeaveResponse{
		ID:           row.ID.String(),
		EmployeeID:   row.EmployeeID.String(),
		EmployeeName: row.EmployeeName,
		StartDate:    row.StartDate.Format(dateLayout),
		EndDate:      row.EndDate.Format(dateLayout),
		Reason:       row.Reason,
		Status:       row.Status,
		AppliedOn:    row.AppliedOn.Format(time.RFC3339),
	}
}
