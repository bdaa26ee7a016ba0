package stats

import (
	"context"

	"hr-admin/internal/shared/principal"

	"go.uber.org/zap"
)

const statusPending = "Pending"

type AdminStats struct {
	Employees     int64 `json:"employees"`
	Trainings     int64 `json:"trainings"`
	Leaves        int64 `json:"leaves"`
	PendingLeaves int64 `json:"pending_leaves"`
}

type EmployeeStats struct {
	MyDocuments   int64 `json:"my_documents"`
	MyLeaves      int64 `json:"my_leaves"`
	PendingLeaves int64 `json:"pending_leaves"`
}

//go:generate mockgen -source=stats_service.go -destination=mock/stats_service_mock.go -package=mock
type Service interface {
	Dashboard(ctx context.Context, p principal.Principal) (interface{}, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("stats.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("stats.service")
	}
	return &service{repo: repo, logger: l}
}

// Dashboard returns role-shaped counters: admins see org-wide totals,
// employees see their own.
func (s *service) Dashboard(ctx context.Context, p principal.Principal) (interface{}, error) {
	if p.IsAdmin() {
		return s.adminStats(ctx)
	}
	return s.employeeStats(ctx, p)
}

func (s *service) adminStats(ctx context.Context) (interface{}, error) {
	var (
		out AdminStats
		err error
	)

	if out.Employees, err = s.repo.CountEmployees(ctx); err != nil {
		s.logger.Error("count employees failed", zap.Error(err))
		return nil, err
	}
	if out.Trainings, err = s.repo.CountTrainings(ctx); err != nil {
		s.logger.Error("count trainings failed", zap.Error(err))
		return nil, err
	}
	if out.Leaves, err = s.repo.CountLeaves(ctx); err != nil {
		s.logger.Error("count leaves failed", zap.Error(err))
		return nil, err
	}
	if out.PendingLeaves, err = s.repo.CountLeavesByStatus(ctx, statusPending); err != nil {
		s.logger.Error("count pending leaves failed", zap.Error(err))
		return nil, err
	}

	return out, nil
}

func (s *service) employeeStats(ctx context.Context, p principal.Principal) (interface{}, error) {
	// no profile yet reads as all zeros
	if p.EmployeeID == nil {
		return EmployeeStats{}, nil
	}
	id := p.EmployeeID.String()

	var (
		out EmployeeStats
		err error
	)

	if out.MyDocuments, err = s.repo.CountDocumentsByEmployee(ctx, id); err != nil {
		s.logger.Error("count documents failed", zap.String("employee_id", id), zap.Error(err))
		return nil, err
	}
	if out.MyLeaves, err = s.repo.CountLeavesByEmployee(ctx, id); err != nil {
		s.logger.Error("count leaves failed", zap.String("employee_id", id), zap.Error(err))
		return nil, err
	}
	if out.PendingLeaves, err = s.repo.CountLeavesByEmployeeAndStatus(ctx, id, statusPending); err != nil {
		s.logger.Error("count pending leaves failed", zap.String("employee_id", id), zap.Error(err))
		return nil, err
	}

	return out, nil
}
