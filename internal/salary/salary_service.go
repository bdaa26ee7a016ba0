package salary

import (
	"context"
	"errors"

	salaryerrors "hr-admin/internal/salary/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=salary_service.go -destination=mock/salary_service_mock.go -package=mock
type Service interface {
	Get(ctx context.Context, employeeID string) (SalaryResponse, error)
	Set(ctx context.Context, employeeID string, req SetSalaryRequest) (SalaryResponse, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("salary.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("salary.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) Get(ctx context.Context, employeeID string) (SalaryResponse, error) {
	if _, err := uuid.Parse(employeeID); err != nil {
		return SalaryResponse{}, salaryerrors.ErrInvalidEmployeeID
	}

	sal, err := s.repo.FindByEmployee(ctx, employeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return SalaryResponse{}, salaryerrors.ErrSalaryNotFound
		}
		s.logger.Error("get salary failed", zap.String("employee_id", employeeID), zap.Error(err))
		return SalaryResponse{}, err
	}

	return mapToResponse(*sal), nil
}

func (s *service) Set(ctx context.Context, employeeID string, req SetSalaryRequest) (SalaryResponse, error) {
	empID, err := uuid.Parse(employeeID)
	if err != nil {
		return SalaryResponse{}, salaryerrors.ErrInvalidEmployeeID
	}

	sal := &Salary{
		ID:         uuid.New(),
		EmployeeID: empID,
		Base:       req.Base,
		Bonus:      req.Bonus,
		Deductions: req.Deductions,
	}

	if err := s.repo.Upsert(ctx, sal); err != nil {
		s.logger.Error("set salary persist failed", zap.String("employee_id", employeeID), zap.Error(err))
		return SalaryResponse{}, err
	}
	s.logger.Info("set salary success",
		zap.String("employee_id", employeeID),
		zap.Float64("net", sal.Net()),
	)

	return mapToResponse(*sal), nil
}

func mapToResponse(s Salary) SalaryResponse {
	return SalaryResponse{
		Base:       s.Base,
		Bonus:      s.Bonus,
		Deductions: s.Deductions,
		Net:        s.Net(),
	}
}
