package employee

import (
	"context"
	"errors"
	"time"

	employeeerrors "hr-admin/internal/employee/errors"
	"hr-admin/internal/salary"
	"hr-admin/internal/shared/principal"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	List(ctx context.Context) ([]EmployeeResponse, error)
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	Update(ctx context.Context, id string, req UpdateEmployeeRequest) (EmployeeResponse, error)
	Delete(ctx context.Context, id string) error
	GetProfile(ctx context.Context, p principal.Principal) (ProfileResponse, error)
}

type service struct {
	repo       Repository
	salaryRepo salary.Repository
	logger     *zap.Logger
}

func NewService(repo Repository, salaryRepo salary.Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{repo: repo, salaryRepo: salaryRepo, logger: l}
}

func (s *service) List(ctx context.Context) ([]EmployeeResponse, error) {
	rows, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("list employees failed", zap.Error(err))
		return nil, err
	}

	return mapToListResponse(rows), nil
}

func (s *service) Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error) {
	s.logger.Debug("create employee requested",
		zap.String("name", req.Name),
		zap.String("reg_no", req.RegNo),
	)

	e := &Employee{
		ID:         uuid.New(),
		Name:       req.Name,
		RegNo:      req.RegNo,
		Department: req.Department,
		Position:   req.Position,
		JoinedOn:   time.Now().UTC(),
	}
	// every employee starts with a zero-valued salary row
	sal := &salary.Salary{
		ID:         uuid.New(),
		EmployeeID: e.ID,
	}

	if err := s.repo.CreateWithSalary(ctx, e, sal); err != nil {
		s.logger.Error("create employee persist failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}
	s.logger.Info("create employee success",
		zap.String("employee_id", e.ID.String()),
		zap.String("reg_no", e.RegNo),
	)

	return mapToResponse(employeeWithDocCount{Employee: *e}), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateEmployeeRequest) (EmployeeResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidEmployeeID
	}

	e, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	// only provided fields change
	if req.Name != nil {
		e.Name = *req.Name
	}
	if req.Department != nil {
		e.Department = *req.Department
	}
	if req.Position != nil {
		e.Position = *req.Position
	}

	if err := s.repo.Update(ctx, e); err != nil {
		s.logger.Error("update employee persist failed", zap.String("employee_id", id), zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}
	s.logger.Info("update employee success", zap.String("employee_id", id))

	row, err := s.repo.FindByIDWithDocCount(ctx, id)
	if err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*row), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return employeeerrors.ErrInvalidEmployeeID
	}

	if err := s.repo.DeleteCascade(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return employeeerrors.ErrEmployeeNotFound
		}
		s.logger.Error("delete employee failed", zap.String("employee_id", id), zap.Error(err))
		return err
	}
	s.logger.Info("delete employee success", zap.String("employee_id", id))
	return nil
}

func (s *service) GetProfile(ctx context.Context, p principal.Principal) (ProfileResponse, error) {
	if p.EmployeeID == nil {
		return ProfileResponse{}, employeeerrors.ErrProfileNotFound
	}

	row, err := s.repo.FindByIDWithDocCount(ctx, p.EmployeeID.String())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ProfileResponse{}, employeeerrors.ErrProfileNotFound
		}
		return ProfileResponse{}, err
	}

	// a missing salary row reads as all zeros, not an error
	breakdown := SalaryBreakdown{}
	sal, err := s.salaryRepo.FindByEmployee(ctx, p.EmployeeID.String())
	if err == nil {
		breakdown = SalaryBreakdown{
			Base:       sal.Base,
			Bonus:      sal.Bonus,
			Deductions: sal.Deductions,
			Net:        sal.Net(),
		}
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return ProfileResponse{}, err
	}

	return ProfileResponse{
		EmployeeResponse: mapToResponse(*row),
		Salary:           breakdown,
	}, nil
}

func mapToResponse(row employeeWithDocCount) EmployeeResponse {
	return EmployeeResponse{
		ID:         row.ID.String(),
		Name:       row.Name,
		RegNo:      row.RegNo,
		Department: row.Department,
		Position:   row.Position,
		JoinedOn:   row.JoinedOn.Format("2006-01-02"),
		DocCount:   row.DocCount,
	}
}

func mapToListResponse(rows []employeeWithDocCount) []EmployeeResponse {
	res := make([]EmployeeResponse, len(rows))
	for i, row := range rows {
		res[i] = mapToResponse(row)
	}
	return res
}
