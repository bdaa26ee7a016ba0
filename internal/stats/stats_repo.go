package stats

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=stats_repo.go -destination=mock/stats_repo_mock.go -package=mock
type Repository interface {
	CountEmployees(ctx context.Context) (int64, error)
	CountTrainings(ctx context.Context) (int64, error)
	CountLeaves(ctx context.Context) (int64, error)
	CountLeavesByStatus(ctx context.Context, status string) (int64, error)
	CountDocumentsByEmployee(ctx context.Context, employeeID string) (int64, error)
	CountLeavesByEmployee(ctx context.Context, employeeID string) (int64, error)
	CountLeavesByEmployeeAndStatus(ctx context.Context, employeeID, status string) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CountEmployees(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Table("employees").Count(&n).Error
	return n, err
}

func (r *repository) CountTrainings(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Table("trainings").Count(&n).Error
	return n, err
}

func (r *repository) CountLeaves(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Table("leave_requests").Count(&n).Error
	return n, err
}

func (r *repository) CountLeavesByStatus(ctx context.Context, status string) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Table("leave_requests").Where("status = ?", status).Count(&n).Error
	return n, err
}

func (r *repository) CountDocumentsByEmployee(ctx context.Context, employeeID string) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Table("documents").Where("employee_id = ?", employeeID).Count(&n).Error
	return n, err
}

func (r *repository) CountLeavesByEmployee(ctx context.Context, employeeID string) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Table("leave_requests").Where("employee_id = ?", employeeID).Count(&n).Error
	return n, err
}

func (r *repository) CountLeavesByEmployeeAndStatus(ctx context.Context, employeeID, status string) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Table("leave_requests").
		Where("employee_id = ? AND status = ?", employeeID, status).
		Count(&n).Error
	return n, err
}
