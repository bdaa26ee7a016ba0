package salary

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=salary_repo.go -destination=mock/salary_repo_mock.go -package=mock
type Repository interface {
	FindByEmployee(ctx context.Context, employeeID string) (*Salary, error)
	Upsert(ctx context.Context, s *Salary) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindByEmployee(ctx context.Context, employeeID string) (*Salary, error) {
	var s Salary
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		First(&s).Error
	return &s, err
}

// Upsert overwrites all three components when a row already exists for the
// employee, otherwise inserts one.
func (r *repository) Upsert(ctx context.Context, s *Salary) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "employee_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"base", "bonus", "deductions", "updated_at"}),
	}).Create(s).Error
}
