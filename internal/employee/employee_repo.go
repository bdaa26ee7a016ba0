package employee

import (
	"context"

	"hr-admin/internal/salary"

	"gorm.io/gorm"
)

//go:generate mockgen -source=employee_repo.go -destination=mock/employee_repo_mock.go -package=mock
type Repository interface {
	CreateWithSalary(ctx context.Context, e *Employee, s *salary.Salary) error
	FindAll(ctx context.Context) ([]employeeWithDocCount, error)
	FindByID(ctx context.Context, id string) (*Employee, error)
	FindByIDWithDocCount(ctx context.Context, id string) (*employeeWithDocCount, error)
	Update(ctx context.Context, e *Employee) error
	DeleteCascade(ctx context.Context, id string) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CreateWithSalary(ctx context.Context, e *Employee, s *salary.Salary) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(e).Error; err != nil {
			return err
		}
		return tx.Create(s).Error
	})
}

func (r *repository) FindAll(ctx context.Context) ([]employeeWithDocCount, error) {
	var rows []employeeWithDocCount
	query := `
SELECT
	employees.*,
	COUNT(documents.id) AS doc_count
FROM employees
LEFT JOIN documents ON documents.employee_id = employees.id
GROUP BY employees.id
ORDER BY employees.created_at ASC
`

	err := r.db.WithContext(ctx).Raw(query).Scan(&rows).Error
	return rows, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Employee, error) {
	var e Employee
	err := r.db.WithContext(ctx).First(&e, "id = ?", id).Error
	return &e, err
}

func (r *repository) FindByIDWithDocCount(ctx context.Context, id string) (*employeeWithDocCount, error) {
	var row employeeWithDocCount
	query := `
SELECT
	employees.*,
	COUNT(documents.id) AS doc_count
FROM employees
LEFT JOIN documents ON documents.employee_id = employees.id
WHERE employees.id = ?
GROUP BY employees.id
`

	res := r.db.WithContext(ctx).Raw(query, id).Scan(&row)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &row, nil
}

func (r *repository) Update(ctx context.Context, e *Employee) error {
	return r.db.WithContext(ctx).Save(e).Error
}

// DeleteCascade removes the employee and every dependent row in one
// transaction. The storage schema has no ON DELETE CASCADE, so the cascade
// is spelled out here.
func (r *repository) DeleteCascade(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec(`DELETE FROM documents WHERE employee_id = ?`, id).Error; err != nil {
			return err
		}
		if err := tx.Exec(`DELETE FROM salaries WHERE employee_id = ?`, id).Error; err != nil {
			return err
		}
		if err := tx.Exec(`DELETE FROM leave_requests WHERE employee_id = ?`, id).Error; err != nil {
			return err
		}

		res := tx.Exec(`DELETE FROM employees WHERE id = ?`, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
