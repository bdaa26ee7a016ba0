package leave

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=leave_repo.go -destination=mock/leave_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, lr *LeaveRequest) error
	FindByID(ctx context.Context, id string) (*LeaveRequest, error)
	UpdateStatus(ctx context.Context, id, status string) error
	FindAllWithEmployee(ctx context.Context) ([]leaveWithEmployee, error)
	FindByEmployeeWithEmployee(ctx context.Context, employeeID string) ([]leaveWithEmployee, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, lr *LeaveRequest) error {
	return r.db.WithContext(ctx).Create(lr).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*LeaveRequest, error) {
	var lr LeaveRequest
	err := r.db.WithContext(ctx).First(&lr, "id = ?", id).Error
	return &lr, err
}

func (r *repository) UpdateStatus(ctx context.Context, id, status string) error {
	res := r.db.WithContext(ctx).
		Model(&LeaveRequest{}).
		Where("id = ?", id).
		Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Listings join the employee name in; requests whose employee was removed
// still show up, labelled "Unknown".
func (r *repository) FindAllWithEmployee(ctx context.Context) ([]leaveWithEmployee, error) {
	var rows []leaveWithEmployee
	query := `
SELECT
	leave_requests.*,
	COALESCE(employees.name, 'Unknown') AS employee_name
FROM leave_requests
LEFT JOIN employees ON employees.id = leave_requests.employee_id
ORDER BY leave_requests.applied_on DESC
`

	err := r.db.WithContext(ctx).Raw(query).Scan(&rows).Error
	return rows, err
}

func (r *repository) FindByEmployeeWithEmployee(ctx context.Context, employeeID string) ([]leaveWithEmployee, error) {
	var rows []leaveWithEmployee
	query := `
SELECT
	leave_requests.*,
	COALESCE(employees.name, 'Unknown') AS employee_name
FROM leave_requests
LEFT JOIN employees ON employees.id = leave_requests.employee_id
WHERE leave_requests.employee_id = ?
ORDER BY leave_requests.applied_on DESC
`

	err := r.db.WithContext(ctx).Raw(query, employeeID).Scan(&rows).Error
	return rows, err
}
