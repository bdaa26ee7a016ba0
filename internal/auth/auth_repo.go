package auth

import (
	"context"

	"hr-admin/internal/employee"
	"hr-admin/internal/salary"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=auth_repo.go -destination=mock/auth_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, user *User) error
	// CreateWithProfile persists the user plus the auto-provisioned employee
	// record and its zero salary in a single transaction.
	CreateWithProfile(ctx context.Context, user *User, emp *employee.Employee, sal *salary.Salary) error
	GetByUsername(ctx context.Context, username string) (*User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*User, error)
	FindEmployeeIDByUser(ctx context.Context, userID uuid.UUID) (*uuid.UUID, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, user *User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *repository) CreateWithProfile(ctx context.Context, user *User, emp *employee.Employee, sal *salary.Salary) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}
		if err := tx.Create(emp).Error; err != nil {
			return err
		}
		return tx.Create(sal).Error
	})
}

func (r *repository) GetByUsername(ctx context.Context, username string) (*User, error) {
	var user User
	err := r.db.WithContext(ctx).Where("username = ?", username).First(&user).Error
	return &user, err
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*User, error) {
	var user User
	err := r.db.WithContext(ctx).First(&user, "id = ?", id).Error
	return &user, err
}

func (r *repository) FindEmployeeIDByUser(ctx context.Context, userID uuid.UUID) (*uuid.UUID, error) {
	var id uuid.UUID
	res := r.db.WithContext(ctx).
		Table("employees").
		Select("id").
		Where("user_id = ?", userID).
		Limit(1).
		Scan(&id)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}
	return &id, nil
}
