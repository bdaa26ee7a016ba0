package counter

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// RegistrationCounter backs auto-issued registration numbers. One row per
// scope ("employee_reg_no" today).
type RegistrationCounter struct {
	Scope     string `gorm:"type:varchar(50);primaryKey"`
	LastValue int64  `gorm:"not null;default:0"`
	UpdatedAt time.Time
}

func (RegistrationCounter) TableName() string {
	return "registration_counters"
}

//go:generate mockgen -destination=mock/counter_repo_mock.go -package=mock . Repository
type Repository interface {
	GetNextValue(ctx context.Context, scope string) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetNextValue(ctx context.Context, scope string) (int64, error) {
	var nextValue int64

	// Atomic UPSERT and increment so concurrent registrations never reuse a value
	err := r.db.WithContext(ctx).Raw(`
		INSERT INTO registration_counters (scope, last_value, updated_at)
		VALUES (?, 1, now())
		ON CONFLICT (scope) DO UPDATE
		SET last_value = registration_counters.last_value + 1, updated_at = now()
		RETURNING last_value
	`, scope).Scan(&nextValue).Error

	if err != nil {
		return 0, err
	}

	return nextValue, nil
}
