package salary

import (
	"time"

	"github.com/google/uuid"
)

type Salary struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	EmployeeID uuid.UUID `gorm:"type:uuid;uniqueIndex:uq_salaries_employee;not null"`
	Base       float64   `gorm:"not null;default:0"`
	Bonus      float64   `gorm:"not null;default:0"`
	Deductions float64   `gorm:"not null;default:0"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Net is derived on every read and never stored.
func (s Salary) Net() float64 {
	return s.Base + s.Bonus - s.Deductions
}
