package employee

import (
	"time"

	"github.com/google/uuid"
)

type Employee struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey"`
	UserID     *uuid.UUID `gorm:"type:uuid;uniqueIndex:uq_employees_user"` // nil for admin-created records
	Name       string     `gorm:"type:varchar(120);not null"`
	RegNo      string     `gorm:"type:varchar(50);uniqueIndex:uq_employees_reg_no;not null"`
	Department string     `gorm:"type:varchar(120)"`
	Position   string     `gorm:"type:varchar(120)"`
	JoinedOn   time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// employeeWithDocCount is the scan target for listings that carry the
// derived document count.
type employeeWithDocCount struct {
	Employee
	DocCount int64
}
