package document

import (
	"time"

	"github.com/google/uuid"
)

type Document struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	EmployeeID uuid.UUID `gorm:"type:uuid;index;not null"`
	Filename   string    `gorm:"type:varchar(255);not null"`
	UploadedOn time.Time
}
