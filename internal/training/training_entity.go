package training

import (
	"time"

	"github.com/google/uuid"
)

type Training struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Title       string    `gorm:"type:varchar(200);not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	Department  string    `gorm:"type:varchar(100);not null;default:'All'" json:"department"`
	Position    string    `gorm:"type:varchar(100);not null;default:'All'" json:"position"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Training) TableName() string {
	return "trainings"
}
