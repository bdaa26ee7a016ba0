package leave

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusPending  = "Pending"
	StatusApproved = "Approved"
	StatusRejected = "Rejected"
)

type LeaveRequest struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	EmployeeID uuid.UUID `gorm:"type:uuid;not null;index" json:"employee_id"`
	StartDate  time.Time `gorm:"type:date;not null" json:"start_date"`
	EndDate    time.Time `gorm:"type:date;not null" json:"end_date"`
	Reason     string    `gorm:"type:text" json:"reason"`
	Status     string    `gorm:"type:varchar(20);not null;default:'Pending'" json:"status"`
	AppliedOn  time.Time `gorm:"autoCreateTime" json:"applied_on"`
}

func (LeaveRequest) TableName() string {
	return "leave_requests"
}

// leaveWithEmployee carries the joined employee name for listings.
type leaveWithEmployee struct {
	LeaveRequest
	EmployeeName string `gorm:"column:employee_name"`
}
