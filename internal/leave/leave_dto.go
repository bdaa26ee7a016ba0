package leave

type FileLeaveRequest struct {
	StartDate  string `json:"start_date" binding:"required"`
	EndDate    string `json:"end_date" binding:"required"`
	Reason     string `json:"reason"`
	EmployeeID string `json:"employee_id"` // admin only; employees always file for themselves
}

type ActionRequest struct {
	Action string `json:"action" binding:"required"`
}

type LeaveResponse struct {
	ID           string `json:"id"`
	EmployeeID   string `json:"employee_id"`
	EmployeeName string `json:"employee_name"`
	StartDate    string `json:"start_date"`
	EndDate      string `json:"end_date"`
	Reason       string `json:"reason"`
	Status       string `json:"status"`
	AppliedOn    string `json:"applied_on"`
}
