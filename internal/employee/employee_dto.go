package employee

type CreateEmployeeRequest struct {
	Name       string `json:"name" binding:"required"`
	RegNo      string `json:"reg_no" binding:"required"`
	Department string `json:"department"`
	Position   string `json:"position"`
}

// UpdateEmployeeRequest carries partial fields; nil means "leave unchanged".
type UpdateEmployeeRequest struct {
	Name       *string `json:"name"`
	Department *string `json:"department"`
	Position   *string `json:"position"`
}

type EmployeeResponse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	RegNo      string `json:"reg_no"`
	Department string `json:"department"`
	Position   string `json:"position"`
	JoinedOn   string `json:"joined_on"`
	DocCount   int64  `json:"doc_count"`
}

type SalaryBreakdown struct {
	Base       float64 `json:"base"`
	Bonus      float64 `json:"bonus"`
	Deductions float64 `json:"deductions"`
	Net        float64 `json:"net"`
}

// ProfileResponse is the self-service view: the employee record plus its
// salary breakdown (zeros when no salary row exists).
type ProfileResponse struct {
	EmployeeResponse
	Salary SalaryBreakdown `json:"salary"`
}
