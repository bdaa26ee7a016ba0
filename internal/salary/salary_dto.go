package salary

type SetSalaryRequest struct {
	Base       float64 `json:"base"`
	Bonus      float64 `json:"bonus"`
	Deductions float64 `json:"deductions"`
}

type SalaryResponse struct {
	Base       float64 `json:"base"`
	Bonus      float64 `json:"bonus"`
	Deductions float64 `json:"deductions"`
	Net        float64 `json:"net"`
}
