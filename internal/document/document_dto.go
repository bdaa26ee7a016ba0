package document

type DocumentResponse struct {
	ID         string `json:"id"`
	Filename   string `json:"filename"`
	EmployeeID string `json:"employee_id"`
	UploadedOn string `json:"uploaded_on"`
}
