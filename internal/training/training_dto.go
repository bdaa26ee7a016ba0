package training

type CreateTrainingRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Department  string `json:"department"`
	Position    string `json:"position"`
}

type TrainingResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Department  string `json:"department"`
	Position    string `json:"position"`
	CreatedAt   string `json:"created_at"`
}
