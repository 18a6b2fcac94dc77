package dto

type ErrorResponse struct {
	Error   bool   `json:"error"`
	Message string `json:"message"`
}

type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Backend   string `json:"backend"`
	Store     string `json:"store"`
}

// DeletedResponse confirms a destructive action.
type DeletedResponse struct {
	Deleted bool   `json:"deleted"`
	ID      string `json:"id"`
}
