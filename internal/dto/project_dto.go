package dto

type CreateProjectEventRequest struct {
	Title       string `json:"title"`
	Type        string `json:"type"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Budget      string `json:"budget"`
	Status      string `json:"status"`
	Description string `json:"description"`
	TeamMembers string `json:"teamMembers"`
	Goals       string `json:"goals"`
	Milestones  string `json:"milestones"`
}

type SetProjectStatusRequest struct {
	Status string `json:"status"`
}
