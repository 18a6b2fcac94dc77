package dto

type SaveProfileRequest struct {
	Name         string `json:"name"`
	Organization string `json:"organization"`
}

type SetActiveRoleRequest struct {
	Role string `json:"role"`
}

type CreateCustomRoleRequest struct {
	Name     string   `json:"name"`
	Features []string `json:"features"`
}
