package dto

type CreateResourceRequest struct {
	Title    string `json:"title"`
	URL      string `json:"url"`
	Category string `json:"category"`
	Favorite bool   `json:"favorite"`
}
