package dto

type CreateTodoRequest struct {
	Text     string `json:"text"`
	Category string `json:"category"`
	Priority string `json:"priority"`
	Status   string `json:"status"`
	DueDate  string `json:"dueDate"`
}

type SetTodoStatusRequest struct {
	Status string `json:"status"`
}

type CreateMeetingRequest struct {
	Title     string `json:"title"`
	Date      string `json:"date"`
	Time      string `json:"time"`
	Attendees string `json:"attendees"`
	Agenda    string `json:"agenda"`
	PreNotes  string `json:"preMeetingNotes"`
	Notes     string `json:"notes"`
}

// UpdateReflectionRequest carries the post-meeting fields edited in place.
type UpdateReflectionRequest struct {
	Reflection  string `json:"postMeetingReflection"`
	ActionItems string `json:"actionItems"`
	Notes       string `json:"notes"`
}
