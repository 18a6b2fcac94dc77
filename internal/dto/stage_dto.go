package dto

type CreateProductionRequest struct {
	Title       string `json:"title"`
	OpeningDate string `json:"openingDate"`
	ClosingDate string `json:"closingDate"`
	Venue       string `json:"venue"`
}

type CastCrewRequest struct {
	Name    string `json:"name"`
	Role    string `json:"role"`
	Type    string `json:"type"`
	Contact string `json:"contact"`
	Notes   string `json:"notes"`
}

type RehearsalReportRequest struct {
	Production      string `json:"production"`
	Date            string `json:"date"`
	StartTime       string `json:"startTime"`
	EndTime         string `json:"endTime"`
	ScenesWorked    string `json:"scenesWorked"`
	Attendees       string `json:"attendees"`
	Absentees       string `json:"absentees"`
	Accomplishments string `json:"accomplishments"`
	Challenges      string `json:"challenges"`
	NextTimeNotes   string `json:"notesForNextTime"`
	SafetyIncidents string `json:"safetyIncidents"`
	Morale          int    `json:"morale"`
}
