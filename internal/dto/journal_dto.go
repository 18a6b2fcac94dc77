package dto

type SaveJournalRequest struct {
	Title               string `json:"title"`
	Content             string `json:"content"`
	EI                  int    `json:"eiRating"`
	PsychologicalSafety int    `json:"psRating"`
	Mood                int    `json:"moodRating"`
	Role                string `json:"role"`
}
