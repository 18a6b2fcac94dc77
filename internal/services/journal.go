package services

import (
	"time"

	"github.com/dyondem/callsheet/internal/dto"
	"github.com/dyondem/callsheet/internal/models"
)

// SaveJournalEntry appends the entry and exactly one companion metric record
// carrying the same three ratings and role, in the same mutation.
func (s *WorkspaceService) SaveJournalEntry(req dto.SaveJournalRequest) (models.JournalEntry, error) {
	if req.Title == "" {
		return models.JournalEntry{}, ErrTitleRequired
	}
	if req.Content == "" {
		return models.JournalEntry{}, ErrContentRequired
	}

	doc := s.container.Current()

	role := req.Role
	if role == "" {
		role = doc.ActiveRole
	}
	if !doc.ValidRole(role) {
		return models.JournalEntry{}, ErrUnknownRole
	}

	today := time.Now().Format("2006-01-02")
	entry := models.JournalEntry{
		ID:                  newID(),
		Title:               req.Title,
		Content:             req.Content,
		EI:                  models.ClampRating(req.EI),
		PsychologicalSafety: models.ClampRating(req.PsychologicalSafety),
		Mood:                models.ClampRating(req.Mood),
		Date:                today,
		Role:                role,
	}
	metric := models.Metric{
		ID:                  newID(),
		Date:                today,
		EI:                  entry.EI,
		PsychologicalSafety: entry.PsychologicalSafety,
		Mood:                entry.Mood,
		Role:                role,
	}

	doc.JournalEntries = append(doc.JournalEntries, entry)
	doc.Metrics = append(doc.Metrics, metric)
	s.container.Replace(doc)
	return entry, nil
}

func (s *WorkspaceService) DeleteJournalEntry(id string) error {
	doc := s.container.Current()
	for i, e := range doc.JournalEntries {
		if e.ID == id {
			doc.JournalEntries = append(doc.JournalEntries[:i], doc.JournalEntries[i+1:]...)
			s.container.Replace(doc)
			return nil
		}
	}
	return ErrNotFound
}
