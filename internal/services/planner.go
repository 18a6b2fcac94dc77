package services

import (
	"github.com/dyondem/callsheet/internal/dto"
	"github.com/dyondem/callsheet/internal/models"
)

func (s *WorkspaceService) CreateTodo(req dto.CreateTodoRequest) (models.Todo, error) {
	if req.Text == "" {
		return models.Todo{}, ErrTextRequired
	}
	if req.Priority == "" {
		req.Priority = models.PriorityMedium
	}
	if !models.ValidPriority(req.Priority) {
		return models.Todo{}, ErrInvalidPriority
	}
	if req.Status == "" {
		req.Status = models.StatusNotStarted
	}
	if !models.ValidTodoStatus(req.Status) {
		return models.Todo{}, ErrInvalidStatus
	}

	todo := models.Todo{
		ID:        newID(),
		Text:      req.Text,
		Category:  req.Category,
		Priority:  req.Priority,
		Status:    req.Status,
		DueDate:   req.DueDate,
		Completed: req.Status == models.StatusCompleted,
	}
	doc := s.container.Current()
	doc.Todos = append(doc.Todos, todo)
	s.container.Replace(doc)
	return todo, nil
}

// SetTodoStatus updates the status and keeps the redundant completed flag in
// sync in the same mutation.
func (s *WorkspaceService) SetTodoStatus(id, status string) (models.Todo, error) {
	if !models.ValidTodoStatus(status) {
		return models.Todo{}, ErrInvalidStatus
	}

	doc := s.container.Current()
	for i := range doc.Todos {
		if doc.Todos[i].ID != id {
			continue
		}
		doc.Todos[i].Status = status
		doc.Todos[i].Completed = status == models.StatusCompleted
		updated := doc.Todos[i]
		s.container.Replace(doc)
		return updated, nil
	}
	return models.Todo{}, ErrNotFound
}

func (s *WorkspaceService) DeleteTodo(id string) error {
	doc := s.container.Current()
	for i, td := range doc.Todos {
		if td.ID == id {
			doc.Todos = append(doc.Todos[:i], doc.Todos[i+1:]...)
			s.container.Replace(doc)
			return nil
		}
	}
	return ErrNotFound
}

func (s *WorkspaceService) CreateMeeting(req dto.CreateMeetingRequest) (models.Meeting, error) {
	if req.Title == "" {
		return models.Meeting{}, ErrTitleRequired
	}
	if req.Date == "" {
		return models.Meeting{}, ErrDateRequired
	}

	meeting := models.Meeting{
		ID:        newID(),
		Title:     req.Title,
		Date:      req.Date,
		Time:      req.Time,
		Attendees: req.Attendees,
		Agenda:    req.Agenda,
		PreNotes:  req.PreNotes,
		Notes:     req.Notes,
	}
	doc := s.container.Current()
	doc.Meetings = append(doc.Meetings, meeting)
	s.container.Replace(doc)
	return meeting, nil
}

// UpdateMeetingReflection edits the post-meeting fields in place.
func (s *WorkspaceService) UpdateMeetingReflection(id string, req dto.UpdateReflectionRequest) (models.Meeting, error) {
	doc := s.container.Current()
	for i := range doc.Meetings {
		if doc.Meetings[i].ID != id {
			continue
		}
		m := &doc.Meetings[i]
		m.Reflection = req.Reflection
		m.ActionItems = req.ActionItems
		m.Notes = req.Notes
		updated := *m
		s.container.Replace(doc)
		return updated, nil
	}
	return models.Meeting{}, ErrNotFound
}

func (s *WorkspaceService) DeleteMeeting(id string) error {
	doc := s.container.Current()
	for i, m := range doc.Meetings {
		if m.ID == id {
			doc.Meetings = append(doc.Meetings[:i], doc.Meetings[i+1:]...)
			s.container.Replace(doc)
			return nil
		}
	}
	return ErrNotFound
}
