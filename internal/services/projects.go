package services

import (
	"github.com/dyondem/callsheet/internal/dto"
	"github.com/dyondem/callsheet/internal/models"
)

func (s *WorkspaceService) CreateProjectEvent(req dto.CreateProjectEventRequest) (models.ProjectEvent, error) {
	if req.Title == "" {
		return models.ProjectEvent{}, ErrTitleRequired
	}
	if req.Status == "" {
		req.Status = models.ProjectPlanning
	}
	if !models.ValidProjectStatus(req.Status) {
		return models.ProjectEvent{}, ErrInvalidStatus
	}

	event := models.ProjectEvent{
		ID:          newID(),
		Title:       req.Title,
		Type:        req.Type,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Budget:      req.Budget,
		Status:      req.Status,
		Description: req.Description,
		TeamMembers: req.TeamMembers,
		Goals:       req.Goals,
		Milestones:  req.Milestones,
	}
	doc := s.container.Current()
	doc.ProjectEvents = append(doc.ProjectEvents, event)
	s.container.Replace(doc)
	return event, nil
}

func (s *WorkspaceService) SetProjectStatus(id, status string) (models.ProjectEvent, error) {
	if !models.ValidProjectStatus(status) {
		return models.ProjectEvent{}, ErrInvalidStatus
	}

	doc := s.container.Current()
	for i := range doc.ProjectEvents {
		if doc.ProjectEvents[i].ID != id {
			continue
		}
		doc.ProjectEvents[i].Status = status
		updated := doc.ProjectEvents[i]
		s.container.Replace(doc)
		return updated, nil
	}
	return models.ProjectEvent{}, ErrNotFound
}

func (s *WorkspaceService) DeleteProjectEvent(id string) error {
	doc := s.container.Current()
	for i, e := range doc.ProjectEvents {
		if e.ID == id {
			doc.ProjectEvents = append(doc.ProjectEvents[:i], doc.ProjectEvents[i+1:]...)
			s.container.Replace(doc)
			return nil
		}
	}
	return ErrNotFound
}
