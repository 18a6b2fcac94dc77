package services

import (
	"time"

	"github.com/dyondem/callsheet/internal/dto"
	"github.com/dyondem/callsheet/internal/models"
)

func (s *WorkspaceService) CreateResource(req dto.CreateResourceRequest) (models.Resource, error) {
	if req.Title == "" {
		return models.Resource{}, ErrTitleRequired
	}
	if req.URL == "" {
		return models.Resource{}, ErrURLRequired
	}

	res := models.Resource{
		ID:        newID(),
		Title:     req.Title,
		URL:       req.URL,
		Category:  req.Category,
		Favorite:  req.Favorite,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}
	doc := s.container.Current()
	doc.Resources = append(doc.Resources, res)
	s.container.Replace(doc)
	return res, nil
}

func (s *WorkspaceService) ToggleResourceFavorite(id string) (models.Resource, error) {
	doc := s.container.Current()
	for i := range doc.Resources {
		if doc.Resources[i].ID != id {
			continue
		}
		doc.Resources[i].Favorite = !doc.Resources[i].Favorite
		updated := doc.Resources[i]
		s.container.Replace(doc)
		return updated, nil
	}
	return models.Resource{}, ErrNotFound
}

func (s *WorkspaceService) DeleteResource(id string) error {
	doc := s.container.Current()
	for i, r := range doc.Resources {
		if r.ID == id {
			doc.Resources = append(doc.Resources[:i], doc.Resources[i+1:]...)
			s.container.Replace(doc)
			return nil
		}
	}
	return ErrNotFound
}
