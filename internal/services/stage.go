package services

import (
	"github.com/dyondem/callsheet/internal/dto"
	"github.com/dyondem/callsheet/internal/models"
)

func (s *WorkspaceService) CreateProduction(req dto.CreateProductionRequest) (models.Production, error) {
	if req.Title == "" {
		return models.Production{}, ErrTitleRequired
	}

	prod := models.Production{
		ID:          newID(),
		Title:       req.Title,
		OpeningDate: req.OpeningDate,
		ClosingDate: req.ClosingDate,
		Venue:       req.Venue,
	}
	doc := s.container.Current()
	doc.Productions = append(doc.Productions, prod)
	s.container.Replace(doc)
	return prod, nil
}

// DeleteProduction removes the production and cascades to every cast/crew row
// referencing it, atomically within one replace.
func (s *WorkspaceService) DeleteProduction(id string) error {
	doc := s.container.Current()
	idx := -1
	for i, p := range doc.Productions {
		if p.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return ErrNotFound
	}
	doc.Productions = append(doc.Productions[:idx], doc.Productions[idx+1:]...)

	kept := doc.CastCrew[:0]
	for _, m := range doc.CastCrew {
		if m.ProductionID != id {
			kept = append(kept, m)
		}
	}
	doc.CastCrew = kept

	s.container.Replace(doc)
	return nil
}

func (s *WorkspaceService) AddCastCrew(productionID string, req dto.CastCrewRequest) (models.CastCrewMember, error) {
	if req.Name == "" {
		return models.CastCrewMember{}, ErrNameRequired
	}
	if req.Type == "" {
		req.Type = models.MemberTypeCast
	}
	if req.Type != models.MemberTypeCast && req.Type != models.MemberTypeCrew {
		return models.CastCrewMember{}, ErrInvalidMemberType
	}

	doc := s.container.Current()
	if !doc.HasProduction(productionID) {
		return models.CastCrewMember{}, ErrNotFound
	}

	member := models.CastCrewMember{
		ID:           newID(),
		ProductionID: productionID,
		Name:         req.Name,
		Role:         req.Role,
		Type:         req.Type,
		Contact:      req.Contact,
		Notes:        req.Notes,
	}
	doc.CastCrew = append(doc.CastCrew, member)
	s.container.Replace(doc)
	return member, nil
}

func (s *WorkspaceService) DeleteCastCrew(id string) error {
	doc := s.container.Current()
	for i, m := range doc.CastCrew {
		if m.ID == id {
			doc.CastCrew = append(doc.CastCrew[:i], doc.CastCrew[i+1:]...)
			s.container.Replace(doc)
			return nil
		}
	}
	return ErrNotFound
}

func (s *WorkspaceService) CreateRehearsalReport(req dto.RehearsalReportRequest) (models.RehearsalReport, error) {
	if req.Production == "" {
		return models.RehearsalReport{}, ErrProductionRequired
	}
	if req.Date == "" {
		return models.RehearsalReport{}, ErrDateRequired
	}

	report := models.RehearsalReport{
		ID:              newID(),
		Production:      req.Production,
		Date:            req.Date,
		StartTime:       req.StartTime,
		EndTime:         req.EndTime,
		ScenesWorked:    req.ScenesWorked,
		Attendees:       req.Attendees,
		Absentees:       req.Absentees,
		Accomplishments: req.Accomplishments,
		Challenges:      req.Challenges,
		NextTimeNotes:   req.NextTimeNotes,
		SafetyIncidents: req.SafetyIncidents,
		Morale:          models.ClampRating(req.Morale),
	}
	doc := s.container.Current()
	doc.RehearsalReports = append(doc.RehearsalReports, report)
	s.container.Replace(doc)
	return report, nil
}

func (s *WorkspaceService) DeleteRehearsalReport(id string) error {
	doc := s.container.Current()
	for i, r := range doc.RehearsalReports {
		if r.ID == id {
			doc.RehearsalReports = append(doc.RehearsalReports[:i], doc.RehearsalReports[i+1:]...)
			s.container.Replace(doc)
			return nil
		}
	}
	return ErrNotFound
}
