package services

import (
	"github.com/dyondem/callsheet/internal/dto"
	"github.com/dyondem/callsheet/internal/models"
)

func (s *WorkspaceService) CreateEmployee(req dto.EmployeeRequest) (models.Employee, error) {
	if req.Name == "" {
		return models.Employee{}, ErrNameRequired
	}

	emp := models.Employee{
		ID:         newID(),
		Name:       req.Name,
		Position:   req.Position,
		Department: req.Department,
		Email:      req.Email,
		Phone:      req.Phone,
		StartDate:  req.StartDate,
		Notes:      req.Notes,
	}
	doc := s.container.Current()
	doc.Employees = append(doc.Employees, emp)
	s.container.Replace(doc)
	return emp, nil
}

func (s *WorkspaceService) UpdateEmployee(id string, req dto.EmployeeRequest) (models.Employee, error) {
	if req.Name == "" {
		return models.Employee{}, ErrNameRequired
	}

	doc := s.container.Current()
	for i := range doc.Employees {
		if doc.Employees[i].ID != id {
			continue
		}
		e := &doc.Employees[i]
		e.Name = req.Name
		e.Position = req.Position
		e.Department = req.Department
		e.Email = req.Email
		e.Phone = req.Phone
		e.StartDate = req.StartDate
		e.Notes = req.Notes
		updated := *e
		s.container.Replace(doc)
		return updated, nil
	}
	return models.Employee{}, ErrNotFound
}

// DeleteEmployee removes the employee and drops them from any group
// membership in the same mutation.
func (s *WorkspaceService) DeleteEmployee(id string) error {
	doc := s.container.Current()
	idx := -1
	for i, e := range doc.Employees {
		if e.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return ErrNotFound
	}
	doc.Employees = append(doc.Employees[:idx], doc.Employees[idx+1:]...)

	for gi := range doc.Groups {
		members := doc.Groups[gi].MemberIDs
		kept := members[:0]
		for _, m := range members {
			if m != id {
				kept = append(kept, m)
			}
		}
		doc.Groups[gi].MemberIDs = kept
	}

	s.container.Replace(doc)
	return nil
}

func (s *WorkspaceService) CreateGroup(req dto.CreateGroupRequest) (models.EmployeeGroup, error) {
	if req.Name == "" {
		return models.EmployeeGroup{}, ErrNameRequired
	}

	members := req.MemberIDs
	if members == nil {
		members = []string{}
	}
	group := models.EmployeeGroup{ID: newID(), Name: req.Name, MemberIDs: members}
	doc := s.container.Current()
	doc.Groups = append(doc.Groups, group)
	s.container.Replace(doc)
	return group, nil
}

func (s *WorkspaceService) SetGroupMembers(id string, memberIDs []string) (models.EmployeeGroup, error) {
	if memberIDs == nil {
		memberIDs = []string{}
	}

	doc := s.container.Current()
	for i := range doc.Groups {
		if doc.Groups[i].ID != id {
			continue
		}
		doc.Groups[i].MemberIDs = memberIDs
		updated := doc.Groups[i]
		s.container.Replace(doc)
		return updated, nil
	}
	return models.EmployeeGroup{}, ErrNotFound
}

func (s *WorkspaceService) DeleteGroup(id string) error {
	doc := s.container.Current()
	for i, g := range doc.Groups {
		if g.ID == id {
			doc.Groups = append(doc.Groups[:i], doc.Groups[i+1:]...)
			s.container.Replace(doc)
			return nil
		}
	}
	return ErrNotFound
}

func (s *WorkspaceService) CreateContact(req dto.ContactRequest) (models.Contact, error) {
	if req.Name == "" {
		return models.Contact{}, ErrNameRequired
	}

	contact := models.Contact{
		ID:           newID(),
		Name:         req.Name,
		Organization: req.Organization,
		Email:        req.Email,
		Phone:        req.Phone,
		Notes:        req.Notes,
	}
	doc := s.container.Current()
	doc.Contacts = append(doc.Contacts, contact)
	s.container.Replace(doc)
	return contact, nil
}

func (s *WorkspaceService) UpdateContact(id string, req dto.ContactRequest) (models.Contact, error) {
	if req.Name == "" {
		return models.Contact{}, ErrNameRequired
	}

	doc := s.container.Current()
	for i := range doc.Contacts {
		if doc.Contacts[i].ID != id {
			continue
		}
		c := &doc.Contacts[i]
		c.Name = req.Name
		c.Organization = req.Organization
		c.Email = req.Email
		c.Phone = req.Phone
		c.Notes = req.Notes
		updated := *c
		s.container.Replace(doc)
		return updated, nil
	}
	return models.Contact{}, ErrNotFound
}

func (s *WorkspaceService) DeleteContact(id string) error {
	doc := s.container.Current()
	for i, c := range doc.Contacts {
		if c.ID == id {
			doc.Contacts = append(doc.Contacts[:i], doc.Contacts[i+1:]...)
			s.container.Replace(doc)
			return nil
		}
	}
	return ErrNotFound
}
