// Package services implements the form operations over the workspace
// document. Every operation validates its input, clones the current document,
// applies a copy-with-change, and hands the whole replacement back to the
// state container.
package services

import (
	"errors"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/dyondem/callsheet/internal/dto"
	"github.com/dyondem/callsheet/internal/models"
	"github.com/dyondem/callsheet/internal/state"
)

var (
	ErrNameRequired       = errors.New("name is required")
	ErrTextRequired       = errors.New("text is required")
	ErrTitleRequired      = errors.New("title is required")
	ErrContentRequired    = errors.New("content is required")
	ErrDateRequired       = errors.New("date is required")
	ErrProductionRequired = errors.New("production is required")
	ErrOrgRequired        = errors.New("organization is required")
	ErrURLRequired        = errors.New("url is required")
	ErrNotFound           = errors.New("record not found")
	ErrUnknownRole        = errors.New("unknown role")
	ErrInvalidStatus      = errors.New("invalid status")
	ErrInvalidPriority    = errors.New("invalid priority")
	ErrInvalidFeature     = errors.New("invalid feature")
	ErrInvalidMemberType  = errors.New("member type must be Cast or Crew")
	ErrBuiltinRole        = errors.New("built-in roles cannot be deleted")
)

// idSeq tie-breaks ids minted inside the same millisecond.
var idSeq atomic.Int64

// newID mints a client-style timestamp id. Ids are never reused: deletion
// leaves the sequence untouched.
func newID() string {
	return strconv.FormatInt(time.Now().UnixMilli(), 10) + "-" + strconv.FormatInt(idSeq.Add(1), 10)
}

// WorkspaceService is the single mutation surface the handlers use.
type WorkspaceService struct {
	container *state.Container
}

func NewWorkspaceService(container *state.Container) *WorkspaceService {
	return &WorkspaceService{container: container}
}

// Snapshot returns a deep copy of the current document.
func (s *WorkspaceService) Snapshot() models.Workspace {
	return s.container.Current()
}

// ReplaceDocument swaps in a caller-supplied document wholesale. Used by the
// import/export surface; the container still normalizes invariants.
func (s *WorkspaceService) ReplaceDocument(doc models.Workspace) models.Workspace {
	s.container.Replace(doc)
	return s.container.Current()
}

// SaveProfile creates the singleton profile, or updates name/organization in
// place while keeping the original creation timestamp.
func (s *WorkspaceService) SaveProfile(req dto.SaveProfileRequest) (models.UserProfile, error) {
	if req.Name == "" {
		return models.UserProfile{}, ErrNameRequired
	}
	if req.Organization == "" {
		return models.UserProfile{}, ErrOrgRequired
	}

	doc := s.container.Current()
	profile := models.UserProfile{
		Name:         req.Name,
		Organization: req.Organization,
		CreatedAt:    time.Now().UTC().Format(time.RFC3339),
	}
	if doc.User != nil {
		profile.CreatedAt = doc.User.CreatedAt
	}
	doc.User = &profile
	s.container.Replace(doc)
	return profile, nil
}

// SetActiveRole switches the visible form-set. The role must be built in or
// an existing custom role id.
func (s *WorkspaceService) SetActiveRole(role string) error {
	doc := s.container.Current()
	if !doc.ValidRole(role) {
		return ErrUnknownRole
	}
	doc.ActiveRole = role
	s.container.Replace(doc)
	return nil
}

// CreateCustomRole defines a named bundle of the generic sections.
func (s *WorkspaceService) CreateCustomRole(req dto.CreateCustomRoleRequest) (models.CustomRole, error) {
	if req.Name == "" {
		return models.CustomRole{}, ErrNameRequired
	}
	features := []string{}
	for _, f := range req.Features {
		if !models.ValidFeature(f) {
			return models.CustomRole{}, ErrInvalidFeature
		}
		features = append(features, f)
	}

	role := models.CustomRole{ID: newID(), Name: req.Name, Features: features}
	doc := s.container.Current()
	doc.CustomRoles = append(doc.CustomRoles, role)
	s.container.Replace(doc)
	return role, nil
}

// DeleteCustomRole removes a custom role. When the deleted role is currently
// active the selector falls back to ED in the same mutation.
func (s *WorkspaceService) DeleteCustomRole(id string) error {
	switch id {
	case models.RoleED, models.RolePlay, models.RoleProject:
		return ErrBuiltinRole
	}

	doc := s.container.Current()
	idx := -1
	for i, r := range doc.CustomRoles {
		if r.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return ErrNotFound
	}
	doc.CustomRoles = append(doc.CustomRoles[:idx], doc.CustomRoles[idx+1:]...)
	if doc.ActiveRole == id {
		doc.ActiveRole = models.RoleED
	}
	s.container.Replace(doc)
	return nil
}
