package models

import "encoding/json"

// SchemaVersion tags the persisted workspace blob so future shape changes
// can migrate older exports.
const SchemaVersion = 1

// Built-in roles. Anything else stored in ActiveRole is a custom role id.
const (
	RoleED      = "ED"
	RolePlay    = "Play"
	RoleProject = "Project"
)

// Todo priorities.
const (
	PriorityLow    = "Low"
	PriorityMedium = "Medium"
	PriorityHigh   = "High"
	PriorityUrgent = "Urgent"
)

// Todo statuses.
const (
	StatusNotStarted = "Not Started"
	StatusInProgress = "In Progress"
	StatusCompleted  = "Completed"
	StatusOnHold     = "On Hold"
)

// Project event statuses.
const (
	ProjectPlanning   = "Planning"
	ProjectInProgress = "In Progress"
	ProjectCompleted  = "Completed"
	ProjectOnHold     = "On Hold"
)

// Cast/crew member types.
const (
	MemberTypeCast = "Cast"
	MemberTypeCrew = "Crew"
)

// Features a custom role can bundle.
const (
	FeatureTeam     = "team"
	FeatureGroups   = "groups"
	FeatureTodos    = "todos"
	FeatureMeetings = "meetings"
	FeatureContacts = "contacts"
)

// AllFeatures is the fixed set a custom role's feature list must be drawn from.
var AllFeatures = []string{FeatureTeam, FeatureGroups, FeatureTodos, FeatureMeetings, FeatureContacts}

func ValidFeature(f string) bool {
	for _, known := range AllFeatures {
		if f == known {
			return true
		}
	}
	return false
}

func ValidTodoStatus(s string) bool {
	switch s {
	case StatusNotStarted, StatusInProgress, StatusCompleted, StatusOnHold:
		return true
	}
	return false
}

func ValidPriority(p string) bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}

func ValidProjectStatus(s string) bool {
	switch s {
	case ProjectPlanning, ProjectInProgress, ProjectCompleted, ProjectOnHold:
		return true
	}
	return false
}

// Workspace is the single aggregate document holding all application data.
// It is replaced wholesale on every mutation and serialized as one JSON blob.
type Workspace struct {
	SchemaVersion    int               `json:"schemaVersion"`
	User             *UserProfile      `json:"user"`
	ActiveRole       string            `json:"activeRole"`
	CustomRoles      []CustomRole      `json:"customRoles"`
	Employees        []Employee        `json:"employees"`
	Groups           []EmployeeGroup   `json:"groups"`
	Todos            []Todo            `json:"todos"`
	Meetings         []Meeting         `json:"meetings"`
	Contacts         []Contact         `json:"contacts"`
	JournalEntries   []JournalEntry    `json:"journalEntries"`
	Metrics          []Metric          `json:"metrics"`
	RehearsalReports []RehearsalReport `json:"rehearsalReports"`
	Productions      []Production      `json:"productions"`
	CastCrew         []CastCrewMember  `json:"castCrew"`
	ProjectEvents    []ProjectEvent    `json:"projectEvents"`
	Resources        []Resource        `json:"resources"`
}

// UserProfile is a singleton; its presence gates the data-dependent views.
type UserProfile struct {
	Name         string `json:"name"`
	Organization string `json:"organization"`
	CreatedAt    string `json:"createdAt"`
}

// CustomRole bundles a subset of the generic sections under a user-defined name.
type CustomRole struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Features []string `json:"features"`
}

type Employee struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Position   string `json:"position"`
	Department string `json:"department"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	StartDate  string `json:"startDate"`
	Notes      string `json:"notes"`
}

// EmployeeGroup holds membership only; ordering carries no meaning.
type EmployeeGroup struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	MemberIDs []string `json:"memberIds"`
}

// Todo keeps Completed stored redundantly alongside Status; the two are kept
// in sync at the replace boundary.
type Todo struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Category  string `json:"category"`
	Priority  string `json:"priority"`
	Status    string `json:"status"`
	DueDate   string `json:"dueDate"`
	Completed bool   `json:"completed"`
}

type Meeting struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Attendees   string `json:"attendees"`
	Agenda      string `json:"agenda"`
	PreNotes    string `json:"preMeetingNotes"`
	Reflection  string `json:"postMeetingReflection"`
	ActionItems string `json:"actionItems"`
	Notes       string `json:"notes"`
}

type Contact struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Organization string `json:"organization"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Notes        string `json:"notes"`
}

// JournalEntry ratings are 1-5; saving an entry also appends a Metric with
// the same three values.
type JournalEntry struct {
	ID                  string `json:"id"`
	Title               string `json:"title"`
	Content             string `json:"content"`
	EI                  int    `json:"eiRating"`
	PsychologicalSafety int    `json:"psRating"`
	Mood                int    `json:"moodRating"`
	Date                string `json:"date"`
	Role                string `json:"role"`
}

// Metric is an append-only time-series point, filtered by role for charting.
type Metric struct {
	ID                  string `json:"id"`
	Date                string `json:"date"`
	EI                  int    `json:"eiRating"`
	PsychologicalSafety int    `json:"psRating"`
	Mood                int    `json:"moodRating"`
	Role                string `json:"role"`
}

type RehearsalReport struct {
	ID              string `json:"id"`
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

type Production struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	OpeningDate string `json:"openingDate"`
	ClosingDate string `json:"closingDate"`
	Venue       string `json:"venue"`
}

// CastCrewMember rows reference a production; deleting the production removes
// them in the same mutation.
type CastCrewMember struct {
	ID           string `json:"id"`
	ProductionID string `json:"productionId"`
	Name         string `json:"name"`
	Role         string `json:"role"`
	Type         string `json:"type"`
	Contact      string `json:"contact"`
	Notes        string `json:"notes"`
}

type ProjectEvent struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Type        string `json:"type"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Budget      string `json:"budget"`
	Status      string `json:"status"`
	Description string `json:"description"`
	TeamMembers string `json:"teamMembers"`
	Goals       string `json:"goals"`
	Milestones  string `json:"milestones"`
}

type Resource struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	URL       string `json:"url"`
	Category  string `json:"category"`
	Favorite  bool   `json:"favorite"`
	CreatedAt string `json:"createdAt"`
}

// seedTimestamp is fixed so the seeded document is identical across runs.
const seedTimestamp = "2024-01-01T00:00:00Z"

// DefaultWorkspace builds the seeded document used when no persisted state
// exists: empty collections, no user, active role ED, two starter resources.
func DefaultWorkspace() Workspace {
	return Workspace{
		SchemaVersion:    SchemaVersion,
		ActiveRole:       RoleED,
		CustomRoles:      []CustomRole{},
		Employees:        []Employee{},
		Groups:           []EmployeeGroup{},
		Todos:            []Todo{},
		Meetings:         []Meeting{},
		Contacts:         []Contact{},
		JournalEntries:   []JournalEntry{},
		Metrics:          []Metric{},
		RehearsalReports: []RehearsalReport{},
		Productions:      []Production{},
		CastCrew:         []CastCrewMember{},
		ProjectEvents:    []ProjectEvent{},
		Resources: []Resource{
			{
				ID:        "seed-resource-1",
				Title:     "Artistic Leadership in the 21st Century",
				URL:       "https://howlround.com/artistic-leadership",
				Category:  "Articles",
				CreatedAt: seedTimestamp,
			},
			{
				ID:        "seed-resource-2",
				Title:     "Theatre Communications Group",
				URL:       "https://www.tcg.org",
				Category:  "Organizations",
				CreatedAt: seedTimestamp,
			},
		},
	}
}

// Clone returns a deep copy via a JSON round-trip. The document is small and
// serialized wholesale on every save anyway, so this stays the simplest
// correct copy.
func (w Workspace) Clone() Workspace {
	raw, err := json.Marshal(w)
	if err != nil {
		// Workspace contains only JSON-safe fields; Marshal cannot fail on it.
		panic(err)
	}
	var out Workspace
	if err := json.Unmarshal(raw, &out); err != nil {
		panic(err)
	}
	return out
}

// ClampRating forces a 1-5 rating into range.
func ClampRating(r int) int {
	if r < 1 {
		return 1
	}
	if r > 5 {
		return 5
	}
	return r
}

// HasProduction reports whether a production with the given id exists.
func (w Workspace) HasProduction(id string) bool {
	for _, p := range w.Productions {
		if p.ID == id {
			return true
		}
	}
	return false
}

// HasCustomRole reports whether a custom role with the given id exists.
func (w Workspace) HasCustomRole(id string) bool {
	for _, r := range w.CustomRoles {
		if r.ID == id {
			return true
		}
	}
	return false
}

// ValidRole reports whether role is a built-in role or an existing custom role.
func (w Workspace) ValidRole(role string) bool {
	switch role {
	case RoleED, RolePlay, RoleProject:
		return true
	}
	return w.HasCustomRole(role)
}

// Normalize enforces the document invariants that must hold after every
// mutation, regardless of what the caller assembled:
//
//   - a todo's completed flag mirrors status == Completed
//   - all 1-5 ratings are clamped into range
//   - cast/crew rows whose production no longer exists are pruned
//   - an active role naming a missing custom role resets to ED
func (w *Workspace) Normalize() {
	if w.SchemaVersion == 0 {
		w.SchemaVersion = SchemaVersion
	}
	if w.ActiveRole == "" || !w.ValidRole(w.ActiveRole) {
		w.ActiveRole = RoleED
	}

	for i := range w.Todos {
		w.Todos[i].Completed = w.Todos[i].Status == StatusCompleted
	}

	for i := range w.JournalEntries {
		e := &w.JournalEntries[i]
		e.EI = ClampRating(e.EI)
		e.PsychologicalSafety = ClampRating(e.PsychologicalSafety)
		e.Mood = ClampRating(e.Mood)
	}
	for i := range w.Metrics {
		m := &w.Metrics[i]
		m.EI = ClampRating(m.EI)
		m.PsychologicalSafety = ClampRating(m.PsychologicalSafety)
		m.Mood = ClampRating(m.Mood)
	}
	for i := range w.RehearsalReports {
		w.RehearsalReports[i].Morale = ClampRating(w.RehearsalReports[i].Morale)
	}

	if len(w.CastCrew) > 0 {
		kept := w.CastCrew[:0]
		for _, m := range w.CastCrew {
			if w.HasProduction(m.ProductionID) {
				kept = append(kept, m)
			}
		}
		w.CastCrew = kept
	}
}
