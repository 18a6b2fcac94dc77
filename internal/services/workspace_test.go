package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dyondem/callsheet/internal/dto"
	"github.com/dyondem/callsheet/internal/models"
	"github.com/dyondem/callsheet/internal/state"
	"github.com/dyondem/callsheet/internal/store"
)

func newTestService(t *testing.T) *WorkspaceService {
	t.Helper()
	c := state.New(store.NewMemoryStore(), "")
	c.Load(context.Background())
	t.Cleanup(c.Wait)
	return NewWorkspaceService(c)
}

func TestNewID_Unique(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 1000; i++ {
		id := newID()
		require.False(t, seen[id], "id %q minted twice", id)
		seen[id] = true
	}
}

func TestSaveProfile(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.SaveProfile(dto.SaveProfileRequest{Organization: "Playhouse"})
	assert.ErrorIs(t, err, ErrNameRequired)

	_, err = svc.SaveProfile(dto.SaveProfileRequest{Name: "Dana"})
	assert.ErrorIs(t, err, ErrOrgRequired)

	profile, err := svc.SaveProfile(dto.SaveProfileRequest{Name: "Dana", Organization: "Playhouse"})
	require.NoError(t, err)
	assert.NotEmpty(t, profile.CreatedAt)

	// Updating keeps the original creation timestamp.
	updated, err := svc.SaveProfile(dto.SaveProfileRequest{Name: "Dana R.", Organization: "Playhouse"})
	require.NoError(t, err)
	assert.Equal(t, profile.CreatedAt, updated.CreatedAt)
	assert.Equal(t, "Dana R.", svc.Snapshot().User.Name)
}

func TestSetActiveRole(t *testing.T) {
	svc := newTestService(t)

	require.NoError(t, svc.SetActiveRole(models.RolePlay))
	assert.Equal(t, models.RolePlay, svc.Snapshot().ActiveRole)

	assert.ErrorIs(t, svc.SetActiveRole("nope"), ErrUnknownRole)

	role, err := svc.CreateCustomRole(dto.CreateCustomRoleRequest{Name: "Tour Manager", Features: []string{models.FeatureTodos, models.FeatureContacts}})
	require.NoError(t, err)
	require.NoError(t, svc.SetActiveRole(role.ID))
	assert.Equal(t, role.ID, svc.Snapshot().ActiveRole)
}

func TestCreateCustomRole_InvalidFeature(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.CreateCustomRole(dto.CreateCustomRoleRequest{Name: "X", Features: []string{"payroll"}})
	assert.ErrorIs(t, err, ErrInvalidFeature)

	_, err = svc.CreateCustomRole(dto.CreateCustomRoleRequest{Features: []string{models.FeatureTodos}})
	assert.ErrorIs(t, err, ErrNameRequired)
}

func TestDeleteCustomRole_ResetsActiveSelector(t *testing.T) {
	svc := newTestService(t)

	active, err := svc.CreateCustomRole(dto.CreateCustomRoleRequest{Name: "Tour Manager"})
	require.NoError(t, err)
	other, err := svc.CreateCustomRole(dto.CreateCustomRoleRequest{Name: "Dramaturg"})
	require.NoError(t, err)
	require.NoError(t, svc.SetActiveRole(active.ID))

	// Deleting a non-active role leaves the selector alone.
	require.NoError(t, svc.DeleteCustomRole(other.ID))
	assert.Equal(t, active.ID, svc.Snapshot().ActiveRole)

	// Deleting the active role resets to ED.
	require.NoError(t, svc.DeleteCustomRole(active.ID))
	assert.Equal(t, models.RoleED, svc.Snapshot().ActiveRole)
	assert.Empty(t, svc.Snapshot().CustomRoles)
}

func TestDeleteCustomRole_Builtin(t *testing.T) {
	svc := newTestService(t)
	assert.ErrorIs(t, svc.DeleteCustomRole(models.RoleED), ErrBuiltinRole)
	assert.ErrorIs(t, svc.DeleteCustomRole("missing"), ErrNotFound)
}

func TestTodoStatusKeepsCompletedInSync(t *testing.T) {
	svc := newTestService(t)

	todo, err := svc.CreateTodo(dto.CreateTodoRequest{Text: "Send board packet"})
	require.NoError(t, err)
	assert.Equal(t, models.StatusNotStarted, todo.Status)
	assert.Equal(t, models.PriorityMedium, todo.Priority)
	assert.False(t, todo.Completed)

	done, err := svc.SetTodoStatus(todo.ID, models.StatusCompleted)
	require.NoError(t, err)
	assert.True(t, done.Completed)

	reopened, err := svc.SetTodoStatus(todo.ID, models.StatusInProgress)
	require.NoError(t, err)
	assert.False(t, reopened.Completed)

	_, err = svc.SetTodoStatus(todo.ID, "Done-ish")
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestCreateTodo_Validation(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.CreateTodo(dto.CreateTodoRequest{})
	assert.ErrorIs(t, err, ErrTextRequired)

	_, err = svc.CreateTodo(dto.CreateTodoRequest{Text: "x", Priority: "Critical"})
	assert.ErrorIs(t, err, ErrInvalidPriority)
}

func TestJournalEntryAppendsCompanionMetric(t *testing.T) {
	svc := newTestService(t)
	require.NoError(t, svc.SetActiveRole(models.RolePlay))

	entry, err := svc.SaveJournalEntry(dto.SaveJournalRequest{
		Title: "Opening week", Content: "Long but good.",
		EI: 4, PsychologicalSafety: 5, Mood: 3,
	})
	require.NoError(t, err)

	doc := svc.Snapshot()
	require.Len(t, doc.JournalEntries, 1)
	require.Len(t, doc.Metrics, 1)

	metric := doc.Metrics[0]
	assert.Equal(t, entry.EI, metric.EI)
	assert.Equal(t, entry.PsychologicalSafety, metric.PsychologicalSafety)
	assert.Equal(t, entry.Mood, metric.Mood)
	assert.Equal(t, models.RolePlay, metric.Role)
	assert.Equal(t, entry.Role, metric.Role)
	assert.Equal(t, entry.Date, metric.Date)
	assert.NotEqual(t, entry.ID, metric.ID)
}

func TestJournalEntry_ClampsRatings(t *testing.T) {
	svc := newTestService(t)

	entry, err := svc.SaveJournalEntry(dto.SaveJournalRequest{Title: "t", Content: "c", EI: 12, Mood: -1})
	require.NoError(t, err)
	assert.Equal(t, 5, entry.EI)
	assert.Equal(t, 1, entry.Mood)
	assert.Equal(t, 1, entry.PsychologicalSafety)
}

func TestJournalEntry_Validation(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.SaveJournalEntry(dto.SaveJournalRequest{Content: "c"})
	assert.ErrorIs(t, err, ErrTitleRequired)

	_, err = svc.SaveJournalEntry(dto.SaveJournalRequest{Title: "t"})
	assert.ErrorIs(t, err, ErrContentRequired)

	_, err = svc.SaveJournalEntry(dto.SaveJournalRequest{Title: "t", Content: "c", Role: "ghost-role"})
	assert.ErrorIs(t, err, ErrUnknownRole)
}

func TestDeleteEmployee_PrunesGroupMembership(t *testing.T) {
	svc := newTestService(t)

	ada, err := svc.CreateEmployee(dto.EmployeeRequest{Name: "Ada", Position: "Stage Manager"})
	require.NoError(t, err)
	ben, err := svc.CreateEmployee(dto.EmployeeRequest{Name: "Ben", Position: "Electrician"})
	require.NoError(t, err)

	group, err := svc.CreateGroup(dto.CreateGroupRequest{Name: "Run crew", MemberIDs: []string{ada.ID, ben.ID}})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteEmployee(ada.ID))

	doc := svc.Snapshot()
	require.Len(t, doc.Employees, 1)
	require.Len(t, doc.Groups, 1)
	assert.Equal(t, []string{ben.ID}, doc.Groups[0].MemberIDs)

	updated, err := svc.SetGroupMembers(group.ID, []string{ben.ID})
	require.NoError(t, err)
	assert.Equal(t, []string{ben.ID}, updated.MemberIDs)
}

func TestResourceFavoriteToggle(t *testing.T) {
	svc := newTestService(t)

	res, err := svc.CreateResource(dto.CreateResourceRequest{Title: "Grant portal", URL: "https://example.org"})
	require.NoError(t, err)
	assert.False(t, res.Favorite)

	on, err := svc.ToggleResourceFavorite(res.ID)
	require.NoError(t, err)
	assert.True(t, on.Favorite)

	off, err := svc.ToggleResourceFavorite(res.ID)
	require.NoError(t, err)
	assert.False(t, off.Favorite)
}

func TestProjectStatus(t *testing.T) {
	svc := newTestService(t)

	ev, err := svc.CreateProjectEvent(dto.CreateProjectEventRequest{Title: "Gala"})
	require.NoError(t, err)
	assert.Equal(t, models.ProjectPlanning, ev.Status)

	moved, err := svc.SetProjectStatus(ev.ID, models.ProjectInProgress)
	require.NoError(t, err)
	assert.Equal(t, models.ProjectInProgress, moved.Status)

	_, err = svc.SetProjectStatus(ev.ID, "Shipped")
	assert.ErrorIs(t, err, ErrInvalidStatus)
}
