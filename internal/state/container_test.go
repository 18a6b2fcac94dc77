package state

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dyondem/callsheet/internal/models"
	"github.com/dyondem/callsheet/internal/store"
)

// brokenStore simulates an unreachable backend.
type brokenStore struct{}

func (brokenStore) Get(context.Context, string) (string, bool, error) {
	return "", false, errors.New("backend unreachable")
}

func (brokenStore) Set(context.Context, string, string) error {
	return errors.New("backend unreachable")
}

func TestLoad_EmptyStoreSeedsDefault(t *testing.T) {
	c := New(store.NewMemoryStore(), "")
	c.Load(context.Background())

	doc := c.Current()
	assert.Nil(t, doc.User)
	assert.Equal(t, models.RoleED, doc.ActiveRole)
	assert.Empty(t, doc.Employees)
	assert.Empty(t, doc.Todos)
	assert.Empty(t, doc.Meetings)
	assert.Empty(t, doc.CustomRoles)
	assert.Empty(t, doc.Productions)

	require.Len(t, doc.Resources, 2)
	assert.Equal(t, "Artistic Leadership in the 21st Century", doc.Resources[0].Title)
	assert.Equal(t, "Theatre Communications Group", doc.Resources[1].Title)
}

func TestLoad_SeedIsDeterministic(t *testing.T) {
	assert.Equal(t, models.DefaultWorkspace(), models.DefaultWorkspace())
}

func TestLoad_CorruptValueFallsOpen(t *testing.T) {
	mem := store.NewMemoryStore()
	require.NoError(t, mem.Set(context.Background(), DefaultKey, "{not json"))

	c := New(mem, "")
	c.Load(context.Background())

	assert.Equal(t, models.RoleED, c.Current().ActiveRole)
	assert.Len(t, c.Current().Resources, 2)
}

func TestLoad_BrokenBackendFallsOpen(t *testing.T) {
	c := New(brokenStore{}, "")
	c.Load(context.Background())

	assert.Equal(t, models.RoleED, c.Current().ActiveRole)
}

func TestReplace_RoundTripThroughStore(t *testing.T) {
	mem := store.NewMemoryStore()
	c := New(mem, "")
	c.Load(context.Background())

	doc := c.Current()
	doc.Employees = append(doc.Employees, models.Employee{ID: "1", Name: "Ada", Position: "Stage Manager"})
	doc.Todos = append(doc.Todos, models.Todo{ID: "2", Text: "Book the venue", Status: models.StatusInProgress, Priority: models.PriorityHigh})
	c.Replace(doc)
	c.Wait()

	fresh := New(mem, "")
	fresh.Load(context.Background())

	assert.Equal(t, c.Current(), fresh.Current())
	require.Len(t, fresh.Current().Employees, 1)
	assert.Equal(t, "Ada", fresh.Current().Employees[0].Name)
}

// slowFirstSaveStore stalls its first Set long enough for a later mutation
// to overtake it if saves were not serialized.
type slowFirstSaveStore struct {
	inner *store.MemoryStore
	mu    sync.Mutex
	sets  int
}

func (s *slowFirstSaveStore) Get(ctx context.Context, key string) (string, bool, error) {
	return s.inner.Get(ctx, key)
}

func (s *slowFirstSaveStore) Set(ctx context.Context, key, value string) error {
	s.mu.Lock()
	s.sets++
	first := s.sets == 1
	s.mu.Unlock()
	if first {
		time.Sleep(50 * time.Millisecond)
	}
	return s.inner.Set(ctx, key, value)
}

func TestReplace_SequentialSavesKeepBackendCurrent(t *testing.T) {
	adapter := &slowFirstSaveStore{inner: store.NewMemoryStore()}
	c := New(adapter, "")
	c.Load(context.Background())

	doc := c.Current()
	doc.Contacts = append(doc.Contacts, models.Contact{ID: "1", Name: "older"})
	c.Replace(doc)

	// The second mutation arrives while the first save is still in flight.
	doc = c.Current()
	doc.Contacts = append(doc.Contacts, models.Contact{ID: "2", Name: "newer"})
	c.Replace(doc)
	c.Wait()

	fresh := New(adapter, "")
	fresh.Load(context.Background())

	assert.Equal(t, c.Current(), fresh.Current())
	require.Len(t, fresh.Current().Contacts, 2)
	assert.Equal(t, "newer", fresh.Current().Contacts[1].Name)
}

func TestReplace_SaveFailureKeepsMemoryAuthoritative(t *testing.T) {
	c := New(brokenStore{}, "")
	c.Load(context.Background())

	doc := c.Current()
	doc.Contacts = append(doc.Contacts, models.Contact{ID: "1", Name: "Board Chair"})
	c.Replace(doc)
	c.Wait()

	require.Len(t, c.Current().Contacts, 1)
	assert.Equal(t, "Board Chair", c.Current().Contacts[0].Name)
}

func TestReplace_NormalizesTodoCompleted(t *testing.T) {
	c := New(store.NewMemoryStore(), "")
	c.Load(context.Background())

	doc := c.Current()
	doc.Todos = append(doc.Todos,
		models.Todo{ID: "1", Text: "a", Status: models.StatusCompleted, Completed: false},
		models.Todo{ID: "2", Text: "b", Status: models.StatusOnHold, Completed: true},
	)
	c.Replace(doc)

	got := c.Current().Todos
	assert.True(t, got[0].Completed)
	assert.False(t, got[1].Completed)
}

func TestReplace_ClampsRatings(t *testing.T) {
	c := New(store.NewMemoryStore(), "")
	c.Load(context.Background())

	doc := c.Current()
	doc.JournalEntries = append(doc.JournalEntries, models.JournalEntry{ID: "1", Title: "t", Content: "c", EI: 9, PsychologicalSafety: 0, Mood: 3})
	doc.RehearsalReports = append(doc.RehearsalReports, models.RehearsalReport{ID: "2", Production: "Hamlet", Morale: -4})
	c.Replace(doc)

	got := c.Current()
	assert.Equal(t, 5, got.JournalEntries[0].EI)
	assert.Equal(t, 1, got.JournalEntries[0].PsychologicalSafety)
	assert.Equal(t, 3, got.JournalEntries[0].Mood)
	assert.Equal(t, 1, got.RehearsalReports[0].Morale)
}

func TestReplace_PrunesOrphanCastCrew(t *testing.T) {
	c := New(store.NewMemoryStore(), "")
	c.Load(context.Background())

	doc := c.Current()
	doc.Productions = append(doc.Productions, models.Production{ID: "p1", Title: "Hamlet"})
	doc.CastCrew = append(doc.CastCrew,
		models.CastCrewMember{ID: "m1", ProductionID: "p1", Name: "Ophelia", Type: models.MemberTypeCast},
		models.CastCrewMember{ID: "m2", ProductionID: "gone", Name: "Ghost", Type: models.MemberTypeCast},
	)
	c.Replace(doc)

	got := c.Current().CastCrew
	require.Len(t, got, 1)
	assert.Equal(t, "Ophelia", got[0].Name)
}

func TestReplace_ResetsStaleActiveRole(t *testing.T) {
	c := New(store.NewMemoryStore(), "")
	c.Load(context.Background())

	doc := c.Current()
	doc.ActiveRole = "deleted-role-id"
	c.Replace(doc)

	assert.Equal(t, models.RoleED, c.Current().ActiveRole)
}

func TestCurrent_SnapshotIsIsolated(t *testing.T) {
	c := New(store.NewMemoryStore(), "")
	c.Load(context.Background())

	snap := c.Current()
	snap.Resources[0].Title = "mutated"

	assert.Equal(t, "Artistic Leadership in the 21st Century", c.Current().Resources[0].Title)
}
