package state

import (
	"time"

	"github.com/dyondem/callsheet/internal/models"
)

// Derived reads are pure functions of a document snapshot, recomputed on
// every call. Nothing here is cached.

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

// MetricWindowDays is the rolling window the dashboard averages over.
const MetricWindowDays = 30

// MetricAverages holds rolling averages over the metric window.
type MetricAverages struct {
	EI                  float64 `json:"eiRating"`
	PsychologicalSafety float64 `json:"psRating"`
	Mood                float64 `json:"moodRating"`
	Samples             int     `json:"samples"`
}

// MetricsForRole filters the metric series by associated role.
func MetricsForRole(w models.Workspace, role string) []models.Metric {
	out := []models.Metric{}
	for _, m := range w.Metrics {
		if m.Role == role {
			out = append(out, m)
		}
	}
	return out
}

// JournalForRole filters journal entries by associated role.
func JournalForRole(w models.Workspace, role string) []models.JournalEntry {
	out := []models.JournalEntry{}
	for _, e := range w.JournalEntries {
		if e.Role == role {
			out = append(out, e)
		}
	}
	return out
}

// RollingAverages computes per-rating averages over the metrics for role
// whose date falls inside the trailing window ending at now.
func RollingAverages(w models.Workspace, role string, now time.Time) MetricAverages {
	cutoff := now.AddDate(0, 0, -MetricWindowDays)

	var avg MetricAverages
	var ei, ps, mood int
	for _, m := range w.Metrics {
		if m.Role != role {
			continue
		}
		d, err := time.ParseInLocation(dateLayout, m.Date, now.Location())
		if err != nil || d.Before(cutoff) || d.After(now) {
			continue
		}
		ei += m.EI
		ps += m.PsychologicalSafety
		mood += m.Mood
		avg.Samples++
	}
	if avg.Samples > 0 {
		n := float64(avg.Samples)
		avg.EI = float64(ei) / n
		avg.PsychologicalSafety = float64(ps) / n
		avg.Mood = float64(mood) / n
	}
	return avg
}

// MeetingTime resolves a meeting's date and time to an instant. A missing or
// malformed time defaults to midnight; a malformed date pushes the meeting to
// the zero instant, which classifies it as past.
func MeetingTime(m models.Meeting, loc *time.Location) time.Time {
	day, err := time.ParseInLocation(dateLayout, m.Date, loc)
	if err != nil {
		return time.Time{}
	}
	if m.Time != "" {
		if clock, err := time.ParseInLocation(timeLayout, m.Time, loc); err == nil {
			return time.Date(day.Year(), day.Month(), day.Day(), clock.Hour(), clock.Minute(), 0, 0, loc)
		}
	}
	return day
}

// IsMeetingPast reports whether the meeting's instant is before now.
func IsMeetingPast(m models.Meeting, now time.Time) bool {
	return MeetingTime(m, now.Location()).Before(now)
}

// UpcomingMeetings returns meetings at or after now.
func UpcomingMeetings(w models.Workspace, now time.Time) []models.Meeting {
	out := []models.Meeting{}
	for _, m := range w.Meetings {
		if !IsMeetingPast(m, now) {
			out = append(out, m)
		}
	}
	return out
}

// PastMeetings returns meetings strictly before now.
func PastMeetings(w models.Workspace, now time.Time) []models.Meeting {
	out := []models.Meeting{}
	for _, m := range w.Meetings {
		if IsMeetingPast(m, now) {
			out = append(out, m)
		}
	}
	return out
}

// CastCrewForProduction returns the cast/crew rows under one production.
func CastCrewForProduction(w models.Workspace, productionID string) []models.CastCrewMember {
	out := []models.CastCrewMember{}
	for _, m := range w.CastCrew {
		if m.ProductionID == productionID {
			out = append(out, m)
		}
	}
	return out
}

// FavoriteResources returns the resources flagged as favorites.
func FavoriteResources(w models.Workspace) []models.Resource {
	out := []models.Resource{}
	for _, r := range w.Resources {
		if r.Favorite {
			out = append(out, r)
		}
	}
	return out
}

// ResourcesByCategory partitions resources by their category label.
func ResourcesByCategory(w models.Workspace) map[string][]models.Resource {
	out := map[string][]models.Resource{}
	for _, r := range w.Resources {
		out[r.Category] = append(out[r.Category], r)
	}
	return out
}
