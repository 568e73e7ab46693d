package schedule

import (
	"strings"
	"time"

	"github.com/darasa-app/darasa/core"
)

var nowFunc = time.Now // mockable

// QueryFilter narrows down the schedule collection. All set fields must match.
type QueryFilter struct {
	Search       string    `query:"search"`   // case-insensitive match on Subject or Notes
	Type         string    `query:"type"`     // "all", "class" or "exam"
	Date         time.Time `query:"date"`     // exact calendar-day match
	UpcomingOnly bool      `query:"upcoming"` // strictly future dates only
}

func (qf *QueryFilter) IsEmpty() bool {
	return qf.Search == "" && (qf.Type == "" || qf.Type == "all") && qf.Date.IsZero() && !qf.UpcomingOnly
}

func (qf *QueryFilter) Clean() {
	qf.Search = core.CleanString(qf.Search)
	qf.Type = core.CleanString(qf.Type, true /* lower */)
}

// Apply returns the schedules matching every set QueryFilter field.
// It never mutates its input and keeps the collection's iteration order.
func Apply(scheds []Schedule, qf QueryFilter) []Schedule {
	qf.Clean()
	now := nowFunc()

	filtered := make([]Schedule, 0, len(scheds))
	for _, sched := range scheds {
		if !matchesSearch(sched, qf.Search) {
			continue
		}
		if qf.Type != "" && qf.Type != "all" && string(sched.Type) != qf.Type {
			continue
		}
		if !qf.Date.IsZero() && !sameDay(sched.Date, qf.Date) {
			continue
		}
		if qf.UpcomingOnly && !sched.Date.After(now) {
			continue
		}
		filtered = append(filtered, sched)
	}
	return filtered
}

// Todays returns the schedules falling on the current calendar day,
// in the collection's iteration order.
func Todays(scheds []Schedule) []Schedule {
	today := nowFunc()

	filtered := make([]Schedule, 0, len(scheds))
	for _, sched := range scheds {
		if sameDay(sched.Date, today) {
			filtered = append(filtered, sched)
		}
	}
	return filtered
}

func matchesSearch(sched Schedule, term string) bool {
	if term == "" {
		return true
	}
	term = strings.ToLower(term)
	return strings.Contains(strings.ToLower(sched.Subject), term) ||
		strings.Contains(strings.ToLower(sched.Notes), term)
}

func sameDay(t, u time.Time) bool {
	ty, tm, td := t.Date()
	uy, um, ud := u.Date()
	return ty == uy && tm == um && td == ud
}
