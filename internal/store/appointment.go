package store

import (
	"sort"
	"strings"
	"time"

	"personal-scheduler/internal/model"
)

// Add admits the appointment if its interval is valid and nothing already
// scheduled overlaps it. When conflicts exist they are returned without
// inserting; the caller decides whether to confirm with Insert.
func (s *Store) Add(a model.Appointment) ([]model.Appointment, error) {
	if !a.EndTime.After(a.StartTime) {
		return nil, ErrInvalidInterval
	}
	if conflicts := s.FindConflicts(a); len(conflicts) > 0 {
		return conflicts, nil
	}
	return nil, s.Insert(a)
}

// Insert appends unconditionally, conflicts and all. The interval
// invariant still holds for anything admitted to the store.
func (s *Store) Insert(a model.Appointment) error {
	if !a.EndTime.After(a.StartTime) {
		return ErrInvalidInterval
	}
	s.appointments = append(s.appointments, a)
	return s.Save()
}

// FindConflicts returns every stored appointment overlapping the
// candidate, in store order. Linear scan; fine at personal-schedule
// scale, no index.
func (s *Store) FindConflicts(candidate model.Appointment) []model.Appointment {
	var conflicts []model.Appointment
	for _, existing := range s.appointments {
		if candidate.Overlaps(existing) {
			conflicts = append(conflicts, existing)
		}
	}
	return conflicts
}

// Get looks up an appointment by its full id.
func (s *Store) Get(id string) (model.Appointment, bool) {
	for _, a := range s.appointments {
		if a.ID == id {
			return a, true
		}
	}
	return model.Appointment{}, false
}

// Remove deletes the appointment with exactly this id and persists the
// smaller collection. A miss leaves everything untouched.
func (s *Store) Remove(id string) (model.Appointment, bool) {
	for i, a := range s.appointments {
		if a.ID == id {
			s.appointments = append(s.appointments[:i], s.appointments[i+1:]...)
			_ = s.Save() // failure already logged; removal stays in memory
			return a, true
		}
	}
	return model.Appointment{}, false
}

// ResolveID expands an id prefix to a full id. When several ids share the
// prefix the first in store order wins.
func (s *Store) ResolveID(prefix string) (string, bool) {
	if prefix == "" {
		return "", false
	}
	for _, a := range s.appointments {
		if strings.HasPrefix(a.ID, prefix) {
			return a.ID, true
		}
	}
	return "", false
}

// AppointmentsOn returns the appointments starting on the given calendar
// day, in store order. An appointment running past midnight belongs to
// its start day only.
func (s *Store) AppointmentsOn(date time.Time) []model.Appointment {
	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	dayEnd := dayStart.Add(24 * time.Hour)
	var out []model.Appointment
	for _, a := range s.appointments {
		if !a.StartTime.Before(dayStart) && a.StartTime.Before(dayEnd) {
			out = append(out, a)
		}
	}
	return out
}

// Upcoming returns appointments starting between now and now+days,
// bounds inclusive, sorted ascending by start time. Now is wall clock at
// call time, so repeated calls can differ.
func (s *Store) Upcoming(days int) []model.Appointment {
	now := s.now()
	limit := now.Add(time.Duration(days) * 24 * time.Hour)
	var out []model.Appointment
	for _, a := range s.appointments {
		if !a.StartTime.Before(now) && !a.StartTime.After(limit) {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].StartTime.Before(out[j].StartTime)
	})
	return out
}

// Len reports how many appointments are stored.
func (s *Store) Len() int { return len(s.appointments) }
