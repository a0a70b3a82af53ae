package model

import (
	"time"

	"github.com/google/uuid"
)

// Appointment is one scheduled time interval plus metadata. It is never
// mutated after creation; removal from the store is the only other
// lifecycle event.
type Appointment struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	StartTime   time.Time `json:"start_time"`
	EndTime     time.Time `json:"end_time"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
}

// New builds an appointment with a fresh id. It does not validate the
// interval; the store rejects bad intervals before admission.
func New(title, description, location string, start, end time.Time) Appointment {
	return Appointment{
		ID:          uuid.New().String(),
		Title:       title,
		StartTime:   start,
		EndTime:     end,
		Description: description,
		Location:    location,
	}
}

// Overlaps reports whether the two appointments intersect. Intervals are
// half-open, so an appointment ending exactly when another starts does
// not overlap it.
func (a Appointment) Overlaps(b Appointment) bool {
	return a.StartTime.Before(b.EndTime) && a.EndTime.After(b.StartTime)
}

// String renders "Title | 2025-09-20 14:00 - 15:00 | Location"; the
// location segment is dropped when empty.
func (a Appointment) String() string {
	s := a.Title + " | " + a.StartTime.Format("2006-01-02 15:04") + " - " + a.EndTime.Format("15:04")
	if a.Location != "" {
		s += " | " + a.Location
	}
	return s
}
