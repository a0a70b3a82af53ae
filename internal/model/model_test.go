package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func at(hour, min int) time.Time {
	return time.Date(2026, 9, 20, hour, min, 0, 0, time.Local)
}

func interval(startH, endH int) Appointment {
	return New("meeting", "", "", at(startH, 0), at(endH, 0))
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name string
		a, b Appointment
		want bool
	}{
		{"identical", interval(10, 11), interval(10, 11), true},
		{"contained", interval(9, 17), interval(10, 11), true},
		{"partial", interval(10, 12), interval(11, 13), true},
		{"touching", interval(10, 11), interval(11, 12), false},
		{"disjoint", interval(9, 10), interval(14, 15), false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, tc.a.Overlaps(tc.b))
			// overlap is symmetric
			require.Equal(t, tc.want, tc.b.Overlaps(tc.a))
		})
	}
}

func TestOverlapsSelf(t *testing.T) {
	a := interval(10, 11)
	require.True(t, a.Overlaps(a))
}

func TestString(t *testing.T) {
	a := New("Dentist", "", "Main St 4", at(14, 0), at(15, 30))
	require.Equal(t, "Dentist | 2026-09-20 14:00 - 15:30 | Main St 4", a.String())

	b := New("Standup", "", "", at(9, 15), at(9, 30))
	require.Equal(t, "Standup | 2026-09-20 09:15 - 09:30", b.String())
}

func TestJSONRoundTrip(t *testing.T) {
	orig := New("Dentist", "routine checkup", "Main St 4", at(14, 0), at(15, 30))

	data, err := json.Marshal(orig)
	require.NoError(t, err)

	var got Appointment
	require.NoError(t, json.Unmarshal(data, &got))

	require.Equal(t, orig.ID, got.ID)
	require.Equal(t, orig.Title, got.Title)
	require.Equal(t, orig.Description, got.Description)
	require.Equal(t, orig.Location, got.Location)
	require.True(t, got.StartTime.Equal(orig.StartTime))
	require.True(t, got.EndTime.Equal(orig.EndTime))
}

func TestNewAssignsUniqueIDs(t *testing.T) {
	a := interval(10, 11)
	b := interval(10, 11)
	require.NotEmpty(t, a.ID)
	require.NotEqual(t, a.ID, b.ID)
}
