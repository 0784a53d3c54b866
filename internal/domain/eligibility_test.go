package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"dojocrm/internal/domain/entities"
)

func TestEvaluateCheckin(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 1, 10, 19, 0, 0, 0, time.UTC)

	event := func(date time.Time, active bool) *entities.Event {
		return &entities.Event{ID: "E1", Name: "Open Mat", Date: date, Location: "Main Dojo", Active: active}
	}

	tests := []struct {
		name     string
		event    *entities.Event
		existing []entities.Checkin
		student  string
		want     CheckinDecision
	}{
		{
			name:    "nil event",
			event:   nil,
			student: "S1",
			want:    CheckinEventNotFound,
		},
		{
			name:    "inactive event",
			event:   event(now, false),
			student: "S1",
			want:    CheckinEventNotFound,
		},
		{
			name:     "already checked in",
			event:    event(now, true),
			existing: []entities.Checkin{{ID: "C1", EventID: "E1", StudentID: "S1"}},
			student:  "S1",
			want:     CheckinAlreadyCheckedIn,
		},
		{
			name:     "other student checked in does not block",
			event:    event(now, true),
			existing: []entities.Checkin{{ID: "C1", EventID: "E1", StudentID: "S2"}},
			student:  "S1",
			want:     CheckinAllowed,
		},
		{
			name:    "event exactly now",
			event:   event(now, true),
			student: "S1",
			want:    CheckinAllowed,
		},
		{
			name:    "two hours early is the inclusive boundary",
			event:   event(now.Add(2*time.Hour), true),
			student: "S1",
			want:    CheckinAllowed,
		},
		{
			name:    "two hours late is the inclusive boundary",
			event:   event(now.Add(-2*time.Hour), true),
			student: "S1",
			want:    CheckinAllowed,
		},
		{
			name:    "one second past the early boundary",
			event:   event(now.Add(2*time.Hour+time.Second), true),
			student: "S1",
			want:    CheckinOutsideWindow,
		},
		{
			name:    "one second past the late boundary",
			event:   event(now.Add(-(2*time.Hour + time.Second)), true),
			student: "S1",
			want:    CheckinOutsideWindow,
		},
		{
			name:     "duplicate check wins over window check",
			event:    event(now.Add(5*time.Hour), true),
			existing: []entities.Checkin{{ID: "C1", EventID: "E1", StudentID: "S1"}},
			student:  "S1",
			want:     CheckinAlreadyCheckedIn,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EvaluateCheckin(tt.event, tt.existing, tt.student, now)
			assert.Equal(t, tt.want, got)

			// Pure function: a second call with the same inputs must agree.
			assert.Equal(t, got, EvaluateCheckin(tt.event, tt.existing, tt.student, now))
		})
	}
}

func TestCheckinDecisionErr(t *testing.T) {
	t.Parallel()

	assert.NoError(t, CheckinAllowed.Err())
	assert.ErrorIs(t, CheckinEventNotFound.Err(), ErrEventNotFound)
	assert.ErrorIs(t, CheckinAlreadyCheckedIn.Err(), ErrAlreadyCheckedIn)
	assert.ErrorIs(t, CheckinOutsideWindow.Err(), ErrOutsideWindow)

	assert.True(t, IsCheckinDenial(ErrOutsideWindow))
	assert.False(t, IsCheckinDenial(assert.AnError))
}
