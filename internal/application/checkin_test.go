package application

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dojocrm/internal/clock"
	"dojocrm/internal/domain"
	"dojocrm/internal/domain/entities"
)

func TestCheckinService_CheckIn(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 1, 10, 19, 0, 0, 0, time.UTC)

	makeSvc := func(events ...entities.Event) (*CheckinService, *fakeCheckinRepo) {
		checkins := newFakeCheckinRepo()
		svc := NewCheckinService(checkins, newFakeEventRepo(events...), newFakeStudentRepo(), clock.NewFixed(now))
		return svc, checkins
	}

	t.Run("creates check-in inside the window", func(t *testing.T) {
		svc, checkins := makeSvc(entities.Event{ID: "E1", Date: now.Add(-time.Hour), Active: true})

		checkin, err := svc.CheckIn(context.Background(), "E1", "S1")
		require.NoError(t, err)
		assert.NotEmpty(t, checkin.ID)
		assert.Equal(t, "E1", checkin.EventID)
		assert.Equal(t, "S1", checkin.StudentID)
		assert.Equal(t, now, checkin.CheckedInAt)
		assert.Equal(t, 1, checkins.count())
	})

	t.Run("unknown event", func(t *testing.T) {
		svc, checkins := makeSvc()

		_, err := svc.CheckIn(context.Background(), "missing", "S1")
		assert.ErrorIs(t, err, domain.ErrEventNotFound)
		assert.Equal(t, 0, checkins.count())
	})

	t.Run("deactivated event is denied as not found", func(t *testing.T) {
		svc, _ := makeSvc(entities.Event{ID: "E1", Date: now, Active: false})

		_, err := svc.CheckIn(context.Background(), "E1", "S1")
		assert.ErrorIs(t, err, domain.ErrEventNotFound)
	})

	t.Run("second attempt for the same pair", func(t *testing.T) {
		svc, checkins := makeSvc(entities.Event{ID: "E1", Date: now, Active: true})

		_, err := svc.CheckIn(context.Background(), "E1", "S1")
		require.NoError(t, err)

		_, err = svc.CheckIn(context.Background(), "E1", "S1")
		assert.ErrorIs(t, err, domain.ErrAlreadyCheckedIn)
		assert.Equal(t, 1, checkins.count())
	})

	t.Run("outside the window", func(t *testing.T) {
		svc, checkins := makeSvc(entities.Event{ID: "E1", Date: now.Add(2*time.Hour + time.Second), Active: true})

		_, err := svc.CheckIn(context.Background(), "E1", "S1")
		assert.ErrorIs(t, err, domain.ErrOutsideWindow)
		assert.Equal(t, 0, checkins.count())
	})

	t.Run("store duplicate rejection surfaces as already checked in", func(t *testing.T) {
		// The racing repo reports no existing check-ins to the eligibility
		// read but fails the insert with a duplicate, like a concurrent
		// writer that committed in between.
		events := newFakeEventRepo(entities.Event{ID: "E1", Date: now, Active: true})
		racing := &racingCheckinRepo{fakeCheckinRepo: newFakeCheckinRepo()}
		svc := NewCheckinService(racing, events, newFakeStudentRepo(), clock.NewFixed(now))

		_, err := svc.CheckIn(context.Background(), "E1", "S1")
		assert.ErrorIs(t, err, domain.ErrAlreadyCheckedIn)
	})

	t.Run("delete then check in again", func(t *testing.T) {
		svc, _ := makeSvc(entities.Event{ID: "E1", Date: now, Active: true})

		first, err := svc.CheckIn(context.Background(), "E1", "S1")
		require.NoError(t, err)
		require.NoError(t, svc.Remove(context.Background(), first.ID))

		second, err := svc.CheckIn(context.Background(), "E1", "S1")
		require.NoError(t, err)
		assert.NotEqual(t, first.ID, second.ID)
	})
}

type racingCheckinRepo struct {
	*fakeCheckinRepo
}

func (r *racingCheckinRepo) FindByEventID(context.Context, string) ([]entities.Checkin, error) {
	return nil, nil
}

func (r *racingCheckinRepo) Create(context.Context, *entities.Checkin) error {
	return domain.ErrAlreadyCheckedIn
}

func TestCheckinService_ConcurrentSamePair(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 1, 10, 19, 0, 0, 0, time.UTC)
	checkins := newFakeCheckinRepo()
	events := newFakeEventRepo(entities.Event{ID: "E1", Date: now, Active: true})
	svc := NewCheckinService(checkins, events, newFakeStudentRepo(), clock.NewFixed(now))

	const attempts = 8
	var (
		start   sync.WaitGroup
		done    sync.WaitGroup
		mu      sync.Mutex
		created int
		denied  int
	)
	start.Add(1)
	for i := 0; i < attempts; i++ {
		done.Add(1)
		go func() {
			defer done.Done()
			start.Wait()
			_, err := svc.CheckIn(context.Background(), "E1", "S1")
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				created++
			case assert.ErrorIs(t, err, domain.ErrAlreadyCheckedIn):
				denied++
			}
		}()
	}
	start.Done()
	done.Wait()

	assert.Equal(t, 1, created, "exactly one attempt may create a check-in")
	assert.Equal(t, attempts-1, denied)
	assert.Equal(t, 1, checkins.count())
}

func TestCheckinService_ListByEvent(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 1, 10, 19, 0, 0, 0, time.UTC)
	checkins := newFakeCheckinRepo()
	events := newFakeEventRepo(entities.Event{ID: "E1", Date: now, Active: true})
	students := newFakeStudentRepo(entities.Student{ID: "S1", Name: "Ana Souza"})
	svc := NewCheckinService(checkins, events, students, clock.NewFixed(now))

	require.NoError(t, checkins.Create(context.Background(), &entities.Checkin{
		ID: "C2", EventID: "E1", StudentID: "S2", CheckedInAt: now.Add(time.Minute),
	}))
	require.NoError(t, checkins.Create(context.Background(), &entities.Checkin{
		ID: "C1", EventID: "E1", StudentID: "S1", CheckedInAt: now,
	}))

	list, err := svc.ListByEvent(context.Background(), "E1")
	require.NoError(t, err)
	require.Len(t, list, 2)

	// Ordered by check-in time; roster name resolved, unknown student keeps its id.
	assert.Equal(t, "C1", list[0].ID)
	assert.Equal(t, "Ana Souza", list[0].StudentName)
	assert.Equal(t, "C2", list[1].ID)
	assert.Equal(t, "S2", list[1].StudentName)

	_, err = svc.ListByEvent(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrEventNotFound)
}

func TestCheckinService_EndToEndExample(t *testing.T) {
	t.Parallel()

	// Event E1 at 2025-01-10T19:00Z, attendee S1.
	eventDate := time.Date(2025, 1, 10, 19, 0, 0, 0, time.UTC)
	checkins := newFakeCheckinRepo()
	events := newFakeEventRepo(entities.Event{ID: "E1", Date: eventDate, Active: true})
	students := newFakeStudentRepo()

	at := func(t2 time.Time) *CheckinService {
		return NewCheckinService(checkins, events, students, clock.NewFixed(t2))
	}

	// 18:00, one hour early: allowed.
	checkin, err := at(eventDate.Add(-time.Hour)).CheckIn(context.Background(), "E1", "S1")
	require.NoError(t, err)

	// Immediately repeated: denied as duplicate.
	_, err = at(eventDate.Add(-time.Hour)).CheckIn(context.Background(), "E1", "S1")
	assert.ErrorIs(t, err, domain.ErrAlreadyCheckedIn)

	// Delete, then retry at 21:00:01: past the window, denied.
	require.NoError(t, at(eventDate).Remove(context.Background(), checkin.ID))
	_, err = at(eventDate.Add(2*time.Hour+time.Second)).CheckIn(context.Background(), "E1", "S1")
	assert.ErrorIs(t, err, domain.ErrOutsideWindow)
}
