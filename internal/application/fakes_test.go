package application

import (
	"context"
	"sort"
	"sync"

	"dojocrm/internal/domain"
	"dojocrm/internal/domain/entities"
)

// In-memory repositories for service tests. The check-in fake enforces the
// (event, student) uniqueness under its own lock, mirroring the role the
// storage engine's unique constraint plays in production.

type fakeEventRepo struct {
	mu     sync.Mutex
	events map[string]entities.Event
}

func newFakeEventRepo(events ...entities.Event) *fakeEventRepo {
	r := &fakeEventRepo{events: make(map[string]entities.Event)}
	for _, e := range events {
		r.events[e.ID] = e
	}
	return r
}

func (r *fakeEventRepo) Create(_ context.Context, event *entities.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events[event.ID] = *event
	return nil
}

func (r *fakeEventRepo) FindByID(_ context.Context, id string) (*entities.Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.events[id]
	if !ok {
		return nil, domain.ErrEventNotFound
	}
	return &e, nil
}

func (r *fakeEventRepo) FindAll(_ context.Context, activeOnly bool) ([]entities.Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]entities.Event, 0, len(r.events))
	for _, e := range r.events {
		if activeOnly && !e.Active {
			continue
		}
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out, nil
}

func (r *fakeEventRepo) Update(_ context.Context, event *entities.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.events[event.ID]; !ok {
		return domain.ErrEventNotFound
	}
	r.events[event.ID] = *event
	return nil
}

func (r *fakeEventRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.events[id]; !ok {
		return domain.ErrEventNotFound
	}
	delete(r.events, id)
	return nil
}

type fakeCheckinRepo struct {
	mu       sync.Mutex
	checkins map[string]entities.Checkin
}

func newFakeCheckinRepo() *fakeCheckinRepo {
	return &fakeCheckinRepo{checkins: make(map[string]entities.Checkin)}
}

func (r *fakeCheckinRepo) Create(_ context.Context, checkin *entities.Checkin) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.checkins {
		if c.EventID == checkin.EventID && c.StudentID == checkin.StudentID {
			return domain.ErrAlreadyCheckedIn
		}
	}
	r.checkins[checkin.ID] = *checkin
	return nil
}

func (r *fakeCheckinRepo) FindByID(_ context.Context, id string) (*entities.Checkin, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.checkins[id]
	if !ok {
		return nil, domain.ErrCheckinNotFound
	}
	return &c, nil
}

func (r *fakeCheckinRepo) FindByEventID(_ context.Context, eventID string) ([]entities.Checkin, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []entities.Checkin
	for _, c := range r.checkins {
		if c.EventID == eventID {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CheckedInAt.Before(out[j].CheckedInAt) })
	return out, nil
}

func (r *fakeCheckinRepo) FindByStudentID(_ context.Context, studentID string) ([]entities.Checkin, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []entities.Checkin
	for _, c := range r.checkins {
		if c.StudentID == studentID {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CheckedInAt.Before(out[j].CheckedInAt) })
	return out, nil
}

func (r *fakeCheckinRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.checkins[id]; !ok {
		return domain.ErrCheckinNotFound
	}
	delete(r.checkins, id)
	return nil
}

func (r *fakeCheckinRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.checkins)
}

type fakeStudentRepo struct {
	mu       sync.Mutex
	students map[string]entities.Student
}

func newFakeStudentRepo(students ...entities.Student) *fakeStudentRepo {
	r := &fakeStudentRepo{students: make(map[string]entities.Student)}
	for _, s := range students {
		r.students[s.ID] = s
	}
	return r
}

func (r *fakeStudentRepo) Create(_ context.Context, student *entities.Student) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.students[student.ID] = *student
	return nil
}

func (r *fakeStudentRepo) FindByID(_ context.Context, id string) (*entities.Student, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.students[id]
	if !ok {
		return nil, domain.ErrStudentNotFound
	}
	return &s, nil
}

func (r *fakeStudentRepo) FindAll(_ context.Context) ([]entities.Student, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]entities.Student, 0, len(r.students))
	for _, s := range r.students {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *fakeStudentRepo) Update(_ context.Context, student *entities.Student) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.students[student.ID]; !ok {
		return domain.ErrStudentNotFound
	}
	r.students[student.ID] = *student
	return nil
}

func (r *fakeStudentRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.students[id]; !ok {
		return domain.ErrStudentNotFound
	}
	delete(r.students, id)
	return nil
}

type fakeLeadRepo struct {
	mu    sync.Mutex
	leads map[string]entities.Lead
}

func newFakeLeadRepo() *fakeLeadRepo {
	return &fakeLeadRepo{leads: make(map[string]entities.Lead)}
}

func (r *fakeLeadRepo) Create(_ context.Context, lead *entities.Lead) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.leads[lead.ID] = *lead
	return nil
}

func (r *fakeLeadRepo) FindByID(_ context.Context, id string) (*entities.Lead, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	l, ok := r.leads[id]
	if !ok {
		return nil, domain.ErrLeadNotFound
	}
	return &l, nil
}

func (r *fakeLeadRepo) FindAll(_ context.Context, status string) ([]entities.Lead, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []entities.Lead
	for _, l := range r.leads {
		if status != "" && l.Status != status {
			continue
		}
		out = append(out, l)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *fakeLeadRepo) Update(_ context.Context, lead *entities.Lead) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.leads[lead.ID]; !ok {
		return domain.ErrLeadNotFound
	}
	r.leads[lead.ID] = *lead
	return nil
}

func (r *fakeLeadRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.leads[id]; !ok {
		return domain.ErrLeadNotFound
	}
	delete(r.leads, id)
	return nil
}

type fakeAnnouncer struct {
	mu        sync.Mutex
	announced []string
	err       error
}

func (a *fakeAnnouncer) EventCreated(_ context.Context, event *entities.Event) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.err != nil {
		return a.err
	}
	a.announced = append(a.announced, event.ID)
	return nil
}
