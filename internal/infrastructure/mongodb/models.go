package mongodb

import (
	"time"

	"dojocrm/internal/domain/entities"
)

const (
	eventCollection   = "events"
	checkinCollection = "checkins"
	studentCollection = "students"
	leadCollection    = "leads"
)

// Documents use the entity id as _id so both storage engines share one id
// space and the API never leaks ObjectIDs.

type eventDoc struct {
	ID          string    `bson:"_id"`
	Name        string    `bson:"name"`
	Description string    `bson:"description"`
	Date        time.Time `bson:"event_date"`
	Location    string    `bson:"location"`
	UnitID      string    `bson:"unit_id"`
	Active      bool      `bson:"active"`
	CreatedAt   time.Time `bson:"created_at"`
	UpdatedAt   time.Time `bson:"updated_at"`
}

func (d eventDoc) toDomain() entities.Event {
	return entities.Event{
		ID:          d.ID,
		Name:        d.Name,
		Description: d.Description,
		Date:        d.Date,
		Location:    d.Location,
		UnitID:      d.UnitID,
		Active:      d.Active,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

type checkinDoc struct {
	ID          string    `bson:"_id"`
	EventID     string    `bson:"event_id"`
	StudentID   string    `bson:"student_id"`
	CheckedInAt time.Time `bson:"checked_in_at"`
	CreatedAt   time.Time `bson:"created_at"`
}

func (d checkinDoc) toDomain() entities.Checkin {
	return entities.Checkin{
		ID:          d.ID,
		EventID:     d.EventID,
		StudentID:   d.StudentID,
		CheckedInAt: d.CheckedInAt,
		CreatedAt:   d.CreatedAt,
	}
}

type studentDoc struct {
	ID        string    `bson:"_id"`
	Name      string    `bson:"name"`
	Email     string    `bson:"email"`
	Program   string    `bson:"program"`
	Active    bool      `bson:"active"`
	CreatedAt time.Time `bson:"created_at"`
	UpdatedAt time.Time `bson:"updated_at"`
}

func (d studentDoc) toDomain() entities.Student {
	return entities.Student{
		ID:        d.ID,
		Name:      d.Name,
		Email:     d.Email,
		Program:   d.Program,
		Active:    d.Active,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

type leadDoc struct {
	ID        string    `bson:"_id"`
	Name      string    `bson:"name"`
	Email     string    `bson:"email"`
	Phone     string    `bson:"phone"`
	Program   string    `bson:"program"`
	Source    string    `bson:"source"`
	Status    string    `bson:"status"`
	Notes     string    `bson:"notes"`
	CreatedAt time.Time `bson:"created_at"`
	UpdatedAt time.Time `bson:"updated_at"`
}

func (d leadDoc) toDomain() entities.Lead {
	return entities.Lead{
		ID:        d.ID,
		Name:      d.Name,
		Email:     d.Email,
		Phone:     d.Phone,
		Program:   d.Program,
		Source:    d.Source,
		Status:    d.Status,
		Notes:     d.Notes,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}
