package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"dojocrm/internal/domain"
	"dojocrm/internal/domain/entities"
	"dojocrm/internal/ports/output"
)

var _ output.CheckinRepository = (*CheckinRepository)(nil)

// CheckinRepository persists check-ins in MongoDB. The unique compound index
// on {event_id, student_id} (see EnsureIndexes) plays the same authoritative
// duplicate-guard role as the postgres constraint.
type CheckinRepository struct {
	col *mongo.Collection
}

func NewCheckinRepository(db *mongo.Database) *CheckinRepository {
	return &CheckinRepository{col: db.Collection(checkinCollection)}
}

func (r *CheckinRepository) Create(ctx context.Context, checkin *entities.Checkin) error {
	checkin.CreatedAt = time.Now().UTC()
	doc := checkinDoc{
		ID:          checkin.ID,
		EventID:     checkin.EventID,
		StudentID:   checkin.StudentID,
		CheckedInAt: checkin.CheckedInAt,
		CreatedAt:   checkin.CreatedAt,
	}
	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrAlreadyCheckedIn
		}
		return fmt.Errorf("create check-in: %w", err)
	}
	return nil
}

func (r *CheckinRepository) FindByID(ctx context.Context, id string) (*entities.Checkin, error) {
	var doc checkinDoc
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrCheckinNotFound
		}
		return nil, fmt.Errorf("get check-in by id: %w", err)
	}
	c := doc.toDomain()
	return &c, nil
}

func (r *CheckinRepository) FindByEventID(ctx context.Context, eventID string) ([]entities.Checkin, error) {
	return r.list(ctx, bson.M{"event_id": eventID})
}

func (r *CheckinRepository) FindByStudentID(ctx context.Context, studentID string) ([]entities.Checkin, error) {
	return r.list(ctx, bson.M{"student_id": studentID})
}

func (r *CheckinRepository) list(ctx context.Context, filter bson.M) ([]entities.Checkin, error) {
	cursor, err := r.col.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "checked_in_at", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list check-ins: %w", err)
	}
	defer cursor.Close(ctx)

	var out []entities.Checkin
	for cursor.Next(ctx) {
		var doc checkinDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode check-in: %w", err)
		}
		out = append(out, doc.toDomain())
	}
	return out, cursor.Err()
}

func (r *CheckinRepository) Delete(ctx context.Context, id string) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete check-in: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrCheckinNotFound
	}
	return nil
}
