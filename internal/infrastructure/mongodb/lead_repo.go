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

var _ output.LeadRepository = (*LeadRepository)(nil)

type LeadRepository struct {
	col *mongo.Collection
}

func NewLeadRepository(db *mongo.Database) *LeadRepository {
	return &LeadRepository{col: db.Collection(leadCollection)}
}

func (r *LeadRepository) Create(ctx context.Context, lead *entities.Lead) error {
	now := time.Now().UTC()
	lead.CreatedAt = now
	lead.UpdatedAt = now
	doc := leadDoc{
		ID:        lead.ID,
		Name:      lead.Name,
		Email:     lead.Email,
		Phone:     lead.Phone,
		Program:   lead.Program,
		Source:    lead.Source,
		Status:    lead.Status,
		Notes:     lead.Notes,
		CreatedAt: lead.CreatedAt,
		UpdatedAt: lead.UpdatedAt,
	}
	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("create lead: %w", err)
	}
	return nil
}

func (r *LeadRepository) FindByID(ctx context.Context, id string) (*entities.Lead, error) {
	var doc leadDoc
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrLeadNotFound
		}
		return nil, fmt.Errorf("get lead by id: %w", err)
	}
	l := doc.toDomain()
	return &l, nil
}

func (r *LeadRepository) FindAll(ctx context.Context, status string) ([]entities.Lead, error) {
	filter := bson.M{}
	if status != "" {
		filter["status"] = status
	}
	cursor, err := r.col.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("list leads: %w", err)
	}
	defer cursor.Close(ctx)

	var out []entities.Lead
	for cursor.Next(ctx) {
		var doc leadDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode lead: %w", err)
		}
		out = append(out, doc.toDomain())
	}
	return out, cursor.Err()
}

func (r *LeadRepository) Update(ctx context.Context, lead *entities.Lead) error {
	lead.UpdatedAt = time.Now().UTC()
	res, err := r.col.UpdateOne(ctx, bson.M{"_id": lead.ID}, bson.M{"$set": bson.M{
		"name":       lead.Name,
		"email":      lead.Email,
		"phone":      lead.Phone,
		"program":    lead.Program,
		"source":     lead.Source,
		"status":     lead.Status,
		"notes":      lead.Notes,
		"updated_at": lead.UpdatedAt,
	}})
	if err != nil {
		return fmt.Errorf("update lead: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrLeadNotFound
	}
	return nil
}

func (r *LeadRepository) Delete(ctx context.Context, id string) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete lead: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrLeadNotFound
	}
	return nil
}
