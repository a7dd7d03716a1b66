package repository

import (
	"context"
	"errors"

	"github.com/guttosm/packlist-service/internal/domain/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ProformaRepository stores proforma invoices in MongoDB.
type ProformaRepository struct {
	collection *mongo.Collection
}

// NewProformaRepository creates a new proforma repository.
func NewProformaRepository(db *MongoDB) *ProformaRepository {
	return &ProformaRepository{
		collection: db.Proformas,
	}
}

// List returns proformas, newest first.
func (r *ProformaRepository) List(ctx context.Context, limit int) ([]model.Proforma, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var docs []ProformaDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	proformas := make([]model.Proforma, len(docs))
	for i, doc := range docs {
		proformas[i] = doc.toModel()
	}
	return proformas, nil
}

// Get returns a proforma by ID, or ErrNotFound.
func (r *ProformaRepository) Get(ctx context.Context, id string) (*model.Proforma, error) {
	var doc ProformaDocument
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	p := doc.toModel()
	return &p, nil
}

// Create inserts a proforma. ID and timestamps must already be set.
func (r *ProformaRepository) Create(ctx context.Context, proforma *model.Proforma) error {
	_, err := r.collection.InsertOne(ctx, newProformaDocument(proforma))
	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicateID
	}
	return err
}

// Update replaces a stored proforma.
func (r *ProformaRepository) Update(ctx context.Context, proforma *model.Proforma) error {
	res, err := r.collection.ReplaceOne(ctx, bson.M{"_id": proforma.ID}, newProformaDocument(proforma))
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a proforma by ID.
func (r *ProformaRepository) Delete(ctx context.Context, id string) error {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
