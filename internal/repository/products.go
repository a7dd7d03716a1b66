package repository

import (
	"context"
	"errors"

	"github.com/guttosm/packlist-service/internal/domain/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ProductRepository stores catalog products in MongoDB.
type ProductRepository struct {
	collection *mongo.Collection
}

// NewProductRepository creates a new product repository.
func NewProductRepository(db *MongoDB) *ProductRepository {
	return &ProductRepository{
		collection: db.Products,
	}
}

// List returns every product ordered by series and name.
func (r *ProductRepository) List(ctx context.Context) ([]model.Product, error) {
	opts := options.Find().SetSort(bson.D{{Key: "series", Value: 1}, {Key: "name", Value: 1}})

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var docs []ProductDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	products := make([]model.Product, len(docs))
	for i, doc := range docs {
		products[i] = doc.toModel()
	}
	return products, nil
}

// Get returns a product by ID, or ErrNotFound.
func (r *ProductRepository) Get(ctx context.Context, id string) (*model.Product, error) {
	var doc ProductDocument
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

// Create inserts a new product. It returns ErrDuplicateID when the ID is taken.
func (r *ProductRepository) Create(ctx context.Context, product model.Product) (*model.Product, error) {
	_, err := r.collection.InsertOne(ctx, newProductDocument(product))
	if mongo.IsDuplicateKeyError(err) {
		return nil, ErrDuplicateID
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// Update replaces an existing product.
func (r *ProductRepository) Update(ctx context.Context, product model.Product) (*model.Product, error) {
	res, err := r.collection.ReplaceOne(ctx, bson.M{"_id": product.ID}, newProductDocument(product))
	if err != nil {
		return nil, err
	}
	if res.MatchedCount == 0 {
		return nil, ErrNotFound
	}
	return &product, nil
}

// Delete removes a product by ID.
func (r *ProductRepository) Delete(ctx context.Context, id string) error {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Upsert writes all products in one unordered bulk operation.
func (r *ProductRepository) Upsert(ctx context.Context, products []model.Product) (int, error) {
	if len(products) == 0 {
		return 0, nil
	}

	writes := make([]mongo.WriteModel, len(products))
	for i, p := range products {
		writes[i] = mongo.NewReplaceOneModel().
			SetFilter(bson.M{"_id": p.ID}).
			SetReplacement(newProductDocument(p)).
			SetUpsert(true)
	}

	res, err := r.collection.BulkWrite(ctx, writes, options.BulkWrite().SetOrdered(false))
	if err != nil {
		return 0, err
	}
	return int(res.UpsertedCount + res.MatchedCount), nil
}
