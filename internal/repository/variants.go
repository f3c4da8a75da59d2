// Package repository provides data access for the variant catalog.
package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/conceptair/sizing-service/internal/domain/model"
)

// VariantConfig represents a stored aircraft variant document. Variants are
// versioned: an update deactivates the previous document and inserts a new
// one, keeping the history queryable.
type VariantConfig struct {
	ID        primitive.ObjectID    `bson:"_id,omitempty" json:"id"`
	Name      string                `bson:"name" json:"name"`
	Variant   model.AircraftVariant `bson:"variant" json:"variant"`
	Active    bool                  `bson:"active" json:"active"`
	Version   int                   `bson:"version" json:"version"`
	CreatedAt time.Time             `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time             `bson:"updated_at" json:"updated_at"`
	CreatedBy string                `bson:"created_by,omitempty" json:"created_by,omitempty"`
}

// VariantsRepository provides methods for variant catalog operations.
type VariantsRepository struct {
	collection *mongo.Collection
}

// NewVariantsRepository creates a new variants repository.
func NewVariantsRepository(db *MongoDB) *VariantsRepository {
	return &VariantsRepository{
		collection: db.Variants,
	}
}

// GetActive returns the active configuration of one variant, or nil when
// the variant is not stored.
func (r *VariantsRepository) GetActive(ctx context.Context, name string) (*VariantConfig, error) {
	var config VariantConfig
	err := r.collection.FindOne(ctx, bson.M{"name": name, "active": true}).Decode(&config)
	if err == mongo.ErrNoDocuments {
		return nil, nil // No active config found
	}
	if err != nil {
		return nil, err
	}
	return &config, nil
}

// ListActive returns the active configuration of every stored variant.
func (r *VariantsRepository) ListActive(ctx context.Context) ([]VariantConfig, error) {
	opts := options.Find().SetSort(bson.M{"name": 1})
	cursor, err := r.collection.Find(ctx, bson.M{"active": true}, opts)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var configs []VariantConfig
	if err := cursor.All(ctx, &configs); err != nil {
		return nil, err
	}

	return configs, nil
}

// Upsert stores a new version of a variant, deactivating any previous
// active document with the same name.
func (r *VariantsRepository) Upsert(ctx context.Context, variant model.AircraftVariant, createdBy string) (*VariantConfig, error) {
	previous, err := r.GetActive(ctx, variant.Name)
	if err != nil {
		return nil, err
	}

	version := 1
	if previous != nil {
		version = previous.Version + 1
		_, err = r.collection.UpdateMany(
			ctx,
			bson.M{"name": variant.Name, "active": true},
			bson.M{"$set": bson.M{"active": false, "updated_at": time.Now()}},
		)
		if err != nil {
			return nil, err
		}
	}

	config := VariantConfig{
		ID:        primitive.NewObjectID(),
		Name:      variant.Name,
		Variant:   variant,
		Active:    true,
		Version:   version,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
		CreatedBy: createdBy,
	}

	if _, err = r.collection.InsertOne(ctx, config); err != nil {
		return nil, err
	}

	return &config, nil
}

// History returns stored versions of one variant, newest first.
func (r *VariantsRepository) History(ctx context.Context, name string, limit int) ([]VariantConfig, error) {
	opts := options.Find().SetSort(bson.M{"version": -1})
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}

	cursor, err := r.collection.Find(ctx, bson.M{"name": name}, opts)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var configs []VariantConfig
	if err := cursor.All(ctx, &configs); err != nil {
		return nil, err
	}

	return configs, nil
}
