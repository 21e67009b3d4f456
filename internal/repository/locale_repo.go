package repository

import (
	"context"
	"mammacheck/internal/model"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// LocaleRepo handles MongoDB operations for locale bundles. The language
// code is the document id, so a language has exactly one stored bundle.
type LocaleRepo interface {
	Get(ctx context.Context, language string) (*model.LocaleBundle, error)
	Upsert(ctx context.Context, bundle *model.LocaleBundle) error
	Languages(ctx context.Context) ([]string, error)
}

type localeRepo struct {
	collection *mongo.Collection
}

// NewLocaleRepo creates a new locale repository
func NewLocaleRepo(db *mongo.Database) LocaleRepo {
	return &localeRepo{
		collection: db.Collection("locales"),
	}
}

func (r *localeRepo) Get(ctx context.Context, language string) (*model.LocaleBundle, error) {
	var bundle model.LocaleBundle
	err := r.collection.FindOne(ctx, bson.M{"_id": language}).Decode(&bundle)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &bundle, nil
}

func (r *localeRepo) Upsert(ctx context.Context, bundle *model.LocaleBundle) error {
	bundle.UpdatedAt = time.Now()

	opts := options.Replace().SetUpsert(true)
	_, err := r.collection.ReplaceOne(ctx, bson.M{"_id": bundle.Language}, bundle, opts)
	return err
}

func (r *localeRepo) Languages(ctx context.Context) ([]string, error) {
	values, err := r.collection.Distinct(ctx, "_id", bson.M{})
	if err != nil {
		return nil, err
	}

	languages := make([]string, 0, len(values))
	for _, v := range values {
		if s, ok := v.(string); ok {
			languages = append(languages, s)
		}
	}
	return languages, nil
}
