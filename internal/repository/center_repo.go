package repository

import (
	"context"
	"mammacheck/internal/model"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CenterRepo handles MongoDB operations for screening centers
type CenterRepo interface {
	Create(ctx context.Context, center *model.ScreeningCenter) (string, error)
	GetByID(ctx context.Context, id string) (*model.ScreeningCenter, error)
	List(ctx context.Context, city string, limit int64) ([]*model.ScreeningCenter, error)
	UpsertBySourceID(ctx context.Context, center *model.ScreeningCenter) error
}

type centerRepo struct {
	collection *mongo.Collection
}

// NewCenterRepo creates a new center repository
func NewCenterRepo(db *mongo.Database) CenterRepo {
	return &centerRepo{
		collection: db.Collection("centers"),
	}
}

func (r *centerRepo) Create(ctx context.Context, center *model.ScreeningCenter) (string, error) {
	center.CreatedAt = time.Now()
	center.UpdatedAt = time.Now()

	result, err := r.collection.InsertOne(ctx, center)
	if err != nil {
		return "", err
	}

	oid, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", nil
	}
	return oid.Hex(), nil
}

func (r *centerRepo) GetByID(ctx context.Context, id string) (*model.ScreeningCenter, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}

	var center model.ScreeningCenter
	err = r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&center)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	center.ID = id
	return &center, nil
}

func (r *centerRepo) List(ctx context.Context, city string, limit int64) ([]*model.ScreeningCenter, error) {
	filter := bson.M{}
	if city != "" {
		filter["city"] = primitive.Regex{Pattern: "^" + regexp.QuoteMeta(city) + "$", Options: "i"}
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "city", Value: 1}, {Key: "name", Value: 1}}).
		SetLimit(limit)

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var centers []*model.ScreeningCenter
	if err := cursor.All(ctx, &centers); err != nil {
		return nil, err
	}
	return centers, nil
}

func (r *centerRepo) UpsertBySourceID(ctx context.Context, center *model.ScreeningCenter) error {
	now := time.Now()
	update := bson.M{
		"$set": bson.M{
			"name":      center.Name,
			"city":      center.City,
			"address":   center.Address,
			"phone":     center.Phone,
			"lat":       center.Latitude,
			"lng":       center.Longitude,
			"updatedAt": now,
		},
		"$setOnInsert": bson.M{"createdAt": now},
	}

	opts := options.Update().SetUpsert(true)
	_, err := r.collection.UpdateOne(ctx, bson.M{"sourceId": center.SourceID}, update, opts)
	return err
}
