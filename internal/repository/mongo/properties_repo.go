package mongo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/baharkarakas/estate-api/internal/models"
	"github.com/baharkarakas/estate-api/internal/repository"
)

type propertiesRepo struct{ coll *mongo.Collection }

// propertyDoc is a property joined with its owner through $lookup.
type propertyDoc struct {
	models.Property `bson:",inline"`
	Owners          []models.OwnerSummary `bson:"owners"`
}

func (d propertyDoc) toModel() models.Property {
	p := d.Property
	if len(d.Owners) > 0 {
		o := d.Owners[0]
		p.Owner = &o
	}
	return p
}

func (r *propertiesRepo) Create(ctx context.Context, p models.Property) (models.Property, error) {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	now := time.Now().UTC().Truncate(time.Millisecond)
	p.CreatedAt, p.UpdatedAt = now, now

	if _, err := r.coll.InsertOne(ctx, p); err != nil {
		return models.Property{}, mapErr(err)
	}
	return p, nil
}

func (r *propertiesRepo) GetByID(ctx context.Context, id string) (models.Property, error) {
	out, err := r.aggregate(ctx, bson.D{{Key: "$match", Value: bson.M{"_id": id}}})
	if err != nil {
		return models.Property{}, err
	}
	if len(out) == 0 {
		return models.Property{}, repository.ErrNotFound
	}
	return out[0], nil
}

func (r *propertiesRepo) List(ctx context.Context) ([]models.Property, error) {
	return r.aggregate(ctx, bson.D{{Key: "$sort", Value: bson.M{"created_at": 1}}})
}

func (r *propertiesRepo) aggregate(ctx context.Context, first bson.D) ([]models.Property, error) {
	pipeline := mongo.Pipeline{
		first,
		{{Key: "$lookup", Value: bson.M{
			"from":         UsersCollection,
			"localField":   "owner",
			"foreignField": "_id",
			"as":           "owners",
			"pipeline": bson.A{
				bson.M{"$project": bson.M{"name": 1, "email": 1}},
			},
		}}},
	}
	cur, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := []models.Property{}
	for cur.Next(ctx) {
		var d propertyDoc
		if err := cur.Decode(&d); err != nil {
			return nil, err
		}
		out = append(out, d.toModel())
	}
	return out, cur.Err()
}

func (r *propertiesRepo) Update(ctx context.Context, p models.Property) (models.Property, error) {
	update := bson.M{"$set": bson.M{
		"title":       p.Title,
		"description": p.Description,
		"price":       p.Price,
		"location":    p.Location,
		"updated_at":  time.Now().UTC().Truncate(time.Millisecond),
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var out models.Property
	if err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": p.ID}, update, opts).Decode(&out); err != nil {
		return models.Property{}, mapErr(err)
	}
	return out, nil
}

func (r *propertiesRepo) Delete(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}
