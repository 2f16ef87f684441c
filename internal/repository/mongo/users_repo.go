package mongo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/baharkarakas/estate-api/internal/models"
)

type usersRepo struct{ coll *mongo.Collection }

func (r *usersRepo) Create(ctx context.Context, u models.User) (models.User, error) {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	now := time.Now().UTC().Truncate(time.Millisecond)
	u.CreatedAt, u.UpdatedAt = now, now

	if _, err := r.coll.InsertOne(ctx, u); err != nil {
		return models.User{}, mapErr(err)
	}
	return u, nil
}

func (r *usersRepo) GetByID(ctx context.Context, id string) (models.User, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *usersRepo) GetByEmail(ctx context.Context, email string) (models.User, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *usersRepo) findOne(ctx context.Context, filter bson.M) (models.User, error) {
	var u models.User
	err := r.coll.FindOne(ctx, filter).Decode(&u)
	return u, mapErr(err)
}
