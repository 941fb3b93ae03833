package repository

import (
	"context"
	"fmt"

	"main/model"
	"main/utils"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type UserRepo struct {
	MongoCollection *mongo.Collection
}

func GetUserRepo(client *mongo.Client, dbName string) *UserRepo {
	return &UserRepo{
		MongoCollection: client.Database(dbName).Collection("users"),
	}
}

// AddUser inserts a new identity. Username uniqueness is enforced by the
// unique index; a duplicate insert surfaces as model.ErrDuplicateUser.
func (r *UserRepo) AddUser(ctx context.Context, user *model.User) error {
	timer := utils.TrackDBOperation("insert", "users")
	defer timer.ObserveDuration()

	_, err := r.MongoCollection.InsertOne(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			utils.TrackError("database", "duplicate_user")
			return model.ErrDuplicateUser
		}
		utils.TrackError("database", "user_creation_failed")
		log.Error().Err(err).Msg("failed to add user to database")
		return fmt.Errorf("failed to add user: %w", err)
	}

	return nil
}

// FindUserByUsername returns (nil, nil) when no such user exists.
func (r *UserRepo) FindUserByUsername(ctx context.Context, username string) (*model.User, error) {
	timer := utils.TrackDBOperation("find", "users")
	defer timer.ObserveDuration()

	var user model.User
	filter := bson.D{{Key: "username", Value: username}}

	err := r.MongoCollection.FindOne(ctx, filter).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		utils.TrackError("database", "user_lookup_error")
		log.Error().Err(err).Msg("failed to look up user")
		return nil, err
	}

	return &user, nil
}
