package repository

import (
	"context"
	"time"

	"main/model"
	"main/utils"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type NotesRepo struct {
	MongoCollection *mongo.Collection
}

func GetNotesRepo(client *mongo.Client, dbName string) *NotesRepo {
	return &NotesRepo{
		MongoCollection: client.Database(dbName).Collection("notes"),
	}
}

// visibilityFilter matches notes the user owns or appears on the share
// list of.
func visibilityFilter(userID string) bson.M {
	return bson.M{
		"$or": []bson.M{
			{"owner": userID},
			{"shared_with": userID},
		},
	}
}

// CreateNote inserts a new note
func (r *NotesRepo) CreateNote(ctx context.Context, note *model.Note) error {
	timer := utils.TrackDBOperation("insert", "notes")
	defer timer.ObserveDuration()

	now := time.Now()
	note.CreatedAt = now
	note.UpdatedAt = now

	_, err := r.MongoCollection.InsertOne(ctx, note)
	if err != nil {
		utils.TrackError("database", "note_creation_failed")
		log.Error().Err(err).Msg("failed to insert note")
		return err
	}
	return nil
}

// GetNote fetches a note by id regardless of caller. Access decisions are
// made by the caller against the returned document.
func (r *NotesRepo) GetNote(ctx context.Context, noteID string) (*model.Note, error) {
	timer := utils.TrackDBOperation("find", "notes")
	defer timer.ObserveDuration()

	var note model.Note
	err := r.MongoCollection.FindOne(ctx, bson.M{"_id": noteID}).Decode(&note)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, model.ErrNoteNotFound
		}
		utils.TrackError("database", "note_lookup_error")
		log.Error().Err(err).Str("note_id", noteID).Msg("failed to fetch note")
		return nil, err
	}
	return &note, nil
}

// GetVisibleNotes retrieves all notes owned by or shared with the user.
// A single query over the visibility filter cannot return duplicates.
func (r *NotesRepo) GetVisibleNotes(ctx context.Context, userID string) ([]*model.Note, error) {
	timer := utils.TrackDBOperation("find", "notes")
	defer timer.ObserveDuration()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.MongoCollection.Find(ctx, visibilityFilter(userID), opts)
	if err != nil {
		utils.TrackError("database", "notes_list_error")
		log.Error().Err(err).Msg("failed to list notes")
		return nil, err
	}
	defer cursor.Close(ctx)

	notes := []*model.Note{}
	if err = cursor.All(ctx, &notes); err != nil {
		utils.TrackError("database", "notes_decode_error")
		return nil, err
	}
	return notes, nil
}

// UpdateNote replaces title and content of a note scoped to its owner, so
// a non-owner's update attempt is indistinguishable from a missing note.
func (r *NotesRepo) UpdateNote(ctx context.Context, noteID, ownerID, title, content string) (*model.Note, error) {
	timer := utils.TrackDBOperation("update", "notes")
	defer timer.ObserveDuration()

	filter := bson.M{
		"_id":   noteID,
		"owner": ownerID,
	}
	update := bson.M{
		"$set": bson.M{
			"title":      title,
			"content":    content,
			"updated_at": time.Now(),
		},
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated model.Note
	err := r.MongoCollection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&updated)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, model.ErrNoteNotFound
		}
		utils.TrackError("database", "note_update_failed")
		log.Error().Err(err).Str("note_id", noteID).Msg("failed to update note")
		return nil, err
	}
	return &updated, nil
}

// DeleteNote deletes a note scoped to its owner.
func (r *NotesRepo) DeleteNote(ctx context.Context, noteID, ownerID string) error {
	timer := utils.TrackDBOperation("delete", "notes")
	defer timer.ObserveDuration()

	filter := bson.M{
		"_id":   noteID,
		"owner": ownerID,
	}

	result, err := r.MongoCollection.DeleteOne(ctx, filter)
	if err != nil {
		utils.TrackError("database", "note_deletion_failed")
		log.Error().Err(err).Str("note_id", noteID).Msg("failed to delete note")
		return err
	}
	if result.DeletedCount == 0 {
		return model.ErrNoteNotFound
	}
	return nil
}

// ShareNote appends the recipient to the share list of an owned note.
// $addToSet keeps shared_with a set and applies atomically, so concurrent
// shares to the same note cannot lose each other's recipient.
func (r *NotesRepo) ShareNote(ctx context.Context, noteID, ownerID, recipientID string) error {
	timer := utils.TrackDBOperation("update", "notes")
	defer timer.ObserveDuration()

	filter := bson.M{
		"_id":   noteID,
		"owner": ownerID,
	}
	update := bson.M{
		"$addToSet": bson.M{"shared_with": recipientID},
		"$set":      bson.M{"updated_at": time.Now()},
	}

	result, err := r.MongoCollection.UpdateOne(ctx, filter, update)
	if err != nil {
		utils.TrackError("database", "note_share_failed")
		log.Error().Err(err).Str("note_id", noteID).Msg("failed to share note")
		return err
	}
	if result.MatchedCount == 0 {
		return model.ErrNoteNotFound
	}
	return nil
}

// SearchNotes runs a full-text match over title and content, intersected
// with the caller's visible set. Results are ranked by text score with id
// ascending as the stable tie-break.
func (r *NotesRepo) SearchNotes(ctx context.Context, userID, query string) ([]*model.Note, error) {
	timer := utils.TrackDBOperation("find", "notes")
	defer timer.ObserveDuration()

	filter := bson.M{
		"$and": []bson.M{
			{"$text": bson.M{"$search": query}},
			visibilityFilter(userID),
		},
	}

	opts := options.Find().
		SetProjection(bson.M{"score": bson.M{"$meta": "textScore"}}).
		SetSort(bson.D{
			{Key: "score", Value: bson.M{"$meta": "textScore"}},
			{Key: "_id", Value: 1},
		})

	cursor, err := r.MongoCollection.Find(ctx, filter, opts)
	if err != nil {
		utils.TrackError("database", "note_search_failed")
		log.Error().Err(err).Msg("failed to search notes")
		return nil, err
	}
	defer cursor.Close(ctx)

	notes := []*model.Note{}
	if err = cursor.All(ctx, &notes); err != nil {
		utils.TrackError("database", "notes_decode_error")
		return nil, err
	}
	return notes, nil
}
