package repositories

import (
	"context"

	"fooddelivery/database"
	"fooddelivery/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type FeedbackRepository struct {
	col *mongo.Collection
}

func NewFeedbackRepository(db *mongo.Database) *FeedbackRepository {
	return &FeedbackRepository{col: db.Collection(database.FeedbackCollection)}
}

func (r *FeedbackRepository) Insert(ctx context.Context, fb *models.Feedback) error {
	if _, err := r.col.InsertOne(ctx, fb); err != nil {
		return wrap("insert feedback", err)
	}
	return nil
}

func (r *FeedbackRepository) List(ctx context.Context) ([]models.Feedback, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, wrap("list feedback", err)
	}

	feedback := []models.Feedback{}
	if err := cursor.All(ctx, &feedback); err != nil {
		return nil, wrap("decode feedback", err)
	}
	return feedback, nil
}

func (r *FeedbackRepository) Delete(ctx context.Context, id string) error {
	objID, ok := objectID(id)
	if !ok {
		return nil
	}
	if _, err := r.col.DeleteOne(ctx, bson.M{"_id": objID}); err != nil {
		return wrap("delete feedback", err)
	}
	return nil
}
