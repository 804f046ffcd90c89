package repositories

import (
	"context"
	"errors"

	"fooddelivery/database"
	"fooddelivery/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// SessionRepository stores issued sessions. Expired documents are reaped by
// the TTL index on expiresAt.
type SessionRepository struct {
	col *mongo.Collection
}

func NewSessionRepository(db *mongo.Database) *SessionRepository {
	return &SessionRepository{col: db.Collection(database.SessionsCollection)}
}

func (r *SessionRepository) Create(ctx context.Context, session *models.Session) error {
	if _, err := r.col.InsertOne(ctx, session); err != nil {
		return wrap("insert session", err)
	}
	return nil
}

func (r *SessionRepository) FindByID(ctx context.Context, id string) (*models.Session, error) {
	var session models.Session
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&session)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, wrap("find session", err)
	}
	return &session, nil
}

func (r *SessionRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.col.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return wrap("delete session", err)
	}
	return nil
}
