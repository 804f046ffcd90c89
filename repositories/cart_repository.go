package repositories

import (
	"context"

	"fooddelivery/database"
	"fooddelivery/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type CartRepository struct {
	col *mongo.Collection
}

func NewCartRepository(db *mongo.Database) *CartRepository {
	return &CartRepository{col: db.Collection(database.CartCollection)}
}

func (r *CartRepository) Insert(ctx context.Context, item *models.CartItem) error {
	if _, err := r.col.InsertOne(ctx, item); err != nil {
		return wrap("insert cart item", err)
	}
	return nil
}

// DeleteOwned removes one line of the owner's cart. Unknown or malformed ids are not an error.
func (r *CartRepository) DeleteOwned(ctx context.Context, owner, itemID string) error {
	objID, ok := objectID(itemID)
	if !ok {
		return nil
	}
	if _, err := r.col.DeleteOne(ctx, bson.M{"_id": objID, "userId": owner}); err != nil {
		return wrap("delete cart item", err)
	}
	return nil
}

func (r *CartRepository) ListByOwner(ctx context.Context, owner string) ([]models.CartItem, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})
	cursor, err := r.col.Find(ctx, bson.M{"userId": owner}, opts)
	if err != nil {
		return nil, wrap("list cart", err)
	}

	items := []models.CartItem{}
	if err := cursor.All(ctx, &items); err != nil {
		return nil, wrap("decode cart", err)
	}
	return items, nil
}

func (r *CartRepository) DeleteAllByOwner(ctx context.Context, owner string) (int64, error) {
	res, err := r.col.DeleteMany(ctx, bson.M{"userId": owner})
	if err != nil {
		return 0, wrap("clear cart", err)
	}
	return res.DeletedCount, nil
}
