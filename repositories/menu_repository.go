package repositories

import (
	"context"
	"errors"
	"time"

	"fooddelivery/database"
	"fooddelivery/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MenuRepository struct {
	col *mongo.Collection
}

func NewMenuRepository(db *mongo.Database) *MenuRepository {
	return &MenuRepository{col: db.Collection(database.MenuCollection)}
}

func (r *MenuRepository) Insert(ctx context.Context, item *models.MenuItem) error {
	if _, err := r.col.InsertOne(ctx, item); err != nil {
		return wrap("insert menu item", err)
	}
	return nil
}

func (r *MenuRepository) List(ctx context.Context, onlyAvailable bool) ([]models.MenuItem, error) {
	filter := bson.M{}
	if onlyAvailable {
		filter["available"] = true
	}
	opts := options.Find().SetSort(bson.D{{Key: "category", Value: 1}, {Key: "name", Value: 1}})

	cursor, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, wrap("list menu", err)
	}

	items := []models.MenuItem{}
	if err := cursor.All(ctx, &items); err != nil {
		return nil, wrap("decode menu", err)
	}
	return items, nil
}

func (r *MenuRepository) Update(ctx context.Context, id string, patch models.MenuItemPatch) (*models.MenuItem, error) {
	objID, ok := objectID(id)
	if !ok {
		return nil, models.ErrNotFound
	}

	set := bson.M{"updatedAt": time.Now().UTC()}
	if patch.Name != nil {
		set["name"] = *patch.Name
	}
	if patch.Description != nil {
		set["description"] = *patch.Description
	}
	if patch.Price != nil {
		set["price"] = *patch.Price
	}
	if patch.Image != nil {
		set["image"] = *patch.Image
	}
	if patch.Category != nil {
		set["category"] = *patch.Category
	}
	if patch.Available != nil {
		set["available"] = *patch.Available
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var updated models.MenuItem
	err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": objID}, bson.M{"$set": set}, opts).Decode(&updated)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, wrap("update menu item", err)
	}
	return &updated, nil
}

func (r *MenuRepository) Delete(ctx context.Context, id string) error {
	objID, ok := objectID(id)
	if !ok {
		return nil
	}
	if _, err := r.col.DeleteOne(ctx, bson.M{"_id": objID}); err != nil {
		return wrap("delete menu item", err)
	}
	return nil
}
