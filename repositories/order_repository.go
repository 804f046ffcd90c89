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

type OrderRepository struct {
	col *mongo.Collection
}

func NewOrderRepository(db *mongo.Database) *OrderRepository {
	return &OrderRepository{col: db.Collection(database.OrdersCollection)}
}

func (r *OrderRepository) Insert(ctx context.Context, order *models.Order) error {
	if _, err := r.col.InsertOne(ctx, order); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return models.ErrDuplicateOrder
		}
		return wrap("insert order", err)
	}
	return nil
}

func (r *OrderRepository) FindByOrderID(ctx context.Context, orderID string) (*models.Order, error) {
	var order models.Order
	err := r.col.FindOne(ctx, bson.M{"orderId": orderID}).Decode(&order)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, wrap("find order", err)
	}
	return &order, nil
}

// UpdateStatus moves an order from one status to another. The write only applies
// while the stored status is still from; otherwise ErrInvalidTransition is returned.
func (r *OrderRepository) UpdateStatus(ctx context.Context, orderID string, from, to models.OrderStatus) (*models.Order, error) {
	filter := bson.M{"orderId": orderID, "orderStatus": from}
	if from == models.StatusPlaced {
		// older documents were written without a status
		filter["orderStatus"] = bson.M{"$in": bson.A{models.StatusPlaced, "", nil}}
	}
	update := bson.M{
		"$set": bson.M{
			"orderStatus": to,
			"updatedAt":   time.Now().UTC(),
		},
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated models.Order
	err := r.col.FindOneAndUpdate(ctx, filter, update, opts).Decode(&updated)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, models.ErrInvalidTransition
	}
	if err != nil {
		return nil, wrap("update order status", err)
	}
	return &updated, nil
}

func (r *OrderRepository) ListByOwner(ctx context.Context, owner string) ([]models.Order, error) {
	return r.find(ctx, bson.M{"orderedBy": owner})
}

func (r *OrderRepository) ListAll(ctx context.Context) ([]models.Order, error) {
	return r.find(ctx, bson.M{})
}

func (r *OrderRepository) find(ctx context.Context, filter bson.M) ([]models.Order, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, wrap("list orders", err)
	}

	orders := []models.Order{}
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, wrap("decode orders", err)
	}
	return orders, nil
}

// Delete removes the order with orderID. A non-empty owner restricts the delete
// to orders placed by that user. Returns the number of documents removed.
func (r *OrderRepository) Delete(ctx context.Context, orderID, owner string) (int64, error) {
	filter := bson.M{"orderId": orderID}
	if owner != "" {
		filter["orderedBy"] = owner
	}
	res, err := r.col.DeleteOne(ctx, filter)
	if err != nil {
		return 0, wrap("delete order", err)
	}
	return res.DeletedCount, nil
}

func (r *OrderRepository) ShippedSummary(ctx context.Context) (models.ShippedSummary, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.D{{Key: "orderStatus", Value: models.StatusShipped}}}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: nil},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
			{Key: "totalAmount", Value: bson.D{{Key: "$sum", Value: "$orderAmount"}}},
		}}},
	}

	cursor, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return models.ShippedSummary{}, wrap("aggregate shipped orders", err)
	}

	var rows []models.ShippedSummary
	if err := cursor.All(ctx, &rows); err != nil {
		return models.ShippedSummary{}, wrap("decode shipped summary", err)
	}
	if len(rows) == 0 {
		return models.ShippedSummary{}, nil
	}
	return rows[0], nil
}
