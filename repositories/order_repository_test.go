package repositories

import (
	"context"
	"testing"
	"time"

	"fooddelivery/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func orderDoc(orderID, owner string, status models.OrderStatus, amount float64) bson.D {
	return bson.D{
		{Key: "_id", Value: primitive.NewObjectID()},
		{Key: "orderId", Value: orderID},
		{Key: "orderAmount", Value: amount},
		{Key: "userName", Value: "alice"},
		{Key: "orderedBy", Value: owner},
		{Key: "orderStatus", Value: string(status)},
		{Key: "createdAt", Value: time.Now()},
	}
}

func TestOrderRepository(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	ctx := context.Background()

	mt.Run("insert maps duplicate key to ErrDuplicateOrder", func(mt *mtest.T) {
		repo := NewOrderRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index:   0,
			Code:    11000,
			Message: "E11000 duplicate key error collection: test.orders index: orderId_1",
		}))

		err := repo.Insert(ctx, &models.Order{OrderID: "X1", OrderAmount: 42})
		require.ErrorIs(mt, err, models.ErrDuplicateOrder)
	})

	mt.Run("find missing order is ErrNotFound", func(mt *mtest.T) {
		repo := NewOrderRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "test.orders", mtest.FirstBatch))

		order, err := repo.FindByOrderID(ctx, "nope")
		require.ErrorIs(mt, err, models.ErrNotFound)
		assert.Nil(mt, order)
	})

	mt.Run("update status returns the updated document", func(mt *mtest.T) {
		repo := NewOrderRepository(mt.DB)
		mt.AddMockResponses(bson.D{
			{Key: "ok", Value: 1},
			{Key: "value", Value: orderDoc("X1", "u1", models.StatusProcessing, 42)},
		})

		order, err := repo.UpdateStatus(ctx, "X1", models.StatusPlaced, models.StatusProcessing)
		require.NoError(mt, err)
		assert.Equal(mt, models.StatusProcessing, order.OrderStatus)
		assert.Equal(mt, "u1", order.OrderedBy)
	})

	mt.Run("update status with stale from is ErrInvalidTransition", func(mt *mtest.T) {
		repo := NewOrderRepository(mt.DB)
		mt.AddMockResponses(bson.D{
			{Key: "ok", Value: 1},
			{Key: "value", Value: nil},
		})

		_, err := repo.UpdateStatus(ctx, "X1", models.StatusShipped, models.StatusDelivered)
		require.ErrorIs(mt, err, models.ErrInvalidTransition)
	})

	mt.Run("list by owner decodes every order", func(mt *mtest.T) {
		repo := NewOrderRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "test.orders", mtest.FirstBatch,
			orderDoc("X1", "u1", models.StatusPlaced, 10),
			orderDoc("X2", "u1", models.StatusShipped, 20),
		))

		orders, err := repo.ListByOwner(ctx, "u1")
		require.NoError(mt, err)
		require.Len(mt, orders, 2)
		assert.Equal(mt, "X1", orders[0].OrderID)
		assert.Equal(mt, "X2", orders[1].OrderID)
	})

	mt.Run("list with no orders is an empty slice", func(mt *mtest.T) {
		repo := NewOrderRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "test.orders", mtest.FirstBatch))

		orders, err := repo.ListAll(ctx)
		require.NoError(mt, err)
		assert.NotNil(mt, orders)
		assert.Empty(mt, orders)
	})

	mt.Run("delete of an absent order removes nothing", func(mt *mtest.T) {
		repo := NewOrderRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}))

		n, err := repo.Delete(ctx, "X1", "u1")
		require.NoError(mt, err)
		assert.Zero(mt, n)
	})

	mt.Run("shipped summary", func(mt *mtest.T) {
		repo := NewOrderRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "test.orders", mtest.FirstBatch, bson.D{
			{Key: "_id", Value: nil},
			{Key: "count", Value: int32(3)},
			{Key: "totalAmount", Value: 126.5},
		}))

		summary, err := repo.ShippedSummary(ctx)
		require.NoError(mt, err)
		assert.Equal(mt, int64(3), summary.Count)
		assert.InDelta(mt, 126.5, summary.TotalAmount, 0.0001)
	})

	mt.Run("shipped summary without shipped orders is zero", func(mt *mtest.T) {
		repo := NewOrderRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "test.orders", mtest.FirstBatch))

		summary, err := repo.ShippedSummary(ctx)
		require.NoError(mt, err)
		assert.Equal(mt, models.ShippedSummary{}, summary)
	})
}
