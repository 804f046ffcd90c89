package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type OrderStatus string

const (
	StatusPlaced     OrderStatus = "placed"
	StatusProcessing OrderStatus = "processing"
	StatusShipped    OrderStatus = "shipped"
	StatusDelivered  OrderStatus = "delivered"
	StatusCancelled  OrderStatus = "cancelled"
)

var validTransitions = map[OrderStatus][]OrderStatus{
	StatusPlaced:     {StatusProcessing, StatusShipped, StatusDelivered, StatusCancelled},
	StatusProcessing: {StatusShipped, StatusDelivered, StatusCancelled},
	StatusShipped:    {StatusDelivered},
	StatusDelivered:  {},
	StatusCancelled:  {},
}

// IsValid reports whether s is one of the known statuses.
func (s OrderStatus) IsValid() bool {
	_, ok := validTransitions[s]
	return ok
}

// CanTransitionTo reports whether an order in status s may move to next.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, allowed := range validTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

type Order struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	OrderID     string             `bson:"orderId" json:"orderId"`
	OrderAmount float64            `bson:"orderAmount" json:"orderAmount"`
	UserName    string             `bson:"userName" json:"userName"`
	OrderedBy   string             `bson:"orderedBy" json:"orderedBy"`
	OrderStatus OrderStatus        `bson:"orderStatus" json:"orderStatus"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// Status returns the order status, reading documents written without one as placed.
func (o Order) Status() OrderStatus {
	if o.OrderStatus == "" {
		return StatusPlaced
	}
	return o.OrderStatus
}

type ShippedSummary struct {
	Count       int64   `bson:"count" json:"totalShippedOrders"`
	TotalAmount float64 `bson:"totalAmount" json:"totalAmount"`
}

// PlaceOrder is the checkout body. The owner always comes from the session.
type PlaceOrder struct {
	OrderID     string  `json:"orderId" binding:"required"`
	OrderAmount float64 `json:"orderAmount" binding:"required,gt=0"`
	UserName    string  `json:"userName"`
}

type StatusUpdate struct {
	OrderStatus OrderStatus `json:"orderStatus" binding:"required,orderstatus"`
}
