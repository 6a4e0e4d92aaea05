package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type OrderItem struct {
	ItemID   primitive.ObjectID `bson:"item_id" json:"itemId"`
	Quantity int                `bson:"quantity" json:"quantity"`

	// Item is filled at read time and never stored.
	Item *MenuItemSummary `bson:"-" json:"item,omitempty"`
}

type OrderContact struct {
	Name    string `bson:"name" json:"name"`
	Email   string `bson:"email" json:"email"`
	Phone   string `bson:"phone" json:"phone"`
	Address string `bson:"address" json:"address"`
}

type Order struct {
	ID           primitive.ObjectID  `bson:"_id,omitempty" json:"_id"`
	UserID       *primitive.ObjectID `bson:"user_id" json:"userId"`
	Items        []OrderItem         `bson:"items" json:"items"`
	TotalAmount  float64             `bson:"total_amount" json:"totalAmount"`
	Status       OrderStatus         `bson:"status" json:"status"`
	CustomerInfo OrderContact        `bson:"customer_info" json:"customerInfo"`
	CreatedAt    time.Time           `bson:"created_at" json:"createdAt"`
	UpdatedAt    time.Time           `bson:"updated_at" json:"updatedAt"`

	// User is filled at read time for admin listings and never stored.
	User *AccountSummary `bson:"-" json:"user,omitempty"`
}

func (o *Order) Validate() error {
	if o.TotalAmount < 0 {
		return NewValidationError("totalAmount", "total amount must not be negative")
	}
	for i, item := range o.Items {
		if item.ItemID.IsZero() {
			return NewValidationError(indexed("items", i, "itemId"), "item id is required")
		}
		if item.Quantity < 1 {
			return NewValidationError(indexed("items", i, "quantity"), "quantity must be at least 1")
		}
	}
	if !o.Status.Valid() {
		return NewValidationError("status", "unknown order status "+string(o.Status))
	}
	return nil
}
