package domain

import (
	"errors"
	"time"
)

var ErrOrderNotFound = errors.New("order not found")

// ErrNotOwner is returned when a non-privileged caller touches an order that
// belongs to someone else. Ownership is only evaluated after the order has
// been confirmed to exist, so not-found always wins over forbidden.
var ErrNotOwner = errors.New("not the order owner")

// Order references exactly one owning account. The owner relation is read
// fresh from the store for every authorization decision, never cached.
type Order struct {
	ID         string    `json:"id" bson:"_id,omitempty"`
	UserID     string    `json:"-" bson:"user_id"`
	Username   string    `json:"user" bson:"username"`
	Books      []Book    `json:"books" bson:"books"`
	TotalPrice float64   `json:"total_price" bson:"total_price"`
	CreatedAt  time.Time `json:"created_at" bson:"created_at"`
}

// AccessibleBy reports whether the identity may read, update or delete this
// order: privileged roles see everything, everyone else only their own.
func (o *Order) AccessibleBy(id Identity) bool {
	return id.Role.Privileged() || o.UserID == id.AccountID
}
