package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// WishlistItem marks a user's interest in a property. (user, property)
// pairs behave as a set: saving an existing pair is a no-op.
type WishlistItem struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID     primitive.ObjectID `bson:"userId" json:"userId"`
	PropertyID string             `bson:"propertyId" json:"propertyId"`
	CreatedAt  time.Time          `bson:"createdAt" json:"createdAt"`

	// Property snapshot embedded in API responses only.
	Property *Property `bson:"-" json:"property,omitempty"`
}
