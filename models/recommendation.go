package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Recommendation is one user sharing a listing with another.
type Recommendation struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	RecommenderID primitive.ObjectID `bson:"recommenderId" json:"recommenderId"`
	RecipientID   primitive.ObjectID `bson:"recipientId" json:"recipientId"`
	PropertyID    string             `bson:"propertyId" json:"propertyId"`
	Message       string             `bson:"message,omitempty" json:"message,omitempty"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
}

type CreateRecommendationRequest struct {
	RecipientEmail string `json:"recipientEmail" validate:"required,email"`
	PropertyID     string `json:"propertyId" validate:"required"`
	Message        string `json:"message"`
}
