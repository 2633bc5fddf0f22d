package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCompleted BookingStatus = "completed"
	BookingCancelled BookingStatus = "cancelled"
)

// PaymentStatus is an axis orthogonal to BookingStatus; the lifecycle
// package enforces how the two interact.
type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentPaid     PaymentStatus = "paid"
	PaymentRefunded PaymentStatus = "refunded"
)

type Booking struct {
	ID            string             `bson:"_id" json:"id"`
	PropertyID    string             `bson:"propertyId" json:"propertyId"`
	UserID        primitive.ObjectID `bson:"userId" json:"userId"`
	CheckIn       time.Time          `bson:"checkIn" json:"checkIn"`
	CheckOut      time.Time          `bson:"checkOut" json:"checkOut"`
	Guests        int                `bson:"guests" json:"guests"`
	TotalAmount   float64            `bson:"totalAmount" json:"totalAmount"`
	Status        BookingStatus      `bson:"status" json:"status"`
	PaymentStatus PaymentStatus      `bson:"paymentStatus" json:"paymentStatus"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
}

// OwnedBy reports whether the booking belongs to the given user.
func (b Booking) OwnedBy(userID primitive.ObjectID) bool {
	return b.UserID == userID
}

type CreateBookingRequest struct {
	PropertyID  string  `json:"propertyId" validate:"required"`
	CheckIn     string  `json:"checkIn" validate:"required"`
	CheckOut    string  `json:"checkOut" validate:"required"`
	Guests      int     `json:"guests" validate:"gte=1"`
	TotalAmount float64 `json:"totalAmount" validate:"gte=0"`
}
