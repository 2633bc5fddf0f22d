package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type AgreementStatus string

const (
	AgreementDraft     AgreementStatus = "draft"
	AgreementPending   AgreementStatus = "pending"
	AgreementActive    AgreementStatus = "active"
	AgreementCompleted AgreementStatus = "completed"
	AgreementCancelled AgreementStatus = "cancelled"
)

type RentalAgreement struct {
	ID              string             `bson:"_id" json:"id"`
	PropertyID      string             `bson:"propertyId" json:"propertyId"`
	TenantID        primitive.ObjectID `bson:"tenantId" json:"tenantId"`
	LandlordID      primitive.ObjectID `bson:"landlordId" json:"landlordId"`
	StartDate       time.Time          `bson:"startDate" json:"startDate"`
	EndDate         time.Time          `bson:"endDate" json:"endDate"`
	MonthlyRent     float64            `bson:"monthlyRent" json:"monthlyRent"`
	SecurityDeposit float64            `bson:"securityDeposit" json:"securityDeposit"`
	Status          AgreementStatus    `bson:"status" json:"status"`
	SignedAt        *time.Time         `bson:"signedAt,omitempty" json:"signedAt,omitempty"`
	CreatedAt       time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// PartyTo reports whether the given user is the tenant or the landlord
// on the agreement.
func (a RentalAgreement) PartyTo(userID primitive.ObjectID) bool {
	return a.TenantID == userID || a.LandlordID == userID
}

type CreateAgreementRequest struct {
	PropertyID      string  `json:"propertyId" validate:"required"`
	LandlordID      string  `json:"landlordId" validate:"required"`
	StartDate       string  `json:"startDate" validate:"required"`
	EndDate         string  `json:"endDate" validate:"required"`
	MonthlyRent     float64 `json:"monthlyRent" validate:"gte=0"`
	SecurityDeposit float64 `json:"securityDeposit" validate:"gte=0"`
}
