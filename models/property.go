package models

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type DurationUnit string

const (
	DurationDay   DurationUnit = "day"
	DurationWeek  DurationUnit = "week"
	DurationMonth DurationUnit = "month"
	DurationYear  DurationUnit = "year"
)

func ParseDurationUnit(s string) (DurationUnit, error) {
	switch DurationUnit(s) {
	case DurationDay, DurationWeek, DurationMonth, DurationYear:
		return DurationUnit(s), nil
	}
	return "", fmt.Errorf("unknown duration unit %q", s)
}

// Landlord is embedded in a Property; transactional entities reference
// landlords by user ID instead.
type Landlord struct {
	Name     string  `bson:"name" json:"name"`
	Rating   float64 `bson:"rating" json:"rating"`
	Verified bool    `bson:"verified" json:"verified"`
}

type Property struct {
	ExternalID  string              `bson:"_id" json:"id"`
	Title       string              `bson:"title" json:"title"`
	Location    string              `bson:"location" json:"location"`
	Price       float64             `bson:"price" json:"price"`
	Duration    DurationUnit        `bson:"duration" json:"duration"`
	Category    string              `bson:"category" json:"category"`
	Bedrooms    int                 `bson:"bedrooms" json:"bedrooms"`
	Bathrooms   int                 `bson:"bathrooms" json:"bathrooms"`
	Guests      int                 `bson:"guests" json:"guests"`
	Amenities   []string            `bson:"amenities" json:"amenities"`
	Features    []string            `bson:"features" json:"features"`
	Images      []string            `bson:"images" json:"images"`
	Rating      float64             `bson:"rating" json:"rating"`
	ReviewCount int                 `bson:"reviewCount" json:"reviewCount"`
	Available   bool                `bson:"available" json:"available"`
	Verified    bool                `bson:"isVerified" json:"verified"`
	Landlord    Landlord            `bson:"landlord" json:"landlord"`
	CreatedBy   *primitive.ObjectID `bson:"createdBy,omitempty" json:"createdBy,omitempty"`
	CreatedAt   time.Time           `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time           `bson:"updatedAt" json:"updatedAt"`
}

// HasAmenity reports whether the property advertises the named amenity.
func (p Property) HasAmenity(name string) bool {
	for _, a := range p.Amenities {
		if a == name {
			return true
		}
	}
	return false
}

// SearchFilters narrows a catalog. Every field is optional; a nil or
// zero-valued field imposes no constraint.
type SearchFilters struct {
	Location  string        `json:"location,omitempty"`
	PriceMin  *float64      `json:"priceMin,omitempty"`
	PriceMax  *float64      `json:"priceMax,omitempty"`
	Duration  *DurationUnit `json:"duration,omitempty"`
	Category  string        `json:"category,omitempty"`
	Bedrooms  *int          `json:"bedrooms,omitempty"`
	Bathrooms *int          `json:"bathrooms,omitempty"`
	Amenities []string      `json:"amenities,omitempty"`
	Verified  *bool         `json:"verified,omitempty"`
	Available *bool         `json:"available,omitempty"`
}

func (f SearchFilters) Empty() bool {
	return f.Location == "" && f.PriceMin == nil && f.PriceMax == nil &&
		f.Duration == nil && f.Category == "" && f.Bedrooms == nil &&
		f.Bathrooms == nil && len(f.Amenities) == 0 && f.Verified == nil &&
		f.Available == nil
}

type CreatePropertyRequest struct {
	Title     string   `json:"title" validate:"required"`
	Location  string   `json:"location" validate:"required"`
	Price     float64  `json:"price" validate:"gte=0"`
	Duration  string   `json:"duration" validate:"required,oneof=day week month year"`
	Category  string   `json:"category" validate:"required"`
	Bedrooms  int      `json:"bedrooms" validate:"gte=0"`
	Bathrooms int      `json:"bathrooms" validate:"gte=0"`
	Guests    int      `json:"guests" validate:"gte=0"`
	Amenities []string `json:"amenities"`
	Features  []string `json:"features"`
	Images    []string `json:"images"`
	Landlord  Landlord `json:"landlord"`
}
