package catalog

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"DestinyRealEstate/models"
)

var fixtureLocations = []string{
	"Goa, India",
	"Manali, Himachal Pradesh",
	"Jaipur, Rajasthan",
	"Bengaluru, Karnataka",
	"Pondicherry",
	"Munnar, Kerala",
}

var fixtureCategories = []string{"apartment", "villa", "studio", "cottage", "penthouse"}

var fixtureAmenities = []string{"wifi", "parking", "pool", "kitchen", "ac", "gym", "balcony"}

var fixtureDurations = []models.DurationUnit{
	models.DurationDay,
	models.DurationWeek,
	models.DurationMonth,
	models.DurationYear,
}

// Fixture builds n reproducible properties from a seed. Equal seeds
// yield byte-identical catalogs, so tests can assert exact contents.
func Fixture(seed int64, n int) []models.Property {
	rng := rand.New(rand.NewSource(seed))
	base := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

	props := make([]models.Property, 0, n)
	for i := 0; i < n; i++ {
		rating := math.Round(rng.Float64()*50) / 10
		amenities := make([]string, 0, 3)
		for j, a := range fixtureAmenities {
			if rng.Intn(len(fixtureAmenities)) <= j {
				amenities = append(amenities, a)
			}
		}
		created := base.AddDate(0, 0, i)
		props = append(props, models.Property{
			ExternalID:  fmt.Sprintf("PROP%d", 1001+i),
			Title:       fmt.Sprintf("Listing %d", i+1),
			Location:    fixtureLocations[i%len(fixtureLocations)],
			Price:       float64(500 + rng.Intn(70)*50),
			Duration:    fixtureDurations[i%len(fixtureDurations)],
			Category:    fixtureCategories[i%len(fixtureCategories)],
			Bedrooms:    1 + rng.Intn(4),
			Bathrooms:   1 + rng.Intn(3),
			Guests:      2 + rng.Intn(6),
			Amenities:   amenities,
			Features:    []string{"furnished"},
			Images:      []string{fmt.Sprintf("/images/prop-%d.jpg", i+1)},
			Rating:      rating,
			ReviewCount: rng.Intn(200),
			Available:   rng.Intn(4) != 0,
			Verified:    rng.Intn(2) == 0,
			Landlord: models.Landlord{
				Name:     fmt.Sprintf("Host %d", i+1),
				Rating:   math.Round(rng.Float64()*50) / 10,
				Verified: rng.Intn(2) == 0,
			},
			CreatedAt: created,
			UpdatedAt: created,
		})
	}
	return props
}
