package search

import (
	"testing"

	"DestinyRealEstate/apperr"
	"DestinyRealEstate/catalog"
	"DestinyRealEstate/models"
)

func f64(v float64) *float64 { return &v }

func num(v int) *int { return &v }

func boolp(v bool) *bool { return &v }

func dur(v models.DurationUnit) *models.DurationUnit { return &v }

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	cat, err := catalog.New([]models.Property{
		{
			ExternalID: "PROP1001", Location: "Goa, India", Price: 900,
			Duration: models.DurationMonth, Category: "apartment",
			Bedrooms: 2, Bathrooms: 1,
			Amenities: []string{"wifi", "parking"},
			Verified:  true, Available: true, Rating: 4.2,
		},
		{
			ExternalID: "PROP1002", Location: "Manali, Himachal Pradesh", Price: 1200,
			Duration: models.DurationMonth, Category: "cottage",
			Bedrooms: 3, Bathrooms: 2,
			Amenities: []string{"wifi", "kitchen", "parking"},
			Verified:  false, Available: true, Rating: 3.8,
		},
		{
			ExternalID: "PROP1003", Location: "Jaipur, Rajasthan", Price: 3500,
			Duration: models.DurationYear, Category: "villa",
			Bedrooms: 4, Bathrooms: 3,
			Amenities: []string{"pool", "wifi"},
			Verified:  true, Available: false, Rating: 4.9,
		},
	})
	if err != nil {
		t.Fatalf("catalog.New: %v", err)
	}
	return cat
}

func ids(props []models.Property) []string {
	out := make([]string, len(props))
	for i, p := range props {
		out[i] = p.ExternalID
	}
	return out
}

func TestEmptyFilterReturnsFullCatalogInOrder(t *testing.T) {
	cat := testCatalog(t)

	got, err := Match(cat, models.SearchFilters{})
	if err != nil {
		t.Fatalf("Match: %v", err)
	}
	want := []string{"PROP1001", "PROP1002", "PROP1003"}
	gotIDs := ids(got)
	if len(gotIDs) != len(want) {
		t.Fatalf("got %v, want %v", gotIDs, want)
	}
	for i := range want {
		if gotIDs[i] != want[i] {
			t.Fatalf("got %v, want %v", gotIDs, want)
		}
	}
}

func TestPriceMinScenario(t *testing.T) {
	// Catalog priced {900, 1200, 3500} with min=1000 and max=2000 must
	// return exactly the 1200 listing.
	cat := testCatalog(t)

	got, err := Match(cat, models.SearchFilters{PriceMin: f64(1000), PriceMax: f64(2000)})
	if err != nil {
		t.Fatalf("Match: %v", err)
	}
	if len(got) != 1 || got[0].ExternalID != "PROP1002" {
		t.Fatalf("got %v, want [PROP1002]", ids(got))
	}
}

func TestInvalidPriceRangeRejected(t *testing.T) {
	cat := testCatalog(t)

	_, err := Match(cat, models.SearchFilters{PriceMin: f64(2000), PriceMax: f64(1000)})
	if !apperr.IsValidation(err) {
		t.Fatalf("min > max: got %v, want validation error", err)
	}
}

func TestConjunctionLaw(t *testing.T) {
	// PROP1002 satisfies the base filter; each case flips exactly one
	// field to a value it fails and must exclude it.
	base := models.SearchFilters{
		Location:  "manali",
		PriceMin:  f64(1000),
		PriceMax:  f64(2000),
		Duration:  dur(models.DurationMonth),
		Category:  "cottage",
		Bedrooms:  num(3),
		Bathrooms: num(2),
		Amenities: []string{"wifi", "kitchen"},
		Verified:  boolp(false),
		Available: boolp(true),
	}

	cat := testCatalog(t)
	got, err := Match(cat, base)
	if err != nil {
		t.Fatalf("Match(base): %v", err)
	}
	if len(got) != 1 || got[0].ExternalID != "PROP1002" {
		t.Fatalf("base filter: got %v, want [PROP1002]", ids(got))
	}

	cases := []struct {
		name   string
		mutate func(*models.SearchFilters)
	}{
		{"location", func(f *models.SearchFilters) { f.Location = "goa" }},
		{"priceMin", func(f *models.SearchFilters) { f.PriceMin = f64(1500) }},
		{"priceMax", func(f *models.SearchFilters) { f.PriceMax = f64(1100) }},
		{"duration", func(f *models.SearchFilters) { f.Duration = dur(models.DurationYear) }},
		{"category", func(f *models.SearchFilters) { f.Category = "villa" }},
		{"bedrooms", func(f *models.SearchFilters) { f.Bedrooms = num(4) }},
		{"bathrooms", func(f *models.SearchFilters) { f.Bathrooms = num(3) }},
		{"amenities", func(f *models.SearchFilters) { f.Amenities = []string{"wifi", "pool"} }},
		{"verified", func(f *models.SearchFilters) { f.Verified = boolp(true) }},
		{"available", func(f *models.SearchFilters) { f.Available = boolp(false) }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			filters := base
			tc.mutate(&filters)
			got, err := Match(cat, filters)
			if err != nil {
				t.Fatalf("Match: %v", err)
			}
			for _, p := range got {
				if p.ExternalID == "PROP1002" {
					t.Errorf("failing %s field did not exclude PROP1002", tc.name)
				}
			}
		})
	}
}

func TestLocationSubstringCaseInsensitive(t *testing.T) {
	cat := testCatalog(t)

	got, err := Match(cat, models.SearchFilters{Location: "RAJASTHAN"})
	if err != nil {
		t.Fatalf("Match: %v", err)
	}
	if len(got) != 1 || got[0].ExternalID != "PROP1003" {
		t.Fatalf("got %v, want [PROP1003]", ids(got))
	}
}

func TestUnsetPriceBoundIsUnbounded(t *testing.T) {
	cat := testCatalog(t)

	got, err := Match(cat, models.SearchFilters{PriceMax: f64(1200)})
	if err != nil {
		t.Fatalf("Match: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("max-only filter: got %v, want 2 results", ids(got))
	}
}

func TestAmenitySubset(t *testing.T) {
	cat := testCatalog(t)

	got, err := Match(cat, models.SearchFilters{Amenities: []string{"wifi", "parking"}})
	if err != nil {
		t.Fatalf("Match: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %v, want [PROP1001 PROP1002]", ids(got))
	}
}
