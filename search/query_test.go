package search

import (
	"net/url"
	"testing"

	"DestinyRealEstate/apperr"
	"DestinyRealEstate/models"
)

func TestFiltersFromQuery(t *testing.T) {
	q := url.Values{}
	q.Set("location", "goa")
	q.Set("price_min", "500")
	q.Set("price_max", "2000")
	q.Set("duration", "month")
	q.Set("category", "villa")
	q.Set("bedrooms", "2")
	q.Set("amenities", "wifi, parking,")
	q.Set("verified", "true")

	f, err := FiltersFromQuery(q)
	if err != nil {
		t.Fatalf("FiltersFromQuery: %v", err)
	}

	if f.Location != "goa" || f.Category != "villa" {
		t.Errorf("string fields: got %+v", f)
	}
	if f.PriceMin == nil || *f.PriceMin != 500 {
		t.Errorf("priceMin: got %v", f.PriceMin)
	}
	if f.PriceMax == nil || *f.PriceMax != 2000 {
		t.Errorf("priceMax: got %v", f.PriceMax)
	}
	if f.Duration == nil || *f.Duration != models.DurationMonth {
		t.Errorf("duration: got %v", f.Duration)
	}
	if f.Bedrooms == nil || *f.Bedrooms != 2 {
		t.Errorf("bedrooms: got %v", f.Bedrooms)
	}
	if len(f.Amenities) != 2 || f.Amenities[0] != "wifi" || f.Amenities[1] != "parking" {
		t.Errorf("amenities: got %v", f.Amenities)
	}
	if f.Verified == nil || !*f.Verified {
		t.Errorf("verified: got %v", f.Verified)
	}
	if f.Available != nil {
		t.Errorf("available should be unset, got %v", f.Available)
	}
}

func TestFiltersFromQueryEmpty(t *testing.T) {
	f, err := FiltersFromQuery(url.Values{})
	if err != nil {
		t.Fatalf("FiltersFromQuery: %v", err)
	}
	if !f.Empty() {
		t.Errorf("expected empty filters, got %+v", f)
	}
}

func TestFiltersFromQueryRejectsGarbage(t *testing.T) {
	cases := []struct{ key, val string }{
		{"price_min", "cheap"},
		{"price_max", "expensive"},
		{"duration", "fortnight"},
		{"bedrooms", "-1"},
		{"bathrooms", "two"},
		{"verified", "yep"},
		{"available", "maybe"},
	}
	for _, tc := range cases {
		q := url.Values{}
		q.Set(tc.key, tc.val)
		if _, err := FiltersFromQuery(q); !apperr.IsValidation(err) {
			t.Errorf("%s=%s: got %v, want validation error", tc.key, tc.val, err)
		}
	}
}
