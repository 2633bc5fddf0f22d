package catalog

import (
	"reflect"
	"testing"
)

func TestFixtureDeterministic(t *testing.T) {
	a := Fixture(42, 10)
	b := Fixture(42, 10)
	if !reflect.DeepEqual(a, b) {
		t.Error("equal seeds produced different catalogs")
	}

	c := Fixture(43, 10)
	if reflect.DeepEqual(a, c) {
		t.Error("different seeds produced identical catalogs")
	}
}

func TestFixtureSatisfiesCatalogInvariants(t *testing.T) {
	props := Fixture(7, 50)
	if len(props) != 50 {
		t.Fatalf("got %d properties, want 50", len(props))
	}

	// New enforces unique IDs and rating bounds.
	if _, err := New(props); err != nil {
		t.Fatalf("fixture violates catalog invariants: %v", err)
	}

	for _, p := range props {
		if p.Price < 0 {
			t.Errorf("%s: negative price %.2f", p.ExternalID, p.Price)
		}
		if p.Landlord.Rating < 0 || p.Landlord.Rating > 5 {
			t.Errorf("%s: landlord rating %.1f out of range", p.ExternalID, p.Landlord.Rating)
		}
	}
}
