package catalog

import (
	"testing"

	"DestinyRealEstate/apperr"
	"DestinyRealEstate/models"
)

func sampleProps() []models.Property {
	return []models.Property{
		{ExternalID: "PROP1001", Title: "Beach Villa", Price: 900, Rating: 4.5},
		{ExternalID: "PROP1002", Title: "City Flat", Price: 1200, Rating: 3.9},
		{ExternalID: "PROP1003", Title: "Hill Cottage", Price: 3500, Rating: 4.8},
	}
}

func TestAllPreservesInsertionOrder(t *testing.T) {
	cat, err := New(sampleProps())
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	all := cat.All()
	if len(all) != 3 {
		t.Fatalf("got %d properties, want 3", len(all))
	}
	want := []string{"PROP1001", "PROP1002", "PROP1003"}
	for i, p := range all {
		if p.ExternalID != want[i] {
			t.Errorf("position %d: got %s, want %s", i, p.ExternalID, want[i])
		}
	}
}

func TestAllReturnsCopy(t *testing.T) {
	cat, err := New(sampleProps())
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	first := cat.All()
	first[0].Title = "mutated"

	if got := cat.All()[0].Title; got != "Beach Villa" {
		t.Errorf("catalog mutated through All() slice: got %q", got)
	}
}

func TestByID(t *testing.T) {
	cat, err := New(sampleProps())
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	p, err := cat.ByID("PROP1002")
	if err != nil {
		t.Fatalf("ByID: %v", err)
	}
	if p.Title != "City Flat" {
		t.Errorf("got %q, want City Flat", p.Title)
	}

	_, err = cat.ByID("PROP9999")
	if !apperr.IsNotFound(err) {
		t.Errorf("unknown id: got %v, want not-found", err)
	}
}

func TestNewRejectsDuplicateID(t *testing.T) {
	props := sampleProps()
	props[2].ExternalID = "PROP1001"

	_, err := New(props)
	if !apperr.IsValidation(err) {
		t.Errorf("duplicate id: got %v, want validation error", err)
	}
}

func TestNewRejectsRatingOutOfRange(t *testing.T) {
	props := sampleProps()
	props[1].Rating = 5.5

	_, err := New(props)
	if !apperr.IsValidation(err) {
		t.Errorf("rating 5.5: got %v, want validation error", err)
	}
}
