package favorites

import (
	"reflect"
	"testing"
)

func TestAddIsIdempotent(t *testing.T) {
	s := NewStore()
	s.Add("u1", "PROP1001")
	s.Add("u1", "PROP1001")

	if got := s.ListFor("u1"); !reflect.DeepEqual(got, []string{"PROP1001"}) {
		t.Errorf("got %v, want [PROP1001]", got)
	}
}

func TestRemoveIsIdempotent(t *testing.T) {
	s := NewStore()
	s.Remove("u1", "PROP1001")

	s.Add("u1", "PROP1001")
	s.Remove("u1", "PROP1001")
	s.Remove("u1", "PROP1001")

	if got := s.ListFor("u1"); len(got) != 0 {
		t.Errorf("got %v, want empty", got)
	}
}

func TestToggleTwiceRestoresMembership(t *testing.T) {
	s := NewStore()

	// Starting absent.
	if !s.Toggle("u1", "PROP1001") {
		t.Error("first toggle should favorite")
	}
	if s.Toggle("u1", "PROP1001") {
		t.Error("second toggle should unfavorite")
	}
	if s.Contains("u1", "PROP1001") {
		t.Error("membership not restored to absent")
	}

	// Starting present.
	s.Add("u1", "PROP1002")
	s.Toggle("u1", "PROP1002")
	s.Toggle("u1", "PROP1002")
	if !s.Contains("u1", "PROP1002") {
		t.Error("membership not restored to present")
	}
}

func TestListForIsPerUserAndSorted(t *testing.T) {
	s := NewStore()
	s.Add("u1", "PROP1003")
	s.Add("u1", "PROP1001")
	s.Add("u2", "PROP1002")

	if got := s.ListFor("u1"); !reflect.DeepEqual(got, []string{"PROP1001", "PROP1003"}) {
		t.Errorf("u1: got %v", got)
	}
	if got := s.ListFor("u2"); !reflect.DeepEqual(got, []string{"PROP1002"}) {
		t.Errorf("u2: got %v", got)
	}
	if got := s.ListFor("u3"); len(got) != 0 {
		t.Errorf("u3: got %v, want empty", got)
	}
}
