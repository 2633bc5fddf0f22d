package session

import (
	"path/filepath"
	"testing"
)

func TestSessionStartsEmpty(t *testing.T) {
	s, err := NewFromStorage(&MemoryStorage{})
	if err != nil {
		t.Fatalf("NewFromStorage: %v", err)
	}
	if tok, ok := s.Token(); ok || tok != "" {
		t.Errorf("fresh session has token %q", tok)
	}
}

func TestSetAndClearRoundTrip(t *testing.T) {
	storage := &MemoryStorage{}
	s, err := NewFromStorage(storage)
	if err != nil {
		t.Fatal(err)
	}

	if err := s.Set("token-123"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if tok, ok := s.Token(); !ok || tok != "token-123" {
		t.Errorf("Token() = %q, %v", tok, ok)
	}
	if stored, _ := storage.Load(); stored != "token-123" {
		t.Errorf("storage holds %q, want token-123", stored)
	}

	if err := s.Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if _, ok := s.Token(); ok {
		t.Error("token survived Clear")
	}
	if stored, _ := storage.Load(); stored != "" {
		t.Errorf("storage holds %q after Clear", stored)
	}
}

func TestSessionSurvivesRestart(t *testing.T) {
	dir := t.TempDir()
	storage := NewFileStorage(dir)

	first, err := NewFromStorage(storage)
	if err != nil {
		t.Fatal(err)
	}
	if err := first.Set("persisted-token"); err != nil {
		t.Fatal(err)
	}

	// A second session over the same storage models a process restart.
	second, err := NewFromStorage(NewFileStorage(dir))
	if err != nil {
		t.Fatal(err)
	}
	if tok, ok := second.Token(); !ok || tok != "persisted-token" {
		t.Errorf("rehydrated token = %q, %v", tok, ok)
	}
}

func TestFileStorage(t *testing.T) {
	dir := t.TempDir()
	storage := NewFileStorage(filepath.Join(dir, "nested"))

	// Missing file reads as empty, not as an error.
	tok, err := storage.Load()
	if err != nil || tok != "" {
		t.Fatalf("Load on missing file: %q, %v", tok, err)
	}

	if err := storage.Save("abc"); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if tok, _ := storage.Load(); tok != "abc" {
		t.Errorf("Load = %q, want abc", tok)
	}

	if err := storage.Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	// Clearing twice is fine.
	if err := storage.Clear(); err != nil {
		t.Fatalf("second Clear: %v", err)
	}
}
