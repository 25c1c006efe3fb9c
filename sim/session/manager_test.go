package session

import (
	"errors"
	"testing"
	"time"
)

func TestCreateAndGet(t *testing.T) {
	m := NewManager()

	session, err := m.Create("alpha", nil)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if session.ID != "alpha" {
		t.Errorf("Expected ID alpha, got %s", session.ID)
	}
	if session.Sim == nil {
		t.Fatal("Expected session to carry a simulation")
	}

	// Lookup is case-insensitive
	got, err := m.Get("ALPHA")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got != session {
		t.Error("Expected the same session instance")
	}
}

func TestCreate_GeneratedID(t *testing.T) {
	m := NewManager()

	session, err := m.Create("", nil)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if len(session.ID) != 8 {
		t.Errorf("Expected 8-character generated ID, got %q", session.ID)
	}
}

func TestCreate_Duplicate(t *testing.T) {
	m := NewManager()
	m.Create("dup", nil)

	_, err := m.Create("DUP", nil)
	if !errors.Is(err, ErrSessionAlreadyExists) {
		t.Errorf("Expected ErrSessionAlreadyExists, got %v", err)
	}
}

func TestGet_NotFound(t *testing.T) {
	m := NewManager()
	_, err := m.Get("missing")
	if !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("Expected ErrSessionNotFound, got %v", err)
	}
}

func TestGetOrCreate(t *testing.T) {
	m := NewManager()

	first, err := m.GetOrCreate("s1", nil)
	if err != nil {
		t.Fatalf("GetOrCreate failed: %v", err)
	}
	second, err := m.GetOrCreate("s1", nil)
	if err != nil {
		t.Fatalf("GetOrCreate failed: %v", err)
	}
	if first != second {
		t.Error("Expected GetOrCreate to return the existing session")
	}
}

func TestDelete(t *testing.T) {
	m := NewManager()
	m.Create("gone", nil)

	if err := m.Delete("gone"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, err := m.Get("gone"); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("Expected session gone, got %v", err)
	}
	if err := m.Delete("gone"); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("Expected ErrSessionNotFound on second delete, got %v", err)
	}
}

func TestListAndCount(t *testing.T) {
	m := NewManager()
	m.Create("a", nil)
	m.Create("b", nil)

	if m.Count() != 2 {
		t.Errorf("Expected count 2, got %d", m.Count())
	}
	if len(m.List()) != 2 {
		t.Errorf("Expected 2 sessions listed, got %d", len(m.List()))
	}
}

func TestCleanupExpiredSessions(t *testing.T) {
	m := NewManager()
	m.Create("old", nil)
	m.Create("fresh", nil)

	stale, _ := m.Get("old")
	stale.LastAccessedAt = time.Now().Add(-48 * time.Hour)

	removed := m.CleanupExpiredSessions(24 * time.Hour)
	if removed != 1 {
		t.Errorf("Expected 1 session removed, got %d", removed)
	}
	if _, err := m.Get("fresh"); err != nil {
		t.Errorf("Expected fresh session to survive, got %v", err)
	}
}

func TestUpdateLastAccessed(t *testing.T) {
	m := NewManager()
	session, _ := m.Create("s", nil)
	before := session.LastAccessedAt

	time.Sleep(5 * time.Millisecond)
	if err := m.UpdateLastAccessed("S"); err != nil {
		t.Fatalf("UpdateLastAccessed failed: %v", err)
	}
	if !session.LastAccessedAt.After(before) {
		t.Error("Expected access time to advance")
	}
}
