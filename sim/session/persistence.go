package session

import (
	"time"

	"github.com/jeneen24/robot-grid-simulator/sim/engine"
	"github.com/jeneen24/robot-grid-simulator/sim/service"
)

// Persistence defines the interface for persisting sessions.
type Persistence interface {
	// Save persists a session to storage
	Save(session *service.Session) error

	// Load retrieves a session from storage by ID
	Load(id string) (*service.Session, error)

	// Delete removes a session from storage
	Delete(id string) error

	// ListAll returns all persisted session IDs
	ListAll() ([]string, error)

	// Exists checks if a session exists in storage
	Exists(id string) bool
}

// PersistedSessionData is the JSON structure for persisted sessions. The
// scenario is stored inline so a session survives even when its scenario
// file is renamed or was the built-in default.
type PersistedSessionData struct {
	ID             string           `json:"id"`
	Scenario       *engine.Scenario `json:"scenario"`
	CreatedAt      time.Time        `json:"created_at"`
	LastAccessedAt time.Time        `json:"last_accessed_at"`
	State          *engine.State    `json:"state"`
}
