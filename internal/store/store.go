// Package store holds the process-wide alert list. Alerts live in memory
// only and reset on restart.
package store

import (
	"sync"
	"time"

	"github.com/slopewatch/go-landslide-risk/internal/models"
)

// Store is the authoritative ordered collection of alerts. A single mutex
// serializes creates, acknowledgments and listings so that id assignment
// and the duplicate-suppression check stay atomic under concurrent
// requests.
type Store struct {
	mu     sync.Mutex
	alerts []models.Alert
	nextID int
}

func New() *Store {
	return &Store{nextID: 1}
}

// List returns a snapshot of all alerts in creation order, acknowledged
// ones included.
func (s *Store) List() []models.Alert {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Alert, len(s.alerts))
	copy(out, s.alerts)
	return out
}

// Create appends a manual alert. Manual alerts carry no location title and
// are never subject to duplicate suppression. Lat and lon may be nil.
func (s *Store) Create(message string, lat, lon *float64) models.Alert {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.append(models.Alert{
		Message: message,
		Lat:     lat,
		Lon:     lon,
	})
}

// CreateForLocation appends an automatic alert for the given location
// unless an unacknowledged alert for the same title already exists, in
// which case it reports created=false and leaves the store unchanged.
// The check and the append happen under one lock acquisition.
func (s *Store) CreateForLocation(message string, lat, lon float64, riskScore int, title string) (models.Alert, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.alerts {
		if s.alerts[i].LocationTitle == title && !s.alerts[i].Acknowledged {
			return models.Alert{}, false
		}
	}

	return s.append(models.Alert{
		Message:       message,
		Lat:           &lat,
		Lon:           &lon,
		RiskScore:     &riskScore,
		LocationTitle: title,
	}), true
}

// Acknowledge marks the alert with the given id as reviewed. The
// transition is one-way and idempotent. Returns false when no alert
// matches; callers may treat that as a no-op.
func (s *Store) Acknowledge(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.alerts {
		if s.alerts[i].ID == id {
			s.alerts[i].Acknowledged = true
			return true
		}
	}
	return false
}

// append assigns the next id and timestamps the record. Caller must hold
// the lock.
func (s *Store) append(a models.Alert) models.Alert {
	a.ID = s.nextID
	s.nextID++
	a.CreatedAt = time.Now()
	a.Acknowledged = false

	s.alerts = append(s.alerts, a)
	return a
}
