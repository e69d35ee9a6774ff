package store

import (
	"sync"
	"testing"

	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestStore_IDsStrictlyIncreasing(t *testing.T) {
	s := New()

	lat, lon := 1.0, 2.0
	for i := 0; i < 5; i++ {
		s.Create("manual", &lat, &lon)
	}

	alerts := s.List()
	if len(alerts) != 5 {
		t.Fatalf("expected 5 alerts, got %d", len(alerts))
	}
	for i, a := range alerts {
		if a.ID != i+1 {
			t.Errorf("expected id %d at position %d, got %d", i+1, i, a.ID)
		}
		if a.Acknowledged {
			t.Errorf("alert %d should start unacknowledged", a.ID)
		}
	}
}

func TestStore_ManualAlertsNotDeduplicated(t *testing.T) {
	s := New()

	s.Create("first", nil, nil)
	s.Create("second", nil, nil)

	if got := len(s.List()); got != 2 {
		t.Errorf("expected 2 manual alerts, got %d", got)
	}
}

func TestStore_DuplicateSuppression(t *testing.T) {
	s := New()

	_, created := s.CreateForLocation("risk near Hillside", 6.9, 79.8, 85, "Hillside")
	if !created {
		t.Fatal("first alert for Hillside should be created")
	}

	_, created = s.CreateForLocation("risk near Hillside", 6.9, 79.8, 92, "Hillside")
	if created {
		t.Error("second alert for Hillside should be suppressed while first is unacknowledged")
	}
	if got := len(s.List()); got != 1 {
		t.Errorf("expected store size 1 after suppression, got %d", got)
	}

	// A different location is not affected.
	_, created = s.CreateForLocation("risk near Ridgetop", 7.1, 80.2, 75, "Ridgetop")
	if !created {
		t.Error("alert for a different location should be created")
	}
}

func TestStore_AcknowledgeLiftsSuppression(t *testing.T) {
	s := New()

	first, _ := s.CreateForLocation("risk near Hillside", 6.9, 79.8, 85, "Hillside")

	if !s.Acknowledge(first.ID) {
		t.Fatal("acknowledge of existing alert should return true")
	}

	_, created := s.CreateForLocation("risk near Hillside", 6.9, 79.8, 90, "Hillside")
	if !created {
		t.Error("new alert should be created once the previous one is acknowledged")
	}
	if got := len(s.List()); got != 2 {
		t.Errorf("expected 2 alerts, got %d", got)
	}
}

func TestStore_AcknowledgeIdempotent(t *testing.T) {
	s := New()
	a := s.Create("manual", nil, nil)

	if !s.Acknowledge(a.ID) {
		t.Fatal("first acknowledge should return true")
	}
	if !s.Acknowledge(a.ID) {
		t.Error("second acknowledge should still return true")
	}

	alerts := s.List()
	if len(alerts) != 1 {
		t.Fatalf("expected 1 alert, got %d", len(alerts))
	}
	if !alerts[0].Acknowledged {
		t.Error("alert should remain acknowledged")
	}
}

func TestStore_AcknowledgeUnknownID(t *testing.T) {
	s := New()
	s.Create("manual", nil, nil)

	if s.Acknowledge(999) {
		t.Error("acknowledge of unknown id should return false")
	}

	alerts := s.List()
	if len(alerts) != 1 || alerts[0].Acknowledged {
		t.Error("store should be unchanged after unknown-id acknowledge")
	}
}

func TestStore_AcknowledgeTargetsOnlyMatchingID(t *testing.T) {
	s := New()
	for i := 0; i < 3; i++ {
		s.Create("manual", nil, nil)
	}

	s.Acknowledge(2)

	for _, a := range s.List() {
		if a.ID == 2 && !a.Acknowledged {
			t.Error("alert 2 should be acknowledged")
		}
		if a.ID != 2 && a.Acknowledged {
			t.Errorf("alert %d should be untouched", a.ID)
		}
	}
}

func TestStore_ListReturnsSnapshot(t *testing.T) {
	s := New()
	s.Create("manual", nil, nil)

	snapshot := s.List()
	snapshot[0].Acknowledged = true
	snapshot[0].Message = "mutated"

	alerts := s.List()
	if alerts[0].Acknowledged || alerts[0].Message != "manual" {
		t.Error("mutating a returned snapshot must not affect the store")
	}
}

func TestStore_ConcurrentCreates(t *testing.T) {
	s := New()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.Create("manual", nil, nil)
		}()
	}
	wg.Wait()

	alerts := s.List()
	if len(alerts) != 50 {
		t.Fatalf("expected 50 alerts, got %d", len(alerts))
	}
	seen := make(map[int]bool, len(alerts))
	for _, a := range alerts {
		if seen[a.ID] {
			t.Errorf("duplicate id %d", a.ID)
		}
		seen[a.ID] = true
	}
}

func TestStore_ConcurrentAutoCreatesSameLocation(t *testing.T) {
	s := New()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.CreateForLocation("risk near Hillside", 6.9, 79.8, 80, "Hillside")
		}()
	}
	wg.Wait()

	if got := len(s.List()); got != 1 {
		t.Errorf("expected exactly 1 alert for concurrent same-location creates, got %d", got)
	}
}
