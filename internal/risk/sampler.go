// Package risk synthesizes landslide telemetry readings for the demo
// dashboard. Scores are uniform random draws; the only real logic is the
// threshold classification and the automatic alert it can trigger.
package risk

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/slopewatch/go-landslide-risk/internal/dataset"
	"github.com/slopewatch/go-landslide-risk/internal/metrics"
	"github.com/slopewatch/go-landslide-risk/internal/models"
	"github.com/slopewatch/go-landslide-risk/internal/store"
)

// Rand supplies the random draws a sample needs. Satisfied by
// *rand.Rand from math/rand/v2; tests inject scripted sequences to pin
// down classification boundaries.
type Rand interface {
	IntN(n int) int
	Float64() float64
}

// systemRand delegates to the shared top-level generator, which is safe
// for concurrent use.
type systemRand struct{}

func (systemRand) IntN(n int) int   { return rand.IntN(n) }
func (systemRand) Float64() float64 { return rand.Float64() }

type Sampler struct {
	locations *dataset.Table
	alerts    *store.Store
	rng       Rand
}

// NewSampler builds a sampler over the given location table and alert
// store. A nil rng selects the process-wide generator.
func NewSampler(locations *dataset.Table, alerts *store.Store, rng Rand) *Sampler {
	if rng == nil {
		rng = systemRand{}
	}
	return &Sampler{
		locations: locations,
		alerts:    alerts,
		rng:       rng,
	}
}

// Sample produces one synthetic reading. A High Risk score registers an
// automatic alert for the sampled location unless one is already open.
func (s *Sampler) Sample() models.RiskReading {
	loc := s.locations.SampleOne(s.rng)
	score := 10 + s.rng.IntN(91)
	status := classify(score)

	if status == models.RiskStatusHigh {
		msg := fmt.Sprintf("Landslide risk near %s (%.3f,%.3f)", loc.Title, loc.Latitude, loc.Longitude)
		if _, created := s.alerts.CreateForLocation(msg, loc.Latitude, loc.Longitude, score, loc.Title); created {
			metrics.AlertsCreatedTotal.WithLabelValues("auto").Inc()
		} else {
			metrics.AlertsSuppressedTotal.Inc()
		}
	}

	vibration := models.VibrationNormal
	if s.rng.Float64() < 0.3 {
		vibration = models.VibrationHigh
	}

	metrics.RiskSamplesTotal.WithLabelValues(string(status)).Inc()

	return models.RiskReading{
		Rainfall:    50 + s.rng.IntN(151),
		Temperature: 15 + s.rng.IntN(16),
		Slope:       20 + s.rng.IntN(26),
		Vibration:   vibration,
		RiskScore:   score,
		Status:      status,
		LastUpdate:  time.Now(),
		Location: models.ReadingLocation{
			Lat:   loc.Latitude,
			Lon:   loc.Longitude,
			Title: loc.Title,
		},
	}
}

// classify maps a score to its risk tier. Thresholds are strictly
// greater-than: 70 and 40 fall to the lower tier.
func classify(score int) models.RiskStatus {
	switch {
	case score > 70:
		return models.RiskStatusHigh
	case score > 40:
		return models.RiskStatusModerate
	default:
		return models.RiskStatusLow
	}
}
