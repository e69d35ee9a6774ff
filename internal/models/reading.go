package models

import "time"

type RiskStatus string

const (
	RiskStatusLow      RiskStatus = "Low Risk"
	RiskStatusModerate RiskStatus = "Moderate Risk"
	RiskStatusHigh     RiskStatus = "High Risk"
)

type Vibration string

const (
	VibrationNormal Vibration = "Normal"
	VibrationHigh   Vibration = "High"
)

// RiskReading is one synthetic telemetry sample. Readings are produced
// fresh per request and never stored.
type RiskReading struct {
	Rainfall    int             `json:"rainfall"`
	Temperature int             `json:"temperature"`
	Slope       int             `json:"slope"`
	Vibration   Vibration       `json:"vibration"`
	RiskScore   int             `json:"risk_score"`
	Status      RiskStatus      `json:"status"`
	LastUpdate  time.Time       `json:"last_update"`
	Location    ReadingLocation `json:"location"`
}

type ReadingLocation struct {
	Lat   float64 `json:"lat"`
	Lon   float64 `json:"lon"`
	Title string  `json:"title"`
}
