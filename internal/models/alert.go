package models

import "time"

// Alert is a risk event awaiting operator review. Automatic alerts carry
// the sampled score and the location title they were raised for; manual
// alerts carry neither, so those fields are omitted from JSON when empty.
type Alert struct {
	ID            int       `json:"id"`
	Message       string    `json:"message"`
	CreatedAt     time.Time `json:"created_at"`
	Acknowledged  bool      `json:"acknowledged"`
	Lat           *float64  `json:"lat"`
	Lon           *float64  `json:"lon"`
	RiskScore     *int      `json:"risk_score,omitempty"`
	LocationTitle string    `json:"location_title,omitempty"`
}
