package models

// Location is one row of the static landslide-incidence dataset. The
// table is loaded once at startup and never mutated.
type Location struct {
	Title     string
	Latitude  float64
	Longitude float64
}
