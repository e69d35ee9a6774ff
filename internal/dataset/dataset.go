// Package dataset holds the static table of named geographic points that
// risk readings are sampled from. The table is loaded once at startup and
// is read-only afterwards.
package dataset

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/slopewatch/go-landslide-risk/internal/models"
)

// Rand is the slice of randomness the table needs for sampling. Satisfied
// by math/rand/v2.
type Rand interface {
	IntN(n int) int
}

type Table struct {
	locations []models.Location
}

// New builds a table from the given rows. An empty dataset is a
// configuration error: the sampler has nothing to draw from.
func New(locations []models.Location) (*Table, error) {
	if len(locations) == 0 {
		return nil, fmt.Errorf("dataset is empty")
	}
	locs := make([]models.Location, len(locations))
	copy(locs, locations)
	return &Table{locations: locs}, nil
}

// Load reads the dataset file at path, dispatching on its extension:
// .csv for the original export format, .db/.sqlite for a converted
// SQLite database.
func Load(path string) (*Table, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return LoadCSV(path)
	case ".db", ".sqlite", ".sqlite3":
		return LoadSQLite(path)
	default:
		return nil, fmt.Errorf("unsupported dataset format: %s", path)
	}
}

// SampleOne picks one row uniformly at random, with replacement across
// calls.
func (t *Table) SampleOne(rng Rand) models.Location {
	return t.locations[rng.IntN(len(t.locations))]
}

func (t *Table) Len() int {
	return len(t.locations)
}
