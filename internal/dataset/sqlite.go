package dataset

import (
	"database/sql"
	"fmt"
	"os"

	_ "modernc.org/sqlite"

	"github.com/slopewatch/go-landslide-risk/internal/models"
)

// LoadSQLite reads locations from a SQLite database with a
// locations(title, latitude, longitude) table. The driver would create
// an empty database for a missing path, so existence is checked first.
func LoadSQLite(path string) (*Table, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("error opening dataset: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("error opening database: %w", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("error while pinging database: %w", err)
	}

	rows, err := db.Query(`SELECT title, latitude, longitude FROM locations`)
	if err != nil {
		return nil, fmt.Errorf("error querying locations: %w", err)
	}
	defer rows.Close()

	var locations []models.Location
	for rows.Next() {
		var loc models.Location
		if err := rows.Scan(&loc.Title, &loc.Latitude, &loc.Longitude); err != nil {
			return nil, fmt.Errorf("error scanning location row: %w", err)
		}
		locations = append(locations, loc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating location rows: %w", err)
	}

	return New(locations)
}
