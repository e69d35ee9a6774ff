package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/slopewatch/go-landslide-risk/internal/models"
)

// LoadCSV reads locations from a CSV export with Title, latitude and
// longitude columns. Header matching is case-insensitive; rows with
// unparseable coordinates are skipped.
func LoadCSV(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening dataset: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("error reading dataset header: %w", err)
	}

	titleIdx, latIdx, lonIdx := -1, -1, -1
	for i, col := range header {
		switch strings.ToLower(strings.TrimSpace(col)) {
		case "title":
			titleIdx = i
		case "latitude":
			latIdx = i
		case "longitude":
			lonIdx = i
		}
	}
	if titleIdx < 0 || latIdx < 0 || lonIdx < 0 {
		return nil, fmt.Errorf("dataset header missing Title/latitude/longitude columns: %v", header)
	}

	var locations []models.Location
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error reading dataset row: %w", err)
		}
		if len(record) <= titleIdx || len(record) <= latIdx || len(record) <= lonIdx {
			continue
		}

		lat, err := strconv.ParseFloat(strings.TrimSpace(record[latIdx]), 64)
		if err != nil {
			continue
		}
		lon, err := strconv.ParseFloat(strings.TrimSpace(record[lonIdx]), 64)
		if err != nil {
			continue
		}

		locations = append(locations, models.Location{
			Title:     strings.TrimSpace(record[titleIdx]),
			Latitude:  lat,
			Longitude: lon,
		})
	}

	return New(locations)
}
