// Package loader reads the restaurant and review CSV datasets into typed
// records and performs the keyed merge between them. Column positions are
// resolved by header name once per file; rows are parsed into explicit
// struct fields, never into loosely typed maps.
package loader

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	internalErrors "github.com/reviewlens/reviewlens/internal/errors"
	"github.com/reviewlens/reviewlens/model"
)

// Restaurant dataset columns.
const (
	colRestaurantID   = "id"
	colRestaurantName = "name"
	colCuisine        = "cuisine"
	colCity           = "city"
)

// Review dataset columns.
const (
	colReviewRestaurant = "restaurant_id"
	colRating           = "rating"
	colDate             = "date"
	colText             = "text"
)

// reviewDateLayouts are tried in order when parsing review dates.
var reviewDateLayouts = []string{"2006-01-02", "2006-01-02 15:04:05", time.RFC3339}

// rawReview is a review row before the join resolves its restaurant name.
type rawReview struct {
	restaurantID string
	rating       *float64
	date         *time.Time
	text         string
}

// LoadRestaurants reads the restaurant metadata dataset.
// Required columns: id, name. Optional: cuisine, city.
func LoadRestaurants(path string) ([]model.Restaurant, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, internalErrors.NewDatasetNotFoundError(path)
		}
		return nil, fmt.Errorf("opening restaurants dataset: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1 // ragged rows are tolerated, short rows skipped below

	header, err := reader.Read()
	if err == io.EOF {
		return []model.Restaurant{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading restaurants header: %w", err)
	}

	cols := indexColumns(header)
	for _, required := range []string{colRestaurantID, colRestaurantName} {
		if _, ok := cols[required]; !ok {
			return nil, internalErrors.NewMissingColumnError("restaurants", required)
		}
	}

	var restaurants []model.Restaurant
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading restaurants row: %w", err)
		}

		r := model.Restaurant{
			ID:      field(row, cols, colRestaurantID),
			Name:    field(row, cols, colRestaurantName),
			Cuisine: field(row, cols, colCuisine),
			City:    field(row, cols, colCity),
		}
		if r.ID == "" || r.Name == "" {
			continue
		}
		restaurants = append(restaurants, r)
	}
	return restaurants, nil
}

// loadRawReviews reads the review dataset without resolving restaurant
// names. Required columns: restaurant_id, text. Optional: rating and date,
// where a missing or malformed value parses to nil rather than failing
// the row.
func loadRawReviews(path string) ([]rawReview, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, internalErrors.NewDatasetNotFoundError(path)
		}
		return nil, fmt.Errorf("opening reviews dataset: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return []rawReview{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading reviews header: %w", err)
	}

	cols := indexColumns(header)
	for _, required := range []string{colReviewRestaurant, colText} {
		if _, ok := cols[required]; !ok {
			return nil, internalErrors.NewMissingColumnError("reviews", required)
		}
	}

	var reviews []rawReview
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading reviews row: %w", err)
		}

		rev := rawReview{
			restaurantID: field(row, cols, colReviewRestaurant),
			rating:       parseRating(field(row, cols, colRating)),
			date:         parseDate(field(row, cols, colDate)),
			text:         field(row, cols, colText),
		}
		if rev.restaurantID == "" {
			continue
		}
		reviews = append(reviews, rev)
	}
	return reviews, nil
}

// indexColumns maps normalized header names to their positions. The first
// occurrence of a duplicated header wins.
func indexColumns(header []string) map[string]int {
	cols := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.ToLower(strings.TrimSpace(name))
		if _, exists := cols[name]; !exists {
			cols[name] = i
		}
	}
	return cols
}

// field returns the trimmed cell for a named column, "" when the column is
// absent or the row is too short.
func field(row []string, cols map[string]int, name string) string {
	i, ok := cols[name]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

// parseRating parses a numeric rating, nil for empty or malformed values.
func parseRating(s string) *float64 {
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &v
}

// parseDate parses a review date with the known layouts, nil when none fit.
func parseDate(s string) *time.Time {
	if s == "" {
		return nil
	}
	for _, layout := range reviewDateLayouts {
		if d, err := time.Parse(layout, s); err == nil {
			return &d
		}
	}
	return nil
}
