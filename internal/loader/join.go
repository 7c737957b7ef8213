package loader

import (
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/reviewlens/reviewlens/model"
)

// JoinResult is the output of the keyed merge between the two datasets.
type JoinResult struct {
	Restaurants []model.Restaurant
	Reviews     []model.Review // joined reviews carrying the restaurant name
	Unmatched   int            // review rows whose restaurant_id had no match
}

// Load reads both datasets and merges reviews onto restaurants by ID.
// Reviews referencing an unknown restaurant are logged and dropped rather
// than silently coerced; the drop count is reported in the result.
// Each surviving review gets a fresh UUID as its document identifier.
func Load(restaurantsPath, reviewsPath string) (*JoinResult, error) {
	restaurants, err := LoadRestaurants(restaurantsPath)
	if err != nil {
		return nil, fmt.Errorf("loading restaurants: %w", err)
	}

	raw, err := loadRawReviews(reviewsPath)
	if err != nil {
		return nil, fmt.Errorf("loading reviews: %w", err)
	}

	nameByID := make(map[string]string, len(restaurants))
	for _, r := range restaurants {
		nameByID[r.ID] = r.Name
	}

	result := &JoinResult{Restaurants: restaurants}
	for _, rev := range raw {
		name, ok := nameByID[rev.restaurantID]
		if !ok {
			result.Unmatched++
			continue
		}
		result.Reviews = append(result.Reviews, model.Review{
			DocumentID: uuid.New().String(),
			Restaurant: name,
			Rating:     rev.rating,
			Date:       rev.date,
			Text:       rev.text,
		})
	}

	if result.Unmatched > 0 {
		log.Printf("Warning: dropped %d review(s) with no matching restaurant", result.Unmatched)
	}
	return result, nil
}

// Documents projects the joined reviews into the text-pipeline documents.
func (j *JoinResult) Documents() []model.Document {
	docs := make([]model.Document, 0, len(j.Reviews))
	for _, rev := range j.Reviews {
		docs = append(docs, model.Document{
			ID:         rev.DocumentID,
			Restaurant: rev.Restaurant,
			Text:       rev.Text,
		})
	}
	return docs
}
