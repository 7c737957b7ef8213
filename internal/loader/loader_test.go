package loader

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	internalErrors "github.com/reviewlens/reviewlens/internal/errors"
)

func writeDataset(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

const restaurantsCSV = `id,name,cuisine,city
r1,The Golden Fork,french,Lisbon
r2,Casa Verde,italian,Porto
r3,Noodle Bar,,
`

const reviewsCSV = `restaurant_id,rating,date,text
r1,4.5,2024-03-01,Delicious food and friendly staff
r1,,2024-03-02,No rating on this one
r2,3.0,not-a-date,Decent pasta
r2,abc,2024-04-10,Malformed rating here
r9,5.0,2024-04-11,Orphan review
`

func TestLoadRestaurants(t *testing.T) {
	path := writeDataset(t, "restaurants.csv", restaurantsCSV)

	restaurants, err := LoadRestaurants(path)
	require.NoError(t, err)
	require.Len(t, restaurants, 3)

	assert.Equal(t, "r1", restaurants[0].ID)
	assert.Equal(t, "The Golden Fork", restaurants[0].Name)
	assert.Equal(t, "french", restaurants[0].Cuisine)
	assert.Equal(t, "", restaurants[2].Cuisine, "optional columns may be empty")
}

func TestLoadRestaurantsMissingColumn(t *testing.T) {
	path := writeDataset(t, "restaurants.csv", "id,cuisine\nr1,french\n")

	_, err := LoadRestaurants(path)
	require.Error(t, err)
	assert.True(t, errors.Is(err, internalErrors.ErrMissingColumn))
}

func TestLoadRestaurantsFileNotFound(t *testing.T) {
	_, err := LoadRestaurants(filepath.Join(t.TempDir(), "nope.csv"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, internalErrors.ErrDatasetNotFound))
}

func TestLoadJoinsAndDropsUnmatched(t *testing.T) {
	restaurants := writeDataset(t, "restaurants.csv", restaurantsCSV)
	reviews := writeDataset(t, "reviews.csv", reviewsCSV)

	result, err := Load(restaurants, reviews)
	require.NoError(t, err)

	assert.Len(t, result.Reviews, 4, "orphan review dropped")
	assert.Equal(t, 1, result.Unmatched)

	first := result.Reviews[0]
	assert.Equal(t, "The Golden Fork", first.Restaurant, "join resolves the restaurant name")
	assert.NotEmpty(t, first.DocumentID, "each review gets a document ID")
	require.NotNil(t, first.Rating)
	assert.Equal(t, 4.5, *first.Rating)
	require.NotNil(t, first.Date)
}

func TestMalformedFieldsParseToNil(t *testing.T) {
	restaurants := writeDataset(t, "restaurants.csv", restaurantsCSV)
	reviews := writeDataset(t, "reviews.csv", reviewsCSV)

	result, err := Load(restaurants, reviews)
	require.NoError(t, err)

	assert.Nil(t, result.Reviews[1].Rating, "empty rating parses to nil")
	assert.Nil(t, result.Reviews[2].Date, "malformed date parses to nil")
	assert.Nil(t, result.Reviews[3].Rating, "malformed rating parses to nil")
}

func TestDocumentsProjection(t *testing.T) {
	restaurants := writeDataset(t, "restaurants.csv", restaurantsCSV)
	reviews := writeDataset(t, "reviews.csv", reviewsCSV)

	result, err := Load(restaurants, reviews)
	require.NoError(t, err)

	docs := result.Documents()
	require.Len(t, docs, len(result.Reviews))
	for i, doc := range docs {
		assert.Equal(t, result.Reviews[i].DocumentID, doc.ID)
		assert.Equal(t, result.Reviews[i].Restaurant, doc.Restaurant)
		assert.Equal(t, result.Reviews[i].Text, doc.Text)
	}
}

func TestEmptyReviewDataset(t *testing.T) {
	restaurants := writeDataset(t, "restaurants.csv", restaurantsCSV)
	reviews := writeDataset(t, "reviews.csv", "restaurant_id,rating,date,text\n")

	result, err := Load(restaurants, reviews)
	require.NoError(t, err)
	assert.Empty(t, result.Reviews)
	assert.Zero(t, result.Unmatched)
}
