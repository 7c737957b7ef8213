package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestDatasetNotFoundError(t *testing.T) {
	err := NewDatasetNotFoundError("data/reviews.csv")

	if !errors.Is(err, ErrDatasetNotFound) {
		t.Error("DatasetNotFoundError should match ErrDatasetNotFound sentinel")
	}

	expected := "dataset file 'data/reviews.csv' not found"
	if err.Error() != expected {
		t.Errorf("Error() = %q, want %q", err.Error(), expected)
	}
}

func TestMissingColumnError(t *testing.T) {
	err := NewMissingColumnError("reviews", "rating")

	if !errors.Is(err, ErrMissingColumn) {
		t.Error("MissingColumnError should match ErrMissingColumn sentinel")
	}

	expected := "dataset 'reviews' is missing required column 'rating'"
	if err.Error() != expected {
		t.Errorf("Error() = %q, want %q", err.Error(), expected)
	}
}

func TestRestaurantNotFoundError(t *testing.T) {
	err := NewRestaurantNotFoundError("The Golden Fork")

	if !errors.Is(err, ErrRestaurantNotFound) {
		t.Error("RestaurantNotFoundError should match ErrRestaurantNotFound sentinel")
	}
	if errors.Is(err, ErrDatasetNotFound) {
		t.Error("RestaurantNotFoundError should not match ErrDatasetNotFound")
	}
}

func TestValidationError(t *testing.T) {
	tests := []struct {
		name    string
		field   string
		message string
		want    string
	}{
		{"with field", "limit", "must be positive", "validation error for field 'limit': must be positive"},
		{"without field", "", "bad request", "validation error: bad request"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewValidationError(tt.field, tt.message)
			if err.Error() != tt.want {
				t.Errorf("Error() = %q, want %q", err.Error(), tt.want)
			}
			if !errors.Is(err, ErrInvalidInput) {
				t.Error("ValidationError should match ErrInvalidInput sentinel")
			}
		})
	}
}

func TestWrappedErrorsSurviveFmtErrorf(t *testing.T) {
	err := fmt.Errorf("loading datasets: %w", NewDatasetNotFoundError("x.csv"))
	if !errors.Is(err, ErrDatasetNotFound) {
		t.Error("wrapped DatasetNotFoundError should still match sentinel")
	}
}
