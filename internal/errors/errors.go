package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common error conditions
var (
	// ErrDatasetNotFound is returned when a dataset file cannot be opened
	ErrDatasetNotFound = errors.New("dataset not found")

	// ErrMissingColumn is returned when a dataset lacks a required column
	ErrMissingColumn = errors.New("missing column")

	// ErrRestaurantNotFound is returned when a restaurant is not in the report
	ErrRestaurantNotFound = errors.New("restaurant not found")

	// ErrReportNotReady is returned when the report has not been computed yet
	ErrReportNotReady = errors.New("report not ready")

	// ErrInvalidInput is returned when input validation fails
	ErrInvalidInput = errors.New("invalid input")
)

// DatasetNotFoundError represents a dataset not found error with context
type DatasetNotFoundError struct {
	Path string
}

func (e *DatasetNotFoundError) Error() string {
	return fmt.Sprintf("dataset file '%s' not found", e.Path)
}

func (e *DatasetNotFoundError) Is(target error) bool {
	return target == ErrDatasetNotFound
}

// NewDatasetNotFoundError creates a new DatasetNotFoundError
func NewDatasetNotFoundError(path string) *DatasetNotFoundError {
	return &DatasetNotFoundError{Path: path}
}

// MissingColumnError represents a missing required column with context
type MissingColumnError struct {
	Dataset string
	Column  string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("dataset '%s' is missing required column '%s'", e.Dataset, e.Column)
}

func (e *MissingColumnError) Is(target error) bool {
	return target == ErrMissingColumn
}

// NewMissingColumnError creates a new MissingColumnError
func NewMissingColumnError(dataset, column string) *MissingColumnError {
	return &MissingColumnError{Dataset: dataset, Column: column}
}

// RestaurantNotFoundError represents a restaurant not found error with context
type RestaurantNotFoundError struct {
	Name string
}

func (e *RestaurantNotFoundError) Error() string {
	return fmt.Sprintf("restaurant '%s' not found in report", e.Name)
}

func (e *RestaurantNotFoundError) Is(target error) bool {
	return target == ErrRestaurantNotFound
}

// NewRestaurantNotFoundError creates a new RestaurantNotFoundError
func NewRestaurantNotFoundError(name string) *RestaurantNotFoundError {
	return &RestaurantNotFoundError{Name: name}
}

// ValidationError represents an input validation error with context
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error for field '%s': %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}
