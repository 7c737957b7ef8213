package model

import "time"

// Restaurant is one row of the restaurant metadata dataset.
type Restaurant struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Cuisine string `json:"cuisine,omitempty"`
	City    string `json:"city,omitempty"`
}

// Review is one row of the review dataset after the keyed merge with the
// restaurant metadata. Rating is a pointer so a missing or malformed source
// value stays distinguishable from a real zero; nil ratings are excluded
// from averages.
type Review struct {
	DocumentID string     `json:"document_id"`
	Restaurant string     `json:"restaurant"`
	Rating     *float64   `json:"rating,omitempty"`
	Date       *time.Time `json:"date,omitempty"`
	Text       string     `json:"text"`
}

// Document is one review's free text bound to its group key (the restaurant).
// Documents are immutable once loaded.
type Document struct {
	ID         string `json:"id"`
	Restaurant string `json:"restaurant"`
	Text       string `json:"text"`
}
