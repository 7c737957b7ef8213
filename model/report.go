package model

import "time"

// TermScore is one TF-IDF record: how strongly a term characterizes a
// restaurant's reviews relative to the rest of the corpus. Scores are a pure
// function of the term-frequency table; they are recomputed from scratch on
// every run and never mutated incrementally.
type TermScore struct {
	Term       string  `json:"term"`
	Restaurant string  `json:"restaurant"`
	Count      int     `json:"count"`
	Score      float64 `json:"score"`
}

// RestaurantStats holds the per-restaurant group-by aggregates.
type RestaurantStats struct {
	Restaurant  string  `json:"restaurant"`
	ReviewCount int     `json:"review_count"`
	RatedCount  int     `json:"rated_count"` // reviews with a usable rating
	AvgRating   float64 `json:"avg_rating"`  // mean over RatedCount reviews
}

// SentimentSummary holds lexicon-based sentiment aggregated per restaurant.
type SentimentSummary struct {
	Restaurant string  `json:"restaurant"`
	Score      float64 `json:"score"` // mean review score, -1.0 to +1.0
	Positive   int     `json:"positive_words"`
	Negative   int     `json:"negative_words"`
	Reviews    int     `json:"reviews"`
}

// MonthlyVolume is one point of the review-volume time series.
type MonthlyVolume struct {
	Month string `json:"month"` // "2006-01"
	Count int    `json:"count"`
}

// Report is the immutable result of one pipeline run. Both the terminal
// renderer and the HTTP handlers consume it read-only; the only way to
// refresh it is to re-run the whole pipeline.
type Report struct {
	GeneratedAt      time.Time `json:"generated_at"`
	RestaurantCount  int       `json:"restaurant_count"`
	ReviewCount      int       `json:"review_count"`
	UnmatchedReviews int       `json:"unmatched_reviews"`

	Stats        []RestaurantStats      `json:"stats"`
	TopRated     []RestaurantStats      `json:"top_rated"`
	MostReviewed []RestaurantStats      `json:"most_reviewed"`
	Correlation  float64                `json:"rating_volume_correlation"`
	Timeline     []MonthlyVolume        `json:"timeline"`
	TopTerms     []TermScore            `json:"top_terms"`
	TermsByGroup map[string][]TermScore `json:"terms_by_restaurant"`
	Sentiment    []SentimentSummary     `json:"sentiment"`
}
