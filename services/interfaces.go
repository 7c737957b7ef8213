package services

import (
	"github.com/reviewlens/reviewlens/model"
)

// ReportProvider exposes the report snapshot computed by one pipeline run.
// The returned report is immutable; callers must treat it as read-only.
type ReportProvider interface {
	// Report returns the current report, or nil before the pipeline has run.
	Report() *model.Report
}

// TermScorer produces ranked TF-IDF records for the loaded corpus.
type TermScorer interface {
	// TermScores returns every (term, restaurant, score) record ranked by
	// descending score with ties broken by term then restaurant.
	TermScores() []model.TermScore
}
