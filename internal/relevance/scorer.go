// Package relevance derives TF-IDF scores from a finished term-frequency
// table. The table is treated as an immutable snapshot: document frequency
// and scores are pure read-only functions over it, so nothing here mutates
// shared state.
package relevance

import (
	"math"
	"sort"

	"github.com/reviewlens/reviewlens/internal/termfreq"
	"github.com/reviewlens/reviewlens/model"
)

// Scorer computes TF-IDF scores over a term-frequency table.
type Scorer struct {
	table *termfreq.Table
}

// NewScorer creates a scorer over a fully built table.
func NewScorer(table *termfreq.Table) *Scorer {
	return &Scorer{table: table}
}

// calculateIDF calculates the inverse document frequency:
// IDF = ln(N / df) where N = total groups, df = groups containing the term.
// A term present in every group gets ln(1) = 0, scoring ubiquitous terms
// irrelevant regardless of how often they occur.
func calculateIDF(totalGroups, docFreq int) float64 {
	if totalGroups == 0 || docFreq == 0 {
		return 0.0
	}
	return math.Log(float64(totalGroups) / float64(docFreq))
}

// Score produces one TF-IDF record per (term, group) pair in the table,
// ranked by descending score with ties broken by term then group. The term
// frequency component is the raw count, deliberately not normalized by
// group size. An empty table yields an empty slice.
func (s *Scorer) Score() []model.TermScore {
	entries := s.table.Entries()
	if len(entries) == 0 {
		return []model.TermScore{}
	}

	totalGroups := s.table.NumGroups()
	df := s.table.DocFreq()

	records := make([]model.TermScore, 0, len(entries))
	for _, e := range entries {
		idf := calculateIDF(totalGroups, df[e.Term])
		records = append(records, model.TermScore{
			Term:       e.Term,
			Restaurant: e.Group,
			Count:      e.Count,
			Score:      float64(e.Count) * idf,
		})
	}

	sort.Slice(records, func(i, j int) bool {
		if records[i].Score != records[j].Score {
			return records[i].Score > records[j].Score
		}
		if records[i].Term != records[j].Term {
			return records[i].Term < records[j].Term
		}
		return records[i].Restaurant < records[j].Restaurant
	})

	return records
}

// TopK returns the first k records of an already ranked slice. k <= 0 or
// k >= len(records) returns a copy of the whole slice.
func TopK(records []model.TermScore, k int) []model.TermScore {
	if k <= 0 || k >= len(records) {
		k = len(records)
	}
	out := make([]model.TermScore, k)
	copy(out, records[:k])
	return out
}

// TopKByGroup splits ranked records by group, keeping at most k records per
// group. Relative ranking within each group is preserved.
func TopKByGroup(records []model.TermScore, k int) map[string][]model.TermScore {
	byGroup := make(map[string][]model.TermScore)
	for _, r := range records {
		if k > 0 && len(byGroup[r.Restaurant]) >= k {
			continue
		}
		byGroup[r.Restaurant] = append(byGroup[r.Restaurant], r)
	}
	return byGroup
}
