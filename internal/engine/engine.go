// Package engine orchestrates one batch analysis run: load and join the
// datasets, tokenize the corpus, build the term-frequency table, score
// TF-IDF, compute the group-by aggregates and sentiment, and assemble the
// report snapshot. The pipeline is single-threaded and synchronous; the
// only way to recompute anything is to run it again from the top.
package engine

import (
	"fmt"
	"log"
	"sort"
	"time"

	"github.com/reviewlens/reviewlens/config"
	"github.com/reviewlens/reviewlens/internal/loader"
	"github.com/reviewlens/reviewlens/internal/relevance"
	"github.com/reviewlens/reviewlens/internal/sentiment"
	"github.com/reviewlens/reviewlens/internal/stats"
	"github.com/reviewlens/reviewlens/internal/termfreq"
	"github.com/reviewlens/reviewlens/internal/tokenizer"
	"github.com/reviewlens/reviewlens/model"
	"github.com/reviewlens/reviewlens/store"
)

// Engine runs the analysis pipeline and holds the resulting report.
type Engine struct {
	cfg       *config.Config
	stopwords tokenizer.StopwordSet
	analyzer  *sentiment.Analyzer
	documents *store.DocumentStore
	report    *model.Report
}

// NewEngine creates an engine for the given configuration. The stop-word
// set comes from the configured file when one is set, otherwise from the
// embedded default list.
func NewEngine(cfg *config.Config) (*Engine, error) {
	stops := tokenizer.DefaultStopwords()
	if cfg.Datasets.Stopwords != "" {
		loaded, err := tokenizer.LoadStopwords(cfg.Datasets.Stopwords)
		if err != nil {
			return nil, fmt.Errorf("loading stop words: %w", err)
		}
		stops = loaded
	}

	return &Engine{
		cfg:       cfg,
		stopwords: stops,
		analyzer:  sentiment.NewAnalyzer(),
		documents: store.NewDocumentStore(),
	}, nil
}

// Run executes the whole pipeline and returns the finished report. Calling
// Run again rebuilds everything from the source datasets.
func (e *Engine) Run() (*model.Report, error) {
	started := time.Now()

	joined, err := loader.Load(e.cfg.Datasets.Restaurants, e.cfg.Datasets.Reviews)
	if err != nil {
		return nil, fmt.Errorf("loading datasets: %w", err)
	}
	log.Printf("Loaded %d restaurants and %d joined reviews (%d unmatched)",
		len(joined.Restaurants), len(joined.Reviews), joined.Unmatched)

	e.documents = store.NewDocumentStore()
	for _, doc := range joined.Documents() {
		e.documents.Add(doc)
	}

	table := e.buildTermFrequencyTable()
	scored := relevance.NewScorer(table).Score()
	log.Printf("Scored %d (term, restaurant) pairs across %d groups",
		len(scored), table.NumGroups())

	allStats := stats.Aggregate(joined.Reviews)

	report := &model.Report{
		GeneratedAt:      started,
		RestaurantCount:  len(joined.Restaurants),
		ReviewCount:      len(joined.Reviews),
		UnmatchedReviews: joined.Unmatched,
		Stats:            allStats,
		TopRated:         stats.TopRated(allStats, e.cfg.Analysis.TopRestaurants, e.cfg.Analysis.MinReviews),
		MostReviewed:     stats.MostReviewed(allStats, e.cfg.Analysis.TopRestaurants),
		Correlation:      stats.RatingVolumeCorrelation(allStats),
		Timeline:         stats.MonthlyVolume(joined.Reviews),
		TopTerms:         relevance.TopK(scored, e.cfg.Analysis.TopTerms),
		TermsByGroup:     relevance.TopKByGroup(scored, e.cfg.Analysis.TermsPerRestaurant),
		Sentiment:        e.scoreSentiment(joined.Reviews),
	}

	e.report = report
	log.Printf("Report ready in %v", time.Since(started).Round(time.Millisecond))
	return report, nil
}

// buildTermFrequencyTable tokenizes every stored document and accumulates
// the per-restaurant term counts. The table is complete before any scoring
// happens, so document frequency is derived from a finished snapshot.
func (e *Engine) buildTermFrequencyTable() *termfreq.Table {
	table := termfreq.NewTable()
	for _, restaurant := range e.documents.Restaurants() {
		for _, doc := range e.documents.DocumentsFor(restaurant) {
			table.Add(restaurant, tokenizer.Tokenize(doc.Text, e.stopwords))
		}
	}
	return table
}

// scoreSentiment averages per-review lexicon scores by restaurant, sorted
// by score descending with name tie-break.
func (e *Engine) scoreSentiment(reviews []model.Review) []model.SentimentSummary {
	type acc struct {
		sum      float64
		positive int
		negative int
		reviews  int
	}
	byRestaurant := make(map[string]*acc)

	for _, rev := range reviews {
		res := e.analyzer.Analyze(rev.Text)
		a := byRestaurant[rev.Restaurant]
		if a == nil {
			a = &acc{}
			byRestaurant[rev.Restaurant] = a
		}
		a.sum += res.Score
		a.positive += res.Positive
		a.negative += res.Negative
		a.reviews++
	}

	out := make([]model.SentimentSummary, 0, len(byRestaurant))
	for name, a := range byRestaurant {
		out = append(out, model.SentimentSummary{
			Restaurant: name,
			Score:      a.sum / float64(a.reviews),
			Positive:   a.positive,
			Negative:   a.negative,
			Reviews:    a.reviews,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		return out[i].Restaurant < out[j].Restaurant
	})
	return out
}

// Report returns the report from the last Run, nil before the first run.
func (e *Engine) Report() *model.Report {
	return e.report
}

// TermScores re-derives the full ranked TF-IDF record list from the stored
// corpus. Useful for programmatic consumers that want more than the
// report's top-K selection.
func (e *Engine) TermScores() []model.TermScore {
	return relevance.NewScorer(e.buildTermFrequencyTable()).Score()
}
