// Package report renders the computed report for the terminal: one table
// per descriptive question, with inline bar charts for the distributions.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/reviewlens/reviewlens/model"
)

const barWidth = 30

// Render writes the full terminal report to w.
func Render(w io.Writer, r *model.Report) {
	p := message.NewPrinter(language.English)

	p.Fprintf(w, "Review analysis: %d restaurants, %d reviews",
		r.RestaurantCount, r.ReviewCount)
	if r.UnmatchedReviews > 0 {
		p.Fprintf(w, " (%d unmatched reviews dropped)", r.UnmatchedReviews)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w)

	renderTopRated(w, p, r)
	renderMostReviewed(w, p, r)
	renderCorrelation(w, r)
	renderTimeline(w, p, r)
	renderTopTerms(w, r)
	renderSentiment(w, r)
}

func renderTopRated(w io.Writer, p *message.Printer, r *model.Report) {
	fmt.Fprintln(w, "Highest rated restaurants")
	t := newTable(w)
	t.AppendHeader(table.Row{"#", "Restaurant", "Avg rating", "Rated reviews"})
	for i, s := range r.TopRated {
		t.AppendRow(table.Row{i + 1, s.Restaurant, fmt.Sprintf("%.2f", s.AvgRating), p.Sprintf("%d", s.RatedCount)})
	}
	t.Render()
	fmt.Fprintln(w)
}

func renderMostReviewed(w io.Writer, p *message.Printer, r *model.Report) {
	maxCount := 0
	for _, s := range r.MostReviewed {
		if s.ReviewCount > maxCount {
			maxCount = s.ReviewCount
		}
	}

	fmt.Fprintln(w, "Most reviewed restaurants")
	t := newTable(w)
	t.AppendHeader(table.Row{"#", "Restaurant", "Reviews", ""})
	for i, s := range r.MostReviewed {
		t.AppendRow(table.Row{i + 1, s.Restaurant, p.Sprintf("%d", s.ReviewCount), bar(s.ReviewCount, maxCount)})
	}
	t.Render()
	fmt.Fprintln(w)
}

func renderCorrelation(w io.Writer, r *model.Report) {
	fmt.Fprintf(w, "Rating vs. review volume correlation: %.3f\n\n", r.Correlation)
}

func renderTimeline(w io.Writer, p *message.Printer, r *model.Report) {
	if len(r.Timeline) == 0 {
		return
	}
	maxCount := 0
	for _, m := range r.Timeline {
		if m.Count > maxCount {
			maxCount = m.Count
		}
	}

	fmt.Fprintln(w, "Review volume by month")
	t := newTable(w)
	t.AppendHeader(table.Row{"Month", "Reviews", ""})
	for _, m := range r.Timeline {
		t.AppendRow(table.Row{m.Month, p.Sprintf("%d", m.Count), bar(m.Count, maxCount)})
	}
	t.Render()
	fmt.Fprintln(w)
}

func renderTopTerms(w io.Writer, r *model.Report) {
	fmt.Fprintln(w, "Most distinctive terms across the corpus")
	t := newTable(w)
	t.AppendHeader(table.Row{"#", "Term", "Restaurant", "Count", "TF-IDF"})
	for i, ts := range r.TopTerms {
		t.AppendRow(table.Row{i + 1, ts.Term, ts.Restaurant, ts.Count, fmt.Sprintf("%.3f", ts.Score)})
	}
	t.Render()
	fmt.Fprintln(w)
}

func renderSentiment(w io.Writer, r *model.Report) {
	fmt.Fprintln(w, "Sentiment by restaurant")
	t := newTable(w)
	t.AppendHeader(table.Row{"Restaurant", "Score", "Positive words", "Negative words"})
	for _, s := range r.Sentiment {
		t.AppendRow(table.Row{s.Restaurant, fmt.Sprintf("%+.2f", s.Score), s.Positive, s.Negative})
	}
	t.Render()
	fmt.Fprintln(w)
}

func newTable(w io.Writer) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	return t
}

// bar renders an ASCII bar proportional to value/max, at least one cell
// wide for any non-zero value.
func bar(value, max int) string {
	if max <= 0 || value <= 0 {
		return ""
	}
	width := value * barWidth / max
	if width == 0 {
		width = 1
	}
	return strings.Repeat("█", width)
}
