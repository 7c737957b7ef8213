// Package stats computes the per-restaurant group-by aggregates: review
// counts, mean ratings, rating/volume correlation, and the monthly review
// volume time series. Missing ratings and dates follow a propagate-and-
// ignore policy: they are excluded from the aggregate, never treated as
// fatal and never coerced to zero.
package stats

import (
	"math"
	"sort"

	"github.com/reviewlens/reviewlens/model"
)

// Aggregate groups reviews by restaurant and computes review counts and
// mean ratings. Output is sorted by restaurant name for determinism.
func Aggregate(reviews []model.Review) []model.RestaurantStats {
	type acc struct {
		count int
		rated int
		sum   float64
	}
	byRestaurant := make(map[string]*acc)

	for _, rev := range reviews {
		a := byRestaurant[rev.Restaurant]
		if a == nil {
			a = &acc{}
			byRestaurant[rev.Restaurant] = a
		}
		a.count++
		if rev.Rating != nil {
			a.rated++
			a.sum += *rev.Rating
		}
	}

	out := make([]model.RestaurantStats, 0, len(byRestaurant))
	for name, a := range byRestaurant {
		s := model.RestaurantStats{
			Restaurant:  name,
			ReviewCount: a.count,
			RatedCount:  a.rated,
		}
		if a.rated > 0 {
			s.AvgRating = a.sum / float64(a.rated)
		}
		out = append(out, s)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].Restaurant < out[j].Restaurant
	})
	return out
}

// TopRated returns up to k restaurants ranked by mean rating descending,
// restricted to restaurants with at least minReviews rated reviews. Ties
// break by name ascending.
func TopRated(all []model.RestaurantStats, k, minReviews int) []model.RestaurantStats {
	eligible := make([]model.RestaurantStats, 0, len(all))
	for _, s := range all {
		if s.RatedCount >= minReviews {
			eligible = append(eligible, s)
		}
	}
	sort.Slice(eligible, func(i, j int) bool {
		if eligible[i].AvgRating != eligible[j].AvgRating {
			return eligible[i].AvgRating > eligible[j].AvgRating
		}
		return eligible[i].Restaurant < eligible[j].Restaurant
	})
	return head(eligible, k)
}

// MostReviewed returns up to k restaurants ranked by review count
// descending, ties broken by name ascending.
func MostReviewed(all []model.RestaurantStats, k int) []model.RestaurantStats {
	ranked := make([]model.RestaurantStats, len(all))
	copy(ranked, all)
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].ReviewCount != ranked[j].ReviewCount {
			return ranked[i].ReviewCount > ranked[j].ReviewCount
		}
		return ranked[i].Restaurant < ranked[j].Restaurant
	})
	return head(ranked, k)
}

func head(s []model.RestaurantStats, k int) []model.RestaurantStats {
	if k <= 0 || k >= len(s) {
		return s
	}
	return s[:k]
}

// RatingVolumeCorrelation returns the Pearson correlation between mean
// rating and review count across restaurants. Restaurants with no rated
// reviews are excluded. Fewer than two usable points, or zero variance in
// either series, yields 0.
func RatingVolumeCorrelation(all []model.RestaurantStats) float64 {
	var ratings, volumes []float64
	for _, s := range all {
		if s.RatedCount == 0 {
			continue
		}
		ratings = append(ratings, s.AvgRating)
		volumes = append(volumes, float64(s.ReviewCount))
	}
	return pearson(ratings, volumes)
}

// pearson computes the Pearson correlation coefficient of two equal-length
// series.
func pearson(x, y []float64) float64 {
	n := len(x)
	if n < 2 || n != len(y) {
		return 0
	}

	var sumX, sumY float64
	for i := 0; i < n; i++ {
		sumX += x[i]
		sumY += y[i]
	}
	meanX := sumX / float64(n)
	meanY := sumY / float64(n)

	var cov, varX, varY float64
	for i := 0; i < n; i++ {
		dx := x[i] - meanX
		dy := y[i] - meanY
		cov += dx * dy
		varX += dx * dx
		varY += dy * dy
	}
	if varX == 0 || varY == 0 {
		return 0
	}
	return cov / math.Sqrt(varX*varY)
}

// MonthlyVolume buckets reviews by calendar month of their date. Reviews
// without a date are skipped. Output is sorted chronologically.
func MonthlyVolume(reviews []model.Review) []model.MonthlyVolume {
	counts := make(map[string]int)
	for _, rev := range reviews {
		if rev.Date == nil {
			continue
		}
		counts[rev.Date.Format("2006-01")]++
	}

	out := make([]model.MonthlyVolume, 0, len(counts))
	for month, count := range counts {
		out = append(out, model.MonthlyVolume{Month: month, Count: count})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Month < out[j].Month
	})
	return out
}
