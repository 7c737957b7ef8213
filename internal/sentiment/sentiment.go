// Package sentiment performs lexicon-based sentiment scoring of review text.
//
// Each review is tokenized and its words looked up in an embedded polarity
// lexicon; matched word polarities (+1/-1) are averaged into a score between
// -1.0 and +1.0. Reviews with no lexicon matches score neutral. The lexicon
// lookup deliberately ignores numeric rating fields: polarity comes from
// the words alone.
package sentiment

import (
	"fmt"

	"github.com/reviewlens/reviewlens/internal/tokenizer"
)

// Polarity represents the overall sentiment direction of a text.
type Polarity int

const (
	Negative Polarity = -1
	Neutral  Polarity = 0
	Positive Polarity = 1
)

// String returns the name of the polarity.
func (p Polarity) String() string {
	switch p {
	case Negative:
		return "Negative"
	case Positive:
		return "Positive"
	default:
		return "Neutral"
	}
}

// Result holds the sentiment output for one text.
type Result struct {
	Polarity Polarity `json:"polarity"`
	Score    float64  `json:"score"`    // -1.0 to +1.0
	Positive int      `json:"positive"` // count of positive lexicon matches
	Negative int      `json:"negative"` // count of negative lexicon matches
	Total    int      `json:"total"`    // total analyzed tokens
}

// String returns a debug representation of the result.
func (r Result) String() string {
	return fmt.Sprintf("%s(score=%.2f, pos=%d, neg=%d, total=%d)",
		r.Polarity, r.Score, r.Positive, r.Negative, r.Total)
}

// Analyzer scores text against a polarity lexicon.
type Analyzer struct {
	lexicon map[string]int
}

// NewAnalyzer creates an analyzer backed by the embedded default lexicon.
func NewAnalyzer() *Analyzer {
	return &Analyzer{lexicon: defaultLexicon()}
}

// Analyze returns the detailed sentiment of text. Empty input yields a zero
// Result. Stop words are not removed here: polarity words like "good" stay
// visible to the lexicon regardless of the term-counting stop list.
func (a *Analyzer) Analyze(text string) Result {
	tokens := tokenizer.Tokenize(text, nil)
	if len(tokens) == 0 {
		return Result{}
	}

	var res Result
	res.Total = len(tokens)
	for _, tok := range tokens {
		switch a.lexicon[tok] {
		case 1:
			res.Positive++
		case -1:
			res.Negative++
		}
	}

	matched := res.Positive + res.Negative
	if matched == 0 {
		return res
	}

	res.Score = float64(res.Positive-res.Negative) / float64(matched)
	switch {
	case res.Score > 0:
		res.Polarity = Positive
	case res.Score < 0:
		res.Polarity = Negative
	}
	return res
}

// Score returns the aggregate sentiment score of text (-1.0 to +1.0).
func (a *Analyzer) Score(text string) float64 {
	return a.Analyze(text).Score
}
