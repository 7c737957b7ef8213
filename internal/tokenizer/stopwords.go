package tokenizer

import (
	"bufio"
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"
	"strings"
)

//go:embed stopwords.txt
var defaultStopwordsRaw []byte

// StopwordSet is a fixed set of words excluded from term counting.
// A nil set rejects nothing.
type StopwordSet map[string]struct{}

// Contains reports whether word is a member of the set.
func (s StopwordSet) Contains(word string) bool {
	if s == nil {
		return false
	}
	_, ok := s[word]
	return ok
}

// NewStopwordSet builds a set from a list of words, lowercasing each entry.
func NewStopwordSet(words []string) StopwordSet {
	set := make(StopwordSet, len(words))
	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		if w != "" {
			set[w] = struct{}{}
		}
	}
	return set
}

// DefaultStopwords returns the embedded English stop-word list.
func DefaultStopwords() StopwordSet {
	return parseStopwords(bytes.NewReader(defaultStopwordsRaw))
}

// LoadStopwords reads a stop-word file: one word per line, blank lines and
// lines starting with '#' ignored.
func LoadStopwords(path string) (StopwordSet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening stop-word file %s: %w", path, err)
	}
	defer f.Close()
	return parseStopwords(f), nil
}

func parseStopwords(r io.Reader) StopwordSet {
	set := make(StopwordSet)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		set[strings.ToLower(line)] = struct{}{}
	}
	return set
}
