package termfreq

import (
	"math/rand"
	"reflect"
	"testing"
)

func TestAddAccumulatesAcrossDocuments(t *testing.T) {
	table := NewTable()
	table.Add("bistro", []string{"lamb", "tender", "lamb"})
	table.Add("bistro", []string{"lamb"})
	table.Add("diner", []string{"pancakes"})

	if got := table.Count("lamb", "bistro"); got != 3 {
		t.Errorf("Count(lamb, bistro) = %d, want 3", got)
	}
	if got := table.Count("tender", "bistro"); got != 1 {
		t.Errorf("Count(tender, bistro) = %d, want 1", got)
	}
	if got := table.Count("lamb", "diner"); got != 0 {
		t.Errorf("Count(lamb, diner) = %d, want 0", got)
	}
	if got := table.NumGroups(); got != 2 {
		t.Errorf("NumGroups() = %d, want 2", got)
	}
}

func TestZeroCountPairsAreAbsent(t *testing.T) {
	table := NewTable()
	table.Add("bistro", []string{"lamb"})

	for _, e := range table.Entries() {
		if e.Count < 1 {
			t.Errorf("entry %+v stored with count < 1", e)
		}
	}
	if len(table.Entries()) != 1 {
		t.Errorf("Entries() has %d records, want 1", len(table.Entries()))
	}
}

func TestEmptyTokenGroupRegisteredButContributesNothing(t *testing.T) {
	table := NewTable()
	table.Add("bistro", []string{"lamb"})
	table.Add("ghost", []string{})

	if got := table.NumGroups(); got != 2 {
		t.Errorf("NumGroups() = %d, want 2", got)
	}
	if got := len(table.Entries()); got != 1 {
		t.Errorf("Entries() has %d records, want 1", got)
	}
}

func TestOrderIndependence(t *testing.T) {
	type doc struct {
		group  string
		tokens []string
	}
	docs := []doc{
		{"bistro", []string{"lamb", "tender", "wine"}},
		{"diner", []string{"pancakes", "coffee", "coffee"}},
		{"bistro", []string{"wine", "wine"}},
		{"trattoria", []string{"pasta", "wine"}},
		{"diner", []string{"coffee"}},
	}

	reference := NewTable()
	for _, d := range docs {
		reference.Add(d.group, d.tokens)
	}
	want := reference.Entries()

	rng := rand.New(rand.NewSource(42))
	for trial := 0; trial < 10; trial++ {
		shuffled := make([]doc, len(docs))
		copy(shuffled, docs)
		rng.Shuffle(len(shuffled), func(i, j int) {
			shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
		})

		table := NewTable()
		for _, d := range shuffled {
			table.Add(d.group, d.tokens)
		}
		if got := table.Entries(); !reflect.DeepEqual(got, want) {
			t.Fatalf("trial %d: permuted input produced %v, want %v", trial, got, want)
		}
	}
}

func TestDocFreq(t *testing.T) {
	table := NewTable()
	table.Add("a", []string{"food", "good"})
	table.Add("b", []string{"food"})
	table.Add("c", []string{"food", "food"})

	df := table.DocFreq()
	if df["food"] != 3 {
		t.Errorf("df(food) = %d, want 3", df["food"])
	}
	if df["good"] != 1 {
		t.Errorf("df(good) = %d, want 1", df["good"])
	}
	if _, ok := df["absent"]; ok {
		t.Error("df should not contain terms absent from the table")
	}
}

func TestDocFreqStaysConsistentWithCounts(t *testing.T) {
	table := NewTable()
	table.Add("a", []string{"wine"})
	df := table.DocFreq()
	if df["wine"] != 1 {
		t.Fatalf("df(wine) = %d, want 1", df["wine"])
	}

	table.Add("b", []string{"wine"})
	df = table.DocFreq()
	if df["wine"] != 2 {
		t.Errorf("df(wine) after second group = %d, want 2", df["wine"])
	}
}
