// Package termfreq accumulates per-restaurant term counts and derives
// document frequency across restaurants. Accumulation is commutative and
// associative, so feeding documents in any order produces the same table.
package termfreq

import "sort"

// Key identifies one (term, group) cell of the table.
type Key struct {
	Term  string
	Group string
}

// Entry is one materialized term-frequency record. Count is always >= 1;
// absent pairs are never stored as zero.
type Entry struct {
	Term  string
	Group string
	Count int
}

// Table is the term-frequency table for a whole corpus. Build it fully
// before deriving document frequency or TF-IDF; scoring reads it as an
// immutable snapshot.
type Table struct {
	counts map[Key]int
	groups map[string]struct{}
}

// NewTable creates an empty term-frequency table.
func NewTable() *Table {
	return &Table{
		counts: make(map[Key]int),
		groups: make(map[string]struct{}),
	}
}

// Add accumulates one document's tokens under the given group. The group is
// registered even when tokens is empty: it still exists in the corpus and
// counts toward the group total, it just contributes no records.
func (t *Table) Add(group string, tokens []string) {
	t.groups[group] = struct{}{}
	for _, token := range tokens {
		t.counts[Key{Term: token, Group: group}]++
	}
}

// Count returns the raw count for a (term, group) pair, 0 when absent.
func (t *Table) Count(term, group string) int {
	return t.counts[Key{Term: term, Group: group}]
}

// NumGroups returns the total number of groups fed to the table.
func (t *Table) NumGroups() int {
	return len(t.groups)
}

// DocFreq returns, for every term in the table, the number of distinct
// groups containing it at least once. Derived from the counts on each call
// so it can never drift out of sync with them.
func (t *Table) DocFreq() map[string]int {
	df := make(map[string]int)
	for key := range t.counts {
		df[key.Term]++
	}
	return df
}

// Entries returns every (term, group, count) record sorted by term then
// group for deterministic iteration.
func (t *Table) Entries() []Entry {
	entries := make([]Entry, 0, len(t.counts))
	for key, count := range t.counts {
		entries = append(entries, Entry{Term: key.Term, Group: key.Group, Count: count})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Term != entries[j].Term {
			return entries[i].Term < entries[j].Term
		}
		return entries[i].Group < entries[j].Group
	})
	return entries
}
