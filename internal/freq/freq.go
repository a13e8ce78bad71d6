// Package freq builds and orders character-frequency distributions.
package freq

import (
	"sort"
	"unicode"

	"github.com/verte-zerg/charfreq/internal/model"
)

// Entry is a single character with its occurrence count.
type Entry struct {
	Char  rune
	Count int
}

// Count builds per-character occurrence counts for the text. Characters
// are Unicode scalar values in encounter order; anything with the
// Unicode whitespace property is skipped. An empty text yields an empty
// map.
func Count(text string) map[rune]int {
	counts := map[rune]int{}
	for _, r := range text {
		if unicode.IsSpace(r) {
			continue
		}
		counts[r]++
	}
	return counts
}

// Order linearizes the counts into a deterministic sequence. SortByChar
// orders by ascending code point. SortByCount orders by descending
// count, with ties broken by ascending code point so the result is
// stable across runs.
func Order(counts map[rune]int, key model.SortKey) []Entry {
	entries := make([]Entry, 0, len(counts))
	for r, c := range counts {
		entries = append(entries, Entry{Char: r, Count: c})
	}
	switch key {
	case model.SortByCount:
		sort.Slice(entries, func(i, j int) bool {
			if entries[i].Count == entries[j].Count {
				return entries[i].Char < entries[j].Char
			}
			return entries[i].Count > entries[j].Count
		})
	default:
		sort.Slice(entries, func(i, j int) bool {
			return entries[i].Char < entries[j].Char
		})
	}
	return entries
}

// Total sums the counts over the whole sequence.
func Total(entries []Entry) int {
	total := 0
	for _, e := range entries {
		total += e.Count
	}
	return total
}
