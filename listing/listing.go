// Package listing builds and renders the categorised HTML index of a
// served directory.
package listing

import "github.com/jackfish212/srv/types"

// Listing groups the immediate children of one directory by category.
// Every category is present, empty ones as empty slices, and entries keep
// the order in which they were enumerated.
type Listing map[Category][]types.Entry

// Build classifies entries into a new Listing.
func Build(entries []types.Entry) Listing {
	l := make(Listing, numCategories)
	for _, c := range Categories() {
		l[c] = []types.Entry{}
	}
	for _, e := range entries {
		c := Classify(e)
		l[c] = append(l[c], e)
	}
	return l
}

// Len returns the number of entries across all categories.
func (l Listing) Len() int {
	n := 0
	for _, entries := range l {
		n += len(entries)
	}
	return n
}
