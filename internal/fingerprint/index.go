// Package fingerprint builds the batch-scoped duplicate index consulted by
// the scorer. The index is constructed in a single pass before scoring and
// is read-only afterwards, so per-comment scoring can share it without
// locking.
package fingerprint

import (
	"unicode/utf8"

	"github.com/siftworks/botsift/internal/domain"
	"github.com/siftworks/botsift/internal/textnorm"
)

// Entry reports one comment's fingerprint and its table-wide frequency.
// Comments whose fingerprint falls under the length floor carry Count 0 and
// are never treated as duplicates.
type Entry struct {
	Key   string
	Count int
}

// Index maps each input position to its fingerprint entry. It is scoped to
// one batch and never shared across batches.
type Index struct {
	entries []Entry
}

// Build fingerprints every comment once and counts occurrences of
// fingerprints at or above the length floor. Each comment contributes to
// its own fingerprint's count exactly once.
func Build(comments []domain.Comment) *Index {
	entries := make([]Entry, len(comments))
	freq := make(map[string]int, len(comments))

	for i, c := range comments {
		key := textnorm.Fingerprint(c.Text)
		entries[i] = Entry{Key: key}
		if utf8.RuneCountInString(key) >= domain.FingerprintMinLen {
			freq[key]++
		}
	}

	for i := range entries {
		if utf8.RuneCountInString(entries[i].Key) >= domain.FingerprintMinLen {
			entries[i].Count = freq[entries[i].Key]
		}
	}

	return &Index{entries: entries}
}

// At returns the entry for input position i.
func (ix *Index) At(i int) Entry {
	if i < 0 || i >= len(ix.entries) {
		return Entry{}
	}
	return ix.entries[i]
}

// Len returns the number of indexed comments.
func (ix *Index) Len() int {
	return len(ix.entries)
}
