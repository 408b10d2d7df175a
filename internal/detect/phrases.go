package detect

import (
	"sort"
	"strings"
	"sync"

	ahocorasick "github.com/cloudflare/ahocorasick"
)

// PhraseSet matches a fixed phrase list against text in a single pass using
// an Aho-Corasick automaton. The list can be swapped at runtime; Update
// rebuilds the automaton atomically under a write lock.
type PhraseSet struct {
	mu      sync.RWMutex
	phrases []string
	matcher *ahocorasick.Matcher
}

// NewPhraseSet builds a phrase set. Phrases are matched case-insensitively
// as substrings; empty entries are dropped.
func NewPhraseSet(phrases []string) *PhraseSet {
	p := &PhraseSet{}
	p.rebuild(phrases)
	return p
}

func (p *PhraseSet) rebuild(phrases []string) {
	cleaned := make([]string, 0, len(phrases))
	for _, ph := range phrases {
		ph = strings.ToLower(strings.TrimSpace(ph))
		if ph != "" {
			cleaned = append(cleaned, ph)
		}
	}
	p.phrases = cleaned
	if len(cleaned) > 0 {
		p.matcher = ahocorasick.NewStringMatcher(cleaned)
	} else {
		p.matcher = nil
	}
}

// Match returns the distinct phrases found in text, ordered by their
// position in the phrase list rather than their position in the text.
// Text is expected to be already lower-cased (textnorm.Matchable).
func (p *PhraseSet) Match(text string) []string {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.matcher == nil || text == "" {
		return nil
	}

	hits := p.matcher.Match([]byte(text))
	if len(hits) == 0 {
		return nil
	}

	sort.Ints(hits)
	matched := make([]string, 0, len(hits))
	seen := -1
	for _, idx := range hits {
		if idx == seen || idx >= len(p.phrases) {
			continue
		}
		matched = append(matched, p.phrases[idx])
		seen = idx
	}
	return matched
}

// Update replaces the phrase list and rebuilds the automaton.
func (p *PhraseSet) Update(phrases []string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.rebuild(phrases)
}

// Phrases returns a copy of the current phrase list.
func (p *PhraseSet) Phrases() []string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	out := make([]string, len(p.phrases))
	copy(out, p.phrases)
	return out
}
