// Package secondary defines the request/response contract with the external
// semantic classifier and the tolerant merge of its opinions back into a
// scored batch. The classifier itself is an external collaborator; this
// package only owns the boundary.
package secondary

import (
	"sort"

	"github.com/siftworks/botsift/internal/domain"
)

// maxCandidateTextLen truncates candidate text before sending; the merge
// matches strictly by index, never by content, so truncation is safe.
const maxCandidateTextLen = 300

// Candidate is the reduced, order-indexed representation of one scored
// comment sent to the secondary classifier. Index is the candidate's
// position in the candidate list; SourceIndex is its position in the
// original batch and is never sent.
type Candidate struct {
	Index          int      `json:"index"`
	Author         string   `json:"author"`
	Text           string   `json:"text"`
	Likes          int      `json:"likes"`
	PublishedAt    string   `json:"published_at"`
	HeuristicScore int      `json:"heuristic_score"`
	Flags          []string `json:"flags"`

	SourceIndex int `json:"-"`
}

// SelectCandidates picks the highest-scoring comments, capped at limit,
// ties broken by batch position. The returned candidates are indexed
// 0..n-1 in selection order.
func SelectCandidates(scored []domain.ScoredComment, limit int) []Candidate {
	if limit <= 0 || len(scored) == 0 {
		return nil
	}

	positions := make([]int, len(scored))
	for i := range positions {
		positions[i] = i
	}
	sort.SliceStable(positions, func(a, b int) bool {
		return scored[positions[a]].BotScore > scored[positions[b]].BotScore
	})
	if len(positions) > limit {
		positions = positions[:limit]
	}

	cands := make([]Candidate, len(positions))
	for i, pos := range positions {
		sc := scored[pos]
		text := sc.Text
		if len(text) > maxCandidateTextLen {
			text = text[:maxCandidateTextLen]
		}
		flags := make([]string, len(sc.Flags))
		for j, f := range sc.Flags {
			flags[j] = string(f)
		}
		cands[i] = Candidate{
			Index:          i,
			Author:         sc.Author,
			Text:           text,
			Likes:          sc.LikeCount,
			PublishedAt:    sc.PublishedAt,
			HeuristicScore: sc.BotScore,
			Flags:          flags,
			SourceIndex:    pos,
		}
	}
	return cands
}
