package secondary

import (
	"math"

	"github.com/siftworks/botsift/internal/domain"
)

// Merge attaches sanitized opinions to the scored batch, matching entries
// to candidates strictly by index. Every candidate receives an opinion:
// those the classifier skipped get the uncertain placeholder. Entries with
// missing or out-of-range indices are ignored; out-of-range scores are
// clamped; invalid labels were already normalized to uncertain during
// decoding. The heuristic score is never replaced.
func Merge(scored []domain.ScoredComment, cands []Candidate, entries []OpinionEntry) {
	byIndex := make(map[int]OpinionEntry, len(entries))
	for _, e := range entries {
		if e.Index == nil {
			continue
		}
		idx := *e.Index
		if idx < 0 || idx >= len(cands) {
			continue
		}
		byIndex[idx] = e
	}

	for _, cand := range cands {
		if cand.SourceIndex < 0 || cand.SourceIndex >= len(scored) {
			continue
		}
		opinion := &domain.SecondaryOpinion{Label: domain.LabelUncertain}
		if e, ok := byIndex[cand.Index]; ok {
			opinion.Label = e.Label
			if !opinion.Label.Valid() {
				opinion.Label = domain.LabelUncertain
			}
			opinion.Reason = e.Reason
			if e.Score != nil {
				score := domain.ClampScore(int(math.Round(*e.Score)))
				opinion.Score = &score
			}
		}
		scored[cand.SourceIndex].Opinion = opinion
	}
}
