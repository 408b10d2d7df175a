// Package aggregate reduces a scored batch into its Summary.
package aggregate

import (
	"math"
	"sort"

	"github.com/siftworks/botsift/internal/domain"
)

// Summarize builds a Summary over scored comments. A comment is suspicious
// when its score meets or exceeds threshold; pass domain.SuspiciousThreshold
// outside of tests so the scorer and the summary agree. Top flags are
// ranked by occurrence count descending, ties broken by first-seen order,
// truncated to domain.TopFlagLimit.
func Summarize(scored []domain.ScoredComment, threshold int) domain.Summary {
	summary := domain.Summary{Total: len(scored)}

	counts := make(map[domain.Flag]int)
	firstSeen := make(map[domain.Flag]int)
	order := 0

	for _, sc := range scored {
		if sc.BotScore >= threshold {
			summary.Suspicious++
		}
		for _, f := range sc.Flags {
			if _, ok := counts[f]; !ok {
				firstSeen[f] = order
				order++
			}
			counts[f]++
		}
	}

	if summary.Total > 0 {
		pct := float64(summary.Suspicious) / float64(summary.Total)
		summary.SuspiciousPct = math.Round(pct*1000) / 10
	}

	ranked := make([]domain.FlagCount, 0, len(counts))
	for f, n := range counts {
		ranked = append(ranked, domain.FlagCount{Flag: f, Count: n})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return firstSeen[ranked[i].Flag] < firstSeen[ranked[j].Flag]
	})
	if len(ranked) > domain.TopFlagLimit {
		ranked = ranked[:domain.TopFlagLimit]
	}
	summary.TopFlags = ranked

	return summary
}
