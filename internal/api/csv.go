package api

import (
	"encoding/csv"
	"io"
	"strconv"
	"strings"

	"github.com/siftworks/botsift/internal/domain"
)

// flagDelimiter joins a comment's flags into one CSV cell. Embedded
// delimiters, quotes and newlines in comment text are handled by standard
// CSV quoting.
const flagDelimiter = "|"

var csvHeader = []string{
	"id", "author", "published_at", "like_count",
	"bot_score", "flags", "opinion_label", "opinion_score", "text",
}

// writeCSV renders a scored batch as CSV, one row per comment in batch
// order.
func writeCSV(w io.Writer, scored []domain.ScoredComment) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}

	for _, sc := range scored {
		flags := make([]string, len(sc.Flags))
		for i, f := range sc.Flags {
			flags[i] = string(f)
		}

		label, score := "", ""
		if sc.Opinion != nil {
			label = string(sc.Opinion.Label)
			if sc.Opinion.Score != nil {
				score = strconv.Itoa(*sc.Opinion.Score)
			}
		}

		row := []string{
			sc.ID,
			sc.Author,
			sc.PublishedAt,
			strconv.Itoa(sc.LikeCount),
			strconv.Itoa(sc.BotScore),
			strings.Join(flags, flagDelimiter),
			label,
			score,
			sc.Text,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
