// Package scorer converts raw comments into scored comments by combining
// the per-comment signal detectors with the batch-wide fingerprint index.
package scorer

import (
	"fmt"

	"github.com/siftworks/botsift/internal/detect"
	"github.com/siftworks/botsift/internal/domain"
	"github.com/siftworks/botsift/internal/fingerprint"
	"github.com/siftworks/botsift/internal/logger"
)

// Flag labels, in evaluation order.
const (
	FlagLink          domain.Flag = "contains link"
	FlagEmail         domain.Flag = "email address"
	FlagPhone         domain.Flag = "phone number"
	FlagEmojiFlood    domain.Flag = "emoji flood"
	FlagExcessiveCaps domain.Flag = "excessive caps"
	FlagPunctBurst    domain.Flag = "punctuation burst"
	FlagRepeatedChars domain.Flag = "repeated characters"
	FlagRepeatedWords domain.Flag = "repeated words"
	FlagHashtagFlood  domain.Flag = "hashtag flood"
	FlagSymbolHeavy   domain.Flag = "symbol heavy"
	FlagVeryShort     domain.Flag = "very short"
	FlagVeryLong      domain.Flag = "very long"
)

// Scorer scores comment batches. It holds no per-batch state: the
// fingerprint index is rebuilt per call and passed down by argument, so a
// single Scorer serves concurrent batches.
type Scorer struct {
	detectors *detect.Detectors
	log       logger.Logger
}

// New creates a scorer over the given detectors.
func New(detectors *detect.Detectors, log logger.Logger) *Scorer {
	return &Scorer{detectors: detectors, log: log}
}

// Score evaluates the whole batch and returns one ScoredComment per input
// comment, in input order. The fingerprint index is built first because
// duplicate evidence is batch-relative; everything after that is
// independent per comment.
func (s *Scorer) Score(comments []domain.Comment) []domain.ScoredComment {
	ix := fingerprint.Build(comments)

	scored := make([]domain.ScoredComment, len(comments))
	for i, c := range comments {
		scored[i] = s.scoreOne(c, ix.At(i))
	}

	s.log.Debug("batch scored",
		logger.Int("comments", len(comments)),
	)
	return scored
}

// scoreOne evaluates every detector in the fixed order, accumulating points
// and appending a flag each time a detector triggers. The duplicate signal
// is evaluated last, from the precomputed index entry.
func (s *Scorer) scoreOne(c domain.Comment, fp fingerprint.Entry) domain.ScoredComment {
	sig := s.detectors.Inspect(c.Text)

	points := 0
	var flags []domain.Flag

	if sig.LinkCount > 0 {
		points += scaled(sig.LinkCount, linkBaseWeight, linkExtra, linkCap)
		flags = append(flags, FlagLink)
	}
	if n := len(sig.ContactHits); n > 0 {
		points += scaled(n, contactBaseWeight, contactExtra, contactCap)
		for _, ph := range sig.ContactHits {
			flags = append(flags, domain.Flag("contact bait: "+ph))
		}
	}
	if n := len(sig.ScamHits); n > 0 {
		points += scaled(n, scamBaseWeight, scamExtra, scamCap)
		for _, ph := range sig.ScamHits {
			flags = append(flags, domain.Flag("scam keyword: "+ph))
		}
	}
	if n := len(sig.CryptoHits); n > 0 {
		points += scaled(n, cryptoBaseWeight, cryptoExtra, cryptoCap)
		for _, ph := range sig.CryptoHits {
			flags = append(flags, domain.Flag("crypto keyword: "+ph))
		}
	}
	if n := len(sig.PromoHits); n > 0 {
		points += scaled(n, promoBaseWeight, promoExtra, promoCap)
		for _, ph := range sig.PromoHits {
			flags = append(flags, domain.Flag("self-promo: "+ph))
		}
	}
	if sig.HasEmail {
		points += emailWeight
		flags = append(flags, FlagEmail)
	}
	if sig.HasPhone {
		points += phoneWeight
		flags = append(flags, FlagPhone)
	}
	if sig.EmojiCount >= emojiHeavyCount {
		points += emojiHeavyWeight
		flags = append(flags, FlagEmojiFlood)
	} else if sig.EmojiCount >= emojiFloodCount {
		points += emojiFloodWeight
		flags = append(flags, FlagEmojiFlood)
	}
	if sig.LetterCount >= 10 && sig.UppercaseRatio >= uppercaseCutoff {
		points += uppercaseWeight
		flags = append(flags, FlagExcessiveCaps)
	}
	if sig.PunctCount >= punctBurstCount {
		points += punctBurstWeight
		flags = append(flags, FlagPunctBurst)
	}
	if sig.MaxCharRun >= charRunLength {
		points += charRunWeight
		flags = append(flags, FlagRepeatedChars)
	}
	if sig.RepeatedWords >= repeatWordCount {
		points += repeatWordWeight
		flags = append(flags, FlagRepeatedWords)
	}
	if sig.HashtagCount >= hashtagFloodCount {
		points += hashtagFloodWeight
		flags = append(flags, FlagHashtagFlood)
	}
	if sig.SymbolDominant {
		points += symbolHeavyWeight
		flags = append(flags, FlagSymbolHeavy)
	}
	if sig.VeryShort {
		points += veryShortWeight
		flags = append(flags, FlagVeryShort)
	}
	if sig.VeryLong {
		points += veryLongWeight
		flags = append(flags, FlagVeryLong)
	}
	if fp.Count >= domain.DuplicateMinCount {
		points += scaled(fp.Count-domain.DuplicateMinCount+1,
			duplicateBaseWeight, duplicateExtra, duplicateCap)
		flags = append(flags, domain.Flag(fmt.Sprintf("template/duplicate x%d", fp.Count)))
	}

	return domain.ScoredComment{
		Comment:  c,
		BotScore: domain.ClampScore(points),
		Flags:    flags,
	}
}
