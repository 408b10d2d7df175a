// Package detect implements the per-comment signal detectors. Each detector
// inspects one dimension of a single comment and returns plain evidence
// (a boolean, a count, or a ratio); converting evidence into score points is
// the scorer's job.
package detect

import (
	"github.com/siftworks/botsift/internal/textnorm"
)

// Signals holds the evidence from every detector for one comment. Field
// order mirrors the fixed evaluation order used by the scorer.
type Signals struct {
	LinkCount      int
	ContactHits    []string
	ScamHits       []string
	CryptoHits     []string
	PromoHits      []string
	HasEmail       bool
	HasPhone       bool
	EmojiCount     int
	UppercaseRatio float64
	LetterCount    int
	PunctCount     int
	MaxCharRun     int
	RepeatedWords  int
	HashtagCount   int
	SymbolDominant bool
	VeryShort      bool
	VeryLong       bool
}

// Detectors bundles the stateful detectors (phrase automatons, the emoji
// strategy chosen at startup) with the stateless ones. Safe for concurrent
// use; phrase sets take a read lock per match.
type Detectors struct {
	Contact *PhraseSet
	Scam    *PhraseSet
	Crypto  *PhraseSet
	Promo   *PhraseSet

	countEmoji EmojiCounter
	shorteners []string
}

// New returns detectors initialized with the built-in phrase lists and
// shortener domains.
func New() *Detectors {
	return &Detectors{
		Contact:    NewPhraseSet(DefaultContactBait),
		Scam:       NewPhraseSet(DefaultScamKeywords),
		Crypto:     NewPhraseSet(DefaultCryptoKeywords),
		Promo:      NewPhraseSet(DefaultPromoKeywords),
		countEmoji: newEmojiCounter(),
		shorteners: DefaultShorteners,
	}
}

// Inspect runs every detector over one comment body. A missing body is
// treated as empty text, never as an error; no detector fails on any
// well-formed string.
func (d *Detectors) Inspect(raw string) Signals {
	matchable := textnorm.Matchable(raw)

	sig := Signals{
		LinkCount:     countLinks(raw, d.shorteners),
		ContactHits:   d.Contact.Match(matchable),
		ScamHits:      d.Scam.Match(matchable),
		CryptoHits:    d.Crypto.Match(matchable),
		PromoHits:     d.Promo.Match(matchable),
		HasEmail:      hasEmail(raw),
		HasPhone:      hasPhoneNumber(raw),
		EmojiCount:    d.countEmoji(raw),
		PunctCount:    countPunctuation(raw),
		MaxCharRun:    longestCharRun(raw),
		RepeatedWords: countRepeatedWords(raw),
		HashtagCount:  countHashtags(raw),
	}
	sig.UppercaseRatio, sig.LetterCount = uppercaseRatio(raw)
	sig.SymbolDominant = symbolDominant(raw)
	sig.VeryShort, sig.VeryLong = lengthExtremes(raw)
	return sig
}
