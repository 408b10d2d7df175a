// Package textnorm provides the deterministic text-cleaning functions used
// for comment fingerprinting and keyword matching. Both entry points are
// pure, total over arbitrary Unicode input, and idempotent.
package textnorm

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

var (
	reURL     = regexp.MustCompile(`(?i)https?://\S+|www\.\S+|youtu\.be/\S+`)
	reMention = regexp.MustCompile(`@[\p{L}\p{N}_.]+`)
	reHashtag = regexp.MustCompile(`#[\p{L}\p{N}_]+`)
	reSpace   = regexp.MustCompile(`\s+`)
)

// Fingerprint reduces a comment body to its template form: NFKC-folded,
// lower-cased, with URLs, @mentions, #hashtags and all non-alphanumeric
// runs replaced by single spaces. Two comments with equal fingerprints are
// treated as the same template.
func Fingerprint(raw string) string {
	s := fold(raw)
	s = reURL.ReplaceAllString(s, " ")
	s = reMention.ReplaceAllString(s, " ")
	s = reHashtag.ReplaceAllString(s, " ")
	s = keepWordRunes(s)
	return collapse(s)
}

// Matchable lower-cases and strips URLs and @mentions but keeps punctuation,
// which the phrase detectors rely on for word boundaries.
func Matchable(raw string) string {
	s := fold(raw)
	s = reURL.ReplaceAllString(s, " ")
	s = reMention.ReplaceAllString(s, " ")
	return collapse(s)
}

func fold(s string) string {
	return strings.ToLower(norm.NFKC.String(s))
}

// keepWordRunes replaces every rune that is not a letter, digit or
// whitespace with a space, preserving word boundaries.
func keepWordRunes(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
			b.WriteRune(r)
		} else {
			b.WriteByte(' ')
		}
	}
	return b.String()
}

func collapse(s string) string {
	return strings.TrimSpace(reSpace.ReplaceAllString(s, " "))
}
