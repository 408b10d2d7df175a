package detect

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Thresholds for the shape detectors. The scorer applies its own weight
// thresholds on top of the raw evidence; these guards only keep trivially
// short strings from tripping ratio-based signals.
const (
	minLettersForRatio  = 10
	minLenForSymbolTest = 10
	symbolLetterFloor   = 0.15
	veryShortLen        = 4
	veryLongLen         = 280
)

var (
	punctuationClass = "!?.,;:*'\"()[]{}<>~^%$#@&+=_|/\\-"
	hashtagPattern   = regexp.MustCompile(`#[\p{L}\p{N}_]+`)
)

// uppercaseRatio returns the share of uppercase Latin letters among all
// Latin letters, plus the total letter count. Zero letters yields ratio 0.
func uppercaseRatio(text string) (ratio float64, letters int) {
	upper := 0
	for _, r := range text {
		switch {
		case r >= 'A' && r <= 'Z':
			upper++
			letters++
		case r >= 'a' && r <= 'z':
			letters++
		}
	}
	if letters == 0 {
		return 0, 0
	}
	return float64(upper) / float64(letters), letters
}

// countPunctuation counts characters in the fixed punctuation class.
func countPunctuation(text string) int {
	count := 0
	for _, r := range text {
		if r < utf8.RuneSelf && strings.ContainsRune(punctuationClass, r) {
			count++
		}
	}
	return count
}

// longestCharRun returns the length of the longest run of one identical
// rune, found in a single linear scan.
func longestCharRun(text string) int {
	var prev rune
	run, best := 0, 0
	for i, r := range text {
		if i > 0 && r == prev {
			run++
		} else {
			run = 1
		}
		if run > best {
			best = run
		}
		prev = r
	}
	return best
}

// countRepeatedWords counts adjacent duplicate words after lower-casing and
// whitespace collapse.
func countRepeatedWords(text string) int {
	words := strings.Fields(strings.ToLower(text))
	count := 0
	for i := 1; i < len(words); i++ {
		if words[i] == words[i-1] {
			count++
		}
	}
	return count
}

// countHashtags counts #word tokens.
func countHashtags(text string) int {
	return len(hashtagPattern.FindAllString(text, -1))
}

// symbolDominant reports whether letters make up under 15% of the text,
// guarding against short strings tripping the test trivially.
func symbolDominant(text string) bool {
	total := 0
	letters := 0
	for _, r := range text {
		total++
		if unicode.IsLetter(r) {
			letters++
		}
	}
	if total < minLenForSymbolTest {
		return false
	}
	return float64(letters)/float64(total) < symbolLetterFloor
}

// lengthExtremes flags very short and very long comments by rune count.
func lengthExtremes(text string) (veryShort, veryLong bool) {
	n := utf8.RuneCountInString(text)
	return n > 0 && n <= veryShortLen, n >= veryLongLen
}
