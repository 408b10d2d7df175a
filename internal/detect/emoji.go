package detect

import "regexp"

// EmojiCounter counts pictographic code points in a string.
type EmojiCounter func(string) int

// emojiPropertyClass is the Unicode property class for pictographs. Not
// every regexp engine ships the property tables for it, so the counter
// probes for support once at startup and otherwise degrades to a fixed
// code-point-range scan over the emoji blocks.
const emojiPropertyClass = `\p{Extended_Pictographic}`

// newEmojiCounter selects the counting strategy at initialization: the
// Unicode property scan when the platform supports it, the narrower range
// scan otherwise.
func newEmojiCounter() EmojiCounter {
	re, err := regexp.Compile(emojiPropertyClass)
	if err != nil {
		return countEmojiByRange
	}
	return func(s string) int {
		return len(re.FindAllString(s, -1))
	}
}

// emojiRanges are the major pictographic blocks, used by the fallback scan.
var emojiRanges = [][2]rune{
	{0x1F300, 0x1F5FF}, // symbols and pictographs
	{0x1F600, 0x1F64F}, // emoticons
	{0x1F680, 0x1F6FF}, // transport
	{0x1F900, 0x1F9FF}, // supplemental symbols
	{0x1FA00, 0x1FAFF}, // extended-A
	{0x2600, 0x26FF},   // miscellaneous symbols
	{0x2700, 0x27BF},   // dingbats
	{0x1F1E6, 0x1F1FF}, // regional indicators
	{0x2B00, 0x2BFF},   // arrows and stars
}

func countEmojiByRange(s string) int {
	count := 0
	for _, r := range s {
		for _, rng := range emojiRanges {
			if r >= rng[0] && r <= rng[1] {
				count++
				break
			}
		}
	}
	return count
}
